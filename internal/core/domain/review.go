package domain

// Review is visitor feedback. Reviews start private and become visible on the
// public site only after an admin approves them.
type Review struct {
	ReviewID  string `json:"reviewID"`
	UserID    string `json:"userID"`
	Rating    int    `json:"rating"` // 1-5
	Comment   string `json:"comment"`
	IsPublic  bool   `json:"isPublic"`
	Company   string `json:"company,omitempty"`
	Position  string `json:"position,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`

	// Author fields populated on reads that join the users table.
	AuthorName  string `json:"authorName,omitempty"`
	AuthorEmail string `json:"authorEmail,omitempty"`

	Timestamps
}
