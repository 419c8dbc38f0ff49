package domain

// ProjectCategory classifies a portfolio project.
type ProjectCategory string

const (
	CategoryWeb     ProjectCategory = "web"
	CategoryMobile  ProjectCategory = "mobile"
	CategoryAI      ProjectCategory = "ai"
	CategoryBackend ProjectCategory = "backend"
)

// MediaFile is a hosted image or video attachment. The whole slice is stored
// as a single JSONB column.
type MediaFile struct {
	URL          string `json:"url"`
	PublicID     string `json:"publicId"`
	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	Format       string `json:"format,omitempty"`
	ResourceType string `json:"resourceType,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
}

// AIGenerated describes how much of the project was AI-assisted.
type AIGenerated struct {
	Percentage  int      `json:"percentage"`
	Tools       []string `json:"tools"`
	Description string   `json:"description"`
}

// ProjectStats are the public engagement counters.
type ProjectStats struct {
	Views int64 `json:"views"`
	Likes int64 `json:"likes"`
}

// Project is a portfolio entry.
type Project struct {
	ProjectID       string          `json:"projectID"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	LongDescription string          `json:"longDescription"`
	Technologies    []string        `json:"technologies"`
	Images          []MediaFile     `json:"images"`
	Videos          []MediaFile     `json:"videos"`
	GithubURL       string          `json:"githubUrl,omitempty"`
	LiveURL         string          `json:"liveUrl,omitempty"`
	Category        ProjectCategory `json:"category"`
	Featured        bool            `json:"featured"`
	AIGenerated     AIGenerated     `json:"aiGenerated"`
	Stats           ProjectStats    `json:"stats"`
	Timestamps
}
