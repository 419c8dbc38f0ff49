package domain

// UserRole is the coarse authorization tier gating mutating endpoints.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleVisitor UserRole = "visitor"
)

// AuthProvider identifies how the account was provisioned.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User is the identity record. PasswordHash and RefreshTokenHash never leave
// the service layer; RefreshTokenHash empty means "no active session".
type User struct {
	UserID       string   `json:"userID"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	PasswordHash string   `json:"-"`
	Role         UserRole `json:"role"`
	Avatar       string   `json:"avatar,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Linkedin     string   `json:"linkedin,omitempty"`
	Github       string   `json:"github,omitempty"`

	// Exactly one refresh token is tracked per user; a new login overwrites it.
	RefreshTokenHash string `json:"-"`

	AuthProvider   AuthProvider `json:"-"`
	ProviderUserID string       `json:"-"`

	Timestamps
}
