package dto

import (
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
)

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID   string          `json:"id"`
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	Role     domain.UserRole `json:"role"`
	Avatar   string          `json:"avatar,omitempty"`
	Bio      string          `json:"bio,omitempty"`
	Linkedin string          `json:"linkedin,omitempty"`
	Github   string          `json:"github,omitempty"`
}

// ToUserResponse converts a domain user to its public view.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Email:    user.Email,
		Name:     user.Name,
		Role:     user.Role,
		Avatar:   user.Avatar,
		Bio:      user.Bio,
		Linkedin: user.Linkedin,
		Github:   user.Github,
	}
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
	Linkedin *string `json:"linkedin"`
	Github   *string `json:"github"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
