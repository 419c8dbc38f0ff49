package dto

import (
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
)

// MediaFileInput mirrors domain.MediaFile for create/update payloads.
type MediaFileInput struct {
	URL          string `json:"url" binding:"required,url"`
	PublicID     string `json:"publicId" binding:"required"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Format       string `json:"format"`
	ResourceType string `json:"resourceType"`
	Thumbnail    string `json:"thumbnail"`
}

// AIGeneratedInput describes the AI-assistance block of a project.
type AIGeneratedInput struct {
	Percentage  int      `json:"percentage" binding:"min=0,max=100"`
	Tools       []string `json:"tools"`
	Description string   `json:"description"`
}

// CreateProjectRequest is the admin payload for creating a project.
type CreateProjectRequest struct {
	Title           string                 `json:"title" binding:"required,notblank"`
	Description     string                 `json:"description" binding:"required,notblank"`
	LongDescription string                 `json:"longDescription" binding:"required"`
	Technologies    []string               `json:"technologies" binding:"required,min=1"`
	Images          []MediaFileInput       `json:"images"`
	Videos          []MediaFileInput       `json:"videos"`
	GithubURL       string                 `json:"githubUrl" binding:"omitempty,url"`
	LiveURL         string                 `json:"liveUrl" binding:"omitempty,url"`
	Category        domain.ProjectCategory `json:"category" binding:"required,oneof=web mobile ai backend"`
	Featured        bool                   `json:"featured"`
	AIGenerated     *AIGeneratedInput      `json:"aiGenerated"`
}

// UpdateProjectRequest allows partial updates; nil fields stay untouched.
type UpdateProjectRequest struct {
	Title           *string                 `json:"title"`
	Description     *string                 `json:"description"`
	LongDescription *string                 `json:"longDescription"`
	Technologies    []string                `json:"technologies"`
	Images          []MediaFileInput        `json:"images"`
	Videos          []MediaFileInput        `json:"videos"`
	GithubURL       *string                 `json:"githubUrl" binding:"omitempty,url"`
	LiveURL         *string                 `json:"liveUrl" binding:"omitempty,url"`
	Category        *domain.ProjectCategory `json:"category" binding:"omitempty,oneof=web mobile ai backend"`
	Featured        *bool                   `json:"featured"`
	AIGenerated     *AIGeneratedInput       `json:"aiGenerated"`
}

// ListProjectsParams defines the public listing filters.
type ListProjectsParams struct {
	Category string `form:"category" binding:"omitempty,oneof=web mobile ai backend"`
	Featured *bool  `form:"featured"`
}

// ToMediaFiles converts input attachments to their domain form.
func ToMediaFiles(in []MediaFileInput) []domain.MediaFile {
	out := make([]domain.MediaFile, len(in))
	for i, f := range in {
		out[i] = domain.MediaFile{
			URL:          f.URL,
			PublicID:     f.PublicID,
			Width:        f.Width,
			Height:       f.Height,
			Format:       f.Format,
			ResourceType: f.ResourceType,
			Thumbnail:    f.Thumbnail,
		}
	}
	return out
}
