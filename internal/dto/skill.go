package dto

import (
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
)

// CreateSkillRequest is the admin payload for creating a skill.
type CreateSkillRequest struct {
	Name            string               `json:"name" binding:"required,notblank"`
	Category        domain.SkillCategory `json:"category" binding:"required,oneof=frontend backend database devops tools ai other"`
	Level           int                  `json:"level" binding:"min=0,max=100"`
	Icon            string               `json:"icon"`
	YearsExperience int                  `json:"yearsExperience" binding:"min=0"`
	Description     string               `json:"description"`
	RelatedProjects []string             `json:"relatedProjects"`
	IsActive        *bool                `json:"isActive"` // defaults to true when omitted
}

// UpdateSkillRequest allows partial updates; nil fields stay untouched.
type UpdateSkillRequest struct {
	Name            *string               `json:"name"`
	Category        *domain.SkillCategory `json:"category" binding:"omitempty,oneof=frontend backend database devops tools ai other"`
	Level           *int                  `json:"level" binding:"omitempty,min=0,max=100"`
	Icon            *string               `json:"icon"`
	YearsExperience *int                  `json:"yearsExperience" binding:"omitempty,min=0"`
	Description     *string               `json:"description"`
	RelatedProjects []string              `json:"relatedProjects"`
	IsActive        *bool                 `json:"isActive"`
}

// ListSkillsParams defines the public listing filters.
type ListSkillsParams struct {
	Category string `form:"category" binding:"omitempty,oneof=frontend backend database devops tools ai other"`
	IsActive *bool  `form:"isActive"`
}

// SkillCategoryStats is one per-category row of the skill stats endpoint.
type SkillCategoryStats struct {
	Category domain.SkillCategory `json:"category"`
	Count    int                  `json:"count"`
	AvgLevel float64              `json:"avgLevel"`
}

// SkillStatsResponse summarizes the active skill set.
type SkillStatsResponse struct {
	Total      int                  `json:"total"`
	Categories []SkillCategoryStats `json:"categories"`
}
