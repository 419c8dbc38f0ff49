package dto

import (
	"github.com/MateoGaviraghi/Mi-Portfolio-Back-End/internal/core/domain"
)

// InsightMetricsInput mirrors domain.InsightMetrics for payloads.
type InsightMetricsInput struct {
	LinesOfCode int    `json:"linesOfCode" binding:"omitempty,min=0"`
	Complexity  int    `json:"complexity" binding:"omitempty,min=0"`
	Performance string `json:"performance"`
}

// CreateAIInsightRequest is the admin payload for documenting AI usage.
type CreateAIInsightRequest struct {
	ProjectID        string               `json:"projectId"`
	Title            string               `json:"title" binding:"required,notblank"`
	Description      string               `json:"description" binding:"required,notblank"`
	Type             domain.InsightType   `json:"type" binding:"required,oneof=code_generation code_review debugging optimization documentation testing architecture other"`
	AITools          []string             `json:"aiTools"`
	ImpactPercentage int                  `json:"impactPercentage" binding:"min=0,max=100"`
	CodeSnippet      string               `json:"codeSnippet"`
	BeforeCode       string               `json:"beforeCode"`
	AfterCode        string               `json:"afterCode"`
	TimeSaved        int                  `json:"timeSaved" binding:"min=0"`
	Tags             []string             `json:"tags"`
	IsPublic         *bool                `json:"isPublic"` // defaults to true when omitted
	Metrics          *InsightMetricsInput `json:"metrics"`
}

// UpdateAIInsightRequest allows partial updates; nil fields stay untouched.
type UpdateAIInsightRequest struct {
	Title            *string              `json:"title"`
	Description      *string              `json:"description"`
	Type             *domain.InsightType  `json:"type" binding:"omitempty,oneof=code_generation code_review debugging optimization documentation testing architecture other"`
	AITools          []string             `json:"aiTools"`
	ImpactPercentage *int                 `json:"impactPercentage" binding:"omitempty,min=0,max=100"`
	CodeSnippet      *string              `json:"codeSnippet"`
	BeforeCode       *string              `json:"beforeCode"`
	AfterCode        *string              `json:"afterCode"`
	TimeSaved        *int                 `json:"timeSaved" binding:"omitempty,min=0"`
	Tags             []string             `json:"tags"`
	IsPublic         *bool                `json:"isPublic"`
	Metrics          *InsightMetricsInput `json:"metrics"`
}

// ListInsightsParams defines the public listing filter.
type ListInsightsParams struct {
	Type string `form:"type" binding:"omitempty,oneof=code_generation code_review debugging optimization documentation testing architecture other"`
}

// AIInsightStatsResponse summarizes the public insights.
type AIInsightStatsResponse struct {
	Total          int     `json:"total"`
	AvgImpact      float64 `json:"avgImpact"`
	TotalTimeSaved int     `json:"totalTimeSaved"` // minutes
}
