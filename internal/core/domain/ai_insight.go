package domain

// InsightType classifies what the AI assistance was used for.
type InsightType string

const (
	InsightCodeGeneration InsightType = "code_generation"
	InsightCodeReview     InsightType = "code_review"
	InsightDebugging      InsightType = "debugging"
	InsightOptimization   InsightType = "optimization"
	InsightDocumentation  InsightType = "documentation"
	InsightTesting        InsightType = "testing"
	InsightArchitecture   InsightType = "architecture"
	InsightOther          InsightType = "other"
)

// InsightMetrics are optional free-form measurements attached to an insight.
type InsightMetrics struct {
	LinesOfCode int    `json:"linesOfCode,omitempty"`
	Complexity  int    `json:"complexity,omitempty"`
	Performance string `json:"performance,omitempty"`
}

// AIInsight documents a concrete case of AI-assisted development, optionally
// linked to a project.
type AIInsight struct {
	InsightID        string         `json:"insightID"`
	ProjectID        string         `json:"projectID,omitempty"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Type             InsightType    `json:"type"`
	AITools          []string       `json:"aiTools"`
	ImpactPercentage int            `json:"impactPercentage,omitempty"` // 0-100
	CodeSnippet      string         `json:"codeSnippet,omitempty"`
	BeforeCode       string         `json:"beforeCode,omitempty"`
	AfterCode        string         `json:"afterCode,omitempty"`
	TimeSaved        int            `json:"timeSaved,omitempty"` // minutes
	Tags             []string       `json:"tags"`
	IsPublic         bool           `json:"isPublic"`
	Metrics          InsightMetrics `json:"metrics"`
	Timestamps
}
