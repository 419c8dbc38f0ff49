package domain

// SkillCategory groups skills for display and stats.
type SkillCategory string

const (
	SkillFrontend SkillCategory = "frontend"
	SkillBackend  SkillCategory = "backend"
	SkillDatabase SkillCategory = "database"
	SkillDevops   SkillCategory = "devops"
	SkillTools    SkillCategory = "tools"
	SkillAI       SkillCategory = "ai"
	SkillOther    SkillCategory = "other"
)

// Skill is a single technology entry. IsActive hides a skill without deleting it.
type Skill struct {
	SkillID         string        `json:"skillID"`
	Name            string        `json:"name"`
	Category        SkillCategory `json:"category"`
	Level           int           `json:"level"` // 0-100
	Icon            string        `json:"icon,omitempty"`
	YearsExperience int           `json:"yearsExperience,omitempty"`
	Description     string        `json:"description,omitempty"`
	RelatedProjects []string      `json:"relatedProjects"`
	IsActive        bool          `json:"isActive"`
	Timestamps
}
