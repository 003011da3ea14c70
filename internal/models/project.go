package models

type Project struct {
	BaseModel

	Title            string `gorm:"not null"`
	Description      string
	Status           string // free-form, e.g. "open", "in_progress"
	Technologies     string // comma-separated, see technologies.go
	RequiredTeamSize int    `gorm:"not null"`
	CreatedBy        uint   `gorm:"not null;index"`

	// Relationships
	Creator     User                `gorm:"foreignKey:CreatedBy;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Assignments []ProjectAssignment `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
