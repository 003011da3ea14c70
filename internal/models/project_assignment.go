package models

// ProjectAssignment links a user to a project with a free-form role label
// such as "developer" or "designer". The same user may be assigned to the
// same project more than once; there is deliberately no unique index on
// the (project_id, user_id) pair.
type ProjectAssignment struct {
	BaseModel

	ProjectID uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	Role      string `gorm:"not null"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
