package models

import "time"

// BaseModel is gorm.Model without DeletedAt: rows are hard-deleted so the
// ON DELETE CASCADE constraints fire at the database level.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
