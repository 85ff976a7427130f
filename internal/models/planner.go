package models

import "time"

// PlannerItem represents a planned task, optionally tied to a subject
type PlannerItem struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	IsCompleted bool      `gorm:"default:false" json:"isCompleted"`
	SubjectID   *uint     `gorm:"index" json:"subjectId"`
}

// PlannerItemPatch lists the editable PlannerItem fields
type PlannerItemPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	IsCompleted *bool      `json:"isCompleted"`
	SubjectID   *uint      `json:"subjectId"`
}
