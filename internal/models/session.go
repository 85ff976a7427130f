package models

import "time"

// StudySession represents a single recorded block of study time
type StudySession struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	SubjectID uint      `gorm:"not null;index" json:"subjectId"`
	Date      time.Time `gorm:"not null" json:"date"`
	Duration  int       `gorm:"not null" json:"duration"` // whole seconds
	Comments  *string   `json:"comments"`
}

// StudySessionPatch lists the editable StudySession fields. Nil means
// "leave unchanged". The owning subject cannot be reassigned after the fact.
type StudySessionPatch struct {
	Date     *time.Time `json:"date"`
	Duration *int       `json:"duration"`
	Comments *string    `json:"comments"`
}
