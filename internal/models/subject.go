package models

// Subject represents one area of study
type Subject struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	ColorClass  string `gorm:"default:border-blue-500" json:"colorClass"`

	// TotalStudyTime is the denormalized sum, in seconds, of the durations
	// of every study session referencing this subject. Maintained by the
	// ledger, never recomputed on read.
	TotalStudyTime int `gorm:"not null;default:0" json:"totalStudyTime"`

	// Relationships
	Sessions     []StudySession `gorm:"foreignKey:SubjectID" json:"-"`
	Flashcards   []Flashcard    `gorm:"foreignKey:SubjectID" json:"-"`
	PlannerItems []PlannerItem  `gorm:"foreignKey:SubjectID" json:"-"`
}

// SubjectPatch lists the directly editable Subject fields. Nil means
// "leave unchanged". TotalStudyTime is deliberately absent: it only moves
// through the aggregate operations.
type SubjectPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ColorClass  *string `json:"colorClass"`
}
