package models

// Flashcard represents a question/answer card belonging to a subject
type Flashcard struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Question  string `gorm:"not null" json:"question"`
	Answer    string `gorm:"not null" json:"answer"`
	SubjectID uint   `gorm:"not null;index" json:"subjectId"`
}

// FlashcardPatch lists the editable Flashcard fields
type FlashcardPatch struct {
	Question  *string `json:"question"`
	Answer    *string `json:"answer"`
	SubjectID *uint   `json:"subjectId"`
}
