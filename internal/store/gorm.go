package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ayushraj/studydeck/internal/models"
)

// GormStore is the durable backend, running on sqlite for local use and
// postgres when DATABASE_URL is configured.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore runs migrations, seeds the default user and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.StudySession{},
		&models.PlannerItem{},
		&models.Flashcard{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	s := &GormStore{db: db}
	if err := s.seedDefaultUser(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *GormStore) seedDefaultUser() error {
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return wrapErr(err)
	}
	if count > 0 {
		return nil
	}
	user := models.User{Username: "student", Name: "Student", AppColor: "blue"}
	return wrapErr(s.db.Create(&user).Error)
}

// wrapErr maps gorm errors onto the store taxonomy: a missing row becomes
// ErrNotFound, anything else is treated as the backend being unreachable.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// User operations

func (s *GormStore) DefaultUser() (*models.User, error) {
	var user models.User
	if err := s.db.Order("id ASC").First(&user).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &user, nil
}

func (s *GormStore) UpdateUser(id uint, patch models.UserPatch) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.AppColor != nil {
		updates["app_color"] = *patch.AppColor
	}
	if patch.IsDarkMode != nil {
		updates["is_dark_mode"] = *patch.IsDarkMode
	}
	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, wrapErr(err)
		}
	}
	return &user, nil
}

// Subject operations

func (s *GormStore) Subjects() ([]models.Subject, error) {
	var subjects []models.Subject
	if err := s.db.Order("id ASC").Find(&subjects).Error; err != nil {
		return nil, wrapErr(err)
	}
	return subjects, nil
}

func (s *GormStore) Subject(id uint) (*models.Subject, error) {
	var subject models.Subject
	if err := s.db.First(&subject, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &subject, nil
}

func (s *GormStore) CreateSubject(subject *models.Subject) error {
	subject.ID = 0
	subject.TotalStudyTime = 0
	return wrapErr(s.db.Create(subject).Error)
}

func (s *GormStore) UpdateSubject(id uint, patch models.SubjectPatch) (*models.Subject, error) {
	var subject models.Subject
	if err := s.db.First(&subject, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.ColorClass != nil {
		updates["color_class"] = *patch.ColorClass
	}
	if len(updates) > 0 {
		if err := s.db.Model(&subject).Updates(updates).Error; err != nil {
			return nil, wrapErr(err)
		}
	}
	return &subject, nil
}

func (s *GormStore) DeleteSubject(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var subject models.Subject
		if err := tx.First(&subject, id).Error; err != nil {
			return err
		}
		// Dependents go first: sessions, planner items, flashcards.
		if err := tx.Where("subject_id = ?", id).Delete(&models.StudySession{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", id).Delete(&models.PlannerItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", id).Delete(&models.Flashcard{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Subject{}, id).Error
	})
	return wrapErr(err)
}

// AddStudyTime evaluates the arithmetic server-side so concurrent writers
// cannot lose updates to a stale read.
func (s *GormStore) AddStudyTime(id uint, delta int) error {
	res := s.db.Model(&models.Subject{}).
		Where("id = ?", id).
		UpdateColumn("total_study_time", gorm.Expr("total_study_time + ?", delta))
	if res.Error != nil {
		return wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) SubtractStudyTime(id uint, amount int) error {
	// CASE keeps the clamp portable between sqlite and postgres.
	res := s.db.Model(&models.Subject{}).
		Where("id = ?", id).
		UpdateColumn("total_study_time", gorm.Expr(
			"CASE WHEN total_study_time < ? THEN 0 ELSE total_study_time - ? END",
			amount, amount,
		))
	if res.Error != nil {
		return wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Study session operations

func (s *GormStore) Sessions() ([]models.StudySession, error) {
	var sessions []models.StudySession
	if err := s.db.Order("id ASC").Find(&sessions).Error; err != nil {
		return nil, wrapErr(err)
	}
	return sessions, nil
}

func (s *GormStore) Session(id uint) (*models.StudySession, error) {
	var session models.StudySession
	if err := s.db.First(&session, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &session, nil
}

func (s *GormStore) CreateSession(session *models.StudySession) error {
	session.ID = 0
	return wrapErr(s.db.Create(session).Error)
}

func (s *GormStore) UpdateSession(id uint, patch models.StudySessionPatch) (*models.StudySession, error) {
	var session models.StudySession
	if err := s.db.First(&session, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	updates := map[string]any{}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if patch.Duration != nil {
		updates["duration"] = *patch.Duration
	}
	if patch.Comments != nil {
		updates["comments"] = *patch.Comments
	}
	if len(updates) > 0 {
		if err := s.db.Model(&session).Updates(updates).Error; err != nil {
			return nil, wrapErr(err)
		}
	}
	return &session, nil
}

func (s *GormStore) DeleteSession(id uint) error {
	res := s.db.Delete(&models.StudySession{}, id)
	if res.Error != nil {
		return wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) SessionsBySubject(subjectID uint) ([]models.StudySession, error) {
	var sessions []models.StudySession
	err := s.db.Where("subject_id = ?", subjectID).Order("id ASC").Find(&sessions).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return sessions, nil
}

func (s *GormStore) SessionsInRange(from, to time.Time) ([]models.StudySession, error) {
	var sessions []models.StudySession
	err := s.db.Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return sessions, nil
}

// Planner item operations

func (s *GormStore) PlannerItems() ([]models.PlannerItem, error) {
	var items []models.PlannerItem
	if err := s.db.Order("id ASC").Find(&items).Error; err != nil {
		return nil, wrapErr(err)
	}
	return items, nil
}

func (s *GormStore) PlannerItem(id uint) (*models.PlannerItem, error) {
	var item models.PlannerItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &item, nil
}

func (s *GormStore) CreatePlannerItem(item *models.PlannerItem) error {
	item.ID = 0
	return wrapErr(s.db.Create(item).Error)
}

func (s *GormStore) UpdatePlannerItem(id uint, patch models.PlannerItemPatch) (*models.PlannerItem, error) {
	var item models.PlannerItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	updates := map[string]any{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if patch.IsCompleted != nil {
		updates["is_completed"] = *patch.IsCompleted
	}
	if patch.SubjectID != nil {
		updates["subject_id"] = *patch.SubjectID
	}
	if len(updates) > 0 {
		if err := s.db.Model(&item).Updates(updates).Error; err != nil {
			return nil, wrapErr(err)
		}
	}
	return &item, nil
}

func (s *GormStore) DeletePlannerItem(id uint) error {
	res := s.db.Delete(&models.PlannerItem{}, id)
	if res.Error != nil {
		return wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Flashcard operations

func (s *GormStore) Flashcards() ([]models.Flashcard, error) {
	var cards []models.Flashcard
	if err := s.db.Order("id ASC").Find(&cards).Error; err != nil {
		return nil, wrapErr(err)
	}
	return cards, nil
}

func (s *GormStore) Flashcard(id uint) (*models.Flashcard, error) {
	var card models.Flashcard
	if err := s.db.First(&card, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &card, nil
}

func (s *GormStore) FlashcardsBySubject(subjectID uint) ([]models.Flashcard, error) {
	var cards []models.Flashcard
	err := s.db.Where("subject_id = ?", subjectID).Order("id ASC").Find(&cards).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return cards, nil
}

func (s *GormStore) CreateFlashcard(card *models.Flashcard) error {
	card.ID = 0
	return wrapErr(s.db.Create(card).Error)
}

func (s *GormStore) UpdateFlashcard(id uint, patch models.FlashcardPatch) (*models.Flashcard, error) {
	var card models.Flashcard
	if err := s.db.First(&card, id).Error; err != nil {
		return nil, wrapErr(err)
	}
	updates := map[string]any{}
	if patch.Question != nil {
		updates["question"] = *patch.Question
	}
	if patch.Answer != nil {
		updates["answer"] = *patch.Answer
	}
	if patch.SubjectID != nil {
		updates["subject_id"] = *patch.SubjectID
	}
	if len(updates) > 0 {
		if err := s.db.Model(&card).Updates(updates).Error; err != nil {
			return nil, wrapErr(err)
		}
	}
	return &card, nil
}

func (s *GormStore) DeleteFlashcard(id uint) error {
	res := s.db.Delete(&models.Flashcard{}, id)
	if res.Error != nil {
		return wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
