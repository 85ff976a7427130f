package store

import (
	"sort"
	"sync"
	"time"

	"github.com/ayushraj/studydeck/internal/models"
)

// MemStore is the volatile fallback backend. Everything lives in process
// memory and is lost on exit. Safe for concurrent use.
type MemStore struct {
	mu sync.RWMutex

	users        map[uint]models.User
	subjects     map[uint]models.Subject
	sessions     map[uint]models.StudySession
	plannerItems map[uint]models.PlannerItem
	flashcards   map[uint]models.Flashcard

	nextUserID    uint
	nextSubjectID uint
	nextSessionID uint
	nextPlannerID uint
	nextCardID    uint
}

// NewMemStore returns an empty in-memory store seeded with the default user.
func NewMemStore() *MemStore {
	m := &MemStore{
		users:         make(map[uint]models.User),
		subjects:      make(map[uint]models.Subject),
		sessions:      make(map[uint]models.StudySession),
		plannerItems:  make(map[uint]models.PlannerItem),
		flashcards:    make(map[uint]models.Flashcard),
		nextUserID:    1,
		nextSubjectID: 1,
		nextSessionID: 1,
		nextPlannerID: 1,
		nextCardID:    1,
	}
	m.users[m.nextUserID] = models.User{
		ID:       m.nextUserID,
		Username: "student",
		Name:     "Student",
		AppColor: "blue",
	}
	m.nextUserID++
	return m
}

// User operations

func (m *MemStore) DefaultUser() (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[1]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *MemStore) UpdateUser(id uint, patch models.UserPatch) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.AppColor != nil {
		u.AppColor = *patch.AppColor
	}
	if patch.IsDarkMode != nil {
		u.IsDarkMode = *patch.IsDarkMode
	}
	m.users[id] = u
	return &u, nil
}

// Subject operations

func (m *MemStore) Subjects() ([]models.Subject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Subject, 0, len(m.subjects))
	for _, s := range m.subjects {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStore) Subject(id uint) (*models.Subject, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.subjects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemStore) CreateSubject(s *models.Subject) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = m.nextSubjectID
	m.nextSubjectID++
	s.TotalStudyTime = 0
	if s.ColorClass == "" {
		s.ColorClass = "border-blue-500"
	}
	m.subjects[s.ID] = *s
	return nil
}

func (m *MemStore) UpdateSubject(id uint, patch models.SubjectPatch) (*models.Subject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.subjects[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Description != nil {
		s.Description = *patch.Description
	}
	if patch.ColorClass != nil {
		s.ColorClass = *patch.ColorClass
	}
	m.subjects[id] = s
	return &s, nil
}

func (m *MemStore) DeleteSubject(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.subjects[id]; !ok {
		return ErrNotFound
	}
	// Dependents go first: sessions, planner items, flashcards.
	for sid, sess := range m.sessions {
		if sess.SubjectID == id {
			delete(m.sessions, sid)
		}
	}
	for pid, item := range m.plannerItems {
		if item.SubjectID != nil && *item.SubjectID == id {
			delete(m.plannerItems, pid)
		}
	}
	for fid, card := range m.flashcards {
		if card.SubjectID == id {
			delete(m.flashcards, fid)
		}
	}
	delete(m.subjects, id)
	return nil
}

func (m *MemStore) AddStudyTime(id uint, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.subjects[id]
	if !ok {
		return ErrNotFound
	}
	s.TotalStudyTime += delta
	m.subjects[id] = s
	return nil
}

func (m *MemStore) SubtractStudyTime(id uint, amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.subjects[id]
	if !ok {
		return ErrNotFound
	}
	s.TotalStudyTime -= amount
	if s.TotalStudyTime < 0 {
		s.TotalStudyTime = 0
	}
	m.subjects[id] = s
	return nil
}

// Study session operations

func (m *MemStore) Sessions() ([]models.StudySession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.StudySession, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStore) Session(id uint) (*models.StudySession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *MemStore) CreateSession(s *models.StudySession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = m.nextSessionID
	m.nextSessionID++
	m.sessions[s.ID] = *s
	return nil
}

func (m *MemStore) UpdateSession(id uint, patch models.StudySessionPatch) (*models.StudySession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Date != nil {
		s.Date = *patch.Date
	}
	if patch.Duration != nil {
		s.Duration = *patch.Duration
	}
	if patch.Comments != nil {
		s.Comments = patch.Comments
	}
	m.sessions[id] = s
	return &s, nil
}

func (m *MemStore) DeleteSession(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *MemStore) SessionsBySubject(subjectID uint) ([]models.StudySession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.StudySession
	for _, s := range m.sessions {
		if s.SubjectID == subjectID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStore) SessionsInRange(from, to time.Time) ([]models.StudySession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.StudySession
	for _, s := range m.sessions {
		if !s.Date.Before(from) && !s.Date.After(to) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// Planner item operations

func (m *MemStore) PlannerItems() ([]models.PlannerItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.PlannerItem, 0, len(m.plannerItems))
	for _, p := range m.plannerItems {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStore) PlannerItem(id uint) (*models.PlannerItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.plannerItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *MemStore) CreatePlannerItem(p *models.PlannerItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.nextPlannerID
	m.nextPlannerID++
	m.plannerItems[p.ID] = *p
	return nil
}

func (m *MemStore) UpdatePlannerItem(id uint, patch models.PlannerItemPatch) (*models.PlannerItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.plannerItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Date != nil {
		p.Date = *patch.Date
	}
	if patch.IsCompleted != nil {
		p.IsCompleted = *patch.IsCompleted
	}
	if patch.SubjectID != nil {
		p.SubjectID = patch.SubjectID
	}
	m.plannerItems[id] = p
	return &p, nil
}

func (m *MemStore) DeletePlannerItem(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plannerItems[id]; !ok {
		return ErrNotFound
	}
	delete(m.plannerItems, id)
	return nil
}

// Flashcard operations

func (m *MemStore) Flashcards() ([]models.Flashcard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Flashcard, 0, len(m.flashcards))
	for _, f := range m.flashcards {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStore) Flashcard(id uint) (*models.Flashcard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.flashcards[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &f, nil
}

func (m *MemStore) FlashcardsBySubject(subjectID uint) ([]models.Flashcard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Flashcard
	for _, f := range m.flashcards {
		if f.SubjectID == subjectID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemStore) CreateFlashcard(f *models.Flashcard) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f.ID = m.nextCardID
	m.nextCardID++
	m.flashcards[f.ID] = *f
	return nil
}

func (m *MemStore) UpdateFlashcard(id uint, patch models.FlashcardPatch) (*models.Flashcard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.flashcards[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Question != nil {
		f.Question = *patch.Question
	}
	if patch.Answer != nil {
		f.Answer = *patch.Answer
	}
	if patch.SubjectID != nil {
		f.SubjectID = *patch.SubjectID
	}
	m.flashcards[id] = f
	return &f, nil
}

func (m *MemStore) DeleteFlashcard(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.flashcards[id]; !ok {
		return ErrNotFound
	}
	delete(m.flashcards, id)
	return nil
}
