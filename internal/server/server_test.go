package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayushraj/studydeck/internal/models"
	"github.com/ayushraj/studydeck/internal/store"
)

func newTestApp() *fiber.App {
	return New(store.NewMemStore()).App()
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createSubject(t *testing.T, app *fiber.App, name string) models.Subject {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/subjects", fiber.Map{"name": name})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[models.Subject](t, resp)
}

func fetchSubjects(t *testing.T, app *fiber.App) []models.Subject {
	t.Helper()
	resp := doJSON(t, app, http.MethodGet, "/api/subjects", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeBody[[]models.Subject](t, resp)
}

func TestSubjectCRUD(t *testing.T) {
	app := newTestApp()

	created := createSubject(t, app, "Mathematics")
	assert.Equal(t, 0, created.TotalStudyTime)

	resp := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/subjects/%d", created.ID),
		fiber.Map{"description": "Algebra and Calculus"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	patched := decodeBody[models.Subject](t, resp)
	assert.Equal(t, "Mathematics", patched.Name)
	assert.Equal(t, "Algebra and Calculus", patched.Description)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/subjects/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	assert.Empty(t, fetchSubjects(t, app))
}

func TestSubjectValidation(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/subjects", fiber.Map{"description": "nameless"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	created := createSubject(t, app, "Physics")
	resp = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/subjects/%d", created.ID),
		fiber.Map{"name": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPatch, "/api/subjects/999", fiber.Map{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessionLifecycleKeepsSubjectTotal(t *testing.T) {
	app := newTestApp()
	math := createSubject(t, app, "Mathematics")

	resp := doJSON(t, app, http.MethodPost, "/api/study-sessions", fiber.Map{
		"subjectId": math.ID,
		"duration":  300,
		"date":      time.Now().Format(time.RFC3339),
		"comments":  "intro",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	session := decodeBody[models.StudySession](t, resp)

	assert.Equal(t, 300, fetchSubjects(t, app)[0].TotalStudyTime)

	resp = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/study-sessions/%d", session.ID),
		fiber.Map{"duration": 120})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 120, fetchSubjects(t, app)[0].TotalStudyTime)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/study-sessions/%d", session.ID), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, fetchSubjects(t, app)[0].TotalStudyTime)

	resp = doJSON(t, app, http.MethodGet, "/api/study-sessions", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]models.StudySession](t, resp))
}

func TestSessionValidation(t *testing.T) {
	app := newTestApp()
	math := createSubject(t, app, "Mathematics")

	cases := []struct {
		name string
		body fiber.Map
	}{
		{"missing subject", fiber.Map{"duration": 300}},
		{"zero duration", fiber.Map{"subjectId": math.ID, "duration": 0}},
		{"negative duration", fiber.Map{"subjectId": math.ID, "duration": -10}},
		{"unknown subject", fiber.Map{"subjectId": 999, "duration": 300}},
		{"bad date", fiber.Map{"subjectId": math.ID, "duration": 300, "date": "yesterday"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/api/study-sessions", tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	// No partial writes happened
	assert.Equal(t, 0, fetchSubjects(t, app)[0].TotalStudyTime)
}

func TestUpdateUnknownSessionReturns404(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, http.MethodPatch, "/api/study-sessions/42", fiber.Map{"duration": 60})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteSessionIsIdempotent(t *testing.T) {
	app := newTestApp()

	// Unknown ids delete as a no-op, twice over
	resp := doJSON(t, app, http.MethodDelete, "/api/study-sessions/42", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = doJSON(t, app, http.MethodDelete, "/api/study-sessions/42", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestSubjectDeleteCascades(t *testing.T) {
	app := newTestApp()
	math := createSubject(t, app, "Mathematics")

	for i := 0; i < 3; i++ {
		resp := doJSON(t, app, http.MethodPost, "/api/study-sessions", fiber.Map{
			"subjectId": math.ID, "duration": 60,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	resp := doJSON(t, app, http.MethodPost, "/api/flashcards", fiber.Map{
		"question": "What is the quadratic formula?",
		"answer":   "x = (-b ± √(b² - 4ac)) / 2a",
		"subjectId": math.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/api/planner", fiber.Map{
		"title":     "Complete Math Homework",
		"date":      time.Now().Format(time.RFC3339),
		"subjectId": math.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/subjects/%d", math.ID), nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/study-sessions?subjectId=%d", math.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]models.StudySession](t, resp))

	resp = doJSON(t, app, http.MethodGet, "/api/flashcards", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]models.Flashcard](t, resp))

	resp = doJSON(t, app, http.MethodGet, "/api/planner", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]models.PlannerItem](t, resp))
}

func TestFlashcardRequiresExistingSubject(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/flashcards", fiber.Map{
		"question": "q", "answer": "a", "subjectId": 999,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserEndpoints(t *testing.T) {
	app := newTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/user", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := decodeBody[models.User](t, resp)
	assert.False(t, user.IsDarkMode)

	resp = doJSON(t, app, http.MethodPatch, "/api/user", fiber.Map{"isDarkMode": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[models.User](t, resp)
	assert.True(t, updated.IsDarkMode)
}
