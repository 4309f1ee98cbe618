package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postWorkout(t *testing.T, router http.Handler, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/workout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func getWorkouts(t *testing.T, router http.Handler, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", "/api/workout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

const validSubmission = `{
	"exercises": [{"name": "Bench Press", "sets": 3, "reps": 10, "weight": 60, "duration": 0}],
	"notes": "felt strong",
	"date": "2024-03-01"
}`

func TestWorkoutEndToEnd(t *testing.T) {
	repo := &memWorkoutRepo{}
	router := newTestRouter(t, repo)
	token := signTestToken(t, "U1", time.Hour)

	rr := postWorkout(t, router, token, validSubmission)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "Workout saved successfully", created["message"])

	rr = getWorkouts(t, router, token)
	require.Equal(t, http.StatusOK, rr.Code)

	var listed []WorkoutResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	got := listed[0]
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "U1", got.OwnerID)
	assert.Equal(t, "felt strong", got.Notes)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got.Date.UTC())
	require.Len(t, got.Exercises, 1)
	assert.Equal(t, "Bench Press", got.Exercises[0].Name)
	assert.Equal(t, 3, got.Exercises[0].Sets)
	assert.Equal(t, 10, got.Exercises[0].Reps)
	assert.Equal(t, 60.0, got.Exercises[0].Weight)
	assert.Equal(t, 0.0, got.Exercises[0].Duration)
}

func TestCreateWorkout_EmptyExercisesRejected(t *testing.T) {
	repo := &memWorkoutRepo{}
	router := newTestRouter(t, repo)
	token := signTestToken(t, "U1", time.Hour)

	rr := postWorkout(t, router, token, `{"exercises": []}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])

	// A subsequent list shows no new record.
	rr = getWorkouts(t, router, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestCreateWorkout_InvalidExerciseRejected(t *testing.T) {
	router := newTestRouter(t, &memWorkoutRepo{})
	token := signTestToken(t, "U1", time.Hour)

	cases := map[string]string{
		"blank name":     `{"exercises": [{"name": "  ", "sets": 3, "reps": 10}]}`,
		"zero sets":      `{"exercises": [{"name": "Squat", "sets": 0, "reps": 10}]}`,
		"zero reps":      `{"exercises": [{"name": "Squat", "sets": 3, "reps": 0}]}`,
		"bad date":       `{"exercises": [{"name": "Squat", "sets": 3, "reps": 5}], "date": "March 1st"}`,
		"malformed json": `{"exercises": [`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rr := postWorkout(t, router, token, body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestCreateWorkout_OwnerComesFromSessionNotBody(t *testing.T) {
	repo := &memWorkoutRepo{}
	router := newTestRouter(t, repo)
	token := signTestToken(t, "U1", time.Hour)

	// A hostile body claiming another owner is ignored: ownerId is not a
	// recognized request field.
	body := `{
		"ownerId": "U2",
		"exercises": [{"name": "Bench Press", "sets": 3, "reps": 10}]
	}`
	rr := postWorkout(t, router, token, body)
	require.Equal(t, http.StatusCreated, rr.Code)

	require.Len(t, repo.workouts, 1)
	assert.Equal(t, "U1", repo.workouts[0].OwnerID)
}

func TestListWorkouts_NeverReturnsOtherOwnersRecords(t *testing.T) {
	repo := &memWorkoutRepo{}
	router := newTestRouter(t, repo)

	u1 := signTestToken(t, "U1", time.Hour)
	u2 := signTestToken(t, "U2", time.Hour)

	rr := postWorkout(t, router, u1, validSubmission)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = getWorkouts(t, router, u2)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestCreateWorkout_StorageFailureIsGeneric500(t *testing.T) {
	repo := &memWorkoutRepo{createErr: errors.New("primary stepped down at 10.0.0.12:27017")}
	router := newTestRouter(t, repo)
	token := signTestToken(t, "U1", time.Hour)

	rr := postWorkout(t, router, token, validSubmission)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Failed to save workout", body["error"])
	// Internal detail must not leak to the caller.
	assert.NotContains(t, rr.Body.String(), "10.0.0.12")
}

func TestListWorkouts_StorageFailureIsGeneric500(t *testing.T) {
	repo := &memWorkoutRepo{getErr: errors.New("cursor timeout")}
	router := newTestRouter(t, repo)
	token := signTestToken(t, "U1", time.Hour)

	rr := getWorkouts(t, router, token)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Failed to fetch workouts", body["error"])
}

func TestWorkoutEndpoints_RequireSession(t *testing.T) {
	repo := &memWorkoutRepo{}
	router := newTestRouter(t, repo)

	req := httptest.NewRequest("POST", "/api/workout", strings.NewReader(validSubmission))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, repo.workouts)

	req = httptest.NewRequest("GET", "/api/workout", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
