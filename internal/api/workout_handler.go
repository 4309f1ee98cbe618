package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"gymlog/workout-app/internal/domain"
	"gymlog/workout-app/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs for API (Data Transfer Objects) ---

// ExerciseInput is one exercise row in a submission.
type ExerciseInput struct {
	Name     string  `json:"name"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	Duration float64 `json:"duration"`
}

// CreateWorkoutRequest defines the expected JSON for logging a workout.
// The owner is never part of the body; it comes from the session.
type CreateWorkoutRequest struct {
	Exercises []ExerciseInput `json:"exercises"`
	Notes     string          `json:"notes"`
	Date      string          `json:"date"` // "2006-01-02" or RFC 3339; empty means "now"
}

// WorkoutResponse is the DTO for returning a stored workout record.
type WorkoutResponse struct {
	ID        string            `json:"id"`
	OwnerID   string            `json:"ownerId"`
	Date      time.Time         `json:"date"`
	Exercises []domain.Exercise `json:"exercises"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// MapWorkoutToResponse converts a domain.Workout to a WorkoutResponse DTO.
func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}
	return WorkoutResponse{
		ID:        w.ID.Hex(),
		OwnerID:   w.OwnerID,
		Date:      w.Date,
		Exercises: w.Exercises,
		Notes:     w.Notes,
		CreatedAt: w.CreatedAt,
	}
}

// MapWorkoutsToResponse converts a slice of domain.Workout to response DTOs.
// Always returns a non-nil slice so an empty history serializes as [].
func MapWorkoutsToResponse(workouts []domain.Workout) []WorkoutResponse {
	responses := make([]WorkoutResponse, len(workouts))
	for i, w := range workouts {
		responses[i] = MapWorkoutToResponse(&w)
	}
	return responses
}

// --- Handler Methods ---

// CreateWorkout handles POST /api/workout.
// Responses: 201 {message}, 400 {error} on invalid payload, 500 {error} on
// storage failure.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify caller from session")
		return
	}

	date, err := parseWorkoutDate(req.Date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	exercises := make([]domain.Exercise, len(req.Exercises))
	for i, ex := range req.Exercises {
		exercises[i] = domain.Exercise{
			Name:     ex.Name,
			Sets:     ex.Sets,
			Reps:     ex.Reps,
			Weight:   ex.Weight,
			Duration: ex.Duration,
		}
	}

	_, err = h.workoutService.LogWorkout(c.Request.Context(), ownerID, exercises, req.Notes, date)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		// Storage detail stays in the server log; the client gets a generic
		// message.
		log.Printf("ERROR: saving workout for owner %s: %v", ownerID, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to save workout")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Workout saved successfully"})
}

// ListWorkouts handles GET /api/workout. Returns the caller's records in
// storage order; any date grouping happens in the presentation layer.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	ownerID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify caller from session")
		return
	}

	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), ownerID)
	if err != nil {
		log.Printf("ERROR: fetching workouts for owner %s: %v", ownerID, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch workouts")
		return
	}

	c.JSON(http.StatusOK, MapWorkoutsToResponse(workouts))
}

// parseWorkoutDate accepts the browser form's plain date or a full RFC 3339
// timestamp. An empty string means "use submission time".
func parseWorkoutDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", raw)
}
