package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gymlog/workout-app/internal/domain"
	"gymlog/workout-app/internal/repository"
)

// --- Error Definitions ---
var (
	// ErrValidation covers any rejected submission payload. Handlers map it
	// to 400; the wrapped detail says which rule failed.
	ErrValidation = errors.New("invalid workout")
	// ErrMissingOwner indicates the caller's identity was not resolved. This
	// should never happen behind the access gate.
	ErrMissingOwner = errors.New("workout owner is required")
)

// WorkoutService defines the operations of the workout API: submit one
// record, list the caller's records. Records are never updated or deleted.
type WorkoutService interface {
	LogWorkout(ctx context.Context, ownerID string, exercises []domain.Exercise, notes string, date time.Time) (*domain.Workout, error)
	ListWorkouts(ctx context.Context, ownerID string) ([]domain.Workout, error)
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

// LogWorkout validates a submission and persists it for the given owner.
// The owner always comes from the authenticated session, never the payload.
func (s *workoutService) LogWorkout(ctx context.Context, ownerID string, exercises []domain.Exercise, notes string, date time.Time) (*domain.Workout, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}
	if err := validateExercises(exercises); err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now().UTC()
	}

	workout := &domain.Workout{
		OwnerID:   ownerID,
		Date:      date,
		Exercises: exercises,
		Notes:     notes,
	}

	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, err
	}
	workout.ID = workoutID

	return workout, nil
}

// ListWorkouts returns every record owned by ownerID in storage order.
func (s *workoutService) ListWorkouts(ctx context.Context, ownerID string) ([]domain.Workout, error) {
	if ownerID == "" {
		return nil, ErrMissingOwner
	}
	return s.workoutRepo.GetByOwner(ctx, ownerID)
}

// validateExercises enforces the exercise schema at the API boundary: at
// least one exercise, non-blank names, positive sets/reps, non-negative
// weight and duration.
func validateExercises(exercises []domain.Exercise) error {
	if len(exercises) == 0 {
		return fmt.Errorf("%w: at least one exercise is required", ErrValidation)
	}
	for i, ex := range exercises {
		if strings.TrimSpace(ex.Name) == "" {
			return fmt.Errorf("%w: exercise %d is missing a name", ErrValidation, i+1)
		}
		if ex.Sets < 1 {
			return fmt.Errorf("%w: exercise %q needs at least one set", ErrValidation, ex.Name)
		}
		if ex.Reps < 1 {
			return fmt.Errorf("%w: exercise %q needs at least one rep", ErrValidation, ex.Name)
		}
		if ex.Weight < 0 {
			return fmt.Errorf("%w: exercise %q has a negative weight", ErrValidation, ex.Name)
		}
		if ex.Duration < 0 {
			return fmt.Errorf("%w: exercise %q has a negative duration", ErrValidation, ex.Name)
		}
	}
	return nil
}
