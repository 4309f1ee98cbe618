package api

import (
	"context"
	"testing"
	"time"

	"gymlog/workout-app/internal/domain"
	"gymlog/workout-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

// memWorkoutRepo is an in-memory WorkoutRepository for handler tests.
type memWorkoutRepo struct {
	workouts  []domain.Workout
	createErr error
	getErr    error
}

func (m *memWorkoutRepo) Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	if m.createErr != nil {
		return primitive.NilObjectID, m.createErr
	}
	workout.ID = primitive.NewObjectID()
	workout.CreatedAt = time.Now().UTC()
	m.workouts = append(m.workouts, *workout)
	return workout.ID, nil
}

func (m *memWorkoutRepo) GetByOwner(ctx context.Context, ownerID string) ([]domain.Workout, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result := []domain.Workout{}
	for _, w := range m.workouts {
		if w.OwnerID == ownerID {
			result = append(result, w)
		}
	}
	return result, nil
}

// stubAuthService satisfies service.AuthService where the test does not
// exercise the auth endpoints.
type stubAuthService struct{}

func (stubAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	return &domain.User{Name: name, Email: email}, nil
}

func (stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return "", nil, service.ErrAuthenticationFailed
}

// newTestRouter builds the full route table over an in-memory store.
func newTestRouter(t *testing.T, repo *memWorkoutRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	resolver := NewJWTSessionResolver(testSecret)
	SetupRoutes(router, resolver, stubAuthService{}, service.NewWorkoutService(repo), time.Hour)
	return router
}

// signTestToken issues a session token the way the auth service does.
func signTestToken(t *testing.T, userID string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"uid": userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}
