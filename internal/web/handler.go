package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"gymlog/workout-app/internal/api"
	"gymlog/workout-app/internal/service"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates for the Gin engine.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// PageHandler renders the browser pages. It is a pure consumer of the
// workout API's service layer and holds no business rules of its own.
type PageHandler struct {
	workoutService service.WorkoutService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(workoutService service.WorkoutService) *PageHandler {
	return &PageHandler{workoutService: workoutService}
}

// RegisterRoutes wires the page routes. The access gate upstream decides who
// may reach which page; handlers here can assume that decision was made.
func (h *PageHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.Landing)
	router.GET("/sign-in", h.SignIn)
	router.GET("/sign-up", h.SignUp)
	router.GET("/home", h.Home)
	router.GET("/workout", h.History)
	router.GET("/workout/add", h.AddWorkout)
}

func (h *PageHandler) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "landing.html", gin.H{"Title": "Workout Log"})
}

func (h *PageHandler) SignIn(c *gin.Context) {
	c.HTML(http.StatusOK, "sign_in.html", gin.H{"Title": "Sign In"})
}

func (h *PageHandler) SignUp(c *gin.Context) {
	c.HTML(http.StatusOK, "sign_up.html", gin.H{"Title": "Sign Up"})
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{"Title": "Home"})
}

func (h *PageHandler) AddWorkout(c *gin.Context) {
	c.HTML(http.StatusOK, "workout_add.html", gin.H{"Title": "Add Workout"})
}

// History renders the caller's workouts grouped by calendar date. A fetch
// failure renders the same empty state the user sees with no workouts; the
// detail goes to the server log only.
func (h *PageHandler) History(c *gin.Context) {
	ownerID := c.GetString(api.ContextUserIDKey)

	groups := []DateGroup{}
	if workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), ownerID); err != nil {
		log.Printf("ERROR: loading workout history for owner %s: %v", ownerID, err)
	} else {
		groups = GroupByDate(workouts)
	}

	c.HTML(http.StatusOK, "workout_history.html", gin.H{
		"Title":  "Workout History",
		"Groups": groups,
	})
}
