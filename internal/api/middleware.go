package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Constants for context keys
const (
	ContextUserIDKey = "userID"
)

// Route constants the gate redirects between.
const (
	SignInPath = "/sign-in"
	HomePath   = "/home"
)

// publicPages are the browser pages reachable without a session. They exist
// for unauthenticated visitors only; a signed-in caller is bounced to /home.
var publicPages = map[string]bool{
	"/":        true,
	"/sign-in": true,
	"/sign-up": true,
}

// publicEndpoints are API paths that must stay open so a visitor can obtain
// a session in the first place.
var publicEndpoints = map[string]bool{
	"/api/auth/register": true,
	"/api/auth/login":    true,
	"/ping":              true,
}

// gateDecision is the outcome of classifying one request.
type gateDecision int

const (
	decisionAllow gateDecision = iota
	decisionRedirectSignIn
	decisionRedirectHome
	decisionDeny
)

// classifyRequest is the access-control rule set as a pure function of the
// request path and whether a valid session was resolved.
func classifyRequest(path string, authenticated bool) gateDecision {
	if publicPages[path] {
		if authenticated {
			return decisionRedirectHome
		}
		return decisionAllow
	}
	if publicEndpoints[path] {
		return decisionAllow
	}
	if !authenticated {
		if strings.HasPrefix(path, "/api/") {
			// A redirect is meaningless to a non-browser caller.
			return decisionDeny
		}
		return decisionRedirectSignIn
	}
	return decisionAllow
}

// AccessGate classifies every inbound request as public or private and
// enforces the visibility rules before any handler runs. On a resolved
// session the caller's identity is stored in the request context for
// downstream handlers.
func AccessGate(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		// CORS preflights carry no credentials; let the cors middleware
		// answer them.
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		identity, authenticated := resolver.Resolve(c.Request)
		if authenticated {
			c.Set(ContextUserIDKey, identity)
		}

		switch classifyRequest(c.Request.URL.Path, authenticated) {
		case decisionRedirectHome:
			c.Redirect(http.StatusFound, HomePath)
			c.Abort()
		case decisionRedirectSignIn:
			c.Redirect(http.StatusFound, SignInPath)
			c.Abort()
		case decisionDeny:
			abortWithError(c, http.StatusUnauthorized, "Unauthorized")
		default:
			c.Next()
		}
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// Helper function to get User ID from context (used by handlers)
func getUserIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok {
		return "", errors.New("invalid user ID type in context")
	}
	return idStr, nil
}
