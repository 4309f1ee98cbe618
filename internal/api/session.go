package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// SessionCookieName is the cookie carrying the session token for browser
// flows. API callers may send the same token as a Bearer header instead.
const SessionCookieName = "workout_session"

// SessionResolver resolves a caller's identity from an incoming request.
// A failed resolution (no credential, bad signature, expired token) returns
// ok=false; the access gate decides what to do with that.
type SessionResolver interface {
	Resolve(r *http.Request) (identity string, ok bool)
}

// sessionClaims defines the structure we expect in the JWT payload,
// mirroring what the auth service signs.
type sessionClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// jwtSessionResolver validates HS256 session tokens issued by the auth
// service. It is the only adapter the access gate knows about; swapping the
// identity provider means swapping this type.
type jwtSessionResolver struct {
	secret string
}

// NewJWTSessionResolver creates a SessionResolver over signed JWTs.
func NewJWTSessionResolver(secret string) SessionResolver {
	return &jwtSessionResolver{secret: secret}
}

func (j *jwtSessionResolver) Resolve(r *http.Request) (string, bool) {
	tokenString := tokenFromRequest(r)
	if tokenString == "" {
		return "", false
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secret), nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", false
	}

	return claims.UserID, true
}

// tokenFromRequest looks for the session token in the Authorization header
// first, then in the session cookie.
func tokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
