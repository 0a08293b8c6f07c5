package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/feedboard-dev/feedboard/internal/domain"
	jwt_internal "github.com/feedboard-dev/feedboard/internal/jwt"
)

// Key to store the actor in the request context
type key int

const ActorKey key = 0

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth returns middleware that requires an authenticated actor
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := a.extractActor(r)
			if err != nil {
				http.Error(w, "Not authorized", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), ActorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth populates the actor if a valid token is present but
// lets anonymous requests through. Used on read routes where the
// visibility scope handles anonymous actors itself.
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := a.extractActor(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), ActorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext returns the request actor, anonymous if none was
// attached by the auth middleware.
func ActorFromContext(r *http.Request) domain.Actor {
	if actor, ok := r.Context().Value(ActorKey).(domain.Actor); ok {
		return actor
	}
	return domain.Anonymous()
}

// extractActor extracts and validates the actor from the JWT token.
// Cookie first (browser clients), then Authorization header.
func (a *Auth) extractActor(r *http.Request) (domain.Actor, error) {
	var tokenString string
	accessCookie, err := r.Cookie("accessToken")
	if err == nil {
		tokenString = accessCookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}

	if tokenString == "" {
		return domain.Anonymous(), errNoToken
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return domain.Anonymous(), err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Anonymous(), errInvalidClaims
	}

	uidFloat, ok := claims["uid"].(float64)
	if !ok {
		return domain.Anonymous(), errInvalidClaims
	}

	var roles []domain.Role
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, raw := range rawRoles {
			if name, ok := raw.(string); ok {
				roles = append(roles, domain.Role(name))
			}
		}
	}

	return domain.Actor{
		Id:            int64(uidFloat),
		Authenticated: true,
		Roles:         roles,
	}, nil
}

// Sentinel errors for extractActor
var (
	errNoToken       = errorString("no token")
	errInvalidClaims = errorString("invalid claims")
)

type errorString string

func (e errorString) Error() string { return string(e) }
