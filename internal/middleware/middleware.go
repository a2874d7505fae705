package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"oncolearn/internal/logger"
	"oncolearn/internal/models"
	"oncolearn/internal/service"
)

type Middleware func(http.Handler) http.Handler

type contextKey string

const profileKey contextKey = "profile"

// ProfileFromContext returns the authenticated profile, or nil for an
// anonymous request.
func ProfileFromContext(ctx context.Context) *models.Profile {
	profile, _ := ctx.Value(profileKey).(*models.Profile)
	return profile
}

// WithProfile is exported for handler tests.
func WithProfile(ctx context.Context, profile *models.Profile) context.Context {
	return context.WithValue(ctx, profileKey, profile)
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"` + message + `"}`))
}

// Authenticate resolves a bearer token into a session profile. A request
// without a token passes through anonymous; a request with a bad token is
// rejected outright.
func Authenticate(auth service.AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeAuthError(w, "invalid authorization header")
				return
			}

			profile, err := auth.ParseAccessToken(parts[1])
			if err != nil {
				writeAuthError(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithProfile(r.Context(), profile)))
		})
	}
}

// Require gates a route on the authorization guard. The two deny outcomes map
// to different statuses: no session is 401 with the requested path echoed for
// the sign-in redirect, an insufficient role is 403.
func Require(level service.RequiredLevel) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state := service.SessionState{
				Resolved: true,
				Profile:  ProfileFromContext(r.Context()),
			}

			decision := service.Decide(state, level, r.URL.Path)
			switch decision.Kind {
			case service.DecisionAllow:
				next.ServeHTTP(w, r)
			case service.DecisionRedirectToSignIn:
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Return-To", decision.ReturnTo)
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"authentication required"}`))
			case service.DecisionAccessDenied:
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(`{"error":"access denied"}`))
			default:
				w.WriteHeader(http.StatusServiceUnavailable)
			}
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		logger.Log.Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
