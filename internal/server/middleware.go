package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"helpbridge/internal"
	"helpbridge/internal/moderation"

	"github.com/lestrrat-go/jwx/v3/jwt"
	"github.com/sirupsen/logrus"
)

type contextKey string

const contextKeyIsAdmin contextKey = "is_admin"

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

// LoadActor resolves the access token cookie, when present, into an actor on
// the request context. Requests without a valid token continue anonymously.
func (s *Service) LoadActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(internal.COOKIE_ACCESS_TOKEN_NAME)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		var accessToken string
		err = s.cookie.Decode(internal.COOKIE_ACCESS_TOKEN_NAME, cookie.Value, &accessToken)
		if err != nil {
			s.logger.WithError(err).Warn("failed to decrypt access token")
			s.clearAccessTokenCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		actor, err := s.parseAccessToken(r.Context(), accessToken)
		if err != nil {
			s.logger.WithError(err).Info("discarding invalid access token")
			s.clearAccessTokenCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		s.logger.WithFields(logrus.Fields{
			"user_id": actor.ID,
			"email":   actor.Email,
		}).Debug("authenticated user")

		next.ServeHTTP(w, r.WithContext(moderation.WithActor(r.Context(), actor)))
	})
}

// parseAccessToken validates a Cognito access token against the cached JWKS
// and returns the actor it identifies.
func (s *Service) parseAccessToken(ctx context.Context, accessToken string) (*moderation.Actor, error) {
	set, err := s.jwksCache.Lookup(ctx, s.jwksURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch JWKS: %w", err)
	}

	token, err := jwt.Parse(
		[]byte(accessToken),
		jwt.WithKeySet(set),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JWT: %w", err)
	}

	userID, ok := token.Subject()
	if !ok || userID == "" {
		return nil, fmt.Errorf("no user ID in JWT subject claim")
	}

	actor := &moderation.Actor{ID: userID}

	// email and username are optional claims
	_ = token.Get("email", &actor.Email)
	_ = token.Get("username", &actor.Name)

	return actor, nil
}

// RequireAuth sends anonymous visitors to the login page, remembering where
// they were headed.
func (s *Service) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !moderation.ActorFromContext(r.Context()).Authenticated() {
			s.setRedirectCookie(w, r.URL.Path, time.Minute*5)
			s.redirectToLogin(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin lets a request through only when the role check positively
// confirms the admin role. Any other outcome, including a failed check, sends
// the visitor back to the home page.
func (s *Service) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := moderation.ActorFromContext(r.Context())

		if !s.gate.IsAdmin(r.Context(), actor) {
			v := url.Values{}
			v.Set("error", "You don't have permission to access this page")
			http.Redirect(w, r, "/?"+v.Encode(), http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyIsAdmin, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		// Only strip if path is not root and has trailing slash
		if path != "/" && strings.HasSuffix(path, "/") {
			newPath := strings.TrimSuffix(path, "/")
			newURL := *r.URL
			newURL.Path = newPath

			http.Redirect(w, r, newURL.String(), http.StatusMovedPermanently)
			return
		}

		next.ServeHTTP(w, r)
	})
}
