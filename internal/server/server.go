package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"
	"unicode"

	"helpbridge/internal/moderation"
	"helpbridge/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/securecookie"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS
var decoder = form.NewDecoder()
var validate = validator.New()

// CognitoAPI is the part of the Cognito client used for password login.
type CognitoAPI interface {
	InitiateAuth(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error)
}

type RequestReader interface {
	QueryRequests(ctx context.Context, view types.RequestView, filter types.FilterSpec) ([]*types.RequestListing, error)
}

type CategoryReader interface {
	Categories(ctx context.Context) ([]*types.CategoryInfo, error)
}

// IdentityStore creates the profile row for a user the first time they log in.
type IdentityStore interface {
	UpsertIdentity(ctx context.Context, userID, fullName string) error
}

type Service struct {
	logger    *logrus.Logger
	config    *types.Config
	templates *template.Template

	cognitoClient CognitoAPI
	cookie        *securecookie.SecureCookie

	jwksCache *jwk.Cache
	jwksURL   string

	requests   RequestReader
	categories CategoryReader
	identities IdentityStore

	gate      *moderation.Gate
	moderator *moderation.RequestModerator
	users     *moderation.UserManager

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	cognitoClient CognitoAPI,
	requests RequestReader,
	categories CategoryReader,
	identities IdentityStore,
	gate *moderation.Gate,
	moderator *moderation.RequestModerator,
	users *moderation.UserManager,
	jwkCache *jwk.Cache,
	jwksURL string,
) (*Service, error) {
	mux := flow.New()

	hashKey, err := base64.StdEncoding.DecodeString(config.CookieHashKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cookie hash key: %w", err)
	}
	blockKey, err := base64.StdEncoding.DecodeString(config.CookieBlockKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cookie block key: %w", err)
	}

	s := &Service{
		logger:        logger,
		config:        config,
		cognitoClient: cognitoClient,
		cookie:        securecookie.New(hashKey, blockKey),

		requests:   requests,
		categories: categories,
		identities: identities,

		gate:      gate,
		moderator: moderator,
		users:     users,

		jwksCache: jwkCache,
		jwksURL:   jwksURL,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)
	r.Use(s.LoadActor)

	r.HandleFunc("/", s.handleHome, http.MethodGet)
	r.HandleFunc("/browse", s.handleBrowse, http.MethodGet)

	r.HandleFunc("/login", s.handleGetLogin, http.MethodGet)
	r.HandleFunc("/login", s.handlePostLogin, http.MethodPost)
	r.HandleFunc("/logout", s.handlePostLogout, http.MethodPost)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireAuth)
		r.Use(s.RequireAdmin)

		r.HandleFunc("/admin", s.handleAdminRequests, http.MethodGet)
		r.HandleFunc("/admin/requests/:id/verify", s.handleVerifyRequest, http.MethodPost)
		r.HandleFunc("/admin/requests/:id/unverify", s.handleUnverifyRequest, http.MethodPost)
		r.HandleFunc("/admin/requests/:id/close", s.handleCloseRequest, http.MethodPost)
		r.HandleFunc("/admin/requests/:id/status", s.handleSetRequestStatus, http.MethodPost)
		r.HandleFunc("/admin/requests/:id/delete", s.handleDeleteRequest, http.MethodPost)

		r.HandleFunc("/admin/users", s.handleAdminUsers, http.MethodGet)
		r.HandleFunc("/admin/users/:userID/roles", s.handleAddRole, http.MethodPost)
		r.HandleFunc("/admin/users/:userID/roles/:role/delete", s.handleRemoveRole, http.MethodPost)
	})

	staticRoot, err := fs.Sub(uiFS, "static")
	if err != nil {
		s.logger.WithError(err).Fatal("failed to mount static assets")
	}
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"derefOr": func(s *string, defaultVal string) string {
			if s == nil || strings.TrimSpace(*s) == "" {
				return defaultVal
			}
			return *s
		},
		"humanize": humanize,
		"date": func(t *time.Time) string {
			if t == nil || t.IsZero() {
				return ""
			}
			return t.Format("Jan 2, 2006 15:04")
		},
		"day": func(t time.Time) string {
			return t.Format("Jan 2, 2006")
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}

// humanize turns enum values like "food_grocery" into "Food grocery".
func humanize(v any) string {
	s := strings.ReplaceAll(fmt.Sprint(v), "_", " ")
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
