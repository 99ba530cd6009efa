package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"helpbridge/internal"
	"helpbridge/internal/moderation"
	"helpbridge/internal/moderation/mocks"
	"helpbridge/pkg/types"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	adminActor  = &moderation.Actor{ID: "admin-1", Email: "admin@example.com", Name: "admin"}
	memberActor = &moderation.Actor{ID: "member-1", Email: "member@example.com"}
)

type testDeps struct {
	roles    *mocks.MockRoleRegistry
	requests *mocks.MockRequestStore
	users    *mocks.MockUserDirectory
}

type staticCategories []*types.CategoryInfo

func (c staticCategories) Categories(context.Context) ([]*types.CategoryInfo, error) {
	return c, nil
}

func newTestService(t *testing.T) (*Service, testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		roles:    mocks.NewMockRoleRegistry(ctrl),
		requests: mocks.NewMockRequestStore(ctrl),
		users:    mocks.NewMockUserDirectory(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	templates, err := loadTemplates()
	require.NoError(t, err)

	gate := moderation.NewGate(deps.roles, logger, time.Second)

	s := &Service{
		logger:     logger,
		config:     &types.Config{},
		templates:  templates,
		requests:   deps.requests,
		categories: staticCategories{{ID: types.CategoryBloodDonation, Label: "Blood Donation"}},
		gate:       gate,
		moderator:  moderation.NewRequestModerator(gate, deps.requests, nil, logger, time.Second),
		users:      moderation.NewUserManager(gate, deps.roles, deps.users, logger, time.Second),
	}

	return s, deps
}

func withActor(r *http.Request, actor *moderation.Actor) *http.Request {
	return r.WithContext(moderation.WithActor(r.Context(), actor))
}

func nextRecorder() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}), &called
}

func TestRequireAuthRedirectsAnonymousToLogin(t *testing.T) {
	s, _ := newTestService(t)
	next, called := nextRecorder()

	rec := httptest.NewRecorder()
	s.RequireAuth(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/users", nil))

	assert.False(t, *called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	var redirect *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == internal.COOKIE_REDIRECT_NAME {
			redirect = c
		}
	}
	require.NotNil(t, redirect)
	assert.Equal(t, "/admin/users", redirect.Value)
}

func TestRequireAdminDeniesNonAdmin(t *testing.T) {
	s, deps := newTestService(t)
	deps.roles.EXPECT().CheckRole(gomock.Any(), memberActor.ID, types.RoleAdmin).Return(false, nil)
	next, called := nextRecorder()

	rec := httptest.NewRecorder()
	s.RequireAdmin(next).ServeHTTP(rec, withActor(httptest.NewRequest(http.MethodGet, "/admin", nil), memberActor))

	assert.False(t, *called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/?error="))
}

func TestRequireAdminFailsClosedOnRoleCheckError(t *testing.T) {
	s, deps := newTestService(t)
	deps.roles.EXPECT().CheckRole(gomock.Any(), adminActor.ID, types.RoleAdmin).Return(false, errors.New("connection reset"))
	next, called := nextRecorder()

	rec := httptest.NewRecorder()
	s.RequireAdmin(next).ServeHTTP(rec, withActor(httptest.NewRequest(http.MethodGet, "/admin", nil), adminActor))

	assert.False(t, *called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	s, deps := newTestService(t)
	deps.roles.EXPECT().CheckRole(gomock.Any(), adminActor.ID, types.RoleAdmin).Return(true, nil)

	var flagged bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flagged, _ = r.Context().Value(contextKeyIsAdmin).(bool)
	})

	rec := httptest.NewRecorder()
	s.RequireAdmin(next).ServeHTTP(rec, withActor(httptest.NewRequest(http.MethodGet, "/admin", nil), adminActor))

	assert.True(t, flagged)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyActionRedirectsBackWithNotice(t *testing.T) {
	s, deps := newTestService(t)
	deps.roles.EXPECT().CheckRole(gomock.Any(), adminActor.ID, types.RoleAdmin).Return(true, nil).AnyTimes()
	deps.requests.EXPECT().UpdateRequest(gomock.Any(), "req-1", gomock.Any()).Return(nil)
	deps.requests.EXPECT().QueryRequests(gomock.Any(), types.RequestViewAdmin, types.FilterSpec{}).Return(nil, nil)

	form := url.Values{"return_to": {"/admin?status=open&notice=old"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/requests/req-1/verify", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("id", "req-1")

	rec := httptest.NewRecorder()
	s.handleVerifyRequest(rec, withActor(req, adminActor))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/admin", location.Path)
	assert.Equal(t, "open", location.Query().Get("status"))
	assert.Equal(t, "Request verified successfully", location.Query().Get("notice"))
	assert.Empty(t, location.Query().Get("error"))
}

func TestAddRoleDuplicateRedirectsWithError(t *testing.T) {
	s, deps := newTestService(t)
	deps.roles.EXPECT().CheckRole(gomock.Any(), adminActor.ID, types.RoleAdmin).Return(true, nil).AnyTimes()
	deps.roles.EXPECT().InsertRoleGrant(gomock.Any(), "user-9", types.RoleModerator).Return(types.ErrDuplicateRole)

	form := url.Values{"role": {"moderator"}}
	req := httptest.NewRequest(http.MethodPost, "/admin/users/user-9/roles", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetPathValue("userID", "user-9")

	rec := httptest.NewRecorder()
	s.handleAddRole(rec, withActor(req, adminActor))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/admin/users", location.Path)
	assert.Equal(t, "User already has this role", location.Query().Get("error"))
}

func TestReturnToStaysInsideAdmin(t *testing.T) {
	tests := map[string]string{
		"":                       "/admin",
		"/admin?status=closed":   "/admin?status=closed",
		"/admin/users?q=pune":    "/admin/users?q=pune",
		"https://evil.example/x": "/admin",
		"//evil.example/admin":   "/admin",
		"/browse?category=blood": "/admin",
	}

	for input, want := range tests {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(url.Values{"return_to": {input}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		assert.Equal(t, want, returnTo(req, "/admin"), input)
	}
}

func TestAdminRequestsPageRendersFilteredRows(t *testing.T) {
	s, deps := newTestService(t)
	deps.roles.EXPECT().CheckRole(gomock.Any(), adminActor.ID, types.RoleAdmin).Return(true, nil).AnyTimes()

	pune := "Pune"
	requester := "Asha"
	rows := []*types.RequestListing{
		{HelpRequest: types.HelpRequest{ID: "r1", Title: "Need blood donor urgently", Category: types.CategoryBloodDonation, Urgency: types.UrgencyCritical, Status: types.RequestStatusOpen, City: &pune}, RequesterName: &requester},
		{HelpRequest: types.HelpRequest{ID: "r2", Title: "Need groceries", Category: types.CategoryFoodGrocery, Urgency: types.UrgencyNormal, Status: types.RequestStatusClosed}},
	}
	deps.requests.EXPECT().QueryRequests(gomock.Any(), types.RequestViewAdmin, types.FilterSpec{}).Return(rows, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin?q=blood", nil)
	rec := httptest.NewRecorder()
	s.handleAdminRequests(rec, withActor(req, adminActor))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Need blood donor urgently")
	assert.NotContains(t, body, "Need groceries")
	assert.Contains(t, body, "/admin/requests/r1/verify")
}

func TestBrowseRejectsInvalidFilter(t *testing.T) {
	s, deps := newTestService(t)
	deps.requests.EXPECT().QueryRequests(gomock.Any(), types.RequestViewPublic, types.FilterSpec{}).Return(nil, nil)

	rec := httptest.NewRecorder()
	s.handleBrowse(rec, httptest.NewRequest(http.MethodGet, "/browse?urgency=whenever", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ignoring invalid urgency filter.")
}

func TestDecodeFilter(t *testing.T) {
	filter, err := decodeFilter(url.Values{
		"category": {"blood_donation"},
		"urgency":  {"all"},
		"city":     {" pune "},
		"q":        {"donor"},
		"verified": {"unverified"},
	})
	require.NoError(t, err)

	assert.Equal(t, types.FilterSpec{
		Category: types.CategoryBloodDonation,
		City:     "pune",
		Search:   "donor",
		Verified: types.VerifiedExcluded,
	}, filter)

	_, err = decodeFilter(url.Values{"status": {"archived"}})
	assert.Error(t, err)
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Food grocery", humanize(types.CategoryFoodGrocery))
	assert.Equal(t, "In progress", humanize(types.RequestStatusInProgress))
	assert.Equal(t, "", humanize(""))
}
