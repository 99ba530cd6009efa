package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"helpbridge/internal/moderation"
	"helpbridge/pkg/types"

	"github.com/sirupsen/logrus"
)

type AdminRequestsPageData struct {
	types.BasePageData
	Requests   []*types.RequestListing
	Stats      moderation.RequestStats
	Filters    types.FilterSpec
	Categories []types.HelpCategory
	Urgencies  []types.UrgencyLevel
	Statuses   []types.RequestStatus
	ReturnTo   string
}

type AdminUsersPageData struct {
	types.BasePageData
	Users    []*types.AdminUser
	Stats    moderation.UserStats
	Filters  types.UserFilter
	Roles    []types.AppRole
	ReturnTo string
}

type requestAction func(ctx context.Context, actor *moderation.Actor, requestID string) error

func (s *Service) handleAdminRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := moderation.ActorFromContext(ctx)

	data := &AdminRequestsPageData{
		BasePageData: types.BasePageData{
			Title:  "Admin: help requests",
			Notice: r.URL.Query().Get("notice"),
			Error:  r.URL.Query().Get("error"),
		},
		Categories: types.AllHelpCategories,
		Urgencies:  types.AllUrgencyLevels,
		Statuses:   types.AllRequestStatuses,
		ReturnTo:   r.URL.RequestURI(),
	}

	if err := s.moderator.Refresh(ctx, actor); err != nil {
		if errors.Is(err, moderation.ErrAuthorizationDenied) {
			s.redirectWithNotification(w, r, "/", moderation.Notify(moderation.ActionFetchRequests, err))
			return
		}
		s.logger.WithError(err).Error("failed to fetch admin requests")
		data.Error = moderation.Notify(moderation.ActionFetchRequests, err).Description
	}

	filter, err := decodeFilter(r.URL.Query())
	if err != nil {
		s.logger.WithError(err).Debug("invalid admin request filters")
		data.Error = filterErrorMessage(err)
		filter = types.FilterSpec{}
	}
	data.Filters = filter

	all := s.moderator.Requests()
	data.Stats = moderation.ComputeRequestStats(all)
	data.Requests = moderation.Filter(all, filter)

	if err := s.renderTemplate(w, r, "page.admin.requests", data); err != nil {
		s.logger.WithError(err).Error("failed to render admin requests page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleVerifyRequest(w http.ResponseWriter, r *http.Request) {
	s.moderateRequest(w, r, moderation.ActionVerify, s.moderator.Verify)
}

func (s *Service) handleUnverifyRequest(w http.ResponseWriter, r *http.Request) {
	s.moderateRequest(w, r, moderation.ActionUnverify, s.moderator.Unverify)
}

func (s *Service) handleCloseRequest(w http.ResponseWriter, r *http.Request) {
	s.moderateRequest(w, r, moderation.ActionUpdateStatus, s.moderator.Close)
}

func (s *Service) handleSetRequestStatus(w http.ResponseWriter, r *http.Request) {
	status := types.RequestStatus(strings.TrimSpace(r.FormValue("status")))

	s.moderateRequest(w, r, moderation.ActionUpdateStatus, func(ctx context.Context, actor *moderation.Actor, requestID string) error {
		return s.moderator.SetStatus(ctx, actor, requestID, status)
	})
}

func (s *Service) handleDeleteRequest(w http.ResponseWriter, r *http.Request) {
	s.moderateRequest(w, r, moderation.ActionDelete, s.moderator.Delete)
}

func (s *Service) moderateRequest(w http.ResponseWriter, r *http.Request, action moderation.Action, op requestAction) {
	ctx := r.Context()
	actor := moderation.ActorFromContext(ctx)
	requestID := strings.TrimSpace(r.PathValue("id"))

	err := op(ctx, actor, requestID)
	n := moderation.Notify(action, err)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"request_id": requestID,
			"action":     action,
		}).Warn("request moderation failed")
	}

	if errors.Is(err, moderation.ErrAuthorizationDenied) {
		s.redirectWithNotification(w, r, "/", n)
		return
	}

	s.redirectWithNotification(w, r, returnTo(r, "/admin"), n)
}

func (s *Service) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor := moderation.ActorFromContext(ctx)

	data := &AdminUsersPageData{
		BasePageData: types.BasePageData{
			Title:  "Admin: users",
			Notice: r.URL.Query().Get("notice"),
			Error:  r.URL.Query().Get("error"),
		},
		Roles:    types.AllAppRoles,
		ReturnTo: r.URL.RequestURI(),
	}

	if err := s.users.Refresh(ctx, actor); err != nil {
		if errors.Is(err, moderation.ErrAuthorizationDenied) {
			s.redirectWithNotification(w, r, "/", moderation.Notify(moderation.ActionFetchUsers, err))
			return
		}
		s.logger.WithError(err).Error("failed to fetch admin users")
		data.Error = moderation.Notify(moderation.ActionFetchUsers, err).Description
	}

	filter, err := decodeUserFilter(r.URL.Query())
	if err != nil {
		data.Error = filterErrorMessage(err)
		filter = types.UserFilter{}
	}
	data.Filters = filter

	all := s.users.Users()
	data.Stats = moderation.ComputeUserStats(all)
	data.Users = moderation.FilterUsers(all, filter)

	if err := s.renderTemplate(w, r, "page.admin.users", data); err != nil {
		s.logger.WithError(err).Error("failed to render admin users page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleAddRole(w http.ResponseWriter, r *http.Request) {
	role := types.AppRole(strings.TrimSpace(r.FormValue("role")))
	s.changeRole(w, r, moderation.ActionAddRole, role, s.users.AddRole)
}

func (s *Service) handleRemoveRole(w http.ResponseWriter, r *http.Request) {
	role := types.AppRole(strings.TrimSpace(r.PathValue("role")))
	s.changeRole(w, r, moderation.ActionRemoveRole, role, s.users.RemoveRole)
}

func (s *Service) changeRole(
	w http.ResponseWriter,
	r *http.Request,
	action moderation.Action,
	role types.AppRole,
	op func(ctx context.Context, actor *moderation.Actor, userID string, role types.AppRole) error,
) {
	ctx := r.Context()
	actor := moderation.ActorFromContext(ctx)
	userID := strings.TrimSpace(r.PathValue("userID"))

	err := op(ctx, actor, userID, role)
	n := moderation.Notify(action, err)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"user_id": userID,
			"role":    role,
			"action":  action,
		}).Warn("role change failed")
	}

	if errors.Is(err, moderation.ErrAuthorizationDenied) {
		s.redirectWithNotification(w, r, "/", n)
		return
	}

	s.redirectWithNotification(w, r, returnTo(r, "/admin/users"), n)
}
