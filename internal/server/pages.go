package server

import (
	"net/http"
	"strings"

	"helpbridge/internal/moderation"
	"helpbridge/pkg/types"
)

const (
	homeUrgentLimit = 3
	homeRecentLimit = 6
)

func (s *Service) handleHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requests, err := s.requests.QueryRequests(ctx, types.RequestViewPublic, types.FilterSpec{})
	if err != nil {
		s.logger.WithError(err).Error("failed to load requests for home page")
		s.internalServerError(w)
		return
	}

	categories, err := s.categories.Categories(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to load categories for home page")
		s.internalServerError(w)
		return
	}

	recent := requests
	if len(recent) > homeRecentLimit {
		recent = recent[:homeRecentLimit]
	}

	data := &types.HomePageData{
		BasePageData: types.BasePageData{
			Title:  "Community help, close to home",
			Notice: r.URL.Query().Get("notice"),
			Error:  r.URL.Query().Get("error"),
		},
		Urgent:     moderation.Urgent(requests, homeUrgentLimit),
		Recent:     recent,
		Categories: categories,
	}

	if err := s.renderTemplate(w, r, "page.home", data); err != nil {
		s.logger.WithError(err).Error("failed to render home page")
		s.internalServerError(w)
		return
	}
}

func (s *Service) handleBrowse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := &types.BrowsePageData{
		BasePageData: types.BasePageData{Title: "Browse requests"},
		Urgencies:    types.AllUrgencyLevels,
	}

	filter, err := decodeFilter(r.URL.Query())
	if err != nil {
		s.logger.WithError(err).Debug("invalid browse filters")
		data.Error = filterErrorMessage(err)
		filter = types.FilterSpec{}
	}

	// the public view only ever lists open requests
	filter.Status = ""
	filter.Verified = types.VerifiedAny
	data.Filters = filter

	requests, err := s.requests.QueryRequests(ctx, types.RequestViewPublic, filter)
	if err != nil {
		s.logger.WithError(err).Error("failed to load requests for browse page")
		s.internalServerError(w)
		return
	}
	data.Requests = moderation.Filter(requests, filter)

	data.Categories, err = s.categories.Categories(ctx)
	if err != nil {
		s.logger.WithError(err).Error("failed to load categories for browse page")
		s.internalServerError(w)
		return
	}

	if err := s.renderTemplate(w, r, "page.browse", data); err != nil {
		s.logger.WithError(err).Error("failed to render browse page")
		s.internalServerError(w)
		return
	}
}

func required(v string) bool {
	return strings.TrimSpace(v) != ""
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
