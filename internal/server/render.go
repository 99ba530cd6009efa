package server

import (
	"net/http"

	"helpbridge/internal/moderation"
	"helpbridge/pkg/types"
)

func (s *Service) renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) error {
	if setter, ok := data.(types.NavbarDataSetter); ok {
		setter.SetNavbarData(s.navbarData(r))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return s.templates.ExecuteTemplate(w, templateName, data)
}

func (s *Service) navbarData(r *http.Request) types.NavbarData {
	actor := moderation.ActorFromContext(r.Context())
	if !actor.Authenticated() {
		return types.NavbarData{}
	}

	isAdmin, checked := r.Context().Value(contextKeyIsAdmin).(bool)
	if !checked {
		isAdmin = s.gate.IsAdmin(r.Context(), actor)
	}

	return types.NavbarData{
		IsAuthenticated: true,
		IsAdmin:         isAdmin,
		UserID:          actor.ID,
		UserEmail:       actor.Email,
		UserName:        actor.Name,
	}
}
