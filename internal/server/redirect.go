package server

import (
	"net/http"
	"net/url"
	"strings"

	"helpbridge/internal/moderation"
)

func (s *Service) redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Service) redirectWithNotice(w http.ResponseWriter, r *http.Request, notice string) {
	v := url.Values{}
	v.Set("notice", notice)
	http.Redirect(w, r, "/?"+v.Encode(), http.StatusSeeOther)
}

// redirectWithNotification sends the admin back to target with the
// notification encoded as a notice or error query value.
func (s *Service) redirectWithNotification(w http.ResponseWriter, r *http.Request, target string, n moderation.Notification) {
	u, err := url.Parse(target)
	if err != nil {
		u = &url.URL{Path: "/admin"}
	}

	q := u.Query()
	q.Del("notice")
	q.Del("error")
	if n.Failed() {
		q.Set("error", n.Description)
	} else {
		q.Set("notice", n.Description)
	}
	u.RawQuery = q.Encode()

	http.Redirect(w, r, u.String(), http.StatusSeeOther)
}

// returnTo reads the return_to form value, only allowing paths inside the
// admin area.
func returnTo(r *http.Request, fallback string) string {
	target := strings.TrimSpace(r.FormValue("return_to"))
	if target == "" || strings.HasPrefix(target, "//") || !strings.HasPrefix(target, "/admin") {
		return fallback
	}
	return target
}
