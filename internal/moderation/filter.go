package moderation

import (
	"strings"

	"helpbridge/pkg/types"
)

// Filter returns the requests matching every predicate present in filter, in
// their original order. It never re-sorts and never mutates its input.
func Filter(requests []*types.RequestListing, filter types.FilterSpec) []*types.RequestListing {
	filter = filter.Normalize()

	out := make([]*types.RequestListing, 0, len(requests))
	for _, r := range requests {
		if Matches(r, filter) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether a single request satisfies filter.
func Matches(r *types.RequestListing, filter types.FilterSpec) bool {
	if filter.Category != "" && r.Category != filter.Category {
		return false
	}
	if filter.Urgency != "" && r.Urgency != filter.Urgency {
		return false
	}
	if filter.Status != "" && r.Status != filter.Status {
		return false
	}

	if filter.City != "" {
		if r.City == nil || !containsFold(*r.City, filter.City) {
			return false
		}
	}

	switch filter.Verified {
	case types.VerifiedOnly:
		if !r.IsVerified {
			return false
		}
	case types.VerifiedExcluded:
		if r.IsVerified {
			return false
		}
	}

	if filter.Search != "" {
		name := ""
		if r.RequesterName != nil {
			name = *r.RequesterName
		}
		if !containsFold(r.Title, filter.Search) &&
			!containsFold(r.Description, filter.Search) &&
			!containsFold(name, filter.Search) {
			return false
		}
	}

	return true
}

// FilterUsers keeps the users whose full name or city contains query.
func FilterUsers(users []*types.AdminUser, filter types.UserFilter) []*types.AdminUser {
	query := strings.TrimSpace(filter.Search)
	if query == "" {
		out := make([]*types.AdminUser, len(users))
		copy(out, users)
		return out
	}

	out := make([]*types.AdminUser, 0, len(users))
	for _, u := range users {
		if containsFold(u.FullName, query) || (u.City != nil && containsFold(*u.City, query)) {
			out = append(out, u)
		}
	}
	return out
}

// Urgent returns up to limit requests whose urgency is urgent or critical.
func Urgent(requests []*types.RequestListing, limit int) []*types.RequestListing {
	out := make([]*types.RequestListing, 0, limit)
	for _, r := range requests {
		if len(out) == limit {
			break
		}
		if r.Urgency == types.UrgencyCritical || r.Urgency == types.UrgencyUrgent {
			out = append(out, r)
		}
	}
	return out
}

type RequestStats struct {
	Total           int
	Verified        int
	Unverified      int
	CriticalPending int
}

// ComputeRequestStats counts requests for the admin dashboard. Critical
// pending requests are critical ones still awaiting verification.
func ComputeRequestStats(requests []*types.RequestListing) RequestStats {
	var stats RequestStats
	for _, r := range requests {
		stats.Total++
		if r.IsVerified {
			stats.Verified++
			continue
		}
		stats.Unverified++
		if r.Urgency == types.UrgencyCritical {
			stats.CriticalPending++
		}
	}
	return stats
}

type UserStats struct {
	Total   int
	Admins  int
	Helpers int
	Seekers int
}

func ComputeUserStats(users []*types.AdminUser) UserStats {
	var stats UserStats
	for _, u := range users {
		stats.Total++
		if u.HasRole(types.RoleAdmin) {
			stats.Admins++
		}
		if u.IsHelper {
			stats.Helpers++
		}
		if u.IsSeeker {
			stats.Seekers++
		}
	}
	return stats
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
