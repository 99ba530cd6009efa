package moderation

import (
	"testing"

	"helpbridge/pkg/types"

	"github.com/stretchr/testify/assert"
)

func sampleRequests() []*types.RequestListing {
	return []*types.RequestListing{
		listing("blood", func(r *types.RequestListing) {
			r.Title = "Need blood donor urgently"
			r.Description = "O negative for surgery at Ruby Hall"
			r.Category = types.CategoryBloodDonation
			r.Urgency = types.UrgencyCritical
			r.City = strPtr("Pune")
			r.RequesterName = strPtr("Asha Patil")
		}),
		listing("groceries", func(r *types.RequestListing) {
			r.Title = "Need groceries"
			r.Description = "Monthly ration for an elderly couple"
			r.Category = types.CategoryFoodGrocery
			r.Urgency = types.UrgencyNormal
			r.Status = types.RequestStatusInProgress
			r.IsVerified = true
			r.RequesterName = strPtr("Ravi Kumar")
		}),
		listing("fees", func(r *types.RequestListing) {
			r.Title = "School fees"
			r.Description = "Term fees for two children"
			r.Category = types.CategoryEducation
			r.Urgency = types.UrgencyUrgent
			r.Status = types.RequestStatusClosed
			r.City = strPtr("Mumbai")
		}),
		listing("shelter", func(r *types.RequestListing) {
			r.Title = "Temporary shelter"
			r.Description = "Flooded house, family of four"
			r.Category = types.CategoryShelterHousing
			r.Urgency = types.UrgencyCritical
			r.City = strPtr("Pimpri, PUNE district")
			r.IsVerified = true
		}),
	}
}

func ids(requests []*types.RequestListing) []string {
	out := make([]string, 0, len(requests))
	for _, r := range requests {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterEmptySpecIsIdentity(t *testing.T) {
	rs := sampleRequests()
	assert.Equal(t, rs, Filter(rs, types.FilterSpec{}))
}

func TestFilterAllOptionIsAbsent(t *testing.T) {
	rs := sampleRequests()
	spec := types.FilterSpec{Status: "all", Urgency: "all", Category: "all", Verified: "all"}
	assert.Equal(t, rs, Filter(rs, spec))
}

func TestFilterTextSearch(t *testing.T) {
	rs := []*types.RequestListing{
		listing("a", func(r *types.RequestListing) { r.Title = "Need blood donor urgently" }),
		listing("b", func(r *types.RequestListing) { r.Title = "Need groceries" }),
	}

	assert.Equal(t, []string{"a"}, ids(Filter(rs, types.FilterSpec{Search: "blood"})))
}

func TestFilterTextSearchMatchesAnyField(t *testing.T) {
	rs := sampleRequests()

	tests := []struct {
		query string
		want  []string
	}{
		{query: "BLOOD", want: []string{"blood"}},
		{query: "elderly", want: []string{"groceries"}},
		{query: "ravi", want: []string{"groceries"}},
		{query: "need", want: []string{"blood", "groceries"}},
		{query: "nothing like this", want: []string{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ids(Filter(rs, types.FilterSpec{Search: tt.query})), tt.query)
	}
}

func TestFilterCityIsCaseInsensitiveSubstring(t *testing.T) {
	rs := sampleRequests()

	got := Filter(rs, types.FilterSpec{City: "pune"})

	assert.Equal(t, []string{"blood", "shelter"}, ids(got))
	for _, r := range got {
		assert.NotNil(t, r.City, "requests without a city never match a city filter")
	}
}

func TestFilterStructuralPredicates(t *testing.T) {
	rs := sampleRequests()

	assert.Equal(t, []string{"blood", "shelter"}, ids(Filter(rs, types.FilterSpec{Urgency: types.UrgencyCritical})))
	assert.Equal(t, []string{"fees"}, ids(Filter(rs, types.FilterSpec{Category: types.CategoryEducation})))
	assert.Equal(t, []string{"fees"}, ids(Filter(rs, types.FilterSpec{Status: types.RequestStatusClosed})))
	assert.Equal(t, []string{"groceries", "shelter"}, ids(Filter(rs, types.FilterSpec{Verified: types.VerifiedOnly})))
	assert.Equal(t, []string{"blood", "fees"}, ids(Filter(rs, types.FilterSpec{Verified: types.VerifiedExcluded})))
	assert.Equal(t, []string{"shelter"}, ids(Filter(rs, types.FilterSpec{Urgency: types.UrgencyCritical, Verified: types.VerifiedOnly})))
}

func TestFilterComposesByIntersection(t *testing.T) {
	rs := sampleRequests()

	pairs := []struct {
		first, second, combined types.FilterSpec
	}{
		{
			first:    types.FilterSpec{Urgency: types.UrgencyCritical},
			second:   types.FilterSpec{City: "pune"},
			combined: types.FilterSpec{Urgency: types.UrgencyCritical, City: "pune"},
		},
		{
			first:    types.FilterSpec{Status: types.RequestStatusOpen},
			second:   types.FilterSpec{Category: types.CategoryShelterHousing, Search: "flood"},
			combined: types.FilterSpec{Status: types.RequestStatusOpen, Category: types.CategoryShelterHousing, Search: "flood"},
		},
		{
			first:    types.FilterSpec{Category: types.CategoryEducation},
			second:   types.FilterSpec{Urgency: types.UrgencyCritical},
			combined: types.FilterSpec{Category: types.CategoryEducation, Urgency: types.UrgencyCritical},
		},
	}

	for _, p := range pairs {
		assert.Equal(t, ids(Filter(rs, p.combined)), ids(Filter(Filter(rs, p.first), p.second)))
	}
}

func TestFilterPreservesOrderAndInput(t *testing.T) {
	rs := sampleRequests()
	reversed := []*types.RequestListing{rs[3], rs[2], rs[1], rs[0]}

	assert.Equal(t, []string{"shelter", "blood"}, ids(Filter(reversed, types.FilterSpec{Urgency: types.UrgencyCritical})))
	assert.Equal(t, []string{"shelter", "fees", "groceries", "blood"}, ids(reversed), "input must not be modified")
}

func TestFilterEmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, types.FilterSpec{City: "pune"}))
}

func TestUrgent(t *testing.T) {
	rs := sampleRequests()

	assert.Equal(t, []string{"blood", "fees", "shelter"}, ids(Urgent(rs, 3)))
	assert.Equal(t, []string{"blood"}, ids(Urgent(rs, 1)))
}

func TestComputeRequestStats(t *testing.T) {
	stats := ComputeRequestStats(sampleRequests())

	assert.Equal(t, RequestStats{Total: 4, Verified: 2, Unverified: 2, CriticalPending: 1}, stats)
}

func TestFilterUsersAndStats(t *testing.T) {
	users := []*types.AdminUser{
		{Profile: types.Profile{UserID: "u1", FullName: "Asha Patil", City: strPtr("Pune"), IsSeeker: true}, Roles: []string{"admin"}},
		{Profile: types.Profile{UserID: "u2", FullName: "Ravi Kumar", IsHelper: true}},
		{Profile: types.Profile{UserID: "u3", FullName: "Meera", City: strPtr("Nagpur"), IsHelper: true, IsSeeker: true}, Roles: []string{"moderator"}},
	}

	assert.Len(t, FilterUsers(users, types.UserFilter{}), 3)
	assert.Len(t, FilterUsers(users, types.UserFilter{Search: "PUR"}), 1)
	assert.Len(t, FilterUsers(users, types.UserFilter{Search: "ravi"}), 1)
	assert.Empty(t, FilterUsers(users, types.UserFilter{Search: "delhi"}))

	assert.Equal(t, UserStats{Total: 3, Admins: 1, Helpers: 2, Seekers: 2}, ComputeUserStats(users))
}
