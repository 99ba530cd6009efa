package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifiedPatchWritesAllVerificationColumns(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	at := now.Add(-time.Minute)

	cols := VerifiedPatch("admin-1", at).Columns(now)

	assert.Equal(t, map[string]any{
		"is_verified": true,
		"verified_by": "admin-1",
		"verified_at": at,
		"updated_at":  now,
	}, cols)
}

func TestUnverifiedPatchClearsVerificationTogether(t *testing.T) {
	now := time.Now()

	cols := UnverifiedPatch().Columns(now)

	require.Contains(t, cols, "verified_by")
	require.Contains(t, cols, "verified_at")
	assert.Equal(t, false, cols["is_verified"])
	assert.Nil(t, cols["verified_by"])
	assert.Nil(t, cols["verified_at"])
}

func TestIncompleteVerificationIsWrittenAsUnverified(t *testing.T) {
	actor := "admin-1"
	patch := RequestPatch{Verification: &Verification{IsVerified: true, VerifiedBy: &actor}}

	cols := patch.Columns(time.Now())

	assert.Equal(t, false, cols["is_verified"])
	assert.Nil(t, cols["verified_by"])
	assert.Nil(t, cols["verified_at"])
}

func TestStatusPatchLeavesVerificationAlone(t *testing.T) {
	cols := StatusPatch(RequestStatusResolved).Columns(time.Now())

	assert.Equal(t, RequestStatusResolved, cols["status"])
	assert.NotContains(t, cols, "is_verified")
	assert.NotContains(t, cols, "verified_by")
	assert.NotContains(t, cols, "verified_at")
	assert.Contains(t, cols, "updated_at")
}

func TestRequestPatchEmpty(t *testing.T) {
	assert.True(t, RequestPatch{}.Empty())
	assert.False(t, UnverifiedPatch().Empty())
	assert.False(t, StatusPatch(RequestStatusOpen).Empty())
}

func TestEnumValidity(t *testing.T) {
	for _, c := range AllHelpCategories {
		assert.True(t, c.Valid(), c)
	}
	assert.Len(t, AllHelpCategories, 10)
	assert.False(t, HelpCategory("pets").Valid())

	assert.True(t, UrgencyCritical.Valid())
	assert.False(t, UrgencyLevel("whenever").Valid())

	assert.True(t, RequestStatusInProgress.Valid())
	assert.False(t, RequestStatus("archived").Valid())
	assert.True(t, RequestStatusClosed.Terminal())
	assert.False(t, RequestStatusResolved.Terminal())

	assert.True(t, RoleModerator.Valid())
	assert.False(t, AppRole("owner").Valid())
}

func TestFilterSpecNormalize(t *testing.T) {
	spec := FilterSpec{
		Category: "all",
		Urgency:  " ALL ",
		Status:   RequestStatusOpen,
		City:     "  Pune ",
		Search:   " blood ",
		Verified: "all",
	}.Normalize()

	assert.Equal(t, FilterSpec{Status: RequestStatusOpen, City: "Pune", Search: "blood"}, spec)
	assert.True(t, FilterSpec{Category: "all"}.Normalize().IsZero())
	assert.False(t, spec.IsZero())
}
