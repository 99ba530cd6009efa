package types

import (
	"context"
	"time"
)

type HelpCategory string

const (
	CategoryBloodDonation     HelpCategory = "blood_donation"
	CategoryMedicalAssistance HelpCategory = "medical_assistance"
	CategoryEmergency         HelpCategory = "emergency"
	CategoryFoodGrocery       HelpCategory = "food_grocery"
	CategoryEducation         HelpCategory = "education"
	CategoryFinancial         HelpCategory = "financial"
	CategoryShelterHousing    HelpCategory = "shelter_housing"
	CategoryJobSkills         HelpCategory = "job_skills"
	CategorySeniorCitizen     HelpCategory = "senior_citizen"
	CategoryDisasterRelief    HelpCategory = "disaster_relief"
)

var AllHelpCategories = []HelpCategory{
	CategoryBloodDonation,
	CategoryMedicalAssistance,
	CategoryEmergency,
	CategoryFoodGrocery,
	CategoryEducation,
	CategoryFinancial,
	CategoryShelterHousing,
	CategoryJobSkills,
	CategorySeniorCitizen,
	CategoryDisasterRelief,
}

func (c HelpCategory) Valid() bool {
	for _, v := range AllHelpCategories {
		if c == v {
			return true
		}
	}
	return false
}

type UrgencyLevel string

const (
	UrgencyNormal   UrgencyLevel = "normal"
	UrgencyUrgent   UrgencyLevel = "urgent"
	UrgencyCritical UrgencyLevel = "critical"
)

var AllUrgencyLevels = []UrgencyLevel{UrgencyNormal, UrgencyUrgent, UrgencyCritical}

func (u UrgencyLevel) Valid() bool {
	switch u {
	case UrgencyNormal, UrgencyUrgent, UrgencyCritical:
		return true
	}
	return false
}

type RequestStatus string

const (
	RequestStatusOpen       RequestStatus = "open"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusResolved   RequestStatus = "resolved"
	RequestStatusClosed     RequestStatus = "closed"
)

var AllRequestStatuses = []RequestStatus{
	RequestStatusOpen,
	RequestStatusInProgress,
	RequestStatusResolved,
	RequestStatusClosed,
}

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusOpen, RequestStatusInProgress, RequestStatusResolved, RequestStatusClosed:
		return true
	}
	return false
}

// Terminal reports whether no status transition may leave s.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusClosed
}

type HelpRequest struct {
	ID     string `db:"id"`
	UserID string `db:"user_id"`

	Category    HelpCategory  `db:"category"`
	Title       string        `db:"title"`
	Description string        `db:"description"`
	Urgency     UrgencyLevel  `db:"urgency"`
	Status      RequestStatus `db:"status"`
	City        *string       `db:"city"`
	Location    *string       `db:"location"`
	ImageKey    *string       `db:"image_url"`
	IsVerified  bool          `db:"is_verified"`
	VerifiedBy  *string       `db:"verified_by"`
	VerifiedAt  *time.Time    `db:"verified_at"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

// RequestListing is a row of one of the request views: the request itself plus
// the requester's public profile fields.
type RequestListing struct {
	HelpRequest

	RequesterName   *string `db:"requester_name"`
	RequesterAvatar *string `db:"requester_avatar"`
}

// RequestView names the read model a request query runs against.
type RequestView string

const (
	// RequestViewAdmin returns every request regardless of status.
	RequestViewAdmin RequestView = "admin"
	// RequestViewPublic only returns open requests.
	RequestViewPublic RequestView = "public"
)

// DeleteCascade cleans up data a deleted request owns outside the database.
// It runs while the row delete is still uncommitted; deleted carries the id
// and image key.
type DeleteCascade func(ctx context.Context, deleted *HelpRequest) error

// RequestPatch is a partial update of a help request. Verification fields are
// only ever written together, so a patch either carries a complete
// Verification or leaves all three columns alone.
type RequestPatch struct {
	Status       *RequestStatus
	Verification *Verification
}

type Verification struct {
	IsVerified bool
	VerifiedBy *string
	VerifiedAt *time.Time
}

func VerifiedPatch(actorID string, at time.Time) RequestPatch {
	return RequestPatch{
		Verification: &Verification{
			IsVerified: true,
			VerifiedBy: &actorID,
			VerifiedAt: &at,
		},
	}
}

func UnverifiedPatch() RequestPatch {
	return RequestPatch{
		Verification: &Verification{},
	}
}

func StatusPatch(status RequestStatus) RequestPatch {
	return RequestPatch{Status: &status}
}

func (p RequestPatch) Empty() bool {
	return p.Status == nil && p.Verification == nil
}

// Columns returns the column/value pairs the patch writes, including
// updated_at.
func (p RequestPatch) Columns(now time.Time) map[string]any {
	out := map[string]any{
		"updated_at": now,
	}

	if p.Status != nil {
		out["status"] = *p.Status
	}

	if v := p.Verification; v != nil {
		if v.IsVerified && v.VerifiedBy != nil && v.VerifiedAt != nil {
			out["is_verified"] = true
			out["verified_by"] = *v.VerifiedBy
			out["verified_at"] = *v.VerifiedAt
		} else {
			out["is_verified"] = false
			out["verified_by"] = nil
			out["verified_at"] = nil
		}
	}

	return out
}
