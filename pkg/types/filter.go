package types

import "strings"

type VerifiedFilter string

const (
	VerifiedAny      VerifiedFilter = ""
	VerifiedOnly     VerifiedFilter = "verified"
	VerifiedExcluded VerifiedFilter = "unverified"
)

// FilterSpec narrows a request collection. Zero-valued fields are absent
// predicates; present predicates combine with AND.
type FilterSpec struct {
	Category HelpCategory   `form:"category" validate:"omitempty,oneof=blood_donation medical_assistance emergency food_grocery education financial shelter_housing job_skills senior_citizen disaster_relief"`
	Urgency  UrgencyLevel   `form:"urgency" validate:"omitempty,oneof=normal urgent critical"`
	Status   RequestStatus  `form:"status" validate:"omitempty,oneof=open in_progress resolved closed"`
	City     string         `form:"city" validate:"max=120"`
	Search   string         `form:"q" validate:"max=200"`
	Verified VerifiedFilter `form:"verified" validate:"omitempty,oneof=verified unverified"`
}

// Normalize trims free text and folds the "all" select option into an absent
// predicate.
func (f FilterSpec) Normalize() FilterSpec {
	all := func(v string) string {
		v = strings.TrimSpace(v)
		if strings.EqualFold(v, "all") {
			return ""
		}
		return v
	}

	f.Category = HelpCategory(all(string(f.Category)))
	f.Urgency = UrgencyLevel(all(string(f.Urgency)))
	f.Status = RequestStatus(all(string(f.Status)))
	f.Verified = VerifiedFilter(all(string(f.Verified)))
	f.City = strings.TrimSpace(f.City)
	f.Search = strings.TrimSpace(f.Search)

	return f
}

func (f FilterSpec) IsZero() bool {
	return f == FilterSpec{}
}

type UserFilter struct {
	Search string `form:"q" validate:"max=200"`
}
