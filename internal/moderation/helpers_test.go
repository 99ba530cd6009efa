package moderation

import (
	"io"
	"time"

	"helpbridge/pkg/types"

	"github.com/sirupsen/logrus"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func strPtr(s string) *string {
	return &s
}

func listing(id string, mutate func(r *types.RequestListing)) *types.RequestListing {
	r := &types.RequestListing{
		HelpRequest: types.HelpRequest{
			ID:          id,
			UserID:      "seeker-" + id,
			Category:    types.CategoryFoodGrocery,
			Title:       "Request " + id,
			Description: "Description for " + id,
			Urgency:     types.UrgencyNormal,
			Status:      types.RequestStatusOpen,
			CreatedAt:   testNow,
			UpdatedAt:   testNow,
		},
	}
	if mutate != nil {
		mutate(r)
	}
	return r
}

// applyPatch writes patch columns onto r the way the database would.
func applyPatch(r *types.HelpRequest, patch types.RequestPatch, now time.Time) {
	for column, value := range patch.Columns(now) {
		switch column {
		case "status":
			r.Status = value.(types.RequestStatus)
		case "is_verified":
			r.IsVerified = value.(bool)
		case "verified_by":
			if value == nil {
				r.VerifiedBy = nil
			} else {
				by := value.(string)
				r.VerifiedBy = &by
			}
		case "verified_at":
			if value == nil {
				r.VerifiedAt = nil
			} else {
				at := value.(time.Time)
				r.VerifiedAt = &at
			}
		case "updated_at":
			r.UpdatedAt = value.(time.Time)
		}
	}
}
