package seed

import (
	"context"
	"errors"
	"fmt"

	"helpbridge/internal/utils"
	"helpbridge/pkg/types"
)

type ProfileStore interface {
	ProfileByUserID(ctx context.Context, userID string) (*types.Profile, error)
	CreateProfile(ctx context.Context, profile *types.Profile) error
	UpdateProfile(ctx context.Context, profile *types.Profile) error
}

type fakeProfileSeed struct {
	UserID   string
	FullName string
	Phone    string
	City     string
	IsHelper bool
	IsSeeker bool
}

var fakeProfiles = []fakeProfileSeed{
	{UserID: "11111111-1111-1111-1111-111111111111", FullName: "Asha Patil", Phone: "+91 98220 11111", City: "Pune", IsSeeker: true},
	{UserID: "22222222-2222-2222-2222-222222222222", FullName: "Ravi Kumar", Phone: "+91 98220 22222", City: "Mumbai", IsSeeker: true},
	{UserID: "33333333-3333-3333-3333-333333333333", FullName: "Meera Iyer", City: "Chennai", IsHelper: true},
	{UserID: "44444444-4444-4444-4444-444444444444", FullName: "Farhan Shaikh", Phone: "+91 98220 44444", City: "Nagpur", IsHelper: true, IsSeeker: true},
	{UserID: "55555555-5555-5555-5555-555555555555", FullName: "Lakshmi Rao", City: "Bengaluru", IsSeeker: true},
	{UserID: "66666666-6666-6666-6666-666666666666", FullName: "Gurpreet Singh", City: "Ludhiana", IsHelper: true},
	{UserID: "77777777-7777-7777-7777-777777777777", FullName: "Neha Joshi", Phone: "+91 98220 77777", City: "Pune", IsSeeker: true},
	{UserID: "88888888-8888-8888-8888-888888888888", FullName: "Arjun Menon", City: "Kochi", IsHelper: true},
}

func seedFakeSeekerIDs() []string {
	ids := make([]string, 0, len(fakeProfiles))
	for _, p := range fakeProfiles {
		if p.IsSeeker {
			ids = append(ids, p.UserID)
		}
	}
	return ids
}

func SeedFakeProfiles(ctx context.Context, profileRepo ProfileStore) error {
	seeded := 0
	for _, fake := range fakeProfiles {
		var phone *string
		if fake.Phone != "" {
			phone = utils.StringPtr(fake.Phone)
		}

		existing, err := profileRepo.ProfileByUserID(ctx, fake.UserID)
		if err != nil {
			if !errors.Is(err, types.ErrProfileNotFound) {
				return fmt.Errorf("failed to fetch fake profile %s: %w", fake.UserID, err)
			}

			profile := &types.Profile{
				UserID:   fake.UserID,
				FullName: fake.FullName,
				Phone:    phone,
				City:     utils.StringPtr(fake.City),
				IsHelper: fake.IsHelper,
				IsSeeker: fake.IsSeeker,
			}

			if err := profileRepo.CreateProfile(ctx, profile); err != nil {
				return fmt.Errorf("failed to create fake profile %s: %w", fake.UserID, err)
			}
			seeded++
			continue
		}

		existing.FullName = fake.FullName
		existing.Phone = phone
		existing.City = utils.StringPtr(fake.City)
		existing.IsHelper = fake.IsHelper
		existing.IsSeeker = fake.IsSeeker

		if err := profileRepo.UpdateProfile(ctx, existing); err != nil {
			return fmt.Errorf("failed to update fake profile %s: %w", fake.UserID, err)
		}
		seeded++
	}

	fmt.Printf("Fake profiles seeded: %d upserted\n", seeded)
	return nil
}
