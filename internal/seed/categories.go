package seed

import (
	"context"
	"fmt"

	"helpbridge/internal/utils"
	"helpbridge/pkg/types"
)

type CategoryStore interface {
	AllCategoriesUnfiltered(ctx context.Context) ([]*types.CategoryInfo, error)
	UpsertCategory(ctx context.Context, category *types.CategoryInfo) error
	DeleteCategory(ctx context.Context, id types.HelpCategory) error
}

// Catalogue is the source of truth for the help categories. The ids are the
// help_category enum values, so a category can only be added here together
// with a schema change.
func Catalogue() []types.CategoryInfo {
	return []types.CategoryInfo{
		{
			ID:           types.CategoryBloodDonation,
			Label:        "Blood Donation",
			Description:  utils.StringPtr("Request or donate blood for patients in need"),
			Icon:         utils.StringPtr("droplets"),
			DisplayOrder: 1,
			IsActive:     true,
		},
		{
			ID:           types.CategoryMedicalAssistance,
			Label:        "Medical Assistance",
			Description:  utils.StringPtr("Hospital, medicines, surgery, doctor help"),
			Icon:         utils.StringPtr("stethoscope"),
			DisplayOrder: 2,
			IsActive:     true,
		},
		{
			ID:           types.CategoryEmergency,
			Label:        "Emergency Help",
			Description:  utils.StringPtr("Urgent situations requiring immediate response"),
			Icon:         utils.StringPtr("alert-triangle"),
			DisplayOrder: 3,
			IsActive:     true,
		},
		{
			ID:           types.CategoryFoodGrocery,
			Label:        "Food & Grocery",
			Description:  utils.StringPtr("Food packets, groceries, meal support"),
			Icon:         utils.StringPtr("utensils"),
			DisplayOrder: 4,
			IsActive:     true,
		},
		{
			ID:           types.CategoryEducation,
			Label:        "Education Support",
			Description:  utils.StringPtr("Books, fees, mentorship, online classes"),
			Icon:         utils.StringPtr("graduation-cap"),
			DisplayOrder: 5,
			IsActive:     true,
		},
		{
			ID:           types.CategoryFinancial,
			Label:        "Financial Help",
			Description:  utils.StringPtr("Monetary assistance for emergencies"),
			Icon:         utils.StringPtr("wallet"),
			DisplayOrder: 6,
			IsActive:     true,
		},
		{
			ID:           types.CategoryShelterHousing,
			Label:        "Shelter & Housing",
			Description:  utils.StringPtr("Temporary shelter, rent help, safe housing"),
			Icon:         utils.StringPtr("home"),
			DisplayOrder: 7,
			IsActive:     true,
		},
		{
			ID:           types.CategoryJobSkills,
			Label:        "Job & Skills",
			Description:  utils.StringPtr("Job referrals, training, skill guidance"),
			Icon:         utils.StringPtr("briefcase"),
			DisplayOrder: 8,
			IsActive:     true,
		},
		{
			ID:           types.CategorySeniorCitizen,
			Label:        "Senior Citizen Help",
			Description:  utils.StringPtr("Assistance for elderly with daily needs"),
			Icon:         utils.StringPtr("heart"),
			DisplayOrder: 9,
			IsActive:     true,
		},
		{
			ID:           types.CategoryDisasterRelief,
			Label:        "Disaster Relief",
			Description:  utils.StringPtr("Natural disaster support and relief"),
			Icon:         utils.StringPtr("cloud-rain"),
			DisplayOrder: 10,
			IsActive:     true,
		},
	}
}

// SeedCategories syncs the help_categories table with Catalogue:
// - Inserts categories that don't exist
// - Updates categories that have changed
// - Deletes categories from DB that aren't in the catalogue
func SeedCategories(ctx context.Context, repo CategoryStore) error {
	categories := Catalogue()

	fmt.Println("Starting category sync...")
	fmt.Printf("  Catalogue contains %d categories\n", len(categories))

	seedIDs := make(map[types.HelpCategory]bool)
	for _, cat := range categories {
		seedIDs[cat.ID] = true
	}

	// Get ALL categories from database (including inactive)
	existing, err := repo.AllCategoriesUnfiltered(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch existing categories: %w", err)
	}
	fmt.Printf("  Database contains %d categories\n", len(existing))

	deletedCount := 0
	for _, existingCat := range existing {
		if !seedIDs[existingCat.ID] {
			fmt.Printf("  Deleting category: %s (id: %s)\n", existingCat.Label, existingCat.ID)
			if err := repo.DeleteCategory(ctx, existingCat.ID); err != nil {
				return fmt.Errorf("failed to delete category %s: %w", existingCat.ID, err)
			}
			deletedCount++
		}
	}

	upsertedCount := 0
	for _, cat := range categories {
		fmt.Printf("  Upserting category: %s (id: %s)\n", cat.Label, cat.ID)
		if err := repo.UpsertCategory(ctx, &cat); err != nil {
			return fmt.Errorf("failed to upsert category %s: %w", cat.ID, err)
		}
		upsertedCount++
	}

	fmt.Printf("\nSync complete: %d upserted, %d deleted\n", upsertedCount, deletedCount)
	return nil
}
