package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"helpbridge/internal/utils"
	"helpbridge/pkg/types"

	"github.com/jackc/pgx/v5/pgconn"
)

const seedMarker = "[seed] "

type RequestStore interface {
	CreateRequest(ctx context.Context, request *types.HelpRequest) error
}

type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type fakeRequestTemplate struct {
	Category    types.HelpCategory
	Title       string
	Description string
}

var fakeRequestTemplates = []fakeRequestTemplate{
	{types.CategoryBloodDonation, "Need O negative blood donor urgently", "Patient admitted for surgery needs two units of O negative blood."},
	{types.CategoryMedicalAssistance, "Help with dialysis medicines", "Monthly medicines for my father's dialysis have become hard to afford."},
	{types.CategoryEmergency, "Stranded after road accident", "Family travelling home met with an accident and needs help getting back."},
	{types.CategoryFoodGrocery, "Need groceries for elderly couple", "Monthly ration support for an elderly couple living alone."},
	{types.CategoryEducation, "School fees for two children", "Term fees are due and the family lost its only income last month."},
	{types.CategoryFinancial, "Rent support after job loss", "Need help covering one month of rent while looking for work."},
	{types.CategoryShelterHousing, "Temporary shelter after flooding", "House flooded during the rains, family of four needs a place to stay."},
	{types.CategoryJobSkills, "Looking for a mentor in accounting", "Recently graduated and looking for guidance preparing for interviews."},
	{types.CategorySeniorCitizen, "Daily check-ins for my grandmother", "She lives alone and needs someone to help with groceries and medicines."},
	{types.CategoryDisasterRelief, "Relief kits for landslide victims", "Collecting blankets, water and food for families displaced by the landslide."},
}

var fakeCities = []string{"Pune", "Mumbai", "Chennai", "Nagpur", "Bengaluru", "Kochi", "Ludhiana", ""}

type weightedRequestStatus struct {
	Status types.RequestStatus
	Weight int
}

var weightedStatuses = []weightedRequestStatus{
	{Status: types.RequestStatusOpen, Weight: 55},
	{Status: types.RequestStatusInProgress, Weight: 20},
	{Status: types.RequestStatusResolved, Weight: 15},
	{Status: types.RequestStatusClosed, Weight: 10},
}

type weightedUrgency struct {
	Urgency types.UrgencyLevel
	Weight  int
}

var weightedUrgencies = []weightedUrgency{
	{Urgency: types.UrgencyNormal, Weight: 60},
	{Urgency: types.UrgencyUrgent, Weight: 25},
	{Urgency: types.UrgencyCritical, Weight: 15},
}

func SeedFakeRequests(ctx context.Context, db Execer, requestRepo RequestStore, count int, reset bool) error {
	if count <= 0 {
		fmt.Println("Skipping fake requests seed because count <= 0")
		return nil
	}

	if reset {
		result, err := db.Exec(ctx, `DELETE FROM help_requests WHERE description LIKE $1`, seedMarker+"%")
		if err != nil {
			return fmt.Errorf("failed to reset seeded fake requests: %w", err)
		}
		fmt.Printf("Reset seeded fake requests: %d deleted\n", result.RowsAffected())
	}

	seekerIDs := seedFakeSeekerIDs()
	if len(seekerIDs) == 0 {
		return fmt.Errorf("no fake seekers available; seed fake profiles first")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	created := 0
	for i := 0; i < count; i++ {
		request := fakeRequest(rng, seekerIDs, time.Now())

		if err := requestRepo.CreateRequest(ctx, request); err != nil {
			return fmt.Errorf("failed to create fake request %d: %w", i+1, err)
		}
		created++
	}

	fmt.Printf("Fake requests seeded: %d created\n", created)
	return nil
}

func fakeRequest(rng *rand.Rand, seekerIDs []string, now time.Time) *types.HelpRequest {
	tmpl := fakeRequestTemplates[rng.Intn(len(fakeRequestTemplates))]

	request := &types.HelpRequest{
		UserID:      seekerIDs[rng.Intn(len(seekerIDs))],
		Category:    tmpl.Category,
		Title:       tmpl.Title,
		Description: seedMarker + tmpl.Description,
		Urgency:     pickWeightedUrgency(rng),
		Status:      pickWeightedStatus(rng),
	}

	if city := fakeCities[rng.Intn(len(fakeCities))]; city != "" {
		request.City = utils.StringPtr(city)
	}

	if rng.Intn(100) < 40 {
		request.IsVerified = true
		request.VerifiedBy = utils.StringPtr(fakeProfiles[rng.Intn(len(fakeProfiles))].UserID)
		request.VerifiedAt = utils.TimePtr(now.Add(-time.Duration(rng.Intn(10*24)) * time.Hour))
	}

	return request
}

func pickWeightedStatus(rng *rand.Rand) types.RequestStatus {
	total := 0
	for _, item := range weightedStatuses {
		total += item.Weight
	}

	roll := rng.Intn(total)
	running := 0
	for _, item := range weightedStatuses {
		running += item.Weight
		if roll < running {
			return item.Status
		}
	}

	return types.RequestStatusOpen
}

func pickWeightedUrgency(rng *rand.Rand) types.UrgencyLevel {
	total := 0
	for _, item := range weightedUrgencies {
		total += item.Weight
	}

	roll := rng.Intn(total)
	running := 0
	for _, item := range weightedUrgencies {
		running += item.Weight
		if roll < running {
			return item.Urgency
		}
	}

	return types.UrgencyNormal
}
