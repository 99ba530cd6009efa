package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"helpbridge/internal/utils"
	"helpbridge/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	profileTableName   = "profiles"
	adminUsersViewName = "admin_users_view"
)

var (
	profileColumns   = utils.StructTagValues(types.Profile{})
	adminUserColumns = append(utils.StructTagValues(types.Profile{}), "roles")
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) ProfileByUserID(ctx context.Context, userID string) (*types.Profile, error) {
	query, args, err := psql().
		Select(profileColumns...).
		From(profileTableName).
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile query: %w", err)
	}

	var profile types.Profile
	err = pgxscan.Get(ctx, r.pool, &profile, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	return &profile, nil
}

// QueryUsers returns every profile with its granted roles, newest first.
func (r *ProfileRepository) QueryUsers(ctx context.Context) ([]*types.AdminUser, error) {
	query, args, err := psql().
		Select(adminUserColumns...).
		From(adminUsersViewName).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate admin users query: %w", err)
	}

	var users = make([]*types.AdminUser, 0)
	err = pgxscan.Select(ctx, r.pool, &users, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin users: %w", err)
	}

	return users, nil
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *types.Profile) error {
	now := time.Now()
	if profile.ID == "" {
		profile.ID = utils.NanoID()
	}
	profile.CreatedAt = now
	profile.UpdatedAt = now

	query, args, err := psql().
		Insert(profileTableName).
		SetMap(utils.StructToMap(profile)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate create profile query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, profile *types.Profile) error {
	profile.UpdatedAt = time.Now()

	values := utils.StructToMap(profile)
	delete(values, "id")
	delete(values, "created_at")

	query, args, err := psql().
		Update(profileTableName).
		SetMap(values).
		Where(sq.Eq{"user_id": profile.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update profile query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

// UpsertIdentity makes sure an authenticated user has a profile row, filling
// the display name from the identity provider on first sight.
func (r *ProfileRepository) UpsertIdentity(ctx context.Context, userID, fullName string) error {
	now := time.Now()

	query, args, err := psql().
		Insert(profileTableName).
		Columns("id", "user_id", "full_name", "is_helper", "is_seeker", "created_at", "updated_at").
		Values(utils.NanoID(), userID, strings.TrimSpace(fullName), false, false, now, now).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert identity profile query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert profile identity: %w", err)
	}

	return nil
}
