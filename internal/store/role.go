package store

import (
	"context"
	"fmt"
	"time"

	"helpbridge/internal/utils"
	"helpbridge/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const roleTableName = "user_roles"

var roleColumns = utils.StructTagValues(types.RoleGrant{})

type RoleRepository struct {
	pool *pgxpool.Pool
}

func NewRoleRepository(pool *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{pool: pool}
}

// CheckRole reports whether userID holds role.
func (r *RoleRepository) CheckRole(ctx context.Context, userID string, role types.AppRole) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, userID, role).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check role %s for user %s: %w", role, userID, err)
	}

	return exists, nil
}

func (r *RoleRepository) RolesByUser(ctx context.Context, userID string) ([]*types.RoleGrant, error) {
	query, args, err := psql().
		Select(roleColumns...).
		From(roleTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("role ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate roles query: %w", err)
	}

	var grants []*types.RoleGrant
	err = pgxscan.Select(ctx, r.pool, &grants, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roles for user %s: %w", userID, err)
	}

	return grants, nil
}

// InsertRoleGrant grants role to userID. A grant that already exists yields
// types.ErrDuplicateRole.
func (r *RoleRepository) InsertRoleGrant(ctx context.Context, userID string, role types.AppRole) error {
	grant := &types.RoleGrant{
		ID:        utils.NanoID(),
		UserID:    userID,
		Role:      role,
		CreatedAt: time.Now(),
	}

	query, args, err := psql().
		Insert(roleTableName).
		SetMap(utils.StructToMap(grant)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert role query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return types.ErrDuplicateRole
		}
		return fmt.Errorf("failed to grant role %s to user %s: %w", role, userID, err)
	}

	return nil
}

// DeleteRoleGrant revokes role from userID. Revoking a role that was never
// granted is not an error.
func (r *RoleRepository) DeleteRoleGrant(ctx context.Context, userID string, role types.AppRole) error {
	query, args, err := psql().
		Delete(roleTableName).
		Where(sq.Eq{"user_id": userID, "role": role}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete role query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to revoke role %s from user %s: %w", role, userID, err)
	}

	return nil
}
