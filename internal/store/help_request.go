package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"helpbridge/internal/utils"
	"helpbridge/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	requestTableName       = "help_requests"
	adminRequestsViewName  = "admin_requests_view"
	publicRequestsViewName = "public_requests_view"
)

var (
	requestColumns        = utils.StructTagValues(types.HelpRequest{})
	requestListingColumns = append(utils.StructTagValues(types.HelpRequest{}), "requester_name", "requester_avatar")
)

type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

// QueryRequests reads one of the request views, newest first. Category,
// urgency and status predicates are pushed down to the database; the public
// view is always constrained to open requests.
func (r *RequestRepository) QueryRequests(ctx context.Context, view types.RequestView, filter types.FilterSpec) ([]*types.RequestListing, error) {
	query, args, err := requestsQuery(view, filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s requests query: %w", view, err)
	}

	var requests = make([]*types.RequestListing, 0)
	err = pgxscan.Select(ctx, r.pool, &requests, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s requests: %w", view, err)
	}

	return requests, nil
}

func requestsQuery(view types.RequestView, filter types.FilterSpec) sq.SelectBuilder {
	from := adminRequestsViewName
	where := sq.Eq{}

	if view == types.RequestViewPublic {
		from = publicRequestsViewName
		where["status"] = types.RequestStatusOpen
	} else if filter.Status != "" {
		where["status"] = filter.Status
	}

	if filter.Category != "" {
		where["category"] = filter.Category
	}
	if filter.Urgency != "" {
		where["urgency"] = filter.Urgency
	}

	builder := psql().Select(requestListingColumns...).From(from)
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	return builder.OrderBy("created_at DESC")
}

func (r *RequestRepository) Request(ctx context.Context, requestID string) (*types.HelpRequest, error) {
	query, args, err := psql().Select(requestColumns...).From(requestTableName).
		Where(sq.Eq{"id": requestID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate request query: %w", err)
	}

	var request = new(types.HelpRequest)
	err = pgxscan.Get(ctx, r.pool, request, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to fetch request %s: %w", requestID, err)
	}

	return request, nil
}

func (r *RequestRepository) CreateRequest(ctx context.Context, request *types.HelpRequest) error {
	now := time.Now()
	if request.ID == "" {
		request.ID = utils.NanoID()
	}
	request.CreatedAt = now
	request.UpdatedAt = now

	query, args, err := psql().Insert(requestTableName).SetMap(utils.StructToMap(request)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert request query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create request")
}

// UpdateRequest writes a partial update. It returns types.ErrRequestNotFound
// when no row has the given id. A patch that sets the status only matches
// rows that are not closed yet, so types.ErrRequestClosed is decided by the
// UPDATE itself rather than by an earlier read.
func (r *RequestRepository) UpdateRequest(ctx context.Context, requestID string, patch types.RequestPatch) error {
	if patch.Empty() {
		return nil
	}

	query, args, err := updateRequestQuery(requestID, patch, time.Now()).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update request query for request %s: %w", requestID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update request %s: %w", requestID, err)
	}

	if tag.RowsAffected() > 0 {
		return nil
	}

	if patch.Status == nil {
		return types.ErrRequestNotFound
	}

	// Nothing matched: either the row is gone or it is closed.
	if _, err := r.Request(ctx, requestID); err != nil {
		return err
	}

	return types.ErrRequestClosed
}

func updateRequestQuery(requestID string, patch types.RequestPatch, now time.Time) sq.UpdateBuilder {
	builder := psql().Update(requestTableName).
		SetMap(patch.Columns(now)).
		Where(sq.Eq{"id": requestID})

	if patch.Status != nil {
		builder = builder.Where(sq.NotEq{"status": types.RequestStatusClosed})
	}

	return builder
}

// DeleteRequest hard deletes a request inside a transaction. cascade receives
// the deleted row's id and image key before commit; if it fails the delete is
// rolled back. Rows that reference the request are removed by the foreign
// keys' ON DELETE CASCADE.
func (r *RequestRepository) DeleteRequest(ctx context.Context, requestID string, cascade types.DeleteCascade) error {
	return deleteRequestTx(ctx, r.pool, requestID, cascade)
}

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

func deleteRequestTx(ctx context.Context, db txBeginner, requestID string, cascade types.DeleteCascade) error {
	query, args, err := deleteRequestQuery(requestID).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete request query for request %s: %w", requestID, err)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var deleted = new(types.HelpRequest)
	err = tx.QueryRow(ctx, query, args...).Scan(&deleted.ID, &deleted.ImageKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.ErrRequestNotFound
		}
		return fmt.Errorf("failed to delete request %s: %w", requestID, err)
	}

	if cascade != nil {
		if err := cascade(ctx, deleted); err != nil {
			return fmt.Errorf("failed to clean up request %s: %w", requestID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func deleteRequestQuery(requestID string) sq.DeleteBuilder {
	return psql().Delete(requestTableName).
		Where(sq.Eq{"id": requestID}).
		Suffix("RETURNING id, image_url")
}
