package moderation

import (
	"context"
	"errors"
	"sync"
	"time"

	"helpbridge/pkg/types"

	"github.com/sirupsen/logrus"
)

// RequestModerator verifies, re-statuses and deletes help requests on behalf
// of admins. It keeps the admin view of every request in memory and replaces
// it with a full re-fetch after each successful mutation; a failed mutation
// leaves the collection untouched.
type RequestModerator struct {
	gate    *Gate
	store   RequestStore
	objects ObjectStore
	logger  *logrus.Logger
	timeout time.Duration
	now     func() time.Time

	mu       sync.RWMutex
	requests []*types.RequestListing
	loaded   bool

	inflightMu sync.Mutex
	inflight   map[string]struct{}
}

// NewRequestModerator wires a moderator. objects may be nil when requests
// never own stored files.
func NewRequestModerator(gate *Gate, store RequestStore, objects ObjectStore, logger *logrus.Logger, timeout time.Duration) *RequestModerator {
	return &RequestModerator{
		gate:     gate,
		store:    store,
		objects:  objects,
		logger:   logger,
		timeout:  timeout,
		now:      time.Now,
		inflight: make(map[string]struct{}),
	}
}

// Requests returns the collection from the last successful fetch, newest
// first.
func (m *RequestModerator) Requests() []*types.RequestListing {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*types.RequestListing, len(m.requests))
	copy(out, m.requests)
	return out
}

// Loaded reports whether at least one fetch has succeeded.
func (m *RequestModerator) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}

// Refresh re-fetches the admin request view.
func (m *RequestModerator) Refresh(ctx context.Context, actor *Actor) error {
	if err := m.gate.Authorize(ctx, actor); err != nil {
		return err
	}
	return m.reload(ctx)
}

func (m *RequestModerator) reload(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, m.timeout)
	defer cancel()

	requests, err := m.store.QueryRequests(ctx, types.RequestViewAdmin, types.FilterSpec{})
	if err != nil {
		return classify("fetch requests", err)
	}

	m.mu.Lock()
	m.requests = requests
	m.loaded = true
	m.mu.Unlock()

	return nil
}

// Verify marks a request as genuine, stamping the acting admin and the
// current time. Verifying again refreshes both.
func (m *RequestModerator) Verify(ctx context.Context, actor *Actor, requestID string) error {
	return m.mutate(ctx, actor, requestID, "verify request", func(ctx context.Context) error {
		return m.store.UpdateRequest(ctx, requestID, types.VerifiedPatch(actor.ID, m.now().UTC()))
	})
}

// Unverify clears is_verified, verified_by and verified_at together. The
// request status is left alone.
func (m *RequestModerator) Unverify(ctx context.Context, actor *Actor, requestID string) error {
	return m.mutate(ctx, actor, requestID, "unverify request", func(ctx context.Context) error {
		return m.store.UpdateRequest(ctx, requestID, types.UnverifiedPatch())
	})
}

// SetStatus moves a request to status. Any status may move to closed, but
// nothing moves out of closed: those calls fail with ErrRequestClosed.
func (m *RequestModerator) SetStatus(ctx context.Context, actor *Actor, requestID string, status types.RequestStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	return m.mutate(ctx, actor, requestID, "update request status", func(ctx context.Context) error {
		return m.store.UpdateRequest(ctx, requestID, types.StatusPatch(status))
	})
}

// Close is the moderator "Close Request" action.
func (m *RequestModerator) Close(ctx context.Context, actor *Actor, requestID string) error {
	return m.SetStatus(ctx, actor, requestID, types.RequestStatusClosed)
}

// Delete permanently removes a request from any state, along with its stored
// image. A failed row delete never reaches storage, and a failed image delete
// rolls the row back.
func (m *RequestModerator) Delete(ctx context.Context, actor *Actor, requestID string) error {
	return m.mutate(ctx, actor, requestID, "delete request", func(ctx context.Context) error {
		return m.store.DeleteRequest(ctx, requestID, m.deleteImage)
	})
}

func (m *RequestModerator) deleteImage(ctx context.Context, deleted *types.HelpRequest) error {
	if m.objects == nil || deleted.ImageKey == nil || *deleted.ImageKey == "" {
		return nil
	}

	if err := m.objects.DeleteObject(ctx, *deleted.ImageKey); err != nil {
		m.logger.WithError(err).
			WithField("request_id", deleted.ID).
			WithField("storage_key", *deleted.ImageKey).
			Error("failed to delete request image from storage")
		return err
	}

	return nil
}

// mutate runs op for requestID after the admin check, rejecting a second
// concurrent call for the same request, and reloads the collection when op
// succeeds.
func (m *RequestModerator) mutate(ctx context.Context, actor *Actor, requestID, name string, op func(context.Context) error) error {
	if err := m.gate.Authorize(ctx, actor); err != nil {
		return err
	}

	if !m.begin(requestID) {
		return ErrOperationInFlight
	}
	defer m.end(requestID)

	entry := m.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"actor_id":   actor.ID,
		"operation":  name,
	})

	opCtx, cancel := withTimeout(ctx, m.timeout)
	err := op(opCtx)
	cancel()

	if err != nil {
		err = classify(name, err)
		if errors.Is(err, ErrRequestClosed) {
			entry.Info("rejected status change on closed request")
			return err
		}
		entry.WithError(err).Error("moderation action failed")
		return err
	}

	entry.Info("moderation action applied")

	if err := m.reload(ctx); err != nil {
		entry.WithError(err).Error("failed to reload requests after moderation action")
		return &ReloadError{Err: err}
	}

	return nil
}

func (m *RequestModerator) begin(requestID string) bool {
	m.inflightMu.Lock()
	defer m.inflightMu.Unlock()

	if _, busy := m.inflight[requestID]; busy {
		return false
	}
	m.inflight[requestID] = struct{}{}
	return true
}

func (m *RequestModerator) end(requestID string) {
	m.inflightMu.Lock()
	delete(m.inflight, requestID)
	m.inflightMu.Unlock()
}
