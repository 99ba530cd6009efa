package moderation

import (
	"context"
	"sync"
	"time"

	"helpbridge/pkg/types"

	"github.com/sirupsen/logrus"
)

// UserManager grants and revokes roles and keeps the admin user roster,
// re-fetched in full after each successful change.
type UserManager struct {
	gate      *Gate
	roles     RoleRegistry
	directory UserDirectory
	logger    *logrus.Logger
	timeout   time.Duration

	mu     sync.RWMutex
	users  []*types.AdminUser
	loaded bool
}

func NewUserManager(gate *Gate, roles RoleRegistry, directory UserDirectory, logger *logrus.Logger, timeout time.Duration) *UserManager {
	return &UserManager{
		gate:      gate,
		roles:     roles,
		directory: directory,
		logger:    logger,
		timeout:   timeout,
	}
}

func (m *UserManager) Users() []*types.AdminUser {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*types.AdminUser, len(m.users))
	copy(out, m.users)
	return out
}

func (m *UserManager) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}

func (m *UserManager) Refresh(ctx context.Context, actor *Actor) error {
	if err := m.gate.Authorize(ctx, actor); err != nil {
		return err
	}
	return m.reload(ctx)
}

func (m *UserManager) reload(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, m.timeout)
	defer cancel()

	users, err := m.directory.QueryUsers(ctx)
	if err != nil {
		return classify("fetch users", err)
	}

	m.mu.Lock()
	m.users = users
	m.loaded = true
	m.mu.Unlock()

	return nil
}

// AddRole grants role to userID. Granting a role the user already holds
// fails with ErrDuplicateRole and changes nothing.
func (m *UserManager) AddRole(ctx context.Context, actor *Actor, userID string, role types.AppRole) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	return m.mutate(ctx, actor, userID, role, "add role", func(ctx context.Context) error {
		return m.roles.InsertRoleGrant(ctx, userID, role)
	})
}

// RemoveRole revokes role from userID. Revoking a role the user does not hold
// succeeds without changing anything.
func (m *UserManager) RemoveRole(ctx context.Context, actor *Actor, userID string, role types.AppRole) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	return m.mutate(ctx, actor, userID, role, "remove role", func(ctx context.Context) error {
		return m.roles.DeleteRoleGrant(ctx, userID, role)
	})
}

func (m *UserManager) mutate(ctx context.Context, actor *Actor, userID string, role types.AppRole, name string, op func(context.Context) error) error {
	if err := m.gate.Authorize(ctx, actor); err != nil {
		return err
	}

	entry := m.logger.WithFields(logrus.Fields{
		"user_id":   userID,
		"role":      role,
		"actor_id":  actor.ID,
		"operation": name,
	})

	opCtx, cancel := withTimeout(ctx, m.timeout)
	err := op(opCtx)
	cancel()

	if err != nil {
		err = classify(name, err)
		entry.WithError(err).Error("role change failed")
		return err
	}

	entry.Info("role change applied")

	if err := m.reload(ctx); err != nil {
		entry.WithError(err).Error("failed to reload users after role change")
		return &ReloadError{Err: err}
	}

	return nil
}
