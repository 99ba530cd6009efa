package moderation

import (
	"context"
	"time"

	"helpbridge/pkg/types"

	"github.com/sirupsen/logrus"
)

// Gate decides whether an actor may use the moderation surface.
type Gate struct {
	roles   RoleRegistry
	logger  *logrus.Logger
	timeout time.Duration
}

func NewGate(roles RoleRegistry, logger *logrus.Logger, timeout time.Duration) *Gate {
	return &Gate{
		roles:   roles,
		logger:  logger,
		timeout: timeout,
	}
}

// IsAdmin reports whether actor holds the admin role. Unauthenticated actors
// and failed role lookups both resolve to false.
func (g *Gate) IsAdmin(ctx context.Context, actor *Actor) bool {
	if !actor.Authenticated() {
		return false
	}

	ctx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	ok, err := g.roles.CheckRole(ctx, actor.ID, types.RoleAdmin)
	if err != nil {
		g.logger.WithError(err).WithField("user_id", actor.ID).Warn("admin role check failed, denying access")
		return false
	}

	return ok
}

// Authorize returns ErrAuthorizationDenied unless actor is an admin.
func (g *Gate) Authorize(ctx context.Context, actor *Actor) error {
	if !g.IsAdmin(ctx, actor) {
		return ErrAuthorizationDenied
	}
	return nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
