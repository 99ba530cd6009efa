package moderation

import (
	"context"
	"errors"
	"testing"
	"time"

	"helpbridge/internal/moderation/mocks"
	"helpbridge/pkg/types"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestGateUnauthenticatedActor(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	roles := mocks.NewMockRoleRegistry(ctl)
	gate := NewGate(roles, quietLogger(), time.Second)

	assert.False(t, gate.IsAdmin(context.Background(), nil), "nil actor must not be admin")
	assert.False(t, gate.IsAdmin(context.Background(), &Actor{}), "actor without id must not be admin")
	assert.ErrorIs(t, gate.Authorize(context.Background(), nil), ErrAuthorizationDenied)
}

func TestGateDelegatesToRoleCheck(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	roles := mocks.NewMockRoleRegistry(ctl)
	gate := NewGate(roles, quietLogger(), time.Second)

	roles.EXPECT().CheckRole(gomock.Any(), "admin-1", types.RoleAdmin).Return(true, nil).Times(1)
	roles.EXPECT().CheckRole(gomock.Any(), "member-1", types.RoleAdmin).Return(false, nil).Times(1)

	assert.True(t, gate.IsAdmin(context.Background(), &Actor{ID: "admin-1"}))
	assert.False(t, gate.IsAdmin(context.Background(), &Actor{ID: "member-1"}))
}

func TestGateFailsClosedOnStoreError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	roles := mocks.NewMockRoleRegistry(ctl)
	gate := NewGate(roles, quietLogger(), time.Second)

	roles.EXPECT().CheckRole(gomock.Any(), "admin-1", types.RoleAdmin).
		Return(true, errors.New("connection refused")).Times(2)

	assert.False(t, gate.IsAdmin(context.Background(), &Actor{ID: "admin-1"}), "an indeterminate check must deny")
	assert.ErrorIs(t, gate.Authorize(context.Background(), &Actor{ID: "admin-1"}), ErrAuthorizationDenied)
}

func TestGateAppliesTimeout(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	roles := mocks.NewMockRoleRegistry(ctl)
	gate := NewGate(roles, quietLogger(), 50*time.Millisecond)

	roles.EXPECT().CheckRole(gomock.Any(), "admin-1", types.RoleAdmin).
		DoAndReturn(func(ctx context.Context, _ string, _ types.AppRole) (bool, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok, "role check must run under a deadline")
			return true, nil
		})

	assert.True(t, gate.IsAdmin(context.Background(), &Actor{ID: "admin-1"}))
}
