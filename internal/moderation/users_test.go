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
	"github.com/stretchr/testify/require"
)

// fakeRoleTable backs the role registry and user directory mocks with a single
// (user, role) set that enforces uniqueness like the database does.
type fakeRoleTable struct {
	grants map[string]map[types.AppRole]int
}

func newFakeRoleTable() *fakeRoleTable {
	return &fakeRoleTable{grants: make(map[string]map[types.AppRole]int)}
}

func (f *fakeRoleTable) wire(roles *mocks.MockRoleRegistry, directory *mocks.MockUserDirectory, userIDs ...string) {
	roles.EXPECT().InsertRoleGrant(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID string, role types.AppRole) error {
			if f.grants[userID] == nil {
				f.grants[userID] = make(map[types.AppRole]int)
			}
			if f.grants[userID][role] > 0 {
				return types.ErrDuplicateRole
			}
			f.grants[userID][role]++
			return nil
		}).AnyTimes()

	roles.EXPECT().DeleteRoleGrant(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, userID string, role types.AppRole) error {
			delete(f.grants[userID], role)
			return nil
		}).AnyTimes()

	directory.EXPECT().QueryUsers(gomock.Any()).
		DoAndReturn(func(context.Context) ([]*types.AdminUser, error) {
			out := make([]*types.AdminUser, 0, len(userIDs))
			for _, id := range userIDs {
				u := &types.AdminUser{Profile: types.Profile{UserID: id, FullName: "User " + id}}
				for _, role := range []types.AppRole{types.RoleAdmin, types.RoleModerator} {
					for i := 0; i < f.grants[id][role]; i++ {
						u.Roles = append(u.Roles, string(role))
					}
				}
				out = append(out, u)
			}
			return out, nil
		}).AnyTimes()
}

func newUserManagerForTest(t *testing.T) (*UserManager, *mocks.MockRoleRegistry, *mocks.MockUserDirectory, *gomock.Controller) {
	ctl := gomock.NewController(t)
	roles := mocks.NewMockRoleRegistry(ctl)
	directory := mocks.NewMockUserDirectory(ctl)

	roles.EXPECT().CheckRole(gomock.Any(), "admin-1", types.RoleAdmin).Return(true, nil).AnyTimes()

	gate := NewGate(roles, quietLogger(), time.Second)
	return NewUserManager(gate, roles, directory, quietLogger(), time.Second), roles, directory, ctl
}

func countRole(users []*types.AdminUser, userID string, role types.AppRole) int {
	n := 0
	for _, u := range users {
		if u.UserID != userID {
			continue
		}
		for _, r := range u.Roles {
			if r == string(role) {
				n++
			}
		}
	}
	return n
}

func TestAddRoleTwiceFailsWithDuplicate(t *testing.T) {
	manager, roles, directory, ctl := newUserManagerForTest(t)
	defer ctl.Finish()

	newFakeRoleTable().wire(roles, directory, "u1")
	admin := &Actor{ID: "admin-1"}
	ctx := context.Background()

	require.NoError(t, manager.AddRole(ctx, admin, "u1", types.RoleAdmin))
	err := manager.AddRole(ctx, admin, "u1", types.RoleAdmin)

	assert.ErrorIs(t, err, ErrDuplicateRole)
	var storeErr *StoreError
	assert.False(t, errors.As(err, &storeErr), "duplicate grants must not look like generic store failures")
	assert.Equal(t, 1, countRole(manager.Users(), "u1", types.RoleAdmin))
}

func TestRemoveRoleNotGrantedIsNoop(t *testing.T) {
	manager, roles, directory, ctl := newUserManagerForTest(t)
	defer ctl.Finish()

	table := newFakeRoleTable()
	table.wire(roles, directory, "u1")
	admin := &Actor{ID: "admin-1"}
	ctx := context.Background()

	require.NoError(t, manager.AddRole(ctx, admin, "u1", types.RoleModerator))
	require.NoError(t, manager.RemoveRole(ctx, admin, "u1", types.RoleAdmin))

	assert.Equal(t, 0, countRole(manager.Users(), "u1", types.RoleAdmin))
	assert.Equal(t, 1, countRole(manager.Users(), "u1", types.RoleModerator))
}

func TestRemoveRoleReloadsRoster(t *testing.T) {
	manager, roles, directory, ctl := newUserManagerForTest(t)
	defer ctl.Finish()

	newFakeRoleTable().wire(roles, directory, "u1", "u2")
	admin := &Actor{ID: "admin-1"}
	ctx := context.Background()

	require.NoError(t, manager.AddRole(ctx, admin, "u2", types.RoleAdmin))
	assert.Equal(t, 1, ComputeUserStats(manager.Users()).Admins)

	require.NoError(t, manager.RemoveRole(ctx, admin, "u2", types.RoleAdmin))
	assert.Equal(t, 0, ComputeUserStats(manager.Users()).Admins)
	assert.Len(t, manager.Users(), 2)
}

func TestRoleChangesRequireAdmin(t *testing.T) {
	manager, roles, _, ctl := newUserManagerForTest(t)
	defer ctl.Finish()

	roles.EXPECT().CheckRole(gomock.Any(), "member-1", types.RoleAdmin).Return(false, nil).AnyTimes()
	member := &Actor{ID: "member-1"}
	ctx := context.Background()

	assert.ErrorIs(t, manager.AddRole(ctx, member, "member-1", types.RoleAdmin), ErrAuthorizationDenied)
	assert.ErrorIs(t, manager.RemoveRole(ctx, member, "u1", types.RoleAdmin), ErrAuthorizationDenied)
	assert.ErrorIs(t, manager.Refresh(ctx, member), ErrAuthorizationDenied)
	assert.False(t, manager.Loaded())
}

func TestRoleChangesRejectUnknownRole(t *testing.T) {
	manager, _, _, ctl := newUserManagerForTest(t)
	defer ctl.Finish()

	err := manager.AddRole(context.Background(), &Actor{ID: "admin-1"}, "u1", types.AppRole("owner"))
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestAddRoleStoreFailure(t *testing.T) {
	manager, roles, _, ctl := newUserManagerForTest(t)
	defer ctl.Finish()

	roles.EXPECT().InsertRoleGrant(gomock.Any(), "u1", types.RoleModerator).Return(errors.New("connection refused"))

	err := manager.AddRole(context.Background(), &Actor{ID: "admin-1"}, "u1", types.RoleModerator)

	var storeErr *StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "add role", storeErr.Op)
	assert.False(t, manager.Loaded(), "a failed grant must not reload")
}
