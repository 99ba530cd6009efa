package moderation

import (
	"context"

	"helpbridge/pkg/types"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks helpbridge/internal/moderation RequestStore,RoleRegistry,UserDirectory,ObjectStore

// RequestStore is the request side of the remote data store.
type RequestStore interface {
	QueryRequests(ctx context.Context, view types.RequestView, filter types.FilterSpec) ([]*types.RequestListing, error)
	// UpdateRequest fails with types.ErrRequestClosed when patch changes the
	// status of a closed request. The check is part of the write itself.
	UpdateRequest(ctx context.Context, requestID string, patch types.RequestPatch) error
	// DeleteRequest removes the row and hands the deleted request to cascade
	// before committing. A cascade error rolls the delete back.
	DeleteRequest(ctx context.Context, requestID string, cascade types.DeleteCascade) error
}

// RoleRegistry maps users to their granted roles.
type RoleRegistry interface {
	CheckRole(ctx context.Context, userID string, role types.AppRole) (bool, error)
	InsertRoleGrant(ctx context.Context, userID string, role types.AppRole) error
	DeleteRoleGrant(ctx context.Context, userID string, role types.AppRole) error
}

// UserDirectory lists profiles together with their resolved roles.
type UserDirectory interface {
	QueryUsers(ctx context.Context) ([]*types.AdminUser, error)
}

// ObjectStore holds files owned by requests, such as uploaded images.
type ObjectStore interface {
	DeleteObject(ctx context.Context, key string) error
}
