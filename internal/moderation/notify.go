package moderation

import (
	"errors"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is the user-facing outcome of a moderation action.
type Notification struct {
	Title       string
	Description string
	Variant     Variant
}

func (n Notification) Failed() bool {
	return n.Variant == VariantDestructive
}

type Action string

const (
	ActionVerify        Action = "verify"
	ActionUnverify      Action = "unverify"
	ActionUpdateStatus  Action = "update_status"
	ActionDelete        Action = "delete"
	ActionAddRole       Action = "add_role"
	ActionRemoveRole    Action = "remove_role"
	ActionFetchRequests Action = "fetch_requests"
	ActionFetchUsers    Action = "fetch_users"
)

type actionMessages struct {
	success string
	failure string
}

var messages = map[Action]actionMessages{
	ActionVerify:        {success: "Request verified successfully", failure: "Failed to verify request"},
	ActionUnverify:      {success: "Request unverified", failure: "Failed to unverify request"},
	ActionUpdateStatus:  {success: "Request status updated", failure: "Failed to update request status"},
	ActionDelete:        {success: "Request deleted successfully", failure: "Failed to delete request"},
	ActionAddRole:       {success: "Role added successfully", failure: "Failed to add role"},
	ActionRemoveRole:    {success: "Role removed successfully", failure: "Failed to remove role"},
	ActionFetchRequests: {success: "Requests refreshed", failure: "Failed to fetch requests"},
	ActionFetchUsers:    {success: "Users refreshed", failure: "Failed to fetch users"},
}

// Notify converts the result of an action into the message shown to the
// admin. Typed failures get a specific description, anything else the
// action's generic failure text.
func Notify(action Action, err error) Notification {
	msg := messages[action]

	if err == nil {
		return Notification{Title: "Success", Description: msg.success, Variant: VariantDefault}
	}

	var reloadErr *ReloadError
	description := msg.failure

	switch {
	case errors.As(err, &reloadErr):
		if action == ActionAddRole || action == ActionRemoveRole || action == ActionFetchUsers {
			description = messages[ActionFetchUsers].failure
		} else {
			description = messages[ActionFetchRequests].failure
		}
	case errors.Is(err, ErrDuplicateRole):
		description = "User already has this role"
	case errors.Is(err, ErrRequestClosed):
		description = "Closed requests cannot change status"
	case errors.Is(err, ErrNotFound):
		description = "Request not found"
		if action == ActionAddRole || action == ActionRemoveRole {
			description = "User not found"
		}
	case errors.Is(err, ErrOperationInFlight):
		description = "Another action on this request is still in progress"
	case errors.Is(err, ErrInvalidStatus):
		description = "Unknown request status"
	case errors.Is(err, ErrInvalidRole):
		description = "Unknown role"
	case errors.Is(err, ErrAuthorizationDenied):
		description = "You are not allowed to do that"
	}

	return Notification{Title: "Error", Description: description, Variant: VariantDestructive}
}
