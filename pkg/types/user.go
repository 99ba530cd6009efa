package types

import "time"

type AppRole string

const (
	RoleAdmin     AppRole = "admin"
	RoleModerator AppRole = "moderator"
)

var AllAppRoles = []AppRole{RoleAdmin, RoleModerator}

func (r AppRole) Valid() bool {
	return r == RoleAdmin || r == RoleModerator
}

type Profile struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	FullName  string    `db:"full_name"`
	Phone     *string   `db:"phone"`
	AvatarURL *string   `db:"avatar_url"`
	City      *string   `db:"city"`
	Bio       *string   `db:"bio"`
	IsHelper  bool      `db:"is_helper"`
	IsSeeker  bool      `db:"is_seeker"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// AdminUser is a profile annotated with every role granted to its user.
type AdminUser struct {
	Profile

	Roles []string `db:"roles"`
}

func (u *AdminUser) HasRole(role AppRole) bool {
	for _, r := range u.Roles {
		if r == string(role) {
			return true
		}
	}
	return false
}

type RoleGrant struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Role      AppRole   `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}
