package types

import "time"

type CategoryInfo struct {
	ID           HelpCategory `db:"id"`
	Label        string       `db:"label"`
	Description  *string      `db:"description"`
	Icon         *string      `db:"icon"`
	DisplayOrder int          `db:"display_order"`
	IsActive     bool         `db:"is_active"`
	CreatedAt    time.Time    `db:"created_at"`
}
