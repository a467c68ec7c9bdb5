package category

import "time"

// Category groups tasks within a project. Names are not unique within a
// project; task creation deliberately inserts a fresh row per request.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	ProjectID int64     `json:"projectId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
