// Package activity captures an append-only feed of user actions. Events are
// emitted from domain services, buffered, and drained by a background worker
// into a store and optional external sinks.
package activity

import "time"

// Action identifies what happened.
type Action string

const (
	ActionUserRegistered  Action = "user_registered"
	ActionUserLogin       Action = "user_login"
	ActionLoginFailed     Action = "login_failed"
	ActionProjectCreated  Action = "project_created"
	ActionCategoryCreated Action = "category_created"
	ActionTaskCreated     Action = "task_created"
	ActionTaskUpdated     Action = "task_updated"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Action    Action    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	UserID    int64     `json:"userId,omitempty"`
	Subject   string    `json:"subject,omitempty"` // e.g. "project:12", "task:7"
	Device    string    `json:"device,omitempty"`
	RequestID string    `json:"requestId,omitempty"`
}
