package messaging

import (
	"time"

	"go.uber.org/zap"
)

// Severity is how a notice is styled
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Action is the user action a notice reports on
type Action string

const (
	ActionLogin         Action = "login"
	ActionLogout        Action = "logout"
	ActionJoin          Action = "join"
	ActionLeave         Action = "leave"
	ActionCancel        Action = "cancel"
	ActionReactivate    Action = "reactivate"
	ActionUpdateProfile Action = "update_profile"
	ActionInterests     Action = "interests"
	ActionUploadImage   Action = "upload_image"
	ActionLoadEvents    Action = "load_events"
)

// CloseReason says why a notice is being closed
type CloseReason string

const (
	// CloseClickaway is a click outside the notice; it does not close it
	CloseClickaway CloseReason = "clickaway"
	CloseTimeout   CloseReason = "timeout"
	CloseDismiss   CloseReason = "dismiss"
)

// DefaultAutoHide is how long a notice stays open on its own
const DefaultAutoHide = 3 * time.Second

// Notice is a transient message shown after an action
type Notice struct {
	Severity Severity
	Title    string
	Message  string
	AutoHide time.Duration

	open bool
}

// IsOpen reports whether the notice is still showing
func (n *Notice) IsOpen() bool {
	return n.open
}

// Close hides the notice unless the reason is a clickaway, and reports whether it closed
func (n *Notice) Close(reason CloseReason) bool {
	if reason == CloseClickaway || !n.open {
		return false
	}
	n.open = false
	return true
}

// GetNoticeInput contains parameters for building a notice
type GetNoticeInput struct {
	Action Action

	// Err is the failure, if any; its backend message is shown when present
	Err error

	// Subject is what the action applied to, like an event title
	Subject string
}

// GetNoticeOutput contains the notice to show
type GetNoticeOutput struct {
	Notice *Notice
}

// Config contains configuration for the messaging service
type Config struct {
	// Seed fixes message selection; zero seeds from the clock
	Seed int64

	// AutoHide overrides DefaultAutoHide
	AutoHide time.Duration

	Logger *zap.Logger
}
