package membership

import (
	"time"

	"github.com/KirkDiggler/buddyup/internal/models"
)

// StartingSoonWindow is how close to its start an event counts as starting soon
const StartingSoonWindow = time.Hour

// Badge is a label shown on an event card
type Badge string

const (
	BadgeAttending    Badge = "Attending"
	BadgeFull         Badge = "Event Full"
	BadgeStartingSoon Badge = "Starting Soon"
	BadgeCancelled    Badge = "Cancelled"
)

// Action is the primary control offered for an event
type Action string

const (
	ActionNone       Action = ""
	ActionJoin       Action = "join"
	ActionLeave      Action = "leave"
	ActionCancel     Action = "cancel"
	ActionReactivate Action = "reactivate"
)

// View is what a user sees about their relationship to an event
type View struct {
	IsAttending  bool
	IsHost       bool
	SpotsLeft    int
	StartingSoon bool
	Full         bool
	Expired      bool
	Cancelled    bool
	Badges       []Badge
	Action       Action
}

// Derive computes the membership view of an event for a user at a point in time
func Derive(e *models.Event, userID string, now time.Time) *View {
	v := &View{
		IsAttending: e.HasParticipant(userID),
		IsHost:      userID != "" && e.Creator == userID,
		SpotsLeft:   e.SpotsLeft(),
		Expired:     e.ExpiredAt(now),
		Cancelled:   e.Cancelled,
	}
	v.Full = v.SpotsLeft <= 0

	untilStart := e.StartTime.Sub(now)
	v.StartingSoon = untilStart > 0 && untilStart <= StartingSoonWindow

	if v.IsAttending {
		v.Badges = append(v.Badges, BadgeAttending)
	} else if v.Full {
		v.Badges = append(v.Badges, BadgeFull)
	}
	if v.StartingSoon {
		v.Badges = append(v.Badges, BadgeStartingSoon)
	}
	if v.Cancelled {
		v.Badges = append(v.Badges, BadgeCancelled)
	}

	switch {
	case v.IsHost && v.Cancelled:
		v.Action = ActionReactivate
	case v.IsHost:
		v.Action = ActionCancel
	case v.IsAttending:
		v.Action = ActionLeave
	case v.Full, v.Expired, v.Cancelled:
		v.Action = ActionNone
	default:
		v.Action = ActionJoin
	}

	return v
}
