package membership

// MembershipError is returned when an event action cannot be attempted
type MembershipError string

func (e MembershipError) Error() string {
	return string(e)
}

const (
	ErrNotSignedIn MembershipError = "sign in to manage events"
	ErrNoEvent     MembershipError = "event is required"
	ErrNilConfig   MembershipError = "config cannot be nil"
	ErrNilClient   MembershipError = "api client cannot be nil"
)
