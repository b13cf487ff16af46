package booking

// State is the local lifecycle state of a reservation.
type State string

const (
	StateCreated   State = "created"
	StateConfirmed State = "confirmed"
	StateDenied    State = "denied"
	StateCancelled State = "cancelled"
)

// IsVoid reports whether the reservation can no longer grant entry.
func (s State) IsVoid() bool {
	return s == StateDenied || s == StateCancelled
}

// EntryType says how the guest physically gets in.
type EntryType string

const (
	EntryAccessCode   EntryType = "access_code"
	EntryUnrestricted EntryType = "unrestricted"
)

// Kind distinguishes a normal booking from a blocking placeholder. A blocking
// booking reserves the slot on the lock side but keeps its code dormant.
type Kind string

const (
	KindNormal  Kind = "normal"
	KindBlocked Kind = "blocked"
)
