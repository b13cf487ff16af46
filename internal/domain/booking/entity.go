package booking

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is the sync-relevant snapshot of a single local reservation.
// CodeGeneratedAt and CodeIsActive mirror the last successful lock-service
// response; they are only mutated after a remote call succeeds.
type Reservation struct {
	ID        uuid.UUID
	SeriesID  *uuid.UUID
	SectionID *uuid.UUID
	Begin     time.Time
	End       time.Time
	State     State
	EntryType EntryType
	Kind      Kind

	CodeGeneratedAt *time.Time
	CodeIsActive    bool
}

// RequiresCode reports whether any code should exist remotely for this
// reservation, active or dormant.
func (r Reservation) RequiresCode() bool {
	return r.EntryType == EntryAccessCode && !r.State.IsVoid()
}

// DesiredActive derives the wanted active flag from the booking kind.
func (r Reservation) DesiredActive() bool {
	return r.Kind != KindBlocked
}

// ContributesWindow reports whether this reservation earns a validity window
// inside a series or seasonal aggregate.
func (r Reservation) ContributesWindow() bool {
	return r.State == StateConfirmed && r.EntryType == EntryAccessCode
}

// HasLocalCode reports whether local state believes a remote code exists.
func (r Reservation) HasLocalCode() bool {
	return r.CodeGeneratedAt != nil
}

// Window is a locally derived validity window for one reservation inside an
// aggregate, carrying the reservation's own desired active flag.
type Window struct {
	ReservationID uuid.UUID
	SeriesID      uuid.UUID
	Begin         time.Time
	End           time.Time
	DesiredActive bool
}

// Series groups the reservations sharing one recurring booking and one code.
type Series struct {
	ID           uuid.UUID
	SectionID    *uuid.UUID
	Reservations []Reservation

	CodeGeneratedAt *time.Time
	CodeIsActive    bool
}

// RequiresCode is true while at least one member still needs entry access.
func (s Series) RequiresCode() bool {
	for _, r := range s.Reservations {
		if r.RequiresCode() {
			return true
		}
	}
	return false
}

func (s Series) HasLocalCode() bool {
	return s.CodeGeneratedAt != nil
}

// EligibleWindows builds the ordered window list submitted to the lock
// service. Only confirmed, access-code reservations contribute.
func (s Series) EligibleWindows() []Window {
	windows := make([]Window, 0, len(s.Reservations))
	for _, r := range s.Reservations {
		if !r.ContributesWindow() {
			continue
		}
		windows = append(windows, Window{
			ReservationID: r.ID,
			SeriesID:      s.ID,
			Begin:         r.Begin,
			End:           r.End,
			DesiredActive: r.DesiredActive(),
		})
	}
	return windows
}

// Section is a seasonal allocation spanning one or more series. The lock
// service has no native series boundary inside a seasonal booking, so windows
// keep their owning series id.
type Section struct {
	ID     uuid.UUID
	Series []Series

	CodeGeneratedAt *time.Time
	CodeIsActive    bool
}

func (s Section) RequiresCode() bool {
	for _, sr := range s.Series {
		if sr.RequiresCode() {
			return true
		}
	}
	return false
}

func (s Section) HasLocalCode() bool {
	return s.CodeGeneratedAt != nil
}

func (s Section) EligibleWindows() []Window {
	var windows []Window
	for _, sr := range s.Series {
		windows = append(windows, sr.EligibleWindows()...)
	}
	return windows
}
