package appointment

import (
	"errors"
	"strings"
	"time"

	"clinic-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidSlot       = errors.New("time is not a bookable slot of the working window")
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidTransition = errors.New("status transition not permitted")
)

type Appointment struct {
	id             uuid.UUID
	patientID      uuid.UUID
	professionalID uuid.UUID
	date           schedule.Date
	startAt        schedule.TimeOfDay
	status         Status
	reason         Reason
	createdAt      time.Time
	updatedAt      time.Time
}

// NewAppointment creates a booking request for a slot of the professional's
// working window. The requested time must be a grid point of the window;
// anything else is rejected here, before the store is ever consulted.
func NewAppointment(
	patientID, professionalID uuid.UUID,
	date schedule.Date,
	startAt schedule.TimeOfDay,
	window schedule.Window,
	reason Reason,
) (*Appointment, error) {
	if !window.Contains(startAt) {
		return nil, ErrInvalidSlot
	}

	return &Appointment{
		id:             uuid.New(),
		patientID:      patientID,
		professionalID: professionalID,
		date:           date,
		startAt:        startAt,
		status:         StatusRequested,
		reason:         reason,
	}, nil
}

func ReconstructAppointment(
	id, patientID, professionalID uuid.UUID,
	date schedule.Date,
	startAt schedule.TimeOfDay,
	status Status,
	reason Reason,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:             id,
		patientID:      patientID,
		professionalID: professionalID,
		date:           date,
		startAt:        startAt,
		status:         status,
		reason:         reason,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ChangeStatus moves the appointment to next if the lifecycle permits it.
func (a *Appointment) ChangeStatus(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !a.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.status = next
	return nil
}

func (a *Appointment) IsActive() bool {
	return a.status.IsActive()
}

func (a *Appointment) ID() uuid.UUID               { return a.id }
func (a *Appointment) PatientID() uuid.UUID        { return a.patientID }
func (a *Appointment) ProfessionalID() uuid.UUID   { return a.professionalID }
func (a *Appointment) Date() schedule.Date         { return a.date }
func (a *Appointment) StartAt() schedule.TimeOfDay { return a.startAt }
func (a *Appointment) Status() Status              { return a.status }
func (a *Appointment) Reason() Reason              { return a.reason }
func (a *Appointment) CreatedAt() time.Time        { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time        { return a.updatedAt }

// Reason is the patient's free-text visit reason, opaque to scheduling.
type Reason struct {
	value string
}

func NewReason(value string) Reason {
	return Reason{value: strings.TrimSpace(value)}
}

func (r Reason) String() string {
	return r.value
}

func (r Reason) IsEmpty() bool {
	return r.value == ""
}
