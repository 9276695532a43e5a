package request

import (
	"strings"

	"clinic-scheduler/internal/domain/schedule"
	"clinic-scheduler/internal/usecase"

	"github.com/google/uuid"
)

type BookAppointmentRequest struct {
	ProfessionalID uuid.UUID `json:"professional_id" binding:"required"`
	Date           string    `json:"date" binding:"required"`
	Time           string    `json:"time" binding:"required"`
	Reason         *string   `json:"reason,omitempty"`
}

// ToParams parses the wire date and time into their domain values. A time
// that parses but misses the professional's grid is rejected later, in the
// booking path itself.
func (r BookAppointmentRequest) ToParams(patientID uuid.UUID) (usecase.BookAppointmentParams, error) {
	date, err := schedule.ParseDate(r.Date)
	if err != nil {
		return usecase.BookAppointmentParams{}, err
	}

	startAt, err := schedule.ParseTimeOfDay(r.Time)
	if err != nil {
		return usecase.BookAppointmentParams{}, err
	}

	var reason string
	if r.Reason != nil {
		reason = strings.TrimSpace(*r.Reason)
	}

	return usecase.BookAppointmentParams{
		PatientID:      patientID,
		ProfessionalID: r.ProfessionalID,
		Date:           date,
		StartAt:        startAt,
		Reason:         reason,
	}, nil
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
