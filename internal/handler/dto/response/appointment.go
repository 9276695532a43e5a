package response

import (
	"time"

	"clinic-scheduler/internal/domain/schedule"
	"clinic-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID               uuid.UUID `json:"id"`
	PatientID        uuid.UUID `json:"patientId"`
	ProfessionalID   uuid.UUID `json:"professionalId"`
	ProfessionalName string    `json:"professionalName"`
	Specialization   string    `json:"specialization"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Status           string    `json:"status"`
	Reason           *string   `json:"reason,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type AppointmentListResponse struct {
	ID               uuid.UUID `json:"id"`
	ProfessionalID   uuid.UUID `json:"professionalId"`
	ProfessionalName string    `json:"professionalName"`
	Specialization   string    `json:"specialization"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Status           string    `json:"status"`
	Reason           *string   `json:"reason,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

type AvailabilityResponse struct {
	ProfessionalID uuid.UUID `json:"professionalId"`
	Date           string    `json:"date"`
	Slots          []string  `json:"slots"`
}

func FromAppointmentRM(rm *readmodel.AppointmentRM) *AppointmentResponse {
	return &AppointmentResponse{
		ID:               rm.ID,
		PatientID:        rm.PatientID,
		ProfessionalID:   rm.ProfessionalID,
		ProfessionalName: rm.ProfessionalName,
		Specialization:   rm.Specialization,
		Date:             rm.Date,
		Time:             rm.Time,
		Status:           rm.Status,
		Reason:           rm.Reason,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromAppointmentListRM(rm *readmodel.AppointmentListRM) *AppointmentListResponse {
	return &AppointmentListResponse{
		ID:               rm.ID,
		ProfessionalID:   rm.ProfessionalID,
		ProfessionalName: rm.ProfessionalName,
		Specialization:   rm.Specialization,
		Date:             rm.Date,
		Time:             rm.Time,
		Status:           rm.Status,
		Reason:           rm.Reason,
		CreatedAt:        rm.CreatedAt,
	}
}

func NewAvailabilityResponse(professionalID uuid.UUID, date schedule.Date, slots []schedule.TimeOfDay) *AvailabilityResponse {
	formatted := make([]string, len(slots))
	for i, s := range slots {
		formatted[i] = s.String()
	}
	return &AvailabilityResponse{
		ProfessionalID: professionalID,
		Date:           date.String(),
		Slots:          formatted,
	}
}
