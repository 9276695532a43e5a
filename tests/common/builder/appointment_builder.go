//go:build unit || e2e

package builder

import (
	"time"

	domappt "clinic-scheduler/internal/domain/appointment"
	"clinic-scheduler/internal/domain/schedule"
	reqdto "clinic-scheduler/internal/handler/dto/request"
	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	PatientID        uuid.UUID
	ProfessionalID   uuid.UUID
	ProfessionalName string
	Specialization   string
	Date             string
	Time             string
	WorkStart        string
	WorkEnd          string
	Status           string
	Reason           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Now()
	return &AppointmentBuilder{
		PatientID:        uuid.New(),
		ProfessionalID:   uuid.New(),
		ProfessionalName: "Sarah Chen",
		Specialization:   "Cardiology",
		Date:             "2026-09-15",
		Time:             "09:30",
		WorkStart:        "09:00",
		WorkEnd:          "17:00",
		Status:           "requested",
		Reason:           "Annual checkup",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Build methods
func (b *AppointmentBuilder) BuildDomain() (*domappt.Appointment, error) {
	date, err := schedule.ParseDate(b.Date)
	if err != nil {
		return nil, err
	}
	startAt, err := schedule.ParseTimeOfDay(b.Time)
	if err != nil {
		return nil, err
	}
	window, err := b.buildWindow()
	if err != nil {
		return nil, err
	}
	return domappt.NewAppointment(b.PatientID, b.ProfessionalID, date, startAt, window, domappt.NewReason(b.Reason))
}

func (b *AppointmentBuilder) BuildParams() (usecase.BookAppointmentParams, error) {
	date, err := schedule.ParseDate(b.Date)
	if err != nil {
		return usecase.BookAppointmentParams{}, err
	}
	startAt, err := schedule.ParseTimeOfDay(b.Time)
	if err != nil {
		return usecase.BookAppointmentParams{}, err
	}
	return usecase.BookAppointmentParams{
		PatientID:      b.PatientID,
		ProfessionalID: b.ProfessionalID,
		Date:           date,
		StartAt:        startAt,
		Reason:         b.Reason,
	}, nil
}

func (b *AppointmentBuilder) BuildBookRequestDTO() reqdto.BookAppointmentRequest {
	reason := b.Reason
	return reqdto.BookAppointmentRequest{
		ProfessionalID: b.ProfessionalID,
		Date:           b.Date,
		Time:           b.Time,
		Reason:         &reason,
	}
}

func (b *AppointmentBuilder) BuildRM() *readmodel.AppointmentRM {
	reason := b.Reason
	return &readmodel.AppointmentRM{
		ID:               uuid.New(),
		PatientID:        b.PatientID,
		ProfessionalID:   b.ProfessionalID,
		ProfessionalName: b.ProfessionalName,
		Specialization:   b.Specialization,
		Date:             b.Date,
		Time:             b.Time,
		Status:           b.Status,
		Reason:           &reason,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (b *AppointmentBuilder) BuildListRM() *readmodel.AppointmentListRM {
	reason := b.Reason
	return &readmodel.AppointmentListRM{
		ID:               uuid.New(),
		ProfessionalID:   b.ProfessionalID,
		ProfessionalName: b.ProfessionalName,
		Specialization:   b.Specialization,
		Date:             b.Date,
		Time:             b.Time,
		Status:           b.Status,
		Reason:           &reason,
		CreatedAt:        b.CreatedAt,
	}
}

func (b *AppointmentBuilder) buildWindow() (schedule.Window, error) {
	start, err := schedule.ParseTimeOfDay(b.WorkStart)
	if err != nil {
		return schedule.Window{}, err
	}
	end, err := schedule.ParseTimeOfDay(b.WorkEnd)
	if err != nil {
		return schedule.Window{}, err
	}
	return schedule.NewWindow(start.Minutes(), end.Minutes())
}

// Fluent builder methods
func (b *AppointmentBuilder) WithPatientID(patientID uuid.UUID) *AppointmentBuilder {
	b.PatientID = patientID
	return b
}

func (b *AppointmentBuilder) WithProfessionalID(professionalID uuid.UUID) *AppointmentBuilder {
	b.ProfessionalID = professionalID
	return b
}

func (b *AppointmentBuilder) WithDate(date string) *AppointmentBuilder {
	b.Date = date
	return b
}

func (b *AppointmentBuilder) WithTime(timeOfDay string) *AppointmentBuilder {
	b.Time = timeOfDay
	return b
}

func (b *AppointmentBuilder) WithWorkingHours(start, end string) *AppointmentBuilder {
	b.WorkStart = start
	b.WorkEnd = end
	return b
}

func (b *AppointmentBuilder) WithStatus(status string) *AppointmentBuilder {
	b.Status = status
	return b
}

func (b *AppointmentBuilder) WithReason(reason string) *AppointmentBuilder {
	b.Reason = reason
	return b
}

func (b *AppointmentBuilder) AsConfirmed() *AppointmentBuilder {
	b.Status = "confirmed"
	return b
}

func (b *AppointmentBuilder) AsCancelled() *AppointmentBuilder {
	b.Status = "cancelled"
	return b
}
