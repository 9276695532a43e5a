package usecase

import (
	"context"
	"errors"

	"clinic-scheduler/internal/domain/appointment"
	"clinic-scheduler/internal/domain/professional"
	"clinic-scheduler/internal/domain/schedule"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrProfessionalNotFound = errs.New("professional not found")
	ErrAppointmentNotFound  = errs.New("appointment not found")
	ErrInvalidSlot          = errs.New("invalid appointment slot")
	ErrSlotTaken            = errs.New("time slot not available")
	ErrInvalidStatus        = errs.New("invalid appointment status")
	ErrInvalidTransition    = errs.New("status transition not permitted")

	// Error markers for categorization
	ErrDomainValidationFailed  = errs.New("domain validation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt *appointment.Appointment) (*readmodel.AppointmentRM, error)
	ApplyStatus(ctx context.Context, id, patientID uuid.UUID, next appointment.Status) (*readmodel.AppointmentRM, error)
	ListActiveTimes(ctx context.Context, professionalID uuid.UUID, date schedule.Date) ([]schedule.TimeOfDay, error)
	FindByPatient(ctx context.Context, patientID uuid.UUID) ([]*readmodel.AppointmentListRM, error)
}

type ProfessionalRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ProfessionalRM, error)
	List(ctx context.Context) ([]*readmodel.ProfessionalRM, error)
	ListBySpecialization(ctx context.Context, specialization string) ([]*readmodel.ProfessionalRM, error)
}

type BookAppointmentParams struct {
	PatientID      uuid.UUID
	ProfessionalID uuid.UUID
	Date           schedule.Date
	StartAt        schedule.TimeOfDay
	Reason         string
}

type SchedulingUseCase interface {
	BookAppointment(ctx context.Context, params BookAppointmentParams) (*readmodel.AppointmentRM, error)
	ListAvailability(ctx context.Context, professionalID uuid.UUID, date schedule.Date) ([]schedule.TimeOfDay, error)
	UpdateAppointmentStatus(ctx context.Context, patientID, appointmentID uuid.UUID, next appointment.Status) (*readmodel.AppointmentRM, error)
	ListAppointmentsForPatient(ctx context.Context, patientID uuid.UUID) ([]*readmodel.AppointmentListRM, error)
}

type schedulingUseCaseImpl struct {
	appointmentRepo  AppointmentRepository
	professionalRepo ProfessionalRepository
}

func NewSchedulingUseCase(
	appointmentRepo AppointmentRepository,
	professionalRepo ProfessionalRepository,
) SchedulingUseCase {
	return &schedulingUseCaseImpl{
		appointmentRepo:  appointmentRepo,
		professionalRepo: professionalRepo,
	}
}

// BookAppointment reserves one grid slot for the caller. The repository's
// insert is the per-slot critical section: a concurrent booking of the same
// (professional, date, time) key resolves to exactly one success, the loser
// gets ErrSlotTaken and may retry with another slot.
func (s *schedulingUseCaseImpl) BookAppointment(
	ctx context.Context,
	params BookAppointmentParams,
) (*readmodel.AppointmentRM, error) {
	professionalEntity, err := s.validateAndGetProfessional(ctx, params.ProfessionalID)
	if err != nil {
		return nil, err
	}

	appt, err := appointment.NewAppointment(
		params.PatientID,
		params.ProfessionalID,
		params.Date,
		params.StartAt,
		professionalEntity.Window(),
		appointment.NewReason(params.Reason),
	)
	if err != nil {
		if errors.Is(err, appointment.ErrInvalidSlot) {
			return nil, ErrInvalidSlot
		}
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := s.appointmentRepo.Create(ctx, appt)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrSlotTaken
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrProfessionalNotFound
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return rm, nil
}

// ListAvailability returns the professional's free grid times for a date.
// The result reflects a snapshot of the ledger, not a hold: any returned slot
// can be taken before the caller books it.
func (s *schedulingUseCaseImpl) ListAvailability(
	ctx context.Context,
	professionalID uuid.UUID,
	date schedule.Date,
) ([]schedule.TimeOfDay, error) {
	professionalEntity, err := s.validateAndGetProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	bookedTimes, err := s.appointmentRepo.ListActiveTimes(ctx, professionalID, date)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return schedule.FreeSlots(professionalEntity.Window(), bookedTimes), nil
}

func (s *schedulingUseCaseImpl) UpdateAppointmentStatus(
	ctx context.Context,
	patientID, appointmentID uuid.UUID,
	next appointment.Status,
) (*readmodel.AppointmentRM, error) {
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}

	rm, err := s.appointmentRepo.ApplyStatus(ctx, appointmentID, patientID, next)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrAppointmentNotFound
		case errors.Is(err, appointment.ErrInvalidTransition):
			return nil, ErrInvalidTransition
		case errors.Is(err, appointment.ErrInvalidStatus):
			return nil, ErrInvalidStatus
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return rm, nil
}

func (s *schedulingUseCaseImpl) ListAppointmentsForPatient(ctx context.Context, patientID uuid.UUID) ([]*readmodel.AppointmentListRM, error) {
	appointments, err := s.appointmentRepo.FindByPatient(ctx, patientID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find patient appointments")
	}

	return appointments, nil
}

func (s *schedulingUseCaseImpl) validateAndGetProfessional(
	ctx context.Context,
	professionalID uuid.UUID,
) (*professional.Professional, error) {
	professionalRM, err := s.professionalRepo.FindByID(ctx, professionalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProfessionalNotFound
		}
		return nil, errs.Wrap(err, "failed to find professional")
	}

	return professional.NewProfessional(
		professionalRM.ID,
		professionalRM.FirstName,
		professionalRM.LastName,
		professionalRM.Specialization,
		int(professionalRM.WorkStartMin),
		int(professionalRM.WorkEndMin),
	)
}
