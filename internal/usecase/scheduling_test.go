//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"clinic-scheduler/internal/domain/appointment"
	"clinic-scheduler/internal/domain/schedule"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/internal/usecase/readmodel"
	"clinic-scheduler/tests/common/builder"
	usecasemock "clinic-scheduler/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SchedulingUseCaseTestSuite struct {
	suite.Suite
	mockCtrl             *gomock.Controller
	mockAppointmentRepo  *usecasemock.MockAppointmentRepository
	mockProfessionalRepo *usecasemock.MockProfessionalRepository
	useCase              usecase.SchedulingUseCase
}

func (s *SchedulingUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAppointmentRepo = usecasemock.NewMockAppointmentRepository(s.mockCtrl)
	s.mockProfessionalRepo = usecasemock.NewMockProfessionalRepository(s.mockCtrl)
	s.useCase = usecase.NewSchedulingUseCase(s.mockAppointmentRepo, s.mockProfessionalRepo)
}

func (s *SchedulingUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSchedulingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(SchedulingUseCaseTestSuite))
}

// working 09:00-10:00 unless a test says otherwise
func (s *SchedulingUseCaseTestSuite) professionalRM(id uuid.UUID) *readmodel.ProfessionalRM {
	return &readmodel.ProfessionalRM{
		ID:             id,
		FirstName:      "Sarah",
		LastName:       "Chen",
		Specialization: "Cardiology",
		WorkStartMin:   540,
		WorkEndMin:     600,
	}
}

func (s *SchedulingUseCaseTestSuite) bookParams(professionalID uuid.UUID, timeOfDay string) usecase.BookAppointmentParams {
	params, err := builder.NewAppointmentBuilder().
		WithProfessionalID(professionalID).
		WithTime(timeOfDay).
		BuildParams()
	require.NoError(s.T(), err)
	return params
}

func (s *SchedulingUseCaseTestSuite) TestBookAppointment() {
	s.Run("success: returns the created appointment", func() {
		professionalID := uuid.New()
		expected := builder.NewAppointmentBuilder().WithProfessionalID(professionalID).BuildRM()

		s.mockProfessionalRepo.EXPECT().FindByID(gomock.Any(), professionalID).
			Return(s.professionalRM(professionalID), nil).Times(1)
		s.mockAppointmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(expected, nil).Times(1)

		rm, err := s.useCase.BookAppointment(context.Background(), s.bookParams(professionalID, "09:30"))
		s.Require().NoError(err)
		s.Equal(expected.ID, rm.ID)
	})

	s.Run("unknown professional maps to ErrProfessionalNotFound", func() {
		professionalID := uuid.New()
		s.mockProfessionalRepo.EXPECT().FindByID(gomock.Any(), professionalID).
			Return(nil, infra.WrapRepoErr("professional not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.useCase.BookAppointment(context.Background(), s.bookParams(professionalID, "09:30"))
		s.ErrorIs(err, usecase.ErrProfessionalNotFound)
	})

	s.Run("off grid time is rejected before the store is consulted", func() {
		professionalID := uuid.New()
		s.mockProfessionalRepo.EXPECT().FindByID(gomock.Any(), professionalID).
			Return(s.professionalRM(professionalID), nil).Times(1)

		_, err := s.useCase.BookAppointment(context.Background(), s.bookParams(professionalID, "09:15"))
		s.ErrorIs(err, usecase.ErrInvalidSlot)
	})

	s.Run("time outside working hours is rejected", func() {
		professionalID := uuid.New()
		s.mockProfessionalRepo.EXPECT().FindByID(gomock.Any(), professionalID).
			Return(s.professionalRM(professionalID), nil).Times(1)

		_, err := s.useCase.BookAppointment(context.Background(), s.bookParams(professionalID, "10:00"))
		s.ErrorIs(err, usecase.ErrInvalidSlot)
	})

	s.Run("conflict from the store maps to ErrSlotTaken", func() {
		professionalID := uuid.New()
		s.mockProfessionalRepo.EXPECT().FindByID(gomock.Any(), professionalID).
			Return(s.professionalRM(professionalID), nil).Times(1)
		s.mockAppointmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("slot already booked", errors.New("duplicate key"), infra.KindConflict)).Times(1)

		_, err := s.useCase.BookAppointment(context.Background(), s.bookParams(professionalID, "09:00"))
		s.ErrorIs(err, usecase.ErrSlotTaken)
	})

	s.Run("foreign key violation maps to ErrProfessionalNotFound", func() {
		professionalID := uuid.New()
		s.mockProfessionalRepo.EXPECT().FindByID(gomock.Any(), professionalID).
			Return(s.professionalRM(professionalID), nil).Times(1)
		s.mockAppointmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("professional vanished", errors.New("fk violation"), infra.KindForeignKeyViolated)).Times(1)

		_, err := s.useCase.BookAppointment(context.Background(), s.bookParams(professionalID, "09:00"))
		s.ErrorIs(err, usecase.ErrProfessionalNotFound)
	})
}

func (s *SchedulingUseCaseTestSuite) TestListAvailability() {
	date, err := schedule.ParseDate("2026-09-15")
	require.NoError(s.T(), err)

	s.Run("booked times are removed from the grid", func() {
		professionalID := uuid.New()
		booked, err := schedule.ParseTimeOfDay("09:00")
		require.NoError(s.T(), err)

		s.mockProfessionalRepo.EXPECT().FindByID(gomock.Any(), professionalID).
			Return(s.professionalRM(professionalID), nil).Times(1)
		s.mockAppointmentRepo.EXPECT().ListActiveTimes(gomock.Any(), professionalID, date).
			Return([]schedule.TimeOfDay{booked}, nil).Times(1)

		slots, err := s.useCase.ListAvailability(context.Background(), professionalID, date)
		s.Require().NoError(err)
		s.Require().Len(slots, 1)
		s.Equal("09:30", slots[0].String())
	})

	s.Run("unknown professional maps to ErrProfessionalNotFound", func() {
		professionalID := uuid.New()
		s.mockProfessionalRepo.EXPECT().FindByID(gomock.Any(), professionalID).
			Return(nil, infra.WrapRepoErr("professional not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.useCase.ListAvailability(context.Background(), professionalID, date)
		s.ErrorIs(err, usecase.ErrProfessionalNotFound)
	})
}

func (s *SchedulingUseCaseTestSuite) TestUpdateAppointmentStatus() {
	patientID := uuid.New()
	appointmentID := uuid.New()

	s.Run("unknown status is rejected before the store is consulted", func() {
		_, err := s.useCase.UpdateAppointmentStatus(context.Background(), patientID, appointmentID, appointment.Status("rescheduled"))
		s.ErrorIs(err, usecase.ErrInvalidStatus)
	})

	s.Run("missing appointment maps to ErrAppointmentNotFound", func() {
		s.mockAppointmentRepo.EXPECT().ApplyStatus(gomock.Any(), appointmentID, patientID, appointment.StatusCancelled).
			Return(nil, infra.WrapRepoErr("appointment not found", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.useCase.UpdateAppointmentStatus(context.Background(), patientID, appointmentID, appointment.StatusCancelled)
		s.ErrorIs(err, usecase.ErrAppointmentNotFound)
	})

	s.Run("lifecycle violation maps to ErrInvalidTransition", func() {
		s.mockAppointmentRepo.EXPECT().ApplyStatus(gomock.Any(), appointmentID, patientID, appointment.StatusCompleted).
			Return(nil, appointment.ErrInvalidTransition).Times(1)

		_, err := s.useCase.UpdateAppointmentStatus(context.Background(), patientID, appointmentID, appointment.StatusCompleted)
		s.ErrorIs(err, usecase.ErrInvalidTransition)
	})
}

// ================================================================================
// Concurrency behavior against an in-memory ledger that enforces the same
// one-active-booking-per-slot rule as the database index.
// ================================================================================

type storedAppointment struct {
	id             uuid.UUID
	patientID      uuid.UUID
	professionalID uuid.UUID
	date           string
	startAt        schedule.TimeOfDay
	status         appointment.Status
}

type fakeAppointmentLedger struct {
	mu           sync.Mutex
	activeSlots  map[string]uuid.UUID
	appointments map[uuid.UUID]*storedAppointment
}

func newFakeAppointmentLedger() *fakeAppointmentLedger {
	return &fakeAppointmentLedger{
		activeSlots:  make(map[string]uuid.UUID),
		appointments: make(map[uuid.UUID]*storedAppointment),
	}
}

func slotKey(professionalID uuid.UUID, date string, startAt schedule.TimeOfDay) string {
	return fmt.Sprintf("%s/%s/%s", professionalID, date, startAt)
}

func (f *fakeAppointmentLedger) Create(_ context.Context, appt *appointment.Appointment) (*readmodel.AppointmentRM, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := slotKey(appt.ProfessionalID(), appt.Date().String(), appt.StartAt())
	if _, taken := f.activeSlots[key]; taken {
		return nil, infra.WrapRepoErr("slot already booked", errors.New("duplicate key"), infra.KindConflict)
	}

	stored := &storedAppointment{
		id:             appt.ID(),
		patientID:      appt.PatientID(),
		professionalID: appt.ProfessionalID(),
		date:           appt.Date().String(),
		startAt:        appt.StartAt(),
		status:         appt.Status(),
	}
	f.activeSlots[key] = stored.id
	f.appointments[stored.id] = stored

	return f.toRM(stored), nil
}

func (f *fakeAppointmentLedger) ApplyStatus(_ context.Context, id, patientID uuid.UUID, next appointment.Status) (*readmodel.AppointmentRM, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.appointments[id]
	if !ok || stored.patientID != patientID {
		return nil, infra.WrapRepoErr("appointment not found", errors.New("no rows"), infra.KindNotFound)
	}
	if !stored.status.CanTransitionTo(next) {
		return nil, appointment.ErrInvalidTransition
	}

	stored.status = next
	if next == appointment.StatusCancelled {
		delete(f.activeSlots, slotKey(stored.professionalID, stored.date, stored.startAt))
	}
	return f.toRM(stored), nil
}

func (f *fakeAppointmentLedger) ListActiveTimes(_ context.Context, professionalID uuid.UUID, date schedule.Date) ([]schedule.TimeOfDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var times []schedule.TimeOfDay
	for _, stored := range f.appointments {
		if stored.professionalID == professionalID && stored.date == date.String() && stored.status.IsActive() {
			times = append(times, stored.startAt)
		}
	}
	return times, nil
}

func (f *fakeAppointmentLedger) FindByPatient(_ context.Context, patientID uuid.UUID) ([]*readmodel.AppointmentListRM, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []*readmodel.AppointmentListRM
	for _, stored := range f.appointments {
		if stored.patientID == patientID {
			result = append(result, &readmodel.AppointmentListRM{
				ID:             stored.id,
				ProfessionalID: stored.professionalID,
				Date:           stored.date,
				Time:           stored.startAt.String(),
				Status:         stored.status.String(),
			})
		}
	}
	return result, nil
}

func (f *fakeAppointmentLedger) toRM(stored *storedAppointment) *readmodel.AppointmentRM {
	return &readmodel.AppointmentRM{
		ID:             stored.id,
		PatientID:      stored.patientID,
		ProfessionalID: stored.professionalID,
		Date:           stored.date,
		Time:           stored.startAt.String(),
		Status:         stored.status.String(),
	}
}

type fakeProfessionalDirectory struct {
	rm *readmodel.ProfessionalRM
}

func (f *fakeProfessionalDirectory) FindByID(_ context.Context, id uuid.UUID) (*readmodel.ProfessionalRM, error) {
	if id != f.rm.ID {
		return nil, infra.WrapRepoErr("professional not found", errors.New("no rows"), infra.KindNotFound)
	}
	return f.rm, nil
}

func (f *fakeProfessionalDirectory) List(_ context.Context) ([]*readmodel.ProfessionalRM, error) {
	return []*readmodel.ProfessionalRM{f.rm}, nil
}

func (f *fakeProfessionalDirectory) ListBySpecialization(_ context.Context, _ string) ([]*readmodel.ProfessionalRM, error) {
	return []*readmodel.ProfessionalRM{f.rm}, nil
}

func newLedgerUseCase(t *testing.T) (usecase.SchedulingUseCase, uuid.UUID) {
	t.Helper()

	professionalID := uuid.New()
	directory := &fakeProfessionalDirectory{
		rm: &readmodel.ProfessionalRM{
			ID:             professionalID,
			FirstName:      "Sarah",
			LastName:       "Chen",
			Specialization: "Cardiology",
			WorkStartMin:   540,
			WorkEndMin:     600,
		},
	}
	return usecase.NewSchedulingUseCase(newFakeAppointmentLedger(), directory), professionalID
}

func TestConcurrentBookingOfSameSlot(t *testing.T) {
	uc, professionalID := newLedgerUseCase(t)

	makeParams := func() usecase.BookAppointmentParams {
		params, err := builder.NewAppointmentBuilder().
			WithPatientID(uuid.New()).
			WithProfessionalID(professionalID).
			WithTime("09:00").
			BuildParams()
		require.NoError(t, err)
		return params
	}

	const attempts = 8
	errCh := make(chan error, attempts)

	var wg sync.WaitGroup
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.BookAppointment(context.Background(), makeParams())
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	var successes, conflicts int
	for err := range errCh {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, usecase.ErrSlotTaken):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes, "同一スロットの同時予約は必ず一件だけ成功する")
	assert.Equal(t, attempts-1, conflicts)
}

func TestCancelThenRebook(t *testing.T) {
	uc, professionalID := newLedgerUseCase(t)
	ctx := context.Background()

	date, err := schedule.ParseDate("2026-09-15")
	require.NoError(t, err)

	book := func(patientID uuid.UUID) (*readmodel.AppointmentRM, error) {
		params, err := builder.NewAppointmentBuilder().
			WithPatientID(patientID).
			WithProfessionalID(professionalID).
			WithTime("09:00").
			BuildParams()
		require.NoError(t, err)
		return uc.BookAppointment(ctx, params)
	}

	freeSlots := func() []string {
		slots, err := uc.ListAvailability(ctx, professionalID, date)
		require.NoError(t, err)
		result := make([]string, len(slots))
		for i, s := range slots {
			result[i] = s.String()
		}
		return result
	}

	patientA := uuid.New()
	patientB := uuid.New()

	first, err := book(patientA)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:30"}, freeSlots(), "booked slot disappears from availability")

	// Same slot is blocked while the booking is active
	_, err = book(patientB)
	require.ErrorIs(t, err, usecase.ErrSlotTaken)

	// Cancelling releases the slot
	_, err = uc.UpdateAppointmentStatus(ctx, patientA, first.ID, appointment.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30"}, freeSlots(), "cancelled slot is free again")

	// And another patient can take it
	rebooked, err := book(patientB)
	require.NoError(t, err)
	assert.Equal(t, patientB, rebooked.PatientID)

	// The cancelled record stays terminal
	_, err = uc.UpdateAppointmentStatus(ctx, patientA, first.ID, appointment.StatusConfirmed)
	require.ErrorIs(t, err, usecase.ErrInvalidTransition)
}
