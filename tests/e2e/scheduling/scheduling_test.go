//go:build e2e

package scheduling_test

import (
	"net/http"
	"sync"
	"testing"

	"clinic-scheduler/internal/domain/subject"
	"clinic-scheduler/internal/handler/dto/response"
	"clinic-scheduler/tests/common/authtest"
	"clinic-scheduler/tests/common/builder"
	"clinic-scheduler/tests/common/dbtest"
	"clinic-scheduler/tests/common/httptest"
	"clinic-scheduler/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	appointmentsURL = "/api/appointments"
)

type SchedulingSuite struct {
	e2e.SharedSuite
}

func (s *SchedulingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestSchedulingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(SchedulingSuite))
}

func (s *SchedulingSuite) patientToken(t *testing.T, email string) (uuid.UUID, string) {
	t.Helper()
	patientID := dbtest.CreateTestPatient(t, s.DB, email)
	token := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, patientID, subject.RolePatient)
	return patientID, token
}

func availabilityURL(professionalID uuid.UUID, date string) string {
	return "/api/professionals/" + professionalID.String() + "/availability/" + date
}

// =============================================================================
// TestBookAppointment - booking API tests
// =============================================================================

func (s *SchedulingSuite) TestBookAppointment() {
	s.Run("Normal case: patient books a free slot and it leaves availability", func() {
		t := s.T()

		_, token := s.patientToken(t, "alice@example.com")
		professionalID := dbtest.CreateTestProfessional(t, s.DB, "Sarah", "Chen", "Cardiology", 540, 600)

		reqBody := builder.NewAppointmentBuilder().
			WithProfessionalID(professionalID).
			WithTime("09:00").
			BuildBookRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "requested", created.Status)
		require.Equal(t, "09:00", created.Time)
		require.Equal(t, "Sarah Chen", created.ProfessionalName)

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL(professionalID, reqBody.Date), nil, "")
		require.Equal(t, http.StatusOK, aw.Code)

		var availability response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &availability))
		require.Equal(t, []string{"09:30"}, availability.Slots, "予約済み枠は空き一覧から消える")
	})

	s.Run("Conflict: booking an occupied slot returns 409", func() {
		t := s.T()

		_, tokenA := s.patientToken(t, "alice@example.com")
		_, tokenB := s.patientToken(t, "bob@example.com")
		professionalID := dbtest.CreateTestProfessional(t, s.DB, "Sarah", "Chen", "Cardiology", 540, 600)

		reqBody := builder.NewAppointmentBuilder().
			WithProfessionalID(professionalID).
			WithTime("09:00").
			BuildBookRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, tokenA)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, tokenB)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Validation: off grid time returns 400", func() {
		t := s.T()

		_, token := s.patientToken(t, "alice@example.com")
		professionalID := dbtest.CreateTestProfessional(t, s.DB, "Sarah", "Chen", "Cardiology", 540, 600)

		for _, timeOfDay := range []string{"09:15", "10:00", "08:30"} {
			reqBody := builder.NewAppointmentBuilder().
				WithProfessionalID(professionalID).
				WithTime(timeOfDay).
				BuildBookRequestDTO()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
			require.Equal(t, http.StatusBadRequest, w.Code, "time %s", timeOfDay)
		}
	})

	s.Run("Off-hour window: grid anchors to the professional's start time", func() {
		t := s.T()

		_, token := s.patientToken(t, "alice@example.com")
		// 09:15-11:15 window: its grid misses every :00/:30 mark
		professionalID := dbtest.CreateTestProfessional(t, s.DB, "Sarah", "Chen", "Cardiology", 555, 675)

		reqBody := builder.NewAppointmentBuilder().
			WithProfessionalID(professionalID).
			WithTime("09:45").
			BuildBookRequestDTO()

		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL(professionalID, reqBody.Date), nil, "")
		require.Equal(t, http.StatusOK, aw.Code)

		var availability response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &availability))
		require.Equal(t, []string{"09:15", "09:45", "10:15", "10:45"}, availability.Slots)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "09:45", created.Time)

		// 09:30 parses but sits between this professional's grid points
		offGrid := builder.NewAppointmentBuilder().
			WithProfessionalID(professionalID).
			WithTime("09:30").
			BuildBookRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, offGrid, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	s.Run("Not found: unknown professional returns 404", func() {
		t := s.T()

		_, token := s.patientToken(t, "alice@example.com")
		reqBody := builder.NewAppointmentBuilder().
			WithProfessionalID(uuid.New()).
			WithTime("09:00").
			BuildBookRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Auth: booking requires a patient token", func() {
		t := s.T()

		professionalID := dbtest.CreateTestProfessional(t, s.DB, "Sarah", "Chen", "Cardiology", 540, 600)
		reqBody := builder.NewAppointmentBuilder().
			WithProfessionalID(professionalID).
			WithTime("09:00").
			BuildBookRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		professionalToken := authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), subject.RoleProfessional)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, professionalToken)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

// =============================================================================
// TestConcurrentBooking - same slot, simultaneous requests
// =============================================================================

func (s *SchedulingSuite) TestConcurrentBooking() {
	s.Run("Exactly one of two simultaneous bookings wins", func() {
		t := s.T()

		_, tokenA := s.patientToken(t, "alice@example.com")
		_, tokenB := s.patientToken(t, "bob@example.com")
		professionalID := dbtest.CreateTestProfessional(t, s.DB, "Sarah", "Chen", "Cardiology", 540, 600)

		reqBody := builder.NewAppointmentBuilder().
			WithProfessionalID(professionalID).
			WithTime("09:00").
			BuildBookRequestDTO()

		codes := make(chan int, 2)
		var wg sync.WaitGroup
		for _, token := range []string{tokenA, tokenB} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		var created, conflicted int
		for code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			default:
				t.Fatalf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, created, "同一スロットの同時予約は一件だけ成功する")
		require.Equal(t, 1, conflicted)
	})
}

// =============================================================================
// TestCancelAndRebook - lifecycle and slot release
// =============================================================================

func (s *SchedulingSuite) TestCancelAndRebook() {
	s.Run("Cancelling frees the slot and another patient can take it", func() {
		t := s.T()

		_, tokenA := s.patientToken(t, "alice@example.com")
		_, tokenB := s.patientToken(t, "bob@example.com")
		professionalID := dbtest.CreateTestProfessional(t, s.DB, "Sarah", "Chen", "Cardiology", 540, 600)

		reqBody := builder.NewAppointmentBuilder().
			WithProfessionalID(professionalID).
			WithTime("09:00").
			BuildBookRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, tokenA)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		// Cancel
		cancelURL := appointmentsURL + "/" + created.ID.String()
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, cancelURL, map[string]any{"status": "cancelled"}, tokenA)
		require.Equal(t, http.StatusOK, w.Code)

		var cancelled response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cancelled))
		require.Equal(t, "cancelled", cancelled.Status)

		// The slot is free again
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL(professionalID, reqBody.Date), nil, "")
		require.Equal(t, http.StatusOK, aw.Code)

		var availability response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &availability))
		require.Equal(t, []string{"09:00", "09:30"}, availability.Slots, "キャンセルで枠が解放される")

		// Another patient re-books the released slot
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, tokenB)
		require.Equal(t, http.StatusCreated, w.Code)

		// The cancelled record stays terminal
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, cancelURL, map[string]any{"status": "confirmed"}, tokenA)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	s.Run("Lifecycle: requested can be confirmed, then completed", func() {
		t := s.T()

		_, token := s.patientToken(t, "alice@example.com")
		professionalID := dbtest.CreateTestProfessional(t, s.DB, "Sarah", "Chen", "Cardiology", 540, 600)

		reqBody := builder.NewAppointmentBuilder().
			WithProfessionalID(professionalID).
			WithTime("09:30").
			BuildBookRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		url := appointmentsURL + "/" + created.ID.String()

		// requested -> completed is not allowed directly
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{"status": "completed"}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{"status": "confirmed"}, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{"status": "completed"}, token)
		require.Equal(t, http.StatusOK, w.Code)

		var completed response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &completed))
		require.Equal(t, "completed", completed.Status)

		// A completed appointment keeps holding its slot
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, availabilityURL(professionalID, reqBody.Date), nil, "")
		require.Equal(t, http.StatusOK, aw.Code)

		var availability response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, aw.Body, &availability))
		require.Equal(t, []string{"09:00"}, availability.Slots)
	})

	s.Run("Ownership: another patient's appointment is invisible", func() {
		t := s.T()

		_, tokenA := s.patientToken(t, "alice@example.com")
		_, tokenB := s.patientToken(t, "bob@example.com")
		professionalID := dbtest.CreateTestProfessional(t, s.DB, "Sarah", "Chen", "Cardiology", 540, 600)

		reqBody := builder.NewAppointmentBuilder().
			WithProfessionalID(professionalID).
			WithTime("09:00").
			BuildBookRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, tokenA)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		url := appointmentsURL + "/" + created.ID.String()
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url, map[string]any{"status": "cancelled"}, tokenB)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestMyAppointments - patient history
// =============================================================================

func (s *SchedulingSuite) TestMyAppointments() {
	s.Run("Normal case: history is newest first and scoped to the caller", func() {
		t := s.T()

		_, tokenA := s.patientToken(t, "alice@example.com")
		_, tokenB := s.patientToken(t, "bob@example.com")
		professionalID := dbtest.CreateTestProfessional(t, s.DB, "Sarah", "Chen", "Cardiology", 540, 720)

		for _, booking := range []struct{ date, time string }{
			{date: "2026-09-15", time: "09:00"},
			{date: "2026-09-16", time: "10:30"},
			{date: "2026-09-16", time: "09:00"},
		} {
			reqBody := builder.NewAppointmentBuilder().
				WithProfessionalID(professionalID).
				WithDate(booking.date).
				WithTime(booking.time).
				BuildBookRequestDTO()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, tokenA)
			require.Equal(t, http.StatusCreated, w.Code)
		}

		// Another patient's booking must not appear
		otherBody := builder.NewAppointmentBuilder().
			WithProfessionalID(professionalID).
			WithDate("2026-09-15").
			WithTime("11:00").
			BuildBookRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, otherBody, tokenB)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL, nil, tokenA)
		require.Equal(t, http.StatusOK, w.Code)

		var appointments []response.AppointmentListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &appointments))
		require.Len(t, appointments, 3)

		require.Equal(t, "2026-09-16", appointments[0].Date)
		require.Equal(t, "10:30", appointments[0].Time)
		require.Equal(t, "2026-09-16", appointments[1].Date)
		require.Equal(t, "09:00", appointments[1].Time)
		require.Equal(t, "2026-09-15", appointments[2].Date)
	})
}
