package repository

import (
	"context"
	"errors"
	"log/slog"

	"clinic-scheduler/internal/domain/appointment"
	"clinic-scheduler/internal/domain/schedule"
	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/pkg/pgconv"
	"clinic-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Slot uniqueness is enforced by the partial unique index
//
//	uniq_active_slot ON appointments (professional_id, appointment_date, start_min)
//	WHERE status <> 'cancelled'
//
// so Create's insert is the atomic check-and-reserve for one slot key: of any
// number of concurrent inserts on the same key exactly one commits, the rest
// fail with a unique violation surfaced as KindConflict. Cancelled rows are
// outside the index, which is what frees a slot on cancellation.
type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

const appointmentDetailQuery = `
	SELECT a.id, a.patient_id, a.professional_id,
		hp.first_name || ' ' || hp.last_name AS professional_name,
		hp.specialization,
		a.appointment_date, a.start_min, a.status, a.reason,
		a.created_at, a.updated_at
	FROM appointments a
	JOIN professionals hp ON hp.id = a.professional_id
	WHERE a.id = $1`

func (r *AppointmentRepository) Create(ctx context.Context, appt *appointment.Appointment) (*readmodel.AppointmentRM, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		INSERT INTO appointments (id, patient_id, professional_id, appointment_date, start_min, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
	`, appt.ID(), appt.PatientID(), appt.ProfessionalID(),
		pgconv.DateToPgtype(appt.Date().Time()), int16(appt.StartAt().Minutes()),
		appt.Status().String(), appt.Reason().String())
	if err != nil {
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("slot already held by an active appointment", err, infra.KindConflict)
		}
		if isForeignKeyViolation(err) {
			return nil, infra.WrapRepoErr("professional does not exist", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to create appointment", err)
	}

	rm, err := r.scanDetail(tx.QueryRow(ctx, appointmentDetailQuery, appt.ID()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read back created appointment", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit transaction", err)
	}

	return rm, nil
}

// ApplyStatus loads the caller's appointment under a row lock, runs the
// lifecycle transition on the domain entity and persists the result. The
// ownership scoping (id AND patient_id) doubles as the existence check: a
// foreign appointment is indistinguishable from a missing one.
func (r *AppointmentRepository) ApplyStatus(ctx context.Context, id, patientID uuid.UUID, next appointment.Status) (*readmodel.AppointmentRM, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer rollback(ctx, tx)

	appt, err := r.findForUpdate(ctx, tx, id, patientID)
	if err != nil {
		return nil, err
	}

	if err := appt.ChangeStatus(next); err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE appointments
		SET status = $3, updated_at = now()
		WHERE id = $1 AND patient_id = $2
	`, id, patientID, appt.Status().String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update appointment status", err)
	}

	rm, err := r.scanDetail(tx.QueryRow(ctx, appointmentDetailQuery, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read back updated appointment", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit transaction", err)
	}

	return rm, nil
}

// ListActiveTimes returns the booked grid times of a professional's day,
// ascending. This query is the single place cancelled appointments are
// excluded; availability math downstream never re-filters.
func (r *AppointmentRepository) ListActiveTimes(ctx context.Context, professionalID uuid.UUID, date schedule.Date) ([]schedule.TimeOfDay, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_min FROM appointments
		WHERE professional_id = $1
			AND appointment_date = $2
			AND status <> 'cancelled'
		ORDER BY start_min ASC
	`, professionalID, pgconv.DateToPgtype(date.Time()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked times", err)
	}
	defer rows.Close()

	var times []schedule.TimeOfDay
	for rows.Next() {
		var startMin int16
		if err := rows.Scan(&startMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked time", err)
		}
		t, err := schedule.FromMinutes(int(startMin))
		if err != nil {
			return nil, infra.WrapRepoErr("stored time out of range", err)
		}
		times = append(times, t)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to list booked times", rows.Err())
	}
	return times, nil
}

func (r *AppointmentRepository) FindByPatient(ctx context.Context, patientID uuid.UUID) ([]*readmodel.AppointmentListRM, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.professional_id,
			hp.first_name || ' ' || hp.last_name AS professional_name,
			hp.specialization,
			a.appointment_date, a.start_min, a.status, a.reason, a.created_at
		FROM appointments a
		JOIN professionals hp ON hp.id = a.professional_id
		WHERE a.patient_id = $1
		ORDER BY a.appointment_date DESC, a.start_min DESC
	`, patientID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var result []*readmodel.AppointmentListRM
	for rows.Next() {
		var (
			rm       readmodel.AppointmentListRM
			date     pgtype.Date
			startMin int16
			reason   pgtype.Text
		)
		if err := rows.Scan(&rm.ID, &rm.ProfessionalID, &rm.ProfessionalName, &rm.Specialization,
			&date, &startMin, &rm.Status, &reason, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		rm.Date = schedule.DateOf(pgconv.DateFromPgtype(date)).String()
		rm.Time = schedule.TimeOfDay(startMin).String()
		rm.Reason = pgconv.StringPtrFromPgtype(reason)
		result = append(result, &rm)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", rows.Err())
	}
	return result, nil
}

func (r *AppointmentRepository) findForUpdate(ctx context.Context, tx pgx.Tx, id, patientID uuid.UUID) (*appointment.Appointment, error) {
	var (
		apptID, pID, profID uuid.UUID
		date                pgtype.Date
		startMin            int16
		statusStr           string
		reason              pgtype.Text
		createdAt           pgtype.Timestamptz
		updatedAt           pgtype.Timestamptz
	)

	err := tx.QueryRow(ctx, `
		SELECT id, patient_id, professional_id, appointment_date, start_min, status, reason, created_at, updated_at
		FROM appointments
		WHERE id = $1 AND patient_id = $2
		FOR UPDATE
	`, id, patientID).Scan(&apptID, &pID, &profID, &date, &startMin, &statusStr, &reason, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}

	status, err := appointment.NewStatus(statusStr)
	if err != nil {
		return nil, infra.WrapRepoErr("stored status is not a known status", err)
	}
	startAt, err := schedule.FromMinutes(int(startMin))
	if err != nil {
		return nil, infra.WrapRepoErr("stored time out of range", err)
	}

	var reasonStr string
	if s := pgconv.StringPtrFromPgtype(reason); s != nil {
		reasonStr = *s
	}

	return appointment.ReconstructAppointment(
		apptID, pID, profID,
		schedule.DateOf(pgconv.DateFromPgtype(date)),
		startAt,
		status,
		appointment.NewReason(reasonStr),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *AppointmentRepository) scanDetail(row pgx.Row) (*readmodel.AppointmentRM, error) {
	var (
		rm       readmodel.AppointmentRM
		date     pgtype.Date
		startMin int16
		reason   pgtype.Text
	)
	err := row.Scan(&rm.ID, &rm.PatientID, &rm.ProfessionalID, &rm.ProfessionalName, &rm.Specialization,
		&date, &startMin, &rm.Status, &reason, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rm.Date = schedule.DateOf(pgconv.DateFromPgtype(date)).String()
	rm.Time = schedule.TimeOfDay(startMin).String()
	rm.Reason = pgconv.StringPtrFromPgtype(reason)
	return &rm, nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback transaction", "error", err)
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
