package repository

import (
	"context"

	"clinic-scheduler/internal/infra"
	"clinic-scheduler/internal/pkg/pgconv"
	"clinic-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfessionalRepository struct {
	pool *pgxpool.Pool
}

func NewProfessionalRepository(pool *pgxpool.Pool) *ProfessionalRepository {
	return &ProfessionalRepository{pool: pool}
}

const professionalColumns = `
	id, first_name, last_name, specialization, department,
	experience_years, consultation_fee_cents, work_start_min, work_end_min, created_at`

func (r *ProfessionalRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ProfessionalRM, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT`+professionalColumns+`
		FROM professionals
		WHERE id = $1
	`, id)

	rm, err := scanProfessional(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("professional not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find professional", err)
	}
	return rm, nil
}

func (r *ProfessionalRepository) List(ctx context.Context) ([]*readmodel.ProfessionalRM, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+professionalColumns+`
		FROM professionals
		ORDER BY last_name ASC, first_name ASC
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list professionals", err)
	}
	return collectProfessionals(rows)
}

func (r *ProfessionalRepository) ListBySpecialization(ctx context.Context, specialization string) ([]*readmodel.ProfessionalRM, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT`+professionalColumns+`
		FROM professionals
		WHERE specialization ILIKE '%' || $1 || '%'
		ORDER BY last_name ASC, first_name ASC
	`, specialization)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list professionals by specialization", err)
	}
	return collectProfessionals(rows)
}

func collectProfessionals(rows pgx.Rows) ([]*readmodel.ProfessionalRM, error) {
	defer rows.Close()

	var result []*readmodel.ProfessionalRM
	for rows.Next() {
		rm, err := scanProfessional(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan professional", err)
		}
		result = append(result, rm)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to list professionals", rows.Err())
	}
	return result, nil
}

func scanProfessional(row pgx.Row) (*readmodel.ProfessionalRM, error) {
	var rm readmodel.ProfessionalRM
	err := row.Scan(&rm.ID, &rm.FirstName, &rm.LastName, &rm.Specialization, &rm.Department,
		&rm.ExperienceYears, &rm.ConsultationFeeCents, &rm.WorkStartMin, &rm.WorkEndMin, &rm.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
