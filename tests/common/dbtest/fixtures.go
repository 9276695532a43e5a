//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestPatient(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	patientID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO patients (id, first_name, last_name, email)
		VALUES ($1, 'Test', 'Patient', $2)
		ON CONFLICT (email) DO NOTHING`,
		patientID, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM patients WHERE email = $1", email).Scan(&patientID)
	}

	return patientID
}

func CreateTestProfessional(t *testing.T, db DBLike, firstName, lastName, specialization string, workStartMin, workEndMin int16) uuid.UUID {
	t.Helper()

	professionalID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO professionals (id, first_name, last_name, specialization, work_start_min, work_end_min)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		professionalID, firstName, lastName, specialization, workStartMin, workEndMin)
	require.NoError(t, err)

	return professionalID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// Directory professionals with the default 09:00-17:00 working window
	_, err := pool.Exec(ctx, `
		INSERT INTO professionals (id, first_name, last_name, specialization, department, experience_years, consultation_fee_cents)
		SELECT gen_random_uuid(), v.first_name, v.last_name, v.specialization, v.department, v.experience_years, v.consultation_fee_cents
		FROM (VALUES
		    ('Sarah', 'Chen', 'Cardiology', 'Cardiology', 12, 15000),
		    ('James', 'Okafor', 'Dermatology', 'Dermatology', 8, 12000)
		) AS v(first_name, last_name, specialization, department, experience_years, consultation_fee_cents)
		WHERE NOT EXISTS (
		    SELECT 1 FROM professionals p
		    WHERE p.first_name = v.first_name AND p.last_name = v.last_name
		);
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
