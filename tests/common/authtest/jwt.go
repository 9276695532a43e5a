//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"clinic-scheduler/internal/domain/subject"
	"clinic-scheduler/internal/pkg/clock"
	"clinic-scheduler/internal/pkg/config"
	"clinic-scheduler/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subjectID uuid.UUID, role subject.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock())
	token, err := service.GenerateToken(subjectID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken backdates issuance so the token is already expired,
// no sleeping involved.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, subjectID uuid.UUID, role subject.Role) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	service := jwt.NewService(h.cfg.Secret, time.Hour, past)
	token, err := service.GenerateToken(subjectID, role)
	require.NoError(t, err)
	return token
}
