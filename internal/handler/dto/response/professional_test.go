//go:build unit

package response_test

import (
	"testing"
	"time"

	"clinic-scheduler/internal/handler/dto/response"
	"clinic-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromProfessionalRM(t *testing.T) {
	rm := &readmodel.ProfessionalRM{
		ID:                   uuid.New(),
		FirstName:            "Sarah",
		LastName:             "Chen",
		Specialization:       "Cardiology",
		Department:           "Cardiology",
		ExperienceYears:      12,
		ConsultationFeeCents: 15000,
		WorkStartMin:         555,
		WorkEndMin:           675,
		CreatedAt:            time.Now(),
	}

	resp, err := response.FromProfessionalRM(rm)
	require.NoError(t, err)

	assert.Equal(t, rm.ID, resp.ID)
	assert.Equal(t, "Sarah", resp.FirstName)
	assert.Equal(t, "Chen", resp.LastName)
	assert.Equal(t, "Cardiology", resp.Specialization)
	assert.Equal(t, "Cardiology", resp.Department)
	assert.Equal(t, int32(12), resp.ExperienceYears)
	assert.Equal(t, int32(15000), resp.ConsultationFeeCents)
	assert.Equal(t, "09:15", resp.WorkStart)
	assert.Equal(t, "11:15", resp.WorkEnd)
}
