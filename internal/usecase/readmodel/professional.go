package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ProfessionalRM struct {
	ID                   uuid.UUID `json:"id"`
	FirstName            string    `json:"first_name"`
	LastName             string    `json:"last_name"`
	Specialization       string    `json:"specialization"`
	Department           string    `json:"department"`
	ExperienceYears      int32     `json:"experience_years"`
	ConsultationFeeCents int32     `json:"consultation_fee_cents"`
	WorkStartMin         int16     `json:"work_start_min"`
	WorkEndMin           int16     `json:"work_end_min"`
	CreatedAt            time.Time `json:"created_at"`
}
