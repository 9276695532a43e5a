package response

import (
	"clinic-scheduler/internal/domain/schedule"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProfessionalResponse struct {
	ID                   uuid.UUID `json:"id"`
	FirstName            string    `json:"firstName"`
	LastName             string    `json:"lastName"`
	Specialization       string    `json:"specialization"`
	Department           string    `json:"department"`
	ExperienceYears      int32     `json:"experienceYears"`
	ConsultationFeeCents int32     `json:"consultationFeeCents"`
	WorkStart            string    `json:"workStart"`
	WorkEnd              string    `json:"workEnd"`
}

func FromProfessionalRM(rm *readmodel.ProfessionalRM) (*ProfessionalResponse, error) {
	var resp ProfessionalResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, errs.Wrap(err, "failed to map professional response")
	}
	resp.WorkStart = schedule.TimeOfDay(rm.WorkStartMin).String()
	resp.WorkEnd = schedule.TimeOfDay(rm.WorkEndMin).String()
	return &resp, nil
}
