package usecase

import (
	"context"

	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/readmodel"
)

type ProfessionalUseCase interface {
	ListProfessionals(ctx context.Context) ([]*readmodel.ProfessionalRM, error)
	ListBySpecialization(ctx context.Context, specialization string) ([]*readmodel.ProfessionalRM, error)
}

type professionalUseCaseImpl struct {
	professionalRepo ProfessionalRepository
}

func NewProfessionalUseCase(professionalRepo ProfessionalRepository) ProfessionalUseCase {
	return &professionalUseCaseImpl{
		professionalRepo: professionalRepo,
	}
}

func (p *professionalUseCaseImpl) ListProfessionals(ctx context.Context) ([]*readmodel.ProfessionalRM, error) {
	professionals, err := p.professionalRepo.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list professionals")
	}

	return professionals, nil
}

func (p *professionalUseCaseImpl) ListBySpecialization(ctx context.Context, specialization string) ([]*readmodel.ProfessionalRM, error) {
	professionals, err := p.professionalRepo.ListBySpecialization(ctx, specialization)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list professionals by specialization")
	}

	return professionals, nil
}
