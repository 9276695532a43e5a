package components

import (
	repo_impl "clinic-scheduler/internal/infra/repository"
	"clinic-scheduler/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewAppointmentRepository,
			fx.As(new(usecase.AppointmentRepository)),
		),
		fx.Annotate(
			repo_impl.NewProfessionalRepository,
			fx.As(new(usecase.ProfessionalRepository)),
		),
	),
)
