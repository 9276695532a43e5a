package components

import (
	"clinic-scheduler/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewSchedulingUseCase,
		usecase.NewProfessionalUseCase,
		usecase.NewTokenValidator,
	),
)
