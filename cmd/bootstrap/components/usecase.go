package components

import (
	"petcare-booking/internal/domain/user"
	"petcare-booking/internal/pkg/clock"
	"petcare-booking/internal/pkg/jwt"
	"petcare-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewAuthUseCase,
		usecase.NewPetUseCase,
		usecase.NewBookingUseCase,
		usecase.NewNotificationUseCase,
		usecase.NewTokenValidator,
	),
)

func NewAuthUseCase(identity *user.User, hash PasswordHash, jwtService *jwt.Service) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(identity, string(hash), jwtService)
}
