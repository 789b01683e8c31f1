package bootstrap

import (
	"petcare-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	CatalogModule,
	components.DemoModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
