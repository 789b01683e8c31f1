package bootstrap

import (
	"petcare-booking/internal/domain/catalog"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		catalog.Default,
	),
)
