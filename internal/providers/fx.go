package providers

import (
	"github.com/novayra/storefront/internal/providers/pdf"
	"go.uber.org/fx"
)

var Module = fx.Module("providers",
	pdf.Module,
)
