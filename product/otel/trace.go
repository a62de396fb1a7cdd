package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/freshcart/freshcart/internal/constants"
)

var Tracer = otel.Tracer(constants.AppName + "/product")
