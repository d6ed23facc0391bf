package sim

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/golangdaddy/cruise/pkg/sim"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
