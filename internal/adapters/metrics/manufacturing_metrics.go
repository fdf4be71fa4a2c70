package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// ManufacturingMetricsCollector counts factories and the passive income they pay
type ManufacturingMetricsCollector struct {
	factoriesBuilt *prometheus.CounterVec
	factoryIncome  *prometheus.CounterVec
}

func NewManufacturingMetricsCollector() *ManufacturingMetricsCollector {
	return &ManufacturingMetricsCollector{
		factoriesBuilt: counterVec("factories_built_total",
			"Factories built, by type and whether the site suits the type", "type", "suitable"),
		factoryIncome: counterVec("factory_income_total",
			"Passive income paid while travelling", "session"),
	}
}

func (c *ManufacturingMetricsCollector) Register() error {
	return register(c.factoriesBuilt, c.factoryIncome)
}

func (c *ManufacturingMetricsCollector) RecordFactoryBuilt(_, factoryType string, suitable bool) {
	c.factoriesBuilt.WithLabelValues(factoryType, strconv.FormatBool(suitable)).Inc()
}

func (c *ManufacturingMetricsCollector) RecordFactoryIncome(sessionID string, amount int) {
	c.factoryIncome.WithLabelValues(sessionID).Add(float64(amount))
}
