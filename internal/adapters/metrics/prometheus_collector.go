package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Every series is named tradewinds_game_*
const (
	namespace = "tradewinds"
	subsystem = "game"
)

// Registry is nil until InitRegistry runs; every recorder below is a no-op until then
var Registry *prometheus.Registry

// The recorders the package-level Record* functions forward to. Domain handlers call
// those functions directly, so they work the same whether metrics are on or off.
var global struct {
	financial     FinancialMetricsRecorder
	navigation    NavigationMetricsRecorder
	market        MarketMetricsRecorder
	manufacturing ManufacturingMetricsRecorder
}

type FinancialMetricsRecorder interface {
	RecordTransaction(sessionID, transactionType, category string, amount, creditsBalance int)
	RecordTrade(sessionID, commodityID, side string, units, unitPrice int)
}

type NavigationMetricsRecorder interface {
	RecordTravel(sessionID, from, to string, days, fuelCost int)
}

type MarketMetricsRecorder interface {
	RecordPrice(locationID, commodityID string, price int)
}

type ManufacturingMetricsRecorder interface {
	RecordFactoryBuilt(sessionID, factoryType string, suitable bool)
	RecordFactoryIncome(sessionID string, amount int)
}

// InitRegistry creates the registry with Go runtime and process collectors
func InitRegistry() {
	Registry = prometheus.NewRegistry()
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func GetRegistry() *prometheus.Registry { return Registry }

func IsEnabled() bool { return Registry != nil }

// Reset turns metrics off again. Tests use it to isolate registrations.
func Reset() {
	Registry = nil
	global.financial = nil
	global.navigation = nil
	global.market = nil
	global.manufacturing = nil
}

func SetGlobalFinancialCollector(r FinancialMetricsRecorder)         { global.financial = r }
func SetGlobalNavigationCollector(r NavigationMetricsRecorder)       { global.navigation = r }
func SetGlobalMarketCollector(r MarketMetricsRecorder)               { global.market = r }
func SetGlobalManufacturingCollector(r ManufacturingMetricsRecorder) { global.manufacturing = r }

// RecordTransaction counts a ledger entry and tracks the session's balance after it
func RecordTransaction(sessionID, transactionType, category string, amount, creditsBalance int) {
	if r := global.financial; r != nil {
		r.RecordTransaction(sessionID, transactionType, category, amount, creditsBalance)
	}
}

// RecordTrade counts one buy or sell order; side is "buy" or "sell"
func RecordTrade(sessionID, commodityID, side string, units, unitPrice int) {
	if r := global.financial; r != nil {
		r.RecordTrade(sessionID, commodityID, side, units, unitPrice)
	}
}

func RecordTravel(sessionID, from, to string, days, fuelCost int) {
	if r := global.navigation; r != nil {
		r.RecordTravel(sessionID, from, to, days, fuelCost)
	}
}

// RecordPrice tracks a freshly generated market price
func RecordPrice(locationID, commodityID string, price int) {
	if r := global.market; r != nil {
		r.RecordPrice(locationID, commodityID, price)
	}
}

func RecordFactoryBuilt(sessionID, factoryType string, suitable bool) {
	if r := global.manufacturing; r != nil {
		r.RecordFactoryBuilt(sessionID, factoryType, suitable)
	}
}

func RecordFactoryIncome(sessionID string, amount int) {
	if r := global.manufacturing; r != nil {
		r.RecordFactoryIncome(sessionID, amount)
	}
}

// register adds metrics to Registry, or does nothing while metrics are disabled
func register(metrics ...prometheus.Collector) error {
	if Registry == nil {
		return nil
	}
	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

func counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: subsystem, Name: name, Help: help,
	}, labels)
}

func gaugeVec(name, help string, labels ...string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace, Subsystem: subsystem, Name: name, Help: help,
	}, labels)
}

func histogramVec(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace, Subsystem: subsystem, Name: name, Help: help, Buckets: buckets,
	}, labels)
}
