package metrics

import "github.com/prometheus/client_golang/prometheus"

// NavigationMetricsCollector tracks trips, the days they take and the fuel they burn
type NavigationMetricsCollector struct {
	tripsTotal    *prometheus.CounterVec
	tripDays      *prometheus.HistogramVec
	fuelCostTotal *prometheus.CounterVec
	daysElapsed   *prometheus.CounterVec
}

func NewNavigationMetricsCollector() *NavigationMetricsCollector {
	return &NavigationMetricsCollector{
		tripsTotal:    counterVec("trips_total", "Trips completed, by destination", "destination"),
		tripDays:      histogramVec("trip_days", "Game days per trip", prometheus.LinearBuckets(1, 1, 10), "origin"),
		fuelCostTotal: counterVec("fuel_cost_total", "Credits spent on fuel", "session"),
		daysElapsed:   counterVec("days_elapsed_total", "Game days spent travelling", "session"),
	}
}

func (c *NavigationMetricsCollector) Register() error {
	return register(c.tripsTotal, c.tripDays, c.fuelCostTotal, c.daysElapsed)
}

func (c *NavigationMetricsCollector) RecordTravel(sessionID, from, to string, days, fuelCost int) {
	c.tripsTotal.WithLabelValues(to).Inc()
	c.tripDays.WithLabelValues(from).Observe(float64(days))
	c.fuelCostTotal.WithLabelValues(sessionID).Add(float64(fuelCost))
	c.daysElapsed.WithLabelValues(sessionID).Add(float64(days))
}
