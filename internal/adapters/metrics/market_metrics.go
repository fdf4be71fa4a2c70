package metrics

import "github.com/prometheus/client_golang/prometheus"

// MarketMetricsCollector exposes the latest generated price of every commodity
// at every location the captain has visited.
type MarketMetricsCollector struct {
	marketPrice        *prometheus.GaugeVec
	regenerationsTotal *prometheus.CounterVec
}

func NewMarketMetricsCollector() *MarketMetricsCollector {
	return &MarketMetricsCollector{
		marketPrice: gaugeVec("market_price",
			"Latest price of a commodity at a location", "location", "commodity"),
		regenerationsTotal: counterVec("market_prices_generated_total",
			"Prices generated, by location", "location"),
	}
}

func (c *MarketMetricsCollector) Register() error {
	return register(c.marketPrice, c.regenerationsTotal)
}

func (c *MarketMetricsCollector) RecordPrice(locationID, commodityID string, price int) {
	c.marketPrice.WithLabelValues(locationID, commodityID).Set(float64(price))
	c.regenerationsTotal.WithLabelValues(locationID).Inc()
}
