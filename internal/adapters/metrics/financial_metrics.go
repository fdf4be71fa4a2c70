package metrics

import "github.com/prometheus/client_golang/prometheus"

// FinancialMetricsCollector follows the money: balances, ledger entries and trades
type FinancialMetricsCollector struct {
	creditsBalance    *prometheus.GaugeVec
	transactionsTotal *prometheus.CounterVec
	transactionAmount *prometheus.HistogramVec // absolute; the category carries the sign

	tradesTotal     *prometheus.CounterVec
	tradeUnitsTotal *prometheus.CounterVec
	tradeUnitPrice  *prometheus.HistogramVec
}

func NewFinancialMetricsCollector() *FinancialMetricsCollector {
	return &FinancialMetricsCollector{
		creditsBalance: gaugeVec("credits_balance",
			"Captain's credits after the latest ledger entry", "session"),
		transactionsTotal: counterVec("transactions_total",
			"Ledger entries recorded", "type", "category"),
		transactionAmount: histogramVec("transaction_amount",
			"Credits moved per ledger entry",
			prometheus.ExponentialBuckets(10, 10, 5), "type", "category"),
		tradesTotal: counterVec("trades_total",
			"Buy and sell orders filled", "commodity", "side"),
		tradeUnitsTotal: counterVec("trade_units_total",
			"Units of cargo bought or sold", "commodity", "side"),
		tradeUnitPrice: histogramVec("trade_unit_price",
			"Unit price of each filled order",
			prometheus.ExponentialBuckets(5, 2, 8), "commodity", "side"),
	}
}

func (c *FinancialMetricsCollector) Register() error {
	return register(
		c.creditsBalance, c.transactionsTotal, c.transactionAmount,
		c.tradesTotal, c.tradeUnitsTotal, c.tradeUnitPrice,
	)
}

func (c *FinancialMetricsCollector) RecordTransaction(sessionID, transactionType, category string, amount, creditsBalance int) {
	c.creditsBalance.WithLabelValues(sessionID).Set(float64(creditsBalance))
	c.transactionsTotal.WithLabelValues(transactionType, category).Inc()
	c.transactionAmount.WithLabelValues(transactionType, category).Observe(float64(max(amount, -amount)))
}

func (c *FinancialMetricsCollector) RecordTrade(_, commodityID, side string, units, unitPrice int) {
	c.tradesTotal.WithLabelValues(commodityID, side).Inc()
	c.tradeUnitsTotal.WithLabelValues(commodityID, side).Add(float64(units))
	c.tradeUnitPrice.WithLabelValues(commodityID, side).Observe(float64(unitPrice))
}
