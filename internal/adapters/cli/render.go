package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	businessCommands "github.com/andrescamacho/tradewinds-go/internal/application/business/commands"
	businessQueries "github.com/andrescamacho/tradewinds-go/internal/application/business/queries"
	ledgerQueries "github.com/andrescamacho/tradewinds-go/internal/application/ledger/queries"
	manufacturingCommands "github.com/andrescamacho/tradewinds-go/internal/application/manufacturing/commands"
	navigationCommands "github.com/andrescamacho/tradewinds-go/internal/application/navigation/commands"
	navigationQueries "github.com/andrescamacho/tradewinds-go/internal/application/navigation/queries"
	tradingQueries "github.com/andrescamacho/tradewinds-go/internal/application/trading/queries"
	"github.com/andrescamacho/tradewinds-go/internal/domain/game"
	"github.com/andrescamacho/tradewinds-go/internal/domain/player"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

const rule = "─────────────────────────────────────────────────────────────────────────────"

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func renderWelcome(out io.Writer, status game.StatusView) {
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Welcome aboard the %s, Captain %s.\n", status.ShipName, status.PlayerName)
	fmt.Fprintf(out, "You have %s credits and a hold for %d units.\n", formatCredits(status.Credits), status.CargoCapacity)
	fmt.Fprintln(out, "Type 'help' for a list of commands.")
	fmt.Fprintln(out, rule)
}

func renderHelp(out io.Writer) {
	w := newTable(out)
	fmt.Fprintln(w, "COMMAND\tDESCRIPTION")
	for _, line := range [][2]string{
		{"look", "Describe the current location"},
		{"status", "Show credits, location, day and cargo"},
		{"inventory", "List cargo in the hold"},
		{"market", "Show local prices"},
		{"examine <commodity>", "Inspect a commodity"},
		{"destinations", "List reachable locations with fuel costs"},
		{"travel <destination>", "Fly to another location"},
		{"buy <qty|some|all> <commodity>", "Purchase cargo"},
		{"sell <qty|some|all> <commodity>", "Sell cargo"},
		{"business", "Show business standing, licenses and loans"},
		{"incorporate <name>", "Register a business"},
		{"license <id>", "Purchase a license"},
		{"loan <amount>", "Take out a loan"},
		{"build <factory type>", "Build a factory here"},
		{"automate <commodity>", "Build the factory that produces a commodity"},
		{"factories", "List owned factories"},
		{"ledger", "Show profit & loss and recent transactions"},
		{"history <commodity>", "Show recorded prices for a commodity"},
		{"opportunities", "Rank trade routes from recorded prices"},
		{"quit", "End the game and show a summary"},
	} {
		fmt.Fprintf(w, "  %s\t%s\n", line[0], line[1])
	}
	w.Flush()
}

func renderRejection(out io.Writer, err error) {
	kind := shared.KindOf(err)
	if kind == "" {
		fmt.Fprintf(out, "✗ %v\n", err)
		return
	}
	fmt.Fprintf(out, "✗ %s (%s)\n", err.Error(), kind)
}

func renderLocation(out io.Writer, view *game.MarketView) {
	fmt.Fprintf(out, "%s (%s)\n", view.LocationName, view.System)
	if view.Description != "" {
		fmt.Fprintln(out, view.Description)
	}
	fmt.Fprintln(out)
	renderMarket(out, view)
}

func renderMarket(out io.Writer, view *game.MarketView) {
	fmt.Fprintf(out, "MARKET at %s\n", view.LocationName)
	w := newTable(out)
	fmt.Fprintln(w, "Commodity\tPrice\tHeld\tNote")
	fmt.Fprintln(w, "─────────\t─────\t────\t────")
	for _, entry := range view.Entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", entry.Name, formatCredits(entry.Price), entry.Held, entry.Note)
	}
	w.Flush()
}

func renderStatus(out io.Writer, status game.StatusView) {
	fmt.Fprintf(out, "Captain %s of the %s\n", status.PlayerName, status.ShipName)
	w := newTable(out)
	fmt.Fprintf(w, "  Credits:\t%s\n", formatCredits(status.Credits))
	fmt.Fprintf(w, "  Location:\t%s (%s)\n", status.LocationName, status.System)
	fmt.Fprintf(w, "  Day:\t%d\n", status.Day)
	fmt.Fprintf(w, "  Cargo:\t%d/%d\n", status.CargoUsed, status.CargoCapacity)
	fmt.Fprintf(w, "  Visited:\t%d locations\n", status.VisitedCount)
	if status.Registered {
		fmt.Fprintf(w, "  Business:\t%s (reputation %d)\n", status.BusinessName, status.Reputation)
	}
	if status.FactoryCount > 0 {
		fmt.Fprintf(w, "  Factories:\t%d earning %s/day\n", status.FactoryCount, formatCredits(status.DailyIncome))
	}
	w.Flush()
}

func renderInventory(out io.Writer, view game.InventoryView) {
	if len(view.Items) == 0 {
		fmt.Fprintf(out, "Your hold is empty (0/%d).\n", view.Capacity)
		return
	}
	w := newTable(out)
	fmt.Fprintln(w, "Commodity\tUnits\tLocal Price\tValue")
	fmt.Fprintln(w, "─────────\t─────\t───────────\t─────")
	for _, item := range view.Items {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", item.Name, item.Units, formatCredits(item.UnitPrice), formatCredits(item.Value))
	}
	w.Flush()
	fmt.Fprintf(out, "Hold: %d/%d  Value here: %s\n", view.UnitsUsed, view.Capacity, formatCredits(view.TotalValue))
}

func renderCommodity(out io.Writer, view *game.CommodityView) {
	fmt.Fprintf(out, "%s\n", view.Name)
	if view.Description != "" {
		fmt.Fprintln(out, view.Description)
	}
	w := newTable(out)
	fmt.Fprintf(w, "  Base price:\t%s\n", formatCredits(view.BasePrice))
	fmt.Fprintf(w, "  Volatility:\t%.0f%%\n", view.Volatility*100)
	fmt.Fprintf(w, "  Price here:\t%s (%s)\n", formatCredits(view.LocalPrice), view.Note)
	fmt.Fprintf(w, "  In hold:\t%d\n", view.Held)
	fmt.Fprintf(w, "  You can buy:\t%d\n", view.MaxBuyable)
	w.Flush()
}

func renderDestinations(out io.Writer, resp *navigationQueries.GetDestinationsResponse) {
	if len(resp.Destinations) == 0 {
		fmt.Fprintln(out, "No routes lead out of here.")
		return
	}
	fmt.Fprintf(out, "Routes from %s (credits: %s)\n", resp.From, formatCredits(resp.Credits))
	w := newTable(out)
	fmt.Fprintln(w, "Destination\tSystem\tTime\tDays\tFuel\t")
	fmt.Fprintln(w, "───────────\t──────\t────\t────\t────\t")
	for _, d := range resp.Destinations {
		var flags []string
		if !d.Affordable {
			flags = append(flags, "cannot afford")
		}
		if !d.Visited {
			flags = append(flags, "unvisited")
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%d\t%s\t%s\n",
			d.Name, d.System, d.TravelTime, d.Days, formatCredits(d.FuelCost), strings.Join(flags, ", "))
	}
	w.Flush()
}

func renderTravel(out io.Writer, resp *navigationCommands.TravelResponse) {
	report := resp.Report
	fmt.Fprintf(out, "Travelled from %s to %s in %d day(s), burning %s credits of fuel.\n",
		report.From, report.To, report.Days, formatCredits(report.FuelCost))
	if report.Income > 0 {
		fmt.Fprintf(out, "Your factories earned %s while you were away.\n", formatAmount(report.Income))
	}
	if report.FirstVisit {
		fmt.Fprintln(out, "First visit!")
	}
	fmt.Fprintf(out, "Credits: %s  Day: %d\n\n", formatCredits(resp.Status.Credits), resp.Status.Day)
}

func renderReceipt(out io.Writer, verb string, receipt *player.TradeReceipt) {
	fmt.Fprintf(out, "%s %d %s at %s each for %s. Credits: %s\n",
		verb,
		receipt.Quantity,
		receipt.Commodity,
		formatCredits(receipt.UnitPrice),
		formatCredits(receipt.Total),
		formatCredits(receipt.CreditsAfter),
	)
}

func renderBusiness(out io.Writer, resp *businessQueries.GetBusinessResponse, reputationOnly bool) {
	view := resp.Business
	if !view.Registered {
		fmt.Fprintf(out, "No business registered. Incorporation costs %s credits.\n", formatCredits(view.IncorporationCost))
		return
	}

	fmt.Fprintf(out, "%s: %s (reputation %d)\n", view.Name, view.Standing.Title, view.Reputation)
	for _, perk := range view.Standing.Perks {
		fmt.Fprintf(out, "  • %s\n", perk)
	}
	if reputationOnly {
		return
	}

	fmt.Fprintln(out, "\nLICENSES")
	w := newTable(out)
	for _, l := range view.Licenses {
		fmt.Fprintf(w, "  %s\towned\t%s\n", l.ID, l.Benefit)
	}
	for _, l := range view.AvailableLicenses {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", l.ID, formatCredits(l.Cost), l.Benefit)
	}
	w.Flush()

	fmt.Fprintf(out, "\nLOANS (up to %s at %s%%)\n", formatCredits(view.LoanTerms.Ceiling), view.LoanTerms.Rate.Shift(2).String())
	if len(view.Loans) == 0 {
		fmt.Fprintln(out, "  none")
	}
	w = newTable(out)
	for _, loan := range view.Loans {
		fmt.Fprintf(w, "  day %d\t%s\t%s%%\towes %s\n",
			loan.IssuedOnDay(), formatCredits(loan.Principal()), loan.Rate().Shift(2).String(), formatCredits(loan.Remaining()))
	}
	w.Flush()
	fmt.Fprintf(out, "Total debt: %s  Credits: %s\n", formatCredits(view.TotalDebt), formatCredits(resp.Credits))
}

func renderIncorporation(out io.Writer, resp *businessCommands.IncorporateResponse) {
	fmt.Fprintf(out, "Registered %s. Reputation: %d  Credits: %s\n",
		resp.Business.Name, resp.Business.Reputation, formatCredits(resp.Credits))
}

func renderLicense(out io.Writer, resp *businessCommands.PurchaseLicenseResponse) {
	fmt.Fprintf(out, "Purchased the %s (%s). Reputation: %d  Credits: %s\n",
		resp.License.Name, resp.License.Benefit, resp.Reputation, formatCredits(resp.Credits))
}

func renderLoan(out io.Writer, resp *businessCommands.ApplyLoanResponse) {
	fmt.Fprintf(out, "Borrowed %s at %s%%. You owe %s (interest %s). Credits: %s\n",
		formatCredits(resp.Principal),
		resp.RatePercent,
		formatCredits(resp.Remaining),
		formatCredits(resp.Interest),
		formatCredits(resp.Credits),
	)
}

func renderFactoryBuilt(out io.Writer, resp *manufacturingCommands.BuildFactoryResponse) {
	fmt.Fprintf(out, "Built a %s at %s for %s credits.\n", resp.TypeName, resp.LocationID, formatCredits(resp.Cost))
	if resp.Suitable {
		fmt.Fprintln(out, "The local economy suits it: income is boosted.")
	}
	fmt.Fprintf(out, "It produces %s and earns %s/day. Reputation: %d  Credits: %s\n",
		resp.Produces, formatCredits(resp.DailyIncome), resp.Reputation, formatCredits(resp.Credits))
}

func renderFactories(out io.Writer, view game.FactoriesView) {
	if len(view.Factories) == 0 {
		fmt.Fprintln(out, "You own no factories.")
	} else {
		w := newTable(out)
		fmt.Fprintln(w, "Location\tType\tProduces\tIncome/day\tDays")
		fmt.Fprintln(w, "────────\t────\t────────\t──────────\t────")
		for _, f := range view.Factories {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", f.LocationName, f.TypeName, f.Produces, formatCredits(f.DailyIncome), f.DaysActive)
		}
		w.Flush()
		fmt.Fprintf(out, "Total income: %s/day\n", formatCredits(view.TotalDailyIncome))
	}

	if view.BuiltHere || len(view.SuitableHere) == 0 {
		return
	}
	names := make([]string, len(view.SuitableHere))
	for i, t := range view.SuitableHere {
		names[i] = t.Name
	}
	fmt.Fprintf(out, "Suited to this location: %s\n", strings.Join(names, ", "))
}

func renderSummary(out io.Writer, summary game.SummaryView) {
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Captain %s of the %s retires after %d day(s).\n", summary.PlayerName, summary.ShipName, summary.Days)
	w := newTable(out)
	fmt.Fprintf(w, "  Final credits:\t%s\n", formatCredits(summary.Credits))
	fmt.Fprintf(w, "  Net profit:\t%s\n", formatAmount(summary.NetProfit))
	fmt.Fprintf(w, "  Locations visited:\t%d\n", summary.Visited)
	fmt.Fprintf(w, "  Factories:\t%d\n", summary.FactoryCount)
	fmt.Fprintf(w, "  Outstanding debt:\t%s\n", formatCredits(summary.TotalDebt))
	fmt.Fprintf(w, "  Reputation:\t%d\n", summary.Reputation)
	w.Flush()
	fmt.Fprintln(out, rule)
}

func renderPriceHistory(out io.Writer, resp *tradingQueries.GetPriceHistoryResponse) {
	if resp.Stats == nil || len(resp.Points) == 0 {
		fmt.Fprintf(out, "No prices recorded for %s yet.\n", resp.CommodityID)
		return
	}
	fmt.Fprintf(out, "PRICE HISTORY: %s\n", resp.CommodityID)
	w := newTable(out)
	fmt.Fprintln(w, "Day\tLocation\tPrice")
	fmt.Fprintln(w, "───\t────────\t─────")
	for _, p := range resp.Points {
		fmt.Fprintf(w, "%d\t%s\t%s\n", p.Day, p.LocationID, formatCredits(p.Price))
	}
	w.Flush()
	fmt.Fprintf(out, "%d samples  min %s at %s  max %s at %s  avg %.1f\n",
		resp.Stats.Samples,
		formatCredits(resp.Stats.MinPrice), resp.Stats.CheapestAt,
		formatCredits(resp.Stats.MaxPrice), resp.Stats.DearestAt,
		resp.Stats.AveragePrice,
	)
}

func renderOpportunities(out io.Writer, opportunities []tradingQueries.OpportunityDTO) {
	if len(opportunities) == 0 {
		fmt.Fprintln(out, "No profitable routes in the recorded prices. Visit more markets.")
		return
	}
	w := newTable(out)
	fmt.Fprintln(w, "Commodity\tBuy At\tSell At\tProfit/Unit\tMargin\tAge")
	fmt.Fprintln(w, "─────────\t──────\t───────\t───────────\t──────\t───")
	for _, o := range opportunities {
		fmt.Fprintf(w, "%s\t%s (%s)\t%s (%s)\t%s\t%.1f%%\t%dd\n",
			o.CommodityID,
			o.BuyAt, formatCredits(o.BuyPrice),
			o.SellAt, formatCredits(o.SellPrice),
			formatAmount(o.ProfitPerUnit),
			o.ProfitMargin,
			o.Age,
		)
	}
	w.Flush()
}

func renderTransactions(out io.Writer, transactions []*ledgerQueries.TransactionDTO) {
	if len(transactions) == 0 {
		fmt.Fprintln(out, "No transactions found")
		return
	}
	w := newTable(out)
	fmt.Fprintln(w, "Day\tType\tCategory\tAmount\tBalance\tDescription")
	fmt.Fprintln(w, "───\t────\t────────\t──────\t───────\t───────────")
	for _, tx := range transactions {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			tx.Day,
			tx.Type,
			tx.Category,
			formatAmount(tx.Amount),
			formatCredits(tx.BalanceAfter),
			tx.Description,
		)
	}
	w.Flush()
}

func renderProfitLoss(out io.Writer, resp *ledgerQueries.GetProfitLossResponse) {
	fmt.Fprintf(out, "PROFIT & LOSS (%s)\n", resp.Period)
	fmt.Fprintln(out, rule)

	section := func(title string, lines []ledgerQueries.CategoryAmount, total, sign int) {
		fmt.Fprintln(out, title)
		for _, line := range lines {
			fmt.Fprintf(out, "  %-25s %s\n", line.Category+":", formatCredits(sign*line.Amount))
		}
		fmt.Fprintf(out, "  %-25s %s\n", "Total:", formatCredits(sign*total))
	}
	section("REVENUE", resp.Revenue, resp.TotalRevenue, 1)
	section("EXPENSES", resp.Expenses, resp.TotalExpenses, -1)

	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "NET PROFIT:                 %s\n", formatAmount(resp.NetProfit))
	fmt.Fprintln(out, rule)
}

func renderCashFlow(out io.Writer, resp *ledgerQueries.GetCashFlowResponse) {
	fmt.Fprintf(out, "CASH FLOW (by %s, %s)\n", resp.GroupBy, resp.Period)
	fmt.Fprintln(out, rule)

	w := newTable(out)
	fmt.Fprintln(w, "Group\tInflow\tOutflow\tNet Flow\tTransactions")
	fmt.Fprintln(w, "─────\t──────\t───────\t────────\t────────────")
	count := 0
	for _, group := range resp.Groups {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			group.Key,
			formatCredits(group.TotalInflow),
			formatCredits(-group.TotalOutflow),
			formatAmount(group.NetFlow),
			group.Transactions,
		)
		count += group.Transactions
	}
	fmt.Fprintln(w, "─────\t──────\t───────\t────────\t────────────")
	fmt.Fprintf(w, "TOTAL\t%s\t%s\t%s\t%d\n",
		formatCredits(resp.Summary.TotalInflow),
		formatCredits(-resp.Summary.TotalOutflow),
		formatAmount(resp.Summary.NetCashFlow),
		count,
	)
	w.Flush()
	fmt.Fprintln(out, rule)
}

// formatAmount formats an amount with +/- sign
func formatAmount(amount int) string {
	if amount >= 0 {
		return fmt.Sprintf("+%s", formatCredits(amount))
	}
	return formatCredits(amount)
}

// formatCredits formats credits with thousands separator
func formatCredits(credits int) string {
	if credits < 0 {
		return "-" + addThousandsSeparator(-credits)
	}
	return addThousandsSeparator(credits)
}

// addThousandsSeparator adds commas to a number (e.g., 1234567 -> "1,234,567")
func addThousandsSeparator(n int) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	var result []byte
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}
