package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	"github.com/andrescamacho/tradewinds-go/internal/application/ledger/queries"
	"github.com/andrescamacho/tradewinds-go/internal/domain/ledger"
)

// dayRange holds the optional --from-day/--to-day filters
type dayRange struct {
	from int
	to   int
}

func (r *dayRange) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&r.from, "from-day", 0, "First game day to include")
	cmd.Flags().IntVar(&r.to, "to-day", 0, "Last game day to include")
}

// bounds returns nil for flags the user did not set
func (r *dayRange) bounds(cmd *cobra.Command) (*int, *int, error) {
	var from, to *int
	if cmd.Flags().Changed("from-day") {
		from = &r.from
	}
	if cmd.Flags().Changed("to-day") {
		to = &r.to
	}
	if from != nil && to != nil && *from > *to {
		return nil, nil, fmt.Errorf("--from-day %d is after --to-day %d", *from, *to)
	}
	return from, to, nil
}

// sessionReport is the --session plus day window every ledger report takes
type sessionReport struct {
	sessionID string
	days      dayRange
}

func (s *sessionReport) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.sessionID, "session", "", "Session ID (see 'ledger sessions')")
	_ = cmd.MarkFlagRequired("session")
	s.days.bind(cmd)
}

// runLedgerQuery opens the runtime, sends the request built from the day window and
// hands the response to render.
func runLedgerQuery(
	cmd *cobra.Command,
	report *sessionReport,
	build func(from, to *int) common.Request,
	render func(out io.Writer, resp common.Response),
) error {
	from, to, err := report.days.bounds(cmd)
	if err != nil {
		return err
	}

	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	resp, err := rt.app.Send(context.Background(), build(from, to))
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	render(cmd.OutOrStdout(), resp)
	return nil
}

func NewLedgerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Inspect the credit ledger of past and current sessions",
		Long: `Every credit movement of a session is written to the ledger: fuel, trades,
business fees, loans, factories and factory income. The ledger lives in the
configured database, so point --db at a file to keep it between runs.

Examples:
  tradewinds --db tradewinds.db ledger sessions
  tradewinds --db tradewinds.db ledger list --session <id> --category FUEL_COSTS
  tradewinds --db tradewinds.db ledger pnl --session <id> --from-day 1 --to-day 10
  tradewinds --db tradewinds.db ledger cashflow --session <id> --group-by day`,
	}
	cmd.AddCommand(
		newLedgerSessionsCommand(),
		newLedgerListCommand(),
		newLedgerProfitLossCommand(),
		newLedgerCashFlowCommand(),
	)
	return cmd
}

func newLedgerSessionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List sessions with recorded transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			resp, err := rt.app.Send(context.Background(), &queries.ListLedgerSessionsQuery{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ids := resp.(*queries.ListLedgerSessionsResponse).SessionIDs
			if len(ids) == 0 {
				fmt.Fprintln(out, "The ledger is empty.")
				return nil
			}
			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}
}

func newLedgerListCommand() *cobra.Command {
	var (
		report   sessionReport
		category string
		txType   string
		limit    int
		offset   int
		orderBy  string
	)

	categories := make([]string, 0)
	for _, c := range ledger.AllCategories() {
		categories = append(categories, c.String())
	}
	types := make([]string, 0)
	for _, t := range ledger.AllTransactionTypes() {
		types = append(types, t.String())
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger entries of a session",
		Long: fmt.Sprintf(`List ledger entries, newest first unless --order-by says otherwise.

Categories: %s
Types:      %s`, strings.Join(categories, ", "), strings.Join(types, ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			build := func(from, to *int) common.Request {
				query := &queries.GetTransactionsQuery{
					SessionID: report.sessionID,
					FromDay:   from,
					ToDay:     to,
					Limit:     limit,
					Offset:    offset,
					OrderBy:   orderBy,
				}
				if category != "" {
					query.Category = &category
				}
				if txType != "" {
					query.TransactionType = &txType
				}
				return query
			}
			return runLedgerQuery(cmd, &report, build, func(out io.Writer, resp common.Response) {
				page := resp.(*queries.GetTransactionsResponse)
				if len(page.Transactions) == 0 {
					fmt.Fprintf(out, "No entries on this page (%d match).\n", page.Total)
					return
				}
				fmt.Fprintf(out, "TRANSACTIONS %d-%d of %d\n", offset+1, offset+len(page.Transactions), page.Total)
				fmt.Fprintln(out, rule)
				renderTransactions(out, page.Transactions)
			})
		},
	}

	report.bind(cmd)
	cmd.Flags().StringVar(&category, "category", "", "Only entries in this category")
	cmd.Flags().StringVar(&txType, "type", "", "Only entries of this transaction type")
	cmd.Flags().IntVar(&limit, "limit", 50, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Entries to skip")
	cmd.Flags().StringVar(&orderBy, "order-by", ledger.OrderNewestFirst,
		"timestamp|day|amount followed by ASC or DESC")
	return cmd
}

func newLedgerProfitLossCommand() *cobra.Command {
	var report sessionReport

	cmd := &cobra.Command{
		Use:     "pnl",
		Aliases: []string{"profit-loss"},
		Short:   "Profit and loss statement",
		Long:    "Revenue and expenses per category, and the net profit, over the selected days.",
		RunE: func(cmd *cobra.Command, args []string) error {
			build := func(from, to *int) common.Request {
				return &queries.GetProfitLossQuery{SessionID: report.sessionID, FromDay: from, ToDay: to}
			}
			return runLedgerQuery(cmd, &report, build, func(out io.Writer, resp common.Response) {
				renderProfitLoss(out, resp.(*queries.GetProfitLossResponse))
			})
		},
	}
	report.bind(cmd)
	return cmd
}

func newLedgerCashFlowCommand() *cobra.Command {
	var (
		report  sessionReport
		groupBy string
	)

	cmd := &cobra.Command{
		Use:     "cashflow",
		Aliases: []string{"cash-flow"},
		Short:   "Cash flow statement",
		Long:    "Inflow, outflow and net flow per category or per game day.",
		RunE: func(cmd *cobra.Command, args []string) error {
			build := func(from, to *int) common.Request {
				return &queries.GetCashFlowQuery{SessionID: report.sessionID, FromDay: from, ToDay: to, GroupBy: groupBy}
			}
			return runLedgerQuery(cmd, &report, build, func(out io.Writer, resp common.Response) {
				renderCashFlow(out, resp.(*queries.GetCashFlowResponse))
			})
		},
	}
	report.bind(cmd)
	cmd.Flags().StringVar(&groupBy, "group-by", queries.GroupByCategory,
		fmt.Sprintf("%s or %s", queries.GroupByCategory, queries.GroupByDay))
	return cmd
}
