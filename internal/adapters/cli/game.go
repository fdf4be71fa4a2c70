package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	businessCommands "github.com/andrescamacho/tradewinds-go/internal/application/business/commands"
	businessQueries "github.com/andrescamacho/tradewinds-go/internal/application/business/queries"
	"github.com/andrescamacho/tradewinds-go/internal/application/common"
	ledgerQueries "github.com/andrescamacho/tradewinds-go/internal/application/ledger/queries"
	manufacturingCommands "github.com/andrescamacho/tradewinds-go/internal/application/manufacturing/commands"
	manufacturingQueries "github.com/andrescamacho/tradewinds-go/internal/application/manufacturing/queries"
	navigationCommands "github.com/andrescamacho/tradewinds-go/internal/application/navigation/commands"
	navigationQueries "github.com/andrescamacho/tradewinds-go/internal/application/navigation/queries"
	playerCommands "github.com/andrescamacho/tradewinds-go/internal/application/player/commands"
	playerQueries "github.com/andrescamacho/tradewinds-go/internal/application/player/queries"
	tradingCommands "github.com/andrescamacho/tradewinds-go/internal/application/trading/commands"
	tradingQueries "github.com/andrescamacho/tradewinds-go/internal/application/trading/queries"
	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// Sender dispatches mediator requests; *setup.Application satisfies it
type Sender interface {
	Send(ctx context.Context, request common.Request) (common.Response, error)
}

// Game drives one interactive session: it decodes lines, sends the matching
// request and renders the response.
type Game struct {
	app       Sender
	sessionID string
	captain   string
	out       io.Writer
	logger    *zap.Logger
}

// StartGame creates a new session and prints the opening scene
func StartGame(ctx context.Context, app Sender, playerName, shipName string, out io.Writer, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	resp, err := app.Send(ctx, &playerCommands.NewGameCommand{PlayerName: playerName, ShipName: shipName})
	if err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}
	started := resp.(*playerCommands.NewGameResponse)

	g := &Game{
		app:       app,
		sessionID: started.SessionID,
		captain:   started.Status.PlayerName,
		out:       out,
		logger:    logger,
	}
	renderWelcome(out, started.Status)
	if _, err := g.Execute(ctx, Command{Kind: CommandLook}); err != nil {
		return nil, err
	}
	return g, nil
}

// SessionID identifies the session in the ledger
func (g *Game) SessionID() string {
	return g.sessionID
}

// Run reads commands until quit or end of input.
// Game rule rejections are printed and play continues; anything else ends the loop.
func (g *Game) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(g.out, "%s> ", g.captain)
		if !scanner.Scan() {
			fmt.Fprintln(g.out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, err := DecodeCommand(line)
		if err != nil {
			renderRejection(g.out, err)
			continue
		}

		quit, err := g.Execute(ctx, cmd)
		if err != nil {
			if shared.KindOf(err) != "" {
				renderRejection(g.out, err)
				continue
			}
			return err
		}
		if quit {
			return nil
		}
		fmt.Fprintln(g.out)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	_, err := g.Execute(ctx, Command{Kind: CommandQuit})
	return err
}

// Execute performs one decoded command and renders the result. It reports whether the game is over.
func (g *Game) Execute(ctx context.Context, cmd Command) (bool, error) {
	g.logger.Debug("executing command",
		zap.String("session", g.sessionID),
		zap.String("command", cmd.Kind.String()),
		zap.String("target", cmd.Target),
	)

	switch cmd.Kind {
	case CommandHelp:
		renderHelp(g.out)

	case CommandQuit:
		resp, err := g.app.Send(ctx, &playerQueries.GetSummaryQuery{SessionID: g.sessionID})
		if err != nil {
			return false, err
		}
		renderSummary(g.out, resp.(*playerQueries.GetSummaryResponse).Summary)
		return true, nil

	case CommandLook:
		resp, err := g.app.Send(ctx, &tradingQueries.GetMarketQuery{SessionID: g.sessionID})
		if err != nil {
			return false, err
		}
		renderLocation(g.out, resp.(*tradingQueries.GetMarketResponse).Market)

	case CommandStatus:
		resp, err := g.app.Send(ctx, &playerQueries.GetStatusQuery{SessionID: g.sessionID})
		if err != nil {
			return false, err
		}
		renderStatus(g.out, resp.(*playerQueries.GetStatusResponse).Status)

	case CommandInventory:
		resp, err := g.app.Send(ctx, &tradingQueries.GetInventoryQuery{SessionID: g.sessionID})
		if err != nil {
			return false, err
		}
		renderInventory(g.out, resp.(*tradingQueries.GetInventoryResponse).Inventory)

	case CommandMarket:
		resp, err := g.app.Send(ctx, &tradingQueries.GetMarketQuery{SessionID: g.sessionID})
		if err != nil {
			return false, err
		}
		renderMarket(g.out, resp.(*tradingQueries.GetMarketResponse).Market)

	case CommandExamine:
		resp, err := g.app.Send(ctx, &tradingQueries.ExamineCommodityQuery{SessionID: g.sessionID, Commodity: cmd.Target})
		if err != nil {
			return false, err
		}
		renderCommodity(g.out, resp.(*tradingQueries.ExamineCommodityResponse).Commodity)

	case CommandDestinations:
		resp, err := g.app.Send(ctx, &navigationQueries.GetDestinationsQuery{SessionID: g.sessionID})
		if err != nil {
			return false, err
		}
		renderDestinations(g.out, resp.(*navigationQueries.GetDestinationsResponse))

	case CommandTravel:
		resp, err := g.app.Send(ctx, &navigationCommands.TravelCommand{SessionID: g.sessionID, Destination: cmd.Target})
		if err != nil {
			return false, err
		}
		renderTravel(g.out, resp.(*navigationCommands.TravelResponse))
		return g.Execute(ctx, Command{Kind: CommandLook})

	case CommandBuy:
		resp, err := g.app.Send(ctx, &tradingCommands.BuyCargoCommand{
			SessionID: g.sessionID,
			Commodity: cmd.Target,
			Quantity:  cmd.Quantity,
			All:       cmd.All,
		})
		if err != nil {
			return false, err
		}
		renderReceipt(g.out, "Bought", resp.(*tradingCommands.BuyCargoResponse).Receipt)

	case CommandSell:
		resp, err := g.app.Send(ctx, &tradingCommands.SellCargoCommand{
			SessionID: g.sessionID,
			Commodity: cmd.Target,
			Quantity:  cmd.Quantity,
			All:       cmd.All,
		})
		if err != nil {
			return false, err
		}
		renderReceipt(g.out, "Sold", resp.(*tradingCommands.SellCargoResponse).Receipt)

	case CommandBusiness, CommandReputation:
		resp, err := g.app.Send(ctx, &businessQueries.GetBusinessQuery{SessionID: g.sessionID})
		if err != nil {
			return false, err
		}
		renderBusiness(g.out, resp.(*businessQueries.GetBusinessResponse), cmd.Kind == CommandReputation)

	case CommandIncorporate:
		resp, err := g.app.Send(ctx, &businessCommands.IncorporateCommand{SessionID: g.sessionID, Name: cmd.Target})
		if err != nil {
			return false, err
		}
		renderIncorporation(g.out, resp.(*businessCommands.IncorporateResponse))

	case CommandLicense:
		if cmd.Target == "" {
			return g.Execute(ctx, Command{Kind: CommandBusiness})
		}
		resp, err := g.app.Send(ctx, &businessCommands.PurchaseLicenseCommand{SessionID: g.sessionID, License: licenseID(cmd.Target)})
		if err != nil {
			return false, err
		}
		renderLicense(g.out, resp.(*businessCommands.PurchaseLicenseResponse))

	case CommandLoan:
		if cmd.Quantity == 0 {
			return g.Execute(ctx, Command{Kind: CommandBusiness})
		}
		resp, err := g.app.Send(ctx, &businessCommands.ApplyLoanCommand{SessionID: g.sessionID, Amount: cmd.Quantity})
		if err != nil {
			return false, err
		}
		renderLoan(g.out, resp.(*businessCommands.ApplyLoanResponse))

	case CommandBuild, CommandAutomate:
		request := &manufacturingCommands.BuildFactoryCommand{SessionID: g.sessionID}
		if cmd.Kind == CommandBuild {
			request.FactoryType = cmd.Target
		} else {
			request.Commodity = cmd.Target
		}
		resp, err := g.app.Send(ctx, request)
		if err != nil {
			return false, err
		}
		renderFactoryBuilt(g.out, resp.(*manufacturingCommands.BuildFactoryResponse))

	case CommandFactories:
		resp, err := g.app.Send(ctx, &manufacturingQueries.ListFactoriesQuery{SessionID: g.sessionID})
		if err != nil {
			return false, err
		}
		renderFactories(g.out, resp.(*manufacturingQueries.ListFactoriesResponse).Factories)

	case CommandLedger:
		pnl, err := g.app.Send(ctx, &ledgerQueries.GetProfitLossQuery{SessionID: g.sessionID})
		if err != nil {
			return false, err
		}
		txs, err := g.app.Send(ctx, &ledgerQueries.GetTransactionsQuery{SessionID: g.sessionID, Limit: 10})
		if err != nil {
			return false, err
		}
		renderProfitLoss(g.out, pnl.(*ledgerQueries.GetProfitLossResponse))
		renderTransactions(g.out, txs.(*ledgerQueries.GetTransactionsResponse).Transactions)

	case CommandHistory:
		resp, err := g.app.Send(ctx, &tradingQueries.GetPriceHistoryQuery{SessionID: g.sessionID, Commodity: cmd.Target, Limit: 15})
		if err != nil {
			return false, err
		}
		renderPriceHistory(g.out, resp.(*tradingQueries.GetPriceHistoryResponse))

	case CommandOpportunities:
		resp, err := g.app.Send(ctx, &tradingQueries.FindTradeOpportunitiesQuery{SessionID: g.sessionID, Limit: 10})
		if err != nil {
			return false, err
		}
		renderOpportunities(g.out, resp.(*tradingQueries.FindTradeOpportunitiesResponse).Opportunities)

	default:
		return false, shared.NewGameError(shared.KindInvalidInput, "nothing to do for %s", cmd.Kind)
	}
	return false, nil
}

// licenseID accepts "trading" as well as "trading license"
func licenseID(target string) string {
	return strings.TrimSpace(strings.TrimSuffix(target, "license"))
}
