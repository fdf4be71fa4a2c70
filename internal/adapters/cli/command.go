package cli

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/andrescamacho/tradewinds-go/internal/domain/shared"
)

// CommandKind identifies what a decoded line asks the game to do
type CommandKind int

const (
	CommandHelp CommandKind = iota
	CommandQuit
	CommandLook
	CommandStatus
	CommandInventory
	CommandMarket
	CommandExamine
	CommandDestinations
	CommandTravel
	CommandBuy
	CommandSell
	CommandBusiness
	CommandReputation
	CommandIncorporate
	CommandLicense
	CommandLoan
	CommandBuild
	CommandAutomate
	CommandFactories
	CommandLedger
	CommandHistory
	CommandOpportunities
)

var commandNames = map[CommandKind]string{
	CommandHelp:          "help",
	CommandQuit:          "quit",
	CommandLook:          "look",
	CommandStatus:        "status",
	CommandInventory:     "inventory",
	CommandMarket:        "market",
	CommandExamine:       "examine",
	CommandDestinations:  "destinations",
	CommandTravel:        "travel",
	CommandBuy:           "buy",
	CommandSell:          "sell",
	CommandBusiness:      "business",
	CommandReputation:    "reputation",
	CommandIncorporate:   "incorporate",
	CommandLicense:       "license",
	CommandLoan:          "loan",
	CommandBuild:         "build",
	CommandAutomate:      "automate",
	CommandFactories:     "factories",
	CommandLedger:        "ledger",
	CommandHistory:       "history",
	CommandOpportunities: "opportunities",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "unknown"
}

// verbs maps every accepted first word to its command
var verbs = map[string]CommandKind{
	"help": CommandHelp, "?": CommandHelp, "commands": CommandHelp,
	"quit": CommandQuit, "exit": CommandQuit, "q": CommandQuit,

	"look": CommandLook, "l": CommandLook,
	"examine": CommandExamine, "describe": CommandExamine, "check": CommandExamine, "inspect": CommandExamine,

	"status": CommandStatus, "stats": CommandStatus, "info": CommandStatus, "money": CommandStatus, "credits": CommandStatus,
	"inventory": CommandInventory, "i": CommandInventory, "cargo": CommandInventory, "goods": CommandInventory, "items": CommandInventory,
	"market": CommandMarket, "prices": CommandMarket, "trading": CommandMarket, "commerce": CommandMarket,

	"destinations": CommandDestinations, "exits": CommandDestinations, "routes": CommandDestinations,
	"travel": CommandTravel, "go": CommandTravel, "move": CommandTravel, "journey": CommandTravel,
	"fly": CommandTravel, "depart": CommandTravel, "leave": CommandTravel,

	"buy": CommandBuy, "purchase": CommandBuy, "acquire": CommandBuy, "get": CommandBuy,
	"sell": CommandSell, "trade": CommandSell, "unload": CommandSell,

	"business": CommandBusiness, "company": CommandBusiness,
	"reputation": CommandReputation, "rep": CommandReputation,
	"incorporate": CommandIncorporate, "register": CommandIncorporate,
	"license": CommandLicense, "licence": CommandLicense,
	"loan": CommandLoan, "borrow": CommandLoan,
	"build": CommandBuild, "construct": CommandBuild,
	"automate": CommandAutomate,
	"factories": CommandFactories, "factory": CommandFactories,

	"ledger": CommandLedger, "transactions": CommandLedger, "pnl": CommandLedger,
	"history": CommandHistory,
	"opportunities": CommandOpportunities, "deals": CommandOpportunities,
}

// fillers are dropped from arguments: "go to mars", "sell all my food"
var fillers = map[string]bool{
	"to": true, "the": true, "a": true, "an": true, "my": true, "of": true,
	"for": true, "at": true, "on": true, "units": true, "unit": true,
}

// SomeQuantity is what "some" means in a buy or sell
const SomeQuantity = 5

// Command is one decoded player instruction
type Command struct {
	Kind CommandKind

	// Target is the normalized free-text argument: destination, commodity,
	// business name, license id or factory type
	Target string

	// Quantity for buy/sell, amount for loan. Zero with All false means "not given".
	Quantity int
	All      bool
}

// DecodeCommand turns one input line into a typed Command.
// Verbs are case-insensitive and accept the synonyms listed in verbs.
func DecodeCommand(line string) (Command, error) {
	raw := strings.Fields(strings.TrimSpace(line))
	words := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(words) == 0 {
		return Command{}, shared.NewGameError(shared.KindInvalidInput, "say something, captain")
	}

	kind, ok := verbs[words[0]]
	if !ok {
		return Command{}, shared.NewGameError(shared.KindInvalidInput, "I don't understand %q. Type 'help' for commands", words[0])
	}
	args := stripFillers(words[1:])

	switch kind {
	case CommandTravel:
		return requireTarget(kind, args, "travel where? Try 'destinations'")

	case CommandBuy, CommandSell:
		return decodeTrade(kind, args)

	case CommandLoan:
		if len(args) == 0 {
			return Command{Kind: kind}, nil
		}
		amount, err := parseAmount(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: kind, Quantity: amount}, nil

	case CommandExamine, CommandHistory, CommandAutomate:
		return requireTarget(kind, args, "%s what?", kind)

	case CommandBuild:
		// "build factory electronics" and "build electronics factory" both name the type
		args = dropWords(args, "factory", "facility")
		return requireTarget(kind, args, "build which factory type? Try 'factories'")

	case CommandIncorporate:
		// business names keep their case and every word
		return Command{Kind: kind, Target: strings.Join(raw[1:], " ")}, nil

	case CommandLook:
		if len(args) > 0 && args[0] != "around" && args[0] != "here" {
			if args[0] == "market" || args[0] == "prices" {
				return Command{Kind: CommandMarket}, nil
			}
			return Command{Kind: CommandExamine, Target: strings.Join(args, " ")}, nil
		}
		return Command{Kind: kind}, nil

	default:
		// license and the read-only views take an optional free-text argument
		return Command{Kind: kind, Target: strings.Join(args, " ")}, nil
	}
}

func decodeTrade(kind CommandKind, args []string) (Command, error) {
	cmd := Command{Kind: kind}
	var rest []string
	for _, word := range args {
		switch {
		case word == "all" || word == "everything" || word == "max":
			cmd.All = true
		case word == "some":
			cmd.Quantity = SomeQuantity
		case isNumeric(word):
			qty, err := parseQuantity(word)
			if err != nil {
				return Command{}, err
			}
			cmd.Quantity = qty
		default:
			rest = append(rest, word)
		}
	}
	if len(rest) == 0 {
		return Command{}, shared.NewGameError(shared.KindInvalidInput, "%s what? Try 'market'", kind)
	}
	cmd.Target = strings.Join(rest, " ")
	if cmd.Quantity == 0 && !cmd.All {
		cmd.Quantity = 1
	}
	return cmd, nil
}

func requireTarget(kind CommandKind, args []string, format string, a ...interface{}) (Command, error) {
	if len(args) == 0 {
		return Command{}, shared.NewGameError(shared.KindInvalidInput, format, a...)
	}
	return Command{Kind: kind, Target: strings.Join(args, " ")}, nil
}

func stripFillers(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !fillers[w] {
			out = append(out, w)
		}
	}
	return out
}

func dropWords(words []string, drop ...string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !slices.Contains(drop, w) {
			out = append(out, w)
		}
	}
	return out
}

// isNumeric reports whether word looks like a number, including malformed ones such as "5x" or "-3"
func isNumeric(word string) bool {
	if word == "" {
		return false
	}
	c := word[0]
	return (c >= '0' && c <= '9') || c == '-' || c == '+'
}

func parseQuantity(word string) (int, error) {
	qty, err := strconv.Atoi(word)
	if err != nil {
		return 0, shared.NewGameError(shared.KindInvalidInput, "%q is not a quantity", word)
	}
	if qty <= 0 {
		return 0, shared.NewGameError(shared.KindInvalidQuantity, "quantity must be positive, got %d", qty)
	}
	return qty, nil
}

// parseAmount accepts plain integers and thousands separators: 10000, 10,000, 10k
func parseAmount(word string) (int, error) {
	cleaned := strings.ReplaceAll(word, ",", "")
	multiplier := 1
	if strings.HasSuffix(cleaned, "k") {
		cleaned = strings.TrimSuffix(cleaned, "k")
		multiplier = 1000
	}
	amount, err := strconv.Atoi(cleaned)
	if err != nil || amount > math.MaxInt/multiplier || amount < math.MinInt/multiplier {
		return 0, shared.NewGameError(shared.KindInvalidInput, "%q is not an amount", word)
	}
	return amount * multiplier, nil
}
