package manufacturing

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// SuitabilityMultiplier boosts income for a factory built where its affinity is produced
var SuitabilityMultiplier = decimal.RequireFromString("1.5")

// FactoryType is a buildable facility from the fixed catalog
type FactoryType struct {
	ID          string
	Name        string
	Cost        int
	BaseIncome  int
	Produces    string
	Affinity    []string
	Description string
}

var factoryTypes = map[string]FactoryType{
	"food": {
		ID:          "food",
		Name:        "Food Factory",
		Cost:        50000,
		BaseIncome:  5000,
		Produces:    "food",
		Affinity:    []string{"food", "textiles"},
		Description: "Best built on agricultural worlds",
	},
	"electronics": {
		ID:          "electronics",
		Name:        "Electronics Factory",
		Cost:        100000,
		BaseIncome:  12000,
		Produces:    "electronics",
		Affinity:    []string{"electronics", "metals"},
		Description: "Requires materials input",
	},
	"mining": {
		ID:          "mining",
		Name:        "Mining Factory",
		Cost:        75000,
		BaseIncome:  8000,
		Produces:    "materials",
		Affinity:    []string{"materials", "metals"},
		Description: "Best built on mining worlds",
	},
}

// commodityFactories maps a commodity to the factory type that automates it
var commodityFactories = map[string]string{
	"food":        "food",
	"electronics": "electronics",
	"materials":   "mining",
	"metals":      "mining",
}

// LookupFactoryType finds a factory type by id, ignoring case and a trailing "factory"
func LookupFactoryType(query string) (FactoryType, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	q = strings.TrimSpace(strings.TrimSuffix(q, "factory"))
	ft, ok := factoryTypes[q]
	return ft, ok
}

// FactoryTypes returns the catalog, cheapest first
func FactoryTypes() []FactoryType {
	out := make([]FactoryType, 0, len(factoryTypes))
	for _, ft := range factoryTypes {
		out = append(out, ft)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cost < out[j].Cost })
	return out
}

// TypeForCommodity returns the factory type that automates a commodity
func TypeForCommodity(commodityID string) (FactoryType, bool) {
	typeID, ok := commodityFactories[commodityID]
	if !ok {
		return FactoryType{}, false
	}
	return factoryTypes[typeID], true
}

// Site is the view of a location needed to judge suitability
type Site interface {
	ID() string
	ProducesAny(commodityIDs ...string) bool
}

// SuitableAt reports whether the site produces anything in the type's affinity set
func (ft FactoryType) SuitableAt(site Site) bool {
	return site.ProducesAny(ft.Affinity...)
}

// IncomeAt is the daily income of this type built at site
func (ft FactoryType) IncomeAt(site Site) int {
	if !ft.SuitableAt(site) {
		return ft.BaseIncome
	}
	return int(decimal.NewFromInt(int64(ft.BaseIncome)).Mul(SuitabilityMultiplier).IntPart())
}

// Suitability lists the factory types suited to a site, cheapest first
func Suitability(site Site) []FactoryType {
	suited := make([]FactoryType, 0)
	for _, ft := range FactoryTypes() {
		if ft.SuitableAt(site) {
			suited = append(suited, ft)
		}
	}
	return suited
}
