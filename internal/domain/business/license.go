package business

import (
	"sort"
	"strings"
)

// License is a purchasable business permit
type License struct {
	ID      string
	Name    string
	Cost    int
	Benefit string
}

// LicenseReputationBonus is granted for every license purchased
const LicenseReputationBonus = 5

var licenseCatalog = map[string]License{
	"trading":       {ID: "trading", Name: "Trading License", Cost: 2000, Benefit: "Reduced trading fees"},
	"manufacturing": {ID: "manufacturing", Name: "Manufacturing License", Cost: 10000, Benefit: "Build advanced factories"},
	"mining":        {ID: "mining", Name: "Mining License", Cost: 15000, Benefit: "Build mining facilities"},
	"research":      {ID: "research", Name: "Research License", Cost: 25000, Benefit: "Access to tech contracts"},
}

// LookupLicense finds a license by id or display name, case-insensitively
func LookupLicense(query string) (License, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	q = strings.TrimSuffix(q, " license")
	if l, ok := licenseCatalog[q]; ok {
		return l, true
	}
	for _, l := range licenseCatalog {
		if strings.ToLower(l.Name) == q {
			return l, true
		}
	}
	return License{}, false
}

// Licenses returns the license catalog, cheapest first
func Licenses() []License {
	out := make([]License, 0, len(licenseCatalog))
	for _, l := range licenseCatalog {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Cost < out[j].Cost })
	return out
}
