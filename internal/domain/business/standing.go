package business

// Standing is the public reputation band of a business
type Standing struct {
	Title string
	Perks []string
}

// StandingFor maps a reputation score to its band
func StandingFor(reputation int) Standing {
	switch {
	case reputation < 25:
		return Standing{Title: "New Business", Perks: []string{"Basic loan terms available", "Limited contract access"}}
	case reputation < 50:
		return Standing{Title: "Established Business", Perks: []string{"Better loan terms available", "Access to standard contracts"}}
	case reputation < 75:
		return Standing{Title: "Reputable Corporation", Perks: []string{"Excellent loan terms", "High-value contracts available"}}
	default:
		return Standing{Title: "Elite Trading House", Perks: []string{"Premium loan terms", "Exclusive contracts available"}}
	}
}
