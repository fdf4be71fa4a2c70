package config

// GameConfig holds new-game and world settings
type GameConfig struct {
	// Credits a new captain starts with
	StartingCredits int `mapstructure:"starting_credits" validate:"min=0"`

	// Cargo hold capacity in units
	CargoCapacity int `mapstructure:"cargo_capacity" validate:"min=1"`

	// Location id where every game starts
	HomeLocation string `mapstructure:"home_location" validate:"required"`

	// Fuel credits per day of travel
	FuelRate float64 `mapstructure:"fuel_rate" validate:"gt=0"`

	// Route model: explicit (connection table) or synthetic (any pair, distance as time)
	TravelMode string `mapstructure:"travel_mode" validate:"required,oneof=explicit synthetic"`

	// Seed for market randomness; 0 seeds from the clock
	Seed uint64 `mapstructure:"seed"`
}

// BusinessConfig holds business subsystem rules
type BusinessConfig struct {
	IncorporationCost int `mapstructure:"incorporation_cost" validate:"min=0"`
	MaxLoans          int `mapstructure:"max_loans" validate:"min=0"`
	MinLoan           int `mapstructure:"min_loan" validate:"min=1"`
}
