package manufacturing

// Factory is a facility owned at one location, earning DailyIncome per travelled day
type Factory struct {
	locationID  string
	factoryType FactoryType
	dailyIncome int
	daysActive  int
	builtOnDay  int
	suitable    bool
}

func (f *Factory) LocationID() string {
	return f.locationID
}

func (f *Factory) Type() FactoryType {
	return f.factoryType
}

// Produces returns the commodity the factory is tagged with
func (f *Factory) Produces() string {
	return f.factoryType.Produces
}

func (f *Factory) DailyIncome() int {
	return f.dailyIncome
}

func (f *Factory) DaysActive() int {
	return f.daysActive
}

func (f *Factory) BuiltOnDay() int {
	return f.builtOnDay
}

// Suitable reports whether the suitability bonus applied at construction
func (f *Factory) Suitable() bool {
	return f.suitable
}

// LifetimeIncome is everything the factory has earned so far
func (f *Factory) LifetimeIncome() int {
	return f.dailyIncome * f.daysActive
}
