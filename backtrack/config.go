package backtrack

// Config controls backtracking search behavior.
type Config struct {
	// MaxSteps bounds the number of engine steps a single search may take
	// across all scan positions. The engine is a plain backtracker with no
	// protection against pathological patterns; a caller that needs
	// bounded-time matching sets this budget. When the budget is exhausted
	// the search is abandoned and reported as no match, and
	// Stats.BudgetExhausted is incremented.
	//
	// 0 means unlimited.
	MaxSteps int
}

// DefaultConfig returns the default search configuration: no step budget.
func DefaultConfig() Config {
	return Config{}
}
