package core

// CategoryCost is one category's aggregated monthly-equivalent cost.
type CategoryCost struct {
	Category     Category
	MonthlyCents float64
}

// Summary is the dashboard aggregate derived from the current list.
type Summary struct {
	MonthlyCents float64
	YearlyCents  float64
	ActiveCount  int
	ByCategory   []CategoryCost
}
