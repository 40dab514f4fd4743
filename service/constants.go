package service

// Projection horizon and tax policy. These are frozen planning conventions,
// not values derived from the inputs.
const (
	HorizonYears = 30

	SocialContributionRate = 0.172

	CorporateReducedRate      = 0.15
	CorporateStandardRate     = 0.25
	CorporateReducedThreshold = 42_500.0

	// Land is excluded from the depreciable base.
	DepreciableShare = 0.90
)

// Limits enforced on incoming inputs before the engine runs.
const (
	MaxPurchasePrice = 100_000_000.0 // 100 millions
	MaxAnnualAmount  = 10_000_000.0
	MinLoanYears     = 1
	MaxLoanYears     = 30
	MaxRate          = 1.0
	MinRentGrowth    = -1.0
)

// depreciationComponent is a slice of the depreciable base written off
// linearly over Years.
type depreciationComponent struct {
	Name  string
	Share float64
	Years float64
}

var depreciationComponents = []depreciationComponent{
	{Name: "structure", Share: 0.54, Years: 35},
	{Name: "facade_roof", Share: 0.09, Years: 20},
	{Name: "technical_equipment", Share: 0.14, Years: 15},
	{Name: "fittings", Share: 0.14, Years: 10},
}
