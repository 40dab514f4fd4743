package domain

// Regime identifies how the holding structure is taxed.
type Regime string

const (
	// RegimeTransparent taxes the property result on the holder (IR).
	RegimeTransparent Regime = "IR"
	// RegimeCorporate taxes the entity itself (IS).
	RegimeCorporate Regime = "IS"
)

// LoanYear is one year of the amortization trajectory shared by both regimes.
type LoanYear struct {
	Year        int     `json:"year"`
	Interest    float64 `json:"interest"`
	Insurance   float64 `json:"insurance"`
	Principal   float64 `json:"principal"`
	DebtService float64 `json:"debt_service"`
	Balance     float64 `json:"balance"`
}

// YearRecord is one projected year for one regime.
type YearRecord struct {
	Year       int     `json:"year"`
	Rent       float64 `json:"rent"`
	Charges    float64 `json:"charges"`
	Interest   float64 `json:"interest"`
	Principal  float64 `json:"principal"`
	Tax        float64 `json:"tax"`
	CashFlow   float64 `json:"cash_flow"`
	Cumulative float64 `json:"cumulative"`
	Balance    float64 `json:"balance"`

	LossCarryforward float64 `json:"loss_carryforward,omitempty"`
}

type Summary struct {
	TotalCost             float64 `json:"total_cost"`
	NotaryFee             float64 `json:"notary_fee"`
	LoanPrincipal         float64 `json:"loan_principal"`
	MonthlyPayment        float64 `json:"monthly_payment"`
	ContributionRatio     float64 `json:"contribution_ratio"`
	AnnualDepreciation    float64 `json:"annual_depreciation"`
	TransparentCumulative float64 `json:"transparent_cumulative"`
	CorporateCumulative   float64 `json:"corporate_cumulative"`
	// Difference is corporate minus transparent final cumulative cash flow.
	Difference float64 `json:"difference"`
	Advantage  Regime  `json:"advantage"`
}

// Projection is the full output of one engine run.
type Projection struct {
	Financing   FinancingPlan `json:"financing"`
	Loan        []LoanYear    `json:"loan"`
	Transparent []YearRecord  `json:"transparent"`
	Corporate   []YearRecord  `json:"corporate"`
	Summary     Summary       `json:"summary"`
}
