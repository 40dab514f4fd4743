package domain

// ProjectInputs holds every assumption of a simulation. Rates are fractions
// (0.036 for 3.6%), amounts are euros.
type ProjectInputs struct {
	PurchasePrice float64 `json:"purchase_price" yaml:"purchase_price"`
	NotaryRate    float64 `json:"notary_rate" yaml:"notary_rate"`
	WorksCost     float64 `json:"works_cost" yaml:"works_cost"`
	BankFees      float64 `json:"bank_fees" yaml:"bank_fees"`
	Contribution  float64 `json:"contribution" yaml:"contribution"`

	LoanYears     int     `json:"loan_years" yaml:"loan_years"`
	InterestRate  float64 `json:"interest_rate" yaml:"interest_rate"`
	InsuranceRate float64 `json:"insurance_rate" yaml:"insurance_rate"`

	AnnualRent        float64 `json:"annual_rent" yaml:"annual_rent"`
	RentGrowthRate    float64 `json:"rent_growth_rate" yaml:"rent_growth_rate"`
	VacancyRate       float64 `json:"vacancy_rate" yaml:"vacancy_rate"`
	PropertyTax       float64 `json:"property_tax" yaml:"property_tax"`
	ManagementFeeRate float64 `json:"management_fee_rate" yaml:"management_fee_rate"`
	AccountantFee     float64 `json:"accountant_fee" yaml:"accountant_fee"` // corporate regime only

	MarginalTaxRate     float64 `json:"marginal_tax_rate" yaml:"marginal_tax_rate"`
	SocialContributions bool    `json:"social_contributions" yaml:"social_contributions"`
}

// ReferenceInputs returns the reference scenario: a 640k€ building financed
// over 25 years, rented 51k€ a year, held by someone in the 30% bracket.
func ReferenceInputs() ProjectInputs {
	return ProjectInputs{
		PurchasePrice:       640000,
		NotaryRate:          0.083,
		WorksCost:           0,
		BankFees:            2000,
		Contribution:        100000,
		LoanYears:           25,
		InterestRate:        0.036,
		InsuranceRate:       0.005,
		AnnualRent:          51000,
		RentGrowthRate:      0.01,
		VacancyRate:         0.05,
		PropertyTax:         4500,
		ManagementFeeRate:   0.10,
		AccountantFee:       1200,
		MarginalTaxRate:     0.30,
		SocialContributions: true,
	}
}

// FinancingPlan is resolved once from the acquisition side of ProjectInputs.
type FinancingPlan struct {
	NotaryFee        float64 `json:"notary_fee"`
	TotalCost        float64 `json:"total_cost"`
	LoanPrincipal    float64 `json:"loan_principal"`
	MonthlyCredit    float64 `json:"monthly_credit"`
	MonthlyInsurance float64 `json:"monthly_insurance"`
}

// MonthlyPayment is the combined fixed monthly outflow, credit plus insurance.
func (p FinancingPlan) MonthlyPayment() float64 {
	return p.MonthlyCredit + p.MonthlyInsurance
}
