package service

import (
	"errors"
	"fmt"

	"sci-simulator/domain"
)

// ErrInvalidInput wraps every rejection made by ValidateInputs.
var ErrInvalidInput = errors.New("invalid input")

// ValidateInputs constrains the inputs to the domain the engine is meant for.
// The engine itself never fails, so this is the only gate.
func ValidateInputs(input domain.ProjectInputs) error {
	if input.PurchasePrice <= 0 {
		return fmt.Errorf("%w: purchase price must be positive", ErrInvalidInput)
	}
	if input.PurchasePrice > MaxPurchasePrice {
		return fmt.Errorf("%w: purchase price exceeds %.0f", ErrInvalidInput, MaxPurchasePrice)
	}
	if input.LoanYears < MinLoanYears || input.LoanYears > MaxLoanYears {
		return fmt.Errorf("%w: loan duration must be between %d and %d years",
			ErrInvalidInput, MinLoanYears, MaxLoanYears)
	}

	amounts := []struct {
		name  string
		value float64
		max   float64
	}{
		{"works cost", input.WorksCost, MaxPurchasePrice},
		{"bank fees", input.BankFees, MaxPurchasePrice},
		{"contribution", input.Contribution, MaxPurchasePrice},
		{"annual rent", input.AnnualRent, MaxAnnualAmount},
		{"property tax", input.PropertyTax, MaxAnnualAmount},
		{"accountant fee", input.AccountantFee, MaxAnnualAmount},
	}
	for _, a := range amounts {
		if a.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, a.name)
		}
		if a.value > a.max {
			return fmt.Errorf("%w: %s exceeds %.0f", ErrInvalidInput, a.name, a.max)
		}
	}

	rates := []struct {
		name  string
		value float64
	}{
		{"notary rate", input.NotaryRate},
		{"interest rate", input.InterestRate},
		{"insurance rate", input.InsuranceRate},
		{"vacancy rate", input.VacancyRate},
		{"management fee rate", input.ManagementFeeRate},
		{"marginal tax rate", input.MarginalTaxRate},
	}
	for _, r := range rates {
		if r.value < 0 || r.value > MaxRate {
			return fmt.Errorf("%w: %s must be a fraction between 0 and %.0f", ErrInvalidInput, r.name, MaxRate)
		}
	}

	if input.RentGrowthRate < MinRentGrowth || input.RentGrowthRate > MaxRate {
		return fmt.Errorf("%w: rent growth rate must be between %.0f and %.0f",
			ErrInvalidInput, MinRentGrowth, MaxRate)
	}

	return nil
}
