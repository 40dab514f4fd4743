package service

import (
	"math"

	"sci-simulator/domain"
)

// ResolveFinancing turns the acquisition side of the inputs into the total
// project cost, the borrowed principal and the fixed monthly payments.
func ResolveFinancing(input domain.ProjectInputs) domain.FinancingPlan {
	notaryFee := input.PurchasePrice * input.NotaryRate
	totalCost := input.PurchasePrice + notaryFee + input.WorksCost + input.BankFees
	principal := math.Max(0, totalCost-input.Contribution)

	plan := domain.FinancingPlan{
		NotaryFee:     notaryFee,
		TotalCost:     totalCost,
		LoanPrincipal: principal,
	}
	if principal <= 0 {
		return plan
	}

	plan.MonthlyCredit = monthlyAnnuity(principal, input.InterestRate, input.LoanYears*12)
	plan.MonthlyInsurance = principal * input.InsuranceRate / 12
	return plan
}

// monthlyAnnuity is the constant payment amortizing principal over n monthly
// periods. A zero rate, or one too small to move 1+r, falls back to
// straight-line repayment.
func monthlyAnnuity(principal, annualRate float64, months int) float64 {
	if months <= 0 {
		return 0
	}
	r := annualRate / 12
	n := float64(months)

	if r == 0 {
		return principal / n
	}

	// 1 - (1+r)^-n, computed without cancellation for small r
	denominator := -math.Expm1(-n * math.Log1p(r))
	if !(denominator > 0) {
		return principal / n
	}
	return (principal * r) / denominator
}
