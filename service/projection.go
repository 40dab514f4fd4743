package service

import (
	"math"

	"sci-simulator/domain"
)

// operatingYear holds the regime-independent figures of one year.
type operatingYear struct {
	rent        float64
	baseCharges float64
}

// Project runs the full engine: financing, depreciation, the shared loan
// trajectory and one fold per tax regime over HorizonYears.
func Project(input domain.ProjectInputs) domain.Projection {
	plan := ResolveFinancing(input)
	depreciation := AnnualDepreciation(input.PurchasePrice)

	loan := BuildLoanSchedule(input, plan, HorizonYears)
	operating := buildOperatingSchedule(input, HorizonYears)

	transparent := projectTransparent(input, operating, loan)
	corporate := projectCorporate(input, operating, loan, depreciation)

	return domain.Projection{
		Financing:   plan,
		Loan:        loan,
		Transparent: transparent,
		Corporate:   corporate,
		Summary:     summarize(input, plan, depreciation, transparent, corporate),
	}
}

// BuildLoanSchedule advances the outstanding balance year by year. Once the
// loan duration is exceeded every figure is zero, including the balance.
func BuildLoanSchedule(
	input domain.ProjectInputs,
	plan domain.FinancingPlan,
	years int,
) []domain.LoanYear {
	schedule := make([]domain.LoanYear, 0, years)
	balance := plan.LoanPrincipal
	annualCredit := plan.MonthlyCredit * 12
	annualInsurance := plan.MonthlyInsurance * 12

	for year := 1; year <= years; year++ {
		if year > input.LoanYears {
			schedule = append(schedule, domain.LoanYear{Year: year})
			continue
		}

		interest := balance * input.InterestRate
		principal := annualCredit - interest
		balance = math.Max(0, balance-principal)

		schedule = append(schedule, domain.LoanYear{
			Year:        year,
			Interest:    interest,
			Insurance:   annualInsurance,
			Principal:   principal,
			DebtService: annualCredit + annualInsurance,
			Balance:     balance,
		})
	}

	return schedule
}

func buildOperatingSchedule(input domain.ProjectInputs, years int) []operatingYear {
	schedule := make([]operatingYear, 0, years)

	for year := 1; year <= years; year++ {
		rent := input.AnnualRent *
			math.Pow(1+input.RentGrowthRate, float64(year-1)) *
			(1 - input.VacancyRate)

		schedule = append(schedule, operatingYear{
			rent:        rent,
			baseCharges: rent*input.ManagementFeeRate + input.PropertyTax,
		})
	}

	return schedule
}

func projectTransparent(
	input domain.ProjectInputs,
	operating []operatingYear,
	loan []domain.LoanYear,
) []domain.YearRecord {
	records := make([]domain.YearRecord, 0, len(loan))
	rate := TransparentTaxRate(input.MarginalTaxRate, input.SocialContributions)
	cumulative := 0.0

	for i, l := range loan {
		op := operating[i]

		result := op.rent - op.baseCharges - l.Insurance - l.Interest
		tax := math.Max(0, result*rate)
		cashFlow := op.rent - l.DebtService - op.baseCharges - tax
		cumulative += cashFlow

		records = append(records, domain.YearRecord{
			Year:       l.Year,
			Rent:       op.rent,
			Charges:    op.baseCharges + l.Insurance,
			Interest:   l.Interest,
			Principal:  l.Principal,
			Tax:        tax,
			CashFlow:   cashFlow,
			Cumulative: cumulative,
			Balance:    l.Balance,
		})
	}

	return records
}

func projectCorporate(
	input domain.ProjectInputs,
	operating []operatingYear,
	loan []domain.LoanYear,
	depreciation float64,
) []domain.YearRecord {
	records := make([]domain.YearRecord, 0, len(loan))
	losses := &lossCarryforward{}
	cumulative := 0.0

	for i, l := range loan {
		op := operating[i]

		result := op.rent - op.baseCharges - l.Insurance - l.Interest -
			input.AccountantFee - depreciation
		tax := CorporateTax(losses.absorb(result))
		cashFlow := op.rent - l.DebtService - op.baseCharges - input.AccountantFee - tax
		cumulative += cashFlow

		records = append(records, domain.YearRecord{
			Year:             l.Year,
			Rent:             op.rent,
			Charges:          op.baseCharges + l.Insurance + input.AccountantFee,
			Interest:         l.Interest,
			Principal:        l.Principal,
			Tax:              tax,
			CashFlow:         cashFlow,
			Cumulative:       cumulative,
			Balance:          l.Balance,
			LossCarryforward: losses.stock,
		})
	}

	return records
}

func summarize(
	input domain.ProjectInputs,
	plan domain.FinancingPlan,
	depreciation float64,
	transparent, corporate []domain.YearRecord,
) domain.Summary {
	summary := domain.Summary{
		TotalCost:          plan.TotalCost,
		NotaryFee:          plan.NotaryFee,
		LoanPrincipal:      plan.LoanPrincipal,
		MonthlyPayment:     plan.MonthlyPayment(),
		AnnualDepreciation: depreciation,
		Advantage:          domain.RegimeTransparent,
	}
	if plan.TotalCost != 0 {
		summary.ContributionRatio = input.Contribution / plan.TotalCost
	}
	if n := len(transparent); n > 0 {
		summary.TransparentCumulative = transparent[n-1].Cumulative
	}
	if n := len(corporate); n > 0 {
		summary.CorporateCumulative = corporate[n-1].Cumulative
	}

	summary.Difference = summary.CorporateCumulative - summary.TransparentCumulative
	if summary.Difference > 0 {
		summary.Advantage = domain.RegimeCorporate
	}
	return summary
}
