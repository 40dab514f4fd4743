package service

import "math"

// TransparentTaxRate is the rate applied to the property result in the
// transparent regime.
func TransparentTaxRate(marginalRate float64, socialContributions bool) float64 {
	if socialContributions {
		return marginalRate + SocialContributionRate
	}
	return marginalRate
}

// CorporateTax applies the reduced rate up to the threshold and the standard
// rate above it.
func CorporateTax(taxableBase float64) float64 {
	reduced := math.Min(taxableBase, CorporateReducedThreshold) * CorporateReducedRate
	standard := math.Max(0, taxableBase-CorporateReducedThreshold) * CorporateStandardRate
	return reduced + standard
}

// lossCarryforward is the stock of corporate losses not yet offset. It never
// goes negative.
type lossCarryforward struct {
	stock float64
}

// absorb books one year's pre-tax result and returns the taxable base left
// after offsetting prior losses.
func (l *lossCarryforward) absorb(result float64) float64 {
	if result < 0 {
		l.stock += math.Abs(result)
		return 0
	}

	taxable := math.Max(0, result-l.stock)
	l.stock = math.Max(0, l.stock-result)
	return taxable
}
