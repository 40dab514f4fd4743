package service

// AnnualDepreciation is the constant yearly allowance deducted in the
// corporate regime. It is never declined or expired over the horizon.
func AnnualDepreciation(purchasePrice float64) float64 {
	base := purchasePrice * DepreciableShare

	allowance := 0.0
	for _, c := range depreciationComponents {
		allowance += base * c.Share / c.Years
	}
	return allowance
}
