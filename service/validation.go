package service

import (
	"fmt"
	"math"

	"github.com/Krishna-debug223/Rent-vs-Buy/domain"
)

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func nonNegativeRate(field string, p domain.Percent) error {
	if !finite(float64(p)) {
		return invalid(field, p, "must be a finite number")
	}
	if p < 0 {
		return invalid(field, p, "must not be negative")
	}
	if p > MaxInterestRate {
		return invalid(field, p, fmt.Sprintf("exceeds the maximum of %.2f%%", MaxInterestRate))
	}
	return nil
}

// ValidateParameters rejects parameter sets the simulation must never see.
// It returns the first failure as a *ParameterError.
func ValidateParameters(p domain.SimulationParameters) error {
	if !finite(p.HomePrice) || p.HomePrice <= 0 {
		return invalid("home_price", p.HomePrice, "must be positive")
	}
	if p.HomePrice > MaxLoanAmount {
		return invalid("home_price", p.HomePrice, fmt.Sprintf("exceeds the maximum of %.2f", MaxLoanAmount))
	}
	if err := nonNegativeRate("mortgage_rate_pct", p.MortgageRatePct); err != nil {
		return err
	}
	if !finite(float64(p.DownPaymentPct)) || p.DownPaymentPct < 0 || p.DownPaymentPct > 100 {
		return invalid("down_payment_pct", p.DownPaymentPct, "must be between 0 and 100")
	}
	if p.TermYears < MinTermYears {
		return invalid("term_years", p.TermYears, "must be at least 1")
	}
	if p.TermYears > MaxTermYears {
		return invalid("term_years", p.TermYears, fmt.Sprintf("exceeds the maximum of %d years", MaxTermYears))
	}
	if !finite(float64(p.HomeAppreciationPct)) || p.HomeAppreciationPct <= MinAppreciationPct {
		return invalid("home_appreciation_pct", p.HomeAppreciationPct, "must be greater than -100")
	}
	if p.HomeAppreciationPct > MaxInterestRate {
		return invalid("home_appreciation_pct", p.HomeAppreciationPct, fmt.Sprintf("exceeds the maximum of %.2f%%", MaxInterestRate))
	}
	if !finite(p.MonthlyRent) || p.MonthlyRent <= 0 {
		return invalid("monthly_rent", p.MonthlyRent, "must be positive")
	}
	if p.MonthlyRent > MaxMonthlyRent {
		return invalid("monthly_rent", p.MonthlyRent, fmt.Sprintf("exceeds the maximum of %.2f", MaxMonthlyRent))
	}

	rates := []struct {
		field string
		value domain.Percent
	}{
		{"rent_inflation_pct", p.RentInflationPct},
		{"investment_return_pct", p.InvestmentReturnPct},
		{"property_tax_pct", p.PropertyTaxPct},
		{"maintenance_pct", p.MaintenancePct},
	}
	for _, r := range rates {
		if err := nonNegativeRate(r.field, r.value); err != nil {
			return err
		}
	}

	return nil
}
