package service

import "github.com/Krishna-debug223/Rent-vs-Buy/domain"

// Simulate validates params and projects buy and rent net worth year by year.
// It holds no state between calls, so concurrent calls need no locking.
func Simulate(params domain.SimulationParameters) (domain.SimulationResult, error) {
	if err := ValidateParameters(params); err != nil {
		return domain.SimulationResult{}, err
	}
	return simulate(params), nil
}

// simulate assumes params are valid.
//
// The buyer's equity grows by the whole mortgage payment (principal and
// interest are not separated) and the renter's savings are never drawn down
// when rent exceeds the payment. Both are part of the model.
func simulate(p domain.SimulationParameters) domain.SimulationResult {
	downPayment := p.DownPayment()
	loan := p.HomePrice - downPayment
	payment := MonthlyPayment(loan, p.MortgageRatePct, p.TermYears*12)

	homeValue := p.HomePrice
	rentLevel := p.MonthlyRent
	equity := downPayment
	savings := downPayment

	result := domain.SimulationResult{
		BuyNetWorth:    make([]float64, 0, p.TermYears),
		RentNetWorth:   make([]float64, 0, p.TermYears),
		MonthlyPayment: payment,
		DownPayment:    downPayment,
		LoanAmount:     loan,
		Years:          make([]domain.YearSnapshot, 0, p.TermYears),
	}

	for year := 1; year <= p.TermYears; year++ {
		homeValue *= p.HomeAppreciationPct.Growth()

		annualPayment := payment * 12
		annualTax := homeValue * p.PropertyTaxPct.Fraction()
		annualMaintenance := homeValue * p.MaintenancePct.Fraction()
		equity += annualPayment - (annualTax + annualMaintenance)

		rentLevel *= p.RentInflationPct.Growth()
		annualRent := rentLevel * 12

		investable := annualPayment - annualRent
		savings *= p.InvestmentReturnPct.Growth()
		if investable > 0 {
			savings += investable
		}

		buy := equity + homeValue
		result.BuyNetWorth = append(result.BuyNetWorth, buy)
		result.RentNetWorth = append(result.RentNetWorth, savings)

		if result.CrossoverYear == 0 && buy > savings {
			result.CrossoverYear = year
		}

		result.Years = append(result.Years, domain.YearSnapshot{
			Year:              year,
			HomeValue:         homeValue,
			RentLevel:         rentLevel,
			Equity:            equity,
			Savings:           savings,
			AnnualPayment:     annualPayment,
			AnnualTax:         annualTax,
			AnnualMaintenance: annualMaintenance,
			AnnualRent:        annualRent,
			Investable:        investable,
			BuyNetWorth:       buy,
			RentNetWorth:      savings,
		})
	}

	result.FinalBuyNetWorth = result.BuyNetWorth[len(result.BuyNetWorth)-1]
	result.FinalRentNetWorth = result.RentNetWorth[len(result.RentNetWorth)-1]
	result.Verdict = domain.CompareNetWorth(result.FinalBuyNetWorth, result.FinalRentNetWorth)

	return result
}
