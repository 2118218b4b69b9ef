package service

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/Krishna-debug223/Rent-vs-Buy/domain"
)

func baseParams() domain.SimulationParameters {
	return domain.SimulationParameters{
		HomePrice:           668000,
		MortgageRatePct:     5.5,
		DownPaymentPct:      20,
		TermYears:           30,
		HomeAppreciationPct: 2.5,
		MonthlyRent:         2100,
		RentInflationPct:    4.0,
		InvestmentReturnPct: 6.0,
		PropertyTaxPct:      0.8,
		MaintenancePct:      1.5,
	}
}

func assertRelClose(t *testing.T, expected, actual, tol float64, description string) {
	t.Helper()
	if expected == actual {
		return
	}
	if math.Abs(expected-actual) > tol*math.Abs(expected) {
		t.Errorf("%s: expected %.10f, got %.10f", description, expected, actual)
	}
}

func TestSimulate_ReferenceScenario(t *testing.T) {
	result, err := Simulate(baseParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Reference figures for the default scenario.
	assertRelClose(t, 3034.2644231983704, result.MonthlyPayment, 1e-9, "monthly payment")
	assertRelClose(t, 838963.0730783803, result.BuyNetWorth[0], 1e-9, "year 1 buy")
	assertRelClose(t, 151819.17307838044, result.RentNetWorth[0], 1e-9, "year 1 rent")
	assertRelClose(t, 1176376.229888624, result.BuyNetWorth[9], 1e-9, "year 10 buy")
	assertRelClose(t, 313061.73052460194, result.RentNetWorth[9], 1e-9, "year 10 rent")
	assertRelClose(t, 1935726.1754925286, result.FinalBuyNetWorth, 1e-6, "final buy")
	assertRelClose(t, 1004031.3809577905, result.FinalRentNetWorth, 1e-6, "final rent")

	if result.Verdict != domain.VerdictBuying {
		t.Errorf("expected %q, got %q", domain.VerdictBuying, result.Verdict)
	}
	if result.CrossoverYear != 1 {
		t.Errorf("expected buying to lead from year 1, got %d", result.CrossoverYear)
	}
}

func TestSimulate_SequenceLengths(t *testing.T) {
	for _, years := range []int{1, 2, 5, 15, 30, 40, MaxTermYears} {
		p := baseParams()
		p.TermYears = years

		result, err := Simulate(p)
		if err != nil {
			t.Fatalf("years=%d: unexpected error: %v", years, err)
		}
		if len(result.BuyNetWorth) != years || len(result.RentNetWorth) != years || len(result.Years) != years {
			t.Errorf("years=%d: got %d buy, %d rent, %d snapshots",
				years, len(result.BuyNetWorth), len(result.RentNetWorth), len(result.Years))
		}
		if result.FinalBuyNetWorth != result.BuyNetWorth[years-1] {
			t.Errorf("years=%d: final buy is not the last element", years)
		}
		if result.FinalRentNetWorth != result.RentNetWorth[years-1] {
			t.Errorf("years=%d: final rent is not the last element", years)
		}
	}
}

func TestSimulate_FirstYearMatchesFormulas(t *testing.T) {
	p := baseParams()

	dp := p.HomePrice * p.DownPaymentPct.Fraction()
	loan := p.HomePrice - dp
	r := p.MortgageRatePct.Fraction() / 12
	growth := math.Expm1(float64(p.TermYears*12) * math.Log1p(r))
	payment := loan * r * (growth + 1) / growth

	home := p.HomePrice * p.HomeAppreciationPct.Growth()
	annualPayment := payment * 12
	equity := dp + (annualPayment - (home*p.PropertyTaxPct.Fraction() + home*p.MaintenancePct.Fraction()))

	rent := p.MonthlyRent * p.RentInflationPct.Growth()
	investable := annualPayment - rent*12
	savings := dp * p.InvestmentReturnPct.Growth()
	if investable > 0 {
		savings += investable
	}

	result, err := Simulate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.MonthlyPayment != payment {
		t.Errorf("payment: expected %v, got %v", payment, result.MonthlyPayment)
	}
	if result.BuyNetWorth[0] != equity+home {
		t.Errorf("year 1 buy: expected %v, got %v", equity+home, result.BuyNetWorth[0])
	}
	if result.RentNetWorth[0] != savings {
		t.Errorf("year 1 rent: expected %v, got %v", savings, result.RentNetWorth[0])
	}

	y := result.Years[0]
	if y.Year != 1 || y.HomeValue != home || y.RentLevel != rent || y.Investable != investable {
		t.Errorf("unexpected year 1 snapshot: %+v", y)
	}
}

func TestSimulate_SingleYear(t *testing.T) {
	full, _ := Simulate(baseParams())

	p := baseParams()
	p.TermYears = 1
	one, err := Simulate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(one.BuyNetWorth) != 1 || len(one.RentNetWorth) != 1 {
		t.Fatalf("expected single element sequences, got %d/%d", len(one.BuyNetWorth), len(one.RentNetWorth))
	}

	// A 1-year term changes the payment, so compare with the formulas
	// rather than the 30-year run.
	if one.MonthlyPayment == full.MonthlyPayment {
		t.Errorf("expected a 12-month amortization payment")
	}
	if one.FinalBuyNetWorth != one.BuyNetWorth[0] || one.FinalRentNetWorth != one.RentNetWorth[0] {
		t.Errorf("final values should equal the only element")
	}
	assertRelClose(t, 1019458.7204182447, mustSimulate(t, domain.SimulationParameters{
		HomePrice: 500000, MortgageRatePct: 6, DownPaymentPct: 10, TermYears: 1,
		HomeAppreciationPct: 3, MonthlyRent: 4000, RentInflationPct: 2,
		InvestmentReturnPct: 5, PropertyTaxPct: 1, MaintenancePct: 1,
	}).FinalBuyNetWorth, 1e-9, "one-year buy")
}

func mustSimulate(t *testing.T, p domain.SimulationParameters) domain.SimulationResult {
	t.Helper()
	result, err := Simulate(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

func TestSimulate_ZeroRatesMonotonic(t *testing.T) {
	p := domain.SimulationParameters{
		HomePrice:      300000,
		DownPaymentPct: 20,
		TermYears:      10,
		MonthlyRent:    1000,
	}
	result := mustSimulate(t, p)

	expected := result.DownPayment
	for i, y := range result.Years {
		if y.Investable > 0 {
			expected += y.Investable
		}
		if result.RentNetWorth[i] != expected {
			t.Errorf("year %d: expected rent net worth %v, got %v", i+1, expected, result.RentNetWorth[i])
		}
		if i > 0 && result.RentNetWorth[i] < result.RentNetWorth[i-1] {
			t.Errorf("year %d: rent net worth decreased", i+1)
		}
	}

	assertRelClose(t, 180000, result.FinalRentNetWorth, 1e-12, "final rent")
	assertRelClose(t, 384000, result.BuyNetWorth[0], 1e-12, "year 1 buy")
}

func TestSimulate_ZeroMortgageRate(t *testing.T) {
	p := baseParams()
	p.MortgageRatePct = 0

	result := mustSimulate(t, p)

	n := float64(p.TermYears * 12)
	if math.IsNaN(result.MonthlyPayment) || math.IsInf(result.MonthlyPayment, 0) {
		t.Fatalf("payment is not finite: %v", result.MonthlyPayment)
	}
	if result.MonthlyPayment != result.LoanAmount/n {
		t.Errorf("expected payment %v, got %v", result.LoanAmount/n, result.MonthlyPayment)
	}
	for i := range result.BuyNetWorth {
		if math.IsNaN(result.BuyNetWorth[i]) || math.IsNaN(result.RentNetWorth[i]) {
			t.Fatalf("year %d: NaN in output", i+1)
		}
	}
}

func TestSimulate_TinyMortgageRateStaysFinite(t *testing.T) {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

	for _, down := range []domain.Percent{20, 100} {
		p := baseParams()
		p.MortgageRatePct = 1e-15
		p.DownPaymentPct = down

		result := mustSimulate(t, p)

		n := float64(p.TermYears * 12)
		if !finite(result.MonthlyPayment) {
			t.Fatalf("down %v: payment is not finite: %v", down, result.MonthlyPayment)
		}
		assertRelClose(t, result.LoanAmount/n, result.MonthlyPayment, 1e-9, "near-zero rate payment")
		for i, y := range result.Years {
			if !finite(y.BuyNetWorth) || !finite(y.RentNetWorth) || !finite(y.Equity) || !finite(y.Investable) {
				t.Fatalf("down %v, year %d: non-finite snapshot %+v", down, i+1, y)
			}
		}
		if !finite(result.FinalBuyNetWorth) || !finite(result.FinalRentNetWorth) {
			t.Errorf("down %v: non-finite finals %v / %v", down, result.FinalBuyNetWorth, result.FinalRentNetWorth)
		}
	}
}

func TestSimulate_RentAboveMortgageNeverDrawsSavings(t *testing.T) {
	p := baseParams()
	p.MonthlyRent = 20000

	result := mustSimulate(t, p)

	savings := result.DownPayment
	for i, y := range result.Years {
		if y.Investable >= 0 {
			t.Fatalf("year %d: expected negative investable, got %v", i+1, y.Investable)
		}
		savings *= p.InvestmentReturnPct.Growth()
		if result.RentNetWorth[i] != savings {
			t.Errorf("year %d: expected pure growth %v, got %v", i+1, savings, result.RentNetWorth[i])
		}
	}
	if result.Verdict != domain.VerdictBuying {
		t.Errorf("expected buying to win, got %q", result.Verdict)
	}
}

func TestSimulate_FullDownPayment(t *testing.T) {
	p := baseParams()
	p.DownPaymentPct = 100

	result := mustSimulate(t, p)
	if result.LoanAmount != 0 || result.MonthlyPayment != 0 {
		t.Errorf("expected no loan, got loan %v payment %v", result.LoanAmount, result.MonthlyPayment)
	}
}

func TestSimulate_Idempotent(t *testing.T) {
	first := mustSimulate(t, baseParams())
	second := mustSimulate(t, baseParams())

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated runs differ")
	}
}

func TestSimulate_BothStartFromDownPayment(t *testing.T) {
	p := baseParams()
	result := mustSimulate(t, p)

	if result.DownPayment != p.DownPayment() {
		t.Errorf("expected down payment %v, got %v", p.DownPayment(), result.DownPayment)
	}
	assertRelClose(t, p.HomePrice, result.LoanAmount+result.DownPayment, 1e-12, "loan plus down payment")
	if result.Years[0].Savings != result.RentNetWorth[0] {
		t.Errorf("rent net worth should be the savings balance")
	}
}

func TestSimulate_InvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		mutate func(*domain.SimulationParameters)
	}{
		{"zero price", "home_price", func(p *domain.SimulationParameters) { p.HomePrice = 0 }},
		{"negative price", "home_price", func(p *domain.SimulationParameters) { p.HomePrice = -1 }},
		{"NaN price", "home_price", func(p *domain.SimulationParameters) { p.HomePrice = math.NaN() }},
		{"negative rate", "mortgage_rate_pct", func(p *domain.SimulationParameters) { p.MortgageRatePct = -0.1 }},
		{"down payment above 100", "down_payment_pct", func(p *domain.SimulationParameters) { p.DownPaymentPct = 101 }},
		{"negative down payment", "down_payment_pct", func(p *domain.SimulationParameters) { p.DownPaymentPct = -5 }},
		{"zero term", "term_years", func(p *domain.SimulationParameters) { p.TermYears = 0 }},
		{"negative term", "term_years", func(p *domain.SimulationParameters) { p.TermYears = -3 }},
		{"term too long", "term_years", func(p *domain.SimulationParameters) { p.TermYears = MaxTermYears + 1 }},
		{"total depreciation", "home_appreciation_pct", func(p *domain.SimulationParameters) { p.HomeAppreciationPct = -100 }},
		{"zero rent", "monthly_rent", func(p *domain.SimulationParameters) { p.MonthlyRent = 0 }},
		{"negative rent inflation", "rent_inflation_pct", func(p *domain.SimulationParameters) { p.RentInflationPct = -1 }},
		{"negative return", "investment_return_pct", func(p *domain.SimulationParameters) { p.InvestmentReturnPct = -1 }},
		{"negative tax", "property_tax_pct", func(p *domain.SimulationParameters) { p.PropertyTaxPct = -1 }},
		{"infinite maintenance", "maintenance_pct", func(p *domain.SimulationParameters) { p.MaintenancePct = domain.Percent(math.Inf(1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseParams()
			tt.mutate(&p)

			_, err := Simulate(p)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
			var perr *ParameterError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParameterError, got %T", err)
			}
			if perr.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, perr.Field)
			}
		})
	}
}

func TestSimulate_NegativeAppreciationAllowed(t *testing.T) {
	p := baseParams()
	p.HomeAppreciationPct = -3

	result := mustSimulate(t, p)
	if result.Years[1].HomeValue >= result.Years[0].HomeValue {
		t.Errorf("expected the home to lose value")
	}
}

func TestSimulate_LargestAllowedInputsStayFinite(t *testing.T) {
	p := domain.SimulationParameters{
		HomePrice:           MaxLoanAmount,
		MortgageRatePct:     MaxInterestRate,
		DownPaymentPct:      0,
		TermYears:           MaxTermYears,
		HomeAppreciationPct: MaxInterestRate,
		MonthlyRent:         MaxMonthlyRent,
		RentInflationPct:    MaxInterestRate,
		InvestmentReturnPct: MaxInterestRate,
		PropertyTaxPct:      MaxInterestRate,
		MaintenancePct:      MaxInterestRate,
	}
	result := mustSimulate(t, p)

	for i := range result.BuyNetWorth {
		for _, v := range []float64{result.BuyNetWorth[i], result.RentNetWorth[i]} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("year %d: non-finite net worth %v", i+1, v)
			}
		}
	}

	p.HomePrice = MaxLoanAmount * 2
	if _, err := Simulate(p); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected home price above the cap to be rejected, got %v", err)
	}
}
