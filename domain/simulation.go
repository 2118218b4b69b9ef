package domain

// SimulationParameters are the fixed market assumptions of one run.
// Every *Pct field is in percent units.
type SimulationParameters struct {
	HomePrice           float64 `json:"home_price" yaml:"home_price"`
	MortgageRatePct     Percent `json:"mortgage_rate_pct" yaml:"mortgage_rate_pct"`
	DownPaymentPct      Percent `json:"down_payment_pct" yaml:"down_payment_pct"`
	TermYears           int     `json:"term_years" yaml:"term_years"`
	HomeAppreciationPct Percent `json:"home_appreciation_pct" yaml:"home_appreciation_pct"`
	MonthlyRent         float64 `json:"monthly_rent" yaml:"monthly_rent"`
	RentInflationPct    Percent `json:"rent_inflation_pct" yaml:"rent_inflation_pct"`
	InvestmentReturnPct Percent `json:"investment_return_pct" yaml:"investment_return_pct"`
	PropertyTaxPct      Percent `json:"property_tax_pct" yaml:"property_tax_pct"`
	MaintenancePct      Percent `json:"maintenance_pct" yaml:"maintenance_pct"`
}

// DownPayment is the capital both strategies start from.
func (p SimulationParameters) DownPayment() float64 {
	return p.HomePrice * p.DownPaymentPct.Fraction()
}

// LoanAmount is the mortgage principal.
func (p SimulationParameters) LoanAmount() float64 {
	return p.HomePrice - p.DownPayment()
}

type Verdict string

const (
	VerdictBuying  Verdict = "buying higher"
	VerdictRenting Verdict = "renting higher"
	VerdictEqual   Verdict = "equal"
)

// CompareNetWorth uses exact equality for the equal case.
func CompareNetWorth(buy, rent float64) Verdict {
	switch {
	case buy > rent:
		return VerdictBuying
	case rent > buy:
		return VerdictRenting
	default:
		return VerdictEqual
	}
}

// YearSnapshot is the state at the end of one simulated year.
type YearSnapshot struct {
	Year              int     `json:"year"`
	HomeValue         float64 `json:"home_value"`
	RentLevel         float64 `json:"rent_level"`
	Equity            float64 `json:"equity"`
	Savings           float64 `json:"savings"`
	AnnualPayment     float64 `json:"annual_payment"`
	AnnualTax         float64 `json:"annual_tax"`
	AnnualMaintenance float64 `json:"annual_maintenance"`
	AnnualRent        float64 `json:"annual_rent"`
	Investable        float64 `json:"investable"`
	BuyNetWorth       float64 `json:"buy_net_worth"`
	RentNetWorth      float64 `json:"rent_net_worth"`
}

type SimulationResult struct {
	BuyNetWorth       []float64      `json:"buy_net_worth"`
	RentNetWorth      []float64      `json:"rent_net_worth"`
	FinalBuyNetWorth  float64        `json:"final_buy_net_worth"`
	FinalRentNetWorth float64        `json:"final_rent_net_worth"`
	MonthlyPayment    float64        `json:"monthly_payment"`
	DownPayment       float64        `json:"down_payment"`
	LoanAmount        float64        `json:"loan_amount"`
	Verdict           Verdict        `json:"verdict"`
	CrossoverYear     int            `json:"crossover_year"` // first year buying leads, 0 if never
	Years             []YearSnapshot `json:"years"`
}

// SimulationRecord is a saved run, as returned by GET /simulations/{id}.
type SimulationRecord struct {
	ID     string               `json:"id"`
	Params SimulationParameters `json:"params"`
	Result SimulationResult     `json:"result"`
}

// SimulationResponse is the body of POST /simulate.
type SimulationResponse struct {
	ID     string           `json:"id,omitempty"`
	Cached bool             `json:"cached"`
	Result SimulationResult `json:"result"`
}
