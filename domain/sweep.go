package domain

// SweepAxis varies one percent field of the base parameters from Min to Max.
type SweepAxis struct {
	Field string  `json:"field" yaml:"field"` // e.g. "investment_return", "home_appreciation"
	Min   Percent `json:"min" yaml:"min"`
	Max   Percent `json:"max" yaml:"max"`
	Step  Percent `json:"step" yaml:"step"`
}

type SweepInput struct {
	Base SimulationParameters `json:"base" yaml:"base"`
	Rows SweepAxis            `json:"rows" yaml:"rows"`
	Cols *SweepAxis           `json:"cols,omitempty" yaml:"cols,omitempty"`
}

type SweepCell struct {
	RowValue          Percent `json:"row_value"`
	ColValue          Percent `json:"col_value,omitempty"`
	FinalBuyNetWorth  float64 `json:"final_buy_net_worth"`
	FinalRentNetWorth float64 `json:"final_rent_net_worth"`
	Difference        float64 `json:"difference"` // buy - rent
	Verdict           Verdict `json:"verdict"`
	CrossoverYear     int     `json:"crossover_year"`
}

type SweepResult struct {
	RowField  string        `json:"row_field"`
	ColField  string        `json:"col_field,omitempty"`
	RowValues []Percent     `json:"row_values"`
	ColValues []Percent     `json:"col_values,omitempty"`
	Cells     [][]SweepCell `json:"cells"` // [row][col]
	BuyWins   int           `json:"buy_wins"`
	RentWins  int           `json:"rent_wins"`
	Ties      int           `json:"ties"`
}
