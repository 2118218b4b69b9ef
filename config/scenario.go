package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Krishna-debug223/Rent-vs-Buy/domain"
)

// DefaultScenario is a Canadian starter home: $668k at 5.5% over 30 years
// against $2,100/month rent.
func DefaultScenario() domain.SimulationParameters {
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

// LoadScenario reads simulation parameters from a YAML file. Fields the
// file omits keep their DefaultScenario value. Rates may be written as 5.5
// or "5.5%"; both mean five and a half percent.
func LoadScenario(filename string) (domain.SimulationParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.SimulationParameters{}, err
	}

	params := DefaultScenario()
	if err := yaml.Unmarshal(data, &params); err != nil {
		return domain.SimulationParameters{}, fmt.Errorf("parse %s: %w", filename, err)
	}
	return params, nil
}

// SaveScenario writes params as YAML with a short header.
func SaveScenario(params domain.SimulationParameters, filename string) error {
	data, err := yaml.Marshal(params)
	if err != nil {
		return err
	}

	header := []byte(`# Rent vs. Buy scenario
# Rates are percentages: 5.5 means 5.5% (a "5.5%" string also works).
# Money values are in dollars.

`)
	return os.WriteFile(filename, append(header, data...), 0644)
}
