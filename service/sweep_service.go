package service

import (
	"fmt"
	"math"
	"sync"

	"github.com/Krishna-debug223/Rent-vs-Buy/domain"
)

// Sweep axis field names.
const (
	FieldMortgageRate     = "mortgage_rate"
	FieldDownPayment      = "down_payment"
	FieldHomeAppreciation = "home_appreciation"
	FieldRentInflation    = "rent_inflation"
	FieldInvestmentReturn = "investment_return"
	FieldPropertyTax      = "property_tax"
	FieldMaintenance      = "maintenance"
)

type SweepService struct {
	workers int
}

func NewSweepService(workers int) *SweepService {
	if workers < 1 {
		workers = 1
	}
	return &SweepService{workers: workers}
}

func setField(p *domain.SimulationParameters, field string, v domain.Percent) error {
	switch field {
	case FieldMortgageRate:
		p.MortgageRatePct = v
	case FieldDownPayment:
		p.DownPaymentPct = v
	case FieldHomeAppreciation:
		p.HomeAppreciationPct = v
	case FieldRentInflation:
		p.RentInflationPct = v
	case FieldInvestmentReturn:
		p.InvestmentReturnPct = v
	case FieldPropertyTax:
		p.PropertyTaxPct = v
	case FieldMaintenance:
		p.MaintenancePct = v
	default:
		return invalid("field", field, "unknown sweep field")
	}
	return nil
}

// axisValues returns Min, Min+Step, ... up to Max inclusive.
func axisValues(axis domain.SweepAxis) ([]domain.Percent, error) {
	if err := setField(&domain.SimulationParameters{}, axis.Field, 0); err != nil {
		return nil, err
	}
	if !finite(float64(axis.Min)) || !finite(float64(axis.Max)) || !finite(float64(axis.Step)) {
		return nil, invalid(axis.Field, axis, "bounds must be finite")
	}
	if axis.Max < axis.Min {
		return nil, invalid(axis.Field, axis, "max is below min")
	}
	if axis.Step <= 0 {
		if axis.Max == axis.Min {
			return []domain.Percent{axis.Min}, nil
		}
		return nil, invalid(axis.Field, axis, "step must be positive")
	}

	// small epsilon so Max is reached despite float steps; checked as a
	// float since huge spans overflow int
	steps := math.Floor(float64(axis.Max-axis.Min)/float64(axis.Step) + 1e-9)
	if math.IsNaN(steps) || steps+1 > MaxSweepPoints {
		return nil, invalid(axis.Field, axis, fmt.Sprintf("more than %d values", MaxSweepPoints))
	}
	count := int(steps) + 1

	values := make([]domain.Percent, count)
	for i := range values {
		v := float64(axis.Min) + float64(i)*float64(axis.Step)
		values[i] = domain.Percent(math.Round(v*1e9) / 1e9)
	}
	return values, nil
}

type sweepJob struct {
	row, col int
	params   domain.SimulationParameters
}

// Sweep runs one simulation per grid cell. Cells are independent, so they
// are spread over a fixed pool of workers and each worker writes only its own cell.
func (s *SweepService) Sweep(input domain.SweepInput) (domain.SweepResult, error) {
	if err := ValidateParameters(input.Base); err != nil {
		return domain.SweepResult{}, err
	}

	rows, err := axisValues(input.Rows)
	if err != nil {
		return domain.SweepResult{}, err
	}

	cols := []domain.Percent{0}
	result := domain.SweepResult{
		RowField:  input.Rows.Field,
		RowValues: rows,
	}
	if input.Cols != nil {
		if input.Cols.Field == input.Rows.Field {
			return domain.SweepResult{}, invalid("cols.field", input.Cols.Field, "must differ from rows.field")
		}
		cols, err = axisValues(*input.Cols)
		if err != nil {
			return domain.SweepResult{}, err
		}
		result.ColField = input.Cols.Field
		result.ColValues = cols
	}

	// Build and validate every cell before any work starts.
	jobs := make([]sweepJob, 0, len(rows)*len(cols))
	for ri, rv := range rows {
		for ci, cv := range cols {
			params := input.Base
			_ = setField(&params, input.Rows.Field, rv)
			if input.Cols != nil {
				_ = setField(&params, input.Cols.Field, cv)
			}
			if err := ValidateParameters(params); err != nil {
				return domain.SweepResult{}, fmt.Errorf("sweep cell %v/%v: %w", rv, cv, err)
			}
			jobs = append(jobs, sweepJob{row: ri, col: ci, params: params})
		}
	}

	result.Cells = make([][]domain.SweepCell, len(rows))
	for i := range result.Cells {
		result.Cells[i] = make([]domain.SweepCell, len(cols))
	}

	queue := make(chan sweepJob)
	var wg sync.WaitGroup
	for w := 0; w < min(s.workers, len(jobs)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				sim := simulate(job.params)
				cell := domain.SweepCell{
					RowValue:          rows[job.row],
					FinalBuyNetWorth:  sim.FinalBuyNetWorth,
					FinalRentNetWorth: sim.FinalRentNetWorth,
					Difference:        sim.FinalBuyNetWorth - sim.FinalRentNetWorth,
					Verdict:           sim.Verdict,
					CrossoverYear:     sim.CrossoverYear,
				}
				if input.Cols != nil {
					cell.ColValue = cols[job.col]
				}
				result.Cells[job.row][job.col] = cell
			}
		}()
	}
	for _, job := range jobs {
		queue <- job
	}
	close(queue)
	wg.Wait()

	for _, row := range result.Cells {
		for _, cell := range row {
			switch cell.Verdict {
			case domain.VerdictBuying:
				result.BuyWins++
			case domain.VerdictRenting:
				result.RentWins++
			default:
				result.Ties++
			}
		}
	}

	return result, nil
}
