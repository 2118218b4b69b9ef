package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Krishna-debug223/Rent-vs-Buy/config"
	"github.com/Krishna-debug223/Rent-vs-Buy/domain"
	"github.com/Krishna-debug223/Rent-vs-Buy/report"
	"github.com/Krishna-debug223/Rent-vs-Buy/repository"
	"github.com/Krishna-debug223/Rent-vs-Buy/service"
)

// paramFlags are the simulation inputs shared by simulate and sweep.
// Flags given on the command line win over the scenario file.
type paramFlags struct {
	scenario string
	values   domain.SimulationParameters
	rates    map[string]*float64
}

func (f *paramFlags) register(cmd *cobra.Command) {
	d := config.DefaultScenario()
	fs := cmd.Flags()

	fs.StringVarP(&f.scenario, "scenario", "s", "", "YAML scenario `file` (create one with rentvsbuy init)")
	fs.Float64Var(&f.values.HomePrice, "home-price", d.HomePrice, "home price ($)")
	fs.IntVar(&f.values.TermYears, "years", d.TermYears, "mortgage term and horizon (years)")
	fs.Float64Var(&f.values.MonthlyRent, "rent", d.MonthlyRent, "monthly rent ($)")

	f.rates = map[string]*float64{}
	rate := func(name string, def domain.Percent, usage string) {
		v := new(float64)
		fs.Float64Var(v, name, float64(def), usage)
		f.rates[name] = v
	}
	rate("mortgage-rate", d.MortgageRatePct, "mortgage rate (%/yr)")
	rate("down-payment", d.DownPaymentPct, "down payment (% of price)")
	rate("appreciation", d.HomeAppreciationPct, "home appreciation (%/yr)")
	rate("rent-inflation", d.RentInflationPct, "rent inflation (%/yr)")
	rate("investment-return", d.InvestmentReturnPct, "investment return (%/yr)")
	rate("property-tax", d.PropertyTaxPct, "property tax (% of value)")
	rate("maintenance", d.MaintenancePct, "maintenance (% of value)")
}

func (f *paramFlags) resolve(cmd *cobra.Command) (domain.SimulationParameters, error) {
	params := config.DefaultScenario()
	if f.scenario != "" {
		var err error
		if params, err = config.LoadScenario(f.scenario); err != nil {
			return params, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("home-price") {
		params.HomePrice = f.values.HomePrice
	}
	if fs.Changed("years") {
		params.TermYears = f.values.TermYears
	}
	if fs.Changed("rent") {
		params.MonthlyRent = f.values.MonthlyRent
	}

	targets := map[string]*domain.Percent{
		"mortgage-rate":     &params.MortgageRatePct,
		"down-payment":      &params.DownPaymentPct,
		"appreciation":      &params.HomeAppreciationPct,
		"rent-inflation":    &params.RentInflationPct,
		"investment-return": &params.InvestmentReturnPct,
		"property-tax":      &params.PropertyTaxPct,
		"maintenance":       &params.MaintenancePct,
	}
	for name, dst := range targets {
		if fs.Changed(name) {
			*dst = domain.Percent(*f.rates[name])
		}
	}

	return params, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func simulateCmd() *cobra.Command {
	var (
		pf      paramFlags
		details bool
		asJSON  bool
		pdfPath string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Project buy and rent net worth for one scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := pf.resolve(cmd)
			if err != nil {
				return err
			}

			result, err := service.Simulate(params)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(result)
			}

			if details {
				if err := report.WriteTable(os.Stdout, result); err != nil {
					return err
				}
				fmt.Println()
			}
			fmt.Print(report.Summary(params, result))

			if pdfPath != "" {
				pdf, err := report.GeneratePDF(params, result)
				if err != nil {
					return err
				}
				if err := os.WriteFile(pdfPath, pdf, 0644); err != nil {
					return err
				}
				fmt.Printf("PDF report written to %s\n", pdfPath)
			}
			return nil
		},
	}

	pf.register(cmd)
	cmd.Flags().BoolVar(&details, "details", false, "print the year-by-year table")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also write a PDF report with the chart to this path")
	return cmd
}

const sweepExample = `  rentvsbuy sweep --rows investment_return --row-min 3 --row-max 9 --row-step 1 \
    --cols home_appreciation --col-min 0 --col-max 5 --col-step 0.5`

func sweepCmd() *cobra.Command {
	var (
		pf      paramFlags
		rows    domain.SweepAxis
		cols    domain.SweepAxis
		rowMin  float64
		rowMax  float64
		rowStep float64
		colMin  float64
		colMax  float64
		colStep float64
		workers int
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:     "sweep",
		Short:   "Run a grid of scenarios over one or two rates",
		Example: sweepExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := pf.resolve(cmd)
			if err != nil {
				return err
			}

			input := domain.SweepInput{Base: params}
			rows.Min, rows.Max, rows.Step = domain.Percent(rowMin), domain.Percent(rowMax), domain.Percent(rowStep)
			input.Rows = rows
			if cols.Field != "" {
				cols.Min, cols.Max, cols.Step = domain.Percent(colMin), domain.Percent(colMax), domain.Percent(colStep)
				input.Cols = &cols
			}

			result, err := service.NewSweepService(workers).Sweep(input)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(result)
			}
			return report.WriteSweep(os.Stdout, result)
		},
	}

	pf.register(cmd)
	fs := cmd.Flags()
	fs.StringVar(&rows.Field, "rows", service.FieldInvestmentReturn, "rate varied down the rows")
	fs.Float64Var(&rowMin, "row-min", 2, "first row value (%)")
	fs.Float64Var(&rowMax, "row-max", 10, "last row value (%)")
	fs.Float64Var(&rowStep, "row-step", 1, "row increment (%)")
	fs.StringVar(&cols.Field, "cols", "", "rate varied across the columns (optional)")
	fs.Float64Var(&colMin, "col-min", 0, "first column value (%)")
	fs.Float64Var(&colMax, "col-max", 5, "last column value (%)")
	fs.Float64Var(&colStep, "col-step", 1, "column increment (%)")
	fs.IntVar(&workers, "workers", 4, "simulations run in parallel")
	fs.BoolVar(&asJSON, "json", false, "print the grid as JSON")
	return cmd
}

func loanCmd() *cobra.Command {
	var (
		amount float64
		rate   float64
		months int
	)

	cmd := &cobra.Command{
		Use:   "loan",
		Short: "Calculate the monthly payment and total interest of a loan",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			svc := service.NewLoanService(repository.NewMemoryCache(0))
			result, err := svc.CalculateLoan(domain.LoanInput{
				Amount:       amount,
				InterestRate: domain.Percent(rate),
				TermMonths:   months,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Monthly payment: %s\n", report.FormatMoney(result.MonthlyPayment))
			fmt.Printf("Total payment:   %s\n", report.FormatMoney(result.TotalPayment))
			fmt.Printf("Total interest:  %s\n", report.FormatMoney(result.TotalInterest))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 534400, "loan principal ($)")
	cmd.Flags().Float64Var(&rate, "rate", 5.5, "annual interest rate (%)")
	cmd.Flags().IntVar(&months, "months", 360, "term (months)")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [scenario.yaml]",
		Short: "Write the default scenario to a YAML file for editing",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err == nil {
				return fmt.Errorf("%s already exists", args[0])
			}
			if err := config.SaveScenario(config.DefaultScenario(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Scenario written to %s\n", args[0])
			return nil
		},
	}
}
