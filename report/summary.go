// Package report renders simulation results for people: a text summary,
// a year-by-year table and a PDF with the net worth chart.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/Krishna-debug223/Rent-vs-Buy/domain"
)

// notANumber stands in for values decimal cannot represent.
const notANumber = "n/a"

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FormatMoney renders v as $1,234.56, rounding half away from zero to cents.
// NaN and infinities render as "n/a".
func FormatMoney(v float64) string {
	if !finite(v) {
		return notANumber
	}
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")
	return sign + "$" + groupThousands(whole) + "." + cents
}

// FormatCompact renders axis labels such as $1.2M or $350k.
func FormatCompact(v float64) string {
	if !finite(v) {
		return notANumber
	}
	d := decimal.NewFromFloat(v)
	abs := d.Abs()
	switch {
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000_000)):
		return "$" + d.Div(decimal.NewFromInt(1_000_000)).StringFixed(1) + "M"
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000)):
		return "$" + d.Div(decimal.NewFromInt(1_000)).StringFixed(0) + "k"
	default:
		return "$" + d.StringFixed(0)
	}
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// VerdictMessage is the one-line recommendation shown under the summary.
func VerdictMessage(v domain.Verdict) string {
	switch v {
	case domain.VerdictBuying:
		return "Buying appears to result in a higher net worth over time."
	case domain.VerdictRenting:
		return "Renting and investing the difference may be more profitable."
	default:
		return "Renting and buying result in similar financial outcomes."
	}
}

// Summary is the final comparison as plain text.
func Summary(params domain.SimulationParameters, result domain.SimulationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "After %d years:\n", params.TermYears)
	fmt.Fprintf(&b, "Buying Net Worth: %s\n", FormatMoney(result.FinalBuyNetWorth))
	fmt.Fprintf(&b, "Renting Net Worth: %s\n", FormatMoney(result.FinalRentNetWorth))
	fmt.Fprintf(&b, "Monthly mortgage payment: %s\n", FormatMoney(result.MonthlyPayment))
	if result.CrossoverYear > 0 {
		fmt.Fprintf(&b, "Buying leads from year %d.\n", result.CrossoverYear)
	}
	b.WriteString(VerdictMessage(result.Verdict))
	b.WriteString("\n")
	return b.String()
}

// WriteTable prints one row per simulated year.
func WriteTable(w io.Writer, result domain.SimulationResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tHome value\tEquity\tRent/mo\tInvestable\tBuy net worth\tRent net worth\t")
	for _, y := range result.Years {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			y.Year,
			FormatMoney(y.HomeValue),
			FormatMoney(y.Equity),
			FormatMoney(y.RentLevel),
			FormatMoney(y.Investable),
			FormatMoney(y.BuyNetWorth),
			FormatMoney(y.RentNetWorth),
		)
	}
	return tw.Flush()
}

// WriteSweep prints a sweep as a grid of buy-minus-rent differences.
func WriteSweep(w io.Writer, result domain.SweepResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	header := result.RowField
	if result.ColField != "" {
		header += " \\ " + result.ColField
	}
	fmt.Fprint(tw, header+"\t")
	if len(result.ColValues) == 0 {
		fmt.Fprint(tw, "buy - rent\tverdict\t")
	}
	for _, c := range result.ColValues {
		fmt.Fprintf(tw, "%v\t", c)
	}
	fmt.Fprintln(tw)

	for i, row := range result.Cells {
		fmt.Fprintf(tw, "%v\t", result.RowValues[i])
		for _, cell := range row {
			fmt.Fprintf(tw, "%s\t", FormatCompact(cell.Difference))
		}
		if len(result.ColValues) == 0 && len(row) > 0 {
			fmt.Fprintf(tw, "%s\t", row[0].Verdict)
		}
		fmt.Fprintln(tw)
	}

	fmt.Fprintf(tw, "\nbuying higher: %d, renting higher: %d, equal: %d\n",
		result.BuyWins, result.RentWins, result.Ties)
	return tw.Flush()
}
