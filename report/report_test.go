package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/Krishna-debug223/Rent-vs-Buy/domain"
)

func sampleResult() (domain.SimulationParameters, domain.SimulationResult) {
	params := domain.SimulationParameters{
		HomePrice: 668000, MortgageRatePct: 5.5, DownPaymentPct: 20, TermYears: 3,
		HomeAppreciationPct: 2.5, MonthlyRent: 2100, RentInflationPct: 4,
		InvestmentReturnPct: 6, PropertyTaxPct: 0.8, MaintenancePct: 1.5,
	}
	result := domain.SimulationResult{
		BuyNetWorth:       []float64{838963.07, 870000, 905000.5},
		RentNetWorth:      []float64{151819.17, 190000, 230000},
		FinalBuyNetWorth:  905000.5,
		FinalRentNetWorth: 230000,
		MonthlyPayment:    3034.2644,
		DownPayment:       133600,
		Verdict:           domain.VerdictBuying,
		CrossoverYear:     1,
	}
	for i := range result.BuyNetWorth {
		result.Years = append(result.Years, domain.YearSnapshot{
			Year:         i + 1,
			BuyNetWorth:  result.BuyNetWorth[i],
			RentNetWorth: result.RentNetWorth[i],
		})
	}
	return params, result
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{999.999, "$1,000.00"},
		{1935726.1754925286, "$1,935,726.18"},
		{1004031.3809577905, "$1,004,031.38"},
		{123456, "$123,456.00"},
		{-2500.5, "-$2,500.50"},
		{-0.001, "$0.00"},
		{math.Inf(1), "n/a"},
		{math.Inf(-1), "n/a"},
		{math.NaN(), "n/a"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1_500_000, "$1.5M"},
		{350_000, "$350k"},
		{-20_000, "$-20k"},
		{900, "$900"},
		{math.NaN(), "n/a"},
	}
	for _, tt := range tests {
		if got := FormatCompact(tt.in); got != tt.want {
			t.Errorf("FormatCompact(%v): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestVerdictMessage(t *testing.T) {
	if !strings.HasPrefix(VerdictMessage(domain.VerdictBuying), "Buying") {
		t.Errorf("unexpected buying message")
	}
	if !strings.HasPrefix(VerdictMessage(domain.VerdictRenting), "Renting and investing") {
		t.Errorf("unexpected renting message")
	}
	if !strings.Contains(VerdictMessage(domain.VerdictEqual), "similar") {
		t.Errorf("unexpected equal message")
	}
}

func TestSummary(t *testing.T) {
	params, result := sampleResult()
	out := Summary(params, result)

	for _, want := range []string{
		"After 3 years:",
		"Buying Net Worth: $905,000.50",
		"Renting Net Worth: $230,000.00",
		"Buying leads from year 1.",
		VerdictMessage(domain.VerdictBuying),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary is missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTable(t *testing.T) {
	_, result := sampleResult()

	var buf bytes.Buffer
	if err := WriteTable(&buf, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if !strings.Contains(lines[3], "$905,000.50") {
		t.Errorf("last row should hold the final buy value: %q", lines[3])
	}
}

func TestWriteSweep(t *testing.T) {
	result := domain.SweepResult{
		RowField:  "investment_return",
		RowValues: []domain.Percent{4, 8},
		Cells: [][]domain.SweepCell{
			{{RowValue: 4, Difference: 500_000, Verdict: domain.VerdictBuying}},
			{{RowValue: 8, Difference: -120_000, Verdict: domain.VerdictRenting}},
		},
		BuyWins:  1,
		RentWins: 1,
	}

	var buf bytes.Buffer
	if err := WriteSweep(&buf, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"investment_return", "4%", "$500k", "$-120k", "renting higher", "buying higher: 1, renting higher: 1, equal: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("sweep output is missing %q:\n%s", want, out)
		}
	}
}

func TestGeneratePDF(t *testing.T) {
	params, result := sampleResult()

	pdf, err := GeneratePDF(params, result)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Errorf("output is not a PDF")
	}
}

func TestGeneratePDF_SingleYear(t *testing.T) {
	params, result := sampleResult()
	params.TermYears = 1
	result.BuyNetWorth = result.BuyNetWorth[:1]
	result.RentNetWorth = result.RentNetWorth[:1]

	if _, err := GeneratePDF(params, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGeneratePDF_EmptyResult(t *testing.T) {
	params, _ := sampleResult()
	if _, err := GeneratePDF(params, domain.SimulationResult{}); err == nil {
		t.Errorf("expected an error for an empty result")
	}
}

func TestGeneratePDF_NonFiniteSeries(t *testing.T) {
	params, result := sampleResult()
	result.BuyNetWorth[1] = math.Inf(1)

	if _, err := GeneratePDF(params, result); err == nil {
		t.Errorf("expected an error for an infinite net worth")
	}

	params, result = sampleResult()
	result.RentNetWorth[2] = math.NaN()
	if _, err := GeneratePDF(params, result); err == nil {
		t.Errorf("expected an error for a NaN net worth")
	}
}

func TestWriteTable_NonFiniteValues(t *testing.T) {
	_, result := sampleResult()
	result.Years[0].Equity = math.Inf(1)

	var buf bytes.Buffer
	if err := WriteTable(&buf, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "n/a") {
		t.Errorf("expected n/a in the table, got:\n%s", buf.String())
	}
}

func TestNiceStep(t *testing.T) {
	tests := []struct{ span, want float64 }{
		{1_800_000, 500_000},
		{100, 20},
		{0, 1},
	}
	for _, tt := range tests {
		if got := niceStep(tt.span); got != tt.want {
			t.Errorf("niceStep(%v): expected %v, got %v", tt.span, tt.want, got)
		}
	}
}
