package report

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Krishna-debug223/Rent-vs-Buy/domain"
)

const (
	pageWidth    = 297.0 // A4 landscape
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	contentWidth = pageWidth - marginLeft - marginRight

	chartHeight = 110.0
	axisGutter  = 22.0 // room for y labels
)

type rgb struct{ r, g, b int }

var (
	navy      = rgb{0, 51, 102}
	buyColor  = rgb{31, 119, 180}
	rentColor = rgb{255, 127, 14}
	gridGray  = rgb{220, 220, 220}
)

// PDFReport lays out one simulation on a single landscape page.
type PDFReport struct {
	pdf    *fpdf.Fpdf
	params domain.SimulationParameters
	result domain.SimulationResult
}

// GeneratePDF renders the parameters, the net worth chart and the summary.
func GeneratePDF(params domain.SimulationParameters, result domain.SimulationResult) ([]byte, error) {
	if len(result.BuyNetWorth) == 0 || len(result.BuyNetWorth) != len(result.RentNetWorth) {
		return nil, fmt.Errorf("report: result has %d buy and %d rent points",
			len(result.BuyNetWorth), len(result.RentNetWorth))
	}
	for i := range result.BuyNetWorth {
		if !finite(result.BuyNetWorth[i]) || !finite(result.RentNetWorth[i]) {
			return nil, fmt.Errorf("report: year %d net worth is not a finite number", i+1)
		}
	}

	r := &PDFReport{
		pdf:    fpdf.New("L", "mm", "A4", ""),
		params: params,
		result: result,
	}
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)
	r.pdf.SetTitle("Rent vs. Buy: Net Worth Projection", false)

	r.pdf.AddPage()
	r.addHeader()
	r.addChart()
	r.addSummary()

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *PDFReport) setText(c rgb) { r.pdf.SetTextColor(c.r, c.g, c.b) }
func (r *PDFReport) setDraw(c rgb) { r.pdf.SetDrawColor(c.r, c.g, c.b) }

func (r *PDFReport) addHeader() {
	r.pdf.SetFont("Arial", "B", 18)
	r.setText(navy)
	r.pdf.CellFormat(contentWidth, 10, "Rent vs. Buy: Net Worth Projection", "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.SetTextColor(110, 110, 110)
	r.pdf.CellFormat(contentWidth, 5, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "L", false, 0, "")
	r.pdf.Ln(2)

	p := r.params
	cells := [][2]string{
		{"Home price", FormatMoney(p.HomePrice)},
		{"Down payment", fmt.Sprintf("%v (%s)", p.DownPaymentPct, FormatMoney(r.result.DownPayment))},
		{"Mortgage", fmt.Sprintf("%v over %d years", p.MortgageRatePct, p.TermYears)},
		{"Monthly payment", FormatMoney(r.result.MonthlyPayment)},
		{"Appreciation", fmt.Sprintf("%v / yr", p.HomeAppreciationPct)},
		{"Rent", fmt.Sprintf("%s / mo, +%v / yr", FormatMoney(p.MonthlyRent), p.RentInflationPct)},
		{"Investment return", fmt.Sprintf("%v / yr", p.InvestmentReturnPct)},
		{"Tax + maintenance", fmt.Sprintf("%v + %v of value", p.PropertyTaxPct, p.MaintenancePct)},
	}

	colW := contentWidth / 4
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	// four label/value pairs per row
	for i, c := range cells {
		ln := 0
		if i%4 == 3 {
			ln = 1
		}
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetTextColor(50, 50, 50)
		r.pdf.CellFormat(colW*0.4, 6, c[0], "1", 0, "L", true, 0, "")
		r.pdf.SetFont("Arial", "", 9)
		r.pdf.CellFormat(colW*0.6, 6, c[1], "1", ln, "L", false, 0, "")
	}
	r.pdf.Ln(4)
}

// niceStep picks a 1/2/5 x 10^k step giving about five gridlines over span.
func niceStep(span float64) float64 {
	if span <= 0 {
		return 1
	}
	raw := span / 5
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if m*mag >= raw {
			return m * mag
		}
	}
	return 10 * mag
}

func (r *PDFReport) addChart() {
	buy, rent := r.result.BuyNetWorth, r.result.RentNetWorth
	years := len(buy)

	lo, hi := math.Min(0, buy[0]), buy[0]
	for i := range buy {
		lo = math.Min(lo, math.Min(buy[i], rent[i]))
		hi = math.Max(hi, math.Max(buy[i], rent[i]))
	}
	step := niceStep(hi - lo)
	lo = math.Floor(lo/step) * step
	hi = math.Ceil(hi/step) * step
	if hi == lo {
		hi = lo + step
	}

	x0 := marginLeft + axisGutter
	w := contentWidth - axisGutter
	y0 := r.pdf.GetY() + 4
	h := chartHeight

	px := func(year int) float64 {
		if years == 1 {
			return x0 + w/2
		}
		return x0 + w*float64(year-1)/float64(years-1)
	}
	py := func(v float64) float64 { return y0 + h - h*(v-lo)/(hi-lo) }

	// gridlines and y labels
	r.pdf.SetFont("Arial", "", 7)
	r.pdf.SetTextColor(90, 90, 90)
	r.pdf.SetLineWidth(0.1)
	r.setDraw(gridGray)
	for v := lo; v <= hi+step/2; v += step {
		y := py(v)
		r.pdf.Line(x0, y, x0+w, y)
		r.pdf.Text(marginLeft, y+1, FormatCompact(v))
	}

	// x labels, at most about ten
	every := int(math.Ceil(float64(years) / 10))
	for year := 1; year <= years; year++ {
		if year != 1 && year%every != 0 && year != years {
			continue
		}
		x := px(year)
		r.pdf.Line(x, y0, x, y0+h)
		r.pdf.Text(x-1.5, y0+h+4, fmt.Sprintf("%d", year))
	}

	r.pdf.SetLineWidth(0.3)
	r.pdf.SetDrawColor(80, 80, 80)
	r.pdf.Rect(x0, y0, w, h, "D")

	r.plotSeries(buy, buyColor, px, py)
	r.plotSeries(rent, rentColor, px, py)

	r.pdf.SetFont("Arial", "", 8)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.Text(x0+w/2-5, y0+h+9, "Years")

	// legend
	lx, ly := x0+4, y0+5
	for _, item := range []struct {
		label string
		c     rgb
	}{{"Buying", buyColor}, {"Renting", rentColor}} {
		r.pdf.SetLineWidth(0.8)
		r.setDraw(item.c)
		r.pdf.Line(lx, ly, lx+8, ly)
		r.pdf.Text(lx+10, ly+1, item.label)
		ly += 5
	}

	r.pdf.SetLineWidth(0.2)
	r.pdf.SetY(y0 + h + 12)
}

func (r *PDFReport) plotSeries(values []float64, c rgb, px func(int) float64, py func(float64) float64) {
	r.pdf.SetLineWidth(0.6)
	r.setDraw(c)
	if len(values) == 1 {
		r.pdf.SetFillColor(c.r, c.g, c.b)
		r.pdf.Circle(px(1), py(values[0]), 0.8, "F")
		return
	}
	for i := 1; i < len(values); i++ {
		r.pdf.Line(px(i), py(values[i-1]), px(i+1), py(values[i]))
	}
}

func (r *PDFReport) addSummary() {
	r.pdf.SetFont("Arial", "B", 12)
	r.setText(navy)
	r.pdf.CellFormat(contentWidth, 7, fmt.Sprintf("After %d years", r.params.TermYears), "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.CellFormat(contentWidth/2, 6, "Buying net worth: "+FormatMoney(r.result.FinalBuyNetWorth), "", 0, "L", false, 0, "")
	r.pdf.CellFormat(contentWidth/2, 6, "Renting net worth: "+FormatMoney(r.result.FinalRentNetWorth), "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.CellFormat(contentWidth, 7, VerdictMessage(r.result.Verdict), "", 1, "L", false, 0, "")
}
