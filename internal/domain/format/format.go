// Package format renders KPI values as display strings.
//
// All functions are pure. Grouping and decimal separators follow US English.
// Rounding works on the exact binary value of the input, with exact ties
// going away from zero: 0.5 shows as "1", while 0.015 (stored just below
// the half) shows as "0.01".
package format

import (
	"fmt"
	"math"
	"math/big"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/okian/salesboard/internal/domain/model"
)

// Decimal places per metric.
const (
	wholeDecimals = 0
	deltaDecimals = 2
)

const currencyPrefix = "$ "

// printer is safe for concurrent use; it holds no per-call state.
var printer = message.NewPrinter(language.AmericanEnglish)

// Number formats v with thousands separators and exactly decimals places.
func Number(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	r := roundHalfAway(v, decimals)
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), r)
}

// roundHalfAway rounds v to decimals places. The scaled value is computed
// exactly so the decision is never made on an already rounded product.
func roundHalfAway(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	prec := uint(64 + 4*decimals)
	scale := new(big.Float).SetPrec(prec).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))

	x := new(big.Float).SetPrec(prec).SetFloat64(v)
	x.Mul(x, scale)
	n, _ := x.Int(nil) // toward zero
	frac := new(big.Float).SetPrec(prec).Sub(x, new(big.Float).SetPrec(prec).SetInt(n))
	if frac.Abs(frac).Cmp(big.NewFloat(0.5)) >= 0 {
		if v < 0 {
			n.Sub(n, big.NewInt(1))
		} else {
			n.Add(n, big.NewInt(1))
		}
	}

	r, _ := new(big.Float).Quo(new(big.Float).SetInt(n), scale).Float64()
	return r
}

// Sales formats a sales amount, e.g. "$ 12,699".
func Sales(v float64) string { return currencyPrefix + Number(v, wholeDecimals) }

// Profit formats a profit amount the same way as Sales.
func Profit(v float64) string { return currencyPrefix + Number(v, wholeDecimals) }

// Customers formats a customer count, e.g. "1,072".
func Customers(v float64) string { return Number(v, wholeDecimals) }

// Delta formats a percent change, e.g. "13.20%".
func Delta(v float64) string { return Number(v, deltaDecimals) + "%" }

// Format dispatches on metric. An unknown metric is a programming error.
func Format(m model.Metric, v float64) string {
	switch m {
	case model.MetricSales:
		return Sales(v)
	case model.MetricProfit:
		return Profit(v)
	case model.MetricCustomers:
		return Customers(v)
	case model.MetricDelta:
		return Delta(v)
	}
	panic(fmt.Sprintf("format: unknown metric %q", string(m)))
}

// For returns the formatter bound to m, for callers that format many values.
func For(m model.Metric) func(float64) string {
	switch m {
	case model.MetricSales:
		return Sales
	case model.MetricProfit:
		return Profit
	case model.MetricCustomers:
		return Customers
	case model.MetricDelta:
		return Delta
	}
	panic(fmt.Sprintf("format: unknown metric %q", string(m)))
}

// Amount formats a whole roster amount such as sales or quota: "1,000,000".
func Amount(v int64) string { return humanize.Comma(v) }

// Percent formats a progress value as shown on KPI cards: "15.9%".
// Every significant digit is kept and trailing zeros are dropped, the way a
// plain number renders.
func Percent(v float64) string {
	return humanize.Ftoa(v) + "%"
}
