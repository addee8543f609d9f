// Package reports analyzes pasted lab-report text by comparing numeric
// values against standard reference ranges. Informational only; it does
// not interpret results medically.
package reports

import (
	"regexp"
	"strconv"
	"strings"
)

// Flag classifies a measured value against its reference range.
type Flag string

const (
	FlagLow    Flag = "LOW"
	FlagNormal Flag = "NORMAL"
	FlagHigh   Flag = "HIGH"
)

// ReferenceRange is one known lab parameter with its normal bounds.
type ReferenceRange struct {
	Name string
	Min  float64
	Max  float64
	Unit string
}

// Result is one recognized measurement from the report.
type Result struct {
	Name  string
	Value float64
	Flag  Flag
	Range ReferenceRange
}

// Report is the outcome of an analysis: recognized results plus the lines
// that could not be interpreted.
type Report struct {
	Results []Result
	Skipped []string
}

// Abnormal returns the results flagged LOW or HIGH.
func (r *Report) Abnormal() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Flag != FlagNormal {
			out = append(out, res)
		}
	}
	return out
}

var referenceRanges = []ReferenceRange{
	{Name: "Hemoglobin", Min: 12.0, Max: 17.5, Unit: "g/dL"},
	{Name: "WBC", Min: 4.0, Max: 11.0, Unit: "10^3/uL"},
	{Name: "Platelets", Min: 150, Max: 450, Unit: "10^3/uL"},
	{Name: "Glucose", Min: 70, Max: 140, Unit: "mg/dL"},
	{Name: "Cholesterol", Min: 0, Max: 200, Unit: "mg/dL"},
	{Name: "HDL", Min: 40, Max: 100, Unit: "mg/dL"},
	{Name: "LDL", Min: 0, Max: 130, Unit: "mg/dL"},
	{Name: "Triglycerides", Min: 0, Max: 150, Unit: "mg/dL"},
	{Name: "Creatinine", Min: 0.6, Max: 1.3, Unit: "mg/dL"},
	{Name: "TSH", Min: 0.4, Max: 4.0, Unit: "mIU/L"},
}

// lineRe captures "<name> <separator> <number>" with ':', '=' or '-' as the
// separator.
var lineRe = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z ()/^0-9]*?)\s*[:=-]\s*([0-9]+(?:\.[0-9]+)?)`)

// Parse scans text line by line, extracts "name: value" measurements, and
// classifies each recognized parameter against its reference range. Lines
// that are non-empty but unrecognized are collected in Skipped.
func Parse(text string) *Report {
	report := &Report{}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		m := lineRe.FindStringSubmatch(trimmed)
		if m == nil {
			report.Skipped = append(report.Skipped, trimmed)
			continue
		}

		name := strings.TrimSpace(m[1])
		value, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			report.Skipped = append(report.Skipped, trimmed)
			continue
		}

		rr, ok := lookupRange(name)
		if !ok {
			report.Skipped = append(report.Skipped, trimmed)
			continue
		}

		report.Results = append(report.Results, Result{
			Name:  rr.Name,
			Value: value,
			Flag:  classify(value, rr),
			Range: rr,
		})
	}

	return report
}

func lookupRange(name string) (ReferenceRange, bool) {
	lower := strings.ToLower(name)
	for _, rr := range referenceRanges {
		if strings.Contains(lower, strings.ToLower(rr.Name)) {
			return rr, true
		}
	}
	return ReferenceRange{}, false
}

func classify(value float64, rr ReferenceRange) Flag {
	switch {
	case value < rr.Min:
		return FlagLow
	case value > rr.Max:
		return FlagHigh
	default:
		return FlagNormal
	}
}
