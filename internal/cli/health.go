package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/docbotdev/docbot/internal/reports"
	"github.com/docbotdev/docbot/internal/symptoms"
)

// Symptoms reads a free-text symptom description and prints possible
// conditions from the knowledge table.
func (a *App) Symptoms(ctx context.Context) error {
	text, err := GetMultiline(a.reader, "Describe your symptoms", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		printlnFn("No symptoms entered.")
		return nil
	}

	matches := symptoms.Check(text)
	if len(matches) == 0 {
		printlnFn("No matching conditions found. Consider asking DocBot directly.")
		return nil
	}

	printlnFn("Possible conditions (informational only, not a diagnosis):")
	for _, m := range matches {
		printlnFn(fmt.Sprintf("  %s (matched: %s)", m.Condition, strings.Join(m.Matched, ", ")))
		printlnFn("    " + m.Advice)
	}
	return nil
}

// Report reads pasted lab-report text, classifies recognized values
// against reference ranges, and offers an AI explanation of any flagged
// values.
func (a *App) Report(ctx context.Context) error {
	text, err := GetMultiline(a.reader, "Paste your lab report text", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		printlnFn("No report text entered.")
		return nil
	}

	report := reports.Parse(text)
	if len(report.Results) == 0 {
		printlnFn("No recognizable lab values found in the report.")
		return nil
	}

	for _, r := range report.Results {
		printlnFn(fmt.Sprintf("  %-14s %8.2f %-8s [%g-%g] %s",
			r.Name, r.Value, r.Range.Unit, r.Range.Min, r.Range.Max, r.Flag))
	}
	for _, line := range report.Skipped {
		printlnFn("  skipped: " + line)
	}

	abnormal := report.Abnormal()
	if len(abnormal) == 0 {
		printlnFn("All recognized values are within standard reference ranges.")
		return nil
	}

	var b strings.Builder
	b.WriteString("Please explain, in general terms, what these lab results outside standard reference ranges may indicate:\n")
	for _, r := range abnormal {
		fmt.Fprintf(&b, "%s: %g %s (reference %g-%g, flagged %s)\n",
			r.Name, r.Value, r.Range.Unit, r.Range.Min, r.Range.Max, r.Flag)
	}

	return a.Chat(ctx, b.String())
}
