// Package symptoms matches free-text symptom descriptions against a static
// knowledge table and suggests possible conditions. The table is a small
// curated set; it is informational only and not a diagnostic tool.
package symptoms

import (
	"sort"
	"strings"
)

// Condition is one row of the knowledge table: a condition name, the
// symptom keywords associated with it, and general advice.
type Condition struct {
	Name     string
	Keywords []string
	Advice   string
}

// Match is one suggested condition with the keywords that matched.
type Match struct {
	Condition string
	Matched   []string
	Advice    string
}

var knowledgeTable = []Condition{
	{
		Name:     "Common Cold",
		Keywords: []string{"runny nose", "sneezing", "sore throat", "congestion", "cough"},
		Advice:   "Rest, stay hydrated, and use over-the-counter remedies for relief.",
	},
	{
		Name:     "Influenza (Flu)",
		Keywords: []string{"fever", "chills", "body ache", "fatigue", "headache", "cough"},
		Advice:   "Rest, drink fluids, and see a doctor if symptoms worsen or persist.",
	},
	{
		Name:     "Migraine",
		Keywords: []string{"headache", "nausea", "light sensitivity", "aura", "throbbing"},
		Advice:   "Rest in a dark, quiet room; consult a doctor about recurring attacks.",
	},
	{
		Name:     "Food Poisoning",
		Keywords: []string{"nausea", "vomiting", "diarrhea", "stomach pain", "cramps"},
		Advice:   "Stay hydrated; seek medical care if symptoms are severe or prolonged.",
	},
	{
		Name:     "Allergic Rhinitis",
		Keywords: []string{"sneezing", "itchy eyes", "runny nose", "congestion", "watery eyes"},
		Advice:   "Avoid known allergens; an antihistamine may help, ask a pharmacist.",
	},
	{
		Name:     "Gastritis",
		Keywords: []string{"stomach pain", "bloating", "indigestion", "heartburn", "nausea"},
		Advice:   "Avoid irritant foods and alcohol; see a doctor if pain persists.",
	},
	{
		Name:     "Anemia",
		Keywords: []string{"fatigue", "pale skin", "shortness of breath", "dizziness", "weakness"},
		Advice:   "A blood test can confirm anemia; consult a doctor before supplements.",
	},
	{
		Name:     "Hypertension",
		Keywords: []string{"headache", "dizziness", "blurred vision", "chest pain", "nosebleed"},
		Advice:   "Have your blood pressure measured; chest pain needs urgent care.",
	},
}

// Check matches the free-text description against the knowledge table,
// case-insensitively, and returns suggestions ordered by the number of
// matched keywords (stable on ties). An empty result means no condition in
// the table matched.
func Check(description string) []Match {
	text := strings.ToLower(description)

	var matches []Match
	for _, c := range knowledgeTable {
		var hit []string
		for _, kw := range c.Keywords {
			if strings.Contains(text, kw) {
				hit = append(hit, kw)
			}
		}
		if len(hit) > 0 {
			matches = append(matches, Match{Condition: c.Name, Matched: hit, Advice: c.Advice})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return len(matches[i].Matched) > len(matches[j].Matched)
	})
	return matches
}
