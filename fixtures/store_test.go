package fixtures

import (
	"strings"
	"testing"
)

func TestDeriveValueFormat(t *testing.T) {
	tests := []struct {
		title string
		want  ValueFormat
	}{
		{"Transportation Cost by Region", FormatCurrency},
		{"Identified Overcharges", FormatCurrency},
		{"Financial Impact Breakdown", FormatCurrency},
		{"Defect Rate by Supplier", FormatPercent},
		{"On-Time % Trend", FormatPercent},
		{"Shipment Volume", FormatNumber},
	}
	for _, tt := range tests {
		if got := deriveValueFormat(tt.title); got != tt.want {
			t.Errorf("deriveValueFormat(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestNewStoreBackfillsValueFormat(t *testing.T) {
	qas := []QARecord{{
		ID:    "qa-test",
		Query: "test?",
		Content: AnswerContent{
			Narrative: &Narrative{What: "x"},
			Charts: []ChartSpec{
				{Type: ChartBar, Title: "Cost by Lane"},
				{Type: ChartLine, Title: "Volume Trend", ValueFormat: FormatPercent},
			},
		},
	}}

	store := NewStore(qas, nil, nil)

	charts := store.QARecords()[0].Content.Charts
	if charts[0].ValueFormat != FormatCurrency {
		t.Errorf("derived format = %q, want %q", charts[0].ValueFormat, FormatCurrency)
	}
	if charts[1].ValueFormat != FormatPercent {
		t.Errorf("explicit format overwritten: %q", charts[1].ValueFormat)
	}
}

func TestDefaultStoreIntegrity(t *testing.T) {
	store := Default()

	if len(store.QARecords()) == 0 {
		t.Fatal("no canned answers")
	}
	for _, qa := range store.QARecords() {
		if qa.Content.Narrative == nil && qa.Content.Consolidated == nil {
			t.Errorf("%s has no answer body", qa.ID)
		}
		for _, chart := range qa.Content.Charts {
			if chart.ValueFormat == "" {
				t.Errorf("%s chart %q has no value format", qa.ID, chart.Title)
			}
		}
	}

	for _, doc := range store.Documents() {
		if doc.Pages <= 0 || strings.TrimSpace(doc.Content) == "" {
			t.Errorf("document %s is incomplete", doc.ID)
		}
	}

	if _, ok := store.Document("freight-analysis-q3-2024.pdf"); !ok {
		t.Error("freight analysis document missing")
	}
	if len(store.AdditionalQuestions()) < 10 {
		t.Error("additional question pool is too small")
	}
}
