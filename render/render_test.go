package render

import (
	"strings"
	"testing"

	"insight-copilot/fixtures"
	"insight-copilot/matcher"
)

func TestRenderNarrativeSections(t *testing.T) {
	resolved := matcher.ResolvedAnswer{
		Query: "What happened with freight?",
		Content: fixtures.AnswerContent{
			Narrative: &fixtures.Narrative{
				What:           "Freight costs **rose** sharply.",
				Recommendation: "Audit the invoices.",
			},
		},
	}

	model := Render(resolved)

	if model.Consolidated != nil {
		t.Fatal("narrative answer produced a consolidated view")
	}
	if len(model.Sections) != 2 {
		t.Fatalf("sections = %d, want 2 (empty Why skipped)", len(model.Sections))
	}
	if model.Sections[0].Heading != headingWhat || model.Sections[1].Heading != headingRecommendation {
		t.Errorf("headings = %q, %q", model.Sections[0].Heading, model.Sections[1].Heading)
	}
	if !strings.Contains(model.Sections[0].HTML, "<strong>rose</strong>") {
		t.Errorf("markdown not rendered: %q", model.Sections[0].HTML)
	}
}

func TestRenderConsolidatedMarkers(t *testing.T) {
	refs := []fixtures.Citation{
		{Document: "freight-analysis-q3-2024.pdf", Excerpt: "first"},
		{Document: "supplier-compliance-q3.pdf", Excerpt: "second"},
	}
	resolved := matcher.ResolvedAnswer{
		Query: "Give me the risk summary",
		Content: fixtures.AnswerContent{
			Consolidated: &fixtures.Consolidated{Answer: "Costs rose¹ and compliance slipped². Benchmarks diverge⁹."},
			References:   refs,
		},
	}

	model := Render(resolved)

	if model.Consolidated == nil {
		t.Fatal("consolidated view missing")
	}
	markers := model.Consolidated.Markers
	if len(markers) != 2 {
		t.Fatalf("markers = %d, want 2 (glyph 9 has no reference)", len(markers))
	}
	if markers[0].Number != 1 || markers[1].Number != 2 {
		t.Errorf("marker numbers = %d, %d", markers[0].Number, markers[1].Number)
	}
	if markers[0].Citation.Document != "freight-analysis-q3-2024.pdf" {
		t.Errorf("marker 1 bound to %q", markers[0].Citation.Document)
	}
	if markers[1].Citation.Excerpt != "second" {
		t.Errorf("marker 2 bound to excerpt %q", markers[1].Citation.Excerpt)
	}
	// The unbound glyph stays in the text.
	if !strings.Contains(model.Consolidated.Text, "diverge⁹") {
		t.Errorf("unbound glyph stripped from text: %q", model.Consolidated.Text)
	}
}

func TestNumberCitations(t *testing.T) {
	refs := NumberCitations([]fixtures.Citation{
		{Document: "route-performance-report.pdf", Excerpt: "a"},
		{ID: 7, Document: "x.pdf", Title: "Kept Title", Excerpt: "b"},
		{Document: "demand_forecast_accuracy.pdf", Excerpt: "c"},
	})

	if refs[0].ID != 1 || refs[1].ID != 7 || refs[2].ID != 3 {
		t.Errorf("ids = %d, %d, %d, want 1, 7, 3", refs[0].ID, refs[1].ID, refs[2].ID)
	}
	if refs[0].Title != "Route Performance Report" {
		t.Errorf("title = %q, want humanized document key", refs[0].Title)
	}
	if refs[1].Title != "Kept Title" {
		t.Errorf("explicit title overwritten: %q", refs[1].Title)
	}
	if refs[2].Title != "Demand Forecast Accuracy" {
		t.Errorf("underscore key humanized to %q", refs[2].Title)
	}
}

func TestRenderSourceRowsCarryBothSignals(t *testing.T) {
	resolved := matcher.ResolvedAnswer{
		Content: fixtures.AnswerContent{
			Narrative: &fixtures.Narrative{What: "x"},
			References: []fixtures.Citation{
				{Document: "freight-analysis-q3-2024.pdf", Excerpt: "detention charges doubled"},
			},
		},
	}

	model := Render(resolved)

	if len(model.Sources) != 1 {
		t.Fatalf("sources = %d, want 1", len(model.Sources))
	}
	row := model.Sources[0]
	if row.DocumentKey != "freight-analysis-q3-2024.pdf" {
		t.Errorf("document key = %q", row.DocumentKey)
	}
	if row.Highlight != "detention charges doubled" {
		t.Errorf("highlight = %q", row.Highlight)
	}
}

func TestNormalizeCharts(t *testing.T) {
	charts := normalizeCharts([]fixtures.ChartSpec{
		{
			Type:  fixtures.ChartBar,
			Title: "Cost by Region",
			Config: []fixtures.SeriesConfig{
				{Key: "west"},
				{Key: "east", Label: "East Coast", Color: "hsl(10, 10%, 10%)"},
				{Key: "central"},
			},
		},
	})

	cfg := charts[0].Config
	if cfg[0].Label != "west" {
		t.Errorf("label defaulted to %q, want the key", cfg[0].Label)
	}
	if cfg[0].Color != chartPalette[0] || cfg[2].Color != chartPalette[2] {
		t.Errorf("palette colors = %q, %q, want slots 0 and 2", cfg[0].Color, cfg[2].Color)
	}
	if cfg[1].Color != "hsl(10, 10%, 10%)" {
		t.Errorf("explicit color overwritten: %q", cfg[1].Color)
	}
	if charts[0].ValueFormat != fixtures.FormatNumber {
		t.Errorf("value format = %q, want the number default", charts[0].ValueFormat)
	}
}
