package document

import (
	"strings"
	"testing"
	"time"

	"insight-copilot/fixtures"

	"go.uber.org/zap"
)

func testMessage() SourceMessage {
	return SourceMessage{
		Query: "How do tariffs affect our freight costs?",
		Content: fixtures.AnswerContent{
			Narrative: &fixtures.Narrative{What: "Tariff exposure rose 12% in Q3."},
			References: []fixtures.Citation{
				{Document: "knowledge-base-extract.pdf", Excerpt: "Tariff exposure rose 12% in Q3.", Page: 3},
				{Document: "knowledge-base-extract.pdf", Excerpt: "Electronics imports carry the increase.", Page: 7},
			},
		},
		AskedAt: time.Date(2024, 11, 5, 9, 30, 0, 0, time.UTC),
	}
}

func TestResolvePrefersCuratedDocument(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	svc := NewService(fixtures.Default(), logger)
	msg := testMessage()

	got := svc.Resolve("freight-analysis-q3-2024.pdf", &msg)

	want, ok := fixtures.Default().Document("freight-analysis-q3-2024.pdf")
	if !ok {
		t.Fatal("curated document missing from fixtures")
	}
	if got.Content != want.Content || got.Pages != want.Pages {
		t.Error("curated document was not returned as-is")
	}
}

func TestResolveSynthesizesUnknownKey(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	svc := NewService(fixtures.Default(), logger)
	msg := testMessage()

	got := svc.Resolve("knowledge-base-extract.pdf", &msg)

	if got.Pages != synthesizedPages {
		t.Errorf("pages = %d, want %d", got.Pages, synthesizedPages)
	}
	if got.Title != "Knowledge Base Extract" {
		t.Errorf("title = %q", got.Title)
	}
	for _, want := range []string{
		"EXECUTIVE SUMMARY",
		"DETAILED ANALYSIS",
		"STRATEGIC RECOMMENDATIONS",
		msg.Query,
		Wrap("Electronics imports carry the increase."),
	} {
		if !strings.Contains(got.Content, want) {
			t.Errorf("synthesized content missing %q", want)
		}
	}
}

func TestSynthesizeUsesFirstCitationTitle(t *testing.T) {
	msg := SourceMessage{
		Query: "What are the main freight cost anomalies this quarter?",
		Content: fixtures.AnswerContent{
			Narrative: &fixtures.Narrative{What: "Freight costs exceeded budget."},
			References: []fixtures.Citation{
				{Document: "freight-analysis-q3-2024.pdf", Title: "Quarterly Freight Cost Analysis", Excerpt: "overcharges across 23 shipments", Page: 12},
				{Document: "route-performance-report.pdf", Excerpt: "cost per mile increased"},
			},
		},
		AskedAt: time.Date(2024, 11, 5, 9, 30, 0, 0, time.UTC),
	}

	got := Synthesize("unknown-key.pdf", msg)

	if got.Title != "Quarterly Freight Cost Analysis" {
		t.Errorf("title = %q, want the first citation's title", got.Title)
	}
	if !strings.Contains(got.Content, "QUARTERLY FREIGHT COST ANALYSIS") {
		t.Error("body header does not carry the citation title")
	}
	if !strings.Contains(got.Content, "Section 1 (p. 12): Quarterly Freight Cost Analysis") {
		t.Error("paged citation section mislabeled")
	}
	// The second citation has no page, so no page label is printed.
	if strings.Contains(got.Content, "p. 0") {
		t.Error("pageless citation printed a zero page label")
	}
	if !strings.Contains(got.Content, "Section 2: Route Performance Report") {
		t.Error("pageless citation section mislabeled")
	}
}

func TestSynthesizeIsIdempotent(t *testing.T) {
	msg := testMessage()

	first := Synthesize("knowledge-base-extract.pdf", msg)
	second := Synthesize("knowledge-base-extract.pdf", msg)

	if first.Content != second.Content {
		t.Error("same message synthesized different bytes")
	}
}

func TestResolvePlaceholderWithoutActiveAnswer(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	svc := NewService(fixtures.Default(), logger)

	got := svc.Resolve("mystery-report.pdf", nil)

	if got.ID != "mystery-report.pdf" || got.Pages != 1 {
		t.Errorf("placeholder = %+v", got)
	}
	if !strings.Contains(got.Content, "not available") {
		t.Errorf("placeholder content = %q", got.Content)
	}
}

func TestHighlightLines(t *testing.T) {
	content := strings.Join([]string{
		"FREIGHT ANALYSIS",
		"[HIGHLIGHTED: detention charges doubled at Long Beach]",
		"Carrier rates held steady through October.",
		"Detention charges doubled at Long Beach during peak weeks.",
	}, "\n")

	t.Run("wrapper_and_request", func(t *testing.T) {
		lines := HighlightLines(content, "detention charges doubled", nil)
		if !lines[1].Highlighted || lines[1].Text != "detention charges doubled at Long Beach" {
			t.Errorf("wrapper line = %+v", lines[1])
		}
		if lines[2].Highlighted {
			t.Error("unrelated line highlighted")
		}
		if !lines[3].Highlighted {
			t.Error("case-insensitive substring match missed")
		}
	})

	t.Run("implicit_first_citation_fallback", func(t *testing.T) {
		refs := []fixtures.Citation{{Document: "x.pdf", Excerpt: "Carrier rates held steady"}}
		lines := HighlightLines(content, "", refs)
		if !lines[2].Highlighted {
			t.Error("first citation excerpt not used as fallback highlight")
		}
	})

	t.Run("no_signals", func(t *testing.T) {
		lines := HighlightLines(content, "", nil)
		if !lines[1].Highlighted {
			t.Error("wrapper line should highlight without any request")
		}
		if lines[0].Highlighted || lines[2].Highlighted || lines[3].Highlighted {
			t.Error("plain lines highlighted without a request")
		}
	})
}
