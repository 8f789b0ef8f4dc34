package render

import (
	"strings"

	"insight-copilot/fixtures"
	"insight-copilot/matcher"

	"github.com/gomarkdown/markdown"
)

// chartPalette is the fixed 6-entry series palette, cycled by declaration
// order for series without an explicit color.
var chartPalette = []string{
	"hsl(217, 91%, 60%)", // primary
	"hsl(0, 65%, 51%)",   // destructive
	"hsl(38, 92%, 50%)",  // warning
	"hsl(142, 76%, 36%)", // success
	"hsl(220, 13%, 60%)", // muted
	"hsl(217, 91%, 70%)", // primary variant
}

// narrative section headings, in display order.
const (
	headingWhat           = "What Happened"
	headingWhy            = "Why It Happened"
	headingRecommendation = "Recommendation"
)

// Section is one narrative block of a display model.
type Section struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// CitationMarker binds a superscript glyph in a consolidated answer to a
// citation by position.
type CitationMarker struct {
	Number   int               `json:"number"`
	Offset   int               `json:"offset"`
	Citation fixtures.Citation `json:"citation"`
}

// Consolidated is the single-answer display variant: the verbatim text plus
// the markers extracted from it.
type Consolidated struct {
	Text    string           `json:"text"`
	HTML    string           `json:"html"`
	Markers []CitationMarker `json:"markers,omitempty"`
}

// SourceRow is one clickable entry of the sources block. DocumentKey and
// Highlight are the two independent signals a click dispatches: the document
// panel may already be showing a different document, so selection and
// highlighting travel separately.
type SourceRow struct {
	Citation    fixtures.Citation `json:"citation"`
	DocumentKey string            `json:"documentKey"`
	Highlight   string            `json:"highlight"`
}

// DisplayModel is the render-ready form of a resolved answer.
type DisplayModel struct {
	Query        string               `json:"query"`
	Consolidated *Consolidated        `json:"consolidated,omitempty"`
	Sections     []Section            `json:"sections,omitempty"`
	Charts       []fixtures.ChartSpec `json:"charts,omitempty"`
	Sources      []SourceRow          `json:"sources,omitempty"`
}

// Render turns a resolved answer into its display model. Citation ids and
// titles are defaulted here (index+1, humanized document key), chart series
// get palette colors, and narrative text is additionally rendered to HTML.
func Render(resolved matcher.ResolvedAnswer) DisplayModel {
	content := resolved.Content
	refs := NumberCitations(content.References)

	model := DisplayModel{
		Query:  resolved.Query,
		Charts: normalizeCharts(content.Charts),
	}

	if content.Consolidated != nil {
		model.Consolidated = &Consolidated{
			Text:    content.Consolidated.Answer,
			HTML:    toHTML(content.Consolidated.Answer),
			Markers: extractMarkers(content.Consolidated.Answer, refs),
		}
	} else if content.Narrative != nil {
		model.Sections = narrativeSections(*content.Narrative)
	}

	model.Sources = make([]SourceRow, 0, len(refs))
	for _, ref := range refs {
		model.Sources = append(model.Sources, SourceRow{
			Citation:    ref,
			DocumentKey: ref.Document,
			Highlight:   ref.Excerpt,
		})
	}
	return model
}

// NumberCitations returns citations with ids defaulted to index+1 and titles
// defaulted from the document key.
func NumberCitations(refs []fixtures.Citation) []fixtures.Citation {
	out := make([]fixtures.Citation, len(refs))
	for i, ref := range refs {
		if ref.ID == 0 {
			ref.ID = i + 1
		}
		if ref.Title == "" {
			ref.Title = HumanizeDocumentKey(ref.Document)
		}
		out[i] = ref
	}
	return out
}

// HumanizeDocumentKey derives a display title from a filename-like document
// key: extension stripped, separators spaced, words title-cased.
func HumanizeDocumentKey(key string) string {
	name := key
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func narrativeSections(n fixtures.Narrative) []Section {
	var out []Section
	add := func(heading, text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		out = append(out, Section{Heading: heading, Text: text, HTML: toHTML(text)})
	}
	add(headingWhat, n.What)
	add(headingWhy, n.Why)
	add(headingRecommendation, n.Recommendation)
	return out
}

// superscriptDigits maps the unicode superscript glyphs for 1-9. Multi-glyph
// numbers (10 and beyond) are not recognized and stay literal text.
var superscriptDigits = map[rune]int{
	'¹': 1, '²': 2, '³': 3,
	'⁴': 4, '⁵': 5, '⁶': 6,
	'⁷': 7, '⁸': 8, '⁹': 9,
}

// extractMarkers scans the answer text for superscript citation glyphs and
// binds each to its reference by position. A glyph without a matching
// reference index produces no marker; the glyph stays in the text either way.
func extractMarkers(text string, refs []fixtures.Citation) []CitationMarker {
	var out []CitationMarker
	for offset, r := range text {
		n, ok := superscriptDigits[r]
		if !ok {
			continue
		}
		if n > len(refs) {
			continue
		}
		out = append(out, CitationMarker{Number: n, Offset: offset, Citation: refs[n-1]})
	}
	return out
}

func normalizeCharts(charts []fixtures.ChartSpec) []fixtures.ChartSpec {
	out := make([]fixtures.ChartSpec, len(charts))
	for i, chart := range charts {
		cfg := make([]fixtures.SeriesConfig, len(chart.Config))
		for j, sc := range chart.Config {
			if sc.Label == "" {
				sc.Label = sc.Key
			}
			if sc.Color == "" {
				sc.Color = chartPalette[j%len(chartPalette)]
			}
			cfg[j] = sc
		}
		chart.Config = cfg
		if chart.ValueFormat == "" {
			chart.ValueFormat = fixtures.FormatNumber
		}
		out[i] = chart
	}
	return out
}

func toHTML(text string) string {
	return strings.TrimSpace(string(markdown.ToHTML([]byte(text), nil, nil)))
}
