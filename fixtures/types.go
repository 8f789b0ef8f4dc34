package fixtures

import "strings"

// Severity drives only display styling, never ordering or scoring.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Anomaly is a flagged operational irregularity, distinct from a narrative answer.
type Anomaly struct {
	Type        string   `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
}

// Citation points from an answer to a source excerpt. ID is 1-based within a
// record; zero means "assign index+1 at render time". Document is a
// filename-like key that is not required to resolve to a fixture.
type Citation struct {
	ID       int    `json:"id,omitempty"`
	Document string `json:"document"`
	Title    string `json:"title,omitempty"`
	Excerpt  string `json:"excerpt"`
	Page     int    `json:"page,omitempty"`
}

// ChartType enumerates the chart widgets the UI collaborator understands.
type ChartType string

const (
	ChartBar   ChartType = "bar"
	ChartLine  ChartType = "line"
	ChartPie   ChartType = "pie"
	ChartTrend ChartType = "trend"
)

// ValueFormat selects the axis/tooltip formatter for a chart. It is a
// declared field; the legacy title-substring sniffing only runs once at
// fixture load for records that predate the field.
type ValueFormat string

const (
	FormatCurrency ValueFormat = "currency"
	FormatPercent  ValueFormat = "percent"
	FormatNumber   ValueFormat = "number"
)

// SeriesConfig describes one data series. The slice order is the declaration
// order, which drives palette color assignment for series without an explicit
// color.
type SeriesConfig struct {
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`
	Color string `json:"color,omitempty"`
}

// ChartSpec describes one chart block attached to an answer. Data rows carry
// dynamic keys plus a positional key: "name" for bar/line/pie, "period" for
// trend.
type ChartSpec struct {
	Type        ChartType                `json:"type"`
	Title       string                   `json:"title"`
	ValueFormat ValueFormat              `json:"valueFormat,omitempty"`
	Data        []map[string]interface{} `json:"data"`
	Config      []SeriesConfig           `json:"config"`
}

// Narrative is the three-part answer structure.
type Narrative struct {
	What           string `json:"what,omitempty"`
	Why            string `json:"why,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

// Consolidated is the single-answer structure with embedded superscript
// citation markers (unicode superscript digits, 1-based).
type Consolidated struct {
	Answer string `json:"answer"`
}

// AnswerContent is the tagged content variant of an answer message. Exactly
// one of Narrative or Consolidated is populated.
type AnswerContent struct {
	Narrative    *Narrative    `json:"narrative,omitempty"`
	Consolidated *Consolidated `json:"consolidated,omitempty"`
	Charts       []ChartSpec   `json:"charts,omitempty"`
	References   []Citation    `json:"references,omitempty"`
}

// Summary returns the leading narrative text of the content, whichever
// variant is populated.
func (c AnswerContent) Summary() string {
	if c.Consolidated != nil {
		return c.Consolidated.Answer
	}
	if c.Narrative != nil {
		return c.Narrative.What
	}
	return ""
}

// QARecord is a statically authored question/answer pair.
type QARecord struct {
	ID      string
	Query   string
	Content AnswerContent
}

// Document is a pre-authored source document fixture. Content is a
// newline-delimited text body; lines wrapped as [HIGHLIGHTED: ...] are
// pre-marked excerpts.
type Document struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Pages   int    `json:"pages"`
	Type    string `json:"type"`
	Content string `json:"-"`
}

// deriveValueFormat reproduces the legacy title-substring formatter
// selection so hand-authored fixtures keep their exact display behavior.
func deriveValueFormat(title string) ValueFormat {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "cost"), strings.Contains(t, "overcharge"), strings.Contains(t, "impact"):
		return FormatCurrency
	case strings.Contains(t, "%"), strings.Contains(t, "rate"):
		return FormatPercent
	default:
		return FormatNumber
	}
}
