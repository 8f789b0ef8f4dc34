package document

import (
	"fmt"
	"strings"
	"time"

	"insight-copilot/fixtures"
	"insight-copilot/render"

	"go.uber.org/zap"
)

const (
	highlightPrefix = "[HIGHLIGHTED: "
	highlightSuffix = "]"

	// Synthesized documents always report the same page count so repeated
	// views of the same answer stay byte-identical.
	synthesizedPages = 25
)

// SourceMessage carries the parts of an active chat message that document
// synthesis reads. AskedAt doubles as the generation timestamp so the same
// message always synthesizes the same bytes.
type SourceMessage struct {
	Query   string
	Content fixtures.AnswerContent
	AskedAt time.Time
}

// Service resolves document views for the side panel.
type Service struct {
	store  *fixtures.Store
	logger *zap.Logger
}

func NewService(store *fixtures.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger.Named("document")}
}

// Resolve returns the document to display for the given key. A curated
// document wins outright; otherwise one is synthesized from the active
// message, and with no active citations a minimal placeholder is returned so
// the panel never renders empty.
func (s *Service) Resolve(key string, active *SourceMessage) fixtures.Document {
	if doc, ok := s.store.Document(key); ok {
		return doc
	}
	if active != nil && len(active.Content.References) > 0 {
		return Synthesize(key, *active)
	}
	s.logger.Debug("no source for document, serving placeholder", zap.String("key", key))
	return placeholder(key)
}

// Synthesize builds a document on the fly from an answered message. The
// output depends only on the key and the message, so re-opening the same
// citation yields identical content.
func Synthesize(key string, msg SourceMessage) fixtures.Document {
	refs := render.NumberCitations(msg.Content.References)
	// NumberCitations already defaulted an absent title to the humanized
	// document key.
	title := refs[0].Title

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", strings.ToUpper(title))
	fmt.Fprintf(&b, "Internal Analysis Report | Generated %s\n\n", msg.AskedAt.Format("January 2, 2006"))

	b.WriteString("EXECUTIVE SUMMARY\n\n")
	fmt.Fprintf(&b, "This report addresses the question: \"%s\"\n\n", msg.Query)
	if summary := msg.Content.Summary(); summary != "" {
		b.WriteString(summary)
		b.WriteString("\n\n")
	}
	b.WriteString(Wrap(refs[0].Excerpt))
	b.WriteString("\n\n")

	b.WriteString("DETAILED ANALYSIS\n\n")
	if msg.Content.Narrative != nil && msg.Content.Narrative.Why != "" {
		b.WriteString(msg.Content.Narrative.Why)
		b.WriteString("\n\n")
	}
	for _, ref := range refs {
		if ref.Page > 0 {
			fmt.Fprintf(&b, "Section %d (p. %d): %s\n\n", ref.ID, ref.Page, ref.Title)
		} else {
			fmt.Fprintf(&b, "Section %d: %s\n\n", ref.ID, ref.Title)
		}
		b.WriteString(Wrap(ref.Excerpt))
		b.WriteString("\n\n")
	}

	b.WriteString("STRATEGIC RECOMMENDATIONS\n\n")
	if msg.Content.Narrative != nil && msg.Content.Narrative.Recommendation != "" {
		b.WriteString(msg.Content.Narrative.Recommendation)
		b.WriteString("\n\n")
	}
	b.WriteString("Findings in this report should be validated against current operational data before action.\n\n")
	b.WriteString("--- End of Report ---\n")

	return fixtures.Document{
		ID:      key,
		Title:   title,
		Pages:   synthesizedPages,
		Type:    "pdf",
		Content: b.String(),
	}
}

func placeholder(key string) fixtures.Document {
	title := render.HumanizeDocumentKey(key)
	return fixtures.Document{
		ID:    key,
		Title: title,
		Pages: 1,
		Type:  "pdf",
		Content: fmt.Sprintf("%s\n\nThis document is not available in the current knowledge base.\n",
			strings.ToUpper(title)),
	}
}

// Wrap marks text for emphasis inside synthesized document bodies.
func Wrap(text string) string {
	return highlightPrefix + text + highlightSuffix
}

// Line is one display line of a document body with its highlight state.
type Line struct {
	Text        string `json:"text"`
	Highlighted bool   `json:"highlighted"`
}

// HighlightLines splits a document body into lines and flags the ones to
// emphasize. Two signals apply independently: lines wrapped in the highlight
// marker are always flagged (and unwrapped), and lines containing the
// requested text are flagged case-insensitively. An empty request falls back
// to the first citation's excerpt so opening a source always shows its
// passage.
func HighlightLines(content, highlight string, refs []fixtures.Citation) []Line {
	if highlight == "" && len(refs) > 0 {
		highlight = refs[0].Excerpt
	}
	needle := strings.ToLower(strings.TrimSpace(highlight))

	raw := strings.Split(content, "\n")
	out := make([]Line, 0, len(raw))
	for _, text := range raw {
		line := Line{Text: text}
		trimmed := strings.TrimSpace(text)
		if strings.HasPrefix(trimmed, highlightPrefix) && strings.HasSuffix(trimmed, highlightSuffix) {
			line.Text = strings.TrimSuffix(strings.TrimPrefix(trimmed, highlightPrefix), highlightSuffix)
			line.Highlighted = true
		} else if needle != "" && strings.Contains(strings.ToLower(text), needle) {
			line.Highlighted = true
		}
		out = append(out, line)
	}
	return out
}
