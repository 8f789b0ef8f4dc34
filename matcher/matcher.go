package matcher

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"insight-copilot/config"
	"insight-copilot/database"
	"insight-copilot/fixtures"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"
)

// remoteExcerptLimit bounds the synthesized citation excerpt for remote
// answers (~100 chars, cut at a sentence boundary when possible).
const remoteExcerptLimit = 100

// remoteDocumentKey is the placeholder document every remote-synthesized
// citation points at. It never resolves to a fixture; the document
// synthesizer builds a view for it on demand.
const remoteDocumentKey = "knowledge-base-extract.pdf"

// Source records which precedence tier produced a resolution.
type Source string

const (
	SourceFixture  Source = "fixture"
	SourceRemote   Source = "remote"
	SourceCategory Source = "category"
	SourceGeneric  Source = "generic"
)

// ResolvedAnswer is the outcome of resolving a free-text question. Content is
// always populated: the generic template is the guaranteed terminal case.
type ResolvedAnswer struct {
	Query    string
	Content  fixtures.AnswerContent
	Source   Source
	Category fixtures.Category
	RemoteID uuid.UUID
}

// RemoteSource is the optional best-effort question service. Implementations
// may fail at any time; the matcher degrades silently.
type RemoteSource interface {
	SearchQuestions(ctx context.Context, query string, limit int) ([]database.Question, error)
	GetFollowUpQuestions(ctx context.Context, parentID uuid.UUID) ([]string, error)
	GetRandomQuestions(ctx context.Context, limit int) ([]string, error)
	GetStarterQuestions(ctx context.Context, limit int) ([]string, error)
	SaveConversation(ctx context.Context, question, answer string, followUps []string) error
}

// keywordRules is the fixed-priority category table. Scan order is the
// priority order; the first category with a keyword hit wins.
var keywordRules = []struct {
	category fixtures.Category
	keywords []string
}{
	{fixtures.CategoryCost, []string{"transportation", "cost", "region"}},
	{fixtures.CategoryQuality, []string{"quality", "supplier", "metric"}},
	{fixtures.CategoryInventory, []string{"inventory", "stock", "forecast"}},
	{fixtures.CategoryDelay, []string{"delay", "trade", "lane", "route"}},
}

type Matcher struct {
	cfg      *config.Config
	store    *fixtures.Store
	remote   RemoteSource
	logger   *zap.Logger
	cache    *lru.Cache
	sampler  sampler
	delays   []time.Duration
}

func New(cfg *config.Config, store *fixtures.Store, remote RemoteSource, logger *zap.Logger) *Matcher {
	size := cfg.RemoteCacheSize
	if size <= 0 {
		size = 128
	}
	cache, _ := lru.New(size)
	return &Matcher{
		cfg:     cfg,
		store:   store,
		remote:  remote,
		logger:  logger,
		cache:   cache,
		sampler: newSampler(),
		delays:  cfg.StageDelayDurations(),
	}
}

// Resolve maps free-text input to an answer, first success wins:
// fixture substring match, remote keyword lookup, keyword-rule fallback,
// generic template. It never returns an error to the caller; every tier
// degrades to the next and the generic template terminates the chain.
func (m *Matcher) Resolve(ctx context.Context, question string) ResolvedAnswer {
	m.simulateAnalysis(ctx)
	return m.resolve(ctx, question)
}

func (m *Matcher) resolve(ctx context.Context, question string) ResolvedAnswer {
	input := strings.ToLower(strings.TrimSpace(question))

	if qa, ok := m.matchFixture(input); ok {
		m.logger.Debug("Resolved question from fixture", zap.String("fixture_id", qa.ID))
		return ResolvedAnswer{Query: question, Content: qa.Content, Source: SourceFixture}
	}

	if answer, ok := m.lookupRemote(ctx, input); ok {
		m.logger.Debug("Resolved question from remote store", zap.String("remote_id", answer.RemoteID.String()))
		answer.Query = question
		return answer
	}

	if cat, ok := matchCategory(input); ok {
		m.logger.Debug("Resolved question from keyword category", zap.String("category", string(cat)))
		return ResolvedAnswer{Query: question, Content: fixtures.FallbackTemplate(cat), Source: SourceCategory, Category: cat}
	}

	return ResolvedAnswer{Query: question, Content: fixtures.FallbackTemplate(fixtures.CategoryGeneric), Source: SourceGeneric, Category: fixtures.CategoryGeneric}
}

// matchFixture scans fixtures in declaration order. A fixture matches when
// its canonical query contains the input or the input contains the query,
// case-insensitively.
func (m *Matcher) matchFixture(input string) (fixtures.QARecord, bool) {
	if input == "" {
		return fixtures.QARecord{}, false
	}
	for _, qa := range m.store.QARecords() {
		canonical := strings.ToLower(qa.Query)
		if strings.Contains(input, canonical) || strings.Contains(canonical, input) {
			return qa, true
		}
	}
	return fixtures.QARecord{}, false
}

// lookupRemote searches the question bank with the whole input first, then
// retries keyword by keyword for words longer than 3 characters. Any failure
// falls through silently.
func (m *Matcher) lookupRemote(ctx context.Context, input string) (ResolvedAnswer, bool) {
	if m.remote == nil || input == "" {
		return ResolvedAnswer{}, false
	}

	if cached, ok := m.cache.Get(input); ok {
		return cached.(ResolvedAnswer), true
	}

	question, ok := m.searchRemote(ctx, input)
	if !ok {
		for _, keyword := range keywordsOf(input) {
			if question, ok = m.searchRemote(ctx, keyword); ok {
				break
			}
		}
	}
	if !ok {
		return ResolvedAnswer{}, false
	}

	resolved := ResolvedAnswer{
		Content: fixtures.AnswerContent{
			Narrative: &fixtures.Narrative{What: question.AnswerText},
			References: []fixtures.Citation{{
				ID:       1,
				Document: remoteDocumentKey,
				Title:    "Knowledge Base Extract",
				Excerpt:  excerptOf(question.AnswerText, remoteExcerptLimit),
			}},
		},
		Source:   SourceRemote,
		Category: fixtures.Category(question.Category),
		RemoteID: question.ID,
	}
	m.cache.Add(input, resolved)
	return resolved, true
}

func (m *Matcher) searchRemote(ctx context.Context, text string) (database.Question, bool) {
	results, err := m.remote.SearchQuestions(ctx, text, 5)
	if err != nil {
		m.logger.Debug("Remote question search unavailable", zap.Error(err))
		return database.Question{}, false
	}
	if len(results) == 0 {
		return database.Question{}, false
	}
	return results[0], true
}

// LogConversation asynchronously appends a resolved exchange to the remote
// history sink. Fire-and-forget: failures are logged and otherwise ignored.
func (m *Matcher) LogConversation(resolved ResolvedAnswer, followUps []string) {
	if m.remote == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), m.cfg.QuestionDBTimeout)
		defer cancel()

		answerJSON, err := json.Marshal(resolved.Content)
		if err != nil {
			m.logger.Warn("Failed to encode answer for conversation history", zap.Error(err))
			return
		}
		if err := m.remote.SaveConversation(ctx, resolved.Query, string(answerJSON), followUps); err != nil {
			m.logger.Warn("Failed to save conversation history", zap.Error(err))
		}
	}()
}

// simulateAnalysis inserts the staged analyzing/searching/finding delays.
// Configured delays of zero (the test default) disable it entirely.
func (m *Matcher) simulateAnalysis(ctx context.Context) {
	stages := []string{"analyzing", "searching", "finding"}
	for i, delay := range m.delays {
		stage := "finalizing"
		if i < len(stages) {
			stage = stages[i]
		}
		m.logger.Debug("Analysis stage", zap.String("stage", stage), zap.Duration("delay", delay))
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

func matchCategory(input string) (fixtures.Category, bool) {
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(input, kw) {
				return rule.category, true
			}
		}
	}
	return "", false
}

// keywordsOf splits the lower-cased input into candidate search keywords,
// keeping only words longer than 3 characters.
func keywordsOf(input string) []string {
	var out []string
	for _, word := range strings.Fields(input) {
		word = strings.Trim(word, ".,!?;:'\"()")
		if len(word) > 3 {
			out = append(out, word)
		}
	}
	return out
}

// excerptOf truncates text to roughly limit characters, preferring a sentence
// boundary. A first sentence longer than the limit falls back to a plain cut.
func excerptOf(text string, limit int) string {
	text = strings.TrimSpace(text)
	if len(text) <= limit {
		return text
	}

	doc, err := prose.NewDocument(text)
	if err == nil {
		var b strings.Builder
		for _, sent := range doc.Sentences() {
			candidate := strings.TrimSpace(b.String() + " " + sent.Text)
			if len(candidate) > limit {
				break
			}
			b.Reset()
			b.WriteString(candidate)
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return strings.TrimSpace(text[:cut])
}
