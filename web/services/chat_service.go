package services

import (
	"context"
	"strings"

	"insight-copilot/document"
	"insight-copilot/fixtures"
	"insight-copilot/matcher"
	"insight-copilot/render"
	"insight-copilot/session"
	"insight-copilot/web/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatService orchestrates one question round trip: record the question,
// resolve it, pick follow-ups, attach the answer, and log the exchange.
type ChatService struct {
	matcher   *matcher.Matcher
	sessions  *SessionService
	documents *document.Service
	logger    *zap.Logger
}

func NewChatService(
	m *matcher.Matcher,
	sessions *SessionService,
	documents *document.Service,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		matcher:   m,
		sessions:  sessions,
		documents: documents,
		logger:    logger,
	}
}

// Ask resolves a question within the given session and returns the render
// model. The session keeps a single active exchange, so submitting a new
// question replaces the previous one and a resolution that finishes after a
// newer submission is dropped.
func (cs *ChatService) Ask(ctx context.Context, sessionID uuid.UUID, question string) (types.AskResponse, error) {
	question = strings.TrimSpace(question)
	sess := cs.sessions.Get(sessionID)
	msg, token := sess.Begin(question)

	resolved := cs.matcher.Resolve(ctx, question)
	if err := ctx.Err(); err != nil {
		return types.AskResponse{}, err
	}
	followUps := cs.matcher.SuggestFollowUps(ctx, resolved)

	if !sess.Complete(token, resolved.Content, followUps) {
		cs.logger.Debug("Dropping stale resolution",
			zap.String("session_id", sessionID.String()),
			zap.String("question", question))
	}
	cs.matcher.LogConversation(resolved, followUps)

	return types.AskResponse{
		MessageID: msg.ID,
		Answer:    render.Render(resolved),
		FollowUps: followUps,
	}, nil
}

// Messages returns the session log, optionally restricted to anomaly alerts.
func (cs *ChatService) Messages(sessionID uuid.UUID, anomaliesOnly bool) []session.Message {
	return cs.sessions.Get(sessionID).Messages(anomaliesOnly)
}

// PushAnomalies appends a batch of anomaly alerts to the session log.
func (cs *ChatService) PushAnomalies(sessionID uuid.UUID, batch []fixtures.Anomaly) session.Message {
	return cs.sessions.Get(sessionID).PushAnomalies(batch)
}

// ResolveDocument returns the document for key together with its highlight
// lines. The session's active answer feeds both synthesis of uncurated
// documents and the implicit highlight fallback.
func (cs *ChatService) ResolveDocument(sessionID uuid.UUID, key, highlight string) types.DocumentResponse {
	var active *document.SourceMessage
	var refs []fixtures.Citation
	if msg, ok := cs.sessions.Get(sessionID).Active(); ok && msg.Content != nil {
		active = &document.SourceMessage{
			Query:   msg.Query,
			Content: *msg.Content,
			AskedAt: msg.AskedAt,
		}
		refs = render.NumberCitations(msg.Content.References)
	}

	doc := cs.documents.Resolve(key, active)
	return types.DocumentResponse{
		Document: doc,
		Lines:    document.HighlightLines(doc.Content, highlight, refs),
	}
}

// StarterQuestions returns conversation openers for an empty chat.
func (cs *ChatService) StarterQuestions(ctx context.Context) []string {
	return cs.matcher.StarterQuestions(ctx)
}
