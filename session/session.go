package session

import (
	"fmt"
	"sync"
	"time"

	"insight-copilot/fixtures"
)

// MessageKind separates answered questions from pushed anomaly alerts.
type MessageKind string

const (
	KindAnswer  MessageKind = "answer"
	KindAnomaly MessageKind = "anomaly"
)

// Message is one entry of a session's log.
type Message struct {
	ID        string                  `json:"id"`
	Kind      MessageKind             `json:"kind"`
	Query     string                  `json:"query,omitempty"`
	Content   *fixtures.AnswerContent `json:"content,omitempty"`
	Anomalies []fixtures.Anomaly      `json:"anomalies,omitempty"`
	FollowUps []string                `json:"followUps,omitempty"`
	AskedAt   time.Time               `json:"askedAt"`
}

// Session holds single-turn chat state. Asking a new question replaces the
// previous exchange; anomaly pushes accumulate alongside without resetting.
// All methods are safe for concurrent use.
type Session struct {
	mu       sync.Mutex
	messages []Message
	activeID string
	seq      uint64
	idSeq    uint64
	now      func() time.Time
}

func New() *Session {
	return &Session{now: time.Now}
}

// Begin starts a new exchange: the log is cleared, the question is recorded,
// and the returned token identifies this submission. A later Complete with a
// stale token is ignored, so a slow resolution can never overwrite a newer
// question's answer.
func (s *Session) Begin(query string) (msg Message, token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	msg = Message{
		ID:      s.nextID(),
		Kind:    KindAnswer,
		Query:   query,
		AskedAt: s.now(),
	}
	s.messages = []Message{msg}
	s.activeID = msg.ID
	return msg, s.seq
}

// Complete attaches the resolved answer to the exchange started with token.
// It reports false when the token is stale.
func (s *Session) Complete(token uint64, content fixtures.AnswerContent, followUps []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.seq {
		return false
	}
	for i := range s.messages {
		if s.messages[i].ID == s.activeID {
			s.messages[i].Content = &content
			s.messages[i].FollowUps = followUps
			return true
		}
	}
	return false
}

// PushAnomalies appends a batch of anomaly alerts as one message without
// disturbing the active exchange.
func (s *Session) PushAnomalies(batch []fixtures.Anomaly) Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := Message{
		ID:        s.nextID(),
		Kind:      KindAnomaly,
		Anomalies: batch,
		AskedAt:   s.now(),
	}
	s.messages = append(s.messages, msg)
	return msg
}

// Messages returns a snapshot of the log, optionally restricted to anomalies.
func (s *Session) Messages(anomaliesOnly bool) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Message, 0, len(s.messages))
	for _, m := range s.messages {
		if anomaliesOnly && m.Kind != KindAnomaly {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Active returns the current exchange, if any.
func (s *Session) Active() (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.messages {
		if m.ID == s.activeID {
			return m, true
		}
	}
	return Message{}, false
}

// nextID yields ids that stay monotonic even when the clock does not advance
// between calls. Callers must hold mu.
func (s *Session) nextID() string {
	s.idSeq++
	return fmt.Sprintf("msg-%d-%d", s.now().UnixMilli(), s.idSeq)
}
