package services

import (
	"sync"

	"insight-copilot/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService hands out the in-memory chat state for each cookie session.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*session.Session
	logger   *zap.Logger
}

func NewSessionService(logger *zap.Logger) *SessionService {
	return &SessionService{
		sessions: make(map[uuid.UUID]*session.Session),
		logger:   logger,
	}
}

// Get returns the chat state for a session, creating it on first use.
func (ss *SessionService) Get(sessionID uuid.UUID) *session.Session {
	ss.mu.RLock()
	sess, ok := ss.sessions[sessionID]
	ss.mu.RUnlock()
	if ok {
		return sess
	}

	ss.mu.Lock()
	defer ss.mu.Unlock()
	if sess, ok = ss.sessions[sessionID]; ok {
		return sess
	}
	sess = session.New()
	ss.sessions[sessionID] = sess
	ss.logger.Debug("Created chat session", zap.String("session_id", sessionID.String()))
	return sess
}

// Count reports how many chat sessions are live.
func (ss *SessionService) Count() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return len(ss.sessions)
}
