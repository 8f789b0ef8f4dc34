package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RateLimiterConfig holds configuration for rate limiting
type RateLimiterConfig struct {
	MessagesPerMinute int           // Max questions per session per minute
	BurstSize         int           // Allow burst of N requests
	CleanupInterval   time.Duration // How often to clean up old entries
}

// TokenBucket implements a token bucket rate limiter
type TokenBucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a new token bucket
func NewTokenBucket(maxTokens float64, refillRate float64) *TokenBucket {
	return &TokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow checks if a request can proceed and consumes a token if so
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()

	tb.tokens = min(tb.maxTokens, tb.tokens+(elapsed*tb.refillRate))
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Remaining returns the number of tokens remaining
func (tb *TokenBucket) Remaining() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tokens := min(tb.maxTokens, tb.tokens+(elapsed*tb.refillRate))
	return int(tokens)
}

// SessionRateLimiter manages rate limits per session
type SessionRateLimiter struct {
	config        RateLimiterConfig
	messageLimits map[uuid.UUID]*TokenBucket
	mu            sync.RWMutex
	logger        *zap.Logger
	stopCleanup   chan struct{}
}

// NewSessionRateLimiter creates a new session-based rate limiter
func NewSessionRateLimiter(config RateLimiterConfig, logger *zap.Logger) *SessionRateLimiter {
	limiter := &SessionRateLimiter{
		config:        config,
		messageLimits: make(map[uuid.UUID]*TokenBucket),
		logger:        logger,
		stopCleanup:   make(chan struct{}),
	}

	go limiter.cleanupRoutine()

	return limiter
}

func (srl *SessionRateLimiter) cleanupRoutine() {
	ticker := time.NewTicker(srl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			srl.cleanup()
		case <-srl.stopCleanup:
			return
		}
	}
}

func (srl *SessionRateLimiter) cleanup() {
	srl.mu.Lock()
	defer srl.mu.Unlock()

	if len(srl.messageLimits) > 1000 {
		srl.logger.Info("Cleaning up rate limiter cache", zap.Int("message_limiters", len(srl.messageLimits)))
		srl.messageLimits = make(map[uuid.UUID]*TokenBucket)
	}
}

// Stop stops the cleanup routine
func (srl *SessionRateLimiter) Stop() {
	close(srl.stopCleanup)
}

// AllowMessage checks if a question can be submitted for the given session
func (srl *SessionRateLimiter) AllowMessage(sessionID uuid.UUID) bool {
	srl.mu.Lock()
	bucket, exists := srl.messageLimits[sessionID]
	if !exists {
		refillRate := float64(srl.config.MessagesPerMinute) / 60.0
		bucket = NewTokenBucket(float64(srl.config.BurstSize), refillRate)
		srl.messageLimits[sessionID] = bucket
	}
	srl.mu.Unlock()

	return bucket.Allow()
}

// GetMessageLimit returns remaining message tokens for a session
func (srl *SessionRateLimiter) GetMessageLimit(sessionID uuid.UUID) (remaining int, limit int) {
	srl.mu.RLock()
	bucket, exists := srl.messageLimits[sessionID]
	srl.mu.RUnlock()

	if !exists {
		return srl.config.BurstSize, srl.config.BurstSize
	}
	return bucket.Remaining(), srl.config.BurstSize
}

// RateLimitMiddleware creates a Gin middleware limiting question submissions
func RateLimitMiddleware(limiter *SessionRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionIDValue, exists := c.Get("sessionID")
		if !exists {
			// Session middleware should run before this
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session not initialized"})
			return
		}

		sessionID := sessionIDValue.(uuid.UUID)
		allowed := limiter.AllowMessage(sessionID)
		remaining, limit := limiter.GetMessageLimit(sessionID)

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			logger, _ := c.Get("logger")
			zapLogger, _ := logger.(*zap.Logger)
			if zapLogger != nil {
				zapLogger.Warn("Rate limit exceeded",
					zap.String("session_id", sessionID.String()),
					zap.Int("limit", limit))
			}

			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"limit":       limit,
				"remaining":   remaining,
				"retry_after": 60,
			})
			return
		}

		c.Next()
	}
}
