package database

import (
	"context"
	"database/sql"
	"time"

	apperrors "insight-copilot/errors"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/lib/pq"
)

// Question is a row in the remote question bank.
type Question struct {
	ID           uuid.UUID
	QuestionText string
	AnswerText   string
	Category     string
	CreatedAt    time.Time
}

// QuestionStore is the optional remote question bank. Every caller treats it
// as best-effort: a nil store or any returned error falls through to the next
// precedence tier, never to the user.
type QuestionStore struct {
	DB *sql.DB
}

func NewQuestionStore(connStr string) (*QuestionStore, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return &QuestionStore{DB: db}, nil
}

// EnsureSchema creates the required tables if they do not already exist.
func (s *QuestionStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS questions (
            id UUID PRIMARY KEY,
            question_text TEXT NOT NULL,
            answer_text TEXT NOT NULL,
            category TEXT DEFAULT '',
            created_at TIMESTAMPTZ DEFAULT NOW(),
            updated_at TIMESTAMPTZ DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_questions_text_search
            ON questions USING GIN (to_tsvector('english', question_text))`,
		`CREATE TABLE IF NOT EXISTS follow_up_questions (
            id UUID PRIMARY KEY,
            parent_question_id UUID REFERENCES questions(id) ON DELETE CASCADE,
            question_text TEXT NOT NULL,
            created_at TIMESTAMPTZ DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_follow_up_parent ON follow_up_questions(parent_question_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS conversation_history (
            id UUID PRIMARY KEY,
            question TEXT NOT NULL,
            answer TEXT NOT NULL,
            follow_up_questions TEXT[] DEFAULT '{}'::TEXT[],
            created_at TIMESTAMPTZ DEFAULT NOW()
        )`,
	}

	for _, stmt := range stmts {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return apperrors.WrapError(err, "failed to execute schema statement")
		}
	}
	return nil
}

// SearchQuestions runs a full-text search over the question bank and returns
// matches in relevance order.
func (s *QuestionStore) SearchQuestions(ctx context.Context, query string, limit int) ([]Question, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT id, question_text, answer_text, category, created_at
        FROM questions
        WHERE to_tsvector('english', question_text) @@ websearch_to_tsquery('english', $1)
        ORDER BY ts_rank(to_tsvector('english', question_text), websearch_to_tsquery('english', $1)) DESC
        LIMIT $2`, query, limit)
	if err != nil {
		return nil, apperrors.WrapError(err, "question search failed")
	}
	defer rows.Close()

	var out []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.AnswerText, &q.Category, &q.CreatedAt); err != nil {
			return nil, apperrors.WrapError(err, "failed to scan question row")
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// GetFollowUpQuestions returns the follow-up texts for a parent question in
// creation order.
func (s *QuestionStore) GetFollowUpQuestions(ctx context.Context, parentID uuid.UUID) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT question_text FROM follow_up_questions
        WHERE parent_question_id = $1
        ORDER BY created_at ASC`, parentID)
	if err != nil {
		return nil, apperrors.WrapError(err, "follow-up lookup failed")
	}
	defer rows.Close()
	return scanTexts(rows)
}

// GetRandomQuestions returns up to limit question texts for suggestion use.
func (s *QuestionStore) GetRandomQuestions(ctx context.Context, limit int) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT question_text FROM questions ORDER BY random() LIMIT $1`, limit)
	if err != nil {
		return nil, apperrors.WrapError(err, "random question lookup failed")
	}
	defer rows.Close()
	return scanTexts(rows)
}

// GetStarterQuestions returns the first few question texts for the empty
// session view.
func (s *QuestionStore) GetStarterQuestions(ctx context.Context, limit int) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT question_text FROM questions ORDER BY created_at ASC LIMIT $1`, limit)
	if err != nil {
		return nil, apperrors.WrapError(err, "starter question lookup failed")
	}
	defer rows.Close()
	return scanTexts(rows)
}

// SaveConversation appends a resolved exchange to the history sink. Callers
// invoke this fire-and-forget; the error is for logging only.
func (s *QuestionStore) SaveConversation(ctx context.Context, question, answer string, followUps []string) error {
	_, err := s.DB.ExecContext(ctx, `
        INSERT INTO conversation_history (id, question, answer, follow_up_questions)
        VALUES ($1, $2, $3, $4)`,
		uuid.New(), question, answer, pq.Array(followUps))
	return apperrors.WrapError(err, "failed to save conversation")
}

func (s *QuestionStore) Close() error {
	return s.DB.Close()
}

func scanTexts(rows *sql.Rows) ([]string, error) {
	var out []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, apperrors.WrapError(err, "failed to scan question text")
		}
		out = append(out, text)
	}
	return out, rows.Err()
}
