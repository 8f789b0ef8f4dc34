package types

import (
	"insight-copilot/document"
	"insight-copilot/fixtures"
	"insight-copilot/render"
	"insight-copilot/session"
)

// AskRequest is the body of POST /api/ask.
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// AskResponse carries the resolved answer and its suggested follow-ups.
type AskResponse struct {
	MessageID string              `json:"messageId"`
	Answer    render.DisplayModel `json:"answer"`
	FollowUps []string            `json:"followUps"`
}

// MessagesResponse is the session log for GET /api/messages.
type MessagesResponse struct {
	Messages []session.Message `json:"messages"`
}

// DocumentResponse is a document plus its highlight-annotated lines.
type DocumentResponse struct {
	Document fixtures.Document `json:"document"`
	Lines    []document.Line   `json:"lines"`
}

// DocumentListItem is one entry of GET /api/documents.
type DocumentListItem struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Pages int    `json:"pages"`
	Type  string `json:"type"`
}

// StarterQuestionsResponse is the set of conversation openers.
type StarterQuestionsResponse struct {
	Questions []string `json:"questions"`
}

// AnomalyRequest is the body of POST /api/anomalies. A batch becomes one
// anomaly message in the session log.
type AnomalyRequest struct {
	Anomalies []AnomalyItem `json:"anomalies" binding:"required,min=1,dive"`
}

type AnomalyItem struct {
	Type        string            `json:"type" binding:"required"`
	Severity    fixtures.Severity `json:"severity"`
	Description string            `json:"description" binding:"required"`
	Impact      string            `json:"impact"`
}
