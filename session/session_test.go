package session

import (
	"testing"

	"insight-copilot/fixtures"
)

func answerContent(what string) fixtures.AnswerContent {
	return fixtures.AnswerContent{Narrative: &fixtures.Narrative{What: what}}
}

func TestBeginReplacesPreviousExchange(t *testing.T) {
	s := New()

	_, token := s.Begin("first question")
	s.Complete(token, answerContent("first answer"), nil)

	msg, token := s.Begin("second question")
	s.Complete(token, answerContent("second answer"), nil)

	msgs := s.Messages(false)
	if len(msgs) != 1 {
		t.Fatalf("messages = %d, want 1 after reset", len(msgs))
	}
	if msgs[0].ID != msg.ID || msgs[0].Query != "second question" {
		t.Errorf("surviving message = %+v", msgs[0])
	}
	if msgs[0].Content == nil || msgs[0].Content.Narrative.What != "second answer" {
		t.Error("answer not attached to the new exchange")
	}
}

func TestStaleCompletionIgnored(t *testing.T) {
	s := New()

	_, stale := s.Begin("slow question")
	s.Begin("fast question")

	if s.Complete(stale, answerContent("slow answer"), nil) {
		t.Error("stale completion reported success")
	}

	active, ok := s.Active()
	if !ok {
		t.Fatal("no active exchange")
	}
	if active.Query != "fast question" || active.Content != nil {
		t.Errorf("active exchange = %+v", active)
	}
}

func TestAnomalyPushDoesNotReset(t *testing.T) {
	s := New()

	_, token := s.Begin("question one")
	s.Complete(token, answerContent("answer one"), nil)
	s.PushAnomalies([]fixtures.Anomaly{{Type: "freight_cost", Severity: fixtures.SeverityHigh, Description: "spike"}})

	// An anomaly push never resets the exchange.
	if len(s.Messages(false)) != 2 {
		t.Fatalf("messages = %d, want answer plus anomaly", len(s.Messages(false)))
	}

	s.Begin("question two")

	anomalies := s.Messages(true)
	if len(anomalies) != 0 {
		// Reset clears the whole log including alerts.
		t.Fatalf("anomalies after reset = %d, want 0", len(anomalies))
	}
}

func TestMessagesAnomalyFilter(t *testing.T) {
	s := New()

	s.Begin("question")
	s.PushAnomalies([]fixtures.Anomaly{{Type: "delay", Severity: fixtures.SeverityLow, Description: "minor slip"}})
	s.PushAnomalies([]fixtures.Anomaly{
		{Type: "quality", Severity: fixtures.SeverityMedium, Description: "defect batch"},
		{Type: "quality", Severity: fixtures.SeverityLow, Description: "paperwork gap"},
	})

	all := s.Messages(false)
	if len(all) != 3 {
		t.Fatalf("messages = %d, want 3", len(all))
	}

	anomalies := s.Messages(true)
	if len(anomalies) != 2 {
		t.Fatalf("anomalies = %d, want 2", len(anomalies))
	}
	for _, m := range anomalies {
		if m.Kind != KindAnomaly || len(m.Anomalies) == 0 {
			t.Errorf("anomaly message = %+v", m)
		}
	}
	if len(anomalies[1].Anomalies) != 2 {
		t.Errorf("batch size = %d, want 2", len(anomalies[1].Anomalies))
	}
}

func TestMessageIDsMonotonic(t *testing.T) {
	s := New()

	var ids []string
	for i := 0; i < 5; i++ {
		msg := s.PushAnomalies([]fixtures.Anomaly{{Type: "x", Description: "y"}})
		ids = append(ids, msg.ID)
	}

	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
