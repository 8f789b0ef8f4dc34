package matcher

import (
	"context"
	"testing"

	"insight-copilot/fixtures"

	"github.com/google/uuid"
)

func TestSuggestFollowUpsRemoteParent(t *testing.T) {
	parentID := uuid.New()
	remote := &fakeRemote{
		followUps: map[uuid.UUID][]string{
			parentID: {"How did this trend last quarter?", "Which carriers are affected?", "What is the cost impact?"},
		},
	}
	m := newTestMatcher(t, remote)

	got := m.SuggestFollowUps(context.Background(), ResolvedAnswer{
		Query:    "What about tariffs?",
		Source:   SourceRemote,
		RemoteID: parentID,
	})

	want := []string{"How did this trend last quarter?", "Which carriers are affected?"}
	if len(got) != len(want) {
		t.Fatalf("follow-ups = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("follow-ups[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSuggestFollowUpsDropsAskedQuestion(t *testing.T) {
	parentID := uuid.New()
	remote := &fakeRemote{
		followUps: map[uuid.UUID][]string{
			parentID: {"What about tariffs?", "Which carriers are affected?", "What is the cost impact?"},
		},
	}
	m := newTestMatcher(t, remote)

	got := m.SuggestFollowUps(context.Background(), ResolvedAnswer{
		Query:    "What about tariffs?",
		Source:   SourceRemote,
		RemoteID: parentID,
	})

	for _, q := range got {
		if q == "What about tariffs?" {
			t.Fatalf("follow-ups %v repeat the question just asked", got)
		}
	}
	if len(got) != 2 {
		t.Errorf("follow-ups = %v, want 2 entries", got)
	}
}

func TestSuggestFollowUpsRemoteRandomFallback(t *testing.T) {
	remote := &fakeRemote{
		random: []string{"Where are the delays?", "Which suppliers slipped?", "What changed in Q3?"},
	}
	m := newTestMatcher(t, remote)

	// No RemoteID, so the parent tier is skipped entirely.
	got := m.SuggestFollowUps(context.Background(), ResolvedAnswer{
		Query:  "Anything odd lately?",
		Source: SourceGeneric,
	})

	if len(got) != 2 {
		t.Fatalf("follow-ups = %v, want 2 entries", got)
	}
	if got[0] != "Where are the delays?" || got[1] != "Which suppliers slipped?" {
		t.Errorf("follow-ups = %v, want the first two random questions", got)
	}
}

func TestSuggestFollowUpsCuratedPair(t *testing.T) {
	m := newTestMatcher(t, &fakeRemote{fail: true})

	got := m.SuggestFollowUps(context.Background(), ResolvedAnswer{
		Query:    "How can we reduce transportation spend?",
		Source:   SourceCategory,
		Category: fixtures.CategoryCost,
	})

	want := fixtures.FollowUpPair(fixtures.CategoryCost)
	if len(got) != 2 {
		t.Fatalf("follow-ups = %v, want 2 entries", got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("follow-ups[%d] = %q, want curated %q", i, got[i], want[i])
		}
	}
}

func TestSuggestFollowUpsPoolSample(t *testing.T) {
	// Generic answers have no curated pair, and with no remote the static
	// pool is the terminal tier.
	m := newTestMatcher(t, nil)

	asked := "Tell me something interesting"
	got := m.SuggestFollowUps(context.Background(), ResolvedAnswer{
		Query:    asked,
		Source:   SourceGeneric,
		Category: fixtures.CategoryGeneric,
	})

	if len(got) != 2 {
		t.Fatalf("follow-ups = %v, want 2 entries", got)
	}
	if got[0] == got[1] {
		t.Errorf("follow-ups %v are not distinct", got)
	}
	pool := map[string]bool{}
	for _, q := range fixtures.Default().AdditionalQuestions() {
		pool[q] = true
	}
	for _, q := range got {
		if !pool[q] {
			t.Errorf("follow-up %q is not from the static pool", q)
		}
		if q == asked {
			t.Errorf("follow-up repeats the question just asked")
		}
	}
}

func TestStarterQuestions(t *testing.T) {
	t.Run("remote_wins", func(t *testing.T) {
		remote := &fakeRemote{starters: []string{"What moved this week?"}}
		m := newTestMatcher(t, remote)
		got := m.StarterQuestions(context.Background())
		if len(got) != 1 || got[0] != "What moved this week?" {
			t.Errorf("starters = %v, want the remote set", got)
		}
	})

	t.Run("static_fallback", func(t *testing.T) {
		m := newTestMatcher(t, &fakeRemote{fail: true})
		got := m.StarterQuestions(context.Background())
		if len(got) != len(fixtures.StarterQuestions) {
			t.Fatalf("starters = %v, want the static defaults", got)
		}
		for i := range got {
			if got[i] != fixtures.StarterQuestions[i] {
				t.Errorf("starters[%d] = %q, want %q", i, got[i], fixtures.StarterQuestions[i])
			}
		}
	})
}
