package matcher

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"insight-copilot/fixtures"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SuggestFollowUps proposes next questions for a resolved answer,
// independently of how it was matched. Preference order: remote follow-ups
// for the matched remote question, remote random questions, the curated
// category pair, then a random sample from the static pool. Remote failures
// fall through without error propagation; the pool guarantees a result.
func (m *Matcher) SuggestFollowUps(ctx context.Context, resolved ResolvedAnswer) []string {
	count := m.cfg.FollowUpCount
	if count <= 0 {
		count = 2
	}

	if m.remote != nil {
		if resolved.RemoteID != uuid.Nil {
			if ups, err := m.remote.GetFollowUpQuestions(ctx, resolved.RemoteID); err == nil {
				if picked := pickSuggestions(ups, resolved.Query, count); len(picked) == count {
					return picked
				}
			} else {
				m.logger.Debug("Remote follow-up lookup unavailable", zap.Error(err))
			}
		}
		if ups, err := m.remote.GetRandomQuestions(ctx, count+1); err == nil {
			if picked := pickSuggestions(ups, resolved.Query, count); len(picked) == count {
				return picked
			}
		} else {
			m.logger.Debug("Remote random question lookup unavailable", zap.Error(err))
		}
	}

	if pair := fixtures.FollowUpPair(resolved.Category); len(pair) >= count {
		return pair[:count]
	}

	return m.sampler.sample(m.store.AdditionalQuestions(), resolved.Query, count)
}

// StarterQuestions returns the prompts shown before any question is asked:
// the remote source when available, else the static defaults.
func (m *Matcher) StarterQuestions(ctx context.Context) []string {
	if m.remote != nil {
		if qs, err := m.remote.GetStarterQuestions(ctx, 6); err == nil && len(qs) > 0 {
			return qs
		} else if err != nil {
			m.logger.Debug("Remote starter question lookup unavailable", zap.Error(err))
		}
	}
	return fixtures.StarterQuestions
}

// pickSuggestions keeps order, drops the question just asked, and caps at
// count.
func pickSuggestions(candidates []string, asked string, count int) []string {
	out := make([]string, 0, count)
	for _, c := range candidates {
		if strings.EqualFold(strings.TrimSpace(c), strings.TrimSpace(asked)) {
			continue
		}
		out = append(out, c)
		if len(out) == count {
			break
		}
	}
	return out
}

type sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newSampler() sampler {
	return sampler{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// sample returns count distinct entries from the pool, excluding the question
// just asked.
func (s *sampler) sample(pool []string, asked string, count int) []string {
	candidates := make([]string, 0, len(pool))
	for _, q := range pool {
		if !strings.EqualFold(q, asked) {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) <= count {
		return candidates
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	picked := s.rng.Perm(len(candidates))[:count]
	out := make([]string, 0, count)
	for _, i := range picked {
		out = append(out, candidates[i])
	}
	return out
}
