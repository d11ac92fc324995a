package app

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/atomicstack/ams/internal/tmux"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const maxSuggestions = 3

// withSuggestions appends close session names to a not-found error. Any other
// error, or a failed listing, leaves err untouched.
func (r *Runner) withSuggestions(name string, err error) error {
	if !errors.Is(err, tmux.ErrSessionNotFound) {
		return err
	}
	sessions, listErr := r.repo.ListSessions()
	if listErr != nil {
		return err
	}
	names := make([]string, len(sessions))
	for i, s := range sessions {
		names[i] = s.Name
	}
	matches := suggest(name, names)
	if len(matches) == 0 {
		return err
	}
	return fmt.Errorf("%w (did you mean: %s?)", err, strings.Join(matches, ", "))
}

// suggest ranks candidates that fuzzily contain query, or are contained in
// it, closest first.
func suggest(query string, candidates []string) []string {
	query = strings.TrimSpace(query)
	if query == "" || len(candidates) == 0 {
		return nil
	}
	ranks := fuzzy.RankFindNormalizedFold(query, candidates)
	seen := make(map[int]struct{}, len(ranks))
	for _, rank := range ranks {
		seen[rank.OriginalIndex] = struct{}{}
	}
	for idx, candidate := range candidates {
		if _, ok := seen[idx]; ok {
			continue
		}
		if fuzzy.MatchNormalizedFold(candidate, query) {
			ranks = append(ranks, fuzzy.Rank{
				Source:        candidate,
				Target:        candidate,
				Distance:      fuzzy.LevenshteinDistance(strings.ToLower(query), strings.ToLower(candidate)),
				OriginalIndex: idx,
			})
		}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	out := make([]string, 0, maxSuggestions)
	for _, rank := range ranks {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, rank.Target)
	}
	return out
}
