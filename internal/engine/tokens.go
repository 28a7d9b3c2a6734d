package engine

import "strings"

// normalizeToken lowercases a label and hyphenates its spaces so that
// "Data Analysis" and "data-analysis" compare equal everywhere.
func normalizeToken(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}

// tokenSet is an order-preserving set of normalized tokens. Membership is
// tracked in a map while insertion order is kept for deterministic output.
type tokenSet struct {
	ordered []string
	members map[string]bool
}

func newTokenSet(labels []string) *tokenSet {
	ts := &tokenSet{members: make(map[string]bool, len(labels))}
	for _, l := range labels {
		ts.add(normalizeToken(l))
	}
	return ts
}

func (ts *tokenSet) add(token string) {
	if token == "" || ts.members[token] {
		return
	}
	ts.members[token] = true
	ts.ordered = append(ts.ordered, token)
}

func (ts *tokenSet) has(token string) bool { return ts.members[token] }

func (ts *tokenSet) len() int { return len(ts.ordered) }

// countIn returns how many of this set's tokens appear in other.
func (ts *tokenSet) countIn(other *tokenSet) int {
	n := 0
	for _, t := range ts.ordered {
		if other.members[t] {
			n++
		}
	}
	return n
}

// intersect returns up to limit tokens of this set that appear in other,
// in this set's insertion order.
func (ts *tokenSet) intersect(other *tokenSet, limit int) []string {
	var out []string
	for _, t := range ts.ordered {
		if !other.members[t] {
			continue
		}
		out = append(out, t)
		if len(out) == limit {
			break
		}
	}
	return out
}
