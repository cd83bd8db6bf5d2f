package state

import "github.com/sahilm/fuzzy"

// SuggestOwners ranks the known owners against a partial input for
// completion in owner fields. An empty query returns all candidates in
// their given order.
func SuggestOwners(query string, owners []string) []string {
	if query == "" {
		return append([]string(nil), owners...)
	}
	matches := fuzzy.Find(query, owners)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, owners[m.Index])
	}
	return out
}
