package normalize

import "strings"

// Normalizer maps free-text concept names to canonical identifiers.
// It lowercases and trims the input, then applies an injected synonym
// table. The table is read-only configuration; a Normalizer is safe for
// concurrent use.
type Normalizer struct {
	synonyms map[string]string
}

// NewNormalizer creates a Normalizer backed by the given synonym table.
// The table maps lowercased surface forms to their canonical form. A nil
// table is allowed and yields plain lowercase/trim normalization.
func NewNormalizer(synonyms map[string]string) *Normalizer {
	table := make(map[string]string, len(synonyms))
	for k, v := range synonyms {
		table[strings.ToLower(strings.TrimSpace(k))] = strings.ToLower(strings.TrimSpace(v))
	}

	// Resolve chains so every mapped value is a fixed point of the table.
	// This is what makes Name idempotent for arbitrary tables.
	for k, v := range table {
		seen := map[string]bool{k: true}
		for {
			next, ok := table[v]
			if !ok || next == v || seen[v] {
				break
			}
			seen[v] = true
			v = next
		}
		table[k] = v
	}

	return &Normalizer{synonyms: table}
}

// Name returns the canonical form of a raw concept name. Normalization is
// idempotent: Name(Name(x)) == Name(x) as long as the synonym table maps
// every value onto itself or another fixed point, which NewNormalizer
// guarantees by lowercasing both sides.
func (n *Normalizer) Name(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := n.synonyms[name]; ok {
		return canonical
	}
	return name
}
