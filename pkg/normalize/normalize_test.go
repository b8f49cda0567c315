package normalize

import "testing"

func TestName(t *testing.T) {
	n := NewNormalizer(DefaultSynonyms)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "lowercase and trim",
			in:   "  Bailey Lemma ",
			want: "bailey lemma",
		},
		{
			name: "synonym lookup",
			in:   "Bailey's lemma",
			want: "bailey lemma",
		},
		{
			name: "plural variant",
			in:   "Schur polynomial",
			want: "schur functions",
		},
		{
			name: "abbreviation",
			in:   "CPPs",
			want: "cylindric partitions",
		},
		{
			name: "unknown name passes through",
			in:   "Durfee square",
			want: "durfee square",
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Name(tt.in); got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNameIdempotent(t *testing.T) {
	n := NewNormalizer(DefaultSynonyms)

	inputs := []string{
		"Bailey's Lemma",
		"RR identity",
		"  Macdonald polynomial  ",
		"plane partition",
		"something unmapped",
		"",
	}
	for k := range DefaultSynonyms {
		inputs = append(inputs, k)
	}

	for _, in := range inputs {
		once := n.Name(in)
		twice := n.Name(once)
		if once != twice {
			t.Errorf("Name not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestNameIdempotentWithChainedTable(t *testing.T) {
	// A table whose value is itself a key must still normalize to a fixed
	// point in a single call.
	n := NewNormalizer(map[string]string{
		"a": "b",
		"b": "c",
	})

	if got := n.Name("a"); got != "c" {
		t.Errorf("Name(\"a\") = %q, want \"c\"", got)
	}
	if got := n.Name(n.Name("a")); got != "c" {
		t.Errorf("Name(Name(\"a\")) = %q, want \"c\"", got)
	}
}

func TestNameNilTable(t *testing.T) {
	n := NewNormalizer(nil)
	if got := n.Name(" Mixed Case "); got != "mixed case" {
		t.Errorf("Name() = %q, want %q", got, "mixed case")
	}
}
