package ai

import (
	"testing"
)

func TestUnmarshalFlexible(t *testing.T) {
	type concept struct {
		Name string `json:"name"`
		Type string `json:"type,omitempty"`
	}

	tests := []struct {
		name  string
		input string
		want  concept
	}{
		{
			name:  "valid json object",
			input: `{"name":"Bailey lemma","type":"theorem"}`,
			want:  concept{Name: "Bailey lemma", Type: "theorem"},
		},
		{
			name:  "unquoted key and single quotes",
			input: `{name: 'Bailey lemma'}`,
			want:  concept{Name: "Bailey lemma"},
		},
		{
			name:  "trailing comma",
			input: `{"name":"Bailey lemma",}`,
			want:  concept{Name: "Bailey lemma"},
		},
		{
			name:  "truncated object",
			input: `{"name":"Bailey lemma`,
			want:  concept{Name: "Bailey lemma"},
		},
		{
			name:  "double-encoded object",
			input: `"{\"name\": \"Bailey lemma\"}"`,
			want:  concept{Name: "Bailey lemma"},
		},
		{
			name:  "duplicate leading brace",
			input: "{\n{\n  \"name\": \"Bailey lemma\"\n}\n",
			want:  concept{Name: "Bailey lemma"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got concept
			if err := UnmarshalFlexible(tc.input, &got); err != nil {
				t.Fatalf("UnmarshalFlexible() error = %v", err)
			}
			if got != tc.want {
				t.Fatalf("UnmarshalFlexible() got = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestUnmarshalFlexibleArray(t *testing.T) {
	type concept struct {
		Name string `json:"name"`
	}

	input := `[{name:'A'},{name:'B',}]`
	var got []concept
	if err := UnmarshalFlexible(input, &got); err != nil {
		t.Fatalf("UnmarshalFlexible() error = %v", err)
	}
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "B" {
		t.Fatalf("UnmarshalFlexible() got = %+v, want two concepts A,B", got)
	}
}

func TestUnmarshalFlexibleUnrecoverable(t *testing.T) {
	type concept struct {
		Name string `json:"name"`
	}

	var got concept
	if err := UnmarshalFlexible("", &got); err == nil {
		t.Fatal("UnmarshalFlexible(\"\") expected error, got nil")
	}
}

func TestGenerateSchema(t *testing.T) {
	type inner struct {
		Name string `json:"name"`
	}
	type outer struct {
		Concepts []inner `json:"concepts"`
	}

	for _, value := range []any{outer{}, &outer{}} {
		schema := GenerateSchema(value)
		if schema == nil {
			t.Fatal("GenerateSchema() returned nil")
		}
	}
}
