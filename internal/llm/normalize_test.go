package llm

import (
	"encoding/json"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		wantKind OutputKind
		wantText string
	}{
		{"object", `{"a":1}`, KindStructured, ""},
		{"array", `[1,2]`, KindStructured, ""},
		{"json string", `"hello there"`, KindFreeform, "hello there"},
		{"plain text", `just some prose`, KindFreeform, "just some prose"},
		{"fenced json", "```json\n{\"a\":1}\n```", KindStructured, ""},
		{"fenced text", "```\nnot json at all\n```", KindFreeform, "not json at all"},
		{"malformed json", `{"a":`, KindFreeform, `{"a":`},
		{"whitespace padding", "  {\"a\":1}  ", KindStructured, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := Normalize(&Response{Content: json.RawMessage(tc.content)})
			if out.Kind != tc.wantKind {
				t.Fatalf("kind = %q, want %q", out.Kind, tc.wantKind)
			}
			if tc.wantKind == KindStructured {
				if !json.Valid(out.Structured) {
					t.Errorf("structured content not valid JSON: %s", out.Structured)
				}
			} else if out.Freeform != tc.wantText {
				t.Errorf("freeform = %q, want %q", out.Freeform, tc.wantText)
			}
		})
	}
}
