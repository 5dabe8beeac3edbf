// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "index entry with dot leader and page number",
			input: "- Yusa ................................. 6",
			want:  "Yusa",
		},
		{
			name:  "leading list dash",
			input: "- Atsa wi tikitcha",
			want:  "Atsa wi tikitcha",
		},
		{
			name:  "trailing line reference with colon",
			input: "Jintinkagtamu dekatai : 8",
			want:  "Jintinkagtamu dekatai",
		},
		{
			name:  "trailing bare number",
			input: "Nugka muunta 42",
			want:  "Nugka muunta",
		},
		{
			name:  "dot leader without trailing number",
			input: "Yusa chichame ..........",
			want:  "Yusa chichame",
		},
		{
			name:  "leading bullet",
			input: "• Wika nunak dekatsjai",
			want:  "Wika nunak dekatsjai",
		},
		{
			name:  "leading comma",
			input: ", nuna tusa chichak",
			want:  "nuna tusa chichak",
		},
		{
			name:  "internal whitespace runs collapse",
			input: "atum   chicham \t umiktin",
			want:  "atum chicham umiktin",
		},
		{
			name:  "empty after cleaning",
			input: "- ..... 12",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \t ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Clean output must never keep leading/trailing whitespace, a list marker,
// or a trailing bare digit run, whatever the input.
func TestClean_Invariants(t *testing.T) {
	inputs := []string{
		"- texto con guion",
		"  espacios  por  todas  partes  ",
		"• viñeta con texto largo",
		"frase terminada en numero 123",
		"indice ........ 45",
		", coma inicial y final 9",
		"normal sin nada raro",
	}

	for _, input := range inputs {
		got := Clean(input)
		if got != strings.TrimSpace(got) {
			t.Errorf("Clean(%q) = %q has surrounding whitespace", input, got)
		}
		if strings.HasPrefix(got, "- ") || strings.HasPrefix(got, "•") {
			t.Errorf("Clean(%q) = %q keeps a list marker", input, got)
		}
		fields := strings.Fields(got)
		if len(fields) > 0 {
			last := fields[len(fields)-1]
			if strings.IndexFunc(last, func(r rune) bool { return r < '0' || r > '9' }) == -1 {
				t.Errorf("Clean(%q) = %q ends in a bare digit sequence", input, got)
			}
		}
	}
}
