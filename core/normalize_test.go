package core

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already canonical",
			input: "westlaw edge",
			want:  "westlaw edge",
		},
		{
			name:  "trademark and case",
			input: "Westlaw Edge™",
			want:  "westlaw edge",
		},
		{
			name:  "curly quotes",
			input: "Shepard’s Citations",
			want:  "shepards citations",
		},
		{
			name:  "em dash dropped like other punctuation",
			input: "Nolo — Legal Encyclopedia",
			want:  "nolo legal encyclopedia",
		},
		{
			name:  "ampersand",
			input: "Trusts & Estates",
			want:  "trusts and estates",
		},
		{
			name:  "symbols and punctuation",
			input: "  HeinOnline® (Law Journal Library)!  ",
			want:  "heinonline law journal library",
		},
		{
			name:  "accents folded",
			input: "Revue Générale de Droit",
			want:  "revue generale de droit",
		},
		{
			name:  "whitespace collapse",
			input: "lexis \t  nexis\n  academic",
			want:  "lexis nexis academic",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "punctuation only",
			input: "!?—™",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Westlaw Edge™",
		"Trusts & Estates",
		"Shepard’s Citations",
		"Revue Générale de Droit",
		"plain text",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q vs %q", input, once, twice)
		}
	}
}

func TestNormalize_CaseInsensitive(t *testing.T) {
	if Normalize("Westlaw Edge™") != Normalize("westlaw edge") {
		t.Errorf("expected %q and %q to normalize equally", "Westlaw Edge™", "westlaw edge")
	}
}

func TestNormalizeTokens(t *testing.T) {
	tokens := NormalizeTokens("Utah Contract-Law!")
	want := []string{"utah", "contractlaw"}
	if len(tokens) != len(want) {
		t.Fatalf("NormalizeTokens() = %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("NormalizeTokens()[%d] = %q, want %q", i, tokens[i], want[i])
		}
	}
}
