package llm

import (
	"strings"
	"testing"
)

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"market_overview":"test"}`,
			want:  `{"market_overview":"test"}`,
		},
		{
			name:  "strips json fenced block",
			input: "```json\n{\"market_overview\":\"test\"}\n```",
			want:  `{"market_overview":"test"}`,
		},
		{
			name:  "strips plain fenced block",
			input: "```\n{\"market_overview\":\"test\"}\n```",
			want:  `{"market_overview":"test"}`,
		},
		{
			name:  "extracts JSON from surrounding prose",
			input: "Here is the report:\n{\"market_overview\":\"test\"}\nLet me know if you need more.",
			want:  `{"market_overview":"test"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanJSONResponse(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNarrativeItems(t *testing.T) {
	got := formatNarrativeItems("Crude Oil", "20250307", []NarrativeInput{
		{Title: "OPEC Extends Cuts", Summary: "Cuts extended.", Source: "Reuters", Sentiment: 0.35},
	})

	for _, want := range []string{
		"Asset: Crude Oil",
		"Date: 20250307",
		"1. Headline: OPEC Extends Cuts",
		"Source: Reuters",
		"Sentiment: +0.35",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("formatted prompt missing %q:\n%s", want, got)
		}
	}
}
