package rank

import (
	"testing"

	"github.com/MrWong99/lexirank/internal/lingua"
)

func TestCategorize(t *testing.T) {
	t.Parallel()
	c := NewCategorizer(lingua.NewEnglish())

	tests := []struct {
		term string
		want Category
	}{
		// Pattern families.
		{"framework", CategoryTech},
		{"api", CategoryTech},
		{"exception", CategoryProblem},
		{"broken", CategoryProblem},
		{"dataset", CategoryData},
		{"vector", CategoryData},
		{"meeting", CategoryEvent},
		{"schedule", CategoryEvent},
		{"tokenization", CategoryConcept},
		{"algorithm", CategoryConcept},

		// Verb part of speech.
		{"swim", CategoryAction},
		{"create", CategoryAction},

		// Rule order: "debug" contains "bug", so the error pattern fires
		// before the verb check.
		{"debug", CategoryProblem},
		// "javascript" matches both tech patterns; tech is checked first.
		{"javascript", CategoryTech},

		// Noun fallback.
		{"ocean", CategoryConcept},
		{"sand", CategoryConcept},

		// Absolute fallback.
		{"", CategoryConcept},
	}

	for _, tc := range tests {
		tc := tc
		name := tc.term
		if name == "" {
			name = "empty"
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			if got := c.Categorize(tc.term); got != tc.want {
				t.Errorf("Categorize(%q) = %q, want %q", tc.term, got, tc.want)
			}
		})
	}
}

func TestCategorize_Totality(t *testing.T) {
	t.Parallel()
	c := NewCategorizer(lingua.NewEnglish())

	inputs := []string{
		"swim", "xylophone", "zzzz", "42", "-", "swimming pool", "qwerty",
		"beach", "comfortable", "quickly",
	}
	for _, term := range inputs {
		got := c.Categorize(term)
		if !ValidCategory(got) {
			t.Errorf("Categorize(%q) = %q, not a valid category", term, got)
		}
	}
}
