package tone

import (
	"testing"
)

var allLabels = map[string]bool{
	Enthusiastic: true,
	Positive:     true,
	Concerned:    true,
	Thoughtful:   true,
	Curious:      true,
	Supportive:   true,
	Encouraging:  true,
	Analytical:   true,
	Balanced:     true,
}

func TestClassify_Labels(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"strong positive", "I love this amazing day", Enthusiastic},
		{"mild positive", "cool", Positive},
		{"strong negative", "this is terrible and awful", Concerned},
		{"mild negative", "sorry about that", Thoughtful},
		{"repeated punctuation", "really???", Curious},
		{"double exclamation", "do it now!!", Curious},
		{"help seeking", "can you explain that to me", Supportive},
		{"praise at zero score", "cool, sorry", Encouraging},
		{"reflective filler", "hmm that is odd", Analytical},
		{"default", "the weather report for tomorrow", Balanced},
		{"empty", "", Balanced},
	}

	c := NewClassifier()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := c.Classify(tc.input)
			if result != tc.expected {
				t.Errorf("Classify(%q): expected %q, got %q", tc.input, tc.expected, result)
			}
		})
	}
}

// Rule order is part of the contract: the punctuation check outranks the
// help-seeking check when both regexes match a zero-score input.
func TestClassify_RegexPrecedence(t *testing.T) {
	c := NewClassifier()

	result := c.Classify("can you??")
	if result != Curious {
		t.Errorf("Expected punctuation rule to win, got %q", result)
	}
}

func TestClassify_AlwaysInLabelSet(t *testing.T) {
	inputs := []string{
		"", "hello", "why is the sky blue", "I hate everything!!", "🙂",
		"help help help", "wow wow wow", "a b c d e f g", "????", "ok",
	}

	c := NewClassifier()
	for _, input := range inputs {
		label := c.Classify(input)
		if !allLabels[label] {
			t.Errorf("Classify(%q) returned unknown label %q", input, label)
		}
	}
}

func TestClassify_Pure(t *testing.T) {
	c := NewClassifier()

	first := c.Classify("can you help me learn math")
	for i := 0; i < 5; i++ {
		if got := c.Classify("can you help me learn math"); got != first {
			t.Fatalf("Classify is not deterministic: %q then %q", first, got)
		}
	}
}
