package tone

import (
	"regexp"
	"strings"
)

// Labels the classifier can produce. Classify always returns one of these.
const (
	Enthusiastic = "enthusiastic"
	Positive     = "positive"
	Concerned    = "concerned"
	Thoughtful   = "thoughtful"
	Curious      = "curious"
	Supportive   = "supportive"
	Encouraging  = "encouraging"
	Analytical   = "analytical"
	Balanced     = "balanced"
)

// defaultLexicon maps lowercase tokens to sentiment valence, AFINN-style.
var defaultLexicon = map[string]int{
	// positive
	"amazing": 4, "awesome": 4, "fantastic": 4, "wonderful": 4, "excellent": 3,
	"love": 3, "loved": 3, "great": 3, "happy": 3, "excited": 3, "thrilled": 5,
	"brilliant": 4, "delighted": 3, "joy": 3, "fun": 4, "best": 3, "perfect": 3,
	"beautiful": 3, "good": 3, "nice": 3, "cool": 1, "glad": 3, "like": 2,
	"thanks": 2, "thank": 2, "helpful": 2, "enjoy": 2, "enjoyed": 2, "yay": 3,
	"win": 4, "winning": 4, "smile": 2, "hope": 2, "interesting": 2, "better": 2,
	"super": 3, "sweet": 2, "wow": 4, "impressive": 3, "cozy": 2, "calm": 2,
	// negative
	"bad": -3, "terrible": -3, "awful": -3, "horrible": -3, "hate": -3,
	"hated": -3, "sad": -2, "unhappy": -2, "angry": -3, "furious": -3,
	"annoyed": -2, "annoying": -2, "frustrated": -2, "frustrating": -2,
	"upset": -2, "worried": -3, "worry": -3, "scared": -2, "afraid": -2,
	"anxious": -2, "cry": -1, "crying": -2, "lost": -3, "alone": -2,
	"lonely": -2, "tired": -2, "sick": -2, "hurt": -2, "pain": -2, "fail": -2,
	"failed": -2, "failing": -2, "broken": -1, "wrong": -2, "worse": -3,
	"worst": -3, "stressed": -2, "stress": -1, "confused": -2, "problem": -2,
	"problems": -2, "stuck": -2, "miss": -2, "sorry": -1, "no": -1,
}

var tokenPattern = regexp.MustCompile(`[a-z']+`)

// Classifier assigns a coarse tone label to user text using a fixed lexical
// score plus ordered regex heuristics.
type Classifier struct {
	lexicon       map[string]int
	rePunctuation *regexp.Regexp
	reHelp        *regexp.Regexp
	rePraise      *regexp.Regexp
	reReflective  *regexp.Regexp
}

// NewClassifier builds a classifier over the built-in lexicon. The table is
// immutable for the classifier's lifetime.
func NewClassifier() *Classifier {
	return &Classifier{
		lexicon:       defaultLexicon,
		rePunctuation: regexp.MustCompile(`\?{2,}|!{2,}`),
		reHelp:        regexp.MustCompile(`(?i)\b(help|please|can you|how to)\b`),
		rePraise:      regexp.MustCompile(`(?i)\b(wow|cool|awesome|amazing)\b`),
		reReflective:  regexp.MustCompile(`(?i)\b(hmm|interesting|curious)\b`),
	}
}

// Classify maps text to exactly one tone label. The rule order is part of the
// contract: score thresholds first, then regex checks in fixed priority when
// the lexical score is zero.
func (c *Classifier) Classify(text string) string {
	score := c.score(text)

	switch {
	case score > 2:
		return Enthusiastic
	case score > 0:
		return Positive
	case score < -2:
		return Concerned
	case score < 0:
		return Thoughtful
	}

	switch {
	case c.rePunctuation.MatchString(text):
		return Curious
	case c.reHelp.MatchString(text):
		return Supportive
	case c.rePraise.MatchString(text):
		return Encouraging
	case c.reReflective.MatchString(text):
		return Analytical
	}

	return Balanced
}

func (c *Classifier) score(text string) int {
	total := 0
	for _, token := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		total += c.lexicon[token]
	}
	return total
}
