package analysis

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Keyword sets for note scanning. Matching is substring membership over
// the NFC-normalized, lower-cased note text. Heuristic by design: false
// positives and negatives are expected and acceptable.
var (
	sleepWords = []string{"sleep", "bed", "rest", "tired", "exhausted", "night"}

	avoidanceWords = []string{"soon", "promise", "later", "just", "one more", "almost", "will", "going to", "about to"}

	excitementWords = []string{"excited", "wired", "can't stop", "too much", "hyper", "energized", "buzz"}

	distressWords = []string{"ugh", "fuck", "shit", "damn", "hate", "awful", "terrible", "worst", "dying", "dead", "kill me", "help", "drowning", "overwhelm", "breaking", "broken", "crash", "burned", "burnt", "empty", "nothing left"}

	urgencyWords = []string{"need to", "have to", "must", "should", "can't stop"}

	selfCriticalWords = []string{"stupid", "idiot", "shouldn't", "failed", "weak", "pathetic"}

	restorationWords = []string{"rested", "restored", "recharged", "recovered", "better", "relief", "relaxed", "peaceful", "calm", "slept", "nap", "break"}

	accomplishmentWords = []string{"finished", "completed", "done", "accomplished", "achieved", "finally", "made it", "did it", "success", "worked", "won", "nailed"}

	boundaryWords = []string{"said no", "declined", "refused", "set a boundary", "protected", "didn't take", "let go", "put down", "not my", "their problem", "walked away"}
)

// normalizeNote lowers and NFC-normalizes note text so keyword matching
// is stable across composed/decomposed Unicode input.
func normalizeNote(s string) string {
	return norm.NFC.String(strings.ToLower(s))
}

// containsAny reports whether any keyword occurs as a substring of text.
func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

// isLateNight reports whether an hour of day falls in the late-night
// band: 23:00 or later, or before 05:00.
func isLateNight(hour int) bool {
	return hour >= 23 || hour < 5
}
