package reading

import "strings"

// Note-theme keyword sets for the reading stages. Deliberately smaller
// than the pattern analyzer's sets - the reading only needs the broad
// theme, not per-flag resolution.
var (
	readingDistressWords = []string{"ugh", "fuck", "shit", "damn", "hate", "awful", "terrible", "worst", "dying", "dead", "help", "drowning", "overwhelm", "breaking", "broken", "empty"}

	readingRestorationWords = []string{"rested", "restored", "better", "relief", "calm", "peaceful", "recovered", "slept"}

	readingBoundaryWords = []string{"said no", "declined", "boundary", "refused", "not my", "put down", "let go"}

	readingUrgencyWords = []string{"need to", "have to", "must", "should", "can't stop"}
)

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
