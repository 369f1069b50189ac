package agent

import "strings"

// transitionalPrefixes are conclusion indicators. An Explorer claim opening
// with one is stripped before acceptance; a Critic premise consisting of one
// is rejected outright. Order matters: longer prefixes first so "as a result"
// wins over "as".
var transitionalPrefixes = []string{
	"it follows that",
	"in conclusion",
	"as a result",
	"consequently",
	"accordingly",
	"therefore",
	"hence",
	"thus",
	"so",
}

// StripTransitionalPrefix removes a leading conclusion indicator (plus any
// following comma and whitespace) from a claim. Repeated prefixes are
// stripped until none remains.
func StripTransitionalPrefix(claim string) string {
	s := strings.TrimSpace(claim)
	for {
		stripped := false
		lower := strings.ToLower(s)
		for _, p := range transitionalPrefixes {
			if !strings.HasPrefix(lower, p) {
				continue
			}
			rest := s[len(p):]
			// Must end at a word boundary: "software" is not "so".
			if rest != "" && rest[0] != ' ' && rest[0] != ',' {
				continue
			}
			s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest), ","))
			stripped = true
			break
		}
		if !stripped || s == "" {
			return s
		}
	}
}

// IsConclusionIndicator reports whether a premise is itself a transitional
// prefix (e.g. a Critic targeting "therefore"), which makes it unattackable.
func IsConclusionIndicator(premise string) bool {
	p := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(premise), ",")))
	for _, t := range transitionalPrefixes {
		if p == t {
			return true
		}
	}
	return false
}
