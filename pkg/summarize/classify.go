// Package summarize provides the best-effort background helpers fired at
// the end of every cycle: the rolling claim summary and the claim change
// detector. Neither may affect the cycle result.
package summarize

import (
	"strings"
	"unicode"

	"github.com/dialectic-dev/dialectic/pkg/blackboard"
)

// Transition kinds recorded by the change detector.
const (
	TransitionRefinement   = "refinement"
	TransitionPivot        = "pivot"
	TransitionDeath        = "death"
	TransitionResurrection = "resurrection"
	TransitionGraduation   = "graduation"
)

// refinementOverlap is the token-overlap ratio at or above which a claim
// replacement counts as a refinement rather than a pivot.
const refinementOverlap = 0.5

// Classify names the transition between two claim states at a cycle
// boundary.
func Classify(fromClaim, toClaim string, toSupport float64) string {
	switch {
	case fromClaim == "" && toClaim != "":
		return TransitionResurrection
	case fromClaim != "" && toClaim == "":
		return TransitionDeath
	case toSupport >= blackboard.GraduationThreshold:
		return TransitionGraduation
	case overlap(fromClaim, toClaim) >= refinementOverlap:
		return TransitionRefinement
	default:
		return TransitionPivot
	}
}

// overlap computes the Jaccard token overlap of two claims.
func overlap(a, b string) float64 {
	ta, tb := tokenSet(a), tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	common := 0
	for tok := range ta {
		if tb[tok] {
			common++
		}
	}
	union := len(ta) + len(tb) - common
	return float64(common) / float64(union)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}) {
		set[tok] = true
	}
	return set
}
