package deref

import "golang.org/x/text/cases"

// suggestName picks the most plausible intended component name for one
// that failed to resolve: an exact case-insensitive match wins, otherwise
// the closest candidate within an edit distance of half the name's length.
// Returns "" when nothing is close enough.
func suggestName(name string, candidates []string) string {
	if name == "" || len(candidates) == 0 {
		return ""
	}
	// Casers are stateful, so build one per call.
	fold := cases.Fold()
	folded := fold.String(name)
	for _, c := range candidates {
		if fold.String(c) == folded {
			return c
		}
	}
	best := ""
	bestDist := len(name)/2 + 1
	for _, c := range candidates {
		if d := editDistance(folded, fold.String(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance over runes.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
