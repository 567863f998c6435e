package interpreter

import "github.com/agnivade/levenshtein"

// Returns the candidate closest to `target` if it is similar enough to be a likely typo.
// Ties are resolved in favor of the candidate which comes first.
func closestMatch(target string, candidates []string) (string, bool) {
	best := ""
	bestDistance := -1

	for _, candidate := range candidates {
		distance := levenshtein.ComputeDistance(target, candidate)
		if bestDistance == -1 || distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}

	if bestDistance == -1 || bestDistance > maxTypoDistance(target) {
		return "", false
	}
	return best, true
}

func maxTypoDistance(target string) int {
	if len(target) <= 3 {
		return 1
	}
	return len(target) / 3
}
