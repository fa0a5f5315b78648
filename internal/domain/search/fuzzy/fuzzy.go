// Package fuzzy implements Levenshtein edit distance and the length-adaptive
// acceptance thresholds shared by category resolution and listing matching.
package fuzzy

// Distance returns the minimum number of single-character insertions,
// deletions, or substitutions needed to transform a into b.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	matrix := make([][]int, len(ra)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(rb)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
				continue
			}
			matrix[i][j] = 1 + min(
				matrix[i-1][j],   // deletion
				matrix[i][j-1],   // insertion
				matrix[i-1][j-1], // substitution
			)
		}
	}

	return matrix[len(ra)][len(rb)]
}

// MaxResolveDistance returns the largest edit distance still accepted when
// resolving a user-supplied string of the given length against a canonical
// key. Short strings tolerate almost no edits before becoming a different
// word; long ones can absorb a couple of typos.
//
// The length argument is the longer of the two compared strings.
func MaxResolveDistance(length int) int {
	switch {
	case length <= 3:
		return 1
	case length <= 6:
		return 2
	default:
		return ceilDiv(length*35, 100)
	}
}

// MaxWordDistance returns the largest edit distance at which a query token is
// still considered a match for a word: ceil(0.35 x max(len(word), len(token))).
func MaxWordDistance(word, tok string) int {
	length := len(word)
	if len(tok) > length {
		length = len(tok)
	}
	return ceilDiv(length*35, 100)
}

// BestWordDistance returns the minimum edit distance between tok and any of
// the given words. Returns -1 when words is empty.
func BestWordDistance(words []string, tok string) int {
	best := -1
	for _, w := range words {
		d := Distance(w, tok)
		if best < 0 || d < best {
			best = d
			if best == 0 {
				break
			}
		}
	}
	return best
}

// ceilDiv returns ceil(a/b) for positive integers.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
