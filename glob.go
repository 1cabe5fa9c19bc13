package cache

/*
This file implements shell-style glob matching for pattern invalidation:

	'*'  matches any run of characters, including the empty run
	'?'  matches exactly one character

Nothing else is special. In particular, keys are opaque strings, so there
is no path-separator handling and no character classes. That rules out
path.Match, whose '*' refuses to cross '/' and whose '[' opens a class.
*/

// matchGlob reports whether s matches pattern.
//
// Iterative with single-star backtracking: when a '*' is seen we remember
// where, try to match the rest, and on a dead end rewind to the star and
// let it swallow one more character. Worst case O(len(s)*len(pattern)),
// which is fine for the linear scans InvalidatePattern performs.
func matchGlob(pattern, s string) bool {
	var (
		p, i         int
		star, anchor = -1, 0
	)

	for i < len(s) {
		switch {
		case p < len(pattern) && (pattern[p] == '?' || pattern[p] == s[i]):
			p++
			i++
		case p < len(pattern) && pattern[p] == '*':
			star = p
			anchor = i
			p++
		case star >= 0:
			// Dead end: the last '*' eats one more character.
			anchor++
			p = star + 1
			i = anchor
		default:
			return false
		}
	}

	// Only trailing stars may remain in the pattern.
	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}
