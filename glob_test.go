package cache

import "testing"

// The matcher is unexported, so this test lives inside the package.
func TestMatchGlob(t *testing.T) {
	cases := []struct {
		pattern string
		s       string
		want    bool
	}{
		{"user:*", "user:1", true},
		{"user:*", "user:", true},
		{"user:*", "session:1", false},
		{"*", "", true},
		{"*", "anything", true},
		{"", "", true},
		{"", "x", false},
		{"user:?", "user:1", true},
		{"user:?", "user:12", false},
		{"user:?", "user:", false},
		{"*:analysis", "persona:abc:analysis", true},
		{"*:analysis", "persona:abc:validation", false},
		{"a*b*c", "aXXbYYc", true},
		{"a*b*c", "abc", true},
		{"a*b*c", "acb", false},
		{"*persona*", "global persona cache", true},
		{"??", "ab", true},
		{"??", "a", false},
		{"literal", "literal", true},
		{"literal", "litera1", false},
		// '*' must also match across characters that path globs treat
		// specially; keys are opaque.
		{"a*c", "a/b/c", true},
		{"a[b]c", "abc", false}, // '[' is not special here
	}

	for _, tc := range cases {
		if got := matchGlob(tc.pattern, tc.s); got != tc.want {
			t.Errorf("matchGlob(%q, %q) = %v, want %v", tc.pattern, tc.s, got, tc.want)
		}
	}
}
