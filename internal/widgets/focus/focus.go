// Package focus moves keyboard focus through a trapped set of controls.
package focus

// Next moves focus through n controls, wrapping at both ends
func Next(current, n int, backward bool) int {
	if n <= 0 {
		return 0
	}
	if backward {
		return (current - 1 + n) % n
	}
	return (current + 1) % n
}
