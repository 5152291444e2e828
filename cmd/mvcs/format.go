package main

// shortID truncates a commit id to a display-friendly prefix, without
// panicking on the short deterministic ids used in tests.
func shortID(id string) string {
	if len(id) <= 12 {
		return id
	}
	return id[:12]
}
