package noscam

import (
	"fmt"
	"regexp"
)

var urlRe = regexp.MustCompile(`https?://\S+`)

// classify evaluates the scam predicate over the author's window.
// A window shorter than size is never spam, this gate is absolute and checked
// before any pattern logic. For a full window the rule is:
// different-channels AND ((same-content AND all-contain-url) OR same-images).
// The different-channels gate applies to both branches; don't regroup it.
func classify(window []Message, size int) Decision {
	if len(window) < size {
		return Decision{Checks: []CheckResult{
			{Name: "window", Details: fmt.Sprintf("%d of %d messages, not enough evidence", len(window), size)},
		}}
	}

	contents := make([]string, len(window))
	channels := make([]uint64, len(window))
	imageKeys := make([]string, len(window))
	allURL := true
	for i, m := range window {
		contents[i] = m.Content
		channels[i] = m.ChannelID
		imageKeys[i] = m.imageKey()
		if !containsURL(m.Content) {
			allURL = false
		}
	}

	sameContent := allSame(contents)
	differentChannels := allDifferent(channels)
	sameImages := allSame(imageKeys)
	spam := differentChannels && ((sameContent && allURL) || sameImages)

	checks := []CheckResult{
		{Name: "same-content", Triggered: sameContent},
		{Name: "different-channels", Triggered: differentChannels},
		{Name: "all-contain-url", Triggered: allURL},
		{Name: "same-images", Triggered: sameImages},
	}

	if !spam {
		return Decision{Checks: checks}
	}

	matched := make([]Message, len(window))
	copy(matched, window)
	return Decision{Spam: true, Matched: matched, Checks: checks}
}

// allSame reports whether all values are pairwise identical and the shared
// value is non-zero. False for less than two values: a single message is
// evidentially inconclusive, and a shared empty content (or empty image set)
// never counts as a match.
func allSame[T comparable](vals []T) bool {
	if len(vals) < 2 {
		return false
	}
	var zero T
	if vals[0] == zero {
		return false
	}
	for _, v := range vals[1:] {
		if v != vals[0] {
			return false
		}
	}
	return true
}

// allDifferent reports whether all values are pairwise distinct.
// Vacuously true for zero or one value.
func allDifferent[T comparable](vals []T) bool {
	seen := make(map[T]struct{}, len(vals))
	for _, v := range vals {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
	}
	return true
}

// containsURL reports whether the content has an url-shaped substring,
// http or https scheme followed by non-whitespace.
func containsURL(content string) bool {
	return urlRe.MatchString(content)
}
