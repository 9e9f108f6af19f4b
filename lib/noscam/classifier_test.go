package noscam

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSame(t *testing.T) {
	tbl := []struct {
		vals []string
		res  bool
	}{
		{[]string{}, false},
		{[]string{"x"}, false},
		{[]string{"x", "x", "x"}, true},
		{[]string{"x", "x", "y"}, false},
		{[]string{"", ""}, false},
		{[]string{"", "", ""}, false},
	}
	for i, tt := range tbl {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			assert.Equal(t, tt.res, allSame(tt.vals))
		})
	}
}

func TestAllDifferent(t *testing.T) {
	tbl := []struct {
		vals []uint64
		res  bool
	}{
		{[]uint64{}, true},
		{[]uint64{1}, true},
		{[]uint64{1, 2, 3}, true},
		{[]uint64{1, 1, 2}, false},
	}
	for i, tt := range tbl {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			assert.Equal(t, tt.res, allDifferent(tt.vals))
		})
	}
}

func TestContainsURL(t *testing.T) {
	tbl := []struct {
		content string
		res     bool
	}{
		{"check this out http://scam.example", true},
		{"https://scam.example/path?x=1", true},
		{"no links here", false},
		{"", false},
		{"ftp://old.example", false},
		{"http:// space right after scheme", false},
	}
	for i, tt := range tbl {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			assert.Equal(t, tt.res, containsURL(tt.content))
		})
	}
}

func TestClassifyShortWindow(t *testing.T) {
	msg := NewMessage(1, 100, "check http://scam.example", nil)
	for _, window := range [][]Message{nil, {msg}, {msg, msg}} {
		d := classify(window, 3)
		assert.False(t, d.Spam, "window of %d is never spam", len(window))
		assert.Empty(t, d.Matched)
	}
}

func TestClassifyFullWindow(t *testing.T) {
	tbl := []struct {
		name   string
		window []Message
		spam   bool
	}{
		{
			name: "same url content in distinct channels",
			window: []Message{
				NewMessage(1, 100, "check this out http://scam.example", nil),
				NewMessage(2, 101, "check this out http://scam.example", nil),
				NewMessage(3, 102, "check this out http://scam.example", nil),
			},
			spam: true,
		},
		{
			name: "same content without url",
			window: []Message{
				NewMessage(1, 100, "hello there", nil),
				NewMessage(2, 101, "hello there", nil),
				NewMessage(3, 102, "hello there", nil),
			},
			spam: false,
		},
		{
			name: "same url content in the same channel",
			window: []Message{
				NewMessage(1, 100, "check this out http://scam.example", nil),
				NewMessage(2, 100, "check this out http://scam.example", nil),
				NewMessage(3, 100, "check this out http://scam.example", nil),
			},
			spam: false,
		},
		{
			name: "two of three channels repeat",
			window: []Message{
				NewMessage(1, 100, "check this out http://scam.example", nil),
				NewMessage(2, 101, "check this out http://scam.example", nil),
				NewMessage(3, 100, "check this out http://scam.example", nil),
			},
			spam: false,
		},
		{
			name: "same images with different text, distinct channels",
			window: []Message{
				NewMessage(1, 100, "look", []uint64{0xbeef}),
				NewMessage(2, 101, "at this", []uint64{0xbeef}),
				NewMessage(3, 102, "wow", []uint64{0xbeef}),
			},
			spam: true,
		},
		{
			name: "same images in the same channel",
			window: []Message{
				NewMessage(1, 100, "look", []uint64{0xbeef}),
				NewMessage(2, 100, "at this", []uint64{0xbeef}),
				NewMessage(3, 100, "wow", []uint64{0xbeef}),
			},
			spam: false,
		},
		{
			name: "different images, no url",
			window: []Message{
				NewMessage(1, 100, "hello there", []uint64{0xbeef}),
				NewMessage(2, 101, "hello there", []uint64{0xdead}),
				NewMessage(3, 102, "hello there", []uint64{0xf00d}),
			},
			spam: false,
		},
		{
			name: "all empty image sets never count as same images",
			window: []Message{
				NewMessage(1, 100, "hi", nil),
				NewMessage(2, 101, "hi", nil),
				NewMessage(3, 102, "hi", nil),
			},
			spam: false,
		},
		{
			name: "all empty content never counts as same content",
			window: []Message{
				NewMessage(1, 100, "", nil),
				NewMessage(2, 101, "", nil),
				NewMessage(3, 102, "", nil),
			},
			spam: false,
		},
		{
			name: "image set order and duplicates irrelevant",
			window: []Message{
				NewMessage(1, 100, "a", []uint64{1, 2}),
				NewMessage(2, 101, "b", []uint64{2, 1}),
				NewMessage(3, 102, "c", []uint64{1, 2, 2}),
			},
			spam: true,
		},
		{
			name: "url text match plus differing images still spam",
			window: []Message{
				NewMessage(1, 100, "go http://scam.example", []uint64{1}),
				NewMessage(2, 101, "go http://scam.example", []uint64{2}),
				NewMessage(3, 102, "go http://scam.example", []uint64{3}),
			},
			spam: true,
		},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			d := classify(tt.window, 3)
			assert.Equal(t, tt.spam, d.Spam)
			if tt.spam {
				require.Len(t, d.Matched, 3, "full window handed to remediation")
				assert.Equal(t, tt.window, d.Matched)
			} else {
				assert.Empty(t, d.Matched)
			}
			assert.Len(t, d.Checks, 4)
		})
	}
}

func TestClassifyChecksReported(t *testing.T) {
	window := []Message{
		NewMessage(1, 100, "check this out http://scam.example", nil),
		NewMessage(2, 101, "check this out http://scam.example", nil),
		NewMessage(3, 102, "check this out http://scam.example", nil),
	}
	d := classify(window, 3)
	require.True(t, d.Spam)

	byName := map[string]bool{}
	for _, c := range d.Checks {
		byName[c.Name] = c.Triggered
	}
	assert.True(t, byName["same-content"])
	assert.True(t, byName["different-channels"])
	assert.True(t, byName["all-contain-url"])
	assert.False(t, byName["same-images"])
}
