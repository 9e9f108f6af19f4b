package noscam

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Message is a fingerprinted message, immutable once constructed.
// Two messages are compared by value.
type Message struct {
	ID          uint64   `json:"id"`
	ChannelID   uint64   `json:"channel_id"`
	Content     string   `json:"content"`
	ImageHashes []uint64 `json:"image_hashes,omitempty"` // perceptual hashes, sorted with duplicates collapsed
}

// NewMessage makes a fingerprinted message, normalizing the image hash set:
// duplicates collapse and order of hashes is irrelevant.
func NewMessage(id, channelID uint64, content string, hashes []uint64) Message {
	return Message{ID: id, ChannelID: channelID, Content: content, ImageHashes: normalizeHashes(hashes)}
}

func (m Message) String() string {
	return fmt.Sprintf("id:%d, channel:%d, content:%q, images:%d", m.ID, m.ChannelID, m.Content, len(m.ImageHashes))
}

// imageKey is a canonical representation of the image hash set, empty string
// for a message without qualifying images. Used for set equality checks.
func (m Message) imageKey() string {
	if len(m.ImageHashes) == 0 {
		return ""
	}
	parts := make([]string, len(m.ImageHashes))
	for i, h := range m.ImageHashes {
		parts[i] = strconv.FormatUint(h, 16)
	}
	return strings.Join(parts, ",")
}

func normalizeHashes(hashes []uint64) []uint64 {
	if len(hashes) == 0 {
		return nil
	}
	seen := make(map[uint64]struct{}, len(hashes))
	res := make([]uint64, 0, len(hashes))
	for _, h := range hashes {
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		res = append(res, h)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// CheckResult is an outcome of a single classifier predicate.
type CheckResult struct {
	Name      string `json:"name"`
	Triggered bool   `json:"triggered"`
	Details   string `json:"details,omitempty"`
}

func (r CheckResult) String() string {
	if r.Details == "" {
		return fmt.Sprintf("%s: %v", r.Name, r.Triggered)
	}
	return fmt.Sprintf("%s: %v, %s", r.Name, r.Triggered, r.Details)
}

// ResultsToString converts a slice of check results to a single string
func ResultsToString(checks []CheckResult) string {
	elems := []string{}
	for _, c := range checks {
		elems = append(elems, "{"+c.String()+"}")
	}
	return "[" + strings.Join(elems, ", ") + "]"
}
