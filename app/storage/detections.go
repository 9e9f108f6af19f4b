package storage

import (
	"container/ring"
	"sync"
	"time"

	"github.com/noscam-bot/noscam/lib/noscam"
)

// Detections keeps a bounded in-memory trail of recent positive decisions,
// thread-safe. It is intentionally not persistent, the trail is for operators
// glancing at the web ui and resets on restart.
type Detections struct {
	records *ring.Ring
	size    int
	lock    sync.RWMutex
}

// DetectedScam is a single positive decision with enough context to review it
type DetectedScam struct {
	GuildID    uint64               `json:"guild_id,string"`
	ChannelID  uint64               `json:"channel_id,string"`
	MessageID  uint64               `json:"message_id,string"`
	AuthorID   uint64               `json:"author_id,string"`
	AuthorName string               `json:"author_name"`
	Text       string               `json:"text"`
	Matched    int                  `json:"matched"`
	Checks     []noscam.CheckResult `json:"checks,omitempty"`
	Timestamp  time.Time            `json:"timestamp"`
}

// NewDetections creates a detections trail with up to size records
func NewDetections(size int) *Detections {
	// minimum size is 1
	if size < 1 {
		size = 1
	}
	return &Detections{
		records: ring.New(size),
		size:    size,
	}
}

// Save adds a record to the trail, evicting the oldest one if full
func (d *Detections) Save(rec DetectedScam) {
	d.lock.Lock()
	defer d.lock.Unlock()

	d.records.Value = rec
	d.records = d.records.Next()
}

// Recent returns up to n records, newest first
func (d *Detections) Recent(n int) []DetectedScam {
	if n < 1 {
		return []DetectedScam{}
	}

	d.lock.RLock()
	defer d.lock.RUnlock()

	if n > d.size {
		n = d.size
	}

	all := make([]DetectedScam, 0, d.size)
	d.records.Do(func(v interface{}) {
		if v != nil {
			if rec, ok := v.(DetectedScam); ok {
				all = append(all, rec)
			}
		}
	})

	result := make([]DetectedScam, 0, n)
	for i := len(all) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, all[i])
	}
	return result
}

// Size returns the capacity of the trail
func (d *Detections) Size() int {
	return d.size
}
