// Package noscam implements detection of coordinated cross-channel scam posting.
// It keeps a bounded window of recent messages per (guild, author) pair and flags
// the author when the window shows the same URL-bearing text or the same image set
// posted across distinct channels. The package is platform-agnostic: callers feed
// it raw message data and attachment references, remediation is up to them.
package noscam

import (
	"context"
	"log"
	"net/http"
	"time"
)

// Detector is a cross-channel scam detector, thread-safe.
// It fingerprints inbound messages, tracks them in per-author windows and
// classifies each full window against the scam pattern.
type Detector struct {
	Config
	fp      *fingerprinter
	history *History
}

// Config is a set of parameters for Detector.
type Config struct {
	WindowSize   int           // messages per author window, default 3
	HTTPClient   HTTPClient    // http client to fetch attachments
	HashCacheTTL time.Duration // ttl for attachment hash cache, default 10m
}

// HTTPClient is an interface for http client, satisfied by http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Request is a single inbound message to check.
type Request struct {
	MsgID       uint64       `json:"msg_id"`     // platform message id
	ChannelID   uint64       `json:"channel_id"` // channel the message was posted in
	Content     string       `json:"content"`    // raw text content, may be empty
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment is a reference to a message attachment. Bytes are fetched lazily
// by the fingerprinter, only for attachments passing the image checks.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"` // declared by the platform, may be empty
	URL         string `json:"url"`
}

// Decision is a result of a scam check.
type Decision struct {
	Spam    bool          `json:"spam"`              // true if the window matched the scam pattern
	Matched []Message     `json:"matched,omitempty"` // the full window that triggered, for deletion
	Checks  []CheckResult `json:"checks"`            // per-predicate outcomes
}

// NewDetector makes a new Detector with the given config.
func NewDetector(p Config) *Detector {
	if p.WindowSize <= 0 {
		p.WindowSize = 3
	}
	if p.HTTPClient == nil {
		p.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if p.HashCacheTTL <= 0 {
		p.HashCacheTTL = 10 * time.Minute
	}
	return &Detector{
		Config:  p,
		fp:      newFingerprinter(p.HTTPClient, p.HashCacheTTL),
		history: NewHistory(p.WindowSize),
	}
}

// Check fingerprints the message, appends it to the author's window and
// classifies the updated window. The returned decision carries the full matched
// window on positive classification, so the caller can remove all of it.
func (d *Detector) Check(ctx context.Context, guildID, authorID uint64, req Request) Decision {
	msg := d.fp.fingerprint(ctx, req)
	window := d.history.Add(guildID, authorID, msg)
	res := classify(window, d.WindowSize)
	log.Printf("[DEBUG] checked message %d from %d in guild %d: spam:%v, %s",
		req.MsgID, authorID, guildID, res.Spam, ResultsToString(res.Checks))
	return res
}

// Reset clears the author's window. Called after remediation to avoid
// re-triggering on the same evidence; the author starts fresh.
func (d *Detector) Reset(guildID, authorID uint64) {
	d.history.Clear(guildID, authorID)
}

// Window returns a copy of the author's current window, oldest first.
func (d *Detector) Window(guildID, authorID uint64) []Message {
	return d.history.Window(guildID, authorID)
}
