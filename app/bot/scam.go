package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/noscam-bot/noscam/lib/noscam"
)

//go:generate moq --out mocks/detector.go --pkg mocks --skip-ensure --with-resets . Detector

// DefaultSuspendDuration is how long a detected scammer is timed out
const DefaultSuspendDuration = 15 * time.Minute

// ScamFilter checks if an author's recent messages form a cross-channel scam
// pattern using noscam.Detector. On a positive decision it clears the author's
// window right away, so remediation failures can't re-trigger on the same evidence.
type ScamFilter struct {
	detector Detector
	params   ScamConfig
}

// ScamConfig is a full set of parameters for the scam filter
type ScamConfig struct {
	SuspendDuration time.Duration // how long to time out a detected author
	Dry             bool          // dry mode, report but don't act
}

// Detector is a scam detector interface
type Detector interface {
	Check(ctx context.Context, guildID, authorID uint64, req noscam.Request) noscam.Decision
	Reset(guildID, authorID uint64)
	Window(guildID, authorID uint64) []noscam.Message
}

// NewScamFilter creates new scam filter
func NewScamFilter(detector Detector, params ScamConfig) *ScamFilter {
	if params.SuspendDuration <= 0 {
		params.SuspendDuration = DefaultSuspendDuration
	}
	return &ScamFilter{detector: detector, params: params}
}

// OnMessage feeds the message to the detector and shapes the remediation
// response for a positive decision.
func (s *ScamFilter) OnMessage(ctx context.Context, msg Message) (response Response) {
	if msg.From.ID == 0 { // don't check system messages
		return Response{}
	}

	req := noscam.Request{MsgID: msg.ID, ChannelID: msg.ChannelID, Content: msg.Text}
	for _, att := range msg.Attachments {
		req.Attachments = append(req.Attachments,
			noscam.Attachment{Filename: att.Filename, ContentType: att.ContentType, URL: att.URL})
	}

	decision := s.detector.Check(ctx, msg.GuildID, msg.From.ID, req)
	displayUsername := DisplayName(msg)
	if !decision.Spam {
		log.Printf("[DEBUG] user %s is not a scammer, %s", displayUsername, noscam.ResultsToString(decision.Checks))
		return Response{CheckResults: decision.Checks}
	}

	// fresh window for the author, remediation never re-triggers on the same evidence
	s.detector.Reset(msg.GuildID, msg.From.ID)

	log.Printf("[INFO] user %s detected as scammer: %s, %q",
		displayUsername, noscam.ResultsToString(decision.Checks), msg.Text)

	text := fmt.Sprintf("Timed out <@%d> for %d minutes for sending scam messages",
		msg.From.ID, int(s.params.SuspendDuration.Minutes()))
	if s.params.Dry {
		text += " (dry mode)"
	}

	return Response{
		Spam:         true,
		Text:         text,
		Matched:      decision.Matched,
		SuspendFor:   s.params.SuspendDuration,
		CheckResults: decision.Checks,
	}
}

// Window returns the author's current window, for inspection via the web API
func (s *ScamFilter) Window(guildID, authorID uint64) []noscam.Message {
	return s.detector.Window(guildID, authorID)
}
