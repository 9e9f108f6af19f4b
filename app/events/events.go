// Package events provides the discord listener and all the high-level event
// handling. It filters inbound gateway events, passes messages to the scam
// filter and handles positive decisions: removes the matched messages, times
// out the author and posts a notification.
package events

import (
	"context"
	"log"
	"time"

	"github.com/noscam-bot/noscam/app/bot"
)

//go:generate moq --out mocks/discord_api.go --pkg mocks --with-resets --skip-ensure . DiscordAPI
//go:generate moq --out mocks/bot.go --pkg mocks --with-resets --skip-ensure . Bot
//go:generate moq --out mocks/settings.go --pkg mocks --with-resets --skip-ensure . Settings
//go:generate moq --out mocks/detection_reporter.go --pkg mocks --with-resets --skip-ensure . DetectionReporter

// suspendReason is sent to the platform as the audit-log reason for timeouts
const suspendReason = "sending scam messages"

// DiscordAPI is an interface for the discord REST api, only subset of methods used
type DiscordAPI interface {
	DeleteMessage(ctx context.Context, channelID, messageID uint64) error
	TimeoutMember(ctx context.Context, guildID, userID uint64, until time.Time, reason string) error
	SendMessage(ctx context.Context, channelID uint64, text string) error
}

// Bot is an interface for the scam filter
type Bot interface {
	OnMessage(ctx context.Context, msg bot.Message) (response bot.Response)
}

// Settings resolves the per-guild notification channel override, 0 if not set
type Settings interface {
	NotifyChannel(ctx context.Context, guildID uint64) (uint64, error)
}

// DetectionReporter keeps reports about detected scam messages
type DetectionReporter interface {
	Save(msg bot.Message, response bot.Response)
}

// DetectionReporterFunc is a function that implements DetectionReporter interface
type DetectionReporterFunc func(msg bot.Message, response bot.Response)

// Save is a function that implements DetectionReporter interface
func (f DetectionReporterFunc) Save(msg bot.Message, response bot.Response) {
	f(msg, response)
}

type suspendRequest struct {
	api DiscordAPI

	guildID  uint64
	userID   uint64
	duration time.Duration
	userName string

	dry bool
}

// suspendAuthor issues a timed mute against the author. The bot must have the
// moderate-members permission in the guild for this to work.
func suspendAuthor(ctx context.Context, r suspendRequest) error {
	if r.dry {
		log.Printf("[INFO] dry run: time out user %d for %v", r.userID, r.duration)
		return nil
	}
	if err := r.api.TimeoutMember(ctx, r.guildID, r.userID, time.Now().Add(r.duration), suspendReason); err != nil {
		return err
	}
	log.Printf("[INFO] user %s timed out by bot for %v", r.userName, r.duration)
	return nil
}
