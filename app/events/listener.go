package events

import (
	"context"
	"fmt"
	"log"
	"time"

	dbot "github.com/disgoorg/disgo/bot"
	devents "github.com/disgoorg/disgo/events"
	"github.com/go-pkgz/repeater"
	"github.com/hashicorp/go-multierror"

	"github.com/noscam-bot/noscam/app/bot"
)

// DiscordListener listens to discord gateway events, forwards messages to the
// scam filter and executes remediation for positive decisions.
// Not thread safe
type DiscordListener struct {
	Client         GatewayClient
	API            DiscordAPI
	Bot            Bot
	Settings       Settings          // optional, dynamic per-guild notification overrides
	Reporter       DetectionReporter // optional, keeps recent detections
	NotifyChannels map[uint64]uint64 // static per-guild notification channel overrides
	NoNotify       bool              // do not post notification messages
	Dry            bool
}

// GatewayClient is a subset of the discord client used for gateway control,
// satisfied by disgo bot.Client
type GatewayClient interface {
	AddEventListeners(listeners ...dbot.EventListener)
	OpenGateway(ctx context.Context) error
	Close(ctx context.Context)
}

// Do subscribes to gateway events and blocks until the context is canceled
func (l *DiscordListener) Do(ctx context.Context) error {
	log.Printf("[INFO] start discord listener")
	if l.Dry {
		log.Printf("[WARN] dry mode, no removals or timeouts")
	}

	l.Client.AddEventListeners(
		dbot.NewListenerFunc(func(e *devents.Ready) {
			log.Printf("[INFO] logged in as %s, invite: %s", e.User.Username, InviteURL(e.Application.ID))
		}),
		dbot.NewListenerFunc(func(e *devents.MessageCreate) { l.onMessageCreate(ctx, e) }),
	)

	if err := l.Client.OpenGateway(ctx); err != nil {
		return fmt.Errorf("failed to open gateway: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		l.Client.Close(closeCtx)
	}()

	<-ctx.Done()
	return ctx.Err()
}

// onMessageCreate filters out events the detector must never see and hands the
// rest to a per-event goroutine, gateway delivery is never blocked by
// attachment fetches or remediation calls.
func (l *DiscordListener) onMessageCreate(ctx context.Context, e *devents.MessageCreate) {
	msg := e.Message
	if msg.Author.Bot || msg.Author.System {
		return
	}
	if msg.WebhookID != nil {
		return
	}
	if e.GuildID == nil { // direct message
		return
	}

	m := transform(msg, *e.GuildID)
	go func() {
		if err := l.procMessage(ctx, m); err != nil {
			log.Printf("[WARN] failed to process message %d: %v", m.ID, err)
		}
	}()
}

// procMessage runs the message through the scam filter and, on a positive
// decision, removes the matched window, times out the author and posts a
// notification. All remediation is best-effort: failures are logged or
// aggregated, never fatal.
func (l *DiscordListener) procMessage(ctx context.Context, msg bot.Message) error {
	resp := l.Bot.OnMessage(ctx, msg)
	if !resp.Spam {
		return nil
	}

	if l.Reporter != nil {
		l.Reporter.Save(msg, resp)
	}

	errs := new(multierror.Error)

	// delete all messages of the matched window, failures don't abort the rest
	for _, m := range resp.Matched {
		if l.Dry {
			log.Printf("[INFO] dry run: delete message %d in channel %d", m.ID, m.ChannelID)
			continue
		}
		log.Printf("[INFO] deleting message %d in channel %d", m.ID, m.ChannelID)
		if err := l.API.DeleteMessage(ctx, m.ChannelID, m.ID); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to delete message %d: %w", m.ID, err))
		}
	}

	suspendReq := suspendRequest{api: l.API, guildID: msg.GuildID, userID: msg.From.ID,
		duration: resp.SuspendFor, userName: bot.DisplayName(msg), dry: l.Dry}
	if err := suspendAuthor(ctx, suspendReq); err != nil {
		// not-found or forbidden, notification is sent only on success
		log.Printf("[INFO] failed to time out %s: %v", bot.DisplayName(msg), err)
		return errs.ErrorOrNil()
	}

	if !l.NoNotify && !l.Dry && resp.Text != "" {
		channelID := l.notifyChannelFor(ctx, msg.GuildID, msg.ChannelID)
		err := repeater.NewDefault(3, 500*time.Millisecond).Do(ctx, func() error {
			return l.API.SendMessage(ctx, channelID, resp.Text)
		})
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("failed to send notification to channel %d: %w", channelID, err))
		}
	}

	return errs.ErrorOrNil()
}

// notifyChannelFor picks the channel for the timeout notification: dynamic
// per-guild override first, then the static map, then the channel the
// triggering message arrived in.
func (l *DiscordListener) notifyChannelFor(ctx context.Context, guildID, fallback uint64) uint64 {
	if l.Settings != nil {
		ch, err := l.Settings.NotifyChannel(ctx, guildID)
		if err != nil {
			log.Printf("[WARN] failed to get notify channel for guild %d: %v", guildID, err)
		}
		if err == nil && ch != 0 {
			return ch
		}
	}
	if ch, ok := l.NotifyChannels[guildID]; ok {
		return ch
	}
	return fallback
}
