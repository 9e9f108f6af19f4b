package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noscam-bot/noscam/app/bot"
	"github.com/noscam-bot/noscam/app/events/mocks"
	"github.com/noscam-bot/noscam/lib/noscam"
)

func TestListenerProcMessageHam(t *testing.T) {
	api := &mocks.DiscordAPIMock{}
	b := &mocks.BotMock{OnMessageFunc: func(_ context.Context, _ bot.Message) bot.Response {
		return bot.Response{}
	}}
	l := DiscordListener{API: api, Bot: b}

	err := l.procMessage(context.Background(), bot.Message{ID: 1, ChannelID: 100, GuildID: 1, From: bot.User{ID: 42}})
	require.NoError(t, err)
	assert.Len(t, b.OnMessageCalls(), 1)
	assert.Empty(t, api.DeleteMessageCalls())
	assert.Empty(t, api.TimeoutMemberCalls())
	assert.Empty(t, api.SendMessageCalls())
}

func TestListenerProcMessageSpam(t *testing.T) {
	api := &mocks.DiscordAPIMock{
		DeleteMessageFunc: func(_ context.Context, _, _ uint64) error { return nil },
		TimeoutMemberFunc: func(_ context.Context, _, _ uint64, _ time.Time, _ string) error { return nil },
		SendMessageFunc:   func(_ context.Context, _ uint64, _ string) error { return nil },
	}
	b := &mocks.BotMock{OnMessageFunc: func(_ context.Context, _ bot.Message) bot.Response {
		return bot.Response{Spam: true, Text: "Timed out <@42> for 15 minutes for sending scam messages",
			SuspendFor: 15 * time.Minute,
			Matched: []noscam.Message{
				noscam.NewMessage(1, 100, "http://scam.example", nil),
				noscam.NewMessage(2, 101, "http://scam.example", nil),
				noscam.NewMessage(3, 102, "http://scam.example", nil),
			}}
	}}
	reporter := &mocks.DetectionReporterMock{SaveFunc: func(_ bot.Message, _ bot.Response) {}}
	l := DiscordListener{API: api, Bot: b, Reporter: reporter}

	err := l.procMessage(context.Background(), bot.Message{ID: 3, ChannelID: 102, GuildID: 1,
		From: bot.User{ID: 42, Username: "spammer"}})
	require.NoError(t, err)

	require.Len(t, api.DeleteMessageCalls(), 3, "all messages of the matched window deleted")
	assert.Equal(t, uint64(100), api.DeleteMessageCalls()[0].ChannelID)
	assert.Equal(t, uint64(1), api.DeleteMessageCalls()[0].MessageID)
	assert.Equal(t, uint64(102), api.DeleteMessageCalls()[2].ChannelID)
	assert.Equal(t, uint64(3), api.DeleteMessageCalls()[2].MessageID)

	require.Len(t, api.TimeoutMemberCalls(), 1)
	assert.Equal(t, uint64(1), api.TimeoutMemberCalls()[0].GuildID)
	assert.Equal(t, uint64(42), api.TimeoutMemberCalls()[0].UserID)
	assert.Equal(t, "sending scam messages", api.TimeoutMemberCalls()[0].Reason)
	assert.InDelta(t, 15*time.Minute, time.Until(api.TimeoutMemberCalls()[0].Until), float64(time.Minute))

	require.Len(t, api.SendMessageCalls(), 1)
	assert.Equal(t, uint64(102), api.SendMessageCalls()[0].ChannelID, "notification goes to the origin channel")
	assert.Contains(t, api.SendMessageCalls()[0].Text, "Timed out <@42>")

	require.Len(t, reporter.SaveCalls(), 1)
	assert.True(t, reporter.SaveCalls()[0].Response.Spam)
}

func TestListenerProcMessageDeleteFailureContinues(t *testing.T) {
	api := &mocks.DiscordAPIMock{
		DeleteMessageFunc: func(_ context.Context, _, messageID uint64) error {
			if messageID == 2 {
				return errors.New("unknown message")
			}
			return nil
		},
		TimeoutMemberFunc: func(_ context.Context, _, _ uint64, _ time.Time, _ string) error { return nil },
		SendMessageFunc:   func(_ context.Context, _ uint64, _ string) error { return nil },
	}
	b := &mocks.BotMock{OnMessageFunc: func(_ context.Context, _ bot.Message) bot.Response {
		return bot.Response{Spam: true, Text: "notification", Matched: []noscam.Message{
			noscam.NewMessage(1, 100, "x", nil),
			noscam.NewMessage(2, 101, "x", nil),
			noscam.NewMessage(3, 102, "x", nil),
		}}
	}}
	l := DiscordListener{API: api, Bot: b}

	err := l.procMessage(context.Background(), bot.Message{ID: 3, ChannelID: 102, GuildID: 1, From: bot.User{ID: 42}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete message 2")
	assert.Len(t, api.DeleteMessageCalls(), 3, "one failed delete doesn't stop the rest")
	assert.Len(t, api.TimeoutMemberCalls(), 1, "timeout still issued")
	assert.Len(t, api.SendMessageCalls(), 1, "notification still sent")
}

func TestListenerProcMessageSuspendFailureSkipsNotification(t *testing.T) {
	api := &mocks.DiscordAPIMock{
		DeleteMessageFunc: func(_ context.Context, _, _ uint64) error { return nil },
		TimeoutMemberFunc: func(_ context.Context, _, _ uint64, _ time.Time, _ string) error {
			return errors.New("missing permissions")
		},
	}
	b := &mocks.BotMock{OnMessageFunc: func(_ context.Context, _ bot.Message) bot.Response {
		return bot.Response{Spam: true, Text: "notification",
			Matched: []noscam.Message{noscam.NewMessage(1, 100, "x", nil)}}
	}}
	l := DiscordListener{API: api, Bot: b}

	err := l.procMessage(context.Background(), bot.Message{ID: 1, ChannelID: 100, GuildID: 1, From: bot.User{ID: 42}})
	require.NoError(t, err, "suspend failure is logged, not returned")
	assert.Len(t, api.DeleteMessageCalls(), 1)
	assert.Empty(t, api.SendMessageCalls(), "no notification without a successful timeout")
}

func TestListenerProcMessageDry(t *testing.T) {
	api := &mocks.DiscordAPIMock{}
	b := &mocks.BotMock{OnMessageFunc: func(_ context.Context, _ bot.Message) bot.Response {
		return bot.Response{Spam: true, Text: "notification (dry mode)",
			Matched: []noscam.Message{noscam.NewMessage(1, 100, "x", nil)}}
	}}
	l := DiscordListener{API: api, Bot: b, Dry: true}

	err := l.procMessage(context.Background(), bot.Message{ID: 1, ChannelID: 100, GuildID: 1, From: bot.User{ID: 42}})
	require.NoError(t, err)
	assert.Empty(t, api.DeleteMessageCalls(), "dry mode never deletes")
	assert.Empty(t, api.TimeoutMemberCalls(), "dry mode never times out")
	assert.Empty(t, api.SendMessageCalls(), "dry mode never notifies")
}

func TestListenerProcMessageNoNotify(t *testing.T) {
	api := &mocks.DiscordAPIMock{
		DeleteMessageFunc: func(_ context.Context, _, _ uint64) error { return nil },
		TimeoutMemberFunc: func(_ context.Context, _, _ uint64, _ time.Time, _ string) error { return nil },
	}
	b := &mocks.BotMock{OnMessageFunc: func(_ context.Context, _ bot.Message) bot.Response {
		return bot.Response{Spam: true, Text: "notification",
			Matched: []noscam.Message{noscam.NewMessage(1, 100, "x", nil)}}
	}}
	l := DiscordListener{API: api, Bot: b, NoNotify: true}

	err := l.procMessage(context.Background(), bot.Message{ID: 1, ChannelID: 100, GuildID: 1, From: bot.User{ID: 42}})
	require.NoError(t, err)
	assert.Len(t, api.TimeoutMemberCalls(), 1)
	assert.Empty(t, api.SendMessageCalls())
}

func TestListenerProcMessageNotificationRetries(t *testing.T) {
	attempts := 0
	api := &mocks.DiscordAPIMock{
		DeleteMessageFunc: func(_ context.Context, _, _ uint64) error { return nil },
		TimeoutMemberFunc: func(_ context.Context, _, _ uint64, _ time.Time, _ string) error { return nil },
		SendMessageFunc: func(_ context.Context, _ uint64, _ string) error {
			attempts++
			if attempts < 3 {
				return errors.New("rate limited")
			}
			return nil
		},
	}
	b := &mocks.BotMock{OnMessageFunc: func(_ context.Context, _ bot.Message) bot.Response {
		return bot.Response{Spam: true, Text: "notification",
			Matched: []noscam.Message{noscam.NewMessage(1, 100, "x", nil)}}
	}}
	l := DiscordListener{API: api, Bot: b}

	err := l.procMessage(context.Background(), bot.Message{ID: 1, ChannelID: 100, GuildID: 1, From: bot.User{ID: 42}})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts, "notification retried until it succeeds")
}

func TestListenerNotifyChannelFor(t *testing.T) {
	tbl := []struct {
		name     string
		settings Settings
		static   map[uint64]uint64
		guildID  uint64
		fallback uint64
		res      uint64
	}{
		{"origin channel when nothing configured", nil, nil, 1, 100, 100},
		{"static map override", nil, map[uint64]uint64{1: 555}, 1, 100, 555},
		{"static map miss falls back", nil, map[uint64]uint64{2: 555}, 1, 100, 100},
		{"dynamic override wins", &mocks.SettingsMock{
			NotifyChannelFunc: func(_ context.Context, _ uint64) (uint64, error) { return 777, nil },
		}, map[uint64]uint64{1: 555}, 1, 100, 777},
		{"dynamic zero means not set", &mocks.SettingsMock{
			NotifyChannelFunc: func(_ context.Context, _ uint64) (uint64, error) { return 0, nil },
		}, map[uint64]uint64{1: 555}, 1, 100, 555},
		{"dynamic error falls through", &mocks.SettingsMock{
			NotifyChannelFunc: func(_ context.Context, _ uint64) (uint64, error) { return 0, errors.New("db down") },
		}, nil, 1, 100, 100},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			l := DiscordListener{Settings: tt.settings, NotifyChannels: tt.static}
			assert.Equal(t, tt.res, l.notifyChannelFor(context.Background(), tt.guildID, tt.fallback))
		})
	}
}

func TestListenerProcMessageOverrideChannel(t *testing.T) {
	api := &mocks.DiscordAPIMock{
		DeleteMessageFunc: func(_ context.Context, _, _ uint64) error { return nil },
		TimeoutMemberFunc: func(_ context.Context, _, _ uint64, _ time.Time, _ string) error { return nil },
		SendMessageFunc:   func(_ context.Context, _ uint64, _ string) error { return nil },
	}
	b := &mocks.BotMock{OnMessageFunc: func(_ context.Context, _ bot.Message) bot.Response {
		return bot.Response{Spam: true, Text: "notification",
			Matched: []noscam.Message{noscam.NewMessage(1, 100, "x", nil)}}
	}}
	l := DiscordListener{API: api, Bot: b, NotifyChannels: map[uint64]uint64{7: 999}}

	err := l.procMessage(context.Background(), bot.Message{ID: 1, ChannelID: 100, GuildID: 7, From: bot.User{ID: 42}})
	require.NoError(t, err)
	require.Len(t, api.SendMessageCalls(), 1)
	assert.Equal(t, uint64(999), api.SendMessageCalls()[0].ChannelID, "notification redirected to the configured channel")
}

func TestSuspendAuthorDry(t *testing.T) {
	api := &mocks.DiscordAPIMock{}
	err := suspendAuthor(context.Background(), suspendRequest{api: api, guildID: 1, userID: 42,
		duration: 15 * time.Minute, userName: "spammer", dry: true})
	require.NoError(t, err)
	assert.Empty(t, api.TimeoutMemberCalls())
}
