package bot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noscam-bot/noscam/app/bot/mocks"
	"github.com/noscam-bot/noscam/lib/noscam"
)

func TestScamFilterOnMessageHam(t *testing.T) {
	det := &mocks.DetectorMock{
		CheckFunc: func(_ context.Context, _, _ uint64, _ noscam.Request) noscam.Decision {
			return noscam.Decision{Checks: []noscam.CheckResult{{Name: "window", Details: "1 of 3 messages"}}}
		},
		ResetFunc: func(_, _ uint64) {},
	}
	f := NewScamFilter(det, ScamConfig{})

	resp := f.OnMessage(context.Background(), Message{ID: 1, ChannelID: 100, GuildID: 1, From: User{ID: 42}, Text: "hello"})
	assert.False(t, resp.Spam)
	assert.Empty(t, resp.Text)
	assert.Len(t, resp.CheckResults, 1)
	assert.Len(t, det.CheckCalls(), 1)
	assert.Empty(t, det.ResetCalls(), "window not cleared for ham")
}

func TestScamFilterOnMessageSpam(t *testing.T) {
	matched := []noscam.Message{
		noscam.NewMessage(1, 100, "check http://scam.example", nil),
		noscam.NewMessage(2, 101, "check http://scam.example", nil),
		noscam.NewMessage(3, 102, "check http://scam.example", nil),
	}
	det := &mocks.DetectorMock{
		CheckFunc: func(_ context.Context, _, _ uint64, _ noscam.Request) noscam.Decision {
			return noscam.Decision{Spam: true, Matched: matched}
		},
		ResetFunc: func(_, _ uint64) {},
	}
	f := NewScamFilter(det, ScamConfig{SuspendDuration: 15 * time.Minute})

	resp := f.OnMessage(context.Background(), Message{ID: 3, ChannelID: 102, GuildID: 1,
		From: User{ID: 42, Username: "spammer"}, Text: "check http://scam.example"})

	require.True(t, resp.Spam)
	assert.Equal(t, matched, resp.Matched)
	assert.Equal(t, 15*time.Minute, resp.SuspendFor)
	assert.Equal(t, "Timed out <@42> for 15 minutes for sending scam messages", resp.Text)

	require.Len(t, det.ResetCalls(), 1, "window cleared on positive decision")
	assert.Equal(t, uint64(1), det.ResetCalls()[0].GuildID)
	assert.Equal(t, uint64(42), det.ResetCalls()[0].AuthorID)
}

func TestScamFilterOnMessageDry(t *testing.T) {
	det := &mocks.DetectorMock{
		CheckFunc: func(_ context.Context, _, _ uint64, _ noscam.Request) noscam.Decision {
			return noscam.Decision{Spam: true, Matched: []noscam.Message{noscam.NewMessage(1, 100, "x", nil)}}
		},
		ResetFunc: func(_, _ uint64) {},
	}
	f := NewScamFilter(det, ScamConfig{Dry: true})

	resp := f.OnMessage(context.Background(), Message{ID: 1, ChannelID: 100, GuildID: 1, From: User{ID: 42}})
	require.True(t, resp.Spam)
	assert.Contains(t, resp.Text, "(dry mode)")
	assert.Equal(t, DefaultSuspendDuration, resp.SuspendFor, "default suspend duration applied")
}

func TestScamFilterSkipsSystemMessages(t *testing.T) {
	det := &mocks.DetectorMock{}
	f := NewScamFilter(det, ScamConfig{})

	resp := f.OnMessage(context.Background(), Message{ID: 1, ChannelID: 100, GuildID: 1, Text: "no author"})
	assert.Equal(t, Response{}, resp)
	assert.Empty(t, det.CheckCalls())
}

func TestScamFilterPassesAttachments(t *testing.T) {
	det := &mocks.DetectorMock{
		CheckFunc: func(_ context.Context, _, _ uint64, req noscam.Request) noscam.Decision {
			require.Len(t, req.Attachments, 2)
			assert.Equal(t, "a.png", req.Attachments[0].Filename)
			assert.Equal(t, "image/png", req.Attachments[0].ContentType)
			assert.Equal(t, "https://cdn.example/a.png", req.Attachments[0].URL)
			return noscam.Decision{}
		},
		ResetFunc: func(_, _ uint64) {},
	}
	f := NewScamFilter(det, ScamConfig{})

	f.OnMessage(context.Background(), Message{ID: 1, ChannelID: 100, GuildID: 1, From: User{ID: 42},
		Attachments: []Attachment{
			{Filename: "a.png", ContentType: "image/png", URL: "https://cdn.example/a.png"},
			{Filename: "b.jpg", ContentType: "image/jpeg", URL: "https://cdn.example/b.jpg"},
		}})
	assert.Len(t, det.CheckCalls(), 1)
}

func TestDisplayName(t *testing.T) {
	tbl := []struct {
		name string
		user User
		res  string
	}{
		{"display name preferred", User{ID: 1, Username: "user", DisplayName: "Display Name"}, "Display Name"},
		{"fallback to username", User{ID: 1, Username: "user"}, "user"},
		{"fallback to id", User{ID: 42}, "42"},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.res, DisplayName(Message{From: tt.user}))
		})
	}
}
