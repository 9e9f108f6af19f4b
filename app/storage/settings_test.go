package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noscam-bot/noscam/app/storage/engine"
)

func newTestSettings(t *testing.T) *GuildSettings {
	db, err := engine.NewSqlite(":memory:", "gr1")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	res, err := NewGuildSettings(context.Background(), db)
	require.NoError(t, err)
	return res
}

func TestGuildSettingsNewWithNilDB(t *testing.T) {
	_, err := NewGuildSettings(context.Background(), nil)
	assert.ErrorContains(t, err, "no db provided")
}

func TestGuildSettingsNotifyChannelUnset(t *testing.T) {
	s := newTestSettings(t)
	ch, err := s.NotifyChannel(context.Background(), 12345)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), ch, "no override set")
}

func TestGuildSettingsSetAndGet(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	require.NoError(t, s.SetNotifyChannel(ctx, 12345, 67890))
	ch, err := s.NotifyChannel(ctx, 12345)
	require.NoError(t, err)
	assert.Equal(t, uint64(67890), ch)

	// other guild not affected
	ch, err = s.NotifyChannel(ctx, 11111)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), ch)
}

func TestGuildSettingsUpdate(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	require.NoError(t, s.SetNotifyChannel(ctx, 12345, 67890))
	require.NoError(t, s.SetNotifyChannel(ctx, 12345, 99999))

	ch, err := s.NotifyChannel(ctx, 12345)
	require.NoError(t, err)
	assert.Equal(t, uint64(99999), ch, "upsert replaced the old value")

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "single row per guild")
}

func TestGuildSettingsClear(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	require.NoError(t, s.SetNotifyChannel(ctx, 12345, 67890))
	require.NoError(t, s.SetNotifyChannel(ctx, 12345, 0))

	ch, err := s.NotifyChannel(ctx, 12345)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), ch, "zero channel clears the override")
}

func TestGuildSettingsAll(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	require.NoError(t, s.SetNotifyChannel(ctx, 222, 1002))
	require.NoError(t, s.SetNotifyChannel(ctx, 111, 1001))

	all, err := s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "111", all[0].GuildID, "sorted by guild id")
	assert.Equal(t, "1001", all[0].NotifyChannel)
	assert.Equal(t, "222", all[1].GuildID)
	assert.Equal(t, "gr1", all[0].GID)
}

func TestGuildSettingsLargeSnowflake(t *testing.T) {
	s := newTestSettings(t)
	ctx := context.Background()

	// snowflakes above max int63 must round-trip via text storage
	guildID := uint64(18446744073709551615)
	channelID := uint64(18446744073709551614)
	require.NoError(t, s.SetNotifyChannel(ctx, guildID, channelID))

	ch, err := s.NotifyChannel(ctx, guildID)
	require.NoError(t, err)
	assert.Equal(t, channelID, ch)
}
