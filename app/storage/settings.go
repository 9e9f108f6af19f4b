// Package storage provides access to the persistent per-guild configuration
// and keeps a short in-memory trail of recent detections. Snowflake ids are
// stored as text to avoid int64 overflow on the sqlite side.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/noscam-bot/noscam/app/storage/engine"
)

// GuildSettings provides access to per-guild settings stored in the database.
// For now the only setting is the notification channel override.
type GuildSettings struct {
	*engine.SQL
	engine.RWLocker
}

// GuildSettingsRecord represents a single guild settings row
type GuildSettingsRecord struct {
	GID           string    `db:"gid"`
	GuildID       string    `db:"guild_id"`
	NotifyChannel string    `db:"notify_channel"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// all guild settings queries
const (
	CmdCreateSettingsTable engine.DBCmd = iota + 100
	CmdCreateSettingsIndexes
	CmdSetNotifyChannel
)

var settingsQueries = engine.NewQueryMap().
	Add(CmdCreateSettingsTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS guild_settings (
			id INTEGER PRIMARY KEY,
			gid TEXT NOT NULL,
			guild_id TEXT NOT NULL,
			notify_channel TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(gid, guild_id)
		)`,
		Postgres: `CREATE TABLE IF NOT EXISTS guild_settings (
			id SERIAL PRIMARY KEY,
			gid TEXT NOT NULL,
			guild_id TEXT NOT NULL,
			notify_channel TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(gid, guild_id)
		)`,
	}).
	AddSame(CmdCreateSettingsIndexes,
		`CREATE INDEX IF NOT EXISTS idx_guild_settings_gid ON guild_settings(gid)`).
	Add(CmdSetNotifyChannel, engine.Query{
		Sqlite: `INSERT INTO guild_settings (gid, guild_id, notify_channel, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (gid, guild_id) DO UPDATE
			SET notify_channel = excluded.notify_channel, updated_at = excluded.updated_at`,
		Postgres: `INSERT INTO guild_settings (gid, guild_id, notify_channel, updated_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (gid, guild_id) DO UPDATE
			SET notify_channel = EXCLUDED.notify_channel, updated_at = EXCLUDED.updated_at`,
	})

// NewGuildSettings creates the settings store and initializes the table
func NewGuildSettings(ctx context.Context, db *engine.SQL) (*GuildSettings, error) {
	if db == nil {
		return nil, fmt.Errorf("no db provided")
	}

	res := &GuildSettings{SQL: db, RWLocker: db.MakeLock()}
	cfg := engine.TableConfig{
		Name:          "guild_settings",
		CreateTable:   CmdCreateSettingsTable,
		CreateIndexes: CmdCreateSettingsIndexes,
		QueriesMap:    settingsQueries,
	}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init guild_settings table: %w", err)
	}
	return res, nil
}

// NotifyChannel returns the notification channel override for the guild,
// 0 if no override is set
func (g *GuildSettings) NotifyChannel(ctx context.Context, guildID uint64) (uint64, error) {
	g.RLock()
	defer g.RUnlock()

	var channel string
	query := g.Adopt("SELECT notify_channel FROM guild_settings WHERE gid = ? AND guild_id = ?")
	err := g.GetContext(ctx, &channel, query, g.GID(), strconv.FormatUint(guildID, 10))
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get notify channel for guild %d: %w", guildID, err)
	}
	if channel == "" {
		return 0, nil
	}

	res, err := strconv.ParseUint(channel, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid notify channel %q for guild %d: %w", channel, guildID, err)
	}
	return res, nil
}

// SetNotifyChannel sets the notification channel override for the guild.
// Zero channel id clears the override.
func (g *GuildSettings) SetNotifyChannel(ctx context.Context, guildID, channelID uint64) error {
	g.Lock()
	defer g.Unlock()

	channel := ""
	if channelID != 0 {
		channel = strconv.FormatUint(channelID, 10)
	}

	query, err := settingsQueries.Pick(g.Type(), CmdSetNotifyChannel)
	if err != nil {
		return fmt.Errorf("failed to get set query: %w", err)
	}
	if _, err := g.ExecContext(ctx, query, g.GID(), strconv.FormatUint(guildID, 10), channel, time.Now()); err != nil {
		return fmt.Errorf("failed to set notify channel for guild %d: %w", guildID, err)
	}
	return nil
}

// All returns settings for all guilds of the current group
func (g *GuildSettings) All(ctx context.Context) ([]GuildSettingsRecord, error) {
	g.RLock()
	defer g.RUnlock()

	res := []GuildSettingsRecord{}
	query := g.Adopt("SELECT gid, guild_id, notify_channel, updated_at FROM guild_settings WHERE gid = ? ORDER BY guild_id")
	if err := g.SelectContext(ctx, &res, query, g.GID()); err != nil {
		return nil, fmt.Errorf("failed to get guild settings: %w", err)
	}
	return res, nil
}
