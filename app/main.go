package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/noscam-bot/noscam/app/bot"
	"github.com/noscam-bot/noscam/app/events"
	"github.com/noscam-bot/noscam/app/storage"
	"github.com/noscam-bot/noscam/app/storage/engine"
	"github.com/noscam-bot/noscam/app/webapi"
	"github.com/noscam-bot/noscam/lib/noscam"
)

type options struct {
	Discord struct {
		Token   string        `long:"token" env:"TOKEN" description:"discord bot token" required:"true"`
		Timeout time.Duration `long:"timeout" env:"TIMEOUT" default:"30s" description:"http client timeout for attachment fetches"`
	} `group:"discord" namespace:"discord" env-namespace:"DISCORD"`

	WindowSize      int           `long:"window-size" env:"WINDOW_SIZE" default:"3" description:"messages per author window"`
	SuspendDuration time.Duration `long:"suspend-duration" env:"SUSPEND_DURATION" default:"15m" description:"timeout duration for detected scammers"`
	HashTTL         time.Duration `long:"hash-ttl" env:"HASH_TTL" default:"10m" description:"attachment hash cache ttl"`
	NotifyChannels  []string      `long:"notify-channel" env:"NOTIFY_CHANNEL" env-delim:"," description:"static notification channel overrides, guild:channel pairs"`
	NoNotify        bool          `long:"no-notify" env:"NO_NOTIFY" description:"do not post notification messages"`

	DB struct {
		Engine string `long:"engine" env:"ENGINE" default:"sqlite" choice:"sqlite" choice:"postgres" description:"database engine"`
		Conn   string `long:"conn" env:"CONN" default:"noscam.db" description:"sqlite file or postgres connection url"`
		Group  string `long:"group" env:"GROUP" default:"noscam" description:"group id for per-instance storage"`
	} `group:"db" namespace:"db" env-namespace:"DB"`

	Server struct {
		Enabled        bool   `long:"enabled" env:"ENABLED" description:"enable web api server"`
		ListenAddr     string `long:"listen" env:"LISTEN" default:":8080" description:"listen address"`
		AuthPasswd     string `long:"auth" env:"AUTH" default:"" description:"basic auth password for user \"noscam\", disabled if empty"`
		DetectionsSize int    `long:"detections" env:"DETECTIONS" default:"100" description:"number of recent detections to keep"`
	} `group:"server" namespace:"server" env-namespace:"SERVER"`

	Logger struct {
		Enabled    bool   `long:"enabled" env:"ENABLED" description:"write logs to rotated file in addition to stdout"`
		FileName   string `long:"file" env:"FILE" default:"noscam.log" description:"location of log file"`
		MaxSize    int    `long:"max-size" env:"MAX_SIZE" default:"100" description:"maximum size in MB before rotation"`
		MaxBackups int    `long:"max-backups" env:"MAX_BACKUPS" default:"10" description:"maximum number of old log files to retain"`
	} `group:"logger" namespace:"logger" env-namespace:"LOGGER"`

	Dry bool `long:"dry" env:"DRY" description:"dry mode, no removals or timeouts"`
	Dbg bool `long:"dbg" env:"DEBUG" description:"debug mode"`
}

var revision = "local"

func main() {
	fmt.Printf("noscam %s\n", revision)
	var opts options
	p := flags.NewParser(&opts, flags.PrintErrors|flags.PassDoubleDash|flags.HelpFlag)
	p.SubcommandsOptional = true
	if _, err := p.Parse(); err != nil {
		if err.(*flags.Error).Type != flags.ErrHelp {
			log.Printf("[ERROR] cli error: %v", err)
		}
		os.Exit(2)
	}

	setupLog(opts, opts.Discord.Token)
	log.Printf("[DEBUG] options: %+v", opts)

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		// catch signal and invoke graceful termination
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Printf("[WARN] interrupt signal")
		cancel()
	}()

	if err := execute(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
}

func execute(ctx context.Context, opts options) error {
	if opts.Dry {
		log.Print("[WARN] dry mode, no actual removals or timeouts")
	}

	notifyChannels, err := parseNotifyChannels(opts.NotifyChannels)
	if err != nil {
		return fmt.Errorf("can't parse notify channels, %w", err)
	}

	// make detector with per-author windows and attachment fingerprinting
	detector := noscam.NewDetector(noscam.Config{
		WindowSize:   opts.WindowSize,
		HTTPClient:   &http.Client{Timeout: opts.Discord.Timeout},
		HashCacheTTL: opts.HashTTL,
	})
	log.Printf("[DEBUG] detector config: {window: %d, timeout: %v, hash ttl: %v}",
		opts.WindowSize, opts.Discord.Timeout, opts.HashTTL)

	// make scam filter bot
	scamBot := bot.NewScamFilter(detector, bot.ScamConfig{SuspendDuration: opts.SuspendDuration, Dry: opts.Dry})

	// make storage for per-guild settings
	db, err := makeDB(ctx, opts)
	if err != nil {
		return fmt.Errorf("can't make db, %w", err)
	}
	defer db.Close()

	settings, err := storage.NewGuildSettings(ctx, db)
	if err != nil {
		return fmt.Errorf("can't make settings store, %w", err)
	}

	detections := storage.NewDetections(opts.Server.DetectionsSize)

	// make discord client and listener
	client, err := events.NewClient(opts.Discord.Token)
	if err != nil {
		return fmt.Errorf("can't make discord client, %w", err)
	}

	listener := events.DiscordListener{
		Client:         client,
		API:            events.NewDiscord(client),
		Bot:            scamBot,
		Settings:       settings,
		Reporter:       makeDetectionReporter(detections),
		NotifyChannels: notifyChannels,
		NoNotify:       opts.NoNotify,
		Dry:            opts.Dry,
	}
	log.Printf("[DEBUG] listener config: {overrides: %v, no-notify: %v, dry: %v}",
		notifyChannels, opts.NoNotify, opts.Dry)

	if opts.Server.Enabled {
		srv := webapi.NewServer(webapi.Config{
			Version:    revision,
			ListenAddr: opts.Server.ListenAddr,
			Detections: detections,
			Settings:   settings,
			Windows:    detector,
			AuthPasswd: opts.Server.AuthPasswd,
			Dbg:        opts.Dbg,
		})
		go func() {
			if err := srv.Run(ctx); err != nil {
				log.Printf("[ERROR] webapi server failed, %v", err)
			}
		}()
	}

	// run discord listener and event processor loop
	if err := listener.Do(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("discord listener failed, %w", err)
	}
	return nil
}

func makeDB(ctx context.Context, opts options) (*engine.SQL, error) {
	switch opts.DB.Engine {
	case "sqlite":
		return engine.NewSqlite(opts.DB.Conn, opts.DB.Group)
	case "postgres":
		return engine.NewPostgres(ctx, opts.DB.Conn, opts.DB.Group)
	}
	return nil, fmt.Errorf("unsupported db engine %q", opts.DB.Engine)
}

// makeDetectionReporter keeps recent detections in memory for the web api and
// logs each one
func makeDetectionReporter(detections *storage.Detections) events.DetectionReporter {
	return events.DetectionReporterFunc(func(msg bot.Message, response bot.Response) {
		text := strings.TrimSpace(strings.ReplaceAll(msg.Text, "\n", " "))
		log.Printf("[INFO] scam detected from %s in guild %d: %q", bot.DisplayName(msg), msg.GuildID, text)
		detections.Save(storage.DetectedScam{
			GuildID:    msg.GuildID,
			ChannelID:  msg.ChannelID,
			MessageID:  msg.ID,
			AuthorID:   msg.From.ID,
			AuthorName: bot.DisplayName(msg),
			Text:       text,
			Matched:    len(response.Matched),
			Checks:     response.CheckResults,
			Timestamp:  time.Now(),
		})
	})
}

// parseNotifyChannels parses guild:channel pairs into a map
func parseNotifyChannels(pairs []string) (map[uint64]uint64, error) {
	res := map[uint64]uint64{}
	for _, pair := range pairs {
		guild, channel, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("invalid notify channel %q, expected guild:channel", pair)
		}
		guildID, err := strconv.ParseUint(guild, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid guild id in %q: %w", pair, err)
		}
		channelID, err := strconv.ParseUint(channel, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid channel id in %q: %w", pair, err)
		}
		res[guildID] = channelID
	}
	return res, nil
}

func setupLog(opts options, secrets ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if opts.Dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))

	if opts.Logger.Enabled {
		fileWriter := &lumberjack.Logger{
			Filename:   opts.Logger.FileName,
			MaxSize:    opts.Logger.MaxSize, // in MB
			MaxBackups: opts.Logger.MaxBackups,
			Compress:   true,
			LocalTime:  true,
		}
		logOpts = append(logOpts, lgr.Out(io.MultiWriter(os.Stdout, fileWriter)))
	}

	if len(secrets) > 0 {
		logOpts = append(logOpts, lgr.Secret(secrets...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
