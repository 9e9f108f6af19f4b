// Package webapi provides a small JSON API for operators: recent detections,
// per-user message windows and per-guild notification settings.
package webapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"

	"github.com/noscam-bot/noscam/app/storage"
	"github.com/noscam-bot/noscam/lib/noscam"
)

//go:generate moq --out mocks/detections.go --pkg mocks --with-resets --skip-ensure . Detections
//go:generate moq --out mocks/settings.go --pkg mocks --with-resets --skip-ensure . Settings
//go:generate moq --out mocks/windows.go --pkg mocks --with-resets --skip-ensure . Windows

// Server is a web API server.
type Server struct {
	Config
}

// Config defines server parameters
type Config struct {
	Version    string     // version to show in /ping
	ListenAddr string     // listen address
	Detections Detections // recent detections trail
	Settings   Settings   // per-guild settings store
	Windows    Windows    // access to per-user message windows
	AuthPasswd string     // basic auth password for user "noscam"
	Dbg        bool       // debug mode
}

// Detections provides read access to the recent detections trail
type Detections interface {
	Recent(n int) []storage.DetectedScam
}

// Settings provides access to per-guild settings
type Settings interface {
	NotifyChannel(ctx context.Context, guildID uint64) (uint64, error)
	SetNotifyChannel(ctx context.Context, guildID, channelID uint64) error
	All(ctx context.Context) ([]storage.GuildSettingsRecord, error)
}

// Windows provides read access to the current per-user message windows
type Windows interface {
	Window(guildID, authorID uint64) []noscam.Message
}

// NewServer creates a new web API server.
func NewServer(config Config) *Server {
	return &Server{Config: config}
}

// Run starts the server and blocks until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	router := routegroup.New(http.NewServeMux())
	router.Use(rest.Recoverer(lgr.Default()))
	router.Use(rest.Throttle(1000))
	router.Use(rest.AppInfo("noscam", "noscam-bot", s.Version), rest.Ping)
	router.Use(tollbooth.HTTPMiddleware(tollbooth.NewLimiter(50, nil)))
	router.Use(rest.SizeLimit(1024 * 1024)) // 1M max request size

	if s.AuthPasswd != "" {
		log.Printf("[INFO] basic auth enabled for webapi server")
		router.Use(rest.BasicAuthWithUserPasswd("noscam", s.AuthPasswd))
	} else {
		log.Printf("[WARN] basic auth disabled, access to webapi is not protected")
	}

	s.routes(router)

	srv := &http.Server{Addr: s.ListenAddr, Handler: router, ReadTimeout: 5 * time.Second, WriteTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown webapi server: %v", err)
		} else {
			log.Printf("[INFO] webapi server stopped")
		}
	}()

	log.Printf("[INFO] start webapi server on %s", s.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to run server: %w", err)
	}
	return nil
}

func (s *Server) routes(router *routegroup.Bundle) {
	router.HandleFunc("GET /status", s.statusHandler)
	router.HandleFunc("GET /detections", s.detectionsHandler)
	router.HandleFunc("GET /settings", s.settingsHandler)
	router.HandleFunc("GET /settings/{guild}/notify-channel", s.getNotifyChannelHandler)
	router.HandleFunc("PUT /settings/{guild}/notify-channel", s.setNotifyChannelHandler)
	router.HandleFunc("GET /windows/{guild}/{author}", s.windowHandler)
}

// statusHandler handles GET /status, basic liveness info
func (s *Server) statusHandler(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, rest.JSON{"app": "noscam", "version": s.Version})
}

// detectionsHandler handles GET /detections?limit=N, returns recent detections newest first
func (s *Server) detectionsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 25
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			w.WriteHeader(http.StatusBadRequest)
			rest.RenderJSON(w, rest.JSON{"error": "invalid limit", "details": v})
			return
		}
		limit = parsed
	}
	rest.RenderJSON(w, rest.JSON{"detections": s.Detections.Recent(limit)})
}

// settingsHandler handles GET /settings, returns all guild settings
func (s *Server) settingsHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.Settings.All(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		rest.RenderJSON(w, rest.JSON{"error": "can't get settings", "details": err.Error()})
		log.Printf("[WARN] can't get settings: %v", err)
		return
	}
	rest.RenderJSON(w, rest.JSON{"settings": res})
}

// getNotifyChannelHandler handles GET /settings/{guild}/notify-channel
func (s *Server) getNotifyChannelHandler(w http.ResponseWriter, r *http.Request) {
	guildID, err := parseID(r.PathValue("guild"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "invalid guild id", "details": err.Error()})
		return
	}

	channel, err := s.Settings.NotifyChannel(r.Context(), guildID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		rest.RenderJSON(w, rest.JSON{"error": "can't get notify channel", "details": err.Error()})
		log.Printf("[WARN] can't get notify channel for guild %d: %v", guildID, err)
		return
	}
	rest.RenderJSON(w, rest.JSON{"guild_id": strconv.FormatUint(guildID, 10),
		"channel_id": strconv.FormatUint(channel, 10)})
}

// setNotifyChannelHandler handles PUT /settings/{guild}/notify-channel.
// Zero or empty channel id clears the override.
func (s *Server) setNotifyChannelHandler(w http.ResponseWriter, r *http.Request) {
	guildID, err := parseID(r.PathValue("guild"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "invalid guild id", "details": err.Error()})
		return
	}

	req := struct {
		ChannelID string `json:"channel_id"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "can't decode request", "details": err.Error()})
		log.Printf("[WARN] can't decode request: %v", err)
		return
	}

	channelID := uint64(0)
	if req.ChannelID != "" && req.ChannelID != "0" {
		if channelID, err = parseID(req.ChannelID); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			rest.RenderJSON(w, rest.JSON{"error": "invalid channel id", "details": err.Error()})
			return
		}
	}

	if err := s.Settings.SetNotifyChannel(r.Context(), guildID, channelID); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		rest.RenderJSON(w, rest.JSON{"error": "can't set notify channel", "details": err.Error()})
		log.Printf("[WARN] can't set notify channel for guild %d: %v", guildID, err)
		return
	}

	log.Printf("[INFO] notify channel for guild %d set to %d", guildID, channelID)
	rest.RenderJSON(w, rest.JSON{"updated": true, "guild_id": strconv.FormatUint(guildID, 10),
		"channel_id": strconv.FormatUint(channelID, 10)})
}

// windowHandler handles GET /windows/{guild}/{author}, returns the current
// message window for the author
func (s *Server) windowHandler(w http.ResponseWriter, r *http.Request) {
	guildID, err := parseID(r.PathValue("guild"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "invalid guild id", "details": err.Error()})
		return
	}
	authorID, err := parseID(r.PathValue("author"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		rest.RenderJSON(w, rest.JSON{"error": "invalid author id", "details": err.Error()})
		return
	}

	window := s.Windows.Window(guildID, authorID)
	rest.RenderJSON(w, rest.JSON{"guild_id": strconv.FormatUint(guildID, 10),
		"author_id": strconv.FormatUint(authorID, 10), "window": window})
}

func parseID(s string) (uint64, error) {
	res, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse id %q: %w", s, err)
	}
	return res, nil
}
