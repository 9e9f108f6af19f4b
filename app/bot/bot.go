// Package bot provides platform-neutral message types and the scam filter
// connecting inbound messages to the detection engine.
package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/noscam-bot/noscam/lib/noscam"
)

// Message is primary record to pass inbound data to the filter
type Message struct {
	ID          uint64       `json:"id"`
	ChannelID   uint64       `json:"channel_id"`
	GuildID     uint64       `json:"guild_id"`
	From        User         `json:"from"`
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Sent        time.Time    `json:"sent"`
}

// Attachment is a single message attachment as reported by the platform
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
	URL         string `json:"url"`
}

// User defines author info of the Message
type User struct {
	ID          uint64 `json:"id"`
	Username    string `json:"user_name,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// Response describes the filter's reaction on a particular message
type Response struct {
	Spam         bool                 // true if the author's window matched the scam pattern
	Text         string               // notification text to send after a successful suspension
	Matched      []noscam.Message     // messages to remove, the full triggering window
	SuspendFor   time.Duration        // how long to time out the author
	CheckResults []noscam.CheckResult // predicate outcomes for the window
}

// DisplayName returns user's display name or username or id
func DisplayName(msg Message) string {
	displayUsername := msg.From.DisplayName
	if displayUsername == "" {
		displayUsername = msg.From.Username
	}
	if displayUsername == "" {
		displayUsername = fmt.Sprintf("%d", msg.From.ID)
	}
	return strings.TrimSpace(displayUsername)
}
