package events

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/disgo"
	dbot "github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/json"
	"github.com/disgoorg/snowflake/v2"

	"github.com/noscam-bot/noscam/app/bot"
)

// botPermissions requested in the invite url
const botPermissions = discord.PermissionModerateMembers | discord.PermissionManageMessages |
	discord.PermissionReadMessageHistory | discord.PermissionSendMessages

// NewClient makes a discord gateway client with the intents the listener needs.
// Message content intent is privileged and has to be enabled for the bot in the
// developer portal.
func NewClient(token string) (dbot.Client, error) {
	client, err := disgo.New(token,
		dbot.WithGatewayConfigOpts(
			gateway.WithIntents(
				gateway.IntentGuilds,
				gateway.IntentGuildMessages,
				gateway.IntentMessageContent,
			),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to make discord client: %w", err)
	}
	return client, nil
}

// InviteURL returns the oauth url to invite the bot with the required permissions
func InviteURL(appID snowflake.ID) string {
	return fmt.Sprintf("https://discord.com/oauth2/authorize?client_id=%s&permissions=%d&scope=bot", appID, botPermissions)
}

// Discord implements DiscordAPI on top of the disgo rest client
type Discord struct {
	client dbot.Client
}

// NewDiscord creates Discord wrapper for the given client
func NewDiscord(client dbot.Client) *Discord {
	return &Discord{client: client}
}

// DeleteMessage removes a single message
func (d *Discord) DeleteMessage(ctx context.Context, channelID, messageID uint64) error {
	return d.client.Rest().DeleteMessage(snowflake.ID(channelID), snowflake.ID(messageID), rest.WithCtx(ctx))
}

// TimeoutMember sets the communication-disabled timestamp for the member
func (d *Discord) TimeoutMember(ctx context.Context, guildID, userID uint64, until time.Time, reason string) error {
	_, err := d.client.Rest().UpdateMember(snowflake.ID(guildID), snowflake.ID(userID),
		discord.MemberUpdate{CommunicationDisabledUntil: json.NewNullablePtr(until)},
		rest.WithCtx(ctx), rest.WithReason(reason))
	return err
}

// SendMessage posts a plain text message to the channel, mentions limited to users
func (d *Discord) SendMessage(ctx context.Context, channelID uint64, text string) error {
	_, err := d.client.Rest().CreateMessage(snowflake.ID(channelID),
		discord.NewMessageCreateBuilder().
			SetContent(text).
			SetAllowedMentions(&discord.AllowedMentions{Parse: []discord.AllowedMentionType{discord.AllowedMentionTypeUsers}}).
			Build(),
		rest.WithCtx(ctx))
	return err
}

// transform converts a gateway message to the platform-neutral bot.Message
func transform(msg discord.Message, guildID snowflake.ID) bot.Message {
	res := bot.Message{
		ID:        uint64(msg.ID),
		ChannelID: uint64(msg.ChannelID),
		GuildID:   uint64(guildID),
		Text:      msg.Content,
		Sent:      msg.CreatedAt,
		From:      bot.User{ID: uint64(msg.Author.ID), Username: msg.Author.Username},
	}
	if msg.Author.GlobalName != nil {
		res.From.DisplayName = *msg.Author.GlobalName
	}
	for _, att := range msg.Attachments {
		a := bot.Attachment{Filename: att.Filename, URL: att.URL}
		if att.ContentType != nil {
			a.ContentType = *att.ContentType
		}
		res.Attachments = append(res.Attachments, a)
	}
	return res
}
