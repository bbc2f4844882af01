package discord

import (
	"context"
	"fmt"

	"github.com/airai75/harubot/internal/mind"

	"github.com/bwmarrin/discordgo"
)

// Channel adapts one Discord channel to the mind.Messenger surface.
type Channel struct {
	s         *discordgo.Session
	channelID string
}

func NewChannel(s *discordgo.Session, channelID string) *Channel {
	return &Channel{s: s, channelID: channelID}
}

// historyPage is the largest page the Discord API serves in one call.
const historyPage = 100

// History returns messages oldest first. Time bounds are applied client-side:
// the Discord API filters by message id only, and this channel's traffic fits
// comfortably in one page.
func (c *Channel) History(ctx context.Context, q mind.HistoryQuery) ([]mind.ChatMessage, error) {
	limit := q.Limit
	if limit <= 0 || limit > historyPage {
		limit = historyPage
	}
	fetch := limit
	if q.BeforeID == "" && (!q.After.IsZero() || !q.Before.IsZero()) {
		fetch = historyPage
	}

	raw, err := c.s.ChannelMessages(c.channelID, fetch, q.BeforeID, "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}

	// The API returns newest first; walk backwards for oldest first.
	msgs := make([]mind.ChatMessage, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		m := raw[i]
		if m.Author == nil {
			continue
		}
		if !q.After.IsZero() && !m.Timestamp.After(q.After) {
			continue
		}
		if !q.Before.IsZero() && m.Timestamp.After(q.Before) {
			continue
		}
		msgs = append(msgs, mind.ChatMessage{
			ID:           m.ID,
			AuthorID:     m.Author.ID,
			AuthorName:   displayName(m.Author),
			Content:      m.Content,
			CreatedAt:    m.Timestamp,
			MentionsSelf: c.mentionsSelf(m),
		})
	}
	if len(msgs) > limit {
		msgs = msgs[:limit]
	}
	return msgs, nil
}

func (c *Channel) Send(ctx context.Context, text string) error {
	if _, err := c.s.ChannelMessageSend(c.channelID, text, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

func (c *Channel) Typing(ctx context.Context) error {
	return c.s.ChannelTyping(c.channelID, discordgo.WithContext(ctx))
}

func (c *Channel) SetPresence(ctx context.Context, p mind.Presence) error {
	status := discordgo.StatusInvisible
	if p == mind.PresenceActive {
		status = discordgo.StatusOnline
	}
	return c.s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: string(status),
	})
}

func (c *Channel) SelfID() string {
	if c.s.State != nil && c.s.State.User != nil {
		return c.s.State.User.ID
	}
	return ""
}

func (c *Channel) mentionsSelf(m *discordgo.Message) bool {
	self := c.SelfID()
	for _, u := range m.Mentions {
		if u.ID == self {
			return true
		}
	}
	return false
}

func displayName(u *discordgo.User) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}
