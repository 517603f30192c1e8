// Package telegram models the inbound Bot API webhook payload and resolves
// attached media into fetchable URLs.
package telegram

import "strings"

// Update is the envelope Telegram posts to the webhook. Exactly one of
// Message or ChannelPost is set depending on whether the bot received a
// direct message or a channel broadcast.
type Update struct {
	UpdateID    int64    `json:"update_id"`
	Message     *Message `json:"message"`
	ChannelPost *Message `json:"channel_post"`
}

// Content resolves the direct-message/channel-broadcast union; past this
// point the two shapes are equivalent.
func (u *Update) Content() *Message {
	if u == nil {
		return nil
	}
	if u.Message != nil {
		return u.Message
	}
	return u.ChannelPost
}

// Message carries the parts of the Bot API message object the ingestion
// pipeline reads.
type Message struct {
	MessageID int64       `json:"message_id"`
	Text      string      `json:"text"`
	Caption   string      `json:"caption"`
	Photo     []PhotoSize `json:"photo"`
}

// BodyText returns the message text, falling back to the caption.
func (m *Message) BodyText() string {
	if m == nil {
		return ""
	}
	if strings.TrimSpace(m.Text) != "" {
		return m.Text
	}
	return m.Caption
}

// LargestPhoto returns the last attachment in the photo list; Telegram
// orders sizes ascending, so the last entry is the highest resolution.
func (m *Message) LargestPhoto() (PhotoSize, bool) {
	if m == nil || len(m.Photo) == 0 {
		return PhotoSize{}, false
	}
	return m.Photo[len(m.Photo)-1], true
}

// PhotoSize is a single rendition of an attached photo.
type PhotoSize struct {
	FileID string `json:"file_id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
