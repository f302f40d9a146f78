package models

type ChannelType int

const (
	ChannelTypeText         ChannelType = 0
	ChannelTypeVoice        ChannelType = 2
	ChannelTypeCategory     ChannelType = 4
	ChannelTypeAnnouncement ChannelType = 5
	ChannelTypeForum        ChannelType = 15
)

type Guild struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	VanityURLCode string `json:"vanity_url_code"`
}

type Channel struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Type ChannelType `json:"type"`
}

// IsTextCapable сообщает, поддерживает ли канал публикацию текстовых сообщений.
// Голосовые каналы, категории и форумы в резервном копировании не участвуют.
func (c *Channel) IsTextCapable() bool {
	return c.Type == ChannelTypeText || c.Type == ChannelTypeAnnouncement
}

type Message struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}
