package models

import "github.com/bwmarrin/discordgo"

// Embed colors, as decimal strings
const (
	EmbedColorReply         = "3244390"
	EmbedColorThread        = "8482097"
	EmbedColorVersionUpdate = "2379919"
)

// DiscordEmbed is a rich embed block. Color is sent as a decimal string, which Discord accepts.
type DiscordEmbed struct {
	Author      *discordgo.MessageEmbedAuthor `json:"author,omitempty"`
	Title       string                        `json:"title"`
	URL         string                        `json:"url,omitempty"`
	Description string                        `json:"description"`
	Image       *discordgo.MessageEmbedImage  `json:"image,omitempty"`
	Timestamp   string                        `json:"timestamp,omitempty"`
	Color       string                        `json:"color"`
}

type DiscordWebhookPayload struct {
	Embeds []DiscordEmbed `json:"embeds"`
}
