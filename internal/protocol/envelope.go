// Package protocol defines the wire contract with the game server: the
// JSON envelope shared by both directions, the closed set of inbound
// events and the outbound command catalog.
package protocol

import "encoding/json"

// Envelope is the single frame shape carried on the wire in both
// directions.
type Envelope struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data,omitempty"`
}

// CardPayload mirrors the card object shape shared by several events.
// Asset and liability fields overlap; CardType discriminates.
type CardPayload struct {
	// CardID is the server-assigned stable identifier. Older servers omit
	// it, in which case re-association falls back to semantic matching.
	CardID        string `json:"card_id,omitempty"`
	CardType      string `json:"card_type"`
	Title         string `json:"title,omitempty"`
	Color         string `json:"color,omitempty"`
	GoldValue     int    `json:"gold_value,omitempty"`
	SilverValue   int    `json:"silver_value,omitempty"`
	Ability       string `json:"ability,omitempty"`
	RfrType       string `json:"rfr_type,omitempty"`
	Value         int    `json:"value,omitempty"`
	ImageFrontURL string `json:"image_front_url,omitempty"`
}

// PlayerInfo describes an opponent in the StartGame roster. Hand carries
// kind tags only, never card content.
type PlayerInfo struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Cash int      `json:"cash"`
	Hand []string `json:"hand"`
}
