package protocol

import (
	"encoding/json"
	"fmt"
)

// Command is an outbound client intent. Serialization is the only thing
// that happens on the outbound path; no command mutates state.
type Command interface {
	CommandAction() string
}

// ConnectCommand joins a named channel under a username.
type ConnectCommand struct {
	Username string `json:"username"`
	Channel  string `json:"channel"`
}

// DrawCardCommand requests one draft candidate of the given kind.
type DrawCardCommand struct {
	CardType string `json:"card_type"`
}

// BuyAssetCommand plays the asset at the given hand index.
type BuyAssetCommand struct {
	CardIdx int `json:"card_idx"`
}

// IssueLiabilityCommand plays the liability at the given hand index.
type IssueLiabilityCommand struct {
	CardIdx int `json:"card_idx"`
}

// PutBackCardCommand discards the draft candidate at the given hand index.
type PutBackCardCommand struct {
	CardIdx int `json:"card_idx"`
}

// EndTurnCommand yields the turn.
type EndTurnCommand struct{}

// SelectCharacterCommand picks a character by texture key.
type SelectCharacterCommand struct {
	Character string `json:"character"`
}

// StartGameCommand asks the server to start the match from the lobby.
type StartGameCommand struct{}

func (ConnectCommand) CommandAction() string         { return "Connect" }
func (DrawCardCommand) CommandAction() string        { return "DrawCard" }
func (BuyAssetCommand) CommandAction() string        { return "BuyAsset" }
func (IssueLiabilityCommand) CommandAction() string  { return "IssueLiability" }
func (PutBackCardCommand) CommandAction() string     { return "PutBackCard" }
func (EndTurnCommand) CommandAction() string         { return "EndTurn" }
func (SelectCharacterCommand) CommandAction() string { return "SelectCharacter" }
func (StartGameCommand) CommandAction() string       { return "StartGame" }

// EncodeCommand marshals cmd into its envelope frame. Commands with no
// payload fields omit the data member entirely.
func EncodeCommand(cmd Command) ([]byte, error) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", cmd.CommandAction(), err)
	}

	env := Envelope{Action: cmd.CommandAction()}
	if string(payload) != "{}" {
		env.Data = payload
	}

	raw, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encode %s envelope: %w", cmd.CommandAction(), err)
	}
	return raw, nil
}
