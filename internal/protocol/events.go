package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownAction marks an inbound action with no registered event type.
// Callers drop such frames silently to stay forward-compatible.
var ErrUnknownAction = errors.New("unknown action")

// Event is the closed set of inbound server events. Exactly the types in
// this file implement it; dispatch is a type switch, never a string lookup.
type Event interface {
	EventAction() string
}

// StartGame carries the local identity, opening cash and hand, and the
// opponent roster.
type StartGame struct {
	ID         string        `json:"id"`
	Cash       int           `json:"cash"`
	Hand       []CardPayload `json:"hand"`
	PlayerInfo []PlayerInfo  `json:"player_info"`
}

// PlayersInLobby announces the current lobby roster.
type PlayersInLobby struct {
	Usernames []string `json:"usernames"`
}

// SelectingCharacters opens a round: the catalog partition and the chairman
// who picks first.
type SelectingCharacters struct {
	OpenCharacters       []string `json:"open_characters"`
	SelectableCharacters []string `json:"selectable_characters"`
	ClosedCharacter      []string `json:"closed_character"`
	ChairmanID           string   `json:"chairman_id"`
}

// SelectedCharacter advances the picking pointer to the next player.
type SelectedCharacter struct {
	CurrentlyPickingID   string   `json:"currently_picking_id"`
	SelectableCharacters []string `json:"selectable_characters"`
}

// YouSelectedCharacter confirms the local player's pick.
type YouSelectedCharacter struct {
	Character string `json:"character"`
}

// TurnStarts announces the new active player, their character, draft
// allowance and turn income.
type TurnStarts struct {
	PlayerTurn      string `json:"player_turn"`
	PlayerCharacter string `json:"player_character"`
	DrawsNCards     int    `json:"draws_n_cards"`
	PlayerTurnCash  int    `json:"player_turn_cash"`
}

// YouDrewCard delivers a draft candidate to the local hand.
type YouDrewCard struct {
	Card             CardPayload `json:"card"`
	CanDrawCards     bool        `json:"can_draw_cards"`
	CanGiveBackCards bool        `json:"can_give_back_cards"`
}

// DrewCard reports that the active opponent drew a card; only the kind tag
// is revealed.
type DrewCard struct {
	CardType string `json:"card_type"`
}

// YouPutBackCard confirms a local discard by hand index.
type YouPutBackCard struct {
	CardIdx          int  `json:"card_idx"`
	CanDrawCards     bool `json:"can_draw_cards"`
	CanGiveBackCards bool `json:"can_give_back_cards"`
}

// PutBackCard reports an opponent's discard by kind tag.
type PutBackCard struct {
	PlayerID string `json:"player_id"`
	CardType string `json:"card_type"`
}

// YouBoughtAsset confirms a local asset purchase.
type YouBoughtAsset struct {
	Asset CardPayload `json:"asset"`
}

// BoughtAsset reports an opponent's asset purchase with the full card now
// public.
type BoughtAsset struct {
	Asset CardPayload `json:"asset"`
}

// YouIssuedLiability confirms a local liability issue.
type YouIssuedLiability struct {
	Liability CardPayload `json:"liability"`
}

// IssuedLiability reports an opponent's liability issue.
type IssuedLiability struct {
	Liability CardPayload `json:"liability"`
}

func (*StartGame) EventAction() string            { return "StartGame" }
func (*PlayersInLobby) EventAction() string       { return "PlayersInLobby" }
func (*SelectingCharacters) EventAction() string  { return "SelectingCharacters" }
func (*SelectedCharacter) EventAction() string    { return "SelectedCharacter" }
func (*YouSelectedCharacter) EventAction() string { return "YouSelectedCharacter" }
func (*TurnStarts) EventAction() string           { return "TurnStarts" }
func (*YouDrewCard) EventAction() string          { return "YouDrewCard" }
func (*DrewCard) EventAction() string             { return "DrewCard" }
func (*YouPutBackCard) EventAction() string       { return "YouPutBackCard" }
func (*PutBackCard) EventAction() string          { return "PutBackCard" }
func (*YouBoughtAsset) EventAction() string       { return "YouBoughtAsset" }
func (*BoughtAsset) EventAction() string          { return "BoughtAsset" }
func (*YouIssuedLiability) EventAction() string   { return "YouIssuedLiability" }
func (*IssuedLiability) EventAction() string      { return "IssuedLiability" }

// DecodeEvent parses one raw frame into its typed event. Returns a wrapped
// ErrUnknownAction for actions outside the catalog and a plain error for a
// malformed envelope or payload.
func DecodeEvent(raw []byte) (Event, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	var ev Event
	switch env.Action {
	case "StartGame":
		ev = &StartGame{}
	case "PlayersInLobby":
		ev = &PlayersInLobby{}
	case "SelectingCharacters":
		ev = &SelectingCharacters{}
	case "SelectedCharacter":
		ev = &SelectedCharacter{}
	case "YouSelectedCharacter":
		ev = &YouSelectedCharacter{}
	case "TurnStarts":
		ev = &TurnStarts{}
	case "YouDrewCard":
		ev = &YouDrewCard{}
	case "DrewCard":
		ev = &DrewCard{}
	case "YouPutBackCard":
		ev = &YouPutBackCard{}
	case "PutBackCard":
		ev = &PutBackCard{}
	case "YouBoughtAsset":
		ev = &YouBoughtAsset{}
	case "BoughtAsset":
		ev = &BoughtAsset{}
	case "YouIssuedLiability":
		ev = &YouIssuedLiability{}
	case "IssuedLiability":
		ev = &IssuedLiability{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, env.Action)
	}

	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, ev); err != nil {
			return nil, fmt.Errorf("decode %s data: %w", env.Action, err)
		}
	}
	return ev, nil
}
