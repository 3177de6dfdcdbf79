package protocol

import (
	"errors"
	"testing"
)

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		check func(t *testing.T, ev Event)
	}{
		{
			name: "TurnStarts",
			raw:  `{"action":"TurnStarts","data":{"player_turn":"p2","player_character":"banker","draws_n_cards":2,"player_turn_cash":3}}`,
			check: func(t *testing.T, ev Event) {
				ts, ok := ev.(*TurnStarts)
				if !ok {
					t.Fatalf("decoded %T", ev)
				}
				if ts.PlayerTurn != "p2" || ts.PlayerCharacter != "banker" ||
					ts.DrawsNCards != 2 || ts.PlayerTurnCash != 3 {
					t.Errorf("fields = %+v", ts)
				}
			},
		},
		{
			name: "YouDrewCard with asset payload",
			raw:  `{"action":"YouDrewCard","data":{"card":{"card_type":"asset","title":"Mine","gold_value":4,"silver_value":1},"can_draw_cards":true,"can_give_back_cards":false}}`,
			check: func(t *testing.T, ev Event) {
				e, ok := ev.(*YouDrewCard)
				if !ok {
					t.Fatalf("decoded %T", ev)
				}
				if e.Card.Title != "Mine" || e.Card.GoldValue != 4 || !e.CanDrawCards {
					t.Errorf("fields = %+v", e)
				}
			},
		},
		{
			name: "YouIssuedLiability with liability payload",
			raw:  `{"action":"YouIssuedLiability","data":{"liability":{"card_type":"liability","rfr_type":"Bond","value":3}}}`,
			check: func(t *testing.T, ev Event) {
				e, ok := ev.(*YouIssuedLiability)
				if !ok {
					t.Fatalf("decoded %T", ev)
				}
				if e.Liability.RfrType != "Bond" || e.Liability.Value != 3 {
					t.Errorf("fields = %+v", e)
				}
			},
		},
		{
			name: "SelectingCharacters",
			raw:  `{"action":"SelectingCharacters","data":{"open_characters":["auditor"],"selectable_characters":["banker","magnate"],"closed_character":["regulator"],"chairman_id":"p1"}}`,
			check: func(t *testing.T, ev Event) {
				e, ok := ev.(*SelectingCharacters)
				if !ok {
					t.Fatalf("decoded %T", ev)
				}
				if e.ChairmanID != "p1" || len(e.SelectableCharacters) != 2 {
					t.Errorf("fields = %+v", e)
				}
			},
		},
		{
			name: "StartGame with roster",
			raw:  `{"action":"StartGame","data":{"id":"p1","cash":5,"hand":[{"card_type":"asset","title":"Mine","gold_value":4,"silver_value":1}],"player_info":[{"id":"p2","name":"bob","cash":5,"hand":["Asset","Liability"]}]}}`,
			check: func(t *testing.T, ev Event) {
				e, ok := ev.(*StartGame)
				if !ok {
					t.Fatalf("decoded %T", ev)
				}
				if e.ID != "p1" || len(e.Hand) != 1 || len(e.PlayerInfo) != 1 {
					t.Errorf("fields = %+v", e)
				}
				if e.PlayerInfo[0].Hand[1] != "Liability" {
					t.Errorf("opponent hand tags = %v", e.PlayerInfo[0].Hand)
				}
			},
		},
		{
			name: "event without data member",
			raw:  `{"action":"PlayersInLobby"}`,
			check: func(t *testing.T, ev Event) {
				if _, ok := ev.(*PlayersInLobby); !ok {
					t.Fatalf("decoded %T", ev)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := DecodeEvent([]byte(tt.raw))
			if err != nil {
				t.Fatalf("DecodeEvent: %v", err)
			}
			tt.check(t, ev)
		})
	}
}

func TestDecodeEventUnknownAction(t *testing.T) {
	_, err := DecodeEvent([]byte(`{"action":"FutureFeature","data":{}}`))
	if !errors.Is(err, ErrUnknownAction) {
		t.Fatalf("err = %v, want ErrUnknownAction", err)
	}
}

func TestDecodeEventMalformed(t *testing.T) {
	if _, err := DecodeEvent([]byte(`{"action":`)); err == nil {
		t.Fatal("malformed envelope decoded without error")
	}
	if _, err := DecodeEvent([]byte(`{"action":"TurnStarts","data":{"draws_n_cards":"two"}}`)); err == nil {
		t.Fatal("malformed payload decoded without error")
	}
}

func TestEncodeCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "Connect carries username and channel",
			cmd:  ConnectCommand{Username: "ada", Channel: "table-1"},
			want: `{"action":"Connect","data":{"username":"ada","channel":"table-1"}}`,
		},
		{
			name: "BuyAsset carries the hand index",
			cmd:  BuyAssetCommand{CardIdx: 2},
			want: `{"action":"BuyAsset","data":{"card_idx":2}}`,
		},
		{
			name: "zero index is still encoded",
			cmd:  PutBackCardCommand{CardIdx: 0},
			want: `{"action":"PutBackCard","data":{"card_idx":0}}`,
		},
		{
			name: "EndTurn omits the data member",
			cmd:  EndTurnCommand{},
			want: `{"action":"EndTurn"}`,
		},
		{
			name: "StartGame omits the data member",
			cmd:  StartGameCommand{},
			want: `{"action":"StartGame"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := EncodeCommand(tt.cmd)
			if err != nil {
				t.Fatalf("EncodeCommand: %v", err)
			}
			if string(raw) != tt.want {
				t.Errorf("frame = %s, want %s", raw, tt.want)
			}
		})
	}
}
