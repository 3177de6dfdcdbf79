package domain

import "testing"

func newStateWithPlayers(ids ...string) *GameState {
	gs := NewGameState()
	for _, id := range ids {
		gs.Players = append(gs.Players, NewPlayer("name-"+id, id))
	}
	return gs
}

func TestRosterOrderAndUniqueness(t *testing.T) {
	roster := Roster()
	if len(roster) != 8 {
		t.Fatalf("roster size = %d, want 8", len(roster))
	}
	seen := map[string]bool{}
	for i, c := range roster {
		if c.Order != i+1 {
			t.Errorf("%s order = %d, want %d", c.TextureKey, c.Order, i+1)
		}
		if seen[c.TextureKey] {
			t.Errorf("duplicate texture key %q", c.TextureKey)
		}
		seen[c.TextureKey] = true
	}
}

func TestSetCurrentPlayerIndexBounds(t *testing.T) {
	gs := newStateWithPlayers("p1", "p2")
	gs.SetCurrentPlayerIndex(1)
	if gs.CurrentPlayerIndex != 1 {
		t.Fatalf("index = %d, want 1", gs.CurrentPlayerIndex)
	}
	gs.SetCurrentPlayerIndex(5)
	gs.SetCurrentPlayerIndex(-1)
	if gs.CurrentPlayerIndex != 1 {
		t.Errorf("out-of-range index accepted: %d", gs.CurrentPlayerIndex)
	}
}

func TestPlayerLookups(t *testing.T) {
	gs := newStateWithPlayers("p1", "p2")
	gs.MyID = "p2"

	if got := gs.PlayerByID("p2"); got == nil || got.ID != "p2" {
		t.Errorf("PlayerByID(p2) = %v", got)
	}
	if got := gs.PlayerByID("ghost"); got != nil {
		t.Errorf("PlayerByID(ghost) = %v, want nil", got)
	}
	if got := gs.PlayerIndex("p1"); got != 0 {
		t.Errorf("PlayerIndex(p1) = %d, want 0", got)
	}
	if got := gs.PlayerIndex("ghost"); got != -1 {
		t.Errorf("PlayerIndex(ghost) = %d, want -1", got)
	}
	if got := gs.LocalPlayer(); got == nil || got.ID != "p2" {
		t.Errorf("LocalPlayer = %v", got)
	}
}

func TestCharactersByTextureKeepsCatalogOrder(t *testing.T) {
	gs := NewGameState()
	got := gs.CharactersByTexture([]string{"regulator", "banker", "ghost"})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].TextureKey != "banker" || got[1].TextureKey != "regulator" {
		t.Errorf("order = %s, %s; want catalog order", got[0].TextureKey, got[1].TextureKey)
	}
}

func TestResetForNewRound(t *testing.T) {
	gs := newStateWithPlayers("p1", "p2")
	banker := gs.CharacterByTexture("banker")
	banker.Used = true

	p := gs.Players[0]
	p.Character = banker
	p.Reveal = true
	p.IsChairman = true
	p.PlayableAssets = 0
	p.PlayableLiabilities = 0
	gs.FaceUpCharacters = []*Character{banker}
	gs.OpenCharacters = []*Character{banker}
	gs.ClosedCharacters = []*Character{banker}

	gs.ResetForNewRound()

	for _, pl := range gs.Players {
		if pl.Character != nil || pl.Reveal || pl.IsChairman {
			t.Errorf("player %s round flags not cleared", pl.ID)
		}
		if pl.PlayableAssets != 1 || pl.PlayableLiabilities != 1 {
			t.Errorf("player %s play budget = %d/%d, want 1/1",
				pl.ID, pl.PlayableAssets, pl.PlayableLiabilities)
		}
	}
	if banker.Used {
		t.Error("character Used flag survived the round reset")
	}
	if gs.FaceUpCharacters != nil || gs.OpenCharacters != nil || gs.ClosedCharacters != nil {
		t.Error("character pools not cleared")
	}
}
