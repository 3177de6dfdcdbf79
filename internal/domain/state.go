package domain

// Phase represents the client-visible stage of the session.
type Phase string

const (
	// PhaseLobby is the pre-game state where players gather.
	PhaseLobby Phase = "lobby"
	// PhaseCharacter is the round-opening character selection.
	PhaseCharacter Phase = "character"
	// PhasePicking is the local player's draft: drawing and discarding
	// candidate cards.
	PhasePicking Phase = "picking"
	// PhaseMain is the local player's resource play.
	PhaseMain Phase = "main"
	// PhaseElseTurn is observing a peer's turn.
	PhaseElseTurn Phase = "elseTurn"
)

// GameState is the session view kept in sync with the authoritative server.
// Constructed once per session; per-round fields are cleared by
// ResetForNewRound, everything else is overwritten by events.
type GameState struct {
	// Players in turn order once assigned.
	Players            []*Player
	CurrentPlayerIndex int

	MyID     string
	Username string

	CurrentPhase Phase

	// Characters is the full catalog. The three pools below are disjoint
	// subsets describing this round's selectable, publicly-discarded and
	// hidden characters.
	Characters       []*Character
	FaceUpCharacters []*Character
	OpenCharacters   []*Character
	ClosedCharacters []*Character
}

// NewGameState constructs session state with a fresh character catalog.
func NewGameState() *GameState {
	return &GameState{
		Characters:   Roster(),
		CurrentPhase: PhaseLobby,
	}
}

// SetCurrentPlayerIndex updates the active player pointer, ignoring
// out-of-range values.
func (gs *GameState) SetCurrentPlayerIndex(idx int) {
	if idx >= 0 && idx < len(gs.Players) {
		gs.CurrentPlayerIndex = idx
	}
}

// CurrentPlayer returns the active player, or nil for an empty roster.
func (gs *GameState) CurrentPlayer() *Player {
	if gs.CurrentPlayerIndex < 0 || gs.CurrentPlayerIndex >= len(gs.Players) {
		return nil
	}
	return gs.Players[gs.CurrentPlayerIndex]
}

// PlayerByID finds a player by stable identity, or nil.
func (gs *GameState) PlayerByID(id string) *Player {
	for _, p := range gs.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayerIndex returns the roster index for the given id, or -1.
func (gs *GameState) PlayerIndex(id string) int {
	for i, p := range gs.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// LocalPlayer returns the player owning this client, or nil before the
// server has assigned an identity.
func (gs *GameState) LocalPlayer() *Player {
	return gs.PlayerByID(gs.MyID)
}

// CharacterByTexture looks a catalog entry up by texture key, or nil.
func (gs *GameState) CharacterByTexture(key string) *Character {
	for _, c := range gs.Characters {
		if c.TextureKey == key {
			return c
		}
	}
	return nil
}

// CharactersByTexture projects the catalog entries named by keys,
// preserving catalog order. Unknown keys are skipped.
func (gs *GameState) CharactersByTexture(keys []string) []*Character {
	var out []*Character
	for _, c := range gs.Characters {
		for _, k := range keys {
			if c.TextureKey == k {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// ResetForNewRound clears per-round player flags, character pools and
// ability one-shot flags at the start of each character-selection phase.
func (gs *GameState) ResetForNewRound() {
	for _, p := range gs.Players {
		p.Character = nil
		p.Reveal = false
		p.IsChairman = false
		p.PlayableAssets = 1
		p.PlayableLiabilities = 1
	}
	for _, c := range gs.Characters {
		c.Used = false
	}
	gs.FaceUpCharacters = nil
	gs.OpenCharacters = nil
	gs.ClosedCharacters = nil
}
