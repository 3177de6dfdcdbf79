package domain

// Player holds the client-side view of one participant. A card instance
// belongs to exactly one of Hand, AssetList or LiabilityList at any time;
// the Move/Remove helpers below are the only mutation path between them.
type Player struct {
	ID   string
	Name string

	Hand          []*Card
	AssetList     []*Card
	LiabilityList []*Card

	// OthersHand is the multiset of kind tags for an opponent's unseen
	// cards. Content fields are never stored here.
	OthersHand []CardKind

	Cash        int
	Gold        int
	Silver      int
	TradeCredit int
	BankLoans   int
	Bonds       int

	// Character references the shared catalog; it is not owned.
	Character  *Character
	Reveal     bool
	IsChairman bool

	// Per-turn play budget, reset to 1/1 at turn start.
	PlayableAssets      int
	PlayableLiabilities int

	// DrawableCards is the draft allowance announced by the server.
	DrawableCards int

	SkipNextTurn bool

	nextPlacement int
}

// NewPlayer constructs a player with a fresh per-turn play budget.
func NewPlayer(name, id string) *Player {
	return &Player{
		ID:                  id,
		Name:                name,
		PlayableAssets:      1,
		PlayableLiabilities: 1,
	}
}

// AddCardToHand appends card and assigns a monotonically increasing
// placement rank used for visual stacking.
func (p *Player) AddCardToHand(card *Card) {
	card.Placement = p.nextPlacement
	p.nextPlacement++
	p.Hand = append(p.Hand, card)
}

// RemoveCardAt removes and returns the hand card at idx.
func (p *Player) RemoveCardAt(idx int) (*Card, bool) {
	if idx < 0 || idx >= len(p.Hand) {
		return nil, false
	}
	card := p.Hand[idx]
	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
	return card, true
}

// MatchInHand finds the index of the hand card the server echo refers to,
// or -1 when no card matches.
func (p *Player) MatchInHand(echo *Card) int {
	for i, c := range p.Hand {
		if c.SameCard(echo) {
			return i
		}
	}
	return -1
}

// MoveToAssets moves the hand card at idx into the asset pile and applies
// the purchase deltas: the card's gold value is paid from cash and both
// commodity values are credited. Returns false without mutating on a bad
// index or a non-asset card.
func (p *Player) MoveToAssets(idx int) bool {
	if idx < 0 || idx >= len(p.Hand) || p.Hand[idx].Kind != KindAsset {
		return false
	}
	card, _ := p.RemoveCardAt(idx)
	p.Cash -= card.GoldValue
	p.Gold += card.GoldValue
	p.Silver += card.SilverValue
	p.AssetList = append(p.AssetList, card)
	p.PlayableAssets--
	return true
}

// MoveToLiabilities moves the hand card at idx into the liability pile and
// credits its face value as cash.
func (p *Player) MoveToLiabilities(idx int) bool {
	if idx < 0 || idx >= len(p.Hand) || p.Hand[idx].Kind != KindLiability {
		return false
	}
	card, _ := p.RemoveCardAt(idx)
	p.Cash += card.Value
	p.LiabilityList = append(p.LiabilityList, card)
	p.PlayableLiabilities--
	return true
}

// PromoteTemporary clears the temporary flag on every hand card, resolving
// the draft selection.
func (p *Player) PromoteTemporary() {
	for _, c := range p.Hand {
		c.IsTemporary = false
	}
}

// TemporaryCount returns how many hand cards are still part of the draft.
func (p *Player) TemporaryCount() int {
	n := 0
	for _, c := range p.Hand {
		if c.IsTemporary {
			n++
		}
	}
	return n
}

// HandByKind projects the hand into one layout group: cards of the given
// kind, filtered by draft membership. Pure, no side effects.
func (p *Player) HandByKind(kind CardKind, temporary bool) []*Card {
	var out []*Card
	for _, c := range p.Hand {
		if c.Kind == kind && c.IsTemporary == temporary {
			out = append(out, c)
		}
	}
	return out
}

// AddOthersHandTag records one unseen card of the given kind for an
// opponent.
func (p *Player) AddOthersHandTag(kind CardKind) {
	p.OthersHand = append(p.OthersHand, kind)
}

// RemoveOthersHandTag removes one tag of the given kind from the unseen
// multiset. Returns false without mutating when no such tag is present.
func (p *Player) RemoveOthersHandTag(kind CardKind) bool {
	for i, k := range p.OthersHand {
		if k == kind {
			p.OthersHand = append(p.OthersHand[:i], p.OthersHand[i+1:]...)
			return true
		}
	}
	return false
}

// CountOthersHand returns how many unseen cards of the given kind the
// opponent holds.
func (p *Player) CountOthersHand(kind CardKind) int {
	n := 0
	for _, k := range p.OthersHand {
		if k == kind {
			n++
		}
	}
	return n
}

// UseCharacterAbility routes to the assigned character's capability,
// enforcing the one-use-per-round contract. Returns false when no character
// is assigned, the ability was already used this round, or the capability
// itself fails.
func (p *Player) UseCharacterAbility(args AbilityArgs) bool {
	if p.Character == nil || p.Character.Used || p.Character.Ability == nil {
		return false
	}
	if !p.Character.Ability.Use(p, args) {
		return false
	}
	p.Character.Used = true
	return true
}
