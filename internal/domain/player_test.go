package domain

import "testing"

func asset(title string, gold, silver int) *Card {
	return &Card{Kind: KindAsset, Title: title, GoldValue: gold, SilverValue: silver}
}

func liability(rfr string, value int) *Card {
	return &Card{Kind: KindLiability, ReimbursementType: rfr, Value: value}
}

// countEverywhere returns how many of the player's piles contain the card.
func countEverywhere(p *Player, card *Card) int {
	n := 0
	for _, pile := range [][]*Card{p.Hand, p.AssetList, p.LiabilityList} {
		for _, c := range pile {
			if c == card {
				n++
			}
		}
	}
	return n
}

func TestAddCardToHandAssignsIncreasingPlacement(t *testing.T) {
	p := NewPlayer("ada", "p1")
	a := asset("Mine", 4, 1)
	b := liability("Bond", 3)
	p.AddCardToHand(a)
	p.AddCardToHand(b)

	if a.Placement >= b.Placement {
		t.Fatalf("placement not increasing: %d then %d", a.Placement, b.Placement)
	}
}

func TestMoveToAssetsAppliesDeltasAndKeepsCardUnique(t *testing.T) {
	p := NewPlayer("ada", "p1")
	p.Cash = 10
	card := asset("Mine", 4, 1)
	p.AddCardToHand(card)

	if !p.MoveToAssets(0) {
		t.Fatal("MoveToAssets failed")
	}
	if p.Cash != 6 || p.Gold != 4 || p.Silver != 1 {
		t.Errorf("deltas wrong: cash=%d gold=%d silver=%d", p.Cash, p.Gold, p.Silver)
	}
	if p.PlayableAssets != 0 {
		t.Errorf("PlayableAssets = %d, want 0", p.PlayableAssets)
	}
	if got := countEverywhere(p, card); got != 1 {
		t.Errorf("card present %d times across piles, want exactly 1", got)
	}
	if len(p.Hand) != 0 || len(p.AssetList) != 1 {
		t.Errorf("card not moved: hand=%d assets=%d", len(p.Hand), len(p.AssetList))
	}
}

func TestMoveToLiabilitiesCreditsFaceValue(t *testing.T) {
	p := NewPlayer("ada", "p1")
	card := liability("Bond", 3)
	p.AddCardToHand(card)

	if !p.MoveToLiabilities(0) {
		t.Fatal("MoveToLiabilities failed")
	}
	if p.Cash != 3 {
		t.Errorf("Cash = %d, want 3", p.Cash)
	}
	if p.PlayableLiabilities != 0 {
		t.Errorf("PlayableLiabilities = %d, want 0", p.PlayableLiabilities)
	}
	if got := countEverywhere(p, card); got != 1 {
		t.Errorf("card present %d times across piles, want exactly 1", got)
	}
}

func TestMoveRejectsWrongKindWithoutMutation(t *testing.T) {
	p := NewPlayer("ada", "p1")
	p.Cash = 5
	p.AddCardToHand(liability("Bond", 3))

	if p.MoveToAssets(0) {
		t.Fatal("MoveToAssets accepted a liability")
	}
	if p.Cash != 5 || len(p.Hand) != 1 || p.PlayableAssets != 1 {
		t.Error("failed move mutated state")
	}
	if p.MoveToAssets(7) {
		t.Fatal("MoveToAssets accepted an out-of-range index")
	}
}

func TestMatchInHand(t *testing.T) {
	p := NewPlayer("ada", "p1")
	mine := asset("Mine", 4, 1)
	mill := asset("Mill", 2, 2)
	bond := liability("Bond", 3)
	for _, c := range []*Card{mine, mill, bond} {
		p.AddCardToHand(c)
	}

	tests := []struct {
		name string
		echo *Card
		want int
	}{
		{"asset by semantic fields", asset("Mill", 2, 2), 1},
		{"liability by semantic fields", liability("Bond", 3), 2},
		{"no match", asset("Quarry", 9, 9), -1},
		{"kind mismatch", &Card{Kind: KindLiability, Title: "Mine"}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.MatchInHand(tt.echo); got != tt.want {
				t.Errorf("MatchInHand = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMatchInHandPrefersStableID(t *testing.T) {
	p := NewPlayer("ada", "p1")
	first := asset("Mine", 4, 1)
	first.ID = "c-1"
	second := asset("Mine", 4, 1)
	second.ID = "c-2"
	p.AddCardToHand(first)
	p.AddCardToHand(second)

	echo := asset("Mine", 4, 1)
	echo.ID = "c-2"
	if got := p.MatchInHand(echo); got != 1 {
		t.Errorf("MatchInHand = %d, want 1 (id match must beat field match)", got)
	}
}

func TestPromoteTemporary(t *testing.T) {
	p := NewPlayer("ada", "p1")
	kept := asset("Mine", 4, 1)
	draft := asset("Mill", 2, 2)
	draft.IsTemporary = true
	p.AddCardToHand(kept)
	p.AddCardToHand(draft)

	if p.TemporaryCount() != 1 {
		t.Fatalf("TemporaryCount = %d, want 1", p.TemporaryCount())
	}
	p.PromoteTemporary()
	if p.TemporaryCount() != 0 {
		t.Errorf("TemporaryCount after promote = %d, want 0", p.TemporaryCount())
	}
}

func TestHandByKindProjection(t *testing.T) {
	p := NewPlayer("ada", "p1")
	a1 := asset("Mine", 4, 1)
	a2 := asset("Mill", 2, 2)
	a2.IsTemporary = true
	l1 := liability("Bond", 3)
	for _, c := range []*Card{a1, a2, l1} {
		p.AddCardToHand(c)
	}

	if got := p.HandByKind(KindAsset, false); len(got) != 1 || got[0] != a1 {
		t.Errorf("kept assets = %v", got)
	}
	if got := p.HandByKind(KindAsset, true); len(got) != 1 || got[0] != a2 {
		t.Errorf("temporary assets = %v", got)
	}
	if len(p.Hand) != 3 {
		t.Error("projection mutated the hand")
	}
}

func TestOthersHandTags(t *testing.T) {
	p := NewPlayer("bob", "p2")
	p.AddOthersHandTag(KindAsset)
	p.AddOthersHandTag(KindLiability)
	p.AddOthersHandTag(KindAsset)

	if !p.RemoveOthersHandTag(KindAsset) {
		t.Fatal("RemoveOthersHandTag failed")
	}
	if got := p.CountOthersHand(KindAsset); got != 1 {
		t.Errorf("asset tags = %d, want 1", got)
	}
	if len(p.OthersHand) != 2 {
		t.Errorf("OthersHand length = %d, want 2", len(p.OthersHand))
	}
	if p.RemoveOthersHandTag("Bogus") {
		t.Error("removed a tag that was never added")
	}
}

func TestUseCharacterAbilityOncePerRound(t *testing.T) {
	p := NewPlayer("ada", "p1")
	if p.UseCharacterAbility(NoTarget()) {
		t.Fatal("ability succeeded with no character assigned")
	}

	p.Character = &Character{
		TextureKey: "speculator", Name: "Speculator", Order: 1,
		Ability: AbilityFunc(func(owner *Player, _ AbilityArgs) bool {
			owner.Cash += 2
			return true
		}),
	}
	if !p.UseCharacterAbility(NoTarget()) {
		t.Fatal("first use failed")
	}
	if p.Cash != 2 {
		t.Errorf("Cash = %d, want 2", p.Cash)
	}
	if p.UseCharacterAbility(NoTarget()) {
		t.Fatal("second use succeeded without a round reset")
	}
}

func TestUseCharacterAbilityFailureLeavesUsedClear(t *testing.T) {
	p := NewPlayer("ada", "p1")
	p.Character = &Character{
		TextureKey: "auditor", Name: "Auditor", Order: 3,
		Ability: AbilityFunc(func(_ *Player, args AbilityArgs) bool {
			return args.Target != nil
		}),
	}
	if p.UseCharacterAbility(NoTarget()) {
		t.Fatal("ability succeeded without its required target")
	}
	if p.Character.Used {
		t.Error("failed use consumed the one-shot flag")
	}
}
