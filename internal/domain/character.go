package domain

// AbilityArgs carries the optional targets of a character ability. A nil
// Target or a negative index means the argument was not supplied.
type AbilityArgs struct {
	Target          *Player
	CardIndex       int
	TargetCardIndex int
}

// NoTarget returns AbilityArgs with every optional argument absent.
func NoTarget() AbilityArgs {
	return AbilityArgs{CardIndex: -1, TargetCardIndex: -1}
}

// Ability is the capability a character delegates to when used. The core
// only routes the call and enforces the one-use-per-round contract; the
// authoritative effect is resolved server-side.
type Ability interface {
	Use(owner *Player, args AbilityArgs) bool
}

// AbilityFunc adapts a plain function to the Ability interface.
type AbilityFunc func(owner *Player, args AbilityArgs) bool

func (f AbilityFunc) Use(owner *Player, args AbilityArgs) bool {
	return f(owner, args)
}

// Character is a catalog entry shared read-mostly across players. Only Used
// mutates, and only within a round.
type Character struct {
	TextureKey string
	Name       string
	// Order is the fixed rank used to order reveals and play sequence.
	Order   int
	Used    bool
	Ability Ability
}

// Roster builds the full character catalog in play order. Each call returns
// a fresh catalog so sessions never share Used flags.
func Roster() []*Character {
	return []*Character{
		{TextureKey: "speculator", Name: "Speculator", Order: 1,
			Ability: AbilityFunc(func(owner *Player, _ AbilityArgs) bool {
				owner.Cash += 2
				return true
			})},
		{TextureKey: "banker", Name: "Banker", Order: 2,
			Ability: AbilityFunc(func(owner *Player, _ AbilityArgs) bool {
				owner.Cash += owner.BankLoans
				return true
			})},
		{TextureKey: "auditor", Name: "Auditor", Order: 3,
			Ability: AbilityFunc(func(_ *Player, args AbilityArgs) bool {
				if args.Target == nil {
					return false
				}
				args.Target.Reveal = true
				return true
			})},
		{TextureKey: "magnate", Name: "Magnate", Order: 4,
			Ability: AbilityFunc(func(owner *Player, _ AbilityArgs) bool {
				owner.Gold += len(owner.AssetList)
				return true
			})},
		{TextureKey: "broker", Name: "Broker", Order: 5,
			Ability: AbilityFunc(func(owner *Player, _ AbilityArgs) bool {
				owner.PlayableAssets++
				return true
			})},
		{TextureKey: "underwriter", Name: "Underwriter", Order: 6,
			Ability: AbilityFunc(func(owner *Player, _ AbilityArgs) bool {
				owner.PlayableLiabilities++
				return true
			})},
		{TextureKey: "arbitrageur", Name: "Arbitrageur", Order: 7,
			Ability: AbilityFunc(func(owner *Player, args AbilityArgs) bool {
				if args.CardIndex < 0 || args.CardIndex >= len(owner.Hand) {
					return false
				}
				card := owner.Hand[args.CardIndex]
				if card.Kind != KindAsset {
					return false
				}
				owner.Silver += card.SilverValue
				return true
			})},
		{TextureKey: "regulator", Name: "Regulator", Order: 8,
			Ability: AbilityFunc(func(_ *Player, args AbilityArgs) bool {
				if args.Target == nil {
					return false
				}
				args.Target.SkipNextTurn = true
				return true
			})},
	}
}
