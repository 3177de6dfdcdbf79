package ports

import "boardroom/internal/domain"

// Screen names the mutually exclusive top-level views.
type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenLobby     Screen = "lobby"
	ScreenCharacter Screen = "character"
	ScreenPicking   Screen = "picking"
	ScreenMain      Screen = "main"
	ScreenElseTurn  Screen = "elseTurn"
)

// PresenterPort is the rendering collaborator. The core calls it with pure
// data; the only values flowing back are resolved card visuals and user
// intents delivered to an IntentSink. Calls are idempotent renderings of
// the state they are handed.
type PresenterPort interface {
	// ShowScreen switches the visible top-level view.
	ShowScreen(screen Screen)

	// SetStatus replaces the one-line status banner.
	SetStatus(text string)

	// DisplayLobby renders the lobby roster with a start-game affordance.
	DisplayLobby(players []*domain.Player)

	// DisplayDecks renders the two draw piles with draw affordances.
	DisplayDecks()

	// DisplayCharacterSelection offers the face-up pool for picking, with
	// the open pool shown for context and the closed pool face down.
	// closed may be nil for pickers after the chairman.
	DisplayCharacterSelection(faceUp, open, closed []*domain.Character)

	// DisplayDraft renders the draft view for the picking player: the
	// temporary candidates with discard affordances plus the kept hand.
	DisplayDraft(player *domain.Player)

	// DisplayHand renders the local hand grouped by kind.
	DisplayHand(player *domain.Player)

	// DisplayAllPlayerStats renders the resource summary of every player,
	// highlighting the active one.
	DisplayAllPlayerStats(players []*domain.Player, current *domain.Player)

	// DisplayPlayerCharacter renders the active player's character card.
	DisplayPlayerCharacter(player *domain.Player)

	// DisplayRevealedCharacters renders each revealed character in rank
	// order.
	DisplayRevealedCharacters(players []*domain.Player)

	// DisplayOtherPlayerHand renders an opponent's unseen cards as face
	// down counts per kind.
	DisplayOtherPlayerHand(assets, liabilities int)

	// DisplayPlayedCards renders the active player's played piles.
	DisplayPlayedCards(assets, liabilities []*domain.Card)

	// CreateCardVisual resolves the presentation handle for a card. A card
	// is not interactive until its handle is resolved; the event loop
	// waits on this call, queuing later events behind it.
	CreateCardVisual(card *domain.Card) (any, error)

	// SetHandInteractive toggles whether the local hand accepts play
	// intents.
	SetHandInteractive(player *domain.Player, interactive bool)
}

// IntentSink receives user intents from the presentation layer. Each maps
// 1:1 to an outbound command or a local layout recomputation; none mutates
// game state directly.
type IntentSink interface {
	// JoinGame connects under the given identity. Ignored for an empty
	// username.
	JoinGame(username, channel string)

	// RequestStartGame asks the server to start the match.
	RequestStartGame()

	// DrawCard requests one draft candidate of the given kind.
	DrawCard(kind domain.CardKind)

	// PlayCard plays the local hand card at idx; the command sent depends
	// on the card's kind.
	PlayCard(idx int)

	// DiscardCard puts the draft candidate at idx back.
	DiscardCard(idx int)

	// SelectCharacter picks a character by texture key.
	SelectCharacter(textureKey string)

	// EndTurn yields the turn.
	EndTurn()
}
