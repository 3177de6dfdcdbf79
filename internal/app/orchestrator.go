package app

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"boardroom/internal/domain"
	"boardroom/internal/ports"
	"boardroom/internal/protocol"
)

// Orchestrator is the client state machine. It receives decoded server
// events one at a time, mutates the session state, decides phase
// transitions and issues idempotent render calls to the presenter. It also
// implements ports.IntentSink, mapping user intents 1:1 to outbound
// commands without touching state.
type Orchestrator struct {
	state      *domain.GameState
	presenter  ports.PresenterPort
	dispatcher *Dispatcher
	log        *zap.Logger
}

// NewOrchestrator wires the state machine to its collaborators.
func NewOrchestrator(state *domain.GameState, presenter ports.PresenterPort, dispatcher *Dispatcher, log *zap.Logger) *Orchestrator {
	return &Orchestrator{
		state:      state,
		presenter:  presenter,
		dispatcher: dispatcher,
		log:        log,
	}
}

// HandleEvent routes one event to its handler. The switch is exhaustive
// over the closed event set; each handler validates its references before
// mutating, so a failed handler leaves state untouched.
func (o *Orchestrator) HandleEvent(ev protocol.Event) {
	switch e := ev.(type) {
	case *protocol.StartGame:
		o.handleStartGame(e)
	case *protocol.PlayersInLobby:
		o.handlePlayersInLobby(e)
	case *protocol.SelectingCharacters:
		o.handleSelectingCharacters(e)
	case *protocol.SelectedCharacter:
		o.handleSelectedCharacter(e)
	case *protocol.YouSelectedCharacter:
		o.handleYouSelectedCharacter(e)
	case *protocol.TurnStarts:
		o.handleTurnStarts(e)
	case *protocol.YouDrewCard:
		o.handleYouDrewCard(e)
	case *protocol.DrewCard:
		o.handleDrewCard(e)
	case *protocol.YouPutBackCard:
		o.handleYouPutBackCard(e)
	case *protocol.PutBackCard:
		o.handlePutBackCard(e)
	case *protocol.YouBoughtAsset:
		o.handleYouBoughtAsset(e)
	case *protocol.BoughtAsset:
		o.handleBoughtAsset(e)
	case *protocol.YouIssuedLiability:
		o.handleYouIssuedLiability(e)
	case *protocol.IssuedLiability:
		o.handleIssuedLiability(e)
	default:
		o.log.Warn("no handler for event", zap.String("action", ev.EventAction()))
	}
}

func (o *Orchestrator) handlePlayersInLobby(e *protocol.PlayersInLobby) {
	o.presenter.ShowScreen(ports.ScreenLobby)

	players := make([]*domain.Player, 0, len(e.Usernames))
	for i, username := range e.Usernames {
		players = append(players, domain.NewPlayer(username, strconv.Itoa(i)))
	}
	// Lobby ids are positional placeholders; StartGame rebuilds the
	// roster with server-assigned identities.
	o.state.Players = players
	o.presenter.DisplayLobby(players)
}

func (o *Orchestrator) handleStartGame(e *protocol.StartGame) {
	local := domain.NewPlayer(o.state.Username, e.ID)
	local.Cash = e.Cash
	local.Reveal = true

	players := []*domain.Player{local}
	for _, info := range e.PlayerInfo {
		p := domain.NewPlayer(info.Name, info.ID)
		p.Cash = info.Cash
		for _, tag := range info.Hand {
			kind, ok := domain.ParseCardKind(tag)
			if !ok {
				o.log.Warn("unknown kind tag in roster", zap.String("tag", tag))
				continue
			}
			p.AddOthersHandTag(kind)
		}
		players = append(players, p)
	}

	o.state.MyID = e.ID
	o.state.Players = players
	o.state.CurrentPlayerIndex = 0

	for _, payload := range e.Hand {
		card, ok := cardFromPayload(payload)
		if !ok {
			o.log.Warn("unknown card kind in opening hand", zap.String("card_type", payload.CardType))
			continue
		}
		o.attachVisual(card)
		local.AddCardToHand(card)
	}

	o.presenter.DisplayHand(local)
	o.initRound()
}

// initRound prepares the round scaffolding after the match starts: the two
// draw decks and cleared per-round player flags.
func (o *Orchestrator) initRound() {
	o.presenter.DisplayDecks()
	for _, p := range o.state.Players {
		p.Character = nil
		p.Reveal = false
		p.PlayableAssets = 1
		p.PlayableLiabilities = 1
	}
}

func (o *Orchestrator) handleSelectingCharacters(e *protocol.SelectingCharacters) {
	chairman := o.state.PlayerByID(e.ChairmanID)
	if chairman == nil {
		o.log.Warn("chairman not in roster", zap.String("player_id", e.ChairmanID))
		return
	}

	o.state.ResetForNewRound()
	o.state.CurrentPhase = domain.PhaseCharacter
	o.presenter.ShowScreen(ports.ScreenCharacter)

	chairman.IsChairman = true
	o.presenter.SetStatus(fmt.Sprintf("%s is choosing their character", chairman.Name))

	o.state.OpenCharacters = o.state.CharactersByTexture(e.OpenCharacters)
	o.state.ClosedCharacters = o.state.CharactersByTexture(e.ClosedCharacter)

	// The face-up pool is exposed only to the active picker.
	if chairman.ID == o.state.MyID {
		o.state.FaceUpCharacters = o.state.CharactersByTexture(e.SelectableCharacters)
		o.presenter.DisplayCharacterSelection(
			o.state.FaceUpCharacters, o.state.OpenCharacters, o.state.ClosedCharacters)
	}
}

func (o *Orchestrator) handleSelectedCharacter(e *protocol.SelectedCharacter) {
	// An empty picker id marks the end of the selection sequence.
	if e.CurrentlyPickingID == "" {
		return
	}
	picker := o.state.PlayerByID(e.CurrentlyPickingID)
	if picker == nil {
		o.log.Warn("picking player not in roster", zap.String("player_id", e.CurrentlyPickingID))
		return
	}

	o.state.CurrentPhase = domain.PhaseCharacter
	o.presenter.ShowScreen(ports.ScreenCharacter)
	o.presenter.SetStatus(fmt.Sprintf("%s is choosing their character", picker.Name))

	if picker.ID == o.state.MyID {
		o.state.FaceUpCharacters = o.state.CharactersByTexture(e.SelectableCharacters)
		o.presenter.DisplayCharacterSelection(o.state.FaceUpCharacters, o.state.OpenCharacters, nil)
	}
}

func (o *Orchestrator) handleYouSelectedCharacter(e *protocol.YouSelectedCharacter) {
	local := o.state.LocalPlayer()
	if local == nil {
		o.log.Warn("local player not established")
		return
	}
	character := o.state.CharacterByTexture(e.Character)
	if character == nil {
		o.log.Warn("selected character not in catalog", zap.String("character", e.Character))
		return
	}
	local.Character = character
}

func (o *Orchestrator) handleTurnStarts(e *protocol.TurnStarts) {
	idx := o.state.PlayerIndex(e.PlayerTurn)
	if idx == -1 {
		o.log.Warn("turn player not in roster", zap.String("player_id", e.PlayerTurn))
		return
	}
	o.state.SetCurrentPlayerIndex(idx)
	player := o.state.CurrentPlayer()

	if character := o.state.CharacterByTexture(e.PlayerCharacter); character != nil {
		player.Character = character
	} else {
		o.log.Warn("turn character not in catalog", zap.String("character", e.PlayerCharacter))
	}

	player.PlayableAssets = 1
	player.PlayableLiabilities = 1
	player.Cash += e.PlayerTurnCash
	player.Reveal = true
	player.DrawableCards = e.DrawsNCards

	o.presenter.SetStatus(fmt.Sprintf("%s's turn", player.Name))

	switch {
	case player.ID != o.state.MyID:
		o.showElseTurn()
	case e.DrawsNCards > 0:
		o.state.CurrentPhase = domain.PhasePicking
		o.presenter.ShowScreen(ports.ScreenPicking)
		o.presenter.DisplayDraft(player)
	default:
		o.switchToMainPhase()
	}
}

func (o *Orchestrator) handleYouDrewCard(e *protocol.YouDrewCard) {
	local := o.state.LocalPlayer()
	if local == nil {
		o.log.Warn("local player not established")
		return
	}
	card, ok := cardFromPayload(e.Card)
	if !ok {
		o.log.Warn("unknown card kind drawn", zap.String("card_type", e.Card.CardType))
		return
	}
	card.IsTemporary = true
	o.attachVisual(card)
	local.AddCardToHand(card)
	o.presenter.DisplayDraft(local)

	if !e.CanDrawCards && !e.CanGiveBackCards {
		local.PromoteTemporary()
		o.switchToMainPhase()
	}
}

func (o *Orchestrator) handleDrewCard(e *protocol.DrewCard) {
	player := o.state.CurrentPlayer()
	if player == nil || player.ID == o.state.MyID {
		return
	}
	kind, ok := domain.ParseCardKind(e.CardType)
	if !ok {
		o.log.Warn("unknown kind tag drawn", zap.String("card_type", e.CardType))
		return
	}
	player.AddOthersHandTag(kind)
}

func (o *Orchestrator) handleYouPutBackCard(e *protocol.YouPutBackCard) {
	local := o.state.LocalPlayer()
	if local == nil {
		o.log.Warn("local player not established")
		return
	}
	if _, ok := local.RemoveCardAt(e.CardIdx); !ok {
		o.log.Warn("put-back index out of range",
			zap.Int("card_idx", e.CardIdx), zap.Int("hand", len(local.Hand)))
		return
	}

	if !e.CanDrawCards && !e.CanGiveBackCards {
		local.PromoteTemporary()
		o.switchToMainPhase()
		return
	}
	o.presenter.DisplayDraft(local)
}

func (o *Orchestrator) handlePutBackCard(e *protocol.PutBackCard) {
	player := o.state.PlayerByID(e.PlayerID)
	if player == nil || player.ID == o.state.MyID {
		return
	}
	kind, ok := domain.ParseCardKind(e.CardType)
	if !ok {
		o.log.Warn("unknown kind tag put back", zap.String("card_type", e.CardType))
		return
	}
	if !player.RemoveOthersHandTag(kind) {
		o.log.Warn("put-back tag not held",
			zap.String("player_id", e.PlayerID), zap.String("card_type", e.CardType))
		return
	}
	o.showElseTurn()
}

func (o *Orchestrator) handleYouBoughtAsset(e *protocol.YouBoughtAsset) {
	local := o.state.LocalPlayer()
	if local == nil {
		o.log.Warn("local player not established")
		return
	}
	echo, ok := cardFromPayload(e.Asset)
	if !ok || echo.Kind != domain.KindAsset {
		o.log.Warn("bought asset payload not an asset", zap.String("card_type", e.Asset.CardType))
		return
	}
	idx := local.MatchInHand(echo)
	if idx == -1 {
		o.log.Warn("bought asset not in hand", zap.String("title", echo.Title))
		return
	}
	local.MoveToAssets(idx)

	o.presenter.DisplayPlayedCards(local.AssetList, local.LiabilityList)
	o.presenter.DisplayAllPlayerStats(o.state.Players, o.state.CurrentPlayer())
	o.setPlaySummary(local)
}

func (o *Orchestrator) handleBoughtAsset(e *protocol.BoughtAsset) {
	player := o.state.CurrentPlayer()
	if player == nil || player.ID == o.state.MyID {
		return
	}
	card, ok := cardFromPayload(e.Asset)
	if !ok || card.Kind != domain.KindAsset {
		o.log.Warn("bought asset payload not an asset", zap.String("card_type", e.Asset.CardType))
		return
	}
	if !player.RemoveOthersHandTag(domain.KindAsset) {
		o.log.Warn("no unseen asset tag to consume", zap.String("player_id", player.ID))
		return
	}
	o.attachVisual(card)
	player.AssetList = append(player.AssetList, card)

	o.showElseTurn()
	o.presenter.DisplayAllPlayerStats(o.state.Players, player)
}

func (o *Orchestrator) handleYouIssuedLiability(e *protocol.YouIssuedLiability) {
	local := o.state.LocalPlayer()
	if local == nil {
		o.log.Warn("local player not established")
		return
	}
	echo, ok := cardFromPayload(e.Liability)
	if !ok || echo.Kind != domain.KindLiability {
		o.log.Warn("issued liability payload not a liability", zap.String("card_type", e.Liability.CardType))
		return
	}
	idx := local.MatchInHand(echo)
	if idx == -1 {
		o.log.Warn("issued liability not in hand", zap.String("rfr_type", echo.ReimbursementType))
		return
	}
	local.MoveToLiabilities(idx)

	o.presenter.DisplayPlayedCards(local.AssetList, local.LiabilityList)
	o.setPlaySummary(local)
}

func (o *Orchestrator) handleIssuedLiability(e *protocol.IssuedLiability) {
	player := o.state.CurrentPlayer()
	if player == nil || player.ID == o.state.MyID {
		return
	}
	card, ok := cardFromPayload(e.Liability)
	if !ok || card.Kind != domain.KindLiability {
		o.log.Warn("issued liability payload not a liability", zap.String("card_type", e.Liability.CardType))
		return
	}
	if !player.RemoveOthersHandTag(domain.KindLiability) {
		o.log.Warn("no unseen liability tag to consume", zap.String("player_id", player.ID))
		return
	}
	o.attachVisual(card)
	player.LiabilityList = append(player.LiabilityList, card)

	o.showElseTurn()
}

// switchToMainPhase enters the local player's resource play and renders the
// full main view.
func (o *Orchestrator) switchToMainPhase() {
	o.state.CurrentPhase = domain.PhaseMain
	o.presenter.ShowScreen(ports.ScreenMain)

	current := o.state.CurrentPlayer()
	if current == nil {
		return
	}
	o.presenter.DisplayAllPlayerStats(o.state.Players, current)
	o.presenter.DisplayPlayerCharacter(current)
	o.presenter.DisplayRevealedCharacters(o.state.Players)

	if local := o.state.LocalPlayer(); local != nil {
		o.presenter.DisplayHand(local)
		o.presenter.SetHandInteractive(local, true)
	}
	o.presenter.DisplayPlayedCards(current.AssetList, current.LiabilityList)
	o.setPlaySummary(current)
}

// showElseTurn renders the observer view of a peer's turn.
func (o *Orchestrator) showElseTurn() {
	o.state.CurrentPhase = domain.PhaseElseTurn
	o.presenter.ShowScreen(ports.ScreenElseTurn)

	current := o.state.CurrentPlayer()
	if current == nil {
		return
	}
	o.presenter.DisplayOtherPlayerHand(
		current.CountOthersHand(domain.KindAsset),
		current.CountOthersHand(domain.KindLiability))
	o.presenter.DisplayPlayedCards(current.AssetList, current.LiabilityList)
	o.presenter.DisplayAllPlayerStats(o.state.Players, current)
	o.presenter.DisplayPlayerCharacter(current)
	o.presenter.DisplayRevealedCharacters(o.state.Players)
}

func (o *Orchestrator) setPlaySummary(p *domain.Player) {
	o.presenter.SetStatus(fmt.Sprintf("assets:%d, liabilities:%d, cash:%d",
		p.PlayableAssets, p.PlayableLiabilities, p.Cash))
}

// attachVisual resolves the presentation handle before the card becomes
// part of interactive state.
func (o *Orchestrator) attachVisual(card *domain.Card) {
	visual, err := o.presenter.CreateCardVisual(card)
	if err != nil {
		o.log.Warn("card visual unresolved", zap.Error(err))
		return
	}
	card.Visual = visual
}

// JoinGame implements ports.IntentSink.
func (o *Orchestrator) JoinGame(username, channel string) {
	if username == "" {
		return
	}
	o.state.Username = username
	o.dispatcher.Send(protocol.ConnectCommand{Username: username, Channel: channel})
	o.presenter.ShowScreen(ports.ScreenLobby)
}

// RequestStartGame implements ports.IntentSink.
func (o *Orchestrator) RequestStartGame() {
	o.dispatcher.Send(protocol.StartGameCommand{})
}

// DrawCard implements ports.IntentSink.
func (o *Orchestrator) DrawCard(kind domain.CardKind) {
	o.dispatcher.Send(protocol.DrawCardCommand{CardType: string(kind)})
}

// PlayCard implements ports.IntentSink. The command depends on the card's
// kind; state changes only when the server confirms.
func (o *Orchestrator) PlayCard(idx int) {
	local := o.state.LocalPlayer()
	if local == nil || idx < 0 || idx >= len(local.Hand) {
		return
	}
	switch local.Hand[idx].Kind {
	case domain.KindAsset:
		o.dispatcher.Send(protocol.BuyAssetCommand{CardIdx: idx})
	case domain.KindLiability:
		o.dispatcher.Send(protocol.IssueLiabilityCommand{CardIdx: idx})
	}
}

// DiscardCard implements ports.IntentSink.
func (o *Orchestrator) DiscardCard(idx int) {
	o.dispatcher.Send(protocol.PutBackCardCommand{CardIdx: idx})
}

// SelectCharacter implements ports.IntentSink.
func (o *Orchestrator) SelectCharacter(textureKey string) {
	o.dispatcher.Send(protocol.SelectCharacterCommand{Character: textureKey})
}

// EndTurn implements ports.IntentSink. The hand is locked locally; the
// server's next event decides what happens.
func (o *Orchestrator) EndTurn() {
	o.dispatcher.Send(protocol.EndTurnCommand{})
	if local := o.state.LocalPlayer(); local != nil {
		o.presenter.SetHandInteractive(local, false)
	}
}
