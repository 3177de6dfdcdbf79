// Package term renders the game in a terminal with pterm and feeds user
// intents back through the ports.IntentSink.
package term

import (
	"fmt"

	"github.com/pterm/pterm"

	"boardroom/internal/domain"
	"boardroom/internal/ports"
)

// Presenter is the terminal implementation of ports.PresenterPort. Every
// call renders the data it is handed; nothing is read back from ambient
// state.
type Presenter struct{}

// New constructs the terminal presenter.
func New() *Presenter {
	return &Presenter{}
}

// ShowScreen implements ports.PresenterPort.
func (p *Presenter) ShowScreen(screen ports.Screen) {
	pterm.DefaultSection.Println(string(screen))
}

// SetStatus implements ports.PresenterPort.
func (p *Presenter) SetStatus(text string) {
	pterm.Info.Println(text)
}

// DisplayLobby implements ports.PresenterPort.
func (p *Presenter) DisplayLobby(players []*domain.Player) {
	rows := pterm.TableData{{"Seat", "Player"}}
	for i, pl := range players {
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), pl.Name})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	pterm.Println(pterm.Gray("type 'start' to begin the game"))
}

// DisplayDecks implements ports.PresenterPort.
func (p *Presenter) DisplayDecks() {
	pterm.Println(pterm.Gray("decks ready: 'draw asset' or 'draw liability'"))
}

// DisplayCharacterSelection implements ports.PresenterPort.
func (p *Presenter) DisplayCharacterSelection(faceUp, open, closed []*domain.Character) {
	if len(open) > 0 {
		names := make([]string, 0, len(open))
		for _, c := range open {
			names = append(names, c.Name)
		}
		pterm.Println(pterm.Gray("openly discarded:"), names)
	}
	if len(closed) > 0 {
		pterm.Println(pterm.Gray(fmt.Sprintf("%d character(s) set aside face down", len(closed))))
	}

	rows := pterm.TableData{{"Key", "Character", "Rank"}}
	for _, c := range faceUp {
		rows = append(rows, []string{c.TextureKey, c.Name, fmt.Sprintf("%d", c.Order)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	pterm.Println(pterm.Gray("type 'pick <key>' to choose your character"))
}

// DisplayDraft implements ports.PresenterPort.
func (p *Presenter) DisplayDraft(player *domain.Player) {
	rows := pterm.TableData{{"Idx", "Card", "Draft"}}
	for i, c := range player.Hand {
		mark := ""
		if c.IsTemporary {
			mark = "candidate"
		}
		rows = append(rows, []string{fmt.Sprintf("%d", i), cardLabel(c), mark})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
	pterm.Println(pterm.Gray("'draw asset', 'draw liability' or 'putback <idx>'"))
}

// DisplayHand implements ports.PresenterPort.
func (p *Presenter) DisplayHand(player *domain.Player) {
	rows := pterm.TableData{{"Idx", "Card"}}
	for i, c := range player.Hand {
		rows = append(rows, []string{fmt.Sprintf("%d", i), cardLabel(c)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// DisplayAllPlayerStats implements ports.PresenterPort.
func (p *Presenter) DisplayAllPlayerStats(players []*domain.Player, current *domain.Player) {
	rows := pterm.TableData{{"Player", "Cash", "Gold", "Silver", "Assets", "Liabilities", ""}}
	for _, pl := range players {
		active := ""
		if pl == current {
			active = "◀ turn"
		}
		rows = append(rows, []string{
			pl.Name,
			fmt.Sprintf("%d", pl.Cash),
			fmt.Sprintf("%d", pl.Gold),
			fmt.Sprintf("%d", pl.Silver),
			fmt.Sprintf("%d", len(pl.AssetList)),
			fmt.Sprintf("%d", len(pl.LiabilityList)),
			active,
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// DisplayPlayerCharacter implements ports.PresenterPort.
func (p *Presenter) DisplayPlayerCharacter(player *domain.Player) {
	if player.Character == nil {
		return
	}
	pterm.Println(pterm.Cyan(fmt.Sprintf("%s is the %s", player.Name, player.Character.Name)))
}

// DisplayRevealedCharacters implements ports.PresenterPort.
func (p *Presenter) DisplayRevealedCharacters(players []*domain.Player) {
	for _, pl := range players {
		if pl.Reveal && pl.Character != nil {
			pterm.Println(pterm.Gray(fmt.Sprintf("revealed: %s as %s (rank %d)",
				pl.Name, pl.Character.Name, pl.Character.Order)))
		}
	}
}

// DisplayOtherPlayerHand implements ports.PresenterPort.
func (p *Presenter) DisplayOtherPlayerHand(assets, liabilities int) {
	pterm.Println(pterm.Gray(fmt.Sprintf("hidden hand: %d asset(s), %d liability(ies)", assets, liabilities)))
}

// DisplayPlayedCards implements ports.PresenterPort.
func (p *Presenter) DisplayPlayedCards(assets, liabilities []*domain.Card) {
	for _, c := range assets {
		pterm.Println(pterm.Green("  ▸ " + cardLabel(c)))
	}
	for _, c := range liabilities {
		pterm.Println(pterm.Red("  ▸ " + cardLabel(c)))
	}
}

// CreateCardVisual implements ports.PresenterPort. The terminal handle is
// the card's rendered label.
func (p *Presenter) CreateCardVisual(card *domain.Card) (any, error) {
	return cardLabel(card), nil
}

// SetHandInteractive implements ports.PresenterPort.
func (p *Presenter) SetHandInteractive(player *domain.Player, interactive bool) {
	if interactive {
		pterm.Println(pterm.Gray("'play <idx>' to buy an asset or issue a liability, 'end' to finish"))
		return
	}
	pterm.Println(pterm.Gray("hand locked until your next turn"))
}

func cardLabel(c *domain.Card) string {
	switch c.Kind {
	case domain.KindAsset:
		return fmt.Sprintf("%s [gold %d / silver %d]", c.Title, c.GoldValue, c.SilverValue)
	case domain.KindLiability:
		return fmt.Sprintf("%s [value %d]", c.ReimbursementType, c.Value)
	}
	return "unknown card"
}
