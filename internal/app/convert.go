package app

import (
	"boardroom/internal/domain"
	"boardroom/internal/protocol"
)

// cardFromPayload materializes a domain card from its wire shape.
func cardFromPayload(p protocol.CardPayload) (*domain.Card, bool) {
	kind, ok := domain.ParseCardKind(p.CardType)
	if !ok {
		return nil, false
	}
	card := &domain.Card{
		ID:   p.CardID,
		Kind: kind,
	}
	switch kind {
	case domain.KindAsset:
		card.Title = p.Title
		card.Color = p.Color
		card.GoldValue = p.GoldValue
		card.SilverValue = p.SilverValue
		card.Ability = p.Ability
	case domain.KindLiability:
		card.ReimbursementType = p.RfrType
		card.Value = p.Value
	}
	return card, true
}
