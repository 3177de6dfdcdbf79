package domain

// CardKind tags the two playable card variants.
type CardKind string

const (
	// KindAsset is a productive card bought with cash.
	KindAsset CardKind = "Asset"
	// KindLiability is a funding card that raises cash when issued.
	KindLiability CardKind = "Liability"
)

// ParseCardKind maps a wire kind tag to a CardKind.
// The server sends tags both capitalized ("Asset") and lowercased ("asset").
func ParseCardKind(tag string) (CardKind, bool) {
	switch tag {
	case "Asset", "asset":
		return KindAsset, true
	case "Liability", "liability":
		return KindLiability, true
	default:
		return "", false
	}
}

// Card is a tagged union over the two card kinds. Asset fields are
// meaningful only when Kind == KindAsset, liability fields only when
// Kind == KindLiability.
type Card struct {
	// ID is the server-assigned stable identifier. Empty when the server
	// omits it, in which case echoes fall back to semantic matching.
	ID   string
	Kind CardKind

	// Asset fields.
	Title       string
	Color       string
	GoldValue   int
	SilverValue int
	Ability     string

	// Liability fields.
	ReimbursementType string
	Value             int

	// IsTemporary marks a card that is part of an in-progress draft
	// selection. Cleared when the draft resolves.
	IsTemporary bool

	// Placement is the z-order rank assigned when the card entered a hand.
	// Visual stacking only, no gameplay meaning.
	Placement int

	// Visual is the opaque presentation handle owned by the rendering
	// layer. A card is not interactive until it is resolved.
	Visual any
}

// SameCard reports whether other is the same card as c for the purposes of
// re-associating a server echo with a held card. A stable id on both sides
// is authoritative; the field comparison below is a compatibility shim for
// servers that do not assign card ids and misfires when a hand holds two
// identical cards.
func (c *Card) SameCard(other *Card) bool {
	if c.Kind != other.Kind {
		return false
	}
	if c.ID != "" && other.ID != "" {
		return c.ID == other.ID
	}
	switch c.Kind {
	case KindAsset:
		return c.Title == other.Title &&
			c.GoldValue == other.GoldValue &&
			c.SilverValue == other.SilverValue
	case KindLiability:
		return c.ReimbursementType == other.ReimbursementType &&
			c.Value == other.Value
	}
	return false
}
