// Package catalog holds the fixed, ordered set of displayable card records.
//
// The catalog is built once at process start and never mutated. Every
// view reads from the same *Catalog; insertion order is display order.
package catalog

// Rarity is the printed rarity tier of a card.
type Rarity string

const (
	RarityChase    Rarity = "Chase"
	RarityRare     Rarity = "Rara"
	RarityUncommon Rarity = "Incomum"
	RarityCommon   Rarity = "Comum"
)

// IsChase reports whether r is the top promotional tier.
func (r Rarity) IsChase() bool {
	return r == RarityChase
}

// ImageHandle is an opaque reference to a bundled raster asset.
type ImageHandle string

// Card is a single card record. Values are immutable once in a Catalog.
type Card struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	ElementType string      `json:"element_type"`
	Rarity      Rarity      `json:"rarity"`
	HP          string      `json:"hp"`
	AttackName  string      `json:"attack_name"`
	Image       ImageHandle `json:"image"`
	IsChase     bool        `json:"is_chase"`
}
