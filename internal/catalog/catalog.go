package catalog

import (
	"errors"
	"fmt"

	"github.com/Mr-Dark-debug/chasecards/internal/database"
)

// ErrInvalidCard is wrapped by every validation failure in New.
var ErrInvalidCard = errors.New("invalid card")

// Catalog is an ordered, read-only sequence of cards.
type Catalog struct {
	cards []Card
	byID  map[string]int
}

// New validates cards and returns a catalog preserving their order.
func New(cards ...Card) (*Catalog, error) {
	c := &Catalog{
		cards: make([]Card, 0, len(cards)),
		byID:  make(map[string]int, len(cards)),
	}
	for _, card := range cards {
		if err := validate(card); err != nil {
			return nil, err
		}
		if _, dup := c.byID[card.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCard, card.ID)
		}
		c.byID[card.ID] = len(c.cards)
		c.cards = append(c.cards, card)
	}
	return c, nil
}

func validate(card Card) error {
	switch {
	case card.ID == "":
		return fmt.Errorf("%w: empty id", ErrInvalidCard)
	case card.Name == "":
		return fmt.Errorf("%w: card %s has no name", ErrInvalidCard, card.ID)
	case card.HP == "":
		return fmt.Errorf("%w: card %s has no hp", ErrInvalidCard, card.ID)
	case card.AttackName == "":
		return fmt.Errorf("%w: card %s has no attack", ErrInvalidCard, card.ID)
	case card.Image == "":
		return fmt.Errorf("%w: card %s has no image", ErrInvalidCard, card.ID)
	case card.IsChase != card.Rarity.IsChase():
		return fmt.Errorf("%w: card %s chase flag disagrees with rarity %q",
			ErrInvalidCard, card.ID, card.Rarity)
	}
	return nil
}

// GetAll returns every card in display order. The slice is a copy.
func (c *Catalog) GetAll() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// ByID looks up a card by id.
func (c *Catalog) ByID(id string) (Card, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Card{}, false
	}
	return c.cards[i], true
}

// Contains reports whether id names a card in the catalog.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of cards.
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Load builds a catalog from the rows of store, in position order.
func Load(store database.Store) (*Catalog, error) {
	rows, err := store.QueryCards()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	cards := make([]Card, 0, len(rows))
	for _, r := range rows {
		cards = append(cards, FromRow(r))
	}
	return New(cards...)
}

// FromRow converts a stored row into a Card.
func FromRow(r *database.CardRow) Card {
	return Card{
		ID:          r.CardID,
		Name:        r.Name,
		ElementType: r.ElementType,
		Rarity:      Rarity(r.Rarity),
		HP:          r.HP,
		AttackName:  r.AttackName,
		Image:       ImageHandle(r.Image),
		IsChase:     r.IsChase,
	}
}

// Lookup fetches and validates a single card from store.
func Lookup(store database.Store, id string) (Card, error) {
	row, err := store.GetCard(id)
	if err != nil {
		return Card{}, err
	}
	card := FromRow(row)
	if err := validate(card); err != nil {
		return Card{}, err
	}
	return card, nil
}

// Open loads the built-in catalog from a throwaway in-memory store.
func Open() (*Catalog, error) {
	store, err := database.NewDBService(":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening catalog store: %w", err)
	}
	defer store.Close()

	return Load(store)
}
