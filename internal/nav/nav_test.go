package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mr-Dark-debug/chasecards/internal/catalog"
)

func TestStackStartsAtHome(t *testing.T) {
	s := NewStack()
	assert.Equal(t, ScreenHome, s.Current().Screen)
	assert.Equal(t, 1, s.Depth())
	assert.False(t, s.Back(), "home must not pop")
	assert.Equal(t, 1, s.Depth())
}

func TestStackDeliversParamsUnchanged(t *testing.T) {
	card := catalog.Card{ID: "3", Name: "Blastoise", ElementType: "Água", Rarity: catalog.RarityRare,
		HP: "120", AttackName: "Jato D'água", Image: "blastoise.png"}

	s := NewStack()
	s.Navigate(ScreenDetail, Params{Card: card})

	cur := s.Current()
	assert.Equal(t, ScreenDetail, cur.Screen)
	assert.Equal(t, card, cur.Params.Card)
	assert.Equal(t, 2, s.Depth())

	assert.True(t, s.Back())
	assert.Equal(t, ScreenHome, s.Current().Screen)
}

func TestStackCopiesAreIndependent(t *testing.T) {
	a := *NewStack()
	a.Navigate(ScreenDetail, Params{Card: catalog.Card{ID: "1"}})
	a.Back()

	// a has spare capacity now; pushing on a copy must not leak into a
	b := a
	b.Navigate(ScreenDetail, Params{Card: catalog.Card{ID: "3"}})
	a.Navigate(ScreenDetail, Params{Card: catalog.Card{ID: "5"}})

	assert.Equal(t, "3", b.Current().Params.Card.ID)
	assert.Equal(t, "5", a.Current().Params.Card.ID)

	b.Back()
	assert.Equal(t, ScreenHome, b.Current().Screen)
	assert.Equal(t, 2, a.Depth())
}
