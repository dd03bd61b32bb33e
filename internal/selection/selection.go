// Package selection holds the list screen's "which card is active"
// state and the two policies for pressing a card: toggle it open in
// place, or navigate to its detail screen.
package selection

import (
	"errors"
	"fmt"

	"github.com/Mr-Dark-debug/chasecards/internal/catalog"
	"github.com/Mr-Dark-debug/chasecards/internal/nav"
)

// ErrUnknownCard is returned when a pressed id is not in the catalog.
var ErrUnknownCard = errors.New("unknown card")

// State is the exclusive-toggle state: Collapsed, or ExpandedFor(id).
// The zero value is Collapsed.
type State struct {
	activeID string
}

// Collapsed returns the state with nothing expanded.
func Collapsed() State { return State{} }

// ExpandedFor returns the state with id expanded.
func ExpandedFor(id string) State { return State{activeID: id} }

// Toggle collapses id if it is the active card, otherwise makes it
// the only active card.
func (s State) Toggle(id string) State {
	if s.activeID == id {
		return Collapsed()
	}
	return ExpandedFor(id)
}

// ActiveID returns the expanded id, if any.
func (s State) ActiveID() (string, bool) {
	return s.activeID, s.activeID != ""
}

// IsActive reports whether id is expanded.
func (s State) IsActive(id string) bool {
	return s.activeID != "" && s.activeID == id
}

func (s State) String() string {
	if s.activeID == "" {
		return "Collapsed"
	}
	return fmt.Sprintf("ExpandedFor(%s)", s.activeID)
}

// Controller reacts to a card being pressed.
type Controller interface {
	Press(id string) error
	IsActive(id string) bool
}

// Expand implements the exclusive-toggle policy.
type Expand struct {
	catalog *catalog.Catalog
	state   State
}

// NewExpand returns a controller in the Collapsed state.
func NewExpand(cat *catalog.Catalog) *Expand {
	return &Expand{catalog: cat}
}

// NewExpandWith returns a controller starting from s. The TUI keeps
// State by value and rebuilds the controller for each press.
func NewExpandWith(cat *catalog.Catalog, s State) *Expand {
	return &Expand{catalog: cat, state: s}
}

// Press toggles id. Ids outside the catalog leave the state unchanged.
func (e *Expand) Press(id string) error {
	if !e.catalog.Contains(id) {
		return fmt.Errorf("toggle %q: %w", id, ErrUnknownCard)
	}
	e.state = e.state.Toggle(id)
	return nil
}

func (e *Expand) IsActive(id string) bool { return e.state.IsActive(id) }

// State returns the current state value.
func (e *Expand) State() State { return e.state }

// Navigate implements the navigate policy. It holds no state of its
// own; back navigation belongs to the Navigator.
type Navigate struct {
	catalog   *catalog.Catalog
	navigator nav.Navigator
}

// NewNavigate returns a controller that opens detail screens on n.
func NewNavigate(cat *catalog.Catalog, n nav.Navigator) *Navigate {
	return &Navigate{catalog: cat, navigator: n}
}

// Press requests the detail screen for the full record of id.
func (n *Navigate) Press(id string) error {
	card, ok := n.catalog.ByID(id)
	if !ok {
		return fmt.Errorf("select %q: %w", id, ErrUnknownCard)
	}
	n.navigator.Navigate(nav.ScreenDetail, nav.Params{Card: card})
	return nil
}

// IsActive is always false; the list never expands in this policy.
func (n *Navigate) IsActive(string) bool { return false }

// Policy selects a Controller implementation.
type Policy string

const (
	PolicyExpand   Policy = "expand"
	PolicyNavigate Policy = "navigate"
)

// ParsePolicy accepts "expand" or "navigate".
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyExpand, PolicyNavigate:
		return p, nil
	default:
		return "", fmt.Errorf("unknown variant %q (want %q or %q)", s, PolicyExpand, PolicyNavigate)
	}
}
