// Package nav is a minimal screen stack for the navigation-based
// variant: the list screen pushes a detail route carrying one card,
// and back pops it.
package nav

import "github.com/Mr-Dark-debug/chasecards/internal/catalog"

// Screen names a routable screen.
type Screen string

const (
	ScreenHome   Screen = "Home"
	ScreenDetail Screen = "Detalhes"
)

// Params is delivered unchanged to the target screen.
type Params struct {
	Card catalog.Card
}

// Route is one entry on the stack.
type Route struct {
	Screen Screen
	Params Params
}

// Navigator requests screen transitions.
//
//go:generate mockgen -destination=mock/mock_navigator.go -package=navmock github.com/Mr-Dark-debug/chasecards/internal/nav Navigator
type Navigator interface {
	Navigate(screen Screen, params Params)
}

// Stack is the Navigator used by the TUI. The zero value is not
// usable; call NewStack.
//
// A copied Stack is independent of the original: Navigate never writes
// into a backing array another copy can see, so a Stack can be held by
// value in an immutable model.
type Stack struct {
	routes []Route
}

// NewStack returns a stack holding only the home route.
func NewStack() *Stack {
	return &Stack{routes: []Route{{Screen: ScreenHome}}}
}

// Navigate pushes a route.
func (s *Stack) Navigate(screen Screen, params Params) {
	n := len(s.routes)
	s.routes = append(s.routes[:n:n], Route{Screen: screen, Params: params})
}

// Back pops the top route. The home route is never popped; Back
// reports whether anything changed.
func (s *Stack) Back() bool {
	if len(s.routes) <= 1 {
		return false
	}
	s.routes = s.routes[:len(s.routes)-1]
	return true
}

// Current returns the top route.
func (s *Stack) Current() Route {
	return s.routes[len(s.routes)-1]
}

// Depth returns the number of routes, home included.
func (s *Stack) Depth() int {
	return len(s.routes)
}
