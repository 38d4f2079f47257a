package router_test

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/helmsman/pkg/helmsman/route"
	"github.com/BrandonKowalski/helmsman/pkg/helmsman/router"
)

// Path names - use constants so views and navigation code agree
const (
	PathLibrary  = "library"
	PathGame     = "game"
	PathSettings = "settings"
)

// Parameter keys
var GameID = route.NewKey[int]("game_id")

// immediate runs everything inline, delayed tasks included.
// Real applications use a Loop.
type immediate struct{}

func (immediate) Dispatch(fn func()) { fn() }

func (immediate) After(_ time.Duration, fn func()) func() bool {
	fn()
	return func() bool { return false }
}

// renderGame is what a game detail view does with the route it was handed.
func renderGame(r route.ActivatedRoute) {
	fmt.Printf("Game view: game %d\n", route.Param(r, GameID))

	settings := router.NewLink(nil, r, PathSettings)
	fmt.Printf("Game view: settings link active=%v\n", settings.IsActive())
}

// Example demonstrates a staged deep jump and how nested views read the route.
func Example() {
	r := router.New(immediate{}, router.Options{})

	r.Subscribe(func(segments route.Segments) {
		fmt.Println("Route:", segments.Paths())
	})

	// Jump three levels from the root: applied one level at a time
	r.Activate(route.Segments{
		route.NewSegment(PathLibrary),
		route.NewSegment(PathGame, GameID.Field(7)),
		route.NewSegment(PathSettings),
	})

	// The navigation view hands level 0 to its content; the library link
	// hands its destination level 1, and so on
	library := router.NewLink(r, r.NavigationRoute(), PathLibrary)
	game := router.NewLink(r, library.Destination(), PathGame)
	renderGame(game.Destination())

	// Output:
	// Route: [library]
	// Route: [library game]
	// Route: [library game settings]
	// Game view: game 7
	// Game view: settings link active=true
}

// Example_back demonstrates dismissing the active destination.
func Example_back() {
	r := router.New(immediate{}, router.Options{})
	r.Activate(route.Path(PathLibrary))
	r.Activate(route.Path(PathLibrary, PathGame))

	game := router.NewLink(r, r.NavigationRoute().Nested(), PathGame)
	fmt.Println("Game active:", game.IsActive())

	// The navigation widget reports the game screen was swiped away
	game.SetActive(false)
	fmt.Println("Route:", r.Segments().Paths())

	r.Pop()
	r.Pop()
	fmt.Println("Route:", r.Segments().Paths())

	// Output:
	// Game active: true
	// Route: [library]
	// Route: []
}
