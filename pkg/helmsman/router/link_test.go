package router

import (
	"testing"

	"github.com/BrandonKowalski/helmsman/pkg/helmsman/route"
	"github.com/stretchr/testify/assert"
)

func TestLinkIsActive(t *testing.T) {
	r, _ := newTestRouter(t, Options{})
	r.Activate(route.Path("library"))
	r.Activate(route.Path("library", "game"))

	top := r.NavigationRoute()
	library := NewLink(r, top, "library")
	settings := NewLink(r, top, "settings")

	assert.True(t, library.IsActive())
	assert.False(t, settings.IsActive())

	game := NewLink(r, library.Destination(), "game")
	assert.True(t, game.IsActive())
	assert.Equal(t, 1, library.Destination().Level())
}

func TestLinkDismissPops(t *testing.T) {
	r, _ := newTestRouter(t, Options{})
	r.Activate(route.Path("library"))
	r.Activate(route.Path("library", "game"))

	game := NewLink(r, r.NavigationRoute().Nested(), "game")
	game.SetActive(false)

	assert.Equal(t, []string{"library"}, r.Segments().Paths())
}

func TestLinkFromStaleRouteDoesNotPop(t *testing.T) {
	r, _ := newTestRouter(t, Options{})
	r.Activate(route.Path("library"))
	r.Activate(route.Path("library", "game"))

	stale := NewLink(r, r.NavigationRoute().Nested(), "game")
	r.Activate(route.Path("library", "game", "manual"))

	stale.SetActive(false)

	assert.Equal(t, []string{"library", "game", "manual"}, r.Segments().Paths())
}

func TestLinkInactiveDismissDoesNothing(t *testing.T) {
	r, _ := newTestRouter(t, Options{})
	r.Activate(route.Path("library"))

	settings := NewLink(r, r.NavigationRoute(), "settings")
	settings.SetActive(false)
	settings.SetActive(true)

	assert.Equal(t, []string{"library"}, r.Segments().Paths())
	assert.Equal(t, "settings", settings.Path())
}
