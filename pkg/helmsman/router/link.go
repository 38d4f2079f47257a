package router

import "github.com/BrandonKowalski/helmsman/pkg/helmsman/route"

// Link is a navigation link rendered by a view: it is active while the
// route passes through its path at the view's level, and it hands its
// destination a route nested one level deeper.
type Link struct {
	router *Router
	parent route.ActivatedRoute
	path   string
}

// NewLink creates a link to path for a view holding parent.
func NewLink(router *Router, parent route.ActivatedRoute, path string) Link {
	return Link{
		router: router,
		parent: parent,
		path:   path,
	}
}

// Path returns the destination path name.
func (l Link) Path() string {
	return l.path
}

// IsActive reports whether the link's destination is on the route.
func (l Link) IsActive() bool {
	return l.parent.Matches(l.path)
}

// SetActive is called by the navigation widget when it presents or dismisses
// the destination. Dismissing an active destination pops the router, but
// only when the view's route is still the router's current route; a view
// rendered from a stale route does not pop.
//
// Presenting is driven by the route, so SetActive(true) does nothing.
func (l Link) SetActive(active bool) {
	if active {
		return
	}
	if l.IsActive() && l.parent.MatchesRoute(l.router.Route()) {
		l.router.Pop()
	}
}

// Destination returns the route handed to the destination content.
func (l Link) Destination() route.ActivatedRoute {
	return l.parent.Nested()
}
