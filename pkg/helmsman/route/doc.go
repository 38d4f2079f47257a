// Package route provides the navigation data model: typed parameter keys,
// immutable route segments and the activated route a view uses to find its
// position in the navigation stack.
//
// # Building a route
//
//	var gameID = route.NewKey[int]("game_id")
//
//	target := route.Segments{
//	    route.NewSegment("library"),
//	    route.NewSegment("game", gameID.Field(42)),
//	}
//
// # Reading it back from a view
//
// Every view receives an ActivatedRoute from its parent, nested one level
// deeper than the parent's. A view at level n owns segment n-1 and decides
// whether the link it renders is active by looking at segment n.
//
//	child := parent.Nested()
//	if child.Matches("settings") {
//	    // the link to "settings" is active
//	}
//	id := route.Param(child, gameID)
//
// All types in this package are values. Every "modifying" operation returns
// a new value and leaves the receiver untouched.
package route
