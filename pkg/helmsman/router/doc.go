// Package router owns the navigation route of a navigation scope and drives
// staged activation for stack navigation widgets.
//
// Unlike the route package, router holds mutable state: one Router per
// navigation scope, with every change of its route running on a single
// serial Scheduler (typically a Loop). Views read snapshots of the route and
// never change it directly.
//
// # Basic Usage
//
//	loop := router.NewLoop()
//	_ = loop.Start(ctx)
//	defer loop.Stop()
//
//	r := router.New(loop, router.Options{})
//	unsubscribe := r.Subscribe(func(segments route.Segments) {
//	    render(r.NavigationRoute())
//	})
//	defer unsubscribe()
//
//	loop.Dispatch(func() {
//	    r.Activate(route.Path("library", "game", "settings"))
//	})
//
// # Staged Activation
//
// A stack navigation widget can only animate one push at a time. When
// Activate is asked to go more than one level deeper than the current route,
// it applies the next level immediately and schedules itself again with the
// same target after Options.StageDelay. Each step advances exactly one level
// until the target is at most one level away, at which point it is applied
// as is.
//
// Pop and Reset apply immediately. By default they do not cancel a staged
// activation in flight: its next step recomputes against the popped or reset
// route and keeps navigating toward the original target. Set
// Options.CancelStagedOnOverride, or call CancelStaged, to stop it.
//
// When the widget can report that its transition finished, call
// CompleteTransition to fire the pending step right away instead of waiting
// for the delay.
//
// # Links
//
// A view hands each Link the route it received from its parent. The link is
// active while the route passes through its path, and its destination gets
// the route nested one level deeper.
package router
