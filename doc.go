// Package diorama is the run-time core of a lightweight 2D scene engine
// for [Ebitengine]: a registry of renderable and dialogue objects with
// stable keys, a deterministic draw order, and a linear timeline that
// mutates the registries over time.
//
// # Scene objects and keys
//
// Every object carries a stable scene key. An explicit ID wins; otherwise
// the key is derived from the object's invariant content, so repeated
// Spawn/Apply commands address the same logical object:
//
//	hero := diorama.NewSprite("assets/hero.png", diorama.LayerCharacter, 5).
//		WithID("hero").
//		At(1.2, 0)
//
// # Registries
//
// [Registry] owns sprite entries, their texture handles, and the shared
// orthographic projection. [Registry.Upsert] creates or updates in place;
// entries are never deleted, only hidden. [Registry.DrawList]
// returns non-hidden entries sorted by (layer, z-index, insertion order).
// [Overlay] owns dialogue entries and emits bottom-anchored panel
// instructions for a GUI layer.
//
// # Timelines and scripts
//
// A [Timeline] drains an ordered command queue frame by frame:
//
//	tl := diorama.NewTimeline([]diorama.Command{
//		diorama.Spawn(hero),
//		diorama.Wait(3),
//		diorama.Apply(hero.WithHidden(true)),
//	})
//
// Timelines plug into a [Runner] alongside free-form [Script]
// implementations such as [BobScript] and [BlinkScript]. A SkipWait
// [Signal] collapses the current wait; the next update cascades through
// every command up to the next positive wait.
//
// # Running
//
// For full control, implement [ebiten.Game] yourself and call
// [Runner.Update] and the registries directly. The simplest way to get a
// window is [Run]:
//
//	game := diorama.NewGame(runner, ctx, diorama.DefaultActionMap())
//	diorama.Run(game, diorama.RunConfig{Title: "intro", Width: 1280, Height: 720})
//
// Scenarios can also be authored declaratively in YAML and loaded with
// [LoadScenario]; see the examples directory.
//
// [Ebitengine]: https://ebitengine.org
package diorama
