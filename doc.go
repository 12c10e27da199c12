// Package emojifall is a stream-driven 2D physics toy for [Ebitengine].
//
// Emojifall turns a feed of symbols — chat emotes, reactions, whatever the
// host plugs in — into falling, colliding balls that tumble through a
// randomly chosen obstacle course while a large driven pendulum swings
// through the pile. It is built on the [Chipmunk] physics port and renders
// with Ebitengine.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and the
// game loop for you:
//
//	world := emojifall.NewWorld(emojifall.Playfield{Width: 1280, Height: 720})
//	// call world.CreateEmojiBall from your event source
//	emojifall.Run(world, emojifall.RunConfig{
//		Title: "Emoji Fall", Width: 1280, Height: 720,
//	})
//
// For full control, implement [ebiten.Game] yourself and call [World.Step],
// [World.Draw], and [World.EndFrame] directly.
//
// # World model
//
// A [World] owns the physics space and every body in it. Bodies carry a
// [BodyKind] tag: two boundary strips, the pieces of one randomly chosen
// obstacle [LayoutKind], exactly one pendulum, and up to [MaxEmojis]
// transient emoji balls. Emoji balls are spawned with
// [World.CreateEmojiBall], silently rejected at the population cap, and
// culled once they leave the playfield through its open left, right, or
// bottom edges.
//
// Resizing the playfield with [World.SetDimensions] rebuilds the world from
// scratch and re-rolls the obstacle layout. That is deliberate: a resize is
// a fresh start, not a proportional re-layout.
//
// [Ebitengine]: https://ebitengine.org
// [Chipmunk]: https://github.com/jakecoffman/cp
package emojifall
