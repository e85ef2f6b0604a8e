// Package canopy is a small immediate-mode 2D scene and input engine for
// [Ebitengine], built around one question: which object did the player click?
//
// # Quick start
//
//	game := canopy.NewGame(canopy.RunConfig{Title: "Boxes", Width: 640, Height: 480})
//	scene := game.NewScene()
//	game.SetScene(scene)
//
//	box := canopy.NewGameObject(scene, "box")
//	box.X, box.Y, box.Width, box.Height = 100, 100, 64, 64
//
//	scene.OnUpdate = func(dt float64) {
//		box.Draw(boxImage)
//		if box.LeftClicked() {
//			// ...
//		}
//	}
//	log.Fatal(canopy.Run(game))
//
// # Layers
//
// Objects are drawn in the order OnUpdate draws them. The first time an
// object is drawn it takes the next value of the scene's [LayerAllocator];
// destroying any object gives one value back. Layers are what click
// resolution compares: a click on an object is swallowed by any object with
// a higher layer that overlaps it and also contains the pointer.
//
// # Geometry
//
// [Rect.Contains] is inclusive on every edge, [Overlaps] is exclusive, so
// two boxes that only touch never collide but a pointer on a shared edge is
// inside both.
//
// # Frames
//
// [Game] implements [ebiten.Game]. Update polls input and runs one tick of
// the [Loop]; the tick calls [Scene.OnUpdate], then each enabled
// [ScreenGUI]. Draws are recorded into the scene's [CommandBuffer] and
// submitted to the screen in Draw.
//
// [Ebitengine]: https://ebitengine.org
package canopy
