// Package arix is a particle morphing engine for a luxury Christmas tree scene.
//
// Several thousand particles (needles, ornaments, gifts and stars) live in
// two arrangements at once: a scattered sphere and a cone-shaped tree laid
// out on a golden-angle spiral. A single toggle moves every group between the
// two with frame-rate independent exponential damping. A crowning star,
// ambient snow and a gliding camera rig complete the scene.
//
// The package holds no renderer. Backends implement [FrameSink] and draw the
// per-frame [Transform] buffers; see the ebitenview and termview packages.
//
// # Quick start
//
//	scene, err := arix.NewScene(arix.DefaultConfig(), nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	greeter := arix.NewGreeter(provider, 15*time.Second)
//	ctrl := arix.NewController(scene, greeter, 0.3, nil)
//
//	// each frame
//	scene.Update(dt)
//	scene.Draw(sink)
//
//	// on click
//	ctrl.Toggle()
//
// # Morphing
//
// Each group carries a [MorphState]. Only [Controller.Toggle] writes its
// target; only [MorphState.Step] writes its current value. Step uses
// 1-exp(-dt/τ) so one step of d equals two steps of d/2 and no step can
// overshoot.
//
// # Greetings
//
// On entering the tree shape the controller may ask a [GreetingProvider] for
// a short message. The request runs in the background through a [Greeter]
// and any failure resolves to [FallbackGreeting]. The gemini package provides
// a Gemini-backed provider.
//
// [gween]: https://github.com/tanema/gween
// [mathgl]: https://github.com/go-gl/mathgl
package arix
