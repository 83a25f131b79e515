// Package graphlab draws y = cos³(t²)/(1.5t+2) as a line or scatter plot in
// an [Ebitengine] desktop window.
//
// The program samples the function once at a fixed step over a fixed
// domain, then on every repaint maps the samples linearly into the plot
// frame and draws them:
//
//	samples, _ := graphlab.Generate(graphlab.CubedCosine, graphlab.DefaultDomain)
//	r := graphlab.NewRenderer(graphlab.CubedCosineTitle)
//	r.Draw(canvas, graphlab.Rect{X: 40, Y: 80, Width: 820, Height: 440}, samples)
//
// The simplest way to open the window is [RunConfigured]:
//
//	if err := graphlab.RunConfigured(graphlab.DefaultConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// # Drawing
//
// [Renderer] paints through the [Canvas] interface. [EbitenCanvas] draws into
// an *ebiten.Image with the vector and text/v2 packages; [RecordingCanvas]
// records the calls instead, which is how the rendering rules are tested.
//
// # Controls
//
// A strip along the top of the window holds a radio group (line chart or
// scatter) and a "Show coordinates" checkbox. The keys L, P and C do the same
// and S queues a screenshot. Each change invalidates the cached frame; the
// plot is repainted only on the next Draw after an invalidation or a resize.
//
// # Automation
//
// [Window.InjectClick] queues synthetic clicks and [LoadTestScript] replays a
// JSON script of clicks, toggles, waits and screenshots, so the window can be
// driven without a user.
//
// [Ebitengine]: https://ebitengine.org
package graphlab
