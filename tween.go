package graphlab

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MarkerTweenDuration is the length of the marker resize animation that
// follows a mode switch, in seconds.
const MarkerTweenDuration = 0.2

// markerTween eases the renderer's marker radius toward the default radius of
// a new plot mode.
type markerTween struct {
	tween  *gween.Tween
	target *Renderer
	Done   bool
}

// newMarkerTween starts an animation from radius from to the default radius
// of r.Mode.
func newMarkerTween(r *Renderer, from float64, fn ease.TweenFunc) *markerTween {
	return &markerTween{
		tween:  gween.New(float32(from), float32(DefaultMarkerRadius(r.Mode)), MarkerTweenDuration, fn),
		target: r,
	}
}

// Update advances the animation by dt seconds and writes the radius to the
// renderer. When finished the override is cleared so the renderer falls back
// to the mode default.
func (mt *markerTween) Update(dt float32) {
	if mt.Done {
		return
	}
	val, finished := mt.tween.Update(dt)
	mt.target.MarkerRadius = float64(val)
	if finished {
		mt.target.MarkerRadius = 0
		mt.Done = true
	}
}
