package ledgrid

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Slide animates a Group's position toward a target over a fixed
// duration. Create one with SlideTo and call Update(dt) once per frame
// tick until it reports done. Useful for panel transitions such as
// pushing one message off while the next slides in.
//
// There is no global animation manager; callers drive Update themselves.
type Slide struct {
	tweens [2]*gween.Tween
	target *Group
	Done   bool
}

// SlideTo creates a Slide moving group to (toX, toY) over duration
// seconds with the given easing function.
func SlideTo(group *Group, toX, toY int, duration float32, fn ease.TweenFunc) *Slide {
	return &Slide{
		tweens: [2]*gween.Tween{
			gween.New(float32(group.X), float32(toX), duration, fn),
			gween.New(float32(group.Y), float32(toY), duration, fn),
		},
		target: group,
	}
}

// Update advances the slide by dt seconds and writes the eased position
// back to the group. Returns true once the target position is reached.
func (s *Slide) Update(dt float32) bool {
	if s.Done {
		return true
	}

	x, doneX := s.tweens[0].Update(dt)
	y, doneY := s.tweens[1].Update(dt)
	s.target.X = int(x)
	s.target.Y = int(y)

	s.Done = doneX && doneY
	return s.Done
}

// Fade animates a display's brightness toward a target level. A fade to
// zero blacks the panel out; fading back up reveals whatever the scene
// graph composites underneath.
type Fade struct {
	tween   *gween.Tween
	display *Display
	Done    bool
}

// FadeBrightness creates a Fade easing display's brightness to the given
// level over duration seconds.
func FadeBrightness(display *Display, to float64, duration float32, fn ease.TweenFunc) *Fade {
	return &Fade{
		tween:   gween.New(float32(display.Brightness()), float32(to), duration, fn),
		display: display,
	}
}

// Update advances the fade by dt seconds and applies the eased
// brightness. Returns true once the target level is reached.
func (f *Fade) Update(dt float32) bool {
	if f.Done {
		return true
	}

	v, done := f.tween.Update(dt)
	f.display.SetBrightness(float64(v))

	f.Done = done
	return f.Done
}
