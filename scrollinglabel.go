package ledgrid

import "time"

// ScrollingLabel shows a sliding window of up to MaxCharacters over a
// longer string, advancing the window one character per animation step.
// The window wraps around the end of the text, so a marquee loops
// seamlessly. Text short enough to fit passes through unchanged.
type ScrollingLabel struct {
	*Label

	fullText string

	// MaxCharacters is the window size. Set at construction; changing
	// it afterwards takes effect on the next scroll step.
	MaxCharacters int

	// AnimateTime is the delay between automatic scroll steps.
	AnimateTime time.Duration

	currentIndex int
	scrolling    bool
	lastStep     time.Time
}

// ScrollingLabelConfig carries ScrollingLabel parameters on top of the
// label's own. Zero MaxCharacters means 10, zero AnimateTime means
// 300ms.
type ScrollingLabelConfig struct {
	Label LabelConfig

	MaxCharacters int
	AnimateTime   time.Duration
}

// NewScrollingLabel creates a scrolling label for font. The label starts
// stopped; call StartScrolling to animate it.
func NewScrollingLabel(font *Font, cfg ScrollingLabelConfig) *ScrollingLabel {
	maxChars := cfg.MaxCharacters
	if maxChars <= 0 {
		maxChars = 10
	}
	animate := cfg.AnimateTime
	if animate <= 0 {
		animate = 300 * time.Millisecond
	}

	s := &ScrollingLabel{
		fullText:      cfg.Label.Text,
		MaxCharacters: maxChars,
		AnimateTime:   animate,
	}

	labelCfg := cfg.Label
	labelCfg.Text = s.visibleText()
	s.Label = NewLabel(font, labelCfg)
	return s
}

// FullText returns the complete string being scrolled.
func (s *ScrollingLabel) FullText() string { return s.fullText }

// SetFullText replaces the scrolled string and resets the window to the
// start.
func (s *ScrollingLabel) SetFullText(text string) {
	s.fullText = text
	s.currentIndex = 0
	s.SetText(s.visibleText())
}

// CurrentIndex returns the window's start offset into the full text.
func (s *ScrollingLabel) CurrentIndex() int { return s.currentIndex }

// IsScrolling reports whether automatic scrolling is active.
func (s *ScrollingLabel) IsScrolling() bool { return s.scrolling }

// StartScrolling begins automatic scrolling. The first step happens
// one AnimateTime after the next Update call.
func (s *ScrollingLabel) StartScrolling(now time.Time) {
	s.scrolling = true
	s.lastStep = now
}

// StopScrolling halts automatic scrolling, leaving the window where it
// is.
func (s *ScrollingLabel) StopScrolling() {
	s.scrolling = false
}

// ResetScrolling moves the window back to the start of the text.
func (s *ScrollingLabel) ResetScrolling() {
	s.currentIndex = 0
	s.SetText(s.visibleText())
}

// Update advances the scroll position when scrolling is active and
// AnimateTime has elapsed since the last step. Call it once per frame
// tick with the current time; it reports whether the text moved.
func (s *ScrollingLabel) Update(now time.Time) bool {
	if !s.scrolling || now.Sub(s.lastStep) < s.AnimateTime {
		return false
	}
	s.Scroll()
	s.lastStep = now
	return true
}

// Scroll moves the window one character toward the end of the text,
// wrapping past the end. Text that fits in the window does not move.
func (s *ScrollingLabel) Scroll() {
	runes := []rune(s.fullText)
	if len(runes) <= s.MaxCharacters {
		return
	}
	s.currentIndex = (s.currentIndex + 1) % len(runes)
	s.SetText(s.visibleText())
}

// ScrollRight moves the window one character back toward the start,
// wrapping before the beginning.
func (s *ScrollingLabel) ScrollRight() {
	runes := []rune(s.fullText)
	if len(runes) <= s.MaxCharacters {
		return
	}
	s.currentIndex = (s.currentIndex - 1 + len(runes)) % len(runes)
	s.SetText(s.visibleText())
}

// visibleText is the windowed substring, wrapping around the end of the
// full text.
func (s *ScrollingLabel) visibleText() string {
	runes := []rune(s.fullText)
	if len(runes) <= s.MaxCharacters {
		return s.fullText
	}
	window := make([]rune, s.MaxCharacters)
	for i := range window {
		window[i] = runes[(s.currentIndex+i)%len(runes)]
	}
	return string(window)
}
