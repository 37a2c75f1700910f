// Package classify turns a raw stream of keyboard events into typed input
// intents, using inter-keystroke timing as the sole discriminant between
// keyboard-wedge scanner bursts and human typing. No scan-mode toggle exists:
// a hardware scanner emits an entire code well under the velocity threshold,
// terminated by Enter, while a human exceeds the threshold between presses.
package classify

import (
	"time"

	"github.com/ThinkIshdeep/Chatur-Bazar/clock"
	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

// DefaultVelocityThreshold is the maximum inter-keystroke gap below which
// characters are assumed to originate from a scanner rather than a human.
const DefaultVelocityThreshold = 50 * time.Millisecond

// KeyKind discriminates raw key events.
type KeyKind int

// Raw key kinds delivered by the presentation layer.
const (
	// KeyRune is a single printable character, carried in Key.Ch.
	KeyRune KeyKind = iota
	// KeyEnter is the Enter/Return key.
	KeyEnter
	// KeyEscape is the Escape key.
	KeyEscape
	// KeyModifier is a modifier-only press (shift, ctrl, alt, meta).
	KeyModifier
	// KeyOther is any other non-printable key (arrows, function keys).
	KeyOther
)

// Key is a raw key event.
type Key struct {
	Kind KeyKind
	Ch   rune
}

// Context carries the presentation-layer flags the classifier needs.
// The classifier itself holds no catalog or modal state.
type Context struct {
	// InTextField reports that focus is inside a free-text input surface.
	InTextField bool
	// ModalOpen reports that a modal surface is open.
	ModalOpen bool
	// CartNonEmpty reports that the cart has at least one line.
	CartNonEmpty bool
}

// Classifier buffers scanner characters and decides, per keystroke, whether
// it belongs to an in-flight scan, a hotkey, or a command. State is just the
// rolling buffer and the time of the last accepted key; nothing persists
// across sessions.
type Classifier struct {
	clk       clock.Clock
	threshold time.Duration

	buf     []rune
	lastKey time.Time
}

// New creates a classifier on the given clock. A threshold of zero selects
// DefaultVelocityThreshold.
func New(clk clock.Clock, threshold time.Duration) *Classifier {
	if threshold <= 0 {
		threshold = DefaultVelocityThreshold
	}
	return &Classifier{clk: clk, threshold: threshold, lastKey: clk.Now()}
}

// Buffered returns the current scan buffer length. Exposed for the status
// line only; buffer contents leave the classifier solely via ScanComplete.
func (c *Classifier) Buffered() int {
	return len(c.buf)
}

// Feed classifies one raw key event. It returns the classified event and
// true, or nil and false when the key is consumed without producing an
// intent (modifiers, buffer appends, discarded slow keys).
func (c *Classifier) Feed(k Key, ctx Context) (types.InputEvent, bool) {
	// Modifiers do not reset the buffer and do not count toward timing.
	if k.Kind == KeyModifier {
		return nil, false
	}

	now := c.clk.Now()
	gap := now.Sub(c.lastKey)
	c.lastKey = now

	// Escape dismisses unconditionally, regardless of focus or buffer.
	if k.Kind == KeyEscape {
		c.buf = c.buf[:0]
		return types.Command{Kind: types.CommandDismiss}, true
	}

	// Inside a text surface only Escape keeps command meaning; raw
	// characters pass through to the field and are never buffered.
	if ctx.InTextField {
		if k.Kind == KeyRune {
			return types.TextInput{Ch: k.Ch}, true
		}
		return nil, false
	}

	if k.Kind == KeyRune && k.Ch == ' ' {
		if ctx.CartNonEmpty {
			return types.Command{Kind: types.CommandCheckout}, true
		}
		// Space never enters the scan buffer.
		return nil, false
	}

	if k.Kind == KeyRune && k.Ch == '/' && !ctx.ModalOpen {
		return types.Command{Kind: types.CommandFocusSearch}, true
	}

	// A human-paced digit is a catalog shortcut. A digit arriving under
	// the velocity threshold belongs to an in-flight scan burst (codes
	// are mostly numeric) and falls through to the buffer below.
	if k.Kind == KeyRune && k.Ch >= '1' && k.Ch <= '9' && !ctx.ModalOpen && gap >= c.threshold {
		return types.Hotkey{Digit: byte(k.Ch)}, true
	}

	if k.Kind == KeyEnter {
		if len(c.buf) == 0 {
			return nil, false
		}
		code := string(c.buf)
		c.buf = c.buf[:0]
		return types.ScanComplete{Code: code}, true
	}

	if k.Kind != KeyRune {
		return nil, false
	}

	// Velocity trap: sub-threshold gaps are scanner-paced and append;
	// anything slower means a human is not mid-scan, so the buffer is
	// discarded without appending.
	if gap < c.threshold {
		c.buf = append(c.buf, k.Ch)
	} else {
		c.buf = c.buf[:0]
	}
	return nil, false
}
