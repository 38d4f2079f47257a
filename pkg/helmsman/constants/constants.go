// Package constants defines shared default values used throughout helmsman.
package constants

import "time"

// Default timing constants.
const (
	// DefaultStageDelay approximates one push transition of a stack navigation
	// widget. A staged activation advances one level per delay.
	DefaultStageDelay = 550 * time.Millisecond

	DefaultBackRepeatDelay    = 500 * time.Millisecond // Hold time before the back button starts repeating
	DefaultBackRepeatInterval = 250 * time.Millisecond // Time between repeated pops while held

	DefaultLoopQueueSize = 64 // Pending tasks a Loop buffers before Dispatch blocks
)

// Linux input key codes treated as "back" by default:
// KEY_ESC, KEY_BACKSPACE, KEY_BACK and BTN_EAST (the B face button).
var DefaultBackKeyCodes = []uint16{1, 14, 158, 0x131}

// Key event values reported by the Linux input subsystem.
const (
	KeyReleased int32 = 0
	KeyPressed  int32 = 1
	KeyRepeated int32 = 2
)
