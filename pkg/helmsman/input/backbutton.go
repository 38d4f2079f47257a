// Package input connects hardware buttons to a Router.
//
// BackButton reads key events from a Linux input device and pops the
// router whenever a back key is pressed, repeating while it is held.
package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/BrandonKowalski/helmsman/pkg/helmsman/constants"
	"github.com/BrandonKowalski/helmsman/pkg/helmsman/internal"
	"github.com/BrandonKowalski/helmsman/pkg/helmsman/router"
	"github.com/holoplot/go-evdev"
)

// EventSource yields input events, typically an *evdev.InputDevice.
type EventSource interface {
	ReadOne() (*evdev.InputEvent, error)
}

// Navigator is the part of a Router a back button drives.
type Navigator interface {
	Pop()
	Scheduler() router.Scheduler
}

// BackButtonConfig configures a BackButton. Zero values use defaults.
type BackButtonConfig struct {
	DevicePath     string        // e.g. /dev/input/event1
	KeyCodes       []uint16      // Keys treated as back; defaults to constants.DefaultBackKeyCodes
	RepeatDelay    time.Duration // Hold time before repeating; 0 disables repeat
	RepeatInterval time.Duration // Time between repeats
}

// InputError is returned when the input device cannot be used.
type InputError struct {
	Op   string // Operation that failed (e.g., "open", "read")
	Path string // Device path, if known
	Err  error
}

func (e *InputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("input: %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("input: %s: %v", e.Op, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// BackButton pops a Navigator on back key presses.
type BackButton struct {
	source EventSource
	closer io.Closer
	path   string
	nav    Navigator
	codes  map[evdev.EvCode]struct{}
	repeat *Repeat
	now    func() time.Time
	logger *slog.Logger
}

// OpenBackButton opens the device in cfg.DevicePath and binds it to nav.
func OpenBackButton(cfg BackButtonConfig, nav Navigator) (*BackButton, error) {
	dev, err := evdev.Open(cfg.DevicePath)
	if err != nil {
		return nil, &InputError{Op: "open", Path: cfg.DevicePath, Err: err}
	}

	return NewBackButton(dev, cfg, nav), nil
}

// NewBackButton binds an already open event source to nav. If source is an
// io.Closer, the BackButton takes ownership of it: Run closes it when its
// context is cancelled, and Close closes it.
func NewBackButton(source EventSource, cfg BackButtonConfig, nav Navigator) *BackButton {
	codes := cfg.KeyCodes
	if len(codes) == 0 {
		codes = constants.DefaultBackKeyCodes
	}

	b := &BackButton{
		source: source,
		path:   cfg.DevicePath,
		nav:    nav,
		codes:  make(map[evdev.EvCode]struct{}, len(codes)),
		now:    time.Now,
		logger: internal.GetInternalLogger(),
	}
	for _, code := range codes {
		b.codes[evdev.EvCode(code)] = struct{}{}
	}
	if closer, ok := source.(io.Closer); ok {
		b.closer = closer
	}

	if cfg.RepeatDelay > 0 {
		interval := cfg.RepeatInterval
		if interval <= 0 {
			interval = constants.DefaultBackRepeatInterval
		}
		repeat := NewRepeatWithTiming(cfg.RepeatDelay, interval)
		b.repeat = &repeat
	}

	return b
}

// Run reads events until ctx is cancelled or the source fails.
// Cancelling ctx closes a closable source to unblock a pending read, and Run
// returns nil. A source that cannot be closed is only checked between events.
func (b *BackButton) Run(ctx context.Context) error {
	if b.closer != nil {
		stop := context.AfterFunc(ctx, func() { b.closer.Close() })
		defer stop()
	}

	for {
		event, err := b.source.ReadOne()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return &InputError{Op: "read", Path: b.path, Err: err}
		}

		b.Handle(event)

		if ctx.Err() != nil {
			return nil
		}
	}
}

// Handle processes a single input event.
func (b *BackButton) Handle(event *evdev.InputEvent) {
	if event == nil || event.Type != evdev.EV_KEY {
		return
	}
	if _, ok := b.codes[event.Code]; !ok {
		return
	}

	switch event.Value {
	case constants.KeyPressed:
		if b.repeat != nil {
			b.repeat.Press(b.now())
		}
		b.pop(event.Code)
	case constants.KeyRepeated:
		if b.repeat != nil && b.repeat.Due(b.now()) {
			b.pop(event.Code)
		}
	case constants.KeyReleased:
		if b.repeat != nil {
			b.repeat.Release()
		}
	}
}

func (b *BackButton) pop(code evdev.EvCode) {
	b.logger.Debug("Back button pressed", "code", uint16(code))
	b.nav.Scheduler().Dispatch(b.nav.Pop)
}

// Close closes the underlying source, if it is closable.
func (b *BackButton) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}
