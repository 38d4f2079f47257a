package input

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/BrandonKowalski/helmsman/pkg/helmsman/route"
	"github.com/BrandonKowalski/helmsman/pkg/helmsman/router"
	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inline struct{}

func (inline) Dispatch(fn func()) { fn() }

func (inline) After(time.Duration, func()) func() bool { return func() bool { return false } }

type fakeSource struct {
	events []*evdev.InputEvent
	err    error
}

func (s *fakeSource) ReadOne() (*evdev.InputEvent, error) {
	if len(s.events) == 0 {
		if s.err != nil {
			return nil, s.err
		}
		return nil, io.EOF
	}
	event := s.events[0]
	s.events = s.events[1:]
	return event, nil
}

func key(code evdev.EvCode, value int32) *evdev.InputEvent {
	return &evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: value}
}

func deepRouter() *router.Router {
	r := router.New(inline{}, router.Options{})
	r.Activate(route.Path("a"))
	r.Activate(route.Path("a", "b"))
	r.Activate(route.Path("a", "b", "c"))
	return r
}

func TestBackButtonPopsOnPress(t *testing.T) {
	r := deepRouter()
	source := &fakeSource{events: []*evdev.InputEvent{
		key(evdev.KEY_ESC, 1),
		key(evdev.KEY_ESC, 0),
		{Type: evdev.EV_SYN},
		key(evdev.KEY_A, 1),
		key(evdev.BTN_EAST, 1),
	}}

	b := NewBackButton(source, BackButtonConfig{}, r)
	require.NoError(t, b.Run(context.Background()))

	assert.Equal(t, []string{"a"}, r.Segments().Paths())
}

func TestBackButtonCustomCodes(t *testing.T) {
	r := deepRouter()
	source := &fakeSource{events: []*evdev.InputEvent{
		key(evdev.KEY_ESC, 1),
		key(evdev.KEY_Q, 1),
	}}

	b := NewBackButton(source, BackButtonConfig{KeyCodes: []uint16{uint16(evdev.KEY_Q)}}, r)
	require.NoError(t, b.Run(context.Background()))

	assert.Equal(t, []string{"a", "b"}, r.Segments().Paths())
}

func TestBackButtonRepeatWhileHeld(t *testing.T) {
	r := deepRouter()
	b := NewBackButton(&fakeSource{}, BackButtonConfig{
		RepeatDelay:    300 * time.Millisecond,
		RepeatInterval: 100 * time.Millisecond,
	}, r)

	now := time.Unix(0, 0)
	b.now = func() time.Time { return now }

	b.Handle(key(evdev.KEY_ESC, 1))
	assert.Equal(t, 2, r.Segments().Len())

	now = now.Add(100 * time.Millisecond)
	b.Handle(key(evdev.KEY_ESC, 2))
	assert.Equal(t, 2, r.Segments().Len(), "repeat delay not reached")

	now = now.Add(200 * time.Millisecond)
	b.Handle(key(evdev.KEY_ESC, 2))
	assert.Equal(t, 1, r.Segments().Len())

	now = now.Add(100 * time.Millisecond)
	b.Handle(key(evdev.KEY_ESC, 2))
	assert.Equal(t, 0, r.Segments().Len())

	b.Handle(key(evdev.KEY_ESC, 0))
	now = now.Add(time.Second)
	b.Handle(key(evdev.KEY_ESC, 2))
	assert.Equal(t, 0, r.Segments().Len())
}

func TestBackButtonIgnoresRepeatByDefault(t *testing.T) {
	r := deepRouter()
	b := NewBackButton(&fakeSource{}, BackButtonConfig{}, r)

	b.Handle(key(evdev.KEY_ESC, 1))
	b.Handle(key(evdev.KEY_ESC, 2))
	b.Handle(key(evdev.KEY_ESC, 2))
	b.Handle(nil)

	assert.Equal(t, []string{"a", "b"}, r.Segments().Paths())
}

func TestBackButtonReadError(t *testing.T) {
	readErr := errors.New("device unplugged")
	b := NewBackButton(&fakeSource{err: readErr}, BackButtonConfig{DevicePath: "/dev/input/event9"}, deepRouter())

	err := b.Run(context.Background())

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "read", inputErr.Op)
	assert.ErrorIs(t, err, readErr)
	assert.Contains(t, err.Error(), "/dev/input/event9")
}

func TestOpenBackButtonMissingDevice(t *testing.T) {
	_, err := OpenBackButton(BackButtonConfig{DevicePath: "/nonexistent/event0"}, deepRouter())

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "open", inputErr.Op)
}

// blockingSource blocks reads until it is closed, like an idle input device.
type blockingSource struct {
	closed    chan struct{}
	closeOnce sync.Once
}

func (s *blockingSource) ReadOne() (*evdev.InputEvent, error) {
	<-s.closed
	return nil, os.ErrClosed
}

func (s *blockingSource) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })
	return nil
}

func TestBackButtonRunStopsOnCancel(t *testing.T) {
	source := &blockingSource{closed: make(chan struct{})}
	b := NewBackButton(source, BackButtonConfig{}, deepRouter())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.NoError(t, b.Close())
}

func TestBackButtonCloseWithoutDevice(t *testing.T) {
	b := NewBackButton(&fakeSource{}, BackButtonConfig{}, deepRouter())
	assert.NoError(t, b.Close())
}
