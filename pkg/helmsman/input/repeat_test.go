package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRepeatTiming(t *testing.T) {
	r := NewRepeatWithTiming(300*time.Millisecond, 50*time.Millisecond)
	start := time.Unix(100, 0)

	assert.False(t, r.Due(start), "not held")

	r.Press(start)
	assert.True(t, r.IsHeld())
	assert.False(t, r.Due(start.Add(299*time.Millisecond)))
	assert.True(t, r.Due(start.Add(300*time.Millisecond)))
	assert.False(t, r.Due(start.Add(320*time.Millisecond)))
	assert.True(t, r.Due(start.Add(350*time.Millisecond)))

	r.Release()
	assert.False(t, r.IsHeld())
	assert.False(t, r.Due(start.Add(time.Hour)))
}

func TestRepeatDefaults(t *testing.T) {
	r := NewRepeat()
	start := time.Unix(0, 0)

	r.Press(start)
	assert.False(t, r.Due(start.Add(499*time.Millisecond)))
	assert.True(t, r.Due(start.Add(500*time.Millisecond)))
	assert.True(t, r.Due(start.Add(750*time.Millisecond)))
}
