package input

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func feed(bytes string) *Stream {
	s := &Stream{ch: make(chan byte, len(bytes)+1)}
	for i := 0; i < len(bytes); i++ {
		s.ch <- bytes[i]
	}
	return s
}

func TestReadInputKeys(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		bytes string
		check func(t *testing.T, in Input)
	}{
		{"left arrow", "\x1b[D", func(t *testing.T, in Input) {
			assert.True(t, in.Left)
			assert.False(t, in.Escape)
		}},
		{"right letter", "d", func(t *testing.T, in Input) { assert.True(t, in.Right) }},
		{"space fires", " ", func(t *testing.T, in Input) { assert.True(t, in.Space) }},
		{"restart", "R", func(t *testing.T, in Input) { assert.True(t, in.Restart) }},
		{"quit", "q", func(t *testing.T, in Input) { assert.True(t, in.Quit) }},
		{"ctrl-c quits", "\x03", func(t *testing.T, in Input) { assert.True(t, in.Quit) }},
		{"unknown ignored", "xyz", func(t *testing.T, in Input) {
			assert.Equal(t, []Intent{Stop}, in.Intents())
			assert.Equal(t, []byte("xyz"), in.Pressed)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, readInputAt(feed(tt.bytes), now))
		})
	}
}

func TestKeysExpireAfterHold(t *testing.T) {
	now := time.Now()
	s := feed("a")
	assert.True(t, readInputAt(s, now).Left)
	assert.True(t, readInputAt(s, now.Add(keyHoldDuration/2)).Left)
	assert.False(t, readInputAt(s, now.Add(keyHoldDuration)).Left)
}

func TestIntents(t *testing.T) {
	assert.Equal(t, []Intent{MoveLeft, Fire}, Input{Left: true, Space: true}.Intents())
	assert.Equal(t, []Intent{MoveRight}, Input{Right: true}.Intents())
	assert.Equal(t, []Intent{Stop}, Input{Left: true, Right: true}.Intents())
	assert.Equal(t, []Intent{Stop}, Input{}.Intents())
}

func TestTouchIntentThirds(t *testing.T) {
	assert.Equal(t, MoveLeft, TouchIntent(10, 900))
	assert.Equal(t, Fire, TouchIntent(450, 900))
	assert.Equal(t, MoveRight, TouchIntent(890, 900))
}

func TestStreamReportsClosed(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("a")))
	assert.Eventually(t, func() bool {
		return ReadInput(s).Closed
	}, time.Second, time.Millisecond)
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "fire", Fire.String())
	assert.Equal(t, "unknown", Intent(99).String())
}

func TestResetKeyInput(t *testing.T) {
	now := time.Now()
	s := feed(" ")
	assert.True(t, readInputAt(s, now).Space)
	ResetKeyInput(s)
	assert.False(t, readInputAt(s, now).Space)
}
