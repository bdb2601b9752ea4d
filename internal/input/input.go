// Package input turns raw terminal bytes and touch positions into player intents.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Intent is an abstract player action consumed by the simulation.
type Intent int

const (
	MoveLeft Intent = iota + 1
	MoveRight
	Stop
	Fire
)

func (i Intent) String() string {
	switch i {
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case Stop:
		return "stop"
	case Fire:
		return "fire"
	default:
		return "unknown"
	}
}

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Space   bool
	Restart bool
	Enter   bool
	Escape  bool
	Pressed []byte
	Closed  bool // The underlying reader hit EOF or an error
}

// Intents converts held keys into intents for one frame. Exactly one
// movement intent is produced; opposing directions cancel into Stop.
func (in Input) Intents() []Intent {
	intents := make([]Intent, 0, 2)
	switch {
	case in.Left && !in.Right:
		intents = append(intents, MoveLeft)
	case in.Right && !in.Left:
		intents = append(intents, MoveRight)
	default:
		intents = append(intents, Stop)
	}
	if in.Space {
		intents = append(intents, Fire)
	}
	return intents
}

// TouchIntent maps a horizontal touch position to an intent: the left third
// of the screen moves left, the right third moves right, the middle fires.
func TouchIntent(x, width float64) Intent {
	switch {
	case x < width/3:
		return MoveLeft
	case x > width*2/3:
		return MoveRight
	default:
		return Fire
	}
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit    time.Time
	left    time.Time
	right   time.Time
	space   time.Time
	restart time.Time
	enter   time.Time
	escape  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ResetKeyInput forgets every held key, so a key that changed screens does
// not also act on the next one.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence to allow detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

func readInputAt(s *Stream, now time.Time) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			case 'A', 'B': // Up/down arrows do nothing here
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }

	return Input{
		Quit:    held(s.state.quit),
		Left:    held(s.state.left),
		Right:   held(s.state.right),
		Space:   held(s.state.space),
		Restart: held(s.state.restart),
		Enter:   held(s.state.enter),
		Escape:  held(s.state.escape),
		Pressed: buf,
		Closed:  s.closed,
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
// Unrecognised bytes are ignored.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // Ctrl+C
		state.quit = now
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case ' ', 'w', 'W', 'k', 'K':
		state.space = now
	case 'r', 'R':
		state.restart = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	}
}
