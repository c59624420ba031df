package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Jump    bool
	Start   bool
	Debug   bool // toggles the quadtree overlay; set only on the frame the key arrives
	Pressed []byte
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	jump  time.Time
	start time.Time
}

// Stream delivers input bytes via a channel and tracks key state between frames.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel is closed when r returns an error; the stream then reports Quit.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
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

// Reset forgets held keys so a key pressed on one screen does not leak into the next.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// ReadInput drains all available bytes from the stream (non-blocking).
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for {
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

	in := s.parse(buf, time.Now())
	if s.closed {
		in.Quit = true
	}
	return in
}

// parse updates the key state timestamps from buf and builds the frame's Input.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	in := Input{Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			// CSI sequence: ESC [ <code>
			if i+2 < len(buf) && buf[i+1] == '[' {
				if buf[i+2] == 'A' { // Up arrow
					s.state.jump = now
				}
				i += 2
				continue
			}
			// A lone escape quits; ESC followed by anything else is an Alt chord.
			if i+1 == len(buf) {
				s.state.quit = now
			}
			continue
		}

		switch b {
		case 'q', 'Q', '\x03':
			s.state.quit = now
		case ' ':
			s.state.jump = now
			s.state.start = now
		case 'w', 'W', 'k', 'K':
			s.state.jump = now
		case '\n', '\r':
			s.state.start = now
		case 'g', 'G':
			in.Debug = !in.Debug
		}
	}

	// Keys are "pressed" if seen within hold duration
	in.Quit = now.Sub(s.state.quit) < keyHoldDuration
	in.Jump = now.Sub(s.state.jump) < keyHoldDuration
	in.Start = now.Sub(s.state.start) < keyHoldDuration
	return in
}
