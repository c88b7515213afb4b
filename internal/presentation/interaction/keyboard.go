package interaction

import (
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// KeyboardReader handles keyboard input in raw mode
type KeyboardReader struct {
	fd       int
	oldState *term.State
	in       io.Reader
	file     *os.File // set when a read deadline can interrupt in
	release  func() error
	input    chan KeyEvent
	stop     chan struct{}
	done     chan struct{}
}

// KeyEvent represents a keyboard event
type KeyEvent struct {
	Key  rune
	Type KeyType
}

// KeyType represents the type of key pressed
type KeyType int

const (
	KeyChar KeyType = iota
	KeyEscape
)

// Action is what the preview does in response to a key
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleSort
	ActionMorePadding
	ActionLessPadding
	ActionReload
)

// NewKeyboardReader puts stdin into raw mode and starts reading keys
func NewKeyboardReader() (*KeyboardReader, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("stdin is not a terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}

	file, release, err := pollableInput(fd)
	if err != nil {
		_ = term.Restore(fd, oldState)
		return nil, err
	}

	kr := &KeyboardReader{
		fd:       fd,
		oldState: oldState,
		in:       file,
		file:     file,
		release:  release,
		input:    make(chan KeyEvent, 10),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	go kr.readInput()

	return kr, nil
}

// readInput reads keyboard input in a goroutine
func (kr *KeyboardReader) readInput() {
	if kr.done != nil {
		defer close(kr.done)
	}
	buf := make([]byte, 64)

	for {
		select {
		case <-kr.stop:
			return
		default:
			n, err := kr.in.Read(buf)
			if err != nil {
				return
			}

			for _, event := range parseInput(buf[:n]) {
				select {
				case kr.input <- event:
				case <-kr.stop:
					return
				}
			}
		}
	}
}

// parseInput splits one read into key events, one per byte. A lone ESC is
// the escape key; escape sequences such as arrow keys are dropped whole.
func parseInput(buf []byte) []KeyEvent {
	var events []KeyEvent
	for i := 0; i < len(buf); i++ {
		if buf[i] != 27 {
			events = append(events, KeyEvent{Key: rune(buf[i]), Type: KeyChar})
			continue
		}
		if i == len(buf)-1 {
			events = append(events, KeyEvent{Key: 27, Type: KeyEscape})
			continue
		}
		i = escapeSequenceEnd(buf, i)
	}
	return events
}

// escapeSequenceEnd returns the index of the last byte of the escape sequence starting at buf[start]
func escapeSequenceEnd(buf []byte, start int) int {
	i := start + 1
	if buf[i] != '[' && buf[i] != 'O' {
		return i // Alt+key
	}
	for i++; i < len(buf); i++ {
		if buf[i] >= 0x40 && buf[i] <= 0x7e {
			return i
		}
	}
	return len(buf) - 1
}

// ActionFor maps a key to a preview action
func ActionFor(event KeyEvent) Action {
	if event.Type == KeyEscape {
		return ActionQuit
	}

	switch event.Key {
	case 'q', 'Q', 3: // 3 is Ctrl+C in raw mode
		return ActionQuit
	case 's', 'S':
		return ActionToggleSort
	case '+', '=':
		return ActionMorePadding
	case '-', '_':
		return ActionLessPadding
	case 'r', 'R':
		return ActionReload
	default:
		return ActionNone
	}
}

// Events returns the keyboard event channel
func (kr *KeyboardReader) Events() <-chan KeyEvent {
	return kr.input
}

// Close stops the keyboard reader and restores terminal. A read still pending
// is interrupted through a read deadline where the platform supports one.
func (kr *KeyboardReader) Close() error {
	close(kr.stop)
	if kr.file != nil && kr.file.SetReadDeadline(time.Now()) == nil && kr.done != nil {
		<-kr.done
	}

	var err error
	if kr.release != nil {
		err = kr.release()
	}
	if kr.oldState != nil {
		if restoreErr := term.Restore(kr.fd, kr.oldState); restoreErr != nil {
			return restoreErr
		}
	}
	return err
}
