// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

//go:build unix

package terminal

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/framebuffer"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/logger"
)

// DefaultHoldFrames is the number of frames a key is held after a key press.
const DefaultHoldFrames = 8

// ANSI sequences.
const (
	clearScreen = "\033[2J"
	cursorHome  = "\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
	resetAttr   = "\033[0m"
)

// Terminal implements the hardware.Display and hardware.Input interfaces.
type Terminal struct {
	input  *os.File
	output *os.File

	// terminal attributes on creation. restored by Close()
	canAttr unix.Termios

	// number of frames each key remains held
	HoldFrames int
	held       [keypad.NumKeys]int

	buffer []byte
	s      strings.Builder
}

// NewTerminal puts the terminal into raw mode and clears the screen. The
// terminal must be restored with Close().
func NewTerminal(input *os.File, output *os.File) (*Terminal, error) {
	if !term.IsTerminal(int(input.Fd())) {
		return nil, curated.Errorf("terminal: %v", "input is not a terminal")
	}

	cols, rows, err := term.GetSize(int(output.Fd()))
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}
	if cols < framebuffer.Width || rows < framebuffer.Height/2 {
		return nil, curated.Errorf("terminal: too small (%dx%d)", cols, rows)
	}

	trm := &Terminal{
		input:      input,
		output:     output,
		HoldFrames: DefaultHoldFrames,
		buffer:     make([]byte, 256),
	}

	err = termios.Tcgetattr(input.Fd(), &trm.canAttr)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	// raw mode with non-blocking reads
	raw := trm.canAttr
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 0

	err = termios.Tcsetattr(input.Fd(), termios.TCSANOW, &raw)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	_, _ = trm.output.WriteString(hideCursor + clearScreen)

	logger.Logf(logger.Allow, "terminal", "raw mode (%dx%d)", cols, rows)

	return trm, nil
}

// Close restores the terminal to the state it was in when NewTerminal() was
// called.
func (trm *Terminal) Close() error {
	_, _ = trm.output.WriteString(resetAttr + showCursor + "\r\n")

	_ = termios.Tcflush(trm.input.Fd(), termios.TCIFLUSH)
	err := termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &trm.canAttr)
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}

// Render implements the hardware.Display interface.
func (trm *Terminal) Render(px framebuffer.Pixels) error {
	trm.s.Reset()
	trm.s.WriteString(cursorHome)
	renderHalfBlocks(&trm.s, px)

	if _, err := trm.output.WriteString(trm.s.String()); err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}

// Poll implements the hardware.Input interface.
func (trm *Terminal) Poll() (keypad.Keys, bool, error) {
	for i := range trm.held {
		if trm.held[i] > 0 {
			trm.held[i]--
		}
	}

	// reads do not block because VMIN and VTIME are both zero. no data is
	// reported as io.EOF
	n, err := trm.input.Read(trm.buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return keypad.Keys{}, false, curated.Errorf("terminal: %v", err)
	}

	pressed, stop := decodeInput(trm.buffer[:n])
	for _, k := range pressed {
		trm.held[k] = trm.HoldFrames
	}

	var keys keypad.Keys
	for i := range trm.held {
		keys[i] = trm.held[i] > 0
	}

	if stop {
		logger.Log(logger.Allow, "terminal", "stop requested")
	}

	return keys, stop, nil
}
