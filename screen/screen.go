//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package screen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
)

// The Screen draws frames on an ANSI terminal and reads raw key bytes.
type Screen struct {
	inFd  int
	out   *bufio.Writer
	saved *term.State // terminal state to restore on Close
}

func newScreen(in, out *os.File) *Screen {
	return &Screen{
		inFd: int(in.Fd()),
		out:  bufio.NewWriter(out),
	}
}

// Open switches in to non-canonical, no-echo mode and returns a Screen
// that writes to out. Close must be called to restore the terminal.
func Open(in, out *os.File) (*Screen, error) {
	s := newScreen(in, out)
	if !term.IsTerminal(s.inFd) {
		return nil, fmt.Errorf("screen: %s is not a terminal", in.Name())
	}
	saved, err := term.GetState(s.inFd)
	if err != nil {
		return nil, fmt.Errorf("screen: saving terminal state: %w", err)
	}
	attrs, err := unix.IoctlGetTermios(s.inFd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("screen: reading terminal attributes: %w", err)
	}
	attrs.Lflag &^= unix.ICANON | unix.ECHO
	// otherwise the driver consumes ctrl-q as XON
	attrs.Iflag &^= unix.IXON
	attrs.Cc[unix.VMIN] = 1
	attrs.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(s.inFd, ioctlWriteTermios, attrs); err != nil {
		term.Restore(s.inFd, saved)
		return nil, fmt.Errorf("screen: setting terminal attributes: %w", err)
	}
	s.saved = saved
	return s, nil
}

// Close clears the screen and restores the terminal state saved by Open.
// It is safe to call more than once.
func (s *Screen) Close() error {
	if s.saved == nil {
		return nil
	}
	s.out.WriteString(clearScreen + cursorHome)
	flushErr := s.out.Flush()
	err := term.Restore(s.inFd, s.saved)
	s.saved = nil
	if err != nil {
		return fmt.Errorf("screen: restoring terminal state: %w", err)
	}
	return flushErr
}

// ReadByte polls the input for up to timeout and reads a single byte.
// A zero timeout never blocks.
func (s *Screen) ReadByte(timeout time.Duration) (byte, bool, error) {
	fds := []unix.PollFd{
		{Fd: int32(s.inFd), Events: unix.POLLIN},
	}
	n, err := unix.Poll(fds, int(timeout/time.Millisecond))
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("screen: polling input: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	var buf [1]byte
	rn, err := unix.Read(s.inFd, buf[:])
	if err != nil {
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("screen: reading input: %w", err)
	}
	if rn == 0 {
		return 0, false, io.EOF
	}
	return buf[0], true, nil
}

// Clear queues the sequence that clears the screen and homes the cursor.
// It is sent with the next Write.
func (s *Screen) Clear() error {
	_, err := s.out.WriteString(clearScreen + cursorHome)
	return err
}

// Write sends text to the terminal immediately.
func (s *Screen) Write(text string) error {
	if _, err := s.out.WriteString(text); err != nil {
		return err
	}
	return s.out.Flush()
}
