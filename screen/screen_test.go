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
	"errors"
	"io"
	"os"
	"testing"
	"time"
)

func pipe(t *testing.T) (*os.File, *os.File) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe failed: %+v", err)
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return r, w
}

func TestOpenRejectsNonTerminal(t *testing.T) {
	in, _ := pipe(t)
	_, out := pipe(t)
	if s, err := Open(in, out); err == nil {
		s.Close()
		t.Errorf("Open succeeded on a pipe")
	}
}

func TestReadByte(t *testing.T) {
	in, feed := pipe(t)
	_, out := pipe(t)
	s := newScreen(in, out)

	if _, ok, err := s.ReadByte(0); ok || err != nil {
		t.Errorf("Expected no input, got ok=%v err=%+v", ok, err)
	}

	feed.Write([]byte("\x1b[A"))
	for _, want := range []byte("\x1b[A") {
		b, ok, err := s.ReadByte(100 * time.Millisecond)
		if !ok || err != nil || b != want {
			t.Errorf("Expected %q, got %q ok=%v err=%+v", want, b, ok, err)
		}
	}

	start := time.Now()
	if _, ok, _ := s.ReadByte(20 * time.Millisecond); ok {
		t.Errorf("Read a byte that was never written")
	}
	if time.Since(start) < 10*time.Millisecond {
		t.Errorf("ReadByte returned before its timeout")
	}

	feed.Close()
	if _, _, err := s.ReadByte(100 * time.Millisecond); !errors.Is(err, io.EOF) {
		t.Errorf("Expected end of input, got %+v", err)
	}
}

func TestClearAndWrite(t *testing.T) {
	in, _ := pipe(t)
	result, out := pipe(t)
	s := newScreen(in, out)

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %+v", err)
	}
	if err := s.Write("ab|\ncd"); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	out.Close()
	written, err := io.ReadAll(result)
	if err != nil {
		t.Fatalf("ReadAll failed: %+v", err)
	}
	if expected := "\x1b[2J\x1b[Hab|\ncd"; string(written) != expected {
		t.Errorf("Unexpected output: %q", written)
	}
}

func TestCloseWithoutOpen(t *testing.T) {
	in, _ := pipe(t)
	_, out := pipe(t)
	s := newScreen(in, out)
	if err := s.Close(); err != nil {
		t.Errorf("Close failed: %+v", err)
	}
}
