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
package screen

import (
	"time"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	caret "github.com/timburks/caret/types"
)

const tabWidth = 8

// Termbox is a Display drawn with termbox. Key events are translated back
// into the bytes a raw terminal would have sent.
type Termbox struct {
	input     chan byte
	errs      chan error
	quit      chan struct{}
	done      chan struct{}
	poll      func() termbox.Event
	interrupt func()
	closed    bool
	x, y      int
}

func OpenTermbox() (*Termbox, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	t := newTermbox(termbox.PollEvent, termbox.Interrupt)
	go t.pump()
	return t, nil
}

func newTermbox(poll func() termbox.Event, interrupt func()) *Termbox {
	return &Termbox{
		input:     make(chan byte, 64),
		errs:      make(chan error, 1),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
		poll:      poll,
		interrupt: interrupt,
	}
}

// pump forwards termbox events until interrupted. After quit is closed,
// pending bytes are dropped but polling continues, so an interrupt always
// has a receiver.
func (t *Termbox) pump() {
	defer close(t.done)
	for {
		event := t.poll()
		switch event.Type {
		case termbox.EventInterrupt:
			return
		case termbox.EventError:
			t.errs <- event.Err
			return
		case termbox.EventKey:
			t.forward(keyBytes(event))
		}
	}
}

// forward queues bytes for ReadByte, dropping them once quit is closed.
func (t *Termbox) forward(keys []byte) {
	for _, b := range keys {
		select {
		case t.input <- b:
		case <-t.quit:
			return
		}
	}
}

func (t *Termbox) Close() error {
	if t.closed {
		return nil
	}
	t.stop()
	termbox.Close()
	return nil
}

// stop ends the event pump and waits for it to exit.
func (t *Termbox) stop() {
	close(t.quit)
	t.closed = true
	select {
	case <-t.done:
		return
	default:
	}
	// the pump may still fail on its own before taking the interrupt
	go t.interrupt()
	<-t.done
}

func (t *Termbox) ReadByte(timeout time.Duration) (byte, bool, error) {
	if timeout <= 0 {
		select {
		case b := <-t.input:
			return b, true, nil
		case err := <-t.errs:
			return 0, false, err
		default:
			return 0, false, nil
		}
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case b := <-t.input:
		return b, true, nil
	case err := <-t.errs:
		return 0, false, err
	case <-timer.C:
		return 0, false, nil
	}
}

func (t *Termbox) Clear() error {
	t.x, t.y = 0, 0
	return termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

// Write draws text from the current position and flushes the frame.
// Text outside the window is dropped.
func (t *Termbox) Write(text string) error {
	cols, rows := termbox.Size()
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		text = text[size:]
		switch r {
		case '\n':
			t.x, t.y = 0, t.y+1
			continue
		case '\t':
			t.x += tabWidth - t.x%tabWidth
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if t.x+w <= cols && t.y < rows {
			termbox.SetCell(t.x, t.y, r, termbox.ColorDefault, termbox.ColorDefault)
		}
		t.x += w
	}
	return termbox.Flush()
}

// keyBytes returns the input bytes equivalent to a key event.
func keyBytes(event termbox.Event) []byte {
	if event.Type != termbox.EventKey {
		return nil
	}
	if event.Ch != 0 {
		return utf8.AppendRune(nil, event.Ch)
	}
	switch event.Key {
	case termbox.KeyArrowUp:
		return []byte{caret.KeyEsc, '[', caret.ArrowUp}
	case termbox.KeyArrowDown:
		return []byte{caret.KeyEsc, '[', caret.ArrowDown}
	case termbox.KeyArrowRight:
		return []byte{caret.KeyEsc, '[', caret.ArrowRight}
	case termbox.KeyArrowLeft:
		return []byte{caret.KeyEsc, '[', caret.ArrowLeft}
	case termbox.KeyEnter:
		return []byte{'\n'}
	case termbox.KeyCtrlC:
		// termbox turns off signals, so ctrl-c arrives here
		return []byte{caret.KeyCtrlQ}
	}
	if event.Key < 0x80 {
		return []byte{byte(event.Key)}
	}
	return nil
}
