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
package commander

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/timburks/caret/editor"
	"github.com/timburks/caret/operations"
	caret "github.com/timburks/caret/types"
)

// The Commander converts user input into operations for the Editor.
type Commander struct {
	editor  *editor.Editor
	running bool
	status  bool   // show the status line above the text
	message string // status message
}

func NewCommander(e *editor.Editor) *Commander {
	return &Commander{
		editor:  e,
		running: true,
		status:  true,
		message: "ctrl-q quits",
	}
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) Quit() {
	c.running = false
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) SetMessage(message string) {
	c.message = message
}

func (c *Commander) SetStatus(visible bool) {
	c.status = visible
}

// Run processes input and redraws d once per frame until the user quits,
// ctx is cancelled, or the input is closed.
func (c *Commander) Run(ctx context.Context, d caret.Display, frame time.Duration) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	for c.running {
		if err := c.ProcessInput(d); err != nil {
			if errors.Is(err, io.EOF) {
				log.Printf("input closed")
				c.Quit()
				break
			}
			return err
		}
		if !c.running {
			log.Printf("quit requested")
			break
		}
		if err := c.Refresh(d); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			log.Printf("stopping: %v", context.Cause(ctx))
			c.Quit()
		case <-ticker.C:
		}
	}
	return nil
}

// ProcessInput handles at most one key from d without waiting.
func (c *Commander) ProcessInput(d caret.Display) error {
	b, ok, err := d.ReadByte(0)
	if err != nil || !ok {
		return err
	}
	return c.ProcessKey(b, d)
}

// ProcessKey handles a key byte. Escape sequences are completed from d.
func (c *Commander) ProcessKey(b byte, d caret.Display) error {
	e := c.editor
	switch b {
	case caret.KeyNone:
	case caret.KeyEsc:
		return c.ProcessEscape(d)
	case caret.KeyBackspace, caret.KeyCtrlH:
		e.Perform(&operations.Backspace{}, 1)
	case caret.KeyCtrlQ:
		c.Quit()
	default:
		e.Perform(&operations.Insert{Text: string([]byte{b})}, 1)
	}
	return nil
}

// ProcessEscape reads the rest of an ESC '[' sequence and performs the
// arrow key it names. Incomplete or unknown sequences are dropped.
func (c *Commander) ProcessEscape(d caret.Display) error {
	var final byte
	for i := 0; i < 2; i++ {
		b, ok, err := d.ReadByte(caret.EscapeTimeout)
		if err != nil || !ok {
			return err
		}
		final = b
	}
	direction := -1
	switch final {
	case caret.ArrowUp:
		direction = caret.MoveUp
	case caret.ArrowDown:
		direction = caret.MoveDown
	case caret.ArrowRight:
		direction = caret.MoveRight
	case caret.ArrowLeft:
		direction = caret.MoveLeft
	}
	if direction >= 0 {
		c.editor.Perform(&operations.Move{Direction: direction}, 1)
	}
	return nil
}

// Frame returns the text drawn for the current state.
func (c *Commander) Frame() string {
	b := c.editor.GetBuffer()
	var s strings.Builder
	if c.status {
		name := c.editor.GetFileName()
		if name == "" {
			name = "[no file]"
		}
		fmt.Fprintf(&s, "%s  x: %d, y: %d  %s\n", name, b.Column(), b.Line(), c.message)
	}
	s.WriteString(b.Render())
	return s.String()
}

func (c *Commander) Refresh(d caret.Display) error {
	if err := d.Clear(); err != nil {
		return err
	}
	return d.Write(c.Frame())
}
