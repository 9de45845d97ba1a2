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
package editor

import (
	"fmt"
	"os"

	caret "github.com/timburks/caret/types"
)

// The Editor manages the editing of text in a Buffer.
type Editor struct {
	Buffer   *Buffer         // buffer being edited
	fileName string          // file the buffer was read from
	previous caret.Operation // last operation performed
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer(nil)
	return e
}

func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	mode := e.Buffer.VerticalMode()
	e.Buffer = NewBuffer(b)
	e.Buffer.SetVerticalMode(mode)
	e.fileName = path
	return nil
}

func (e *Editor) GetBuffer() *Buffer {
	return e.Buffer
}

func (e *Editor) GetFileName() string {
	return e.fileName
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

func (e *Editor) Perform(op caret.Operation, multiplier int) {
	op.Perform(e, multiplier)
	e.previous = op
}

// Previous returns the last operation performed, or nil.
func (e *Editor) Previous() caret.Operation {
	return e.previous
}

func (e *Editor) InsertChar(c byte) {
	e.Buffer.Insert(c)
}

func (e *Editor) BackspaceChar() bool {
	return e.Buffer.Delete()
}

func (e *Editor) MoveCursor(direction int) bool {
	switch direction {
	case caret.MoveUp:
		return e.Buffer.MoveUp()
	case caret.MoveDown:
		return e.Buffer.MoveDown()
	case caret.MoveRight:
		return e.Buffer.MoveRight()
	case caret.MoveLeft:
		return e.Buffer.MoveLeft()
	}
	return false
}
