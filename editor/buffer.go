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
	"bytes"

	caret "github.com/timburks/caret/types"
)

// A Buffer holds the text of a document and a cursor offset into it.
// The cursor is always in [0, Len()]; motions and edits that would move
// it out of range do nothing.
type Buffer struct {
	text     []byte
	cursor   int
	vertical int
}

func NewBuffer(text []byte) *Buffer {
	b := &Buffer{}
	b.text = append(make([]byte, 0, len(text)), text...)
	b.vertical = caret.VerticalClamp
	return b
}

// Bytes returns a copy of the text.
func (b *Buffer) Bytes() []byte {
	return bytes.Clone(b.text)
}

func (b *Buffer) String() string {
	return string(b.text)
}

func (b *Buffer) Len() int {
	return len(b.text)
}

func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor to offset, clamped to the document.
func (b *Buffer) SetCursor(offset int) {
	b.cursor = max(0, min(offset, len(b.text)))
}

func (b *Buffer) VerticalMode() int {
	return b.vertical
}

func (b *Buffer) SetVerticalMode(mode int) {
	b.vertical = mode
}

// Insert puts c at the cursor and moves right over it.
func (b *Buffer) Insert(c byte) {
	b.text = append(b.text, 0)
	copy(b.text[b.cursor+1:], b.text[b.cursor:])
	b.text[b.cursor] = c
	b.MoveRight()
}

// Delete removes the character before the cursor.
func (b *Buffer) Delete() bool {
	if b.cursor == 0 {
		return false
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	return b.MoveLeft()
}

func (b *Buffer) MoveRight() bool {
	if b.cursor == len(b.text) {
		return false
	}
	b.cursor++
	return true
}

func (b *Buffer) MoveLeft() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	return true
}

func (b *Buffer) MoveUp() bool {
	y := b.Line()
	if y == 0 {
		return false
	}
	previous := b.LineLength(y - 1)
	switch b.vertical {
	case caret.VerticalOffset:
		b.cursor -= previous + 1
	default:
		start := b.lineStart() - previous - 1
		b.cursor = start + min(b.Column(), previous)
	}
	return true
}

func (b *Buffer) MoveDown() bool {
	y := b.Line()
	if y >= b.LineCount()-1 {
		return false
	}
	switch b.vertical {
	case caret.VerticalOffset:
		b.cursor = min(b.cursor+b.LineLength(y)+1, len(b.text))
	default:
		start := b.lineStart() + b.LineLength(y) + 1
		b.cursor = start + min(b.Column(), b.LineLength(y+1))
	}
	return true
}

// Line returns the zero-based line of the cursor.
func (b *Buffer) Line() int {
	return bytes.Count(b.text[:b.cursor], []byte{'\n'})
}

// Column returns the cursor's offset from the start of its line.
func (b *Buffer) Column() int {
	return b.cursor - b.lineStart()
}

// offset of the first character of the cursor's line
func (b *Buffer) lineStart() int {
	return bytes.LastIndexByte(b.text[:b.cursor], '\n') + 1
}

func (b *Buffer) LineCount() int {
	return bytes.Count(b.text, []byte{'\n'}) + 1
}

// LineLength returns the length of line i, excluding its newline.
func (b *Buffer) LineLength(i int) int {
	if i < 0 {
		return 0
	}
	rest := b.text
	for ; i > 0; i-- {
		n := bytes.IndexByte(rest, '\n')
		if n < 0 {
			return 0
		}
		rest = rest[n+1:]
	}
	if n := bytes.IndexByte(rest, '\n'); n >= 0 {
		return n
	}
	return len(rest)
}

// Render returns the text with a cursor marker at the cursor offset.
func (b *Buffer) Render() string {
	var s bytes.Buffer
	s.Grow(len(b.text) + 1)
	s.Write(b.text[:b.cursor])
	s.WriteByte(caret.CursorMarker)
	s.Write(b.text[b.cursor:])
	return s.String()
}
