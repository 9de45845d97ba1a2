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
package types

import "time"

// Frame timing
const (
	FrameRate     = 30
	FrameDuration = time.Second / FrameRate
	EscapeTimeout = 50 * time.Millisecond
)

// Input bytes
const (
	KeyNone      = 0x00
	KeyCtrlH     = 0x08
	KeyCtrlQ     = 0x11
	KeyEsc       = 0x1b
	KeyBackspace = 0x7f
)

// Final bytes of the ESC '[' arrow key sequences
const (
	ArrowUp    = 'A'
	ArrowDown  = 'B'
	ArrowRight = 'C'
	ArrowLeft  = 'D'
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Vertical motion modes
const (
	// VerticalClamp keeps the column but never moves past the end of the target line.
	VerticalClamp = 0
	// VerticalOffset steps by raw line lengths and does not clamp the column.
	VerticalOffset = 1
)

// CursorMarker is inserted at the cursor when a buffer is rendered.
const CursorMarker = '|'

// A Display shows frames and delivers input one byte at a time.
type Display interface {
	// ReadByte waits up to timeout for one byte of input.
	// ok is false when nothing arrived in time.
	ReadByte(timeout time.Duration) (b byte, ok bool, err error)
	Clear() error
	Write(text string) error
	Close() error
}

// Editable is the set of editing services used by operations.
type Editable interface {
	InsertChar(c byte)
	BackspaceChar() bool
	MoveCursor(direction int) bool
}

type Operation interface {
	Perform(e Editable, multiplier int)
}
