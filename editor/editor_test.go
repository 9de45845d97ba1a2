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
	"errors"
	"os"
	"testing"

	"github.com/timburks/caret/operations"
	caret "github.com/timburks/caret/types"
)

const source = "../test/gettysburg-address.txt"

func setup(t *testing.T) *Editor {
	editor := NewEditor()
	err := editor.ReadFile(source)
	if err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	return editor
}

// read a file without changing it
func TestReadInvariance(t *testing.T) {
	editor := setup(t)
	original, err := os.ReadFile(source)
	if err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	if string(editor.Bytes()) != string(original) {
		t.Errorf("Buffer differs from %s", source)
	}
	if editor.GetFileName() != source {
		t.Errorf("Unexpected file name: '%s'", editor.GetFileName())
	}
	if editor.GetBuffer().Cursor() != 0 {
		t.Errorf("Cursor should start at 0, not %d", editor.GetBuffer().Cursor())
	}
	if rowCount := editor.GetBuffer().LineCount(); rowCount != 9 {
		t.Errorf("Invalid line count: %d", rowCount)
	}
}

func TestReadMissingFile(t *testing.T) {
	editor := NewEditor()
	err := editor.ReadFile("../test/no-such-file.txt")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %+v", err)
	}
}

func TestReadKeepsVerticalMode(t *testing.T) {
	editor := NewEditor()
	editor.GetBuffer().SetVerticalMode(caret.VerticalOffset)
	if err := editor.ReadFile(source); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	if editor.GetBuffer().VerticalMode() != caret.VerticalOffset {
		t.Errorf("Vertical mode was reset by ReadFile")
	}
}

func TestMoveThroughFile(t *testing.T) {
	editor := setup(t)
	editor.Perform(&operations.Move{Direction: caret.MoveDown}, 2)
	editor.Perform(&operations.Move{Direction: caret.MoveRight}, 5)
	b := editor.GetBuffer()
	if b.Line() != 2 || b.Column() != 5 || b.Cursor() != 30 {
		t.Errorf("Unexpected position: line %d column %d offset %d", b.Line(), b.Column(), b.Cursor())
	}
	// the blank line above clamps the column
	editor.Perform(&operations.Move{Direction: caret.MoveUp}, 1)
	if b.Line() != 1 || b.Column() != 0 {
		t.Errorf("Unexpected position: line %d column %d", b.Line(), b.Column())
	}
}

func TestInsertAndBackspace(t *testing.T) {
	editor := setup(t)
	editor.Perform(&operations.Move{Direction: caret.MoveDown}, 2)
	editor.Perform(&operations.Insert{Text: "hello, world! "}, 1)
	b := editor.GetBuffer()
	expected := "hello, world! Four score"
	if remainder := b.String()[25 : 25+len(expected)]; remainder != expected {
		t.Errorf("Unexpected text after insertion: '%s'", remainder)
	}
	backspace := &operations.Backspace{}
	editor.Perform(backspace, 14)
	if backspace.Deleted != 14 {
		t.Errorf("Unexpected deletion count: %d", backspace.Deleted)
	}
	if editor.Previous() != backspace {
		t.Errorf("Previous operation was not recorded")
	}
	final, _ := os.ReadFile(source)
	if b.String() != string(final) {
		t.Errorf("Buffer differs from %s after undoing the insertion by hand", source)
	}
}

func TestMoveCursorUnknownDirection(t *testing.T) {
	editor := setup(t)
	if editor.MoveCursor(42) {
		t.Errorf("Unknown direction reported movement")
	}
}
