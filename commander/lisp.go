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
	"errors"
	"log"

	"github.com/steelseries/golisp"
	"github.com/timburks/caret/editor"
	"github.com/timburks/caret/operations"
	caret "github.com/timburks/caret/types"
)

// editor used by the primitives while a script runs
var target *editor.Editor

func init() {
	golisp.MakePrimitiveFunction("insert", "1", InsertImpl)
	golisp.MakePrimitiveFunction("backspace", "0|1", BackspaceImpl)
	golisp.MakePrimitiveFunction("up", "0|1", moveImpl(caret.MoveUp))
	golisp.MakePrimitiveFunction("down", "0|1", moveImpl(caret.MoveDown))
	golisp.MakePrimitiveFunction("right", "0|1", moveImpl(caret.MoveRight))
	golisp.MakePrimitiveFunction("left", "0|1", moveImpl(caret.MoveLeft))
	golisp.MakePrimitiveFunction("goto", "1", GotoImpl)
	golisp.MakePrimitiveFunction("cursor", "0", CursorImpl)
	golisp.MakePrimitiveFunction("line", "0", LineImpl)
	golisp.MakePrimitiveFunction("column", "0", ColumnImpl)
	golisp.MakePrimitiveFunction("text", "0", TextImpl)
	golisp.MakePrimitiveFunction("render", "0", RenderImpl)
}

// Eval evaluates a sequence of lisp forms against the buffer of e and
// returns the printed value of the last one.
func Eval(e *editor.Editor, script string) (string, error) {
	target = e
	defer func() { target = nil }()
	value, err := golisp.ParseAndEval("(begin " + script + ")")
	if err != nil {
		log.Printf("ERR %+v", err)
		return "", err
	}
	result := golisp.String(value)
	log.Printf("SEXPR %s", result)
	return result, nil
}

func current() (*editor.Editor, error) {
	if target == nil {
		return nil, errors.New("no buffer is being edited")
	}
	return target, nil
}

// multiplier reads an optional repeat count.
func multiplier(args *golisp.Data) (int, error) {
	if golisp.Length(args) == 0 {
		return 1, nil
	}
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return 0, errors.New("count must be an integer")
	}
	return int(golisp.IntegerValue(val)), nil
}

func cursor(e *editor.Editor) *golisp.Data {
	return golisp.IntegerWithValue(int64(e.GetBuffer().Cursor()))
}

func InsertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := current()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert requires a string argument")
	}
	e.Perform(&operations.Insert{Text: golisp.StringValue(val)}, 1)
	return cursor(e), nil
}

func BackspaceImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := current()
	if err != nil {
		return nil, err
	}
	n, err := multiplier(args)
	if err != nil {
		return nil, err
	}
	e.Perform(&operations.Backspace{}, n)
	return cursor(e), nil
}

func moveImpl(direction int) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		e, err := current()
		if err != nil {
			return nil, err
		}
		n, err := multiplier(args)
		if err != nil {
			return nil, err
		}
		e.Perform(&operations.Move{Direction: direction}, n)
		return cursor(e), nil
	}
}

func GotoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := current()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, errors.New("goto requires an integer offset")
	}
	e.GetBuffer().SetCursor(int(golisp.IntegerValue(val)))
	return cursor(e), nil
}

func CursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := current()
	if err != nil {
		return nil, err
	}
	return cursor(e), nil
}

func LineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(e.GetBuffer().Line())), nil
}

func ColumnImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(e.GetBuffer().Column())), nil
}

func TextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(e.GetBuffer().String()), nil
}

func RenderImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	e, err := current()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(e.GetBuffer().Render()), nil
}
