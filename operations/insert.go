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
package operations

import (
	caret "github.com/timburks/caret/types"
)

// Insert

type Insert struct {
	Op
	Text string
}

func (op *Insert) Perform(e caret.Editable, multiplier int) {
	n := op.count(multiplier)
	for i := 0; i < n; i++ {
		for j := 0; j < len(op.Text); j++ {
			e.InsertChar(op.Text[j])
		}
	}
}

func (op *Insert) Length() int {
	return len(op.Text)
}

func (op *Insert) AddCharacter(c byte) {
	op.Text += string([]byte{c})
}
