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

// Backspace deletes characters before the cursor.
type Backspace struct {
	Op
	Deleted int // characters actually removed
}

func (op *Backspace) Perform(e caret.Editable, multiplier int) {
	n := op.count(multiplier)
	op.Deleted = 0
	for i := 0; i < n && e.BackspaceChar(); i++ {
		op.Deleted++
	}
}
