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

// Move

type Move struct {
	Op
	Direction int
	Moved     int // steps actually taken
}

func (op *Move) Perform(e caret.Editable, multiplier int) {
	n := op.count(multiplier)
	op.Moved = 0
	for i := 0; i < n && e.MoveCursor(op.Direction); i++ {
		op.Moved++
	}
}
