// This file is part of socfabric.
//
// socfabric is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// socfabric is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with socfabric.  If not, see <https://www.gnu.org/licenses/>.

package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identifier for a goroutine. It returns a result
// that is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that created it.
type Owner struct {
	id uint64
}

// NewOwner returns an Owner for the calling goroutine. The goroutine is only
// recorded when assertions are enabled.
func NewOwner() Owner {
	if !enabled {
		return Owner{}
	}
	return Owner{id: GetGoRoutineID()}
}

// Check panics if assertions are enabled and the calling goroutine is not the
// owner. The what argument describes the operation being checked.
func (o Owner) Check(what string) {
	if !enabled {
		return
	}
	if id := GetGoRoutineID(); id != o.id {
		panic(fmt.Sprintf("assert: %s: called from goroutine %d but owned by goroutine %d", what, id, o.id))
	}
}

// Enabled returns true if the package was compiled with the "assertions"
// build tag.
func Enabled() bool {
	return enabled
}
