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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/socfabric/assert"
	"github.com/jetsetilly/socfabric/test"
)

func TestGoRoutineID(t *testing.T) {
	a := assert.GetGoRoutineID()
	test.ExpectEquality(t, assert.GetGoRoutineID(), a)

	done := make(chan uint64)
	go func() {
		done <- assert.GetGoRoutineID()
	}()
	test.ExpectInequality(t, <-done, a)
}

func TestOwner(t *testing.T) {
	o := assert.NewOwner()

	// same goroutine never panics
	o.Check("same goroutine")

	panicked := make(chan bool)
	go func() {
		defer func() {
			panicked <- recover() != nil
		}()
		o.Check("other goroutine")
	}()
	test.ExpectEquality(t, <-panicked, assert.Enabled())
}
