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

package peripheral

import (
	"encoding/hex"
	"sync"

	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/soc/bus"
)

// Memory is a RAM or ROM slave.
type Memory struct {
	crit sync.Mutex

	desc     bus.Description
	readOnly bool
	data     []byte
	pipe     pipeline
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(id string, size uint64, dataWidth int, readOnly bool, timing Timing) *Memory {
	return &Memory{
		desc: bus.Description{
			ID:           id,
			Protocol:     bus.Wishbone,
			AddressWidth: 32,
			DataWidth:    dataWidth,
		},
		readOnly: readOnly,
		data:     make([]byte, size),
		pipe:     newPipeline(id, timing),
	}
}

// Describe implements the bus.Peripheral interface.
func (mem *Memory) Describe() bus.Description {
	return mem.desc
}

// ReadOnly returns true if writes to the memory are refused.
func (mem *Memory) ReadOnly() bool {
	return mem.readOnly
}

// Size of the memory in bytes.
func (mem *Memory) Size() uint64 {
	return uint64(len(mem.data))
}

// Load copies data into the memory starting at the offset. Load ignores the
// read-only flag and is how a ROM is given its contents.
func (mem *Memory) Load(offset uint64, data []byte) error {
	mem.crit.Lock()
	defer mem.crit.Unlock()

	if offset > uint64(len(mem.data)) || uint64(len(mem.data))-offset < uint64(len(data)) {
		return curated.Errorf(OutOfRangeError, mem.desc.ID, offset+uint64(len(data)))
	}
	copy(mem.data[offset:], data)
	return nil
}

// Peek returns the byte at the offset without going through the bus.
func (mem *Memory) Peek(offset uint64) (uint8, error) {
	mem.crit.Lock()
	defer mem.crit.Unlock()

	if offset >= uint64(len(mem.data)) {
		return 0, curated.Errorf(OutOfRangeError, mem.desc.ID, offset)
	}
	return mem.data[offset], nil
}

// Poke sets the byte at the offset without going through the bus.
func (mem *Memory) Poke(offset uint64, value uint8) error {
	mem.crit.Lock()
	defer mem.crit.Unlock()

	if offset >= uint64(len(mem.data)) {
		return curated.Errorf(OutOfRangeError, mem.desc.ID, offset)
	}
	mem.data[offset] = value
	return nil
}

// Issue implements the bus.Target interface.
func (mem *Memory) Issue(tr bus.Transaction) error {
	mem.crit.Lock()
	defer mem.crit.Unlock()

	if err := mem.pipe.busy(); err != nil {
		return err
	}

	if c, bad := checkAccess(mem.desc.ID, tr, uint64(len(mem.data)), mem.desc.DataWidth); bad {
		mem.pipe.push(c)
		return nil
	}

	if tr.Write {
		if mem.readOnly {
			mem.pipe.push(bus.Fail(tr, bus.SLVERR, curated.Errorf(ReadOnlyError, mem.desc.ID, tr.Address)))
			return nil
		}
		copy(mem.data[tr.Address:], tr.Data)
		mem.pipe.push(bus.Complete(tr, nil))
		return nil
	}

	d := make([]byte, tr.Bytes())
	copy(d, mem.data[tr.Address:])
	mem.pipe.push(bus.Complete(tr, d))

	return nil
}

// Poll implements the bus.Target interface.
func (mem *Memory) Poll(issuer string) (bus.Completion, bool) {
	mem.crit.Lock()
	defer mem.crit.Unlock()
	return mem.pipe.poll(issuer)
}

// Step implements the bus.Stepper interface.
func (mem *Memory) Step() {
	mem.crit.Lock()
	defer mem.crit.Unlock()
	mem.pipe.step()
}

// Outstanding returns the number of transactions accepted but not yet polled.
func (mem *Memory) Outstanding() int {
	mem.crit.Lock()
	defer mem.crit.Unlock()
	return mem.pipe.outstanding()
}

// Reset clears the contents of a writable memory and discards any
// transactions in progress. The contents of a read-only memory are kept.
func (mem *Memory) Reset() {
	mem.crit.Lock()
	defer mem.crit.Unlock()

	if !mem.readOnly {
		for i := range mem.data {
			mem.data[i] = 0
		}
	}
	mem.pipe.reset()
}

func (mem *Memory) String() string {
	mem.crit.Lock()
	defer mem.crit.Unlock()
	return hex.Dump(mem.data)
}
