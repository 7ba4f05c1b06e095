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
	"fmt"
	"strings"
	"sync"

	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/soc/bus"
)

// CSRPageSize is the number of bytes in the address space given to each bank
// of registers.
const CSRPageSize = 0x800

// CSRRegisterSize is the number of bytes occupied by each register. Registers
// are 32 bits wide.
const CSRRegisterSize = 4

// Register is a single control/status register. Registers are created with
// Bank.AddRegister().
type Register struct {
	Name     string
	ReadOnly bool

	// optional hooks. OnRead replaces the stored value when the register is
	// read from the bus. OnWrite is called after a write from the bus has
	// been stored
	OnRead  func() uint32
	OnWrite func(uint32)

	value uint32
}

// Value returns the stored value of the register.
func (r *Register) Value() uint32 {
	return r.value
}

// Set the stored value of the register. This is how the hardware side of a
// peripheral updates a status register.
func (r *Register) Set(v uint32) {
	r.value = v
}

// Bank is a page of registers belonging to one peripheral.
type Bank struct {
	Name string
	Page int

	csr  *CSR
	regs []*Register
}

// AddRegister adds a register to the end of the bank.
func (b *Bank) AddRegister(name string, readOnly bool) (*Register, error) {
	b.csr.crit.Lock()
	defer b.csr.crit.Unlock()

	for _, r := range b.regs {
		if r.Name == name {
			return nil, curated.Errorf(CSRPageError, b.csr.desc.ID, fmt.Sprintf("duplicate register %s_%s", b.Name, name))
		}
	}
	if (len(b.regs)+1)*CSRRegisterSize > CSRPageSize {
		return nil, curated.Errorf(CSRPageError, b.csr.desc.ID, fmt.Sprintf("bank %s is full", b.Name))
	}

	r := &Register{Name: name, ReadOnly: readOnly}
	b.regs = append(b.regs, r)
	return r, nil
}

// Offset returns the offset of the bank within the CSR window.
func (b *Bank) Offset() uint64 {
	return uint64(b.Page) * CSRPageSize
}

// CSRLocation is the location of a register in the CSR window.
type CSRLocation struct {
	Bank     string
	Register string
	Offset   uint64
	ReadOnly bool
}

// CSR is the control/status register window of the SoC.
type CSR struct {
	crit sync.Mutex

	desc  bus.Description
	size  uint64
	banks []*Bank
	pipe  pipeline
}

// NewCSR is the preferred method of initialisation for the CSR type.
func NewCSR(id string, size uint64, dataWidth int, timing Timing) *CSR {
	return &CSR{
		desc: bus.Description{
			ID:           id,
			Protocol:     bus.Wishbone,
			AddressWidth: 32,
			DataWidth:    dataWidth,
		},
		size: size,
		pipe: newPipeline(id, timing),
	}
}

// Describe implements the bus.Peripheral interface.
func (csr *CSR) Describe() bus.Description {
	return csr.desc
}

// AddBank allocates the next free page to a new bank of registers.
func (csr *CSR) AddBank(name string) (*Bank, error) {
	csr.crit.Lock()
	defer csr.crit.Unlock()

	for _, b := range csr.banks {
		if b.Name == name {
			return nil, curated.Errorf(CSRPageError, csr.desc.ID, fmt.Sprintf("duplicate bank %s", name))
		}
	}

	page := len(csr.banks)
	if uint64(page+1)*CSRPageSize > csr.size {
		return nil, curated.Errorf(CSRPageError, csr.desc.ID, fmt.Sprintf("no free page for %s", name))
	}

	b := &Bank{Name: name, Page: page, csr: csr}
	csr.banks = append(csr.banks, b)
	return b, nil
}

// Map returns the location of every register in page order.
func (csr *CSR) Map() []CSRLocation {
	csr.crit.Lock()
	defer csr.crit.Unlock()

	var m []CSRLocation
	for _, b := range csr.banks {
		for i, r := range b.regs {
			m = append(m, CSRLocation{
				Bank:     b.Name,
				Register: r.Name,
				Offset:   b.Offset() + uint64(i*CSRRegisterSize),
				ReadOnly: r.ReadOnly,
			})
		}
	}
	return m
}

func (csr *CSR) register(address uint64) *Register {
	page := int(address / CSRPageSize)
	if page >= len(csr.banks) {
		return nil
	}
	idx := int(address%CSRPageSize) / CSRRegisterSize
	if idx >= len(csr.banks[page].regs) {
		return nil
	}
	return csr.banks[page].regs[idx]
}

// Issue implements the bus.Target interface. Reads of unassigned locations
// return zero and writes to unassigned or read-only locations are ignored.
func (csr *CSR) Issue(tr bus.Transaction) error {
	csr.crit.Lock()
	defer csr.crit.Unlock()

	if err := csr.pipe.busy(); err != nil {
		return err
	}

	if c, bad := checkAccess(csr.desc.ID, tr, csr.size, csr.desc.DataWidth); bad {
		csr.pipe.push(c)
		return nil
	}
	if tr.Width > CSRRegisterSize*8 {
		csr.pipe.push(bus.Fail(tr, bus.SLVERR, curated.Errorf(WidthError, csr.desc.ID, tr.Width, CSRRegisterSize*8)))
		return nil
	}

	// byte lane within the register
	lane := uint(tr.Address%CSRRegisterSize) * 8
	mask := uint32((uint64(1) << tr.Width) - 1)

	r := csr.register(tr.Address)

	if tr.Write {
		if r != nil && !r.ReadOnly {
			var v uint32
			for i, b := range tr.Data {
				v |= uint32(b) << (i * 8)
			}
			r.value = (r.value &^ (mask << lane)) | ((v & mask) << lane)
			if r.OnWrite != nil {
				r.OnWrite(r.value)
			}
		}
		csr.pipe.push(bus.Complete(tr, nil))
		return nil
	}

	var v uint32
	if r != nil {
		v = r.value
		if r.OnRead != nil {
			v = r.OnRead()
		}
	}
	v = (v >> lane) & mask

	d := make([]byte, tr.Bytes())
	for i := range d {
		d[i] = byte(v >> (i * 8))
	}
	csr.pipe.push(bus.Complete(tr, d))

	return nil
}

// Poll implements the bus.Target interface.
func (csr *CSR) Poll(issuer string) (bus.Completion, bool) {
	csr.crit.Lock()
	defer csr.crit.Unlock()
	return csr.pipe.poll(issuer)
}

// Step implements the bus.Stepper interface.
func (csr *CSR) Step() {
	csr.crit.Lock()
	defer csr.crit.Unlock()
	csr.pipe.step()
}

func (csr *CSR) String() string {
	s := strings.Builder{}
	for _, l := range csr.Map() {
		s.WriteString(fmt.Sprintf("%#06x %s_%s", l.Offset, l.Bank, l.Register))
		if l.ReadOnly {
			s.WriteString(" (ro)")
		}
		s.WriteString("\n")
	}
	return s.String()
}
