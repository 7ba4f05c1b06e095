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
	"sync"
)

// LEDChaser drives a row of LEDs. Until software writes to the "out"
// register the LEDs show a chasing pattern that advances every period steps.
// After the first write the LEDs show the value written.
type LEDChaser struct {
	crit sync.Mutex

	n      int
	period int
	count  int

	chaser uint32
	manual bool
	value  uint32
}

// NewLEDChaser creates a new chaser with n LEDs and adds its registers to
// the CSR window under the name given.
func NewLEDChaser(csr *CSR, name string, n int, period int) (*LEDChaser, error) {
	if n < 1 {
		n = 1
	}
	if n > 32 {
		n = 32
	}
	if period < 1 {
		period = 1
	}

	led := &LEDChaser{
		n:      n,
		period: period,
	}

	bank, err := csr.AddBank(name)
	if err != nil {
		return nil, err
	}

	out, err := bank.AddRegister("out", false)
	if err != nil {
		return nil, err
	}

	out.OnWrite = func(v uint32) {
		led.crit.Lock()
		defer led.crit.Unlock()
		led.manual = true
		led.value = v
	}

	return led, nil
}

func (led *LEDChaser) mask() uint32 {
	return uint32((uint64(1) << led.n) - 1)
}

// Step implements the bus.Stepper interface.
func (led *LEDChaser) Step() {
	led.crit.Lock()
	defer led.crit.Unlock()

	if led.manual {
		return
	}

	led.count++
	if led.count < led.period {
		return
	}
	led.count = 0

	// johnson counter. the complement of the top bit is shifted in at the
	// bottom
	top := (led.chaser >> (led.n - 1)) & 0x01
	led.chaser = ((led.chaser << 1) | (top ^ 0x01)) & led.mask()
}

// LEDs returns the current state of the LEDs. Bit zero is the first LED.
func (led *LEDChaser) LEDs() uint32 {
	led.crit.Lock()
	defer led.crit.Unlock()

	if led.manual {
		return led.value & led.mask()
	}
	return led.chaser
}
