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

package bus

import (
	"fmt"
)

// Response to a transaction.
type Response int

// List of valid responses. The names follow AXI usage.
const (
	OKAY Response = iota
	SLVERR
	DECERR
)

func (r Response) String() string {
	switch r {
	case OKAY:
		return "OKAY"
	case SLVERR:
		return "SLVERR"
	case DECERR:
		return "DECERR"
	}
	return "undefined"
}

// Transaction is a single beat read or write.
type Transaction struct {
	// the master that issued the transaction
	Issuer string

	// tag assigned by the issuer. completions carry the same tag
	Tag uint32

	Address uint64
	Write   bool

	// width of the transaction in bits
	Width int

	// data to be written. the length must be Width/8 for a write
	Data []byte
}

func (tr Transaction) String() string {
	if tr.Write {
		return fmt.Sprintf("%s#%d W %#x [% x]", tr.Issuer, tr.Tag, tr.Address, tr.Data)
	}
	return fmt.Sprintf("%s#%d R %#x (%d bits)", tr.Issuer, tr.Tag, tr.Address, tr.Width)
}

// Bytes returns the number of bytes covered by the transaction.
func (tr Transaction) Bytes() int {
	return tr.Width / 8
}

// Completion of a transaction.
type Completion struct {
	Issuer  string
	Tag     uint32
	Address uint64
	Write   bool

	// data read. nil for a write or for an error response
	Data []byte

	Response Response

	// set when Response is not OKAY
	Err error
}

func (c Completion) String() string {
	s := fmt.Sprintf("%s#%d %#x %s", c.Issuer, c.Tag, c.Address, c.Response)
	if c.Data != nil {
		s = fmt.Sprintf("%s [% x]", s, c.Data)
	}
	if c.Err != nil {
		s = fmt.Sprintf("%s: %v", s, c.Err)
	}
	return s
}

// Complete returns a successful completion for the transaction.
func Complete(tr Transaction, data []byte) Completion {
	return Completion{
		Issuer:   tr.Issuer,
		Tag:      tr.Tag,
		Address:  tr.Address,
		Write:    tr.Write,
		Data:     data,
		Response: OKAY,
	}
}

// Fail returns an error completion for the transaction.
func Fail(tr Transaction, resp Response, err error) Completion {
	return Completion{
		Issuer:   tr.Issuer,
		Tag:      tr.Tag,
		Address:  tr.Address,
		Write:    tr.Write,
		Response: resp,
		Err:      err,
	}
}
