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

package linker

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/socfabric/curated"
	"github.com/jetsetilly/socfabric/logger"
	"github.com/jetsetilly/socfabric/soc/addrspace"
	"github.com/jetsetilly/socfabric/soc/composer"
	"github.com/jetsetilly/socfabric/soc/peripheral"
	"github.com/jetsetilly/socfabric/version"
)

// Filenames used by Export().
const (
	RegionsFile = "regions.ld"
	MemFile     = "mem.h"
	CSRFile     = "csr.h"
)

// Exported returns those regions that are marked for the linker, in base
// address order.
func Exported(regions []addrspace.Region) []addrspace.Region {
	var exp []addrspace.Region
	for _, r := range regions {
		if r.Linker {
			exp = append(exp, r)
		}
	}
	return exp
}

// Symbol converts a name into a form suitable for use as a C preprocessor
// symbol.
func Symbol(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		}
		return '_'
	}, name)
}

func banner(w io.Writer, open string, line string, close string) {
	fmt.Fprintln(w, open)
	fmt.Fprintf(w, "%s generated by %s. do not edit\n", line, version.ApplicationName)
	if close != "" {
		fmt.Fprintln(w, close)
	}
	fmt.Fprintln(w)
}

// WriteRegions writes the MEMORY block of a linker script for the exported
// regions.
func WriteRegions(w io.Writer, regions []addrspace.Region) error {
	exp := Exported(regions)
	if len(exp) == 0 {
		return curated.Errorf(NoRegionsError, RegionsFile)
	}

	b := bufio.NewWriter(w)
	banner(b, "/*", " *", " */")
	b.WriteString("MEMORY {\n")
	for _, r := range exp {
		fmt.Fprintf(b, "\t%s : ORIGIN = %#010x, LENGTH = %#010x\n", r.Name, r.Base, r.Size)
	}
	b.WriteString("}\n")

	return b.Flush()
}

// WriteMem writes a C header with base and size defines for the exported
// regions. Each pair is guarded so that it can be overridden at build time.
func WriteMem(w io.Writer, regions []addrspace.Region) error {
	exp := Exported(regions)
	if len(exp) == 0 {
		return curated.Errorf(NoRegionsError, MemFile)
	}

	b := bufio.NewWriter(w)
	banner(b, "//", "//", "")
	b.WriteString("#ifndef __GENERATED_MEM_H\n#define __GENERATED_MEM_H\n\n")
	for _, r := range exp {
		s := Symbol(r.Name)
		fmt.Fprintf(b, "#ifndef %s_BASE\n", s)
		fmt.Fprintf(b, "#define %s_BASE %#010xL\n", s, r.Base)
		fmt.Fprintf(b, "#define %s_SIZE %#010x\n", s, r.Size)
		b.WriteString("#endif\n\n")
	}
	b.WriteString("#endif\n")

	return b.Flush()
}

// WriteCSR writes a C header with the address of every register in a CSR
// window at the base address.
func WriteCSR(w io.Writer, base uint64, locations []peripheral.CSRLocation) error {
	b := bufio.NewWriter(w)
	banner(b, "//", "//", "")
	b.WriteString("#ifndef __GENERATED_CSR_H\n#define __GENERATED_CSR_H\n\n")
	fmt.Fprintf(b, "#define CSR_BASE %#010xL\n", base)

	bank := ""
	for _, l := range locations {
		bs := Symbol(l.Bank)
		if l.Bank != bank {
			bank = l.Bank
			fmt.Fprintf(b, "\n/* %s */\n", l.Bank)
			fmt.Fprintf(b, "#define CSR_%s_BASE (CSR_BASE + %#xL)\n", bs, l.Offset&^(peripheral.CSRPageSize-1))
		}
		rs := Symbol(l.Register)
		fmt.Fprintf(b, "#define CSR_%s_%s_ADDR (CSR_BASE + %#xL)\n", bs, rs, l.Offset)
		fmt.Fprintf(b, "#define CSR_%s_%s_SIZE 1\n", bs, rs)
		if l.ReadOnly {
			fmt.Fprintf(b, "#define CSR_%s_%s_RO 1\n", bs, rs)
		}
	}
	b.WriteString("\n#endif\n")

	return b.Flush()
}

// Export writes the linker files for the layout to the directory. The paths
// of the files written are returned.
func Export(dir string, lay *composer.Layout, perm logger.Permission) ([]string, error) {
	regions := lay.Space().Regions()

	var written []string

	write := func(name string, f func(io.Writer) error) error {
		pth := filepath.Join(dir, name)
		o, err := os.Create(pth)
		if err != nil {
			return curated.Errorf(ExportError, name, err)
		}
		defer o.Close()

		if err := f(o); err != nil {
			return curated.Errorf(ExportError, name, err)
		}
		written = append(written, pth)
		logger.Logf(perm, "linker", "wrote %s", pth)
		return nil
	}

	err := write(RegionsFile, func(w io.Writer) error {
		return WriteRegions(w, regions)
	})
	if err != nil {
		return written, err
	}

	err = write(MemFile, func(w io.Writer) error {
		return WriteMem(w, regions)
	})
	if err != nil {
		return written, err
	}

	for _, s := range lay.SlaveList() {
		if csr, ok := s.Peripheral.(*peripheral.CSR); ok {
			err = write(CSRFile, func(w io.Writer) error {
				return WriteCSR(w, s.Region.Base, csr.Map())
			})
			if err != nil {
				return written, err
			}

			// only one CSR window is exported
			break // for loop
		}
	}

	return written, nil
}
