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

package prefs

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/socfabric/curated"
)

// WarningBoilerPlate is written as the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key and value on each line of a prefs file.
const KeySep = " :: "

// Disk represents preference values that are stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(NoPathError)
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the path of the file the Disk is associated with.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	if key == "" || strings.ContainsAny(key, " \t\n:;") {
		return curated.Errorf(IllegalKeyError, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKeyError, key)
	}
	dsk.entries[key] = p
	return nil
}

// Reset all entries to their default value.
func (dsk *Disk) Reset() error {
	for k, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf(InvalidValueError, k, err)
		}
	}
	return nil
}

// read the file and return the key/value pairs found in it. a file that does
// not exist results in an empty map and an error that satisfies fs.ErrNotExist.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		return data, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		s := strings.TrimSpace(scanner.Text())
		if s == "" || s == WarningBoilerPlate || strings.HasPrefix(s, "#") {
			continue
		}

		kv := strings.SplitN(s, strings.TrimSpace(KeySep), 2)
		if len(kv) != 2 {
			return data, curated.Errorf(MalformedError, dsk.path, line)
		}
		data[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	return data, scanner.Err()
}

// Save current preference values to disk. Entries in the file that are not
// part of this Disk are preserved.
func (dsk *Disk) Save() error {
	data, err := dsk.read()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(KeySep)
		s.WriteString(data[k])
		s.WriteString("\n")
	}

	err = os.MkdirAll(filepath.Dir(dsk.path), 0o755)
	if err != nil {
		return err
	}

	return os.WriteFile(dsk.path, []byte(s.String()), 0o644)
}

// Load preference values from disk. If the file does not exist and saveOnFail
// is true then the current values are saved to create the file.
//
// Values in the command line stack override the values in the file.
func (dsk *Disk) Load(saveOnFail bool) error {
	data, err := dsk.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			data[k] = v
		}
		if v, ok := data[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(InvalidValueError, k, err)
			}
		}
	}

	return nil
}

// ApplyCommandLine sets values from the command line stack only. Useful when
// there is no file to load.
func (dsk *Disk) ApplyCommandLine() error {
	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(InvalidValueError, k, err)
			}
		}
	}
	return nil
}

// String returns the entries of the Disk, one per line, in the same format as
// the file.
func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(KeySep)
		s.WriteString(dsk.entries[k].String())
		s.WriteString("\n")
	}
	return s.String()
}
