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

package bridge

// Sentinal patterns for errors returned by the package.
const (
	DecodeError             = "bridge: %s: decode error: %#x"
	WidthMismatchError      = "bridge: %s: width mismatch: %d bit transaction for %d bit slave (%s)"
	LinkerOnlyWriteError    = "bridge: %s: write to linker-only region: %s: %#x"
	WindowFullError         = "bridge: %s: outstanding window full (%d)"
	UnsupportedBridgeError  = "bridge: unsupported protocol pair: %s"
	InvalidTransactionError = "bridge: %s: invalid transaction: %s"
	InvalidConfigError      = "bridge: invalid configuration: %s"
)
