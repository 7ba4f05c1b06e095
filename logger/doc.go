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

// Package logger is the central log for socfabric. Entries are a tag (usually
// the name of the package or component making the entry) and a detail string.
//
// Composition of an SoC is a one-shot, build-time affair and most of what is
// logged is a record of decisions: which regions were allocated, which
// bridges were instantiated and why. The fabric model also logs bus errors
// generated by bridges during simulation.
//
// Adjacent entries with the same tag and detail are folded into a single
// entry with a repeat count. The number of entries is capped.
//
// Every logging request is accompanied by a Permission. Components that may
// be used quietly (in tests for example) accept a Permission in their
// configuration and pass it on to the logger.
package logger
