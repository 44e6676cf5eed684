// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

package otp

import (
	"strings"

	"github.com/rivo/uniseg"
	"github.com/toeirei/otpform/util/slicest"
)

// DefaultInputCount is the number of cells a widget starts with.
const DefaultInputCount = 4

// Cell is a single character slot. A cell is valid once it holds a character.
type Cell struct {
	char string
}

func (c Cell) Value() string { return c.char }
func (c Cell) Valid() bool   { return c.char != "" }

// Snapshot is the aggregate state of a cell array at one point in time.
type Snapshot struct {
	Value string
	Valid bool
}

// Cells is the ordered array of cells making up one code.
type Cells struct {
	cells []Cell
}

func NewCells(count int) *Cells {
	c := &Cells{}
	c.Configure(count)
	return c
}

// Configure replaces the array with count fresh, empty cells. Prior
// characters are discarded. A count <= 0 yields an empty array.
func (c *Cells) Configure(count int) {
	c.cells = make([]Cell, max(count, 0))
}

func (c *Cells) Len() int { return len(c.cells) }

// Set stores raw in the cell at index. Surrounding whitespace is trimmed and
// only the first user-perceived character is kept; the previous content is
// replaced, never appended to. It reports whether index was in range.
func (c *Cells) Set(index int, raw string) bool {
	if index < 0 || index >= len(c.cells) {
		return false
	}
	c.cells[index].char = firstCharacter(strings.TrimSpace(raw))
	return true
}

func (c *Cells) Get(index int) string {
	if index < 0 || index >= len(c.cells) {
		return ""
	}
	return c.cells[index].char
}

// Values returns the per-cell characters in order.
func (c *Cells) Values() []string {
	return slicest.Map(c.cells, Cell.Value)
}

// Value is the concatenation of all cell characters.
func (c *Cells) Value() string {
	return strings.Join(c.Values(), "")
}

// Valid reports whether every cell holds a character. An empty array is
// vacuously valid.
func (c *Cells) Valid() bool {
	for _, cell := range c.cells {
		if !cell.Valid() {
			return false
		}
	}
	return true
}

func (c *Cells) Snapshot() Snapshot {
	return Snapshot{Value: c.Value(), Valid: c.Valid()}
}

// SplitCharacters breaks s into user-perceived characters, dropping
// whitespace. Pasted codes are distributed over cells with it.
func SplitCharacters(s string) []string {
	var chars []string
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if strings.TrimSpace(cluster) != "" {
			chars = append(chars, cluster)
		}
	}
	return chars
}

func firstCharacter(s string) string {
	if s == "" {
		return ""
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return cluster
}
