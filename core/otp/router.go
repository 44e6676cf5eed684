// Copyright (c) 2026 OTPForm Team
// OTPForm - one-time passcode entry widget
// This source code is licensed under the MIT license found in the LICENSE file.

package otp

import "time"

const (
	// KeyBackspace is the only key name the router reacts to on keydown.
	KeyBackspace = "Backspace"

	// DefaultBackspaceDelay lets the native backspace handling settle
	// before focus moves to the previous cell.
	DefaultBackspaceDelay = 10 * time.Millisecond

	// NoFocus marks a Command that must not move focus.
	NoFocus = -1
)

// Command is the outcome of routing one raw event.
type Command struct {
	// Mutated is set when a cell was written.
	Mutated bool
	// Focus is the cell that must receive focus, or NoFocus.
	Focus int
	// Delay before the focus move is issued.
	Delay time.Duration
}

func (c Command) HasFocus() bool { return c.Focus != NoFocus }

var noop = Command{Focus: NoFocus}

// Router applies the "advance on fill, retreat on backspace" rule on top of
// a cell array. It never stores which cell is focused.
type Router struct {
	cells          *Cells
	backspaceDelay time.Duration
}

func NewRouter(cells *Cells, backspaceDelay time.Duration) *Router {
	return &Router{cells: cells, backspaceDelay: backspaceDelay}
}

func (r *Router) SetBackspaceDelay(d time.Duration) { r.backspaceDelay = d }

// HandleInput writes data into the cell at index and moves focus to the next
// cell when the write left a character behind.
func (r *Router) HandleInput(index int, data string) Command {
	if !r.cells.Set(index, data) {
		return noop
	}

	cmd := Command{Mutated: true, Focus: NoFocus}
	if r.cells.Get(index) != "" && index+1 < r.cells.Len() {
		cmd.Focus = index + 1
	}
	return cmd
}

// HandleKeydown clears the cell at index on backspace and moves focus to the
// previous cell after the backspace delay. The first cell is left alone.
func (r *Router) HandleKeydown(index int, key string) Command {
	if key != KeyBackspace || index <= 0 || index >= r.cells.Len() {
		return noop
	}

	r.cells.Set(index, "")
	return Command{
		Mutated: true,
		Focus:   index - 1,
		Delay:   r.backspaceDelay,
	}
}
