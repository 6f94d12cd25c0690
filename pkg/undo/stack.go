// Package undo implements a linear command history with atomic macros,
// bounded depth and clean-state tracking.
package undo

// Command is one reversible mutation. Redo applies the new state, Undo
// restores the old state; both must be idempotent under repeated alternating
// calls and must tolerate their target store having been closed.
type Command interface {
	Label() string
	Redo()
	Undo()
}

// macro groups child commands into one history entry. Redo replays children
// in order, Undo reverts them in reverse order.
type macro struct {
	label    string
	children []Command
}

func (m *macro) Label() string { return m.label }

func (m *macro) Redo() {
	for _, c := range m.children {
		c.Redo()
	}
}

func (m *macro) Undo() {
	for i := len(m.children) - 1; i >= 0; i-- {
		m.children[i].Undo()
	}
}

// Stack is a linear undo/redo history. Entries before index have been
// applied; entries at and after index have been undone.
type Stack struct {
	commands   []Command
	index      int
	cleanIndex int // -1 when the saved point has been truncated away
	limit      int
	open       []*macro
}

// NewStack creates a history bounded to limit entries. A limit of zero or
// less means unbounded.
func NewStack(limit int) *Stack {
	return &Stack{cleanIndex: 0, limit: limit}
}

// Push executes cmd immediately and records it. Any redone-then-abandoned
// future entries are dropped. Inside an open macro the command becomes a
// child of that macro instead of a top-level entry.
func (s *Stack) Push(cmd Command) {
	cmd.Redo()
	if n := len(s.open); n > 0 {
		inner := s.open[n-1]
		inner.children = append(inner.children, cmd)
		return
	}
	s.append(cmd)
}

// append records an already executed command as a top-level entry.
func (s *Stack) append(cmd Command) {
	if s.index < len(s.commands) {
		s.commands = s.commands[:s.index]
		if s.cleanIndex > s.index {
			s.cleanIndex = -1
		}
	}
	s.commands = append(s.commands, cmd)
	s.index++

	if s.limit > 0 && len(s.commands) > s.limit {
		drop := len(s.commands) - s.limit
		s.commands = s.commands[drop:]
		s.index -= drop
		if s.cleanIndex >= 0 {
			s.cleanIndex -= drop
			if s.cleanIndex < 0 {
				s.cleanIndex = -1
			}
		}
	}
}

// BeginMacro opens a macro: subsequent pushes become children of one
// composite entry until the matching EndMacro. Macros nest; an inner macro
// becomes a child of the outer one.
func (s *Stack) BeginMacro(label string) {
	s.open = append(s.open, &macro{label: label})
}

// EndMacro closes the most recent unmatched BeginMacro. An unmatched call is
// ignored. Macros that accumulated no children are discarded rather than
// recorded as empty entries.
func (s *Stack) EndMacro() {
	n := len(s.open)
	if n == 0 {
		return
	}
	closed := s.open[n-1]
	s.open = s.open[:n-1]

	if len(closed.children) == 0 {
		return
	}
	if len(s.open) > 0 {
		parent := s.open[len(s.open)-1]
		parent.children = append(parent.children, closed)
		return
	}
	// Children already executed via Push; record without re-executing.
	s.append(closed)
}

// InMacro reports whether a macro bracket is currently open.
func (s *Stack) InMacro() bool {
	return len(s.open) > 0
}

// CanUndo reports whether an entry is available to undo.
func (s *Stack) CanUndo() bool {
	return s.index > 0 && len(s.open) == 0
}

// CanRedo reports whether an undone entry is available to redo.
func (s *Stack) CanRedo() bool {
	return s.index < len(s.commands) && len(s.open) == 0
}

// Undo reverts the most recent applied entry. No-op at the bottom of the
// history or while a macro is open.
func (s *Stack) Undo() {
	if !s.CanUndo() {
		return
	}
	s.index--
	s.commands[s.index].Undo()
}

// Redo replays the next undone entry.
func (s *Stack) Redo() {
	if !s.CanRedo() {
		return
	}
	s.commands[s.index].Redo()
	s.index++
}

// UndoLabel returns the label of the entry Undo would revert.
func (s *Stack) UndoLabel() string {
	if s.index == 0 {
		return ""
	}
	return s.commands[s.index-1].Label()
}

// RedoLabel returns the label of the entry Redo would replay.
func (s *Stack) RedoLabel() string {
	if s.index >= len(s.commands) {
		return ""
	}
	return s.commands[s.index].Label()
}

// Clear drops all history. Used when loading a new layout: undo history does
// not cross layout boundaries.
func (s *Stack) Clear() {
	s.commands = nil
	s.index = 0
	s.cleanIndex = 0
	s.open = nil
}

// SetClean marks the current position as the saved point.
func (s *Stack) SetClean() {
	s.cleanIndex = s.index
}

// IsClean reports whether the history is at the saved point. Undoing past a
// save and redoing back to it restores the clean state.
func (s *Stack) IsClean() bool {
	return s.cleanIndex == s.index
}

// Count returns the number of recorded entries.
func (s *Stack) Count() int {
	return len(s.commands)
}

// Index returns the current position in the history.
func (s *Stack) Index() int {
	return s.index
}
