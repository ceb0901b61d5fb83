package vm

import (
	"fmt"

	"git.sr.ht/~mango/smallstep/ast"
)

// UndefinedError is returned when a variable is looked up in an environment
// that doesn’t bind it
type UndefinedError struct {
	Name string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("Nothing found for name ‘%s’", e.Name)
}

// MismatchError is returned when a rule gets a value of the wrong kind, such
// as adding a boolean or branching on a number
type MismatchError struct {
	Want string    // Kind of value the rule needed
	Got  ast.Value // Value it got instead
	Term ast.Node  // Term whose rule failed
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("Expected %s but got ‘%s’ in ‘%s’", e.Want, e.Got, e.Term)
}

// IrreducibleError is returned when asked to reduce a term that is already
// terminal.  Well-formed callers check Reducible or ReducibleStmt first, so
// this always points to a bug in the caller.
type IrreducibleError struct {
	Term ast.Node
}

func (e *IrreducibleError) Error() string {
	return fmt.Sprintf("‘%s’ is not reducible", e.Term)
}
