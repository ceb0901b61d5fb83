// Package builtin implements the REPL session and the meta-commands that can
// be typed at the prompt with a leading colon, such as ‘:env’ or ‘:undo’.
package builtin

import (
	"fmt"
	"io"
	"slices"

	"github.com/samber/lo"

	"git.sr.ht/~mango/smallstep/pkg/stack"
	"git.sr.ht/~mango/smallstep/vm"
	"git.sr.ht/~mango/smallstep/vm/vars"
)

type builtin func(s *Session, args []string) uint8

var Commands map[string]builtin

func init() {
	Commands = map[string]builtin{
		"env":   cmdEnv,
		"help":  cmdHelp,
		"load":  cmdLoad,
		"reset": cmdReset,
		"set":   cmdSet,
		"trace": cmdTrace,
		"undo":  cmdUndo,
		"unset": cmdUnset,
	}
}

// Session is the state a REPL keeps between lines
type Session struct {
	Env     vars.Env              // Current environment
	History stack.Stack[vars.Env] // Earlier environments, for ‘undo’
	Trace   bool                  // Print every step to Stderr

	Stdout, Stderr io.Writer
}

func NewSession(stdout, stderr io.Writer) *Session {
	return &Session{
		History: stack.New[vars.Env](64),
		Stdout:  stdout,
		Stderr:  stderr,
	}
}

// Run runs the meta-command named by args[0]
func (s *Session) Run(args []string) uint8 {
	if len(args) == 0 {
		return 0
	}
	f, ok := Commands[args[0]]
	if !ok {
		errorf(s, args[0], "no such command; try ‘:help’")
		return 1
	}
	return f(s, args)
}

func (s *Session) machine() vm.Machine {
	if !s.Trace {
		return vm.Machine{}
	}
	return vm.Machine{Trace: func(st vm.Step) {
		fmt.Fprintln(s.Stderr, st)
	}}
}

// commit makes env the current environment, remembering the old one
func (s *Session) commit(env vars.Env) {
	if env == s.Env {
		return
	}
	s.History.Push(s.Env)
	s.Env = env
}

func errorf(s *Session, name, format string, args ...any) {
	format = fmt.Sprintf("%s: %s\n", name, format)
	fmt.Fprintf(s.Stderr, format, args...)
}

func cmdHelp(s *Session, _ []string) uint8 {
	names := lo.Keys(Commands)
	slices.Sort(names)
	for _, n := range names {
		fmt.Fprintf(s.Stdout, ":%s\n", n)
	}
	return 0
}

func cmdTrace(s *Session, args []string) uint8 {
	switch {
	case len(args) == 1:
		s.Trace = !s.Trace
	case len(args) == 2 && args[1] == "on":
		s.Trace = true
	case len(args) == 2 && args[1] == "off":
		s.Trace = false
	default:
		fmt.Fprintln(s.Stderr, "Usage: trace [on | off]")
		return 1
	}
	fmt.Fprintf(s.Stdout, "tracing is %s\n", lo.Ternary(s.Trace, "on", "off"))
	return 0
}

func cmdLoad(s *Session, args []string) uint8 {
	if len(args) < 2 {
		fmt.Fprintln(s.Stderr, "Usage: load file ...")
		return 1
	}
	for _, f := range args[1:] {
		if err := s.Load(f); err != nil {
			errorf(s, args[0], "%s", err)
			return 1
		}
	}
	return 0
}
