package builtin

import (
	"fmt"
	"strings"

	"git.sr.ht/~mango/smallstep/lexer"
	"git.sr.ht/~mango/smallstep/parser"
	"git.sr.ht/~mango/smallstep/vm/vars"
)

func cmdEnv(s *Session, args []string) uint8 {
	if len(args) != 1 {
		fmt.Fprintln(s.Stderr, "Usage: env")
		return 1
	}
	fmt.Fprintln(s.Stdout, s.Env)
	return 0
}

func cmdSet(s *Session, args []string) uint8 {
	if len(args) < 3 {
		fmt.Fprintln(s.Stderr, "Usage: set variable expression")
		return 1
	}

	ident := args[1]
	if !lexer.IsIdent(ident) {
		errorf(s, args[0], "‘%s’ is not a valid variable name", ident)
		return 1
	}

	e, err := parser.ExprString(strings.Join(args[2:], " "))
	if err != nil {
		errorf(s, args[0], "%s", err)
		return 1
	}
	v, err := s.machine().RunExpr(e, s.Env)
	if err != nil {
		errorf(s, args[0], "%s", err)
		return 1
	}

	s.commit(s.Env.With(ident, v))
	return 0
}

func cmdUnset(s *Session, args []string) uint8 {
	if len(args) != 2 {
		fmt.Fprintln(s.Stderr, "Usage: unset variable")
		return 1
	}
	if _, ok := s.Env.Get(args[1]); !ok {
		errorf(s, args[0], "variable ‘%s’ was already unset", args[1])
		return 1
	}
	s.commit(s.Env.Without(args[1]))
	return 0
}

func cmdReset(s *Session, args []string) uint8 {
	if len(args) != 1 {
		fmt.Fprintln(s.Stderr, "Usage: reset")
		return 1
	}
	s.commit(vars.Env{})
	return 0
}

func cmdUndo(s *Session, args []string) uint8 {
	if len(args) != 1 {
		fmt.Fprintln(s.Stderr, "Usage: undo")
		return 1
	}
	env, ok := s.History.Pop()
	if !ok {
		errorf(s, args[0], "the history is empty")
		return 1
	}
	s.Env = env
	return 0
}
