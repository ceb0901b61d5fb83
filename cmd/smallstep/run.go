package main

import (
	"fmt"
	"io"

	"git.sr.ht/~mango/smallstep/bigstep"
	"git.sr.ht/~mango/smallstep/jsgen"
	"git.sr.ht/~mango/smallstep/log"
	"git.sr.ht/~mango/smallstep/termfile"
	"git.sr.ht/~mango/smallstep/vm"
)

type errLimit int

func (e errLimit) Error() string {
	return fmt.Sprintf("stopped after %d steps", int(e))
}

// runProgram does with p whatever the flags ask for and writes the result to
// w: the final environment of a statement or the value of an expression
func runProgram(w io.Writer, f flags, p termfile.Program) error {
	switch {
	case f.dump:
		data, err := termfile.Encode(p)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case f.js:
		js, err := jsgen.Script(p.Term(), p.Env)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, js)
		return nil
	case f.bigstep:
		if f.trace {
			log.Warn("big-step evaluation can’t be traced")
		}
		return runBigstep(w, p)
	case f.limit > 0 && p.Stmt != nil:
		return runBounded(w, f, p)
	}

	var m vm.Machine
	if f.trace {
		m.Trace = log.Trace[vm.Step]
	}
	if p.Expr != nil {
		v, err := m.RunExpr(p.Expr, p.Env)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, v)
		return nil
	}
	env, err := m.RunStmt(p.Stmt, p.Env)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, env)
	return nil
}

func runBigstep(w io.Writer, p termfile.Program) error {
	if p.Expr != nil {
		v, err := bigstep.Eval(p.Expr, p.Env)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, v)
		return nil
	}
	env, err := bigstep.Exec(p.Stmt, p.Env)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, env)
	return nil
}

// runBounded drives the machine by hand so that it can give up after
// f.limit steps.  The environment reached so far is written either way.
func runBounded(w io.Writer, f flags, p termfile.Program) error {
	s, env := p.Stmt, p.Env
	for n := 0; vm.ReducibleStmt(s); n++ {
		if n == f.limit {
			fmt.Fprintln(w, env)
			return errLimit(n)
		}
		if f.trace {
			log.Trace(vm.Step{Term: s, Env: env})
		}

		var err error
		if s, env, err = vm.ReduceStmt(s, env); err != nil {
			return err
		}
	}
	fmt.Fprintln(w, env)
	return nil
}
