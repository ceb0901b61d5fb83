package main

import (
	"fmt"
	"os"
	"strconv"

	"git.sr.ht/~sircmpwn/getopt"

	"git.sr.ht/~mango/smallstep/builtin"
	"git.sr.ht/~mango/smallstep/log"
	"git.sr.ht/~mango/smallstep/termfile"
)

type flags struct {
	bigstep, dump, js, trace, yaml bool

	expr    string
	hasExpr bool
	limit   int // Maximum number of steps, or 0 for no limit
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-bdjty] [-n steps] [-e program | file]\n", os.Args[0])
	os.Exit(1)
}

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "bde:hjn:ty")
	if err != nil {
		log.Warn("%s", err)
		usage()
	}

	var f flags
	for _, opt := range opts {
		switch opt.Option {
		case 'b':
			f.bigstep = true
		case 'd':
			f.dump = true
		case 'e':
			f.expr, f.hasExpr = opt.Value, true
		case 'h':
			usage()
		case 'j':
			f.js = true
		case 'n':
			n, err := strconv.Atoi(opt.Value)
			if err != nil || n <= 0 {
				log.Warn("‘%s’ is not a valid number of steps", opt.Value)
				usage()
			}
			f.limit = n
		case 't':
			f.trace = true
		case 'y':
			f.yaml = true
		}
	}

	var p termfile.Program
	switch args := os.Args[optind:]; {
	case f.hasExpr && len(args) == 0:
		p, err = builtin.ParseSource(f.expr)
	case !f.hasExpr && len(args) == 1:
		p, err = builtin.ReadProgram(args[0], f.yaml)
	case !f.hasExpr && len(args) == 0:
		runRepl(f)
		return
	default:
		usage()
	}

	log.CrashOnError = true
	if err != nil {
		log.Err("%s", err)
	}
	if err = runProgram(os.Stdout, f, p); err != nil {
		log.Err("%s", err)
	}
}
