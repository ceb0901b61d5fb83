package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"git.sr.ht/~mango/smallstep/builtin"
	"git.sr.ht/~mango/smallstep/log"
)

const (
	historyFile = ".smallstep_history"
	rcFile      = ".smallsteprc"
)

// historyPath returns where the REPL history lives.  SMALLSTEP_HISTORY
// overrides the default of a file in the home directory.
func historyPath() string {
	if p := os.Getenv("SMALLSTEP_HISTORY"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func runRepl(f flags) {
	s := builtin.NewSession(os.Stdout, os.Stderr)
	s.Trace = f.trace

	if err := s.Load(rcFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("%s", err)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := historyPath()
	if fp, err := os.Open(hist); err == nil {
		ln.ReadHistory(fp)
		fp.Close()
	}
	defer func() {
		if hist == "" {
			return
		}
		fp, err := os.Create(hist)
		if err != nil {
			log.Warn("%s", err)
			return
		}
		ln.WriteHistory(fp)
		fp.Close()
	}()

	var status uint8
	for {
		line, err := ln.Prompt(fmt.Sprintf("[%d] > ", status))
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(os.Stderr, "^D")
			return
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			log.Warn("%s", err)
			return
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		status = s.Input(line)
	}
}
