package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// ReaderOps opens chapter text in the ov pager for distraction-free
// reading. It needs the running Bubble Tea program so it can hand the
// terminal over and take it back.
type ReaderOps struct {
	program *tea.Program
}

// NewReaderOps creates a new reader operations instance.
func NewReaderOps(program *tea.Program) *ReaderOps {
	return &ReaderOps{program: program}
}

// SetProgram installs the program after it has been constructed.
func (r *ReaderOps) SetProgram(p *tea.Program) {
	r.program = p
}

// ShowInPager displays content in ov, blocking until the pager exits.
func (r *ReaderOps) ShowInPager(content string) error {
	if r.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := r.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = r.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
