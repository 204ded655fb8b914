package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ConsoleUI is a minimal implementation of OutputHandler that writes to
// stdout/stderr, colouring lines by sentiment the same way the event
// stream does (green for success, yellow for warnings, red for errors).
type ConsoleUI struct {
	verbose bool
}

// NewConsoleUI creates a new ConsoleUI.
func NewConsoleUI(verbose bool) *ConsoleUI {
	return &ConsoleUI{verbose: verbose}
}

func (c *ConsoleUI) Success(msg string) { color.New(color.FgGreen).Fprintln(os.Stdout, msg) }
func (c *ConsoleUI) Info(msg string)    { fmt.Fprintln(os.Stdout, msg) }
func (c *ConsoleUI) Warning(msg string) { color.New(color.FgYellow).Fprintln(os.Stderr, msg) }
func (c *ConsoleUI) Error(msg string)   { color.New(color.FgRed).Fprintln(os.Stderr, msg) }
func (c *ConsoleUI) Debug(msg string) {
	if c.verbose {
		fmt.Fprintln(os.Stderr, msg)
	}
}
func (c *ConsoleUI) Table(interface{}, TableOptions) error  { return nil }
func (c *ConsoleUI) JSON(interface{}) error                 { return nil }
func (c *ConsoleUI) StartProgress(string) ProgressIndicator { return nil }
func (c *ConsoleUI) SetStatus(string)                       {}
func (c *ConsoleUI) Confirm(string) bool                    { return false }
func (c *ConsoleUI) ConfirmWithDefault(string, bool) bool   { return false }
func (c *ConsoleUI) SetVerbose(v bool)                      { c.verbose = v }
func (c *ConsoleUI) SetQuiet(bool)                          {}
func (c *ConsoleUI) SetOutputFormat(OutputFormat)           {}
func (c *ConsoleUI) GetWriter() io.Writer                   { return os.Stdout }
func (c *ConsoleUI) GetErrorWriter() io.Writer              { return os.Stderr }
func (c *ConsoleUI) GetVerbose() bool                       { return c.verbose }
