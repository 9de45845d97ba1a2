//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/timburks/caret/commander"
	"github.com/timburks/caret/editor"
	"github.com/timburks/caret/screen"
	caret "github.com/timburks/caret/types"
)

const usage = "usage: caret [--termbox] [--offset-vertical] [--no-status] [--log path] [--eval forms] file"

var errUsage = errors.New(usage)

type options struct {
	filename string
	script   string // lisp forms to evaluate instead of editing interactively
	eval     bool
	logPath  string
	termbox  bool
	vertical int
	status   bool
}

func parseArgs(args []string) (*options, error) {
	opts := &options{status: true, vertical: caret.VerticalClamp}
	filenames := make([]string, 0)
	for i := 0; i < len(args); i++ {
		switch argi := args[i]; argi {
		case "--eval": // eval program
			i++
			if i >= len(args) {
				return nil, errors.New("no forms specified for --eval option")
			}
			opts.script = args[i]
			opts.eval = true
		case "--log":
			i++
			if i >= len(args) {
				return nil, errors.New("no file specified for --log option")
			}
			opts.logPath = args[i]
		case "--termbox":
			opts.termbox = true
		case "--offset-vertical":
			opts.vertical = caret.VerticalOffset
		case "--no-status":
			opts.status = false
		default:
			filenames = append(filenames, argi)
		}
	}
	if len(filenames) != 1 {
		return nil, errUsage
	}
	opts.filename = filenames[0]
	if opts.logPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = os.TempDir()
		}
		opts.logPath = filepath.Join(home, ".caretlog")
	}
	return opts, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
		}
		os.Exit(2)
	}
	if err := run(opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "caret: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *options, stdout io.Writer) error {
	// The editor manages all text manipulation.
	e := editor.NewEditor()
	e.GetBuffer().SetVerticalMode(opts.vertical)
	if err := e.ReadFile(opts.filename); err != nil {
		return err
	}

	// Open a log file.
	f, err := os.OpenFile(opts.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer f.Close()
	log.SetOutput(f)
	log.Printf("editing %s (%d bytes)", opts.filename, e.GetBuffer().Len())

	if opts.eval {
		// Run a script and print the result.
		if _, err := commander.Eval(e, opts.script); err != nil {
			return fmt.Errorf("eval: %w", err)
		}
		_, err = stdout.Write(e.Bytes())
		return err
	}

	display, err := openDisplay(opts)
	if err != nil {
		return err
	}
	// Restore the terminal however we exit.
	defer display.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	// The commander converts user inputs into operations for the editor.
	c := commander.NewCommander(e)
	c.SetStatus(opts.status)

	// Run the main event loop.
	if err := c.Run(ctx, display, caret.FrameDuration); err != nil {
		log.Printf("%+v", err)
		return err
	}
	return display.Close()
}

func openDisplay(opts *options) (caret.Display, error) {
	if opts.termbox {
		t, err := screen.OpenTermbox()
		if err != nil {
			return nil, fmt.Errorf("opening termbox: %w", err)
		}
		return t, nil
	}
	s, err := screen.Open(os.Stdin, os.Stdout)
	if err != nil {
		return nil, err
	}
	return s, nil
}
