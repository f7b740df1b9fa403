package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/composita/pkg/factorial"
	"github.com/chzyer/readline"
)

// FactorialPrompt is shown before every input line of the interactive loop.
const FactorialPrompt = "Enter the value of x (or type 'exit' to quit): "

// LineReader yields one line of user input per call.
type LineReader interface {
	Readline() (string, error)
}

// NewFactorialReader returns a readline instance bound to in and out.
func NewFactorialReader(in io.ReadCloser, out io.Writer) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          FactorialPrompt,
		Stdin:           in,
		Stdout:          out,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// RunFactorialPrompt reads integers until the input is not a non-negative
// integer, recording each factorial in the ledger.
func RunFactorialPrompt(r LineReader, w io.Writer, ledger *factorial.Ledger, onRecord func(x int)) error {
	for {
		line, err := r.Readline()
		if err != nil {
			if isInterrupted(err) {
				fmt.Fprintln(w, "Exiting...")
				return nil
			}
			return err
		}

		x, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || x < 0 {
			fmt.Fprintln(w, "Exiting...")
			return nil
		}

		if err := RecordFactorial(w, ledger, x); err != nil {
			return err
		}
		if onRecord != nil {
			onRecord(x)
		}
	}
}

// RecordFactorial computes x!, appends it to the ledger and reports where it went.
func RecordFactorial(w io.Writer, ledger *factorial.Ledger, x int) error {
	if _, err := ledger.Record(x); err != nil {
		if errors.Is(err, factorial.ErrNegative) {
			return err
		}
		return fmt.Errorf("record %d!: %w", x, err)
	}
	fmt.Fprintf(w, "Saved %d! to %s\n", x, ledger.Path())
	return nil
}
