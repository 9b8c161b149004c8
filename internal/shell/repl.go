package shell

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Repl runs the shell as a read-eval-print loop over the given streams.
// Returns when the input ends or the user quits.
func Repl(s *Shell, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	prompt := color.CyanString("duml> ")

	fmt.Fprintln(out, "duml interactive shell (help for commands, exit to leave)")
	fmt.Fprint(out, prompt)

	for scanner.Scan() {
		res := s.Exec(scanner.Text())
		if res.Quit {
			return nil
		}
		if res.Output != "" {
			if res.IsError {
				fmt.Fprintf(out, "%s %s\n", color.RedString("error:"), res.Output)
			} else {
				fmt.Fprintln(out, res.Output)
			}
		}
		fmt.Fprint(out, prompt)
	}
	return scanner.Err()
}
