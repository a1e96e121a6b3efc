// Package prompt implements the interactive overwrite confirmation.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"
)

// New returns a confirmation function that writes an overwrite question
// to out and reads one reply line from in. Only a reply starting with
// 'y' or 'Y' accepts; anything else, including an empty line, a read
// error or EOF, declines. The read blocks until input arrives, which is
// the expected behavior for a command-line prompt.
func New(in io.Reader, out io.Writer) func(destination string) bool {
	reader := bufio.NewReader(in)
	return func(destination string) bool {
		fmt.Fprintf(out, "lnk: overwrite '%s'? ", destination)

		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			return false
		}
		r, _ := utf8.DecodeRuneInString(line)
		return r == 'y' || r == 'Y'
	}
}
