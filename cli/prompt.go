package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter is line-based console input. Integer parsing never panics or
// propagates: a junk line comes back as ok=false and the caller decides
// whether to re-prompt.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	eof     bool
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

func (p *prompter) readLine(prompt string) string {
	if p.eof {
		return ""
	}
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		p.eof = true
		return ""
	}
	return strings.TrimSpace(p.scanner.Text())
}

func (p *prompter) readInt(prompt string) (int, bool) {
	line := p.readLine(prompt)
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, false
	}
	return n, true
}
