package conflict

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// TerminalPrompter reads a single reply line. The read happens in the
// background so a cancelled context ends the prompt immediately.
type TerminalPrompter struct {
	In  io.Reader
	Out io.Writer
}

type readResult struct {
	line string
	err  error
}

// Confirm prints question and reports whether the reply is affirmative.
// End of input counts as a refusal.
func (p *TerminalPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	if p.Out != nil {
		fmt.Fprint(p.Out, question)
	}

	replies := make(chan readResult, 1)
	go func() {
		line, err := bufio.NewReader(p.In).ReadString('\n')
		replies <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case reply := <-replies:
		if reply.err != nil && reply.err != io.EOF {
			return false, fmt.Errorf("failed to read reply: %w", reply.err)
		}
		return Affirmative(reply.line), nil
	}
}
