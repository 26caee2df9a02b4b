package builder

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Definitions returns every definition name the builder knows, in the builder's order.
func (c *Client) Definitions(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, c.Path, flagDefinitions)
	cmd.Env = c.environ()
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("failed to list definitions: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("failed to list definitions: %w", err)
	}

	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			names = append(names, name)
		}
	}
	return names, scanner.Err()
}
