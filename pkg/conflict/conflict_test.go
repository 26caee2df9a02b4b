package conflict

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glorpus-work/rtenv/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePrompter struct {
	reply bool
	err   error
	asked int
}

func (f *fakePrompter) Confirm(context.Context, string) (bool, error) {
	f.asked++
	return f.reply, f.err
}

func installedPrefix(t *testing.T) string {
	t.Helper()
	prefix := filepath.Join(t.TempDir(), "versions", "3.3.0")
	require.NoError(t, os.MkdirAll(filepath.Join(prefix, "bin"), 0o755))
	return prefix
}

func TestResolver_PolicyTable(t *testing.T) {
	tests := []struct {
		name        string
		installed   bool
		opts        model.InstallOptions
		interactive bool
		reply       bool
		expected    Decision
		prompts     int
		message     string
	}{
		{name: "no installation proceeds", installed: false, expected: Proceed},
		{name: "no installation ignores skip-existing", installed: false, opts: model.InstallOptions{SkipExisting: true}, expected: Proceed},
		{name: "force overwrites", installed: true, opts: model.InstallOptions{Force: true}, expected: Proceed},
		{name: "force wins over skip-existing", installed: true, opts: model.InstallOptions{Force: true, SkipExisting: true}, expected: Proceed},
		{name: "skip-existing skips", installed: true, opts: model.InstallOptions{SkipExisting: true}, interactive: true, expected: Skip},
		{name: "interactive yes proceeds", installed: true, interactive: true, reply: true, expected: Proceed, prompts: 1, message: "already exists"},
		{name: "interactive no declines", installed: true, interactive: true, reply: false, expected: Decline, prompts: 1, message: "already exists"},
		{name: "non-interactive declines", installed: true, interactive: false, expected: Decline, message: "--skip-existing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix := filepath.Join(t.TempDir(), "versions", "3.3.0")
			if tt.installed {
				prefix = installedPrefix(t)
			}
			prompter := &fakePrompter{reply: tt.reply}
			var stderr bytes.Buffer
			resolver := &Resolver{
				Prompter:    prompter,
				Interactive: func() bool { return tt.interactive },
				Stderr:      &stderr,
			}

			decision, err := resolver.Resolve(context.Background(), prefix, tt.opts)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, decision)
			assert.Equal(t, tt.prompts, prompter.asked)
			if tt.message != "" {
				assert.Contains(t, stderr.String(), tt.message)
			} else {
				assert.Empty(t, stderr.String())
			}
		})
	}
}

func TestResolver_EmptyPrefixIsNotAConflict(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "3.3.0")
	require.NoError(t, os.MkdirAll(filepath.Join(prefix, "lib"), 0o755))

	resolver := &Resolver{Interactive: func() bool { return false }}
	decision, err := resolver.Resolve(context.Background(), prefix, model.InstallOptions{})

	require.NoError(t, err)
	assert.Equal(t, Proceed, decision)
}

func TestResolver_PromptError(t *testing.T) {
	resolver := &Resolver{
		Prompter:    &fakePrompter{err: context.Canceled},
		Interactive: func() bool { return true },
	}

	decision, err := resolver.Resolve(context.Background(), installedPrefix(t), model.InstallOptions{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Decline, decision)
}

func TestDecision_ExitCode(t *testing.T) {
	assert.Equal(t, 0, Proceed.ExitCode())
	assert.Equal(t, 0, Skip.ExitCode())
	assert.Equal(t, 1, Decline.ExitCode())
	assert.Equal(t, "skip", Skip.String())
}

func TestAffirmative(t *testing.T) {
	for _, reply := range []string{"y", "Y", "yes", "YES\n", "  yep"} {
		assert.True(t, Affirmative(reply), reply)
	}
	for _, reply := range []string{"", "n", "no", "N\n", "sure"} {
		assert.False(t, Affirmative(reply), reply)
	}
}

func TestTerminalPrompter(t *testing.T) {
	var out bytes.Buffer
	prompter := &TerminalPrompter{In: strings.NewReader("y\n"), Out: &out}

	ok, err := prompter.Confirm(context.Background(), "continue? ")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "continue? ", out.String())

	ok, err = (&TerminalPrompter{In: strings.NewReader("")}).Confirm(context.Background(), "continue? ")
	require.NoError(t, err)
	assert.False(t, ok, "end of input is a refusal")
}

type blockingReader struct{ done chan struct{} }

func (b blockingReader) Read([]byte) (int, error) {
	<-b.done
	return 0, errors.New("closed")
}

func TestTerminalPrompter_Cancelled(t *testing.T) {
	reader := blockingReader{done: make(chan struct{})}
	defer close(reader.done)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ok, err := (&TerminalPrompter{In: reader}).Confirm(ctx, "continue? ")

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ok)
}
