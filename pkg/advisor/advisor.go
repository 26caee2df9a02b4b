// Package advisor explains a "definition not found" build failure.
package advisor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/rtenv/internal/logger"
	"github.com/glorpus-work/rtenv/pkg/builder"
	"github.com/glorpus-work/rtenv/pkg/fsutil"
)

// Catalog lists the definitions the builder knows.
type Catalog interface {
	Definitions(ctx context.Context) ([]string, error)
}

// Origin tells how the builder was installed.
type Origin int

// Known origins.
const (
	OriginUnknown Origin = iota
	OriginGit
	OriginHomebrew
)

// Advisor builds the remediation text shown after the builder rejects a definition.
type Advisor struct {
	Catalog Catalog
	Command string // this tool's name, e.g. "rtenv"
	Builder string // the builder's name, e.g. "rtenv-build"

	// BuilderPath returns the absolute path of the builder executable.
	BuilderPath func() (string, error)
	// BrewPrefix returns the Homebrew prefix, or "" when Homebrew is absent.
	BrewPrefix func(ctx context.Context) string
}

// New creates an advisor for the given builder client.
func New(client *builder.Client) *Advisor {
	return &Advisor{
		Catalog:     client,
		Command:     fsutil.AppName,
		Builder:     filepath.Base(client.Path),
		BuilderPath: client.ResolvedPath,
		BrewPrefix:  brewPrefix,
	}
}

// Advise returns the text block to print on stderr. It never fails: an
// unreadable catalog just yields no candidates.
func (a *Advisor) Advise(ctx context.Context, definition string) string {
	var candidates []string
	if a.Catalog != nil {
		defs, err := a.Catalog.Definitions(ctx)
		if err != nil {
			logger.Debug("Failed to list definitions", logger.Fields{"error": err.Error()})
		}
		candidates = Matches(defs, definition)
	}

	var b strings.Builder
	b.WriteString("\n")
	if len(candidates) > 0 {
		fmt.Fprintf(&b, "The following versions contain `%s' in the name:\n", definition)
		for _, c := range candidates {
			fmt.Fprintf(&b, "  %s\n", c)
		}
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "See all available versions with `%s install --list-all'.\n", a.command())
	b.WriteString("\n")

	fmt.Fprintf(&b, "If the version you need is missing, try upgrading %s", a.builder())
	origin, dir := a.origin(ctx)
	switch origin {
	case OriginHomebrew:
		fmt.Fprintf(&b, ":\n\n  brew upgrade %s\n", a.builder())
	case OriginGit:
		fmt.Fprintf(&b, ":\n\n  git -C %s pull\n", dir)
	default:
		b.WriteString(".\n")
	}
	return b.String()
}

// Matches returns the definitions containing definition as a literal substring, in catalog order.
func Matches(definitions []string, definition string) []string {
	var out []string
	for _, d := range definitions {
		if strings.Contains(d, definition) {
			out = append(out, d)
		}
	}
	return out
}

// origin locates the builder's installation directory (the parent of its bin
// directory) and classifies it.
func (a *Advisor) origin(ctx context.Context) (Origin, string) {
	if a.BuilderPath == nil {
		return OriginUnknown, ""
	}
	path, err := a.BuilderPath()
	if err != nil {
		return OriginUnknown, ""
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	dir := filepath.Dir(filepath.Dir(path))

	if a.BrewPrefix != nil {
		if prefix := a.BrewPrefix(ctx); prefix != "" && isWithin(dir, prefix) {
			return OriginHomebrew, dir
		}
	}
	if fsutil.DirExists(filepath.Join(dir, ".git")) {
		return OriginGit, dir
	}
	return OriginUnknown, dir
}

func (a *Advisor) command() string {
	if a.Command == "" {
		return fsutil.AppName
	}
	return a.Command
}

func (a *Advisor) builder() string {
	if a.Builder == "" {
		return builder.DefaultName
	}
	return a.Builder
}

func isWithin(path, root string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func brewPrefix(ctx context.Context) string {
	if prefix := os.Getenv("HOMEBREW_PREFIX"); prefix != "" {
		return prefix
	}
	out, err := exec.CommandContext(ctx, "brew", "--prefix").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
