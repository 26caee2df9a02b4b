//go:generate mockgen -destination=./mocks/orchestrator.go . Builder,VersionLookup,HookLoader,ConflictResolver,FailureAdvisor,Rehasher

package orchestrator

import (
	"context"
	"io"

	"github.com/glorpus-work/rtenv/pkg/builder"
	"github.com/glorpus-work/rtenv/pkg/conflict"
	"github.com/glorpus-work/rtenv/pkg/hook"
	"github.com/glorpus-work/rtenv/pkg/model"
)

// Builder runs the external build tool.
type Builder interface {
	Build(ctx context.Context, inv builder.Invocation) int
}

// VersionLookup answers which versions are selected locally and globally.
type VersionLookup interface {
	Local() (string, error)
	Global() (string, error)
}

// HookLoader discovers and loads the hooks of one install run.
type HookLoader interface {
	Load(ctx context.Context, definition string) (*hook.Registry, error)
}

// ConflictResolver decides what happens when the prefix already holds an installation.
type ConflictResolver interface {
	Resolve(ctx context.Context, prefix string, opts model.InstallOptions) (conflict.Decision, error)
}

// FailureAdvisor explains a definition the builder does not know.
type FailureAdvisor interface {
	Advise(ctx context.Context, definition string) string
}

// Rehasher regenerates shims after a successful install.
type Rehasher interface {
	Rehash(ctx context.Context) error
}

// Orchestrator coordinates one install: version resolution, conflict policy,
// hooks, the build itself and rollback or finalization.
type Orchestrator struct {
	Root       string // holds versions/ and cache/
	CacheDir   string // configured builder cache; empty means <root>/cache when it exists
	Builder    Builder
	Versions   VersionLookup
	HookLoader HookLoader // optional; no hooks when nil
	Conflicts  ConflictResolver
	Advisor    FailureAdvisor // optional
	Rehasher   Rehasher       // optional
	Stderr     io.Writer      // advisor text and notices
	Getenv     func(string) string
	Hooks      Hooks // Hooks for progress and event notifications
}

// Request is a single install invocation.
type Request struct {
	Definition string // empty means the locally selected version
	Options    model.InstallOptions
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // resolving|hooks|building|rollback|done
	ID    string // version name once known
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}
