// Package catalog derives the curated definition listings shown by `install --list`.
package catalog

import (
	"regexp"

	"github.com/hashicorp/go-version"
)

// implementation splits "jruby-9.4.5.0" into "jruby" and "9.4.5.0". Plain
// versions have an empty implementation.
var implementation = regexp.MustCompile(`^(?:([A-Za-z][\w.]*?)-)?(\d.*)$`)

// Entry is a parsed definition name.
type Entry struct {
	Name           string
	Implementation string
	Version        *version.Version
}

// Parse splits a definition name into implementation and version. Names that
// do not end in a version (e.g. "3.4-dev", "mruby-dev") are reported as not ok.
func Parse(name string) (Entry, bool) {
	m := implementation.FindStringSubmatch(name)
	if m == nil {
		return Entry{}, false
	}
	v, err := version.NewVersion(m[2])
	if err != nil {
		return Entry{}, false
	}
	return Entry{Name: name, Implementation: m[1], Version: v}, true
}

// LatestStable returns, per implementation, the highest released version.
// Pre-releases and unparsable names are dropped; groups keep the order in
// which the catalog first mentions them.
func LatestStable(definitions []string) []string {
	var order []string
	latest := make(map[string]Entry)

	for _, name := range definitions {
		entry, ok := Parse(name)
		if !ok || entry.Version.Prerelease() != "" {
			continue
		}
		current, seen := latest[entry.Implementation]
		if !seen {
			order = append(order, entry.Implementation)
			latest[entry.Implementation] = entry
			continue
		}
		if entry.Version.GreaterThan(current.Version) {
			latest[entry.Implementation] = entry
		}
	}

	out := make([]string, 0, len(order))
	for _, impl := range order {
		out = append(out, latest[impl].Name)
	}
	return out
}
