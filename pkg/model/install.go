// Package model holds the value types shared by the install pipeline.
package model

import "strings"

// InstallOptions are the caller-controlled switches of a single install run.
type InstallOptions struct {
	Force        bool     // overwrite an existing installation without prompting
	SkipExisting bool     // succeed silently when the version is already installed
	Keep         bool     // keep the build source tree after building
	BuildRoot    string   // custom root for kept source trees; implies Keep
	Verbose      bool     // stream build output
	HasPatch     bool     // the builder reads a patch from stdin
	ExtraArgs    []string // forwarded verbatim to the builder after "--"
}

// VersionNameFor derives the default version name of a definition: its final path segment.
func VersionNameFor(definition string) string {
	trimmed := strings.TrimRight(definition, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
