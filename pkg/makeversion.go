package makeversion

import (
	"strings"
	"time"
)

// HeaderFile is the name of the generated header, relative to the working directory.
const HeaderFile = "version.h"

// TagPrefix is prepended to the version to form the git tag name.
const TagPrefix = "r"

// VersionRecord is the version and build time embedded in the header.
type VersionRecord struct {
	Identifier string // Caller supplied version, not validated.
	Timestamp  string // Invocation time in ctime format.
}

// NewRecord builds a VersionRecord for identifier stamped with now.
func NewRecord(identifier string, now time.Time) VersionRecord {
	return VersionRecord{
		Identifier: identifier,
		Timestamp:  now.Format(time.ANSIC),
	}
}

// Quote wraps s in double quotes, escaping each embedded double quote with a
// backslash. Backslashes already in s are passed through as is, so an input
// like `a\"b` renders as "a\\"b" and breaks out of the literal.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// RenderHeader returns the contents of version.h for rec.
func RenderHeader(rec VersionRecord) string {
	var b strings.Builder
	b.WriteString("#ifndef __version_h__\n")
	b.WriteString("#define __version_h__\n")
	b.WriteString("#define VERSION " + Quote(rec.Identifier) + "\n")
	b.WriteString("#define VERSION_DATE " + Quote(rec.Timestamp) + "\n")
	b.WriteString("#endif\n")
	return b.String()
}

// CommitMessage returns the commit message used for identifier.
func CommitMessage(identifier string) string {
	return "Bump Version: " + identifier
}

// TagName returns the git tag created for identifier.
func TagName(identifier string) string {
	return TagPrefix + identifier
}

// Step is a single external command issued during a run.
type Step struct {
	Name    string
	Command string
	Args    []string
}

// PlanSteps returns the build and git commands for identifier, in the order
// they are issued.
func PlanSteps(identifier string) []Step {
	return []Step{
		{Name: "build", Command: "cmake", Args: []string{"--build", "build"}},
		{Name: "stage", Command: "git", Args: []string{"add", HeaderFile}},
		{Name: "commit", Command: "git", Args: []string{"commit", "-m", CommitMessage(identifier)}},
		{Name: "tag", Command: "git", Args: []string{"tag", TagName(identifier)}},
	}
}
