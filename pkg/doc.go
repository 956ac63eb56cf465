// Package makeversion provides a library for stamping a release version into a
// generated C header and publishing it through git.
//
// It provides functionalities for:
//   - Quoting arbitrary strings as C string literals (embedded double quotes are escaped).
//   - Rendering version.h with an include guard, a VERSION macro and a VERSION_DATE macro.
//   - Running the release sequence: cmake build, git add, git commit with the message
//     "Bump Version: <version>", and git tag "r<version>".
//
// The external commands are fire-and-forget. Their results are recorded in the
// returned VersionMeta but never stop the sequence or change the outcome. Only a
// failure to write the header is reported as an error.
//
// Usage Example:
//
//	import (
//	    "log"
//	    "github.com/bcomnes/makeversion/pkg"
//	)
//
//	func main() {
//	    runner := makeversion.NewRunner(".")
//	    if _, err := runner.Run("1.4.0"); err != nil {
//	        log.Fatalf("make-version failed: %v", err)
//	    }
//	}
package makeversion
