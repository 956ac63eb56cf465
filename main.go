// Package main implements a CLI tool that writes version.h for a release,
// builds, and commits and tags the result with git.
package main

import (
	"fmt"
	"io"
	"os"

	makeversion "github.com/bcomnes/makeversion/pkg"
	"github.com/spf13/cobra"
)

const usageLine = "Usage: make-version version"

func newRootCmd(runner *makeversion.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "make-version version",
		Short: "Stamp version.h, build, then commit and tag the release",
		Long: `make-version writes version.h with VERSION and VERSION_DATE macros, runs
"cmake --build build", stages version.h, commits it as "Bump Version: <version>"
and tags the commit "r<version>". Build and git failures do not stop the sequence.`,
		// Every argument is the version, including ones that look like flags.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		Args:               cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runner.Run(args[0])
			return err
		},
	}
}

// execute runs cmd with args and maps the outcome to a process exit code.
func execute(cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stdout, usageLine)
		return 1
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	var err error
	switch args[0] {
	case cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		// Execute would dispatch these to cobra's completion handler.
		err = cmd.RunE(cmd, args)
	default:
		err = cmd.Execute()
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

func run(args []string, stdout, stderr io.Writer) int {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	runner := makeversion.NewRunner(dir)
	runner.Commander = makeversion.ExecCommander{Dir: dir, Stdout: stdout, Stderr: stderr}
	return execute(newRootCmd(runner), args, stdout, stderr)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
