// Command helpers inspects, merges and type-checks structured documents.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/helpers/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "helpers:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
