//go:build ignore

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/samzong/gma-cli/cmd"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func main() {
	dir := "./docs/man"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory: %v\n", err)
		os.Exit(1)
	}

	for _, root := range []*cobra.Command{cmd.RootCmd(), cmd.BranchRootCmd()} {
		root.DisableAutoGenTag = true
		header := &doc.GenManHeader{
			Title:   strings.ToUpper(root.Name()),
			Section: "1",
			Source:  "gma-cli",
			Manual:  "gma-cli Manual",
		}
		if err := doc.GenManTree(root, header, dir); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating man pages for %s: %v\n", root.Name(), err)
			os.Exit(1)
		}
	}

	fmt.Fprintf(os.Stderr, "Man pages generated in %s\n", dir)
}
