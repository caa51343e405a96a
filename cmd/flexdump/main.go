// Package main provides flexdump, a small tool that computes the layout
// of YAML fixture files and prints the resulting geometry tree. With
// -check it also compares the results against the expectations embedded
// in each fixture and fails when they differ.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/go-flexkit/flexkit/pkg/fixture"
	"github.com/go-flexkit/flexkit/pkg/flexnode"
)

func main() {
	check := flag.Bool("check", false, "verify fixture expectations and fail on mismatch")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: flexdump [-check] fixture.yaml...\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	failed := false
	for _, path := range flag.Args() {
		if err := dump(path, *check); err != nil {
			fmt.Fprintf(os.Stderr, "flexdump: %s: %v\n", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func dump(path string, check bool) error {
	doc, err := fixture.Load(path)
	if err != nil {
		return err
	}
	root, cfg, err := doc.Run()
	if err != nil {
		return err
	}
	defer cfg.Destroy()

	fmt.Printf("%s:\n", path)
	printNode(root, 1)

	if check {
		mismatches := doc.Verify(root)
		for _, m := range mismatches {
			fmt.Fprintf(os.Stderr, "flexdump: %s: %s\n", path, m)
		}
		if len(mismatches) > 0 {
			return fmt.Errorf("%d expectation(s) failed", len(mismatches))
		}
	}
	return nil
}

func printNode(n *flexnode.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Printf("%s[%g %g %gx%g]\n", indent,
		n.LayoutLeft(), n.LayoutTop(), n.LayoutWidth(), n.LayoutHeight())
	for _, c := range n.Children() {
		printNode(c, depth+1)
	}
}
