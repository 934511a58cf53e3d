// Command upgma clusters a YAML distance table with UPGMA and prints the
// resulting tree in nested (value, left, right) form.
//
//	upgma [-normalize h] [-scale f] [-linkage] [-k n] dataset.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/TrevorS/upgma"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("upgma", flag.ContinueOnError)
	fs.SetOutput(stderr)
	normalize := fs.Float64("normalize", 0, "rescale the tree so the root height equals this value (0 = off)")
	scale := fs.Float64("scale", 1, "multiply every merge height by this factor")
	showLinkage := fs.Bool("linkage", false, "print the scipy-format linkage table")
	k := fs.Int("k", 0, "also print flat cluster labels for k clusters (0 = off)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: upgma [flags] dataset.yaml")
		return 2
	}
	if *normalize < 0 {
		fmt.Fprintln(stderr, "Error: -normalize must be >= 0")
		return 1
	}
	if *k < 0 {
		fmt.Fprintln(stderr, "Error: -k must be >= 0")
		return 1
	}

	ds, err := upgma.ReadDatasetFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	leaves, dm, err := ds.Build()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	result, err := upgma.Cluster(leaves, dm)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	root := result.Root
	if *normalize > 0 && result.Merges > 0 {
		if root, err = root.NormalizeTo(*normalize); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	if *scale != 1 {
		root = root.Scale(*scale)
	}
	fmt.Fprintln(stdout, root)

	if *showLinkage {
		fmt.Fprintln(stdout, renderLinkage(result.Linkage))
	}
	if *k > 0 {
		labels, err := upgma.CutTree(result.Linkage, result.Sizes, *k)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		for i, l := range labels {
			fmt.Fprintf(stdout, "%s\t%d\n", ds.Taxa[i], l)
		}
	}
	return 0
}

func renderLinkage(linkage [][4]float64) string {
	var b strings.Builder
	b.WriteString("left\tright\tdistance\tsize")
	for _, row := range linkage {
		fmt.Fprintf(&b, "\n%d\t%d\t%g\t%d", int(row[0]), int(row[1]), row[2], int(row[3]))
	}
	return b.String()
}
