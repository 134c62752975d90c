package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hexpath/searchgraph"
)

func newGraphCmd(a *app) *cobra.Command {
	var neighbors bool
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the search graph built from the tile map",
		Long: `graph prints node and edge counts, the connected regions of traversable
cells and, with --neighbors, every node's neighbor list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.graph(cmd.OutOrStdout(), neighbors)
		},
	}
	cmd.Flags().BoolVar(&neighbors, "neighbors", false, "list each node's neighbors")

	return cmd
}

func (a *app) graph(out io.Writer, neighbors bool) error {
	tiles, err := a.loadGrid()
	if err != nil {
		return err
	}
	g := searchgraph.Build(tiles)
	regions := g.Regions()
	sort.SliceStable(regions, func(i, j int) bool { return len(regions[i]) > len(regions[j]) })

	fmt.Fprintf(out, "nodes=%d edges=%d regions=%d\n", g.Len(), g.EdgeCount(), len(regions))
	for i, r := range regions {
		fmt.Fprintf(out, "region %d: %d cells from %s\n", i, len(r), g.Cell(r[0]))
	}
	if !neighbors {
		return nil
	}

	for _, id := range g.Nodes() {
		cell := g.Cell(id)
		fmt.Fprintf(out, "%s w=%d ->", cell, cell.Weight)
		for _, nb := range g.Neighbors(id) {
			fmt.Fprintf(out, " %s", g.Cell(nb))
		}
		fmt.Fprintln(out)
	}

	return nil
}
