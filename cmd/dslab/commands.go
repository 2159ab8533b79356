package main

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "dslab",
		Short: "Interactive playground for classic in-memory data structures",
		Long: `dslab drives three classic data structures through numbered text menus:
a directed weighted graph (with BFS, DFS, and Dijkstra's shortest paths),
a singly linked list, and a binary search tree.`,
	}

	graphCmd = &cobra.Command{
		Use:   "graph",
		Short: "Build a graph and run traversals and shortest paths",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newSession(cmd.InOrStdin(), cmd.OutOrStdout()).graphMenu()
		},
	}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Manipulate a singly linked list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newSession(cmd.InOrStdin(), cmd.OutOrStdout()).listMenu()
		},
	}

	bstCmd = &cobra.Command{
		Use:   "bst",
		Short: "Manipulate a binary search tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newSession(cmd.InOrStdin(), cmd.OutOrStdout()).bstMenu()
		},
	}
)

func init() {
	rootCmd.AddCommand(graphCmd, listCmd, bstCmd)
}
