// Command dslab drives the repository's data structures through
// interactive text menus: a weighted directed graph with traversals and
// shortest paths, a singly linked list, and a binary search tree.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
