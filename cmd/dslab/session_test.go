package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// script joins menu answers into stdin form, one per line.
func script(answers ...string) *strings.Reader {
	return strings.NewReader(strings.Join(answers, "\n") + "\n")
}

func TestGraphMenu_FullSession(t *testing.T) {
	require := require.New(t)
	in := script(
		"3", // vertices
		"1", "0", "1", "4", // add 0->1 w4
		"1", "0", "2", "1", // add 0->2 w1
		"1", "2", "1", "1", // add 2->1 w1
		"3",      // display
		"4", "0", // BFS from 0
		"6", "0", // Dijkstra from 0
		"2", "0", "9", // remove with invalid vertex
		"0", // exit
	)
	var out bytes.Buffer

	require.NoError(newSession(in, &out).graphMenu())

	got := out.String()
	require.Contains(got, "Graph created successfully with 3 vertices")
	require.Contains(got, "Edge added: 0 -> 1 (weight: 4)")
	require.Contains(got, "Vertex 0: -> 2(w:1) -> 1(w:4)")
	require.Contains(got, "Visit order: 0 2 1")
	require.Contains(got, "1\t\t2\n") // dijkstra: vertex 1 at distance 2
	require.Contains(got, "Error: graph: vertex out of range")
	require.Contains(got, "Graph memory freed successfully")
}

func TestGraphMenu_RetriesBadVertexCount(t *testing.T) {
	require := require.New(t)
	in := script("0", "2", "0")
	var out bytes.Buffer

	require.NoError(newSession(in, &out).graphMenu())

	got := out.String()
	require.Contains(got, "Error: graph: number of vertices must be positive")
	require.Contains(got, "Graph created successfully with 2 vertices")
}

func TestGraphMenu_EOFExits(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, newSession(strings.NewReader(""), &out).graphMenu())
}

func TestListMenu_FullSession(t *testing.T) {
	require := require.New(t)
	in := script(
		"1", "5", // insert 5
		"1", "7", // insert 7
		"4",      // display
		"5", "7", // search 7
		"2", // delete front
		"6", // count
		"2", // delete front (5)
		"2", // delete from empty
		"0",
	)
	var out bytes.Buffer

	require.NoError(newSession(in, &out).listMenu())

	got := out.String()
	require.Contains(got, "7 5")
	require.Contains(got, "Value Successfully Found")
	require.Contains(got, "Value 7 has been Deleted")
	require.Contains(got, "Number of Nodes: 1")
	require.Contains(got, "Linked List is Empty")
}

func TestBSTMenu_FullSession(t *testing.T) {
	require := require.New(t)
	in := script(
		"1", "50",
		"1", "30",
		"1", "70",
		"3",       // inorder
		"2", "99", // delete absent
		"2", "30", // delete present
		"6", // count
		"0",
	)
	var out bytes.Buffer

	require.NoError(newSession(in, &out).bstMenu())

	got := out.String()
	require.Contains(got, "30 50 70")
	require.Contains(got, "NODE NOT FOUND")
	require.Contains(got, "Value 30 has been Deleted")
	require.Contains(got, "Number of Nodes: 2")
}

func TestSession_NonNumericInputReprompts(t *testing.T) {
	require := require.New(t)
	in := script("abc", "42")
	var out bytes.Buffer

	n, ok := newSession(in, &out).readInt("n: ")
	require.True(ok)
	require.Equal(42, n)
	require.Contains(out.String(), "Please enter a number")
}
