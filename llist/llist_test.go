package llist_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dslab-go/dslab/llist"
)

func TestList_InsertFront(t *testing.T) {
	require := require.New(t)
	l := llist.New()
	l.InsertFront(1)
	l.InsertFront(2)
	l.InsertFront(3)

	// Most recent insertion heads the list.
	require.Equal([]int{3, 2, 1}, l.Values())
	require.Equal(3, l.Count())
}

func TestList_DeleteFront(t *testing.T) {
	require := require.New(t)
	l := llist.New()
	l.InsertFront(1)
	l.InsertFront(2)

	v, err := l.DeleteFront()
	require.NoError(err)
	require.Equal(2, v)
	require.Equal([]int{1}, l.Values())

	v, err = l.DeleteFront()
	require.NoError(err)
	require.Equal(1, v)

	_, err = l.DeleteFront()
	require.ErrorIs(err, llist.ErrEmpty)
}

func TestList_DeleteLast(t *testing.T) {
	require := require.New(t)
	l := llist.New()
	l.InsertFront(1)
	l.InsertFront(2)
	l.InsertFront(3)

	v, err := l.DeleteLast()
	require.NoError(err)
	require.Equal(1, v)
	require.Equal([]int{3, 2}, l.Values())

	// Single-node case.
	_, _ = l.DeleteLast()
	v, err = l.DeleteLast()
	require.NoError(err)
	require.Equal(3, v)
	require.Equal(0, l.Count())

	_, err = l.DeleteLast()
	require.ErrorIs(err, llist.ErrEmpty)
}

func TestList_Search(t *testing.T) {
	require := require.New(t)
	l := llist.New()
	require.False(l.Search(5))

	l.InsertFront(5)
	l.InsertFront(8)
	require.True(l.Search(5))
	require.True(l.Search(8))
	require.False(l.Search(13))
}

func TestList_ValuesReverse(t *testing.T) {
	require := require.New(t)
	l := llist.New()
	require.Empty(l.ValuesReverse())

	l.InsertFront(1)
	l.InsertFront(2)
	l.InsertFront(3)
	require.Equal([]int{1, 2, 3}, l.ValuesReverse())
}

func TestList_String(t *testing.T) {
	require := require.New(t)
	l := llist.New()
	require.Equal("", l.String())

	l.InsertFront(10)
	l.InsertFront(20)
	require.Equal("20 10", l.String())
}

func TestList_ZeroValueUsable(t *testing.T) {
	require := require.New(t)
	var l llist.List
	require.Equal(0, l.Count())
	l.InsertFront(4)
	require.Equal([]int{4}, l.Values())
}
