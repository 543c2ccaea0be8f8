package sct

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternAndResolve(t *testing.T) {
	tbl := New(64)

	idx1, known1, err := tbl.Intern([]byte("position-3d:1,2,3"))
	require.NoError(t, err)
	require.False(t, known1)
	require.Equal(t, uint32(0), idx1)

	idx2, known2, err := tbl.Intern([]byte("position-3d:1,2,3"))
	require.NoError(t, err)
	require.True(t, known2)
	require.Equal(t, idx1, idx2)

	idx3, known3, err := tbl.Intern([]byte("position-3d:4,5,6"))
	require.NoError(t, err)
	require.False(t, known3)
	require.NotEqual(t, idx1, idx3)

	got, ok := tbl.Resolve(idx1)
	require.True(t, ok)
	require.Equal(t, []byte("position-3d:1,2,3"), got)

	_, ok = tbl.Resolve(999)
	require.False(t, ok)
}

func TestTableFull(t *testing.T) {
	tbl := New(2)
	_, _, err := tbl.Intern([]byte("a"))
	require.NoError(t, err)
	_, _, err = tbl.Intern([]byte("b"))
	require.NoError(t, err)
	_, _, err = tbl.Intern([]byte("c"))
	require.Error(t, err)
	var full *ErrFull
	require.ErrorAs(t, err, &full)
}
