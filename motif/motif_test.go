// Package motif_test verifies the edge sets produced by every shape.
package motif_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motifnet/motif"
)

// TestShapes_Functional runs table-driven checks of each shape over a
// non-trivial vertex tuple so that index/identity mix-ups show up.
func TestShapes_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		b     motif.Builder
		tuple []int
		want  []motif.Pair
	}{
		{
			name:  "Clique(2)",
			b:     motif.Clique(2),
			tuple: []int{7, 3},
			want:  []motif.Pair{{7, 3}},
		},
		{
			name:  "Clique(3)",
			b:     motif.Clique(3),
			tuple: []int{10, 11, 12},
			want:  []motif.Pair{{10, 11}, {10, 12}, {11, 12}},
		},
		{
			name:  "Cycle(4)",
			b:     motif.Cycle(4),
			tuple: []int{4, 5, 6, 7},
			want:  []motif.Pair{{4, 5}, {5, 6}, {6, 7}, {7, 4}},
		},
		{
			name:  "Diamond",
			b:     motif.Diamond(),
			tuple: []int{0, 1, 2, 3},
			want:  []motif.Pair{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {1, 3}},
		},
		{
			name:  "Path(3)",
			b:     motif.Path(3),
			tuple: []int{9, 8, 7},
			want:  []motif.Pair{{9, 8}, {8, 7}},
		},
		{
			name:  "Star(4)",
			b:     motif.Star(4),
			tuple: []int{1, 2, 3, 4},
			want:  []motif.Pair{{1, 2}, {1, 3}, {1, 4}},
		},
		{
			name:  "Wheel(5)",
			b:     motif.Wheel(5),
			tuple: []int{0, 1, 2, 3, 4},
			want: []motif.Pair{
				{1, 2}, {2, 3}, {3, 4}, {4, 1},
				{0, 1}, {0, 2}, {0, 3}, {0, 4},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, len(tc.tuple), tc.b.Size())
			got, err := tc.b.Build(tc.tuple)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.NoError(t, motif.Validate(tc.b))
		})
	}
}

func TestShapes_Errors(t *testing.T) {
	t.Parallel()

	_, err := motif.Clique(3).Build([]int{1, 2})
	require.ErrorIs(t, err, motif.ErrVertexCount)

	_, err = motif.Cycle(2).Build([]int{1, 2})
	require.ErrorIs(t, err, motif.ErrTooFewVertices)

	_, err = motif.Wheel(3).Build([]int{1, 2, 3})
	require.ErrorIs(t, err, motif.ErrTooFewVertices)

	require.ErrorIs(t, motif.Validate(nil), motif.ErrNilBuilder)
	require.ErrorIs(t, motif.Validate(motif.Func(2, nil)), motif.ErrNilBuilder)
	require.ErrorIs(t, motif.Validate(motif.Clique(1)), motif.ErrTooFewVertices)
}

func TestFunc(t *testing.T) {
	t.Parallel()

	// A "cherry": two edges hanging off the middle vertex.
	cherry := motif.Func(3, func(v []int) []motif.Pair {
		return []motif.Pair{{v[1], v[0]}, {v[1], v[2]}}
	})
	got, err := cherry.Build([]int{5, 6, 7})
	require.NoError(t, err)
	require.Equal(t, []motif.Pair{{6, 5}, {6, 7}}, got)

	_, err = cherry.Build([]int{5, 6})
	require.ErrorIs(t, err, motif.ErrVertexCount)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	b, err := motif.Lookup(" Clique ", 3)
	require.NoError(t, err)
	require.Equal(t, 3, b.Size())

	b, err = motif.Lookup("diamond", 4)
	require.NoError(t, err)
	require.Equal(t, 4, b.Size())

	_, err = motif.Lookup("diamond", 5)
	require.ErrorIs(t, err, motif.ErrVertexCount)

	_, err = motif.Lookup("hexagram", 6)
	require.ErrorIs(t, err, motif.ErrUnknownMotif)

	_, err = motif.Lookup("cycle", 2)
	require.ErrorIs(t, err, motif.ErrTooFewVertices)

	require.Equal(t, []string{"clique", "cycle", "diamond", "path", "star", "wheel"}, motif.Names())
}
