package decode_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/jumpmaze/decode"
	"github.com/katalvlaran/jumpmaze/modegraph"
)

func o(i int) modegraph.Vertex { return modegraph.Vertex{Index: i, Mode: modegraph.Orthogonal} }
func d(i int) modegraph.Vertex { return modegraph.Vertex{Index: i, Mode: modegraph.Diagonal} }

func TestPath(t *testing.T) {
	cases := []struct {
		name string
		path []modegraph.Vertex
		cols int
		want []decode.Coord
	}{
		{
			name: "GoalLinkDeduplicated",
			path: []modegraph.Vertex{o(0), o(2), o(3), d(3)},
			cols: 2,
			want: []decode.Coord{{1, 1}, {2, 1}, {2, 2}},
		},
		{
			name: "ArrivedDiagonally",
			path: []modegraph.Vertex{o(0), d(4), d(8)},
			cols: 3,
			want: []decode.Coord{{1, 1}, {2, 2}, {3, 3}},
		},
		{
			name: "SingleCell",
			path: []modegraph.Vertex{o(0)},
			cols: 1,
			want: []decode.Coord{{1, 1}},
		},
		{
			name: "SingleRow",
			path: []modegraph.Vertex{o(0), o(2), o(3), d(3)},
			cols: 4,
			want: []decode.Coord{{1, 1}, {1, 3}, {1, 4}},
		},
		{
			name: "ModeSwitchMidPathKept",
			path: []modegraph.Vertex{o(0), d(4), o(1), o(4), d(4), o(8), d(8)},
			cols: 3,
			want: []decode.Coord{{1, 1}, {2, 2}, {1, 2}, {2, 2}, {3, 3}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decode.Path(tc.path, tc.cols)
			if err != nil {
				t.Fatalf("Path error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Path mismatch (-want +got):\n%s", diff)
			}
			for i := 1; i < len(got); i++ {
				if got[i] == got[i-1] {
					t.Errorf("consecutive duplicate %v at %d", got[i], i)
				}
			}
		})
	}
}

func TestPath_Errors(t *testing.T) {
	if _, err := decode.Path(nil, 3); !errors.Is(err, decode.ErrEmptyPath) {
		t.Errorf("nil path: want ErrEmptyPath, got %v", err)
	}
	if _, err := decode.Path([]modegraph.Vertex{}, 3); !errors.Is(err, decode.ErrEmptyPath) {
		t.Errorf("empty path: want ErrEmptyPath, got %v", err)
	}
	if _, err := decode.Path([]modegraph.Vertex{o(0)}, 0); !errors.Is(err, decode.ErrBadColumns) {
		t.Errorf("zero cols: want ErrBadColumns, got %v", err)
	}
}

func TestFormat(t *testing.T) {
	if got := decode.Format(nil); got != "" {
		t.Errorf("Format(nil) = %q; want empty", got)
	}
	got := decode.Format([]decode.Coord{{1, 1}, {2, 1}, {2, 2}})
	if want := "(1,1) (2,1) (2,2)"; got != want {
		t.Errorf("Format = %q; want %q", got, want)
	}
	if got := decode.At(63, 8).String(); got != "(8,8)" {
		t.Errorf("At(63,8) = %s; want (8,8)", got)
	}
}
