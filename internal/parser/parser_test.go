package parser

import (
	"strings"
	"testing"

	"github.com/s-nandi/point-location-2d/pkg/geom"
)

func TestParseOFFSquare(t *testing.T) {
	input := `OFF
# a unit square, one face
4 1 0
0 0
1 0
1 1
0 1
4 0 1 2 3
`
	points, faces, err := ParseOFF(strings.NewReader(input), DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(points))
	}
	if points[2] != (geom.Point{X: 1, Y: 1}) {
		t.Errorf("expected point 2 to be (1,1), got %v", points[2])
	}
	if len(faces) != 1 || len(faces[0]) != 4 {
		t.Fatalf("expected one 4-gon face, got %v", faces)
	}
}

func TestParseOFFRejectsBadHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"wrong word", "NOT_OFF\n0 0 0\n"},
		{"empty file", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseOFF(strings.NewReader(tt.input), DefaultParseOptions())
			if err == nil {
				t.Fatal("expected header error")
			}
			if _, ok := err.(*ErrIncorrectHeader); !ok {
				t.Errorf("expected *ErrIncorrectHeader, got %T", err)
			}
		})
	}
}

func TestParseOFFTruncated(t *testing.T) {
	input := "OFF\n3 1 0\n0 0\n1 0\n"
	_, _, err := ParseOFF(strings.NewReader(input), DefaultParseOptions())
	if _, ok := err.(*ErrTruncatedFile); !ok {
		t.Fatalf("expected *ErrTruncatedFile, got %v (%T)", err, err)
	}
}

func TestParsePTStopsAtEOF(t *testing.T) {
	input := "0 0\n1 0\n1 1\n"
	points, err := ParsePT(strings.NewReader(input), DefaultParseOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
}

func TestWriteOFFThenParseOFFRoundTrips(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	faces := [][]int{{0, 1, 2, 3}}

	var buf strings.Builder
	if err := WriteOFF(&buf, points, faces); err != nil {
		t.Fatalf("WriteOFF: %v", err)
	}

	gotPoints, gotFaces, err := ParseOFF(strings.NewReader(buf.String()), DefaultParseOptions())
	if err != nil {
		t.Fatalf("ParseOFF: %v", err)
	}
	for i, p := range points {
		if gotPoints[i] != p {
			t.Errorf("point %d: expected %v, got %v", i, p, gotPoints[i])
		}
	}
	if len(gotFaces) != 1 || len(gotFaces[0]) != 4 {
		t.Fatalf("expected round-tripped 4-gon face, got %v", gotFaces)
	}
}
