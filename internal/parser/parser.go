// Package parser reads and writes the two plain-text point-set formats
// by subdivision and triangulation construction: OFF (points plus face list) and PT
// (one point per line, count implied by EOF).
package parser

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/s-nandi/point-location-2d/pkg/geom"
)

// ParseOptions configures ParseOFF and ParsePT.
type ParseOptions struct {
	// SkipBlankAndComments, if true, ignores empty lines and lines
	// starting with '#' wherever they appear in the input.
	SkipBlankAndComments bool
}

// DefaultParseOptions returns the options used by subdivision.InitFromOFF
// and triangulation.BuildFromPT: blank lines and '#' comments are skipped
// everywhere.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{SkipBlankAndComments: true}
}

type lineScanner struct {
	sc   *bufio.Scanner
	opts ParseOptions
}

func newLineScanner(r io.Reader, opts ParseOptions) *lineScanner {
	return &lineScanner{sc: bufio.NewScanner(r), opts: opts}
}

// next returns the next significant line, or ok=false at EOF.
func (ls *lineScanner) next() (string, bool) {
	for ls.sc.Scan() {
		line := ls.sc.Text()
		trimmed := strings.TrimSpace(line)
		if ls.opts.SkipBlankAndComments && (trimmed == "" || strings.HasPrefix(trimmed, "#")) {
			continue
		}
		return line, true
	}
	return "", false
}

func parsePoint(line string) (geom.Point, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return geom.Point{}, &ErrMalformedLine{Stage: "point", Line: line}
	}
	x, errX := strconv.ParseFloat(fields[0], 64)
	y, errY := strconv.ParseFloat(fields[1], 64)
	if errX != nil || errY != nil {
		return geom.Point{}, &ErrMalformedLine{Stage: "point", Line: line}
	}
	return geom.Point{X: x, Y: y}, nil
}

// ParseOFF reads the OFF format: a literal "OFF" header, a line giving
// vertex/face/edge counts (the edge count is accepted but unused, as in
// the reference format), that many vertex lines, then that many face
// lines. Each face line is a count n followed by n 0-indexed vertex
// indices in CCW order. Vertices are labelled in the order they appear.
func ParseOFF(r io.Reader, opts ParseOptions) ([]geom.Point, [][]int, error) {
	ls := newLineScanner(r, opts)

	header, ok := ls.next()
	if !ok {
		return nil, nil, &ErrIncorrectHeader{Got: ""}
	}
	if strings.TrimSpace(header) != "OFF" {
		return nil, nil, &ErrIncorrectHeader{Got: header}
	}

	countsLine, ok := ls.next()
	if !ok {
		return nil, nil, &ErrMalformedLine{Stage: "counts", Line: ""}
	}
	fields := strings.Fields(countsLine)
	if len(fields) < 2 {
		return nil, nil, &ErrMalformedLine{Stage: "counts", Line: countsLine}
	}
	numPoints, errP := strconv.Atoi(fields[0])
	numFaces, errF := strconv.Atoi(fields[1])
	if errP != nil || errF != nil {
		return nil, nil, &ErrMalformedLine{Stage: "counts", Line: countsLine}
	}

	points := make([]geom.Point, 0, numPoints)
	for len(points) < numPoints {
		line, ok := ls.next()
		if !ok {
			return nil, nil, &ErrTruncatedFile{Stage: "vertices", Expected: numPoints, Got: len(points)}
		}
		p, err := parsePoint(line)
		if err != nil {
			return nil, nil, err
		}
		points = append(points, p)
	}

	faces := make([][]int, 0, numFaces)
	for len(faces) < numFaces {
		line, ok := ls.next()
		if !ok {
			return nil, nil, &ErrTruncatedFile{Stage: "faces", Expected: numFaces, Got: len(faces)}
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return nil, nil, &ErrMalformedLine{Stage: "face", Line: line}
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || len(fields) < n+1 {
			return nil, nil, &ErrMalformedLine{Stage: "face", Line: line}
		}
		face := make([]int, n)
		for i := 0; i < n; i++ {
			idx, err := strconv.Atoi(fields[i+1])
			if err != nil {
				return nil, nil, &ErrMalformedLine{Stage: "face", Line: line}
			}
			face[i] = idx
		}
		faces = append(faces, face)
	}

	return points, faces, nil
}

// ParsePT reads a PT file: one point per remaining line, with no
// declared count; reading stops at EOF.
func ParsePT(r io.Reader, opts ParseOptions) ([]geom.Point, error) {
	ls := newLineScanner(r, opts)
	var points []geom.Point
	for {
		line, ok := ls.next()
		if !ok {
			return points, nil
		}
		p, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
}

// WriteOFF writes points and faces back out in OFF format, with the edge
// count field set to 0 (ParseOFF never reads it).
func WriteOFF(w io.Writer, points []geom.Point, faces [][]int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "OFF"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "%d %d 0\n", len(points), len(faces)); err != nil {
		return err
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%g %g\n", p.X, p.Y); err != nil {
			return err
		}
	}
	for _, face := range faces {
		if _, err := fmt.Fprintf(bw, "%d", len(face)); err != nil {
			return err
		}
		for _, idx := range face {
			if _, err := fmt.Fprintf(bw, " %d", idx); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}
