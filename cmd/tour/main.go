// Command tour is an interactive, keyboard-driven walk over a quad-edge
// subdivision: single-letter commands navigate the current edge via the
// Rot/InvRot/Twin/Onext/Oprev/Fnext/Fprev algebra, mark two edges for a
// connect-and-join, or delete a marked edge.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/s-nandi/point-location-2d/pkg/quadedge"
	"github.com/s-nandi/point-location-2d/pkg/subdivision"
)

func main() {
	boxFlag := flag.Float64("box", 10, "half-width of the initial square bounding box")
	flag.Parse()

	s := subdivision.New()
	if _, err := s.InitBoundingBox(subdivision.Box{Left: -*boxFlag, Bottom: -*boxFlag, Right: *boxFlag, Top: *boxFlag}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	t := &tour{
		s:       s,
		current: s.IncidentEdge(),
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
	}
	t.printHelp()
	t.printCurrent()
	if err := t.run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type tour struct {
	s       *subdivision.Subdivision
	current *quadedge.Edge
	marked  [2]*quadedge.Edge
	in      *bufio.Scanner
	out     *os.File
}

func (t *tour) run() error {
	for {
		fmt.Fprint(t.out, "> ")
		if !t.in.Scan() {
			return t.in.Err()
		}
		line := strings.TrimSpace(t.in.Text())
		if line == "" {
			continue
		}
		cmd := strings.ToUpper(line[:1])
		switch cmd {
		case "T":
			t.current = t.current.Twin()
			t.printCurrent()
		case "R":
			t.current = t.current.Rot()
			t.printCurrent()
		case "I":
			t.current = t.current.InvRot()
			t.printCurrent()
		case "F":
			t.current = t.current.Fnext()
			t.printCurrent()
		case "B":
			t.current = t.current.Fprev()
			t.printCurrent()
		case "O":
			t.current = t.current.Onext()
			t.printCurrent()
		case "P":
			t.current = t.current.Oprev()
			t.printCurrent()
		case "S":
			t.current = t.s.IncidentEdge()
			fmt.Fprintln(t.out, "reset to incident edge")
			t.printCurrent()
		case "1":
			t.marked[0] = t.current
			fmt.Fprintln(t.out, "marked edge 1 at the current edge")
		case "2":
			t.marked[1] = t.current
			fmt.Fprintln(t.out, "marked edge 2 at the current edge")
		case "J":
			t.join()
		case "D":
			t.deleteMarked()
		case "C":
			fmt.Fprint(t.out, "\033[H\033[2J")
		case "H":
			t.printHelp()
		case "E":
			return nil
		default:
			fmt.Fprintf(t.out, "unrecognized command %q; press H for help\n", line)
		}
	}
}

func (t *tour) join() {
	if t.marked[0] == nil || t.marked[1] == nil {
		fmt.Fprintln(t.out, "both edge 1 and edge 2 must be marked before J")
		return
	}
	fmt.Fprint(t.out, "face label for the new left face: ")
	if !t.in.Scan() {
		return
	}
	label, err := strconv.Atoi(strings.TrimSpace(t.in.Text()))
	if err != nil {
		fmt.Fprintln(t.out, "expected an integer face label")
		return
	}
	e, err := quadedge.Connect(t.marked[0], t.marked[1], label)
	if err != nil {
		fmt.Fprintln(t.out, err)
		return
	}
	t.current = e
	fmt.Fprintln(t.out, "connected edge 1 to edge 2")
	t.printCurrent()
}

func (t *tour) deleteMarked() {
	victim := t.marked[0]
	if victim == nil {
		fmt.Fprintln(t.out, "no edge marked as edge 1; nothing to delete")
		return
	}
	if victim == t.current {
		fmt.Fprintln(t.out, "cannot delete the current edge; navigate away first")
		return
	}
	if victim == t.s.IncidentEdge() {
		fmt.Fprintln(t.out, "cannot delete the subdivision's incident edge")
		return
	}
	quadedge.DeleteEdge(victim)
	t.marked[0] = nil
	fmt.Fprintln(t.out, "deleted edge 1")
}

func (t *tour) printCurrent() {
	origin := t.current.OriginPosition()
	dest := t.current.DestPosition()
	fmt.Fprintf(t.out, "edge: (%.3g,%.3g) -> (%.3g,%.3g)  leftFace=%d rightFace=%d\n",
		origin.X, origin.Y, dest.X, dest.Y, t.current.LeftFace().Label(), t.current.RightFace().Label())
}

func (t *tour) printHelp() {
	fmt.Fprintln(t.out, `commands (case-insensitive):
  T  twin            R  rot             I  invrot
  F  fnext           B  fprev
  O  onext           P  oprev
  S  reset to incident edge
  1  mark edge 1 at current   2  mark edge 2 at current
  J  connect(edge1, edge2), prompts for a face label
  D  delete marked edge 1 (must not be current or incident edge)
  C  clear screen     H  help     E  exit`)
}
