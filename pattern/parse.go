// SPDX-License-Identifier: MIT

package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jbeda/geom"
)

type section int

const (
	sectionNone section = iota
	sectionNodes
	sectionCreases
)

// Parse reads a .creasepattern stream. A line containing "begin nodes" or
// "begin creases" opens that section; any other line containing "begin"
// closes the current one. Node lines are "x y", crease lines "a b [tag]".
// Blank lines and lines starting with '#' are ignored.
func Parse(r io.Reader) (*Pattern, error) {
	var (
		positions []geom.Coord
		pairs     [][2]int
		kinds     []Kind
		sec       = sectionNone
		lineNo    int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Contains(line, "begin") {
			switch {
			case strings.Contains(line, "begin nodes"):
				sec = sectionNodes
			case strings.Contains(line, "begin creases"):
				sec = sectionCreases
			default:
				sec = sectionNone
			}
			continue
		}

		fields := strings.Fields(line)
		switch sec {
		case sectionNodes:
			pos, err := parseNode(fields)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
			}
			positions = append(positions, pos)
		case sectionCreases:
			pr, kind, err := parseCrease(fields)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
			}
			pairs = append(pairs, pr)
			kinds = append(kinds, kind)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pattern: read: %w", err)
	}

	return New(positions, pairs, kinds)
}

func parseNode(fields []string) (geom.Coord, error) {
	if len(fields) < 2 {
		return geom.Coord{}, fmt.Errorf("node needs 2 coordinates, got %d fields", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geom.Coord{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom.Coord{}, err
	}
	return geom.Coord{X: x, Y: y}, nil
}

func parseCrease(fields []string) ([2]int, Kind, error) {
	if len(fields) < 2 {
		return [2]int{}, Unassigned, fmt.Errorf("crease needs 2 node ids, got %d fields", len(fields))
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return [2]int{}, Unassigned, err
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return [2]int{}, Unassigned, err
	}
	kind := Unassigned
	if len(fields) > 2 {
		if kind, err = ParseKind(strings.Join(fields[2:], " ")); err != nil {
			return [2]int{}, Unassigned, err
		}
	}
	return [2]int{a, b}, kind, nil
}

// ParseTriangles reads one triangle per line as three node ids, the way an
// external triangulator lists its elements. Extra fields after the third id
// are ignored; blank lines and lines starting with '#' are skipped.
func ParseTriangles(r io.Reader) ([]Triangle, error) {
	var (
		tris   []Triangle
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: line %d: triangle needs 3 node ids, got %d fields", ErrSyntax, lineNo, len(fields))
		}
		var t Triangle
		for k := 0; k < 3; k++ {
			id, err := strconv.Atoi(fields[k])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
			}
			t[k] = id
		}
		tris = append(tris, t)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pattern: read: %w", err)
	}
	return tris, nil
}
