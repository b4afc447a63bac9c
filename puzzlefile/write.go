// SPDX-License-Identifier: MIT
// Package: slitherlink/puzzlefile
//
// write.go — Write/WriteFile: puzzle.Puzzle → text, the layout Read accepts.
//
// Output:
//   - '#' headers before every section;
//   - the bitmap as NumParams binary digits, bit 0 rightmost;
//   - the solution column iff SolvedEdgePresent, coordinates iff
//     CoordsPresent, floats in shortest 'g' form so they read back exactly.

package puzzlefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/j-dobrzanski/Slitherlink/puzzle"
)

// Write serializes p to w. Positions are required only when p.Params carries
// puzzle.CoordsPresent (puzzle.ErrUnplaced otherwise).
func Write(w io.Writer, p *puzzle.Puzzle, opts ...Option) error {
	cfg := newConfig(opts...)
	var pts []puzzle.Point
	if p.Params.Has(puzzle.CoordsPresent) {
		var err error
		if pts, err = p.Positions(); err != nil {
			return fmt.Errorf("Write: %w", err)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# params")
	fmt.Fprintln(bw, bitmap(p.Params))
	fmt.Fprintln(bw, "# V")
	fmt.Fprintln(bw, p.NumVertices())
	fmt.Fprintln(bw, "# E")
	fmt.Fprintln(bw, p.NumEdges())
	fmt.Fprintln(bw, "# F")
	fmt.Fprintln(bw, p.NumFaces())

	fmt.Fprintln(bw, "# vertices: id n edges...")
	for _, v := range p.Vertices {
		fmt.Fprintf(bw, "%d %d%s\n", v.ID, len(v.EdgeIDs), joinInts(v.EdgeIDs))
	}

	solved := p.Params.Has(puzzle.SolvedEdgePresent)
	if solved {
		fmt.Fprintln(bw, "# edges: id v1 v2 f1 f2 solution")
	} else {
		fmt.Fprintln(bw, "# edges: id v1 v2 f1 f2")
	}
	for _, e := range p.Edges {
		fmt.Fprintf(bw, "%d %d %d %d %d", e.ID, e.Vertices[0], e.Vertices[1], e.Faces[0], e.Faces[1])
		if solved {
			s := 0
			if e.Solution {
				s = 1
			}
			fmt.Fprintf(bw, " %d", s)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintln(bw, "# faces: id clue n edges...")
	for _, f := range p.Faces {
		fmt.Fprintf(bw, "%d %d %d%s\n", f.ID, f.Clue, len(f.EdgeIDs), joinInts(f.EdgeIDs))
	}

	if p.Params.Has(puzzle.GridTypePresent) {
		fmt.Fprintln(bw, "# grid type")
		fmt.Fprintln(bw, p.GridType)
	}
	if pts != nil {
		fmt.Fprintln(bw, "# coordinates: id x y")
		for i, pt := range pts {
			fmt.Fprintf(bw, "%d %s %s\n", i,
				strconv.FormatFloat(pt.X, 'g', -1, 64),
				strconv.FormatFloat(pt.Y, 'g', -1, 64))
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	cfg.logger.Debug("puzzle written",
		zap.Int("vertices", p.NumVertices()),
		zap.Int("edges", p.NumEdges()),
		zap.Int("faces", p.NumFaces()),
		zap.Bool("coordinates", pts != nil))

	return nil
}

// WriteFile serializes p into the file at path, creating or truncating it.
// A path ending in ZstdExt is written zstd-compressed.
func WriteFile(path string, p *puzzle.Puzzle, opts ...Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("WriteFile: %w", cerr)
		}
	}()

	if !compressed(path) {
		return Write(f, p, opts...)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = Write(enc, p, opts...); err != nil {
		enc.Close()
		return err
	}
	if err = enc.Close(); err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}

	return nil
}

func compressed(path string) bool {
	return strings.HasSuffix(path, ZstdExt)
}

func bitmap(params puzzle.Params) string {
	var sb strings.Builder
	for i := puzzle.NumParams - 1; i >= 0; i-- {
		if params.Has(1 << i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

func joinInts(ids []int) string {
	var sb strings.Builder
	for _, id := range ids {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(id))
	}

	return sb.String()
}
