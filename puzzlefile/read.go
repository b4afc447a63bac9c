// SPDX-License-Identifier: MIT
// Package: slitherlink/puzzlefile
//
// read.go — Read/ReadFile: records → puzzle.Puzzle.
//
// Steps:
//   - participle splits the input into numeric records (comments elided);
//   - a cursor walks the records section by section, as dictated by the
//     params bitmap;
//   - the resulting puzzle passes puzzle.CheckReferences.

package puzzlefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"

	"github.com/j-dobrzanski/Slitherlink/puzzle"
)

// Read parses one puzzle from r.
func Read(r io.Reader, opts ...Option) (*puzzle.Puzzle, error) {
	return read("", r, newConfig(opts...))
}

// ReadFile parses the puzzle stored at path. A path ending in ZstdExt is
// decompressed on the fly.
func ReadFile(path string, opts ...Option) (*puzzle.Puzzle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	if !compressed(path) {
		return read(path, f, newConfig(opts...))
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer dec.Close()

	return read(path, dec, newConfig(opts...))
}

func read(name string, r io.Reader, cfg config) (*puzzle.Puzzle, error) {
	doc, err := parseDocument.Parse(name, r)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("line %d: %s: %w", perr.Position().Line, perr.Message(), ErrSyntax)
		}
		return nil, fmt.Errorf("%v: %w", err, ErrSyntax)
	}

	c := &cursor{records: doc.Records}
	p, err := c.build(cfg.logger)
	if err != nil {
		return nil, err
	}
	if err = p.CheckReferences(); err != nil {
		return nil, err
	}

	return p, nil
}

// cursor hands out records in order and converts their fields.
type cursor struct {
	records []*record
	next    int
	line    int // line of the last record handed out
}

func (c *cursor) take(section string, arity ...int) (*record, error) {
	if c.next >= len(c.records) {
		return nil, fmt.Errorf("after line %d: %s expected: %w", c.line, section, ErrTruncated)
	}
	rec := c.records[c.next]
	c.next++
	c.line = rec.Pos.Line
	for _, n := range arity {
		if len(rec.Fields) == n {
			return rec, nil
		}
	}
	if len(arity) > 0 {
		return nil, fmt.Errorf("line %d: %s: %d fields, want %v: %w", c.line, section, len(rec.Fields), arity, ErrSyntax)
	}

	return rec, nil
}

func (c *cursor) integer(field string) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("line %d: %q is not an integer: %w", c.line, field, ErrSyntax)
	}

	return v, nil
}

func (c *cursor) ints(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := c.integer(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func (c *cursor) number(field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %q is not a number: %w", c.line, field, ErrSyntax)
	}

	return v, nil
}

func (c *cursor) count(section string) (int, error) {
	rec, err := c.take(section, 1)
	if err != nil {
		return 0, err
	}
	n, err := c.integer(rec.Fields[0])
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("line %d: %s %d is negative: %w", c.line, section, n, ErrSyntax)
	}

	return n, nil
}

func (c *cursor) checkID(kind string, got, want int) error {
	if got != want {
		return fmt.Errorf("line %d: %s id %d at position %d: %w", c.line, kind, got, want, ErrIDMismatch)
	}

	return nil
}

func (c *cursor) build(logger *zap.Logger) (*puzzle.Puzzle, error) {
	params, err := c.params()
	if err != nil {
		return nil, err
	}
	nv, err := c.count("vertex count")
	if err != nil {
		return nil, err
	}
	ne, err := c.count("edge count")
	if err != nil {
		return nil, err
	}
	nf, err := c.count("face count")
	if err != nil {
		return nil, err
	}
	logger.Debug("header read",
		zap.Uint16("params", uint16(params)),
		zap.Int("vertices", nv), zap.Int("edges", ne), zap.Int("faces", nf))

	// Every vertex, edge and face takes one record; reject counts the input
	// cannot hold before allocating for them.
	if left := len(c.records) - c.next; nv > left || ne > left-nv || nf > left-nv-ne {
		return nil, fmt.Errorf("line %d: V=%d E=%d F=%d but only %d records follow: %w",
			c.line, nv, ne, nf, left, ErrTruncated)
	}

	p := puzzle.New(nv, ne, nf)
	p.Params = params

	if err = c.vertices(p); err != nil {
		return nil, err
	}
	logger.Debug("vertices read", zap.Int("line", c.line))
	if err = c.edges(p); err != nil {
		return nil, err
	}
	logger.Debug("edges read", zap.Int("line", c.line), zap.Bool("solution", params.Has(puzzle.SolvedEdgePresent)))
	if err = c.faces(p); err != nil {
		return nil, err
	}
	logger.Debug("faces read", zap.Int("line", c.line))

	if params.Has(puzzle.GridTypePresent) {
		rec, err := c.take("grid type", 1)
		if err != nil {
			return nil, err
		}
		if p.GridType, err = c.integer(rec.Fields[0]); err != nil {
			return nil, err
		}
		logger.Debug("grid type read", zap.Int("grid_type", p.GridType))
	}
	if params.Has(puzzle.CoordsPresent) {
		if err = c.coords(p); err != nil {
			return nil, err
		}
		logger.Debug("coordinates read", zap.Int("line", c.line))
	}

	if c.next < len(c.records) {
		return nil, fmt.Errorf("line %d: trailing record: %w", c.records[c.next].Pos.Line, ErrSyntax)
	}

	return p, nil
}

// params decodes the bitmap: digit i from the right sets bit i when nonzero.
func (c *cursor) params() (puzzle.Params, error) {
	rec, err := c.take("params bitmap", 1)
	if err != nil {
		return 0, err
	}
	digits := rec.Fields[0]
	var params puzzle.Params
	for i := 0; i < len(digits); i++ {
		d := digits[len(digits)-1-i]
		if d < '0' || d > '9' {
			return 0, fmt.Errorf("line %d: bitmap %q: %w", c.line, digits, ErrSyntax)
		}
		if d != '0' && i < puzzle.NumParams {
			params = params.With(1 << i)
		}
	}
	if !params.Has(puzzle.Required) {
		return 0, fmt.Errorf("line %d: bitmap %q: %w", c.line, digits, ErrMissingParams)
	}

	return params, nil
}

func (c *cursor) vertices(p *puzzle.Puzzle) error {
	for i := range p.Vertices {
		rec, err := c.take("vertex")
		if err != nil {
			return err
		}
		vals, err := c.ints(rec.Fields)
		if err != nil {
			return err
		}
		if len(vals) < 2 || len(vals) != 2+vals[1] || vals[1] < 0 {
			return fmt.Errorf("line %d: vertex record has %d fields: %w", c.line, len(vals), ErrSyntax)
		}
		if err = c.checkID("vertex", vals[0], i); err != nil {
			return err
		}
		p.Vertices[i].EdgeIDs = vals[2:]
	}

	return nil
}

func (c *cursor) edges(p *puzzle.Puzzle) error {
	arity := 5
	if p.Params.Has(puzzle.SolvedEdgePresent) {
		arity = 6
	}
	for i := range p.Edges {
		rec, err := c.take("edge", arity)
		if err != nil {
			return err
		}
		vals, err := c.ints(rec.Fields)
		if err != nil {
			return err
		}
		if err = c.checkID("edge", vals[0], i); err != nil {
			return err
		}
		e := &p.Edges[i]
		e.Vertices = [2]int{vals[1], vals[2]}
		e.Faces = [2]int{vals[3], vals[4]}
		if arity == 6 {
			e.Solution = vals[5] == 1
		}
	}

	return nil
}

func (c *cursor) faces(p *puzzle.Puzzle) error {
	for i := range p.Faces {
		rec, err := c.take("face")
		if err != nil {
			return err
		}
		vals, err := c.ints(rec.Fields)
		if err != nil {
			return err
		}
		if len(vals) < 3 || vals[2] < 0 || len(vals) != 3+vals[2] {
			return fmt.Errorf("line %d: face record has %d fields: %w", c.line, len(vals), ErrSyntax)
		}
		if err = c.checkID("face", vals[0], i); err != nil {
			return err
		}
		p.Faces[i].Clue = vals[1]
		p.Faces[i].EdgeIDs = vals[3:]
	}

	return nil
}

// coords reads V lines "id x y" in any order; each id exactly once.
func (c *cursor) coords(p *puzzle.Puzzle) error {
	pts := make([]puzzle.Point, p.NumVertices())
	seen := make([]bool, len(pts))
	for range pts {
		rec, err := c.take("coordinate", 3)
		if err != nil {
			return err
		}
		id, err := c.integer(rec.Fields[0])
		if err != nil {
			return err
		}
		if id < 0 || id >= len(pts) || seen[id] {
			return fmt.Errorf("line %d: coordinate id %d repeated or out of range: %w", c.line, id, ErrIDMismatch)
		}
		seen[id] = true
		if pts[id].X, err = c.number(rec.Fields[1]); err != nil {
			return err
		}
		if pts[id].Y, err = c.number(rec.Fields[2]); err != nil {
			return err
		}
	}

	return p.SetPositions(pts)
}
