// Package protocol reads and writes the contest's line-oriented wire format:
// an initial graph snapshot, per-turn cell updates, and the action commands
// sent back. The core packages never touch this format; they work on the
// structured types in model.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/formiclabs/formic/model"
)

// NoEdge is the neighbor-slot sentinel meaning "no edge in this direction".
const NoEdge = -1

// Decoder reads snapshot and update frames from a single stream. One
// decoder must own the stream for the whole game: it buffers ahead, so
// mixing it with other readers on the same source would lose input.
type Decoder struct {
	sc *bufio.Scanner
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{sc: bufio.NewScanner(r)}
}

// ReadGraph parses an initial snapshot: a cell-count line, one line per cell
// (kind, resources, six neighbor slots), a base-count line, and one base
// line per side. The assembled graph is validated by model.NewGraph, so a
// snapshot referencing nonexistent cells fails here rather than at first
// traversal.
func (d *Decoder) ReadGraph() (*model.Graph, error) {
	count, err := d.readInts(1)
	if err != nil {
		return nil, fmt.Errorf("read cell count: %w", err)
	}
	n := count[0]
	if n < 0 {
		return nil, fmt.Errorf("negative cell count %d", n)
	}

	cells := make([]model.Cell, n)
	for i := range cells {
		fields, err := d.readInts(2 + model.MaxNeighbors)
		if err != nil {
			return nil, fmt.Errorf("read cell %d: %w", i, err)
		}
		kind, err := model.KindFromCode(fields[0])
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		cell := model.Cell{Kind: kind, Resources: fields[1]}
		for _, nb := range fields[2:] {
			if nb == NoEdge {
				continue
			}
			cell.Neighbors = append(cell.Neighbors, nb)
		}
		cells[i] = cell
	}

	baseCount, err := d.readInts(1)
	if err != nil {
		return nil, fmt.Errorf("read base count: %w", err)
	}
	allied, err := d.readInts(baseCount[0])
	if err != nil {
		return nil, fmt.Errorf("read allied bases: %w", err)
	}
	enemy, err := d.readInts(baseCount[0])
	if err != nil {
		return nil, fmt.Errorf("read enemy bases: %w", err)
	}

	g, err := model.NewGraph(cells, allied, enemy)
	if err != nil {
		return nil, fmt.Errorf("assemble snapshot: %w", err)
	}
	return g, nil
}

// ReadUpdate applies one turn's per-cell refresh to the graph: resources,
// allied ants, and enemy ants, one line per cell in index order.
func (d *Decoder) ReadUpdate(g *model.Graph) error {
	for i := range g.Cells {
		fields, err := d.readInts(3)
		if err != nil {
			return fmt.Errorf("read update for cell %d: %w", i, err)
		}
		g.Cells[i].Resources = fields[0]
		g.Cells[i].Ants[model.Allied] = fields[1]
		g.Cells[i].Ants[model.Enemy] = fields[2]
	}
	return nil
}

// readInts scans the next non-empty line and parses exactly want integers.
// A zero want consumes nothing: the writer emits a blank line for an empty
// list and blank lines are skipped on read.
func (d *Decoder) readInts(want int) ([]int, error) {
	if want == 0 {
		return nil, nil
	}
	for {
		if !d.sc.Scan() {
			if err := d.sc.Err(); err != nil {
				return nil, err
			}
			return nil, io.ErrUnexpectedEOF
		}
		line := strings.TrimSpace(d.sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != want {
			return nil, fmt.Errorf("line %q: got %d fields, want %d", line, len(fields), want)
		}
		out := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %q: field %q is not an integer", line, f)
			}
			out[i] = v
		}
		return out, nil
	}
}

// WriteGraph renders a snapshot in the format ReadGraph accepts. Neighbor
// slots beyond a cell's adjacency are padded with the NoEdge sentinel, so a
// round trip preserves every cell and base list exactly.
func WriteGraph(w io.Writer, g *model.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", g.Len())
	for i := range g.Cells {
		cell := &g.Cells[i]
		fmt.Fprintf(bw, "%d %d", int(cell.Kind), cell.Resources)
		for slot := 0; slot < model.MaxNeighbors; slot++ {
			nb := NoEdge
			if slot < len(cell.Neighbors) {
				nb = cell.Neighbors[slot]
			}
			fmt.Fprintf(bw, " %d", nb)
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintf(bw, "%d\n", len(g.Bases[model.Allied]))
	writeIndexLine(bw, g.Bases[model.Allied])
	writeIndexLine(bw, g.Bases[model.Enemy])
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// WriteUpdate renders the per-cell refresh ReadUpdate accepts.
func WriteUpdate(w io.Writer, g *model.Graph) error {
	bw := bufio.NewWriter(w)
	for i := range g.Cells {
		cell := &g.Cells[i]
		fmt.Fprintf(bw, "%d %d %d\n", cell.Resources, cell.Ants[model.Allied], cell.Ants[model.Enemy])
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write update: %w", err)
	}
	return nil
}

// FormatActions renders a turn's output line: semicolon-separated commands,
// or WAIT when the list is empty.
func FormatActions(actions []model.Action) string {
	if len(actions) == 0 {
		return model.Wait().String()
	}
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = a.String()
	}
	return strings.Join(parts, ";")
}

func writeIndexLine(w io.Writer, indices []int) {
	parts := make([]string, len(indices))
	for i, v := range indices {
		parts[i] = strconv.Itoa(v)
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}
