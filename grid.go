package bandforge

import (
	"context"
	"fmt"
	"sync"

	"github.com/bandforge/bandforge/textoutline"
)

// GridSpec arranges bands on one build plate, row-major. A nil cell is
// the explicit skip sentinel: the slot stays empty and produces no
// geometry.
type GridSpec struct {
	Rows, Cols int

	// Cells has Rows×Cols entries in row-major order.
	Cells []*BandSpec
}

// Validate checks the grid dimensions.
func (g GridSpec) Validate() error {
	switch {
	case g.Rows < 1:
		return &ConfigError{Field: "Rows", Reason: "must be at least 1"}
	case g.Cols < 1:
		return &ConfigError{Field: "Cols", Reason: "must be at least 1"}
	case len(g.Cells) != g.Rows*g.Cols:
		return &ConfigError{
			Field:  "Cells",
			Reason: fmt.Sprintf("have %d entries, need rows×cols = %d", len(g.Cells), g.Rows*g.Cols),
		}
	}
	return nil
}

// CellResult is the outcome for one grid cell. Failures are isolated:
// one failing cell never aborts its siblings.
type CellResult struct {
	Index int
	Row   int
	Col   int

	// Skipped marks the explicit skip sentinel (nil cell).
	Skipped bool

	// CenterX/CenterY is the cell's band axis in plate coordinates.
	CenterX float64
	CenterY float64

	// Band holds the generated geometry, already translated to the
	// cell center. Nil when Skipped or Err is set.
	Band *BandResult

	// Err is a *CellError wrapping the cell's failure.
	Err error
}

// GridResult is the aggregate of one Assemble call. The footprint
// comparison is advisory only: generation always completes regardless of
// overage, since the physical material tolerates some collision.
type GridResult struct {
	Cells []CellResult

	// FootprintXMM/FootprintYMM is the combined bounding footprint of
	// all occupied cells, including inter-band spacing.
	FootprintXMM float64
	FootprintYMM float64

	// ExceedsBedArea is set when the footprint exceeds the printer
	// profile's bed on either axis; Overage holds the excess per axis.
	ExceedsBedArea bool
	OverageXMM     float64
	OverageYMM     float64

	Profile PrinterProfile
}

// Assembler places band instances on a shared plate and generates them
// on parallel workers. Construct with NewAssembler; an Assembler is
// immutable and safe for concurrent use.
type Assembler struct {
	cfg     GlobalConfig
	font    *textoutline.FontSource
	profile PrinterProfile
	opts    genOptions
}

// NewAssembler validates the configuration and resolves the printer
// profile. font may be nil when no cell carries text.
func NewAssembler(cfg GlobalConfig, font *textoutline.FontSource, store ProfileStore, opts ...Option) (*Assembler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := defaultGenOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Assembler{
		cfg:     cfg,
		font:    font,
		profile: resolveProfile(store, cfg.PrinterProfileID),
		opts:    o,
	}, nil
}

// Assemble generates every occupied cell of the grid. Output order is
// stable: results are keyed by row-major cell index regardless of worker
// completion order, so identical inputs produce identical output.
//
// Cancellation is supported at band granularity only: ctx is checked
// between bands, cells not yet started are marked with ctx's error, and
// bands already in flight run to completion (there is no mid-band
// checkpoint). Assemble itself returns an error only for an invalid
// grid; per-cell failures land in CellResult.Err.
func (a *Assembler) Assemble(ctx context.Context, grid GridSpec) (*GridResult, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	res := &GridResult{
		Cells:   make([]CellResult, len(grid.Cells)),
		Profile: a.profile,
	}

	cellW, cellH := a.cellSize(grid)
	for idx := range grid.Cells {
		row, col := idx/grid.Cols, idx%grid.Cols
		res.Cells[idx] = CellResult{
			Index:   idx,
			Row:     row,
			Col:     col,
			Skipped: grid.Cells[idx] == nil,
			CenterX: cellW/2 + float64(col)*(cellW+a.cfg.GridSpacingXMM),
			CenterY: cellH/2 + float64(row)*(cellH+a.cfg.GridSpacingYMM),
		}
	}

	a.runCells(ctx, grid, res)
	a.measureFootprint(grid, res, cellW, cellH)
	return res, nil
}

// runCells generates all occupied cells on the worker pool, stable by
// index.
func (a *Assembler) runCells(ctx context.Context, grid GridSpec, res *GridResult) {
	idxCh := make(chan int)
	var wg sync.WaitGroup
	for range a.opts.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range idxCh {
				a.generateCell(grid, res, idx)
			}
		}()
	}

	canceledFrom := -1
dispatch:
	for idx, spec := range grid.Cells {
		if spec == nil {
			continue
		}
		select {
		case <-ctx.Done():
			canceledFrom = idx
			break dispatch
		case idxCh <- idx:
		}
	}
	close(idxCh)
	wg.Wait()

	if canceledFrom >= 0 {
		for idx := canceledFrom; idx < len(grid.Cells); idx++ {
			c := &res.Cells[idx]
			if c.Skipped || c.Band != nil || c.Err != nil {
				continue
			}
			c.Err = &CellError{Index: idx, Row: c.Row, Col: c.Col, Err: ctx.Err()}
		}
		Logger().Warn("grid assembly canceled between bands",
			"first_unstarted_cell", canceledFrom)
	}
}

// generateCell runs the per-band pipeline for one cell and translates
// the result to the cell center.
func (a *Assembler) generateCell(grid GridSpec, res *GridResult, idx int) {
	c := &res.Cells[idx]
	band, err := generateBand(*grid.Cells[idx], a.cfg, a.font, a.opts)
	if err != nil {
		c.Err = &CellError{Index: idx, Row: c.Row, Col: c.Col, Err: err}
		Logger().Warn("cell failed, siblings unaffected",
			"cell", idx, "err", err)
		return
	}
	band.Toolpath.Cell = idx
	band.Toolpath.translate(c.CenterX, c.CenterY)
	c.Band = band
}

// cellSize returns the uniform grid cell dimensions: the widest band
// footprint across occupied cells by the band height. A band's bed
// footprint width is its modulated diameter, wiggle peaks included.
func (a *Assembler) cellSize(grid GridSpec) (w, h float64) {
	for _, spec := range grid.Cells {
		if spec == nil {
			continue
		}
		d := 2 * (spec.NominalRadius() + spec.WiggleAmplitudeMM*a.opts.embossGain)
		if d > w {
			w = d
		}
	}
	return w, a.cfg.BandHeightMM
}

// measureFootprint computes the combined footprint over the occupied
// cell extent and compares it against the bed bounds. Advisory only.
func (a *Assembler) measureFootprint(grid GridSpec, res *GridResult, cellW, cellH float64) {
	minRow, maxRow, minCol, maxCol := grid.Rows, -1, grid.Cols, -1
	for idx, spec := range grid.Cells {
		if spec == nil {
			continue
		}
		row, col := idx/grid.Cols, idx%grid.Cols
		minRow, maxRow = min(minRow, row), max(maxRow, row)
		minCol, maxCol = min(minCol, col), max(maxCol, col)
	}
	if maxRow < 0 {
		return // empty grid: zero footprint
	}

	spanCols := float64(maxCol - minCol + 1)
	spanRows := float64(maxRow - minRow + 1)
	res.FootprintXMM = spanCols*cellW + (spanCols-1)*a.cfg.GridSpacingXMM
	res.FootprintYMM = spanRows*cellH + (spanRows-1)*a.cfg.GridSpacingYMM

	res.OverageXMM = max(0, res.FootprintXMM-a.profile.BedXMM)
	res.OverageYMM = max(0, res.FootprintYMM-a.profile.BedYMM)
	res.ExceedsBedArea = res.OverageXMM > 0 || res.OverageYMM > 0

	if res.ExceedsBedArea {
		Logger().Warn("combined footprint exceeds bed area, continuing anyway",
			"footprint_x_mm", res.FootprintXMM,
			"footprint_y_mm", res.FootprintYMM,
			"overage_x_mm", res.OverageXMM,
			"overage_y_mm", res.OverageYMM)
	}
}
