package bandforge

// Point3 is one toolpath sample in plate coordinates, millimeters.
type Point3 struct {
	X, Y, Z float64
}

// Toolpath is the ordered 3D point sequence describing one band's
// continuous path. Cell is the originating grid cell index (row-major).
type Toolpath struct {
	Cell   int
	Points []Point3
}

// translate shifts every point by (dx, dy). Used by the grid assembler
// to move an origin-centered band to its cell center.
func (t Toolpath) translate(dx, dy float64) {
	for i := range t.Points {
		t.Points[i].X += dx
		t.Points[i].Y += dy
	}
}

// TravelHint describes the non-printing move between two consecutive
// bands: lift to SafeZMM over the finished band, travel, and enter the
// next band at Entry.
type TravelHint struct {
	FromCell int
	ToCell   int
	SafeZMM  float64
	Entry    Point3
}

// PrintJob is everything the external toolpath-emission collaborator
// needs: ordered per-band point sequences, inter-band travel hints, and
// the global print parameters. The collaborator alone produces
// machine-specific preamble/postamble, per-segment extrusion lengths,
// and travel moves.
type PrintJob struct {
	Toolpaths []Toolpath
	Travels   []TravelHint
	Config    GlobalConfig
	Profile   PrinterProfile
}

// Emitter turns a PrintJob into a machine-specific motion-control
// program. Implemented by the external collaborator; the core never
// emits G-code itself.
type Emitter interface {
	Emit(job *PrintJob) error
}

// BuildPrintJob assembles the export payload from a grid result:
// successful cells' toolpaths in row-major cell order, with a travel
// hint between each consecutive pair. The safe travel height clears the
// band tops by 10 mm.
func BuildPrintJob(res *GridResult, cfg GlobalConfig) *PrintJob {
	job := &PrintJob{
		Config:  cfg,
		Profile: res.Profile,
	}
	safeZ := cfg.BandHeightMM + 10
	for _, cell := range res.Cells {
		if cell.Skipped || cell.Err != nil || cell.Band == nil {
			continue
		}
		tp := cell.Band.Toolpath
		if len(tp.Points) == 0 {
			continue
		}
		if len(job.Toolpaths) > 0 {
			prev := job.Toolpaths[len(job.Toolpaths)-1]
			job.Travels = append(job.Travels, TravelHint{
				FromCell: prev.Cell,
				ToCell:   tp.Cell,
				SafeZMM:  safeZ,
				Entry:    tp.Points[0],
			})
		}
		job.Toolpaths = append(job.Toolpaths, tp)
	}
	return job
}
