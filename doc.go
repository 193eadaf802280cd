// Package bandforge generates continuous spiral toolpaths for
// additively-manufactured flexible bands with text embossed on two
// opposing faces.
//
// A band is described by a [BandSpec]: front and back text, circumference,
// emboss amplitude and frequency, and a sampling quality preset. The
// pipeline converts the text into flattened glyph polygons
// (package textoutline), projects them onto the band's cylindrical
// surface, synthesizes a helical sample stream, modulates the radius with
// a sinusoidal wiggle that is amplified inside glyph regions, and eases
// the amplitude to zero at both path extremities so the band starts and
// ends on flat seating rings.
//
// Multiple bands are arranged on one build plate by an [Assembler], which
// runs bands on parallel workers, keeps output order stable by cell index,
// validates the combined footprint against the printer's bed bounds, and
// isolates per-cell failures.
//
// The package produces ordered 3D point sequences plus travel hints
// ([PrintJob]); turning those into machine-specific motion-control
// programs is the job of an external [Emitter]. There is no I/O inside
// the core: generation is a pure, deterministic function of its inputs.
package bandforge
