// Package rendertest provides a render.Target that records calls instead of drawing.
package rendertest

import (
	"fmt"

	"colored-cube/internal/render"

	"github.com/go-gl/mathgl/mgl32"
)

// Op is one recorded call.
type Op struct {
	Name string
	Args []float32
}

// String formats the op like a call, e.g. "vertex(1 -1 1)".
func (o Op) String() string {
	if len(o.Args) == 0 {
		return o.Name
	}
	return fmt.Sprintf("%s%v", o.Name, o.Args)
}

// Recorder implements render.Target by appending every call to Ops.
type Recorder struct {
	Ops        []Op
	Projection mgl32.Mat4
	View       mgl32.Mat4
	depth      int
}

var _ render.Target = (*Recorder)(nil)

func (r *Recorder) add(name string, args ...float32) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args})
}

// Begin records "begin" with the primitive. It panics if a primitive is already open.
func (r *Recorder) Begin(mode render.Primitive) {
	if r.depth != 0 {
		panic("rendertest: nested Begin")
	}
	r.depth++
	r.add("begin", float32(mode))
}

// Color records "color".
func (r *Recorder) Color(cr, cg, cb float32) { r.add("color", cr, cg, cb) }

// Vertex records "vertex".
func (r *Recorder) Vertex(x, y, z float32) { r.add("vertex", x, y, z) }

// End records "end". It panics if no primitive is open.
func (r *Recorder) End() {
	if r.depth != 1 {
		panic("rendertest: End without Begin")
	}
	r.depth--
	r.add("end")
}

// Clear records "clear".
func (r *Recorder) Clear(cr, cg, cb float32) { r.add("clear", cr, cg, cb) }

// Viewport records "viewport" with the rectangle.
func (r *Recorder) Viewport(x, y, width, height int) {
	r.add("viewport", float32(x), float32(y), float32(width), float32(height))
}

// LoadProjection keeps m in Projection and records "projection".
func (r *Recorder) LoadProjection(m mgl32.Mat4) {
	r.Projection = m
	r.add("projection")
}

// LoadView keeps m in View and records "view".
func (r *Recorder) LoadView(m mgl32.Mat4) {
	r.View = m
	r.add("view")
}

// Count returns how many recorded ops have the given name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, o := range r.Ops {
		if o.Name == name {
			n++
		}
	}
	return n
}

// Names returns the op names in call order.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Ops))
	for i, o := range r.Ops {
		out[i] = o.Name
	}
	return out
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
