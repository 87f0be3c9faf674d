package pageflip

// OpKind identifies a recorded drawing call.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpSave
	OpRestore
	OpTranslate
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpQuadTo
	OpFill
	OpStroke
)

var opNames = [...]string{
	OpClear:     "clear",
	OpSave:      "save",
	OpRestore:   "restore",
	OpTranslate: "translate",
	OpBeginPath: "beginPath",
	OpMoveTo:    "moveTo",
	OpLineTo:    "lineTo",
	OpQuadTo:    "quadTo",
	OpFill:      "fill",
	OpStroke:    "stroke",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "unknown"
}

// Op is one recorded drawing call. Args holds the call's numeric arguments
// in order (a stroke's width is its only arg); Paint is set for fills and
// strokes.
type Op struct {
	Kind  OpKind
	Args  []float64
	Paint Paint
}

// Recorder is a DrawingSurface that only remembers what was asked of it.
type Recorder struct {
	ops []Op
}

// Ops returns the recorded calls. The returned slice MUST NOT be mutated.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// Count returns how many calls of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for i := range r.ops {
		if r.ops[i].Kind == k {
			n++
		}
	}
	return n
}

func (r *Recorder) add(k OpKind, p Paint, args ...float64) {
	r.ops = append(r.ops, Op{Kind: k, Args: args, Paint: p})
}

func (r *Recorder) Clear()                      { r.add(OpClear, nil) }
func (r *Recorder) Save()                       { r.add(OpSave, nil) }
func (r *Recorder) Restore()                    { r.add(OpRestore, nil) }
func (r *Recorder) Translate(x, y float64)      { r.add(OpTranslate, nil, x, y) }
func (r *Recorder) BeginPath()                  { r.add(OpBeginPath, nil) }
func (r *Recorder) MoveTo(x, y float64)         { r.add(OpMoveTo, nil, x, y) }
func (r *Recorder) LineTo(x, y float64)         { r.add(OpLineTo, nil, x, y) }
func (r *Recorder) QuadTo(cx, cy, x, y float64) { r.add(OpQuadTo, nil, cx, cy, x, y) }
func (r *Recorder) Fill(p Paint)                { r.add(OpFill, p) }
func (r *Recorder) Stroke(p Paint, width float64) {
	r.add(OpStroke, p, width)
}
