package turtle

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// OpKind names a cursor primitive.
type OpKind uint8

const (
	OpForward OpKind = iota + 1
	OpBackward
	OpLeft
	OpRight
	OpSetHeading
	OpGoto
	OpPenUp
	OpPenDown
	OpColor
	OpWidth
	OpFillCircle
	OpStamp
	OpFlush
)

var opNames = [...]string{
	OpForward:    "forward",
	OpBackward:   "backward",
	OpLeft:       "left",
	OpRight:      "right",
	OpSetHeading: "setheading",
	OpGoto:       "goto",
	OpPenUp:      "penup",
	OpPenDown:    "pendown",
	OpColor:      "color",
	OpWidth:      "width",
	OpFillCircle: "fillcircle",
	OpStamp:      "stamp",
	OpFlush:      "flush",
}

func (k OpKind) String() string {
	if int(k) < len(opNames) && opNames[k] != "" {
		return opNames[k]
	}
	return fmt.Sprintf("op(%d)", uint8(k))
}

// Op is one recorded primitive together with the cursor state after it ran.
type Op struct {
	Kind    OpKind
	Arg     float64
	To      Vec
	Color   color.RGBA
	Pos     Vec
	Heading float64
	Down    bool
}

func (o Op) String() string {
	switch o.Kind {
	case OpGoto:
		return fmt.Sprintf("%s(%.3f,%.3f)", o.Kind, o.To.X, o.To.Y)
	case OpColor:
		return fmt.Sprintf("%s(#%02x%02x%02x)", o.Kind, o.Color.R, o.Color.G, o.Color.B)
	case OpPenUp, OpPenDown, OpStamp, OpFlush:
		return o.Kind.String()
	default:
		return fmt.Sprintf("%s(%.3f)", o.Kind, o.Arg)
	}
}

// Recorder is a Cursor that tracks pose exactly and records every primitive
// instead of drawing. Setting FailAt makes the FailAt-th drawing primitive
// (1-based) and every later one return FailErr.
type Recorder struct {
	Ops []Op

	FailAt  int
	FailErr error

	pos     Vec
	heading float64
	down    bool
	color   color.RGBA
	width   float64
	draws   int
}

var _ Cursor = (*Recorder)(nil)

// NewRecorder returns a recorder at the origin, heading east, pen down.
func NewRecorder() *Recorder {
	return &Recorder{down: true, color: Black, width: 1}
}

// ErrInjected is the default FailErr.
var ErrInjected = errors.New("turtle: injected failure")

func (r *Recorder) Forward(dist float64) error {
	if err := r.fail(); err != nil {
		return err
	}
	r.pos = r.pos.Add(Polar(r.heading).Mul(dist))
	r.record(Op{Kind: OpForward, Arg: dist})
	return nil
}

func (r *Recorder) Backward(dist float64) error {
	if err := r.fail(); err != nil {
		return err
	}
	r.pos = r.pos.Add(Polar(r.heading).Mul(-dist))
	r.record(Op{Kind: OpBackward, Arg: dist})
	return nil
}

func (r *Recorder) Goto(p Vec) error {
	if err := r.fail(); err != nil {
		return err
	}
	r.pos = p
	r.record(Op{Kind: OpGoto, To: p})
	return nil
}

func (r *Recorder) Left(deg float64) {
	r.heading = NormalizeHeading(r.heading + deg)
	r.record(Op{Kind: OpLeft, Arg: deg})
}

func (r *Recorder) Right(deg float64) {
	r.heading = NormalizeHeading(r.heading - deg)
	r.record(Op{Kind: OpRight, Arg: deg})
}

func (r *Recorder) SetHeading(deg float64) {
	r.heading = NormalizeHeading(deg)
	r.record(Op{Kind: OpSetHeading, Arg: deg})
}

func (r *Recorder) PenUp() {
	r.down = false
	r.record(Op{Kind: OpPenUp})
}

func (r *Recorder) PenDown() {
	r.down = true
	r.record(Op{Kind: OpPenDown})
}

func (r *Recorder) SetColor(c color.RGBA) {
	r.color = c
	r.record(Op{Kind: OpColor, Color: c})
}

func (r *Recorder) SetWidth(w float64) {
	if w > 0 {
		r.width = w
	}
	r.record(Op{Kind: OpWidth, Arg: w})
}

func (r *Recorder) FillCircle(radius float64, c color.RGBA) error {
	if err := r.fail(); err != nil {
		return err
	}
	r.record(Op{Kind: OpFillCircle, Arg: radius, Color: c})
	return nil
}

func (r *Recorder) Stamp() error {
	if err := r.fail(); err != nil {
		return err
	}
	r.record(Op{Kind: OpStamp, Color: r.color})
	return nil
}

func (r *Recorder) Flush() error {
	r.record(Op{Kind: OpFlush})
	return nil
}

func (r *Recorder) Heading() float64  { return r.heading }
func (r *Recorder) Position() Vec     { return r.pos }
func (r *Recorder) IsDown() bool      { return r.down }
func (r *Recorder) Color() color.RGBA { return r.color }
func (r *Recorder) Width() float64    { return r.width }

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Strokes returns the number of recorded moves made with the pen down.
func (r *Recorder) Strokes() int {
	n := 0
	for _, op := range r.Ops {
		switch op.Kind {
		case OpForward, OpBackward, OpGoto:
			if op.Down {
				n++
			}
		}
	}
	return n
}

// Reset drops recorded ops but keeps the cursor state.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

func (r *Recorder) record(op Op) {
	op.Pos = r.pos
	op.Heading = r.heading
	op.Down = r.down
	if op.Kind != OpColor && op.Kind != OpFillCircle && op.Kind != OpStamp {
		op.Color = r.color
	}
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) fail() error {
	if r.FailAt <= 0 {
		return nil
	}
	r.draws++
	if r.draws < r.FailAt {
		return nil
	}
	if r.FailErr != nil {
		return r.FailErr
	}
	return ErrInjected
}

// SameSequence reports whether two op lists are identical up to eps on
// every numeric field.
func SameSequence(a, b []Op, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if x.Kind != y.Kind || x.Down != y.Down || x.Color != y.Color {
			return false
		}
		if math.Abs(x.Arg-y.Arg) > eps || math.Abs(x.Heading-y.Heading) > eps {
			return false
		}
		if !x.Pos.Near(y.Pos, eps) || !x.To.Near(y.To, eps) {
			return false
		}
	}
	return true
}
