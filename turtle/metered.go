package turtle

import (
	"errors"
	"image/color"

	"github.com/prometheus/client_golang/prometheus"
)

// Metered counts the primitives passed to the wrapped Cursor.
type Metered struct {
	Cursor

	ops   *prometheus.CounterVec
	total int
}

// NewMetered registers turtleworks_primitives_total{op} on reg and wraps c.
// Registering twice on the same registry reuses the existing collector.
func NewMetered(c Cursor, reg prometheus.Registerer) (*Metered, error) {
	vec := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "turtleworks",
			Name:      "primitives_total",
			Help:      "Cursor primitives issued, by operation.",
		},
		[]string{"op"},
	)
	if err := reg.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		vec = existing
	}
	return &Metered{Cursor: c, ops: vec}, nil
}

// Total returns the number of primitives seen by this wrapper.
func (m *Metered) Total() int { return m.total }

func (m *Metered) observe(k OpKind) {
	m.total++
	m.ops.WithLabelValues(k.String()).Inc()
}

func (m *Metered) Forward(dist float64) error {
	m.observe(OpForward)
	return m.Cursor.Forward(dist)
}

func (m *Metered) Backward(dist float64) error {
	m.observe(OpBackward)
	return m.Cursor.Backward(dist)
}

func (m *Metered) Goto(p Vec) error {
	m.observe(OpGoto)
	return m.Cursor.Goto(p)
}

func (m *Metered) Left(deg float64) {
	m.observe(OpLeft)
	m.Cursor.Left(deg)
}

func (m *Metered) Right(deg float64) {
	m.observe(OpRight)
	m.Cursor.Right(deg)
}

func (m *Metered) SetHeading(deg float64) {
	m.observe(OpSetHeading)
	m.Cursor.SetHeading(deg)
}

func (m *Metered) PenUp() {
	m.observe(OpPenUp)
	m.Cursor.PenUp()
}

func (m *Metered) PenDown() {
	m.observe(OpPenDown)
	m.Cursor.PenDown()
}

func (m *Metered) SetColor(c color.RGBA) {
	m.observe(OpColor)
	m.Cursor.SetColor(c)
}

func (m *Metered) SetWidth(w float64) {
	m.observe(OpWidth)
	m.Cursor.SetWidth(w)
}

func (m *Metered) FillCircle(radius float64, c color.RGBA) error {
	m.observe(OpFillCircle)
	return m.Cursor.FillCircle(radius, c)
}

func (m *Metered) Stamp() error {
	m.observe(OpStamp)
	return m.Cursor.Stamp()
}

func (m *Metered) Flush() error {
	m.observe(OpFlush)
	return m.Cursor.Flush()
}
