package quat

// Quaternion is the number a + b·i + c·j + d·k.
//
// The zero value is the zero quaternion. Components cannot be changed after
// construction; operations return new values.
type Quaternion struct {
	a, b, c, d float64
}

// New returns the quaternion a + b·i + c·j + d·k.
func New(a, b, c, d float64) Quaternion { return Quaternion{a: a, b: b, c: c, d: d} }

// Of builds a quaternion from up to four components in order a, b, c, d.
// Missing trailing components are zero. More than four parts panics.
func Of(parts ...float64) Quaternion {
	if len(parts) > 4 {
		panic("quat: Of takes at most 4 components")
	}
	var v [4]float64
	copy(v[:], parts)
	return Quaternion{a: v[0], b: v[1], c: v[2], d: v[3]}
}

// Real embeds a real scalar.
func Real(a float64) Quaternion { return Quaternion{a: a} }

var (
	// I, J and K are the imaginary units.
	I = Quaternion{b: 1}
	J = Quaternion{c: 1}
	K = Quaternion{d: 1}
	// One is the multiplicative identity.
	One = Quaternion{a: 1}
)

func (q Quaternion) A() float64 { return q.a }
func (q Quaternion) B() float64 { return q.b }
func (q Quaternion) C() float64 { return q.c }
func (q Quaternion) D() float64 { return q.d }

// Coefficients returns the components in order a, b, c, d.
func (q Quaternion) Coefficients() [4]float64 { return [4]float64{q.a, q.b, q.c, q.d} }

// Conjugate returns a - b·i - c·j - d·k.
func (q Quaternion) Conjugate() Quaternion { return Quaternion{q.a, -q.b, -q.c, -q.d} }

// Neg returns -q.
func (q Quaternion) Neg() Quaternion { return Quaternion{-q.a, -q.b, -q.c, -q.d} }

func (q Quaternion) Add(o Quaternion) Quaternion { return Add(q, o) }
func (q Quaternion) Sub(o Quaternion) Quaternion { return Sub(q, o) }
func (q Quaternion) Mul(o Quaternion) Quaternion { return Mul(q, o) }

// Equal reports whether all four components compare equal with ==.
func (q Quaternion) Equal(o Quaternion) bool {
	return q.a == o.a && q.b == o.b && q.c == o.c && q.d == o.d
}

// Conjugate returns q.Conjugate().
func Conjugate(q Quaternion) Quaternion { return q.Conjugate() }

func Add(p, q Quaternion) Quaternion {
	return Quaternion{p.a + q.a, p.b + q.b, p.c + q.c, p.d + q.d}
}

func Sub(p, q Quaternion) Quaternion { return Add(p, q.Neg()) }

// Mul returns the Hamilton product p·q. It is not commutative.
func Mul(p, q Quaternion) Quaternion {
	return Quaternion{
		a: p.a*q.a - p.b*q.b - p.c*q.c - p.d*q.d,
		b: p.a*q.b + p.b*q.a + p.c*q.d - p.d*q.c,
		c: p.a*q.c - p.b*q.d + p.c*q.a + p.d*q.b,
		d: p.a*q.d + p.b*q.c - p.c*q.b + p.d*q.a,
	}
}

// NormSquared returns a² + b² + c² + d², the real part of q·conj(q).
func NormSquared(q Quaternion) float64 { return Mul(q, q.Conjugate()).a }

// Equals reports whether other is a Quaternion (or non-nil *Quaternion)
// equal to p. Any other type yields false.
func Equals(p Quaternion, other any) bool {
	switch o := other.(type) {
	case Quaternion:
		return p.Equal(o)
	case *Quaternion:
		return o != nil && p.Equal(*o)
	default:
		return false
	}
}

// Component reads a component by attribute name: a, b, c, d or the
// aliases re, i, j, k.
func (q Quaternion) Component(name string) (float64, bool) {
	switch name {
	case "a", "re":
		return q.a, true
	case "b", "i":
		return q.b, true
	case "c", "j":
		return q.c, true
	case "d", "k":
		return q.d, true
	}
	return 0, false
}

// SetComponent always fails: a constructed Quaternion is frozen, including
// against adding attributes it does not have. q is left unchanged.
func (q *Quaternion) SetComponent(name string, _ float64) error {
	return &ImmutabilityViolation{Attr: name}
}
