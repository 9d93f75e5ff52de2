package calc

import (
	"fmt"

	"hamilton/quat"
)

func (n nodeNumber) eval(*Session) (quat.Quaternion, error) { return n.v, nil }

func (n nodeIdent) eval(s *Session) (quat.Quaternion, error) {
	if v, ok := s.Get(n.name); ok {
		return v, nil
	}
	return quat.Quaternion{}, fmt.Errorf("%w: %s", ErrUnknownVar, n.name)
}

func (n nodeUnary) eval(s *Session) (quat.Quaternion, error) {
	x, err := n.x.eval(s)
	if err != nil {
		return quat.Quaternion{}, err
	}
	if n.op == '-' {
		return x.Neg(), nil
	}
	return x, nil
}

func (n nodeBinary) eval(s *Session) (quat.Quaternion, error) {
	a, err := n.left.eval(s)
	if err != nil {
		return quat.Quaternion{}, err
	}
	b, err := n.right.eval(s)
	if err != nil {
		return quat.Quaternion{}, err
	}
	switch n.op {
	case '+':
		return quat.Add(a, b), nil
	case '-':
		return quat.Sub(a, b), nil
	case '*':
		return quat.Mul(a, b), nil
	default:
		return quat.Quaternion{}, fmt.Errorf("%w: unknown operator %q", ErrEval, n.op)
	}
}

func (n nodeAttr) eval(s *Session) (quat.Quaternion, error) {
	x, err := n.x.eval(s)
	if err != nil {
		return quat.Quaternion{}, err
	}
	v, ok := x.Component(n.attr)
	if !ok {
		return quat.Quaternion{}, fmt.Errorf("%w: quaternion has no attribute %q", ErrEval, n.attr)
	}
	return quat.Real(v), nil
}

func (n nodeCall) eval(s *Session) (quat.Quaternion, error) {
	args := make([]quat.Quaternion, 0, len(n.args))
	for _, a := range n.args {
		v, err := a.eval(s)
		if err != nil {
			return quat.Quaternion{}, err
		}
		args = append(args, v)
	}

	switch n.name {
	case "quat":
		if len(args) < 1 || len(args) > 4 {
			return quat.Quaternion{}, fmt.Errorf("%w: quat expects 1 to 4 arguments, got %d", ErrArity, len(args))
		}
		parts := make([]float64, len(args))
		for i, a := range args {
			if !isReal(a) {
				return quat.Quaternion{}, fmt.Errorf("%w: quat argument %d is not real: %v", ErrEval, i+1, a)
			}
			parts[i] = a.A()
		}
		return quat.Of(parts...), nil
	case "conj":
		if len(args) != 1 {
			return quat.Quaternion{}, fmt.Errorf("%w: conj expects 1 argument, got %d", ErrArity, len(args))
		}
		return args[0].Conjugate(), nil
	case "norm2":
		if len(args) != 1 {
			return quat.Quaternion{}, fmt.Errorf("%w: norm2 expects 1 argument, got %d", ErrArity, len(args))
		}
		return quat.Real(quat.NormSquared(args[0])), nil
	default:
		return quat.Quaternion{}, fmt.Errorf("%w: %s", ErrUnknownFunc, n.name)
	}
}

func isReal(q quat.Quaternion) bool { return q.B() == 0 && q.C() == 0 && q.D() == 0 }
