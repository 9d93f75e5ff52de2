package calc

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"hamilton/quat"
)

var (
	ErrParse       = errors.New("parse error")
	ErrEval        = errors.New("eval error")
	ErrArity       = errors.New("wrong number of arguments")
	ErrUnknownFunc = errors.New("unknown function")
	// ErrUnknownVar is returned when evaluating an expression with an undefined variable.
	ErrUnknownVar = errors.New("unknown variable")
	// ErrReserved is returned when assigning to one of the unit names i, j, k.
	ErrReserved = errors.New("reserved name")
)

var units = map[string]quat.Quaternion{
	"i": quat.I,
	"j": quat.J,
	"k": quat.K,
}

// ResultKind tells an evaluated expression apart from an assignment.
type ResultKind uint8

const (
	ResultValue ResultKind = iota
	ResultAssign
)

// Result is the outcome of one statement.
type Result struct {
	Kind  ResultKind
	Name  string // assigned variable, empty for ResultValue
	Value quat.Quaternion
}

// Session keeps variables across Exec calls. It is not safe for concurrent
// use.
type Session struct {
	vars map[string]quat.Quaternion
	log  *zap.Logger
}

type Option func(*Session)

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		vars: make(map[string]quat.Quaternion),
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get looks up a variable or one of the units i, j, k.
func (s *Session) Get(name string) (quat.Quaternion, bool) {
	if u, ok := units[name]; ok {
		return u, true
	}
	v, ok := s.vars[name]
	return v, ok
}

// Set binds name to q, replacing any previous binding.
func (s *Session) Set(name string, q quat.Quaternion) error {
	if _, ok := units[name]; ok {
		return fmt.Errorf("%w: %s", ErrReserved, name)
	}
	s.vars[name] = q
	s.log.Debug("assign", zap.String("name", name), zap.Stringer("value", q))
	return nil
}

// Names returns the user variable names in sorted order.
func (s *Session) Names() []string {
	out := make([]string, 0, len(s.vars))
	for k := range s.vars {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Vars returns a copy of the user variables.
func (s *Session) Vars() map[string]quat.Quaternion {
	out := make(map[string]quat.Quaternion, len(s.vars))
	for k, v := range s.vars {
		out[k] = v
	}
	return out
}

// Exec parses src and runs its statements in order. Nothing runs if src
// does not parse. On an evaluation error the results of the statements
// before it are returned along with the error.
func (s *Session) Exec(src string) ([]Result, error) {
	actions, err := parseInput(src)
	if err != nil {
		return nil, err
	}
	out := make([]Result, 0, len(actions))
	for _, act := range actions {
		res, err := s.run(act)
		if err != nil {
			s.log.Debug("statement failed", zap.Error(err))
			return out, err
		}
		out = append(out, res)
	}
	return out, nil
}

func (s *Session) run(act action) (Result, error) {
	v, err := act.expr.eval(s)
	if err != nil {
		return Result{}, err
	}

	switch act.kind {
	case actionAssign:
		if err := s.Set(act.name, v); err != nil {
			return Result{}, err
		}
		return Result{Kind: ResultAssign, Name: act.name, Value: v}, nil
	case actionAssignAttr:
		target, ok := s.Get(act.name)
		if !ok {
			return Result{}, fmt.Errorf("%w: %s", ErrUnknownVar, act.name)
		}
		if err := target.SetComponent(act.attr, v.A()); err != nil {
			return Result{}, fmt.Errorf("%s.%s: %w", act.name, act.attr, err)
		}
		return Result{Kind: ResultAssign, Name: act.name, Value: target}, nil
	default:
		return Result{Kind: ResultValue, Value: v}, nil
	}
}

// Eval runs src in a fresh session and returns the value of its last
// statement.
func Eval(src string) (quat.Quaternion, error) {
	res, err := NewSession().Exec(src)
	if err != nil {
		return quat.Quaternion{}, err
	}
	if len(res) == 0 {
		return quat.Quaternion{}, fmt.Errorf("%w: empty input", ErrParse)
	}
	return res[len(res)-1].Value, nil
}
