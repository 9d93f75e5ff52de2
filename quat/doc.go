// Package quat provides an immutable quaternion value type.
//
// A Quaternion is the number a + b·i + c·j + d·k with float64 components.
// Values are plain structs with unexported fields: they are freely copied,
// compared with Equal, and shared between goroutines without locking.
//
// Arithmetic:
//
//	Add(p, q)  component-wise sum
//	Mul(p, q)  Hamilton product (i·j = k, j·i = -k)
//
// Every operation returns a new value. NaN and Inf propagate through the
// usual float64 rules.
//
// String renders the canonical form, e.g. "1.0-2.0i+4.0k". The zero
// quaternion renders as "0".
package quat
