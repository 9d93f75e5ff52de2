// Package calc evaluates a small expression language over quaternions.
//
// Statements are separated by ';' or newlines:
//
//	q = 1.0-2.0i+4.0k
//	p = quat(0, 1, 1, 0)
//	q*p - p*q
//	conj(q).b
//
// Number literals take an optional unit suffix (2.5j, 1e+16k), so every
// canonical Quaternion string parses back to an equal value. Attribute
// writes such as q.a = 3 fail with quat.ErrImmutable.
package calc
