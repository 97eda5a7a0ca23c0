// Package radix implements a base-10 least-significant-digit radix sort
// for non-negative int64 values.
//
// Sorting runs one stable counting sort pass per decimal digit of the
// largest value, units first. Each pass buckets elements by
// (value/exp)%10 and walks the input backwards when placing them so that
// elements sharing a digit keep their relative order.
//
// The bucket counts and the auxiliary output buffer are allocated once per
// call and reused across its passes. Nothing is shared between calls, so
// the functions are safe to call concurrently on disjoint slices.
//
// # Architectural Position
//
// radix is part of the core. It imports only the domain package and the
// standard library.
package radix
