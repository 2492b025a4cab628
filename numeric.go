// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package markov

import "golang.org/x/exp/constraints"

// floorMod returns the Euclidean (floor) modulo of a by m: always a
// non-negative representative when m is positive, unlike Go's native %
// which carries the sign of the dividend.
func floorMod[T constraints.Integer](a, m T) T {
	return (a%m + m) % m
}

// ceilDiv performs ceiling division: quotient plus one whenever a nonzero
// positive remainder is left over.
func ceilDiv[T constraints.Integer](a, b T) T {
	q, r := a/b, a%b
	if r > 0 {
		q++
	}
	return q
}

// bitLength returns the number of bits needed to represent n, i.e. the
// position of its highest set bit plus one. bitLength(0) is 0.
func bitLength(n uint64) int {
	length := 0
	for n > 0 {
		length++
		n >>= 1
	}
	return length
}

// rotateLeft returns a copy of seq rotated left by k positions. A rotation
// by k is equivalent to a rotation right by len(seq)-k; either direction of
// implementation produces the same result, so only one is needed.
func rotateLeft(seq []byte, k int) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	k = ((k % n) + n) % n
	out := make([]byte, n)
	copy(out, seq[k:])
	copy(out[n-k:], seq[:k])
	return out
}
