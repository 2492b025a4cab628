// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package markov

import (
	"fmt"
	"io"

	ctrdrbg "github.com/sixafter/aes-ctr-drbg"
	prng "github.com/sixafter/prng-chacha"
)

// RandomSource is the entropy injection point: any reader that produces
// cryptographically unpredictable bytes on demand. The default, used when
// no KeyOption/PrimerOption overrides it, is a ChaCha-based CSPRNG; an
// AES-CTR-DRBG source built by NewAESCTRDRBGSource is a drop-in
// alternative (see WithRandomSource).
type RandomSource = io.Reader

// defaultRandomSource is shared by every Key/Primer construction that does
// not supply its own entropy source.
func defaultRandomSource() RandomSource {
	return prng.Reader
}

// NewAESCTRDRBGSource builds a RandomSource backed by a pooled, NIST
// SP 800-90A AES-CTR-DRBG instead of the default ChaCha-based CSPRNG.
// Options are forwarded to ctrdrbg.NewReader, so callers can tune key
// size, rekeying policy, and personalization the same way they would
// configure that package directly. The result is suitable for
// WithRandomSource/WithPrimerRandomSource.
func NewAESCTRDRBGSource(opts ...ctrdrbg.Option) (RandomSource, error) {
	reader, err := ctrdrbg.NewReader(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return reader, nil
}

// randomBytes draws n cryptographically unpredictable bytes from r.
func randomBytes(r RandomSource, n int) ([]byte, error) {
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return buf, nil
}

// randomRange returns a uniformly distributed integer in [0, stop) by
// drawing the minimum number of whole bytes needed to cover stop-1's bit
// length, masking off the excess high bits, and rejecting draws that land
// at or above stop. This avoids the modulo bias a naive `% stop` would
// introduce.
func randomRange(r RandomSource, stop int) (int, error) {
	if stop < 2 {
		return 0, nil
	}
	bits := bitLength(uint64(stop - 1))
	nbytes := ceilDiv(bits, 8)
	mask := (1 << uint(bits)) - 1
	for {
		buf, err := randomBytes(r, nbytes)
		if err != nil {
			return 0, err
		}
		number := 0
		for _, b := range buf {
			number = (number << 8) + int(b)
		}
		number &= mask
		if number < stop {
			return number, nil
		}
	}
}

// randomChoice returns a uniformly chosen element of seq.
func randomChoice(r RandomSource, seq []byte) (byte, error) {
	idx, err := randomRange(r, len(seq))
	if err != nil {
		return 0, err
	}
	return seq[idx], nil
}

// randomShuffle permutes seq in place using a post-bump Fisher-Yates
// variant: for each position i, draw j uniformly from [0, len-1) and bump
// j past i when j >= i, then swap. This is deliberately not the textbook
// draw-from-[i,len) shuffle.
func randomShuffle(r RandomSource, seq []byte) error {
	n := len(seq)
	if n <= 2 {
		return nil
	}
	limit := n - 1
	for i := 0; i < n; i++ {
		j, err := randomRange(r, limit)
		if err != nil {
			return err
		}
		if j >= i {
			j++
		}
		seq[i], seq[j] = seq[j], seq[i]
	}
	return nil
}
