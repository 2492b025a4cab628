// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package markov

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPrimerCreateCompatibility checks that a 256-block Key produces a
// 255-byte Primer that validates in both directions.
func TestPrimerCreateCompatibility(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key, err := NewKey([]byte("What is C code?"), 256)
	is.NoError(err)

	primer, err := NewPrimer(key)
	is.NoError(err)

	is.Len(primer.Data(), 255)
	is.NoError(key.ValidatePrimer(primer))
	is.NoError(primer.ValidateKey(key))
}

func TestPrimerFromBytesValidation(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	_, err := NewPrimerFromBytes(nil)
	is.ErrorIs(err, ErrEmptyPrimer)

	key, err := NewKey([]byte("abcdef"), 4)
	is.NoError(err)

	primer, err := NewPrimerFromBytes([]byte{'a'})
	is.NoError(err)
	is.ErrorIs(primer.ValidateKey(key), ErrPrimerLength)

	wrongLen := key.PrefixLen()
	data := make([]byte, wrongLen)
	for i := range data {
		data[i] = 'z' // not in the key's alphabet
	}
	primer, err = NewPrimerFromBytes(data)
	is.NoError(err)
	is.ErrorIs(primer.ValidateKey(key), ErrPrimerNotSubset)
}

// TestPrimerContinuationEquivalence checks that a freshly built
// Processor's exported primer equals the primer it started from, before
// any bytes are processed.
func TestPrimerContinuationEquivalence(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key, err := NewKey([]byte("qwerty"), 6)
	is.NoError(err)

	p0, err := NewPrimer(key)
	is.NoError(err)

	enc, err := NewEncrypter(key, p0)
	is.NoError(err)

	p1 := enc.CurrentPrimer()
	is.Equal(p0.Data(), p1.Data())
}
