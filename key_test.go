// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package markov

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewKeyShape verifies that a nine-byte alphabet with chain_size 9
// yields a Key with prefixLen 8 and nine blocks.
func TestNewKeyShape(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key, err := NewKey([]byte("Source Code"), 9)
	is.NoError(err)

	is.Equal(8, key.PrefixLen())
	is.Len(key.Base(), 9)
	is.Len(key.Order(), 9)
	is.Len(key.Data(), 9)
	is.Equal(9, key.Size())
}

// TestNewKeyFromBlocksEncodeDecode checks that four identical copies of
// the same permutation produce a Key whose encode and decode outputs
// match an exact, hand-computed sequence.
func TestNewKeyFromBlocksEncodeDecode(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	block := []byte("ejpszgwufrdmxbhkcatvolnyqi")
	blocks := [][]byte{
		append([]byte(nil), block...),
		append([]byte(nil), block...),
		append([]byte(nil), block...),
		append([]byte(nil), block...),
	}

	key, err := NewKeyFromBlocks(blocks)
	is.NoError(err)
	is.Equal(3, key.PrefixLen())

	indices := []byte{4, 5, 6, 7, 8}

	encodeHistory := newRing([]byte{1, 2, 3})
	var encoded []byte
	for _, c := range indices {
		encoded = append(encoded, key.encode(encodeHistory, c))
		encodeHistory.append(c)
	}
	is.Equal("dhtne", string(encoded))

	decodeHistory := newRing([]byte{1, 2, 3})
	var decoded []byte
	for _, c := range indices {
		decoded = append(decoded, key.decode(decodeHistory, c))
		decodeHistory.append(c)
	}
	is.Equal("uztzh", string(decoded))
}

func TestNewKeyFromBlocksValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data [][]byte
		want error
	}{
		{"too few blocks", [][]byte{[]byte("ab")}, ErrTooFewBlocks},
		{"block too short", [][]byte{[]byte("a"), []byte("b")}, ErrBlockTooShort},
		{"duplicate bytes", [][]byte{[]byte("aab"), []byte("abc")}, ErrDuplicateBytes},
		{"size mismatch", [][]byte{[]byte("abc"), []byte("ab")}, ErrBlockSizeMismatch},
		{"alphabet mismatch", [][]byte{[]byte("abc"), []byte("abd")}, ErrAlphabetMismatch},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			is := assert.New(t)
			_, err := NewKeyFromBlocks(tc.data)
			is.ErrorIs(err, tc.want)
		})
	}
}

func TestNewKeyChainTooSmall(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	_, err := NewKey([]byte("ab"), 1)
	is.ErrorIs(err, ErrChainTooSmall)
}

func TestNewKeyAlphabetTooSmall(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	_, err := NewKey([]byte("a"), 4)
	is.ErrorIs(err, ErrAlphabetTooSmall)

	_, err = NewKey(nil, 4)
	is.ErrorIs(err, ErrAlphabetTooSmall)
}

// TestDecoderInversion checks that for every valid history and every
// encode index c, re-indexing encode's output through order and feeding
// that through decode recovers c.
func TestDecoderInversion(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key, err := NewKey([]byte("abcdefgh"), 5)
	is.NoError(err)

	orderIndex := make(map[byte]byte, len(key.order))
	for i, b := range key.order {
		orderIndex[b] = byte(i)
	}

	history := newRing(make([]byte, key.PrefixLen()))
	for h := 0; h < key.Size(); h++ {
		for j := 0; j < history.len(); j++ {
			history.buf[j] = byte((h + j) % key.Size())
		}
		for c := 0; c < key.Size(); c++ {
			encoded := key.encode(history, byte(c))
			decoded := key.decode(history, orderIndex[encoded])
			is.Equal(byte(c), orderIndex[decoded], "decode should invert encode once re-indexed through order")
		}
	}
}
