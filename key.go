// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package markov

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Key is the immutable artifact shared by any number of Encrypters and
// Decrypters: a stack of L+1 same-length permutations of a common byte
// alphabet, plus the lookup tables derived from them (encoder, axes,
// order, decoder) that make per-byte encode/decode a constant-time
// operation.
type Key struct {
	data      [][]byte
	prefixLen int
	base      []byte
	size      int
	offset    byte
	encoder   []byte
	axes      [][]byte // axes[j][i] = index-in-base of data[v][i], v = prefixLen-j
	order     []byte
	decoder   [][]byte

	basePos    [256]byte
	orderPos   [256]byte
	inAlphabet [256]bool
}

// NewKey builds a Key from a raw alphabet and a chain size by repeatedly
// shuffling the alphabet's unique byte set with the configured
// RandomSource.
func NewKey(alphabetBytes []byte, chainSize int, opts ...KeyOption) (*Key, error) {
	if chainSize < 2 {
		return nil, ErrChainTooSmall
	}

	cfg := newKeyConfig(opts)

	selection := uniqueSorted(alphabetBytes)
	if len(selection) < 2 {
		return nil, ErrAlphabetTooSmall
	}

	blocks := make([][]byte, chainSize)
	for i := 0; i < chainSize; i++ {
		shuffled := make([]byte, len(selection))
		copy(shuffled, selection)
		if err := randomShuffle(cfg.randomSource, shuffled); err != nil {
			return nil, err
		}
		blocks[i] = shuffled
	}

	return NewKeyFromBlocks(blocks)
}

// NewKeyFromBlocks builds a Key from an explicit, ordered list of blocks,
// validating the shape and alphabet-sharing rules before constructing the
// derived tables.
func NewKeyFromBlocks(data [][]byte) (*Key, error) {
	if err := validateBlocks(data); err != nil {
		return nil, err
	}

	prefixLen := len(data) - 1
	base := append([]byte(nil), data[0]...)
	size := len(base)

	var basePos [256]byte
	var inAlphabet [256]bool
	for i, b := range base {
		basePos[b] = byte(i)
		inAlphabet[b] = true
	}

	offset := calculateOffset(data, prefixLen, basePos, size)

	// encoder is base rotated right by offset; that is the rotation the
	// decoder rows, placed at (r+offset) mod size, invert.
	encoder := rotateLeft(base, -int(offset))

	axes := calculateAxes(data, prefixLen, basePos)

	order := append([]byte(nil), base...)
	slices.Sort(order)

	var orderPos [256]byte
	for i, b := range order {
		orderPos[b] = byte(i)
	}

	decoder := calculateDecoder(base, order, orderPos, size, offset)

	storedData := make([][]byte, len(data))
	for i, block := range data {
		storedData[i] = append([]byte(nil), block...)
	}

	return &Key{
		data:       storedData,
		prefixLen:  prefixLen,
		base:       base,
		size:       size,
		offset:     offset,
		encoder:    encoder,
		axes:       axes,
		order:      order,
		decoder:    decoder,
		basePos:    basePos,
		orderPos:   orderPos,
		inAlphabet: inAlphabet,
	}, nil
}

func validateBlocks(data [][]byte) error {
	if len(data) < 2 {
		return ErrTooFewBlocks
	}
	size := len(data[0])
	if size < 2 {
		return ErrBlockTooShort
	}
	group, ok := byteSet(data[0])
	if !ok {
		return ErrDuplicateBytes
	}
	for _, block := range data[1:] {
		if len(block) != size {
			return ErrBlockSizeMismatch
		}
		next, ok := byteSet(block)
		if !ok {
			return ErrDuplicateBytes
		}
		if next != group {
			return ErrAlphabetMismatch
		}
	}
	return nil
}

// byteSet reduces block to a 256-bit membership set, reporting false if
// block contains a duplicate byte.
func byteSet(block []byte) ([256]bool, bool) {
	var set [256]bool
	for _, b := range block {
		if set[b] {
			return set, false
		}
		set[b] = true
	}
	return set, true
}

// uniqueSorted reduces in to its distinct byte set, sorted ascending.
func uniqueSorted(in []byte) []byte {
	seen, _ := byteSet(nil)
	out := make([]byte, 0, len(in))
	for _, b := range in {
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	slices.Sort(out)
	return out
}

// calculateOffset sums indexIn(base, data[k][0]) for k = 1..prefixLen-1.
// data[prefixLen], the last block, is deliberately excluded from the sum;
// this asymmetry is carried over unchanged from the reference
// construction rather than "corrected". The result is negated modulo
// size.
func calculateOffset(data [][]byte, prefixLen int, basePos [256]byte, size int) byte {
	sum := 0
	for k := 1; k < prefixLen; k++ {
		sum += int(basePos[data[k][0]])
	}
	return byte(floorMod(-sum, size))
}

// calculateAxes builds the prefixLen per-history-position tables. It walks
// data[prefixLen], data[prefixLen-1], ..., data[1] — the reverse of block
// order — assigning them to axes[0], axes[1], ..., axes[prefixLen-1]. Each
// table is indexed by position i (a history value, itself an index into
// base) and stores the index-in-base of the byte found at that position
// in the source block.
func calculateAxes(data [][]byte, prefixLen int, basePos [256]byte) [][]byte {
	axes := make([][]byte, prefixLen)
	for j := 0; j < prefixLen; j++ {
		v := prefixLen - j
		block := data[v]
		table := make([]byte, len(block))
		for i, b := range block {
			table[i] = basePos[b]
		}
		axes[j] = table
	}
	return axes
}

// calculateDecoder builds the size inverse rows: for rotation r, row
// (r+offset) mod size maps each position-in-order to the base byte that
// would have produced it at that rotation.
func calculateDecoder(base, order []byte, orderPos [256]byte, size int, offset byte) [][]byte {
	grid := make([][]byte, size)
	for r := 0; r < size; r++ {
		row := make([]byte, size)
		for i, v := range order {
			row[orderPos[base[(r+i)%size]]] = v
		}
		grid[(r+int(offset))%size] = row
	}
	return grid
}

// Data returns the ordered list of blocks the Key was built from.
func (k *Key) Data() [][]byte {
	out := make([][]byte, len(k.data))
	for i, block := range k.data {
		out[i] = append([]byte(nil), block...)
	}
	return out
}

// PrefixLen returns L, the length of the rolling history a Processor must
// maintain for this Key.
func (k *Key) PrefixLen() int { return k.prefixLen }

// Base returns data[0], the Key's canonical ordering of its alphabet.
func (k *Key) Base() []byte { return append([]byte(nil), k.base...) }

// Order returns base sorted ascending, the indexing alphabet Processors
// use for encode/decode indices.
func (k *Key) Order() []byte { return append([]byte(nil), k.order...) }

// Size returns |A|, the number of distinct bytes in the Key's alphabet.
func (k *Key) Size() int { return k.size }

// ValidatePrimer reports whether vector is compatible with this Key: same
// length as PrefixLen, and drawn entirely from the Key's alphabet.
func (k *Key) ValidatePrimer(vector *Primer) error {
	return vector.ValidateKey(k)
}

// sum computes Σ axes[j][h_j] over the ring's current contents, oldest to
// newest.
func (k *Key) sum(prefix *ring) int {
	if prefix.len() != k.prefixLen {
		panic(fmt.Sprintf("markov: prefix length %d conflicts with key dimension %d", prefix.len(), k.prefixLen))
	}
	sum := 0
	for j := 0; j < k.prefixLen; j++ {
		sum += int(k.axes[j][prefix.at(j)])
	}
	return sum
}

// encode returns encoder[(sum(H)+c) mod size].
func (k *Key) encode(prefix *ring, c byte) byte {
	return k.encoder[(k.sum(prefix)+int(c))%k.size]
}

// decode returns decoder[sum(H) mod size][y].
func (k *Key) decode(prefix *ring, y byte) byte {
	return k.decoder[k.sum(prefix)%k.size][y]
}
