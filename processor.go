// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package markov

// processorCore is the shared state behind both Encrypter and Decrypter:
// the Key in use, a byte→index map derived from the Key's order, the
// inverse of that map, and the rolling history.
type processorCore struct {
	key     *Key
	index   [256]byte // order[i] -> i, valid only where inOrder is true
	inOrder [256]bool
	decoder [256]byte // i -> order[i], the inverse of index
	prefix  *ring
}

func newProcessorCore(key *Key, vector *Primer) (*processorCore, error) {
	if err := key.ValidatePrimer(vector); err != nil {
		return nil, err
	}

	core := &processorCore{key: key}
	for i, b := range key.order {
		core.index[b] = byte(i)
		core.inOrder[b] = true
		core.decoder[byte(i)] = b
	}

	initial := make([]byte, key.prefixLen)
	for i, b := range vector.data {
		initial[i] = core.index[b]
	}
	core.prefix = newRing(initial)

	return core, nil
}

// encodedIndex reports the encode-index of a raw byte, and whether that
// byte belongs to the Key's alphabet at all.
func (c *processorCore) encodedIndex(v byte) (byte, bool) {
	return c.index[v], c.inOrder[v]
}

// currentPrimer exports the rolling history as a fresh Primer.
func (c *processorCore) currentPrimer() *Primer {
	indices := c.prefix.ordered()
	data := make([]byte, len(indices))
	for j, idx := range indices {
		data[j] = c.decoder[idx]
	}
	return &Primer{data: data}
}

// Encrypter turns plaintext bytes drawn from a Key's alphabet into
// ciphertext of equal length, advancing a rolling history as it goes.
// Bytes outside the alphabet pass through unchanged without affecting the
// history. Not safe for concurrent use by multiple goroutines.
type Encrypter struct {
	core *processorCore
}

// NewEncrypter builds an Encrypter bound to key and started at vector.
func NewEncrypter(key *Key, vector *Primer) (*Encrypter, error) {
	core, err := newProcessorCore(key, vector)
	if err != nil {
		return nil, err
	}
	return &Encrypter{core: core}, nil
}

// Process encrypts data, returning a new slice of equal length.
func (e *Encrypter) Process(data []byte) []byte {
	out := make([]byte, len(data))
	for i, v := range data {
		c, ok := e.core.encodedIndex(v)
		if !ok {
			out[i] = v
			continue
		}
		out[i] = e.core.key.encode(e.core.prefix, c)
		e.core.prefix.append(c)
	}
	return out
}

// CurrentPrimer exports the Encrypter's current history as a Primer. A
// Decrypter started from the result picks up decryption exactly where a
// second Encrypter started from the same Primer would.
func (e *Encrypter) CurrentPrimer() *Primer {
	return e.core.currentPrimer()
}

// Decrypter recovers plaintext from ciphertext produced by an Encrypter
// constructed with the same Key and Primer. Not safe for concurrent use by
// multiple goroutines.
type Decrypter struct {
	core *processorCore
}

// NewDecrypter builds a Decrypter bound to key and started at vector.
func NewDecrypter(key *Key, vector *Primer) (*Decrypter, error) {
	core, err := newProcessorCore(key, vector)
	if err != nil {
		return nil, err
	}
	return &Decrypter{core: core}, nil
}

// Process decrypts data, returning a new slice of equal length.
func (d *Decrypter) Process(data []byte) []byte {
	out := make([]byte, len(data))
	for i, v := range data {
		idx, ok := d.core.encodedIndex(v)
		if !ok {
			out[i] = v
			continue
		}
		p := d.core.key.decode(d.core.prefix, idx)
		out[i] = p
		code, _ := d.core.encodedIndex(p)
		d.core.prefix.append(code)
	}
	return out
}

// CurrentPrimer exports the Decrypter's current history as a Primer.
func (d *Decrypter) CurrentPrimer() *Primer {
	return d.core.currentPrimer()
}
