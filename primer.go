// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package markov

// Primer is the immutable initial history a Processor starts from: L
// bytes drawn from a Key's alphabet, where L is that Key's PrefixLen.
type Primer struct {
	data []byte
}

// NewPrimer draws a fresh, random Primer compatible with key by choosing
// PrefixLen bytes independently from key's base via the configured
// RandomSource.
func NewPrimer(key *Key, opts ...PrimerOption) (*Primer, error) {
	cfg := newPrimerConfig(opts)

	data := make([]byte, key.prefixLen)
	for i := range data {
		b, err := randomChoice(cfg.randomSource, key.base)
		if err != nil {
			return nil, err
		}
		data[i] = b
	}
	return &Primer{data: data}, nil
}

// NewPrimerFromBytes builds a Primer from explicit data, requiring only
// that it be non-empty; compatibility with a particular Key is checked
// separately via ValidateKey, since a Primer can be constructed before the
// Key it will be used with is known.
func NewPrimerFromBytes(data []byte) (*Primer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyPrimer
	}
	return &Primer{data: append([]byte(nil), data...)}, nil
}

// Data returns the Primer's underlying bytes.
func (p *Primer) Data() []byte {
	return append([]byte(nil), p.data...)
}

// ValidateKey reports whether p is compatible with key: exactly
// key.PrefixLen bytes long, all drawn from key's alphabet.
func (p *Primer) ValidateKey(key *Key) error {
	if len(p.data) != key.prefixLen {
		return ErrPrimerLength
	}
	for _, b := range p.data {
		if !key.inAlphabet[b] {
			return ErrPrimerNotSubset
		}
	}
	return nil
}
