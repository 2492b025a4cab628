// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package markov

// keyConfig holds the options applied when building a Key from a raw
// alphabet. It is assembled once per NewKey call and never exposed
// directly.
type keyConfig struct {
	randomSource RandomSource
}

// KeyOption configures NewKey.
type KeyOption func(*keyConfig)

// WithRandomSource overrides the entropy source used to shuffle blocks
// when building a Key. The default is a ChaCha-based CSPRNG
// (github.com/sixafter/prng-chacha); NewAESCTRDRBGSource builds a
// drop-in alternative backed by a NIST SP 800-90A construction instead.
func WithRandomSource(source RandomSource) KeyOption {
	return func(c *keyConfig) {
		c.randomSource = source
	}
}

func newKeyConfig(opts []KeyOption) *keyConfig {
	cfg := &keyConfig{randomSource: defaultRandomSource()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// primerConfig holds the options applied when drawing a random Primer.
type primerConfig struct {
	randomSource RandomSource
}

// PrimerOption configures NewPrimer.
type PrimerOption func(*primerConfig)

// WithPrimerRandomSource overrides the entropy source used to draw a
// fresh Primer's bytes. The default matches NewKey's default.
func WithPrimerRandomSource(source RandomSource) PrimerOption {
	return func(c *primerConfig) {
		c.randomSource = source
	}
}

func newPrimerConfig(opts []PrimerOption) *primerConfig {
	cfg := &primerConfig{randomSource: defaultRandomSource()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
