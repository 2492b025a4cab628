// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package markov implements Markov Encryption: a symmetric, byte-oriented
// stream cipher that fuses Markov-chain history with Sudoku-style Latin
// square constraints. A sender and receiver share a Key (a stack of
// permutations of a common byte alphabet) and a Primer (an initial
// history vector). Feeding plaintext through an Encrypter built from that
// pair produces ciphertext of equal length; feeding the ciphertext
// through a Decrypter built from the same pair recovers the plaintext
// exactly. Bytes outside the Key's alphabet pass through unchanged.
//
// This is a pedagogical cipher, not a vetted cryptographic primitive: it
// makes no claim of security against a chosen-plaintext or key-recovery
// adversary, and it defines no file format, authenticated-encryption
// construction, padding scheme, or key-exchange protocol.
//
//	key, err := markov.NewKey([]byte("Source Code"), 9)
//	primer, err := markov.NewPrimer(key)
//	enc, err := markov.NewEncrypter(key, primer)
//	ciphertext := enc.Process(plaintext)
//
//	dec, err := markov.NewDecrypter(key, primer)
//	plaintext := dec.Process(ciphertext)
package markov
