// Package app wires the toy RSA engine, codec, file store and artifact history
// into the key, encryption, decryption and artifact services.
package app
