// Package toyrsa defines the key state, exponent strategies, number theory helpers and
// contracts of the toy RSA engine: per-character textbook RSA over small primes with
// deliberately naive arithmetic (brute-force inverse, repeated-multiplication powers).
//
// Nothing here is cryptographically secure.
package toyrsa
