// Package textio is the I/O boundary of the toy RSA workflows: whole-file text
// loading and saving, and an interactive path prompt for the CLI.
package textio
