package toyrsa

// Engine derives toy RSA key states and transforms single code units.
// Every call receives the key state explicitly; an Engine holds configuration only.
type Engine interface {
	// DeriveKeys computes n, phi, e and d from p and q.
	// It fails with ErrInvalidKeyMaterial or ErrDegenerateTotient and never returns a partial state.
	DeriveKeys(p, q uint64) (*KeyState, error)

	// EncryptUnit computes m^e mod n by e successive multiply-and-reduce steps.
	EncryptUnit(m uint64, ks *KeyState) uint64

	// DecryptUnit computes c^d mod n by d successive multiply-and-reduce steps.
	// Without a private exponent the result is meaningless unless the engine is strict,
	// in which case ErrNoPrivateKey is returned.
	DecryptUnit(c uint64, ks *KeyState) (uint64, error)

	// Strategy returns the exponent strategy the engine was built with.
	Strategy() ExponentStrategy
}

// UnitCipher transforms single code units with one fixed key state.
// KeySession is the implementation used by every workflow.
type UnitCipher interface {
	Encrypt(m uint64) uint64
	Decrypt(c uint64) (uint64, error)
	State() KeyState
}

// TextCodec converts between byte sequences and space separated decimal ciphertext.
type TextCodec interface {
	// Encode encrypts every byte of data and joins the results with single spaces.
	Encode(data []byte, cipher UnitCipher) string

	// Decode decrypts leading decimal tokens of text back into bytes.
	// Parsing stops at the first token that is not a decimal integer.
	Decode(text string, cipher UnitCipher) ([]byte, error)

	// Annotate appends the human readable public key line written to artifacts.
	Annotate(encoded string, ks KeyState) string
}

// TextStore is the file boundary of the encryption and decryption workflows.
type TextStore interface {
	// LoadText returns the full raw contents of path.
	LoadText(path string) ([]byte, error)

	// SaveText creates or truncates path and writes content to it.
	SaveText(path string, content []byte) error
}

// PathPrompter asks the user for a file path. ok is false when the user cancels.
type PathPrompter interface {
	PromptPath(label string) (path string, ok bool, err error)
}

// KeyCache stores derived key states so brute-force searches run once per key material.
type KeyCache interface {
	Get(key string) (*KeyState, bool)
	Set(key string, ks *KeyState)
}
