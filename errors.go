package saver

import "fmt"

// Kind tags the category of a saver Error so callers can branch on it without
// parsing message text.
type Kind int

const (
	// MalformedEncryptionKey indicates EK's indexed vectors violate the
	// length invariant |X|=|Y|=n, |Z|=n+1.
	MalformedEncryptionKey Kind = iota
	// MalformedDecryptionKey indicates DK's vectors violate |V1|=|V2|=n.
	MalformedDecryptionKey
	// VectorShorterThanExpected indicates an SRS generator vector is
	// shorter than the chunk count it must support.
	VectorShorterThanExpected
	// InvalidChunkBitSize indicates an unsupported chunk bit-size b.
	InvalidChunkBitSize
	// MessageNotInChunks indicates a chunk-vector length mismatch during
	// recomposition.
	MessageNotInChunks
	// CouldNotFindDiscreteLog indicates the per-chunk brute-force search
	// exhausted its range without a match.
	CouldNotFindDiscreteLog
	// InvalidCiphertextVerification indicates a ciphertext pairing
	// identity failed.
	InvalidCiphertextVerification
	// InvalidDecryptionVerification indicates a claimed (msg, ν) pair is
	// inconsistent with a ciphertext.
	InvalidDecryptionVerification
	// SnarkError wraps an opaque error forwarded from the Groth16 backend.
	SnarkError
	// SerializationError indicates a byte-encoding round-trip failure.
	SerializationError
)

func (k Kind) String() string {
	switch k {
	case MalformedEncryptionKey:
		return "MalformedEncryptionKey"
	case MalformedDecryptionKey:
		return "MalformedDecryptionKey"
	case VectorShorterThanExpected:
		return "VectorShorterThanExpected"
	case InvalidChunkBitSize:
		return "InvalidChunkBitSize"
	case MessageNotInChunks:
		return "MessageNotInChunks"
	case CouldNotFindDiscreteLog:
		return "CouldNotFindDiscreteLog"
	case InvalidCiphertextVerification:
		return "InvalidCiphertextVerification"
	case InvalidDecryptionVerification:
		return "InvalidDecryptionVerification"
	case SnarkError:
		return "SnarkError"
	case SerializationError:
		return "SerializationError"
	default:
		return "Unknown"
	}
}

// Error is the single error type surfaced by this package. Got/Expected are
// populated for the length-mismatch kinds; Index for CouldNotFindDiscreteLog;
// Inner for wrapped backend errors.
type Error struct {
	Kind     Kind
	Got      int
	Expected int
	Index    int
	Inner    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case MalformedEncryptionKey, MalformedDecryptionKey, VectorShorterThanExpected:
		return fmt.Sprintf("saver: %s: got %d, expected %d", e.Kind, e.Got, e.Expected)
	case InvalidChunkBitSize:
		return fmt.Sprintf("saver: %s: b=%d", e.Kind, e.Expected)
	case CouldNotFindDiscreteLog:
		return fmt.Sprintf("saver: %s: chunk %d", e.Kind, e.Index)
	case SnarkError, SerializationError:
		if e.Inner != nil {
			return fmt.Sprintf("saver: %s: %v", e.Kind, e.Inner)
		}
		return fmt.Sprintf("saver: %s", e.Kind)
	default:
		return fmt.Sprintf("saver: %s", e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Inner }

func errLengthMismatch(kind Kind, got, expected int) error {
	return &Error{Kind: kind, Got: got, Expected: expected}
}

func errBitSize(b uint8) error {
	return &Error{Kind: InvalidChunkBitSize, Expected: int(b)}
}

func errDiscreteLog(i int) error {
	return &Error{Kind: CouldNotFindDiscreteLog, Index: i}
}

func errSnark(inner error) error {
	return &Error{Kind: SnarkError, Inner: inner}
}

func errSerialization(inner error) error {
	return &Error{Kind: SerializationError, Inner: inner}
}
