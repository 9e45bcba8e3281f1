// Package format defines the closed wire-level vocabulary shared between
// the delta encoder and decoder: the AlgorithmID enumeration and its fixed
// 4-bit wire codes.
//
// It follows the same shape as similar "which variant produced this
// payload" enums (EncodingType/CompressionType style): a small closed enum
// with a String() method rather than open polymorphism.
package format

// AlgorithmID identifies which of xpatch's eight delta algorithms produced
// a given frame's body. It is a closed enumeration: adding a variant means
// picking a new wire code, writing its encoder/decoder, and adding it to the
// selector's candidate list and priority order (see Priority).
type AlgorithmID uint8

const (
	// Chars encodes a pure insertion: mid_base is empty, mid_new is the
	// literal inserted bytes.
	Chars AlgorithmID = 0
	// Tokens encodes mid_new as a short sequence of insertions at fixed
	// offsets inside mid_base.
	Tokens AlgorithmID = 1
	// Remove encodes a pure deletion: mid_new is empty.
	Remove AlgorithmID = 2
	// RepeatChars encodes mid_new as a run of one repeated byte.
	RepeatChars AlgorithmID = 3
	// RepeatTokens encodes mid_new as a run of one repeated multi-byte token.
	RepeatTokens AlgorithmID = 4
	// GDelta encodes a copy/insert instruction stream over the whole base.
	GDelta AlgorithmID = 5
	// GDeltaZstd is GDelta with its instruction stream piped through zstd.
	GDeltaZstd AlgorithmID = 6
	// CharsZstd is Chars with mid_new piped through zstd.
	CharsZstd AlgorithmID = 7
)

// Priority orders the algorithms from highest to lowest selection priority,
// used to break ties deterministically when two candidates produce
// byte-identical lengths: Chars < Tokens < Remove < RepeatChars <
// RepeatTokens < GDelta < GDeltaZstd < CharsZstd.
var Priority = []AlgorithmID{
	Chars, Tokens, Remove, RepeatChars, RepeatTokens, GDelta, GDeltaZstd, CharsZstd,
}

// Valid reports whether code is one of the eight defined wire codes.
func Valid(code uint8) bool {
	return code <= uint8(CharsZstd)
}

func (a AlgorithmID) String() string {
	switch a {
	case Chars:
		return "Chars"
	case Tokens:
		return "Tokens"
	case Remove:
		return "Remove"
	case RepeatChars:
		return "RepeatChars"
	case RepeatTokens:
		return "RepeatTokens"
	case GDelta:
		return "GDelta"
	case GDeltaZstd:
		return "GDeltaZstd"
	case CharsZstd:
		return "CharsZstd"
	default:
		return "Unknown"
	}
}
