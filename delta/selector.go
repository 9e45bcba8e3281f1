package delta

import (
	"github.com/arloliu/xpatch/format"
	"github.com/arloliu/xpatch/gdelta"
	"github.com/arloliu/xpatch/internal/varint"
)

// priorityIndex maps an AlgorithmID to its position in format.Priority, used
// to break size ties deterministically.
var priorityIndex = func() map[format.AlgorithmID]int {
	idx := make(map[format.AlgorithmID]int, len(format.Priority))
	for i, a := range format.Priority {
		idx[a] = i
	}

	return idx
}()

// selectBest runs every applicable candidate encoder and returns the
// complete delta frame (header + winning body) for the byte-shortest
// result, ties broken by format.Priority.
//
// Keeping each specialized encoder as an independent (mid) -> (body, ok)
// function and running them here, rather than folding selection logic into
// each encoder, keeps the selector as the only component that knows the
// candidate set.
func selectBest(tag uint64, base, newBuf []byte, enableZstd bool) []byte {
	m := analyze(base, newBuf)

	var candidates []candidate

	add := func(algo format.AlgorithmID, body []byte, ok bool) bool {
		if !ok {
			return false
		}
		candidates = append(candidates, candidate{algo: algo, body: body})

		return true
	}

	if body, ok := tryChars(m); add(format.Chars, body, ok) && nearLowerBound(tag, m.prefixLen, body) {
		return finalize(tag, candidates)
	}
	if body, ok := tryTokens(m); add(format.Tokens, body, ok) && nearLowerBound(tag, m.prefixLen, body) {
		return finalize(tag, candidates)
	}
	if body, ok := tryRemove(m); add(format.Remove, body, ok) && nearLowerBound(tag, m.prefixLen, body) {
		return finalize(tag, candidates)
	}
	if body, ok := tryRepeatChars(m); add(format.RepeatChars, body, ok) && nearLowerBound(tag, m.prefixLen, body) {
		return finalize(tag, candidates)
	}
	if body, ok := tryRepeatTokens(m); ok {
		add(format.RepeatTokens, body, ok)
	}

	stream := gdelta.Encode(base, newBuf)
	candidates = append(candidates, candidate{algo: format.GDelta, body: buildGDeltaBody(newBuf, stream)})

	if body, ok := buildGDeltaZstdBody(newBuf, stream, enableZstd); ok {
		add(format.GDeltaZstd, body, ok)
	}
	if body, ok := tryCharsZstd(m, enableZstd); ok {
		add(format.CharsZstd, body, ok)
	}

	return finalize(tag, candidates)
}

// nearLowerBound implements the §4.5 short-circuit: a specialized body is
// within one byte of the theoretical minimum (header + varint(prefix_len) +
// varint(0)) when the change it describes is already about as small as any
// encoding of "a length-zero middle region" could be.
func nearLowerBound(tag uint64, prefixLen int, body []byte) bool {
	lowerBound := headerSize(tag) + varint.Size(uint64(prefixLen)) + 1 // varint(0) is always 1 byte

	return headerSize(tag)+len(body) <= lowerBound+1
}

// finalize picks the minimum-length candidate (ties broken by priority) and
// prepends its header.
func finalize(tag uint64, candidates []candidate) []byte {
	best := candidates[0]
	for _, c := range candidates[1:] {
		switch {
		case len(c.body) < len(best.body):
			best = c
		case len(c.body) == len(best.body) && priorityIndex[c.algo] < priorityIndex[best.algo]:
			best = c
		}
	}

	frame := appendHeader(make([]byte, 0, headerSize(tag)+len(best.body)), best.algo, tag)

	return append(frame, best.body...)
}
