package recursive

import "strings"

// merge accumulates an ordered run of fragments into chunks no larger than
// the chunk size, sliding an overlap window between consecutive chunks.
//
// The running total is the sum of fragment lengths and deliberately ignores
// the length of the joining separators, so a joined chunk can exceed the
// chunk size by up to (fragments-1) * len(separator). This keeps the bound
// soft rather than exact.
func (s *Splitter) merge(fragments []string, separator string) []string {
	var chunks []string
	var window []string
	total := 0

	for _, fragment := range fragments {
		length := len(fragment)

		if total+length >= s.chunkSize && len(window) > 0 {
			if total > s.chunkSize {
				s.observer.ChunkOversized(total, s.chunkSize)
			}

			if chunk, ok := joinFragments(window, separator); ok {
				chunks = append(chunks, chunk)
			}

			// Shrink the window from the front until the buffered length
			// fits the overlap budget and leaves room for the incoming
			// fragment. A single remaining fragment is never dropped below
			// zero, so one oversized trailing fragment can survive intact.
			for total > s.chunkOverlap || (total+length > s.chunkSize && total > 0) {
				total -= len(window[0])
				window = window[1:]
			}
		}

		window = append(window, fragment)
		total += length
	}

	if chunk, ok := joinFragments(window, separator); ok {
		chunks = append(chunks, chunk)
	}

	return chunks
}

// joinFragments joins a fragment window with the separator and trims
// surrounding whitespace. ok is false when the result is empty, which
// guards against emitting empty chunks.
func joinFragments(fragments []string, separator string) (string, bool) {
	joined := strings.TrimSpace(strings.Join(fragments, separator))
	if joined == "" {
		return "", false
	}
	return joined, true
}
