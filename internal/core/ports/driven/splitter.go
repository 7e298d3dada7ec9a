package driven

// TextSplitter splits text into an ordered sequence of bounded-size chunks.
// Implementations target a configured chunk size as a soft bound: a chunk
// may exceed it when the text offers no finer split point.
type TextSplitter interface {
	// SplitText splits the text. Empty input yields zero chunks.
	SplitText(text string) ([]string, error)
}
