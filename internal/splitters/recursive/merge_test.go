package recursive

import "testing"

// recordingObserver captures oversize notifications for assertions.
type recordingObserver struct {
	sizes  []int
	limits []int
}

func (o *recordingObserver) ChunkOversized(size, limit int) {
	o.sizes = append(o.sizes, size)
	o.limits = append(o.limits, limit)
}

func TestMerge_EmptyFragmentsProduceNoChunks(t *testing.T) {
	s, err := New(WithChunkSize(10), WithChunkOverlap(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chunks := s.merge([]string{"", "  ", "\n"}, " ")
	if len(chunks) != 0 {
		t.Errorf("expected no chunks from whitespace fragments, got %v", chunks)
	}
}

func TestMerge_TrimsJoinedChunks(t *testing.T) {
	s, err := New(WithChunkSize(100), WithChunkOverlap(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chunks := s.merge([]string{" padded ", "words "}, " ")
	assertChunks(t, []string{"padded  words"}, chunks)
}

func TestMerge_SingleTrailingFragmentSurvivesIntact(t *testing.T) {
	s, err := New(WithChunkSize(10), WithChunkOverlap(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The trim loop never pops the window below zero, so a lone fragment
	// approaching the limit stays whole instead of being dropped.
	chunks := s.merge([]string{"aaa", "bbbbbbbbb"}, " ")
	assertChunks(t, []string{"aaa", "bbbbbbbbb"}, chunks)
}

func TestMerge_NotifiesObserverOnOversizedWindow(t *testing.T) {
	observer := &recordingObserver{}
	s, err := New(
		WithChunkSize(5),
		WithChunkOverlap(0),
		WithObserver(observer),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A fragment at or above the limit enters an empty window unchecked;
	// the next fragment trips the oversize notification, and the chunk is
	// still emitted.
	chunks := s.merge([]string{"aaaaaaaa", "bb"}, " ")

	assertChunks(t, []string{"aaaaaaaa", "bb"}, chunks)
	if len(observer.sizes) != 1 {
		t.Fatalf("expected 1 oversize notification, got %d", len(observer.sizes))
	}
	if observer.sizes[0] != 8 {
		t.Errorf("expected reported size 8, got %d", observer.sizes[0])
	}
	if observer.limits[0] != 5 {
		t.Errorf("expected reported limit 5, got %d", observer.limits[0])
	}
}

func TestMerge_OverlapWindowCarriesTrailingFragments(t *testing.T) {
	s, err := New(WithChunkSize(8), WithChunkOverlap(4), WithSeparators([]string{" "}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chunks := s.merge([]string{"aaa", "bbb", "ccc", "ddd"}, " ")

	// "bbb" (3 bytes) fits the 4-byte overlap budget and reappears at the
	// head of the following chunk.
	assertChunks(t, []string{"aaa bbb", "bbb ccc", "ccc ddd"}, chunks)
}
