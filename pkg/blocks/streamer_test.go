package blocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/events"
)

func testStreamer(pub *fakePublisher) (*Streamer, *time.Time) {
	s := NewStreamer(pub, &fakeSeqs{}, testScope(), nil)
	clock := time.Unix(1700000000, 0)
	s.now = func() time.Time { return clock }
	return s, &clock
}

func TestStreamer_FirstUpdateFlushesImmediately(t *testing.T) {
	pub := &fakePublisher{}
	s, _ := testStreamer(pub)
	s.SetBlock("blk-1")

	s.Update(context.Background(), "Let me look", "")

	require.Len(t, pub.deltas, 1)
	frame := pub.deltas[0]
	assert.Equal(t, events.EventTypeBlockDelta, frame.Event)
	assert.Equal(t, "comp-1", frame.CompletionID)
	assert.Equal(t, 1, frame.Seq)
	assert.Equal(t, "blk-1", frame.Data.BlockID)
	assert.Equal(t, "reasoning", frame.Data.Field)
	assert.Equal(t, "Let me look", frame.Data.Delta)
	assert.False(t, frame.Data.Replace)
}

func TestStreamer_FramesCarryIncreasingSeqs(t *testing.T) {
	pub := &fakePublisher{}
	s, clock := testStreamer(pub)
	s.SetBlock("blk-1")

	s.Update(context.Background(), "Let me look", "")
	*clock = clock.Add(200 * time.Millisecond)
	s.Update(context.Background(), "Let me look further", "and here is text")

	require.Len(t, pub.deltas, 3)
	for i := 1; i < len(pub.deltas); i++ {
		assert.Greater(t, pub.deltas[i].Seq, pub.deltas[i-1].Seq)
	}
}

func TestStreamer_CoalescesInsideWindow(t *testing.T) {
	pub := &fakePublisher{}
	s, clock := testStreamer(pub)
	s.SetBlock("blk-1")

	s.Update(context.Background(), "Let me look", "")
	require.Len(t, pub.deltas, 1)

	*clock = clock.Add(50 * time.Millisecond)
	s.Update(context.Background(), "Let me look at the orders", "")
	assert.Len(t, pub.deltas, 1, "update inside the window stays pending")

	*clock = clock.Add(80 * time.Millisecond)
	s.Update(context.Background(), "Let me look at the orders table", "")
	require.Len(t, pub.deltas, 2)
	assert.Equal(t, " at the orders table", pub.deltas[1].Data.Delta,
		"coalesced delta spans everything since the last flush")
}

func TestStreamer_RewriteEmitsSnapshot(t *testing.T) {
	pub := &fakePublisher{}
	s, clock := testStreamer(pub)
	s.SetBlock("blk-1")

	s.Update(context.Background(), "", "Hello wor")
	require.Len(t, pub.deltas, 1)

	*clock = clock.Add(200 * time.Millisecond)
	s.Update(context.Background(), "", "Goodbye")
	require.Len(t, pub.deltas, 2)
	frame := pub.deltas[1]
	assert.True(t, frame.Data.Replace)
	assert.Equal(t, "Goodbye", frame.Data.Snapshot)
	assert.Empty(t, frame.Data.Delta)
}

func TestStreamer_SilentUntilBound(t *testing.T) {
	pub := &fakePublisher{}
	s, _ := testStreamer(pub)

	s.Update(context.Background(), "early thought", "early text")
	assert.Empty(t, pub.deltas, "nothing goes out before a block exists")

	s.SetBlock("blk-1")
	s.Complete(context.Background())

	require.Len(t, pub.deltas, 2)
	assert.Equal(t, "early thought", pub.deltas[0].Data.Delta)
	assert.Equal(t, "reasoning", pub.deltas[0].Data.Field)
	assert.Equal(t, "early text", pub.deltas[1].Data.Delta)
	assert.Equal(t, "content", pub.deltas[1].Data.Field)
}

func TestStreamer_CompleteFlushesPending(t *testing.T) {
	pub := &fakePublisher{}
	s, clock := testStreamer(pub)
	s.SetBlock("blk-1")

	s.Update(context.Background(), "a", "")
	*clock = clock.Add(10 * time.Millisecond)
	s.Update(context.Background(), "ab", "")
	require.Len(t, pub.deltas, 1)

	s.Complete(context.Background())
	require.Len(t, pub.deltas, 2)
	assert.Equal(t, "b", pub.deltas[1].Data.Delta)

	s.Complete(context.Background())
	assert.Len(t, pub.deltas, 2, "nothing pending, nothing emitted")
}

func TestStreamer_UnchangedUpdateIsNoop(t *testing.T) {
	pub := &fakePublisher{}
	s, clock := testStreamer(pub)
	s.SetBlock("blk-1")

	s.Update(context.Background(), "same", "same")
	*clock = clock.Add(time.Second)
	s.Update(context.Background(), "same", "same")
	assert.Len(t, pub.deltas, 2, "one flush for each field, none for the repeat")
}

func TestStreamer_RebindResetsBaseline(t *testing.T) {
	pub := &fakePublisher{}
	s, clock := testStreamer(pub)
	s.SetBlock("blk-1")
	s.Update(context.Background(), "carried over", "")
	require.Len(t, pub.deltas, 1)

	s.SetBlock("blk-1")
	s.Complete(context.Background())
	assert.Len(t, pub.deltas, 1, "rebinding the same block keeps the baseline")

	s.SetBlock("blk-2")
	*clock = clock.Add(time.Second)
	s.Complete(context.Background())
	require.Len(t, pub.deltas, 2)
	assert.Equal(t, "blk-2", pub.deltas[1].Data.BlockID)
	assert.Equal(t, "carried over", pub.deltas[1].Data.Delta,
		"new block starts from an empty baseline")
}
