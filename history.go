package easel

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// snapshot is one entry of a SnapshotStack: either the buffer itself or its
// pixels as a zstd frame.
type snapshot struct {
	width  int
	height int
	buf    *PixelBuffer
	packed []byte
}

// size returns the memory held by the snapshot.
func (s *snapshot) size() int {
	if s.buf != nil {
		return s.buf.Bytes()
	}
	return len(s.packed)
}

// Shared zstd coders. EncodeAll and DecodeAll are safe for concurrent use,
// so one pair serves every compressed stack.
var (
	zstdOnce sync.Once
	zstdEnc  *zstd.Encoder
	zstdDec  *zstd.Decoder
	zstdErr  error
)

func zstdCoders() (*zstd.Encoder, *zstd.Decoder, error) {
	zstdOnce.Do(func() {
		zstdEnc, zstdErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
		if zstdErr != nil {
			return
		}
		zstdDec, zstdErr = zstd.NewReader(nil)
	})
	return zstdEnc, zstdDec, zstdErr
}

// SnapshotStack is a LIFO of full buffer copies. Each snapshot is owned by
// the stack until it is popped.
//
// A stack is unbounded unless a limit is set, in which case pushing onto a
// full stack evicts the oldest snapshot.
type SnapshotStack struct {
	items    []snapshot
	limit    int
	compress bool
}

// NewSnapshotStack creates a stack. limit <= 0 means unbounded. When
// compress is set, snapshots are held as zstd frames.
func NewSnapshotStack(limit int, compress bool) *SnapshotStack {
	return &SnapshotStack{limit: limit, compress: compress}
}

// Len returns the number of snapshots.
func (s *SnapshotStack) Len() int {
	return len(s.items)
}

// Bytes returns the memory held by all snapshots.
func (s *SnapshotStack) Bytes() int {
	n := 0
	for i := range s.items {
		n += s.items[i].size()
	}
	return n
}

// Push takes ownership of buf and places it on top of the stack.
// The caller must not use buf afterwards.
func (s *SnapshotStack) Push(buf *PixelBuffer) {
	snap := snapshot{width: buf.width, height: buf.height, buf: buf}
	if s.compress {
		if enc, _, err := zstdCoders(); err == nil {
			snap.packed = enc.EncodeAll(buf.data, make([]byte, 0, len(buf.data)/8))
			snap.buf = nil
		} else {
			Logger().Warn("easel: snapshot compression unavailable", "err", err)
		}
	}

	if s.limit > 0 && len(s.items) >= s.limit {
		n := copy(s.items, s.items[len(s.items)-s.limit+1:])
		clear(s.items[n:])
		s.items = s.items[:n]
	}
	s.items = append(s.items, snap)
}

// Pop removes the top snapshot and returns it as a buffer. It returns
// (nil, nil) on an empty stack. If a compressed snapshot cannot be decoded
// the stack is left unchanged and the error is returned.
func (s *SnapshotStack) Pop() (*PixelBuffer, error) {
	if len(s.items) == 0 {
		return nil, nil
	}
	top := &s.items[len(s.items)-1]
	buf := top.buf
	if buf == nil {
		_, dec, err := zstdCoders()
		if err != nil {
			return nil, fmt.Errorf("easel: decode snapshot: %w", err)
		}
		data, err := dec.DecodeAll(top.packed, make([]byte, 0, top.width*top.height*4))
		if err != nil {
			return nil, fmt.Errorf("easel: decode snapshot: %w", err)
		}
		if len(data) != top.width*top.height*4 {
			return nil, fmt.Errorf("easel: decode snapshot: got %d bytes, want %d",
				len(data), top.width*top.height*4)
		}
		buf = &PixelBuffer{width: top.width, height: top.height, data: data}
	}
	*top = snapshot{}
	s.items = s.items[:len(s.items)-1]
	return buf, nil
}

// Clear drops every snapshot.
func (s *SnapshotStack) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// History is the undo/redo policy over two snapshot stacks.
//
// History is linear: recording a new action after an undo discards the redo
// stack for good.
type History struct {
	undo *SnapshotStack
	redo *SnapshotStack
}

// NewHistory creates an empty history. limit and compress apply to both
// stacks; see NewSnapshotStack.
func NewHistory(limit int, compress bool) *History {
	return &History{
		undo: NewSnapshotStack(limit, compress),
		redo: NewSnapshotStack(limit, compress),
	}
}

// Begin records the state of buf before a user action mutates it. It pushes a
// deep copy onto the undo stack and clears the redo stack.
func (h *History) Begin(buf *PixelBuffer) {
	h.undo.Push(buf.Copy())
	h.redo.Clear()
}

// Undo moves cur onto the redo stack and returns the most recent undo
// snapshot as the new current buffer. With nothing to undo it returns
// (cur, false, nil).
func (h *History) Undo(cur *PixelBuffer) (*PixelBuffer, bool, error) {
	return h.swap(h.undo, h.redo, cur)
}

// Redo is the mirror of Undo.
func (h *History) Redo(cur *PixelBuffer) (*PixelBuffer, bool, error) {
	return h.swap(h.redo, h.undo, cur)
}

func (h *History) swap(from, to *SnapshotStack, cur *PixelBuffer) (*PixelBuffer, bool, error) {
	if from.Len() == 0 {
		return cur, false, nil
	}
	next, err := from.Pop()
	if err != nil {
		return cur, false, err
	}
	to.Push(cur)
	return next, true, nil
}

// CanUndo reports whether Undo would restore a snapshot.
func (h *History) CanUndo() bool {
	return h.undo.Len() > 0
}

// CanRedo reports whether Redo would restore a snapshot.
func (h *History) CanRedo() bool {
	return h.redo.Len() > 0
}

// Len returns the sizes of the undo and redo stacks.
func (h *History) Len() (undo, redo int) {
	return h.undo.Len(), h.redo.Len()
}

// Bytes returns the memory held by both stacks.
func (h *History) Bytes() int {
	return h.undo.Bytes() + h.redo.Bytes()
}

// Reset drops all history.
func (h *History) Reset() {
	h.undo.Clear()
	h.redo.Clear()
}
