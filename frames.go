package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"alien-descent/game"
)

// frameWriter streams snapshots as a sequence of msgpack values, one per
// frame, for an external renderer reading the other end of a pipe.
type frameWriter struct {
	buf *bufio.Writer
	enc *msgpack.Encoder
}

func newFrameWriter(w io.Writer) *frameWriter {
	buf := bufio.NewWriter(w)
	return &frameWriter{buf: buf, enc: msgpack.NewEncoder(buf)}
}

// Frame encodes and flushes one snapshot
func (f *frameWriter) Frame(snap game.Snapshot) error {
	if err := f.enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := f.buf.Flush(); err != nil {
		return fmt.Errorf("flush snapshot: %w", err)
	}
	return nil
}

// readFrames decodes every snapshot in r
func readFrames(r io.Reader) ([]game.Snapshot, error) {
	dec := msgpack.NewDecoder(r)
	var frames []game.Snapshot
	for {
		var snap game.Snapshot
		err := dec.Decode(&snap)
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			return frames, fmt.Errorf("decode snapshot %d: %w", len(frames), err)
		}
		frames = append(frames, snap)
	}
}
