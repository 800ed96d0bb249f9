package main

import (
	"bytes"
	"testing"

	"alien-descent/game"
)

func TestFrameWriterStream(t *testing.T) {
	s := game.NewState(game.Config{Seed: 1, Session: "frames"})
	var buf bytes.Buffer
	w := newFrameWriter(&buf)

	if err := w.Frame(s.Snapshot()); err != nil {
		t.Fatalf("frame 0: %v", err)
	}
	s.SetPath([]game.Point{{X: 10, Y: 10}, {X: 20, Y: 20}, {X: 30, Y: 30}})
	s.Tick()
	if err := w.Frame(s.Snapshot()); err != nil {
		t.Fatalf("frame 1: %v", err)
	}

	frames, err := readFrames(&buf)
	if err != nil {
		t.Fatalf("read frames: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].Turn != 0 || frames[1].Turn != 1 {
		t.Errorf("unexpected turns %d, %d", frames[0].Turn, frames[1].Turn)
	}
	if frames[1].Session != "frames" || len(frames[1].Aliens) != s.AlienCount() {
		t.Errorf("unexpected frame %+v", frames[1])
	}
	if len(frames[1].Path) == 0 {
		t.Error("path should be streamed")
	}
}
