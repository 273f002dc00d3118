package replay

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegok/solopong/internal/game"
	"github.com/diegok/solopong/internal/lifecycle"
	"github.com/diegok/solopong/internal/protocol"
)

func TestRecorder_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	rec, err := NewRecorder(&buf, protocol.Header{TickRate: 60, Seed: 7, AISpeed: 2.5}, nil)
	require.NoError(t, err)

	for tick := 1; tick <= 3; tick++ {
		state := protocol.GameState{Tick: tick, Playing: true, Ball: protocol.BallState{X: float64(tick)}}
		require.NoError(t, rec.Record(state), "record tick %d", tick)
	}
	rec.OnLifecycleEvent(lifecycle.WinUser)
	require.NoError(t, rec.Close())

	trace, err := Load(&buf)
	require.NoError(t, err)

	assert.Equal(t, Version, trace.Header.Version, "header should carry the trace version")
	assert.Equal(t, int64(7), trace.Header.Seed)
	require.Len(t, trace.Frames, 3)
	assert.Equal(t, 3.0, trace.Last().Ball.X, "last frame should be the final tick")
	require.Len(t, trace.Notices, 1)
	assert.Equal(t, protocol.LifecycleNotice{Tick: 3, Event: "win_user"}, trace.Notices[0])
}

func TestLoad_Empty(t *testing.T) {
	_, err := Load(&bytes.Buffer{})
	assert.Error(t, err, "an empty stream is not a trace")
}

func TestLoad_MissingHeader(t *testing.T) {
	var buf bytes.Buffer
	codec := protocol.NewEncoder(&buf)
	require.NoError(t, codec.Encode(&protocol.Message{Type: protocol.MsgGameState, Payload: protocol.GameState{Tick: 1}}))

	_, err := Load(&buf)
	assert.Error(t, err, "a trace must open with a header")
}

func TestLoad_WrongVersion(t *testing.T) {
	var buf bytes.Buffer
	codec := protocol.NewEncoder(&buf)
	require.NoError(t, codec.Encode(&protocol.Message{Type: protocol.MsgHeader, Payload: protocol.Header{Version: 99}}))

	_, err := Load(&buf)
	assert.Error(t, err, "unknown versions should be rejected")
}

type failingWriter struct {
	after int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("disk full")
	}
	w.after--
	return len(p), nil
}

func TestRecorder_KeepsFirstError(t *testing.T) {
	w := &failingWriter{after: 100}
	rec, err := NewRecorder(w, protocol.Header{}, nil)
	require.NoError(t, err)

	w.after = 0
	assert.Error(t, rec.Record(protocol.GameState{Tick: 1}))

	rec.OnLifecycleEvent(lifecycle.WinAI)
	assert.Error(t, rec.Err(), "Err should keep the write failure")
	assert.Equal(t, 0, rec.Frames())
}

func TestCreateOpen_RecordsMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.trace")
	rec, err := Create(path, protocol.Header{TickRate: game.TickRate}, nil)
	require.NoError(t, err)

	m, err := game.NewMatch(game.Options{Seed: 3, Clock: lifecycle.NewManualClock(time.Unix(0, 0))})
	require.NoError(t, err)
	m.Machine.SubscribeAll(rec)
	m.Start()

	for i := 0; i < 10; i++ {
		m.Step()
		require.NoError(t, rec.Record(m.Snapshot()))
	}
	require.NoError(t, rec.Close())

	trace, err := Open(path)
	require.NoError(t, err)

	require.Len(t, trace.Frames, 10)
	assert.Equal(t, 10, trace.Frames[9].Tick)
	assert.Len(t, trace.Frames[0].Paddles, 2, "every frame should carry both paddles")
	require.Len(t, trace.Notices, 1)
	assert.Equal(t, "start_new_game", trace.Notices[0].Event)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.trace"))
	assert.Error(t, err)
}
