package replay

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/diegok/solopong/internal/lifecycle"
	"github.com/diegok/solopong/internal/protocol"
)

// Version is written into every trace header
const Version = 1

// Recorder writes a match to a trace: one header, then a frame per tick with
// lifecycle notices interleaved where they happened.
type Recorder struct {
	codec  *protocol.Codec
	closer io.Closer
	log    *zap.Logger

	tick   int
	frames int
	err    error
}

// NewRecorder writes h to w and returns a recorder appending to it
func NewRecorder(w io.Writer, h protocol.Header, log *zap.Logger) (*Recorder, error) {
	if log == nil {
		log = zap.NewNop()
	}
	h.Version = Version

	r := &Recorder{
		codec: protocol.NewEncoder(w),
		log:   log,
	}
	if err := r.codec.Encode(&protocol.Message{Type: protocol.MsgHeader, Payload: h}); err != nil {
		return nil, errors.Wrap(err, "write trace header")
	}
	return r, nil
}

// Create opens path for writing and records into it. Close releases the file.
func Create(path string, h protocol.Header, log *zap.Logger) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create trace file")
	}
	r, err := NewRecorder(f, h, log)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// Record appends one frame
func (r *Recorder) Record(state protocol.GameState) error {
	if r.err != nil {
		return r.err
	}
	if err := r.codec.Encode(&protocol.Message{Type: protocol.MsgGameState, Payload: state}); err != nil {
		r.err = errors.Wrapf(err, "record tick %d", state.Tick)
		return r.err
	}
	r.tick = state.Tick
	r.frames++
	return nil
}

// OnLifecycleEvent appends a notice stamped with the last recorded tick.
// Write failures are kept for Err since subscribers cannot return them.
func (r *Recorder) OnLifecycleEvent(e lifecycle.Event) {
	if r.err != nil {
		return
	}
	notice := protocol.LifecycleNotice{Tick: r.tick, Event: e.String()}
	if err := r.codec.Encode(&protocol.Message{Type: protocol.MsgLifecycle, Payload: notice}); err != nil {
		r.err = errors.Wrapf(err, "record %s", e)
	}
}

// Frames returns how many frames were written
func (r *Recorder) Frames() int {
	return r.frames
}

// Err returns the first write error, if any
func (r *Recorder) Err() error {
	return r.err
}

// Close flushes nothing but closes the underlying file when Create opened it
func (r *Recorder) Close() error {
	r.log.Info("trace closed", zap.Int("frames", r.frames), zap.Error(r.err))
	if r.closer == nil {
		return nil
	}
	return errors.Wrap(r.closer.Close(), "close trace file")
}

// Trace is a decoded recording
type Trace struct {
	Header  protocol.Header
	Frames  []protocol.GameState
	Notices []protocol.LifecycleNotice
}

// Load decodes a trace from r. The stream must start with a header.
func Load(r io.Reader) (*Trace, error) {
	codec := protocol.NewDecoder(r)

	msg, err := codec.Decode()
	if err == io.EOF {
		return nil, errors.New("empty trace")
	}
	if err != nil {
		return nil, err
	}
	header, ok := msg.Payload.(protocol.Header)
	if msg.Type != protocol.MsgHeader || !ok {
		return nil, errors.Errorf("trace must start with a header, got message type %d", msg.Type)
	}
	if header.Version != Version {
		return nil, errors.Errorf("unsupported trace version %d", header.Version)
	}

	trace := &Trace{Header: header}
	for {
		msg, err := codec.Decode()
		if err == io.EOF {
			return trace, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "after %d frames", len(trace.Frames))
		}

		switch msg.Type {
		case protocol.MsgGameState:
			if state, ok := msg.Payload.(protocol.GameState); ok {
				trace.Frames = append(trace.Frames, state)
			}
		case protocol.MsgLifecycle:
			if notice, ok := msg.Payload.(protocol.LifecycleNotice); ok {
				trace.Notices = append(trace.Notices, notice)
			}
		default:
			return nil, errors.Errorf("unexpected message type %d in trace", msg.Type)
		}
	}
}

// Open loads the trace stored at path
func Open(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open trace file")
	}
	defer f.Close()

	return Load(f)
}

// Last returns the final frame, or a zero frame for an empty trace
func (t *Trace) Last() protocol.GameState {
	if len(t.Frames) == 0 {
		return protocol.GameState{}
	}
	return t.Frames[len(t.Frames)-1]
}
