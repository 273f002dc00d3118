package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name                        string
		replaying, muted, recording bool
		want                        string
	}{
		{"playing", false, false, false, "W/S or arrows: move | M: mute | Q: quit"},
		{"muted and recording", false, true, true, "W/S or arrows: move | M: mute | Q: quit | MUTED | REC"},
		{"replay", true, false, false, "REPLAY | M: mute | Q: quit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusLine(tt.replaying, tt.muted, tt.recording); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestNewLogger_Nop(t *testing.T) {
	log, err := newLogger("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.Core().Enabled(-1) {
		t.Error("expected nop logger to have no enabled levels")
	}
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.log")
	log, err := newLogger(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Info("point scored")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"point scored"`) {
		t.Errorf("expected JSON log line, got %q", string(data))
	}
}
