package game

import (
	"testing"
)

func TestNewLoop_RequiresEntities(t *testing.T) {
	m, _ := newTestMatch(t)

	if _, err := NewLoop(nil, m.Player, m.AI, nil); err == nil {
		t.Error("expected error without a ball")
	}
	if _, err := NewLoop(m.Ball, nil, m.AI, nil); err == nil {
		t.Error("expected error without a player paddle")
	}
	if _, err := NewLoop(m.Ball, m.Player, nil, nil); err == nil {
		t.Error("expected error without an AI paddle")
	}
}

func TestLoop_AdvanceOrder(t *testing.T) {
	m, _ := newTestMatch(t)

	entities := m.Loop.Entities()
	want := []Kind{KindBall, KindPlayer, KindAI}
	if len(entities) != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), len(entities))
	}
	for i, k := range want {
		if entities[i].Kind() != k {
			t.Errorf("entity %d: expected %v, got %v", i, k, entities[i].Kind())
		}
	}
}

func TestLoop_CollisionSameTick(t *testing.T) {
	m, _ := newTestMatch(t)
	m.Start()
	m.Ball.place(12, 295)
	m.Ball.setDirection(-1, 0)

	m.Loop.Tick()

	if m.Loop.Hits() != 1 {
		t.Fatalf("expected 1 hit, got %d", m.Loop.Hits())
	}
	dx, dy := m.Ball.Direction()
	if dx != 1 || dy != 0 {
		t.Errorf("expected center strike (1,0), got (%f,%f)", dx, dy)
	}
}

func TestLoop_AICollisionSendsBallBack(t *testing.T) {
	m, _ := newTestMatch(t)
	m.Start()
	m.Ball.place(CourtWidth-22, 295)
	m.Ball.setDirection(1, 0)

	m.Loop.Tick()

	if m.Loop.Hits() != 1 {
		t.Fatalf("expected 1 hit, got %d", m.Loop.Hits())
	}
	dx, _ := m.Ball.Direction()
	if dx >= 0 {
		t.Errorf("expected ball to head back left, got DX=%f", dx)
	}
}

func TestLoop_NoCollisionInOpenCourt(t *testing.T) {
	m, _ := newTestMatch(t)
	m.Start()
	m.Ball.place(500, 295)

	m.Loop.Tick()

	if m.Loop.Hits() != 0 {
		t.Errorf("expected no hits mid-court, got %d", m.Loop.Hits())
	}
	if m.Loop.Ticks() != 1 {
		t.Errorf("expected 1 tick, got %d", m.Loop.Ticks())
	}
}
