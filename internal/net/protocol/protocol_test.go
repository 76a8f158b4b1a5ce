package protocol

import (
	"encoding/json"
	"testing"

	"go.uber.org/zap"

	"github.com/connorfinan79/Arena/internal/combat"
)

func TestFullDiffCarriesEveryField(t *testing.T) {
	c := combat.NewCharacter(7, "Ada", 2, combat.PlayerControlled, combat.Vec3{X: 3})
	c.ChampionID = "archer"
	c.Health = 80

	d := FullDiff(c, 0)
	if d.ID != 7 || d.Name != "Ada" || d.Team != 2 || d.Champion != "archer" {
		t.Fatalf("identity fields = %+v", d)
	}
	if d.Health == nil || *d.Health != 80 {
		t.Fatal("health must be populated")
	}
	if d.Pos == nil || d.Pos.X != 3 {
		t.Fatal("position must be populated")
	}
	if d.Dead == nil || d.Level == nil || d.Yaw == nil || d.MoveSpeed == nil {
		t.Fatal("a full diff leaves no field nil")
	}
}

func TestSparseDiffOmitsUnchangedFields(t *testing.T) {
	h := 55.0
	raw, err := json.Marshal(CharacterDiff{ID: 7, Health: &h})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["pos"]; ok {
		t.Fatal("unchanged fields must not appear on the wire")
	}
	if m["health"] != 55.0 {
		t.Fatalf("health on the wire = %v", m["health"])
	}
}

func TestRegistryGatesOnSessionState(t *testing.T) {
	reg := NewRegistry(zap.NewNop())
	var calls []string
	reg.Register(CIntentJoin, []SessionState{StateJoining}, func(any, *ClientIntent) {
		calls = append(calls, "join")
	})
	reg.Register(CIntentStop, []SessionState{StateInArena}, func(any, *ClientIntent) {
		calls = append(calls, "stop")
	})

	reg.Dispatch(nil, StateJoining, &ClientIntent{Type: CIntentJoin})
	reg.Dispatch(nil, StateInArena, &ClientIntent{Type: CIntentJoin}) // wrong state
	reg.Dispatch(nil, StateJoining, &ClientIntent{Type: CIntentStop}) // wrong state
	reg.Dispatch(nil, StateInArena, &ClientIntent{Type: "bogus"})     // unknown type

	if len(calls) != 1 || calls[0] != "join" {
		t.Fatalf("calls = %v, want only the joining-state join", calls)
	}
}
