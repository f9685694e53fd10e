package featureflags

import "testing"

func TestEnabled_BooleanValues(t *testing.T) {
	m := NewManager("a=on,b=off,c=true,d=false,e=1,f=0")

	if !m.Enabled("a") || !m.Enabled("c") || !m.Enabled("e") {
		t.Fatal("expected enabled boolean values to evaluate true")
	}
	if m.Enabled("b") || m.Enabled("d") || m.Enabled("f") {
		t.Fatal("expected disabled boolean values to evaluate false")
	}
	if m.Enabled("missing") {
		t.Fatal("unknown flags must be off")
	}
}

func TestEnabled_PercentageValues(t *testing.T) {
	m := NewManager("always=100%,never=0%,canary=25%")

	if !m.Enabled("always") {
		t.Fatal("100% rollout should always be enabled")
	}
	if m.Enabled("never") {
		t.Fatal("0% rollout should always be disabled")
	}

	first := m.EnabledFor("canary", "10.0.0.7")
	for i := 0; i < 5; i++ {
		if got := m.EnabledFor("canary", "10.0.0.7"); got != first {
			t.Fatal("rollout evaluation must be deterministic per subject")
		}
	}

	if m.Enabled("canary") {
		t.Fatal("percentage rollout requires a subject")
	}
}

func TestDefaults(t *testing.T) {
	m := NewManager("")
	if !m.Enabled(PostFilters) || !m.Enabled(MediaDrop) {
		t.Fatal("default flags should be on")
	}

	m = NewManager("post_filters=off")
	if m.Enabled(PostFilters) {
		t.Fatal("configuration must override defaults")
	}
	if !m.Enabled(MediaDrop) {
		t.Fatal("untouched defaults must survive an override")
	}
}

func TestParseAndSnapshot(t *testing.T) {
	m := NewManager(" bad ,x=on, y = 20% ,z=off ")

	raw := m.Raw()
	if len(raw) != 3+len(Defaults) {
		t.Fatalf("expected %d parsed flags, got %d", 3+len(Defaults), len(raw))
	}
	if raw["x"] != "on" || raw["y"] != "20%" || raw["z"] != "off" {
		t.Fatalf("unexpected raw flags: %#v", raw)
	}

	snap := m.Snapshot("client-a")
	if !snap["x"] || snap["z"] {
		t.Fatalf("unexpected snapshot: %#v", snap)
	}

	var nilManager *Manager
	if nilManager.Enabled("x") {
		t.Fatal("nil manager must report every flag off")
	}
}
