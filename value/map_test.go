package value

import (
	"fmt"
	"testing"
)

func TestMapSetGet(t *testing.T) {
	m := NewMap(8)
	v := Num(42, pos)
	m.Set("x", v)

	got, ok := m.Get("x")
	if !ok || got != v {
		t.Fatalf("Get(x) = (%v, %v), want (%v, true)", got, ok, v)
	}

	if _, ok := m.Get("missing"); ok {
		t.Error("Get(missing) reported a hit")
	}
}

func TestMapSetReplacesExistingKey(t *testing.T) {
	m := NewMap(8)
	m.Set("x", Num(1, pos))
	m.Set("x", Num(2, pos))

	got, ok := m.Get("x")
	if !ok || got.Number != 2 {
		t.Fatalf("Get(x) = %v, want 2", got)
	}
	if m.count != 1 {
		t.Errorf("count = %d, want 1 (replace should not grow count)", m.count)
	}
}

func TestMapGrowsAndKeepsAllEntries(t *testing.T) {
	m := NewMap(8)
	const n = 200
	for i := 0; i < n; i++ {
		m.Set(fmt.Sprintf("key-%d", i), Num(float64(i), pos))
	}
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("key-%d", i)
		got, ok := m.Get(key)
		if !ok || got.Number != float64(i) {
			t.Fatalf("Get(%s) = (%v, %v), want (%d, true)", key, got, ok, i)
		}
	}
}

func TestMapHas(t *testing.T) {
	m := NewMap(8)
	m.Set("x", Nil(pos))
	if !m.Has("x") {
		t.Error("Has(x) = false, want true")
	}
	if m.Has("y") {
		t.Error("Has(y) = true, want false")
	}
}

func TestNewMapEnforcesMinimumCapacity(t *testing.T) {
	m := NewMap(1)
	if len(m.keys) < mapMinCapacity {
		t.Errorf("capacity = %d, want at least %d", len(m.keys), mapMinCapacity)
	}
}
