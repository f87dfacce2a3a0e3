package carousel

import "testing"

func TestNewCardDefaults(t *testing.T) {
	c := NewCard("card", 120, 80)
	if c.Name != "card" {
		t.Errorf("Name = %q, want %q", c.Name, "card")
	}
	if c.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if c.Width() != 120 || c.Height != 80 {
		t.Errorf("size = %vx%v, want 120x80", c.Width(), c.Height)
	}
	if c.Scale() != 1 || c.Opacity() != 1 || c.Rotation() != 0 || c.TranslationX() != 0 {
		t.Errorf("transform = %v %v %v %v, want 1 1 0 0", c.Scale(), c.Opacity(), c.Rotation(), c.TranslationX())
	}
	if !c.Visible() {
		t.Error("new card should be visible")
	}
	if c.Color != ColorWhite {
		t.Errorf("Color = %v, want white", c.Color)
	}
}

func TestCardUniqueIDs(t *testing.T) {
	a := NewCard("a", 1, 1)
	b := NewCard("b", 1, 1)
	if a.ID == b.ID {
		t.Errorf("IDs should be unique: %d, %d", a.ID, b.ID)
	}
}

func TestCardImplementsSurface(t *testing.T) {
	var s Surface = NewCard("a", 1, 1)
	_ = s // compile-time interface check
}

func TestCardSetterNotifiesOutsideBatch(t *testing.T) {
	c := NewCard("a", 1, 1)
	calls := 0
	c.OnTransformChanged = func(*Card) { calls++ }
	c.SetScale(0.5)
	c.SetOpacity(0.5)
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestCardBatchNotifiesOnce(t *testing.T) {
	c := NewCard("a", 1, 1)
	calls := 0
	c.OnTransformChanged = func(got *Card) {
		calls++
		if got.Scale() != 0.5 || got.TranslationX() != 10 {
			t.Errorf("observer saw partial update: scale=%v x=%v", got.Scale(), got.TranslationX())
		}
	}

	c.BatchBegin()
	c.BatchBegin()
	c.SetScale(0.5)
	c.BatchCommit()
	if calls != 0 {
		t.Fatal("inner commit should not notify")
	}
	c.SetTranslationX(10)
	if !c.InBatch() {
		t.Error("InBatch should be true before the outer commit")
	}
	c.BatchCommit()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if c.InBatch() {
		t.Error("InBatch should be false after the outer commit")
	}
}

func TestCardEmptyBatchDoesNotNotify(t *testing.T) {
	c := NewCard("a", 1, 1)
	calls := 0
	c.OnTransformChanged = func(*Card) { calls++ }
	c.BatchBegin()
	c.BatchCommit()
	c.BatchCommit() // unbalanced commit is ignored
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}

func TestCardWhenMeasuredImmediate(t *testing.T) {
	c := NewCard("a", 10, 1)
	ran := false
	c.WhenMeasured(func() { ran = true })
	if !ran {
		t.Error("measured card should run the callback immediately")
	}
	if c.PendingMeasurements() != 0 {
		t.Errorf("PendingMeasurements = %d, want 0", c.PendingMeasurements())
	}
}

func TestCardWhenMeasuredDeferred(t *testing.T) {
	c := NewCard("a", -1, 1)
	calls := 0
	c.WhenMeasured(func() { calls++ })

	c.SetWidth(-1)
	if calls != 0 {
		t.Fatal("callback should wait for a valid width")
	}
	c.SetWidth(50)
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	// One-shot: later size changes do not re-run it.
	c.SetWidth(60)
	if calls != 1 {
		t.Errorf("calls = %d after second resize, want 1", calls)
	}
}

func TestCardDispose(t *testing.T) {
	c := NewCard("a", -1, 1)
	calls := 0
	c.WhenMeasured(func() { calls++ })
	c.Dispose()

	if !c.IsDisposed() {
		t.Fatal("IsDisposed should be true")
	}
	if c.ID != 0 {
		t.Errorf("ID = %d, want 0 after dispose", c.ID)
	}
	c.SetWidth(10)
	if calls != 0 {
		t.Error("pending measurement should be dropped on dispose")
	}
	c.Dispose() // second call is a no-op
}
