package reactive

import "testing"

func TestEffectRunsImmediately(t *testing.T) {
	ctx := NewContext()
	state := ctx.NewStore(map[string]any{"count": 0})

	var lastSeen any
	ctx.Effect(func() {
		lastSeen = state.Get("count")
	})

	if lastSeen != 0 {
		t.Errorf("lastSeen = %v, want 0", lastSeen)
	}
}

func TestEffectRerunsOnWrite(t *testing.T) {
	ctx := NewContext()
	state := ctx.NewStore(map[string]any{"count": 0})

	var lastSeen any
	runs := 0
	ctx.Effect(func() {
		runs++
		lastSeen = state.Get("count")
	})

	state.Set("count", 5)

	if lastSeen != 5 {
		t.Errorf("lastSeen = %v, want 5", lastSeen)
	}
	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
}

func TestDistinctValueSuppression(t *testing.T) {
	ctx := NewContext()
	state := ctx.NewStore(map[string]any{"count": 3})

	runs := 0
	ctx.Effect(func() {
		runs++
		state.Get("count")
	})

	state.Set("count", 3)

	if runs != 1 {
		t.Errorf("runs = %d, want 1 (equal write must not notify)", runs)
	}
}

func TestDependencyIsolation(t *testing.T) {
	ctx := NewContext()
	a := ctx.NewStore(map[string]any{"x": 1})
	b := ctx.NewStore(map[string]any{"y": 1})

	runsA, runsB := 0, 0
	ctx.Effect(func() { runsA++; a.Get("x") })
	ctx.Effect(func() { runsB++; b.Get("y") })

	a.Set("x", 2)
	if runsA != 2 || runsB != 1 {
		t.Errorf("runsA = %d runsB = %d, want 2 and 1", runsA, runsB)
	}

	// Writing an untracked key triggers nothing.
	a.Set("untracked", 99)
	if runsA != 2 || runsB != 1 {
		t.Errorf("untracked write re-ran an effect: runsA = %d runsB = %d", runsA, runsB)
	}
}

func TestPerKeyGranularity(t *testing.T) {
	ctx := NewContext()
	state := ctx.NewStore(map[string]any{"a": 1, "b": 2})

	runs := 0
	ctx.Effect(func() { runs++; state.Get("a") })

	state.Set("b", 3)
	if runs != 1 {
		t.Errorf("runs = %d, want 1 (no whole-store invalidation)", runs)
	}
}

func TestDuplicateReadsFireOnce(t *testing.T) {
	ctx := NewContext()
	state := ctx.NewStore(map[string]any{"n": 1})

	runs := 0
	ctx.Effect(func() {
		runs++
		state.Get("n")
		state.Get("n")
		state.Get("n")
	})

	state.Set("n", 2)
	if runs != 2 {
		t.Errorf("runs = %d, want 2 (duplicate tracking must not double-fire)", runs)
	}
}

func TestConditionalDependenciesRerecorded(t *testing.T) {
	ctx := NewContext()
	state := ctx.NewStore(map[string]any{"flag": true, "a": 1, "b": 1})

	runs := 0
	ctx.Effect(func() {
		runs++
		if state.Get("flag").(bool) {
			state.Get("a")
		} else {
			state.Get("b")
		}
	})

	state.Set("flag", false) // run 2: now depends on flag and b
	state.Set("a", 99)       // stale dependency, must not fire

	if runs != 2 {
		t.Errorf("runs = %d, want 2 (stale source fired)", runs)
	}

	state.Set("b", 99)
	if runs != 3 {
		t.Errorf("runs = %d, want 3", runs)
	}
}

func TestContextIsolation(t *testing.T) {
	ctx1 := NewContext()
	ctx2 := NewContext()
	s1 := ctx1.NewStore(map[string]any{"v": 1})

	runs := 0
	ctx1.Effect(func() { runs++; s1.Get("v") })

	// An effect in ctx2 reading a ctx1 store while ctx1 is idle tracks
	// nothing: the active slot consulted is the store's own context's.
	ctx2.Effect(func() { s1.Peek("v") })

	s1.Set("v", 2)
	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
}

func TestUntracked(t *testing.T) {
	ctx := NewContext()
	state := ctx.NewStore(map[string]any{"n": 1})

	runs := 0
	ctx.Effect(func() {
		runs++
		ctx.Untracked(func() { state.Get("n") })
	})

	state.Set("n", 2)
	if runs != 1 {
		t.Errorf("runs = %d, want 1 (untracked read subscribed)", runs)
	}
}

func TestDeleteTriggers(t *testing.T) {
	ctx := NewContext()
	state := ctx.NewStore(map[string]any{"n": 1})

	runs := 0
	ctx.Effect(func() { runs++; state.Has("n") })

	state.Delete("n")
	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}

	state.Delete("n") // already gone, silent
	if runs != 2 {
		t.Errorf("runs = %d, want 2 (absent delete notified)", runs)
	}
}

func TestDispose(t *testing.T) {
	ctx := NewContext()
	state := ctx.NewStore(map[string]any{"n": 1})

	runs := 0
	e := ctx.Effect(func() { runs++; state.Get("n") })

	e.Dispose()
	state.Set("n", 2)

	if runs != 1 {
		t.Errorf("runs = %d, want 1 (disposed effect re-ran)", runs)
	}
}

func TestPanickingEffectReleasesSlot(t *testing.T) {
	ctx := NewContext()
	state := ctx.NewStore(map[string]any{"n": 1})

	func() {
		defer func() { recover() }()
		ctx.Effect(func() {
			state.Get("n")
			panic("boom")
		})
	}()

	if ctx.ActiveListener() != nil {
		t.Fatal("active-listener slot not released after panic")
	}

	// Tracking must still work afterwards.
	runs := 0
	ctx.Effect(func() { runs++; state.Get("other") })
	state.Set("other", 1)
	if runs != 2 {
		t.Errorf("runs = %d, want 2 (tracking corrupted after panic)", runs)
	}
}

func TestTriggerMissingKeyIsNoop(t *testing.T) {
	ctx := NewContext()
	state := ctx.NewStore(nil)

	// Nothing subscribed; must not panic or error.
	ctx.Trigger(state, "ghost")
}

func TestExplicitTrack(t *testing.T) {
	ctx := NewContext()
	state := ctx.NewStore(map[string]any{"n": 1})

	runs := 0
	ctx.Effect(func() {
		runs++
		ctx.Track(state, "n")
	})

	state.Set("n", 2)
	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
}

func TestEndToEndScenario(t *testing.T) {
	ctx := NewContext()
	state := ctx.NewStore(map[string]any{"count": 0})

	var lastSeen any
	otherRuns := 0
	ctx.Effect(func() { lastSeen = state.Get("count") })
	ctx.Effect(func() { otherRuns++; state.Get("unrelated") })

	if lastSeen != 0 {
		t.Fatalf("lastSeen = %v, want 0", lastSeen)
	}

	state.Set("count", 5)

	if lastSeen != 5 {
		t.Errorf("lastSeen = %v, want 5", lastSeen)
	}
	if otherRuns != 1 {
		t.Errorf("otherRuns = %d, want 1 (unrelated effect re-ran)", otherRuns)
	}
}

func TestStoreTransparency(t *testing.T) {
	ctx := NewContext()
	state := ctx.NewStore(map[string]any{"b": 2, "a": 1})

	if got := state.Get("missing"); got != nil {
		t.Errorf("Get(missing) = %v, want nil", got)
	}
	if state.Len() != 2 {
		t.Errorf("Len = %d, want 2", state.Len())
	}
	keys := state.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys = %v, want [a b]", keys)
	}
}
