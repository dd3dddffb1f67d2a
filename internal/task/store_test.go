package task_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tasklite/internal/persist"
	"tasklite/internal/task"
	"tasklite/internal/testutil"
)

// newStore returns a loaded store over fresh fake storage, with
// sequential IDs t1, t2, ...
func newStore(t *testing.T) (*task.Store, *testutil.FakeStorage) {
	t.Helper()
	st := testutil.NewFakeStorage()
	store := task.NewStore(persist.New(st, nil), nil, task.WithIDGenerator(sequentialIDs()))
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return store, st
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}
}

func mustAdd(t *testing.T, store *task.Store, title string) task.Task {
	t.Helper()
	added, err := store.Add(context.Background(), title)
	if err != nil {
		t.Fatalf("add %q: %v", title, err)
	}
	return added
}

func titles(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestStore_LoadEmpty(t *testing.T) {
	store, _ := newStore(t)

	if store.Tasks() == nil {
		t.Error("expected non-nil empty sequence")
	}
	if len(store.Tasks()) != 0 {
		t.Errorf("expected 0 tasks, got %d", len(store.Tasks()))
	}
}

func TestStore_LoadMalformedIsEmpty(t *testing.T) {
	st := testutil.NewFakeStorage()
	st.Seed(persist.Key, "not json at all")
	store := task.NewStore(persist.New(st, nil), nil)

	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("expected malformed data to be discarded, got %v", err)
	}
	if len(store.Tasks()) != 0 {
		t.Errorf("expected 0 tasks, got %d", len(store.Tasks()))
	}

	// The corrupt value is replaced on the next write.
	if _, err := store.Add(context.Background(), "fresh start"); err != nil {
		t.Fatalf("add: %v", err)
	}
	reloaded := task.NewStore(persist.New(st, nil), nil)
	if err := reloaded.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(reloaded.Tasks()) != 1 || reloaded.Tasks()[0].Title != "fresh start" {
		t.Errorf("expected corrupt data to be overwritten, got %#v", reloaded.Tasks())
	}
}

func TestStore_LoadReadError(t *testing.T) {
	st := testutil.NewFakeStorage()
	st.GetErr = errors.New("permission denied")
	store := task.NewStore(persist.New(st, nil), nil)

	if err := store.Load(context.Background()); err == nil {
		t.Error("expected read error to propagate")
	}
}

func TestStore_AddPrepends(t *testing.T) {
	store, st := newStore(t)

	before := store.Tasks()
	added := mustAdd(t, store, "Buy milk")

	tasks := store.Tasks()
	if len(tasks) != len(before)+1 {
		t.Fatalf("expected %d tasks, got %d", len(before)+1, len(tasks))
	}
	if !tasks[0].Equal(task.Task{ID: added.ID, Title: "Buy milk", Completed: false}) {
		t.Errorf("unexpected first task %#v", tasks[0])
	}
	if st.Sets() != 1 {
		t.Errorf("expected 1 write, got %d", st.Sets())
	}

	mustAdd(t, store, "Walk dog")
	got := titles(store.Tasks())
	if got[0] != "Walk dog" || got[1] != "Buy milk" {
		t.Errorf("expected newest first, got %v", got)
	}
}

func TestStore_AddKeepsTitleVerbatim(t *testing.T) {
	store, _ := newStore(t)

	added := mustAdd(t, store, "  padded  ")
	if added.Title != "  padded  " {
		t.Errorf("expected title to be stored as given, got %q", added.Title)
	}
}

func TestStore_AddRejectsBlankTitle(t *testing.T) {
	store, st := newStore(t)

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := store.Add(context.Background(), title)
		if !errors.Is(err, task.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle for %q, got %v", title, err)
		}
	}
	if len(store.Tasks()) != 0 {
		t.Errorf("expected no tasks, got %d", len(store.Tasks()))
	}
	if st.Sets() != 0 {
		t.Errorf("expected no writes, got %d", st.Sets())
	}
}

func TestStore_AddUniqueIDs(t *testing.T) {
	st := testutil.NewFakeStorage()
	st.Seed(persist.Key, `[{"id":"t1","title":"loaded","completed":false}]`)
	store := task.NewStore(persist.New(st, nil), nil, task.WithIDGenerator(sequentialIDs()))
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	// The generator's first ID collides with the loaded task.
	added := mustAdd(t, store, "new")
	if added.ID == "t1" {
		t.Fatal("expected a fresh ID, got a reused one")
	}

	seen := map[string]bool{}
	for _, tk := range store.Tasks() {
		if seen[tk.ID] {
			t.Errorf("duplicate id %q", tk.ID)
		}
		seen[tk.ID] = true
	}
}

func TestStore_DefaultIDsAreUnique(t *testing.T) {
	store := task.NewStore(persist.New(testutil.NewFakeStorage(), nil), nil)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		added := mustAdd(t, store, fmt.Sprintf("task %d", i))
		if added.ID == "" || seen[added.ID] {
			t.Fatalf("bad id %q", added.ID)
		}
		seen[added.ID] = true
	}
}

func TestStore_AddWriteFailureKeepsSnapshot(t *testing.T) {
	store, st := newStore(t)
	mustAdd(t, store, "Buy milk")

	st.SetErr = testutil.ErrStorageFull
	_, err := store.Add(context.Background(), "Walk dog")
	if !errors.Is(err, testutil.ErrStorageFull) {
		t.Fatalf("expected ErrStorageFull, got %v", err)
	}
	if got := titles(store.Tasks()); len(got) != 1 || got[0] != "Buy milk" {
		t.Errorf("expected snapshot unchanged, got %v", got)
	}
}

func TestStore_ToggleFlipsOnlyTarget(t *testing.T) {
	store, _ := newStore(t)
	milk := mustAdd(t, store, "Buy milk")
	mustAdd(t, store, "Walk dog")
	before := store.Tasks()

	changed, err := store.Toggle(context.Background(), milk.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !changed {
		t.Error("expected toggle to report a change")
	}

	after := store.Tasks()
	if len(after) != len(before) {
		t.Fatalf("expected %d tasks, got %d", len(before), len(after))
	}
	for i := range after {
		if after[i].ID == milk.ID {
			if !after[i].Completed {
				t.Error("expected toggled task to be completed")
			}
			continue
		}
		if !after[i].Equal(before[i]) {
			t.Errorf("task %d changed: %#v -> %#v", i, before[i], after[i])
		}
	}

	// The old snapshot is not modified in place.
	for _, tk := range before {
		if tk.Completed {
			t.Errorf("previous snapshot was mutated: %#v", tk)
		}
	}
}

func TestStore_ToggleTwiceIsIdentity(t *testing.T) {
	store, _ := newStore(t)
	milk := mustAdd(t, store, "Buy milk")
	mustAdd(t, store, "Walk dog")
	original := store.Tasks()

	ctx := context.Background()
	if _, err := store.Toggle(ctx, milk.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if _, err := store.Toggle(ctx, milk.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if !task.EqualSlices(store.Tasks(), original) {
		t.Errorf("expected original sequence, got %#v", store.Tasks())
	}
}

func TestStore_UnknownIDIsNoOp(t *testing.T) {
	store, st := newStore(t)
	mustAdd(t, store, "Buy milk")
	before := store.Tasks()
	writes := st.Sets()

	ctx := context.Background()
	changed, err := store.Toggle(ctx, "missing")
	if err != nil || changed {
		t.Errorf("toggle unknown id: changed=%v err=%v", changed, err)
	}
	changed, err = store.Remove(ctx, "missing")
	if err != nil || changed {
		t.Errorf("remove unknown id: changed=%v err=%v", changed, err)
	}

	if !task.EqualSlices(store.Tasks(), before) {
		t.Errorf("expected unchanged sequence, got %#v", store.Tasks())
	}
	if st.Sets() != writes {
		t.Errorf("expected no writes, got %d", st.Sets()-writes)
	}
}

func TestStore_Remove(t *testing.T) {
	store, _ := newStore(t)
	milk := mustAdd(t, store, "Buy milk")
	mustAdd(t, store, "Walk dog")
	mustAdd(t, store, "Call mom")

	changed, err := store.Remove(context.Background(), milk.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !changed {
		t.Error("expected remove to report a change")
	}

	if len(store.Tasks()) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(store.Tasks()))
	}
	if _, ok := store.Find(milk.ID); ok {
		t.Error("expected removed task to be gone")
	}
	got := titles(store.Tasks())
	if got[0] != "Call mom" || got[1] != "Walk dog" {
		t.Errorf("expected remaining order preserved, got %v", got)
	}
}

func TestStore_ClearCompleted(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()
	a := mustAdd(t, store, "a")
	mustAdd(t, store, "b")
	c := mustAdd(t, store, "c")
	mustAdd(t, store, "d")
	for _, id := range []string{a.ID, c.ID} {
		if _, err := store.Toggle(ctx, id); err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}
	activeBefore := store.ActiveCount()

	removed, err := store.ClearCompleted(ctx)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected 2 removed, got %d", removed)
	}
	if store.ActiveCount() != activeBefore {
		t.Errorf("expected active count %d, got %d", activeBefore, store.ActiveCount())
	}
	if store.CompletedCount() != 0 {
		t.Errorf("expected completed count 0, got %d", store.CompletedCount())
	}
	got := titles(store.Tasks())
	if len(got) != 2 || got[0] != "d" || got[1] != "b" {
		t.Errorf("expected [d b], got %v", got)
	}
}

func TestStore_ClearCompletedNothingSkipsWrite(t *testing.T) {
	store, st := newStore(t)
	mustAdd(t, store, "Buy milk")
	before := store.Tasks()
	writes := st.Sets()

	removed, err := store.ClearCompleted(context.Background())
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if removed != 0 {
		t.Errorf("expected 0 removed, got %d", removed)
	}
	if st.Sets() != writes {
		t.Errorf("expected no write, got %d", st.Sets()-writes)
	}
	if &store.Tasks()[0] != &before[0] {
		t.Error("expected the same snapshot to be kept")
	}
}

func TestStore_Counts(t *testing.T) {
	store, _ := newStore(t)
	a := mustAdd(t, store, "a")
	mustAdd(t, store, "b")
	mustAdd(t, store, "c")
	if _, err := store.Toggle(context.Background(), a.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if store.ActiveCount() != 2 {
		t.Errorf("expected 2 active, got %d", store.ActiveCount())
	}
	if store.CompletedCount() != 1 {
		t.Errorf("expected 1 completed, got %d", store.CompletedCount())
	}
}

func TestStore_PersistsAcrossReload(t *testing.T) {
	store, st := newStore(t)
	ctx := context.Background()
	milk := mustAdd(t, store, "Buy milk")
	mustAdd(t, store, "Walk dog")
	if _, err := store.Toggle(ctx, milk.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	reloaded := task.NewStore(persist.New(st, nil), nil)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !task.EqualSlices(reloaded.Tasks(), store.Tasks()) {
		t.Errorf("expected %#v, got %#v", store.Tasks(), reloaded.Tasks())
	}
}

func TestStore_Scenario(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	milk := mustAdd(t, store, "Buy milk")
	mustAdd(t, store, "Walk dog")

	if got := titles(store.Tasks()); len(got) != 2 || got[0] != "Walk dog" || got[1] != "Buy milk" {
		t.Fatalf("expected [Walk dog Buy milk], got %v", got)
	}

	if _, err := store.Toggle(ctx, milk.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if store.CompletedCount() != 1 || store.ActiveCount() != 1 {
		t.Errorf("expected 1 active / 1 completed, got %d / %d", store.ActiveCount(), store.CompletedCount())
	}

	if _, err := store.ClearCompleted(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := titles(store.Tasks()); len(got) != 1 || got[0] != "Walk dog" {
		t.Errorf("expected [Walk dog], got %v", got)
	}
}
