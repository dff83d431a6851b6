package asset

import (
	"errors"
	"testing"
)

func TestThenAfterResolveRunsImmediately(t *testing.T) {
	f := NewFuture[int]()
	f.Resolve(7)

	got := 0
	f.Then(func(v int) { got = v })
	if got != 7 {
		t.Errorf("Then got %d, want 7", got)
	}
}

func TestResolveOnce(t *testing.T) {
	f := NewFuture[int]()
	calls := 0
	f.Then(func(int) { calls++ })

	f.Resolve(1)
	f.Resolve(2)
	f.Reject(errors.New("late"))

	if calls != 1 {
		t.Errorf("Then ran %d times, want 1", calls)
	}
	if done, err := f.Done(); !done || err != nil {
		t.Errorf("Done() = %v, %v; want true, nil", done, err)
	}
}

func TestCatch(t *testing.T) {
	boom := errors.New("boom")
	f := NewFuture[string]()
	var caught error
	thenRan := false
	f.Then(func(string) { thenRan = true }).Catch(func(err error) { caught = err })

	f.Reject(boom)

	if !errors.Is(caught, boom) {
		t.Errorf("Catch got %v, want %v", caught, boom)
	}
	if thenRan {
		t.Error("Then ran on a rejected future")
	}
}

func TestMap(t *testing.T) {
	tests := []struct {
		name    string
		in      int
		wantErr bool
	}{
		{"ok", 4, false},
		{"mapper error", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewFuture[int]()
			out := Map(src, func(v int) (int, error) {
				if v < 0 {
					return 0, errors.New("negative")
				}
				return v * 2, nil
			})

			got := 0
			out.Then(func(v int) { got = v })
			src.Resolve(tt.in)

			done, err := out.Done()
			if !done {
				t.Fatal("mapped future not settled")
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != 8 {
				t.Errorf("mapped value = %d, want 8", got)
			}
		})
	}
}

func TestMapPropagatesRejection(t *testing.T) {
	boom := errors.New("boom")
	src := NewFuture[int]()
	out := Map(src, func(v int) (int, error) { return v, nil })

	src.Reject(boom)

	if _, err := out.Done(); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

func TestJoinFiresOnceAfterAll(t *testing.T) {
	a, b, c := NewFuture[int](), NewFuture[string](), NewFuture[bool]()
	fired := 0
	Join(a, b, c).Then(func(struct{}) { fired++ })

	a.Resolve(1)
	b.Resolve("x")
	if fired != 0 {
		t.Fatalf("barrier fired with one input outstanding")
	}
	c.Resolve(true)
	c.Resolve(false)

	if fired != 1 {
		t.Errorf("barrier fired %d times, want 1", fired)
	}
}

func TestJoinAlreadyResolved(t *testing.T) {
	a := NewFuture[int]()
	a.Resolve(1)

	fired := false
	Join(a).Then(func(struct{}) { fired = true })
	if !fired {
		t.Error("barrier over settled futures did not fire")
	}

	empty := false
	Join().Then(func(struct{}) { empty = true })
	if !empty {
		t.Error("empty barrier did not fire")
	}
}

func TestJoinRejectsOnFirstError(t *testing.T) {
	boom := errors.New("boom")
	a, b := NewFuture[int](), NewFuture[int]()
	var caught []error
	fired := false
	Join(a, b).Then(func(struct{}) { fired = true }).Catch(func(err error) { caught = append(caught, err) })

	a.Reject(boom)
	b.Reject(errors.New("second"))

	if fired {
		t.Error("barrier resolved despite a rejection")
	}
	if len(caught) != 1 || !errors.Is(caught[0], boom) {
		t.Errorf("caught = %v, want [boom]", caught)
	}
}
