package list

import (
	"math/rand"
	"slices"
	"testing"
)

func TestSelectGuards(t *testing.T) {
	f := newFixture(4, true, false, 2)

	f.selection.Select(&f.items[2], Anchored)
	if len(f.value.Get()) != 0 {
		t.Errorf("Select(disabled) changed value to %v", f.value.Get())
	}

	f.gotoIndex(1)
	f.selection.Select(nil, Anchored)
	f.selection.Select(nil, Anchored)
	if got := f.value.Get(); !slices.Equal(got, []string{"v1"}) {
		t.Errorf("value = %v, want [v1]", got)
	}
	if f.selection.RangeStartIndex() != 1 {
		t.Errorf("RangeStartIndex() = %d, want 1", f.selection.RangeStartIndex())
	}
}

func TestSelectSingleReplaces(t *testing.T) {
	f := newFixture(3, false, false)
	f.selection.Select(&f.items[0], Anchored)
	f.selection.Select(&f.items[2], Anchored)
	if got := f.value.Get(); !slices.Equal(got, []string{"v2"}) {
		t.Errorf("value = %v, want [v2]", got)
	}
}

func TestToggleAndToggleOne(t *testing.T) {
	f := newFixture(3, true, false)
	f.selection.Select(&f.items[0], Anchored)

	f.gotoIndex(1)
	f.selection.Toggle(nil)
	if got := f.value.Get(); !slices.Equal(got, []string{"v0", "v1"}) {
		t.Errorf("after Toggle value = %v, want [v0 v1]", got)
	}
	f.selection.Toggle(nil)
	if got := f.value.Get(); !slices.Equal(got, []string{"v0"}) {
		t.Errorf("after second Toggle value = %v, want [v0]", got)
	}

	f.gotoIndex(2)
	f.selection.ToggleOne()
	if got := f.value.Get(); !slices.Equal(got, []string{"v2"}) {
		t.Errorf("after ToggleOne value = %v, want [v2]", got)
	}
	f.selection.ToggleOne()
	if got := f.value.Get(); len(got) != 0 {
		t.Errorf("after second ToggleOne value = %v, want []", got)
	}
}

func TestSelectAllAndToggleAll(t *testing.T) {
	f := newFixture(4, true, false, 3)
	f.gotoIndex(0)

	f.selection.ToggleAll()
	if got := f.value.Get(); !slices.Equal(got, []string{"v0", "v1", "v2"}) {
		t.Errorf("after ToggleAll value = %v, want [v0 v1 v2]", got)
	}
	f.selection.ToggleAll()
	if got := f.value.Get(); len(got) != 0 {
		t.Errorf("after second ToggleAll value = %v, want []", got)
	}

	single := newFixture(3, false, false)
	single.selection.SelectAll()
	if got := single.value.Get(); len(got) != 0 {
		t.Errorf("SelectAll() in single mode set %v", got)
	}
}

func TestDeselectAllKeepsDisabled(t *testing.T) {
	f := newFixture(3, true, false, 1)
	f.value.Set([]string{"v0", "v1", "gone"})

	f.selection.DeselectAll()
	if got := f.value.Get(); !slices.Equal(got, []string{"v1"}) {
		t.Errorf("value = %v, want [v1]", got)
	}
}

func TestSelectOneCollapses(t *testing.T) {
	f := newFixture(4, true, false)
	f.value.Set([]string{"v0", "v1", "v3"})
	f.gotoIndex(2)

	f.selection.SelectOne()
	if got := f.value.Get(); !slices.Equal(got, []string{"v2"}) {
		t.Errorf("value = %v, want [v2]", got)
	}
}

func TestSingleSelectInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f := newFixture(6, false, true, 4)

	for i := 0; i < 500; i++ {
		if i == 250 {
			// A disabled value set from outside must not let a second value in.
			f.value.Set([]string{"v4"})
		}
		f.gotoIndex(rng.Intn(len(f.items)))
		switch rng.Intn(5) {
		case 0:
			f.selection.Select(nil, Anchored)
		case 1:
			f.selection.Toggle(nil)
		case 2:
			f.selection.SelectOne()
		case 3:
			f.selection.ToggleOne()
		case 4:
			f.selection.SelectRange(Anchored)
		}
		if got := f.value.Get(); len(got) > 1 {
			t.Fatalf("step %d: value = %v, want at most one", i, got)
		}
	}
}

func TestRangeGrowsAndShrinks(t *testing.T) {
	f := newFixture(6, true, false)

	f.gotoIndex(1)
	f.selection.SelectOne()

	f.gotoIndex(4)
	f.selection.SelectRange(Anchored)
	if got := f.value.Get(); !slices.Equal(got, []string{"v1", "v2", "v3", "v4"}) {
		t.Fatalf("after extending value = %v, want [v1 v2 v3 v4]", got)
	}

	// Reversing past the anchor drops the old span.
	f.gotoIndex(0)
	f.selection.SelectRange(Anchored)
	got := slices.Sorted(slices.Values(f.value.Get()))
	if !slices.Equal(got, []string{"v0", "v1"}) {
		t.Errorf("after reversing value = %v, want [v0 v1]", got)
	}

	// Back to the anchor leaves only the anchor.
	f.gotoIndex(1)
	f.selection.SelectRange(Anchored)
	if got := f.value.Get(); !slices.Equal(got, []string{"v1"}) {
		t.Errorf("back at anchor value = %v, want [v1]", got)
	}
}

func TestRangeSymmetricShrink(t *testing.T) {
	for k := 0; k < 6; k++ {
		f := newFixture(6, true, false)
		f.gotoIndex(2)
		f.selection.SelectOne()

		f.gotoIndex(k)
		f.selection.SelectRange(Anchored)
		f.gotoIndex(2)
		f.selection.SelectRange(Anchored)

		if got := f.value.Get(); !slices.Equal(got, []string{"v2"}) {
			t.Errorf("k=%d: value = %v, want [v2]", k, got)
		}
	}
}

func TestRangeUnanchoredKeepsAnchor(t *testing.T) {
	f := newFixture(5, true, false)
	f.gotoIndex(2)
	f.selection.SelectOne()

	f.gotoIndex(4)
	f.selection.SelectRange(Unanchored)
	if f.selection.RangeStartIndex() != 2 {
		t.Errorf("RangeStartIndex() = %d, want 2", f.selection.RangeStartIndex())
	}
	if got := f.selection.RangeEndIndex(); got != 4 {
		t.Errorf("RangeEndIndex() = %d, want 4", got)
	}
	if got := len(f.selection.SelectedItems()); got != 3 {
		t.Errorf("len(SelectedItems()) = %d, want 3", got)
	}
}

func TestItemsFromIndexOrder(t *testing.T) {
	f := newFixture(5, true, false)
	f.gotoIndex(1)

	span := f.selection.itemsFromIndex(3)
	var ids []string
	for _, it := range span {
		ids = append(ids, it.id)
	}
	want := []string{"item-3", "item-2", "item-1"}
	if !slices.Equal(ids, want) {
		t.Errorf("itemsFromIndex(3) = %v, want %v", ids, want)
	}
	if got := f.selection.itemsFromIndex(-1); got != nil {
		t.Errorf("itemsFromIndex(-1) = %v, want nil", got)
	}
}
