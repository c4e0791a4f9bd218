package tags

import "testing"

func TestRegistryAddRemove(t *testing.T) {
	r := NewRegistry()

	if !r.Add(5, Cursed) {
		t.Fatal("first Add must succeed")
	}
	if r.Add(5, Cursed) {
		t.Error("repeated Add of the same tag must be idempotent")
	}
	if !r.Has(5, Cursed) {
		t.Error("Has() must see the tag")
	}
	if r.Has(5, Lucky) {
		t.Error("Has() must not see a different tag")
	}
	if r.Count(Cursed) != 1 {
		t.Errorf("Count(Cursed) = %d, want 1", r.Count(Cursed))
	}

	if !r.Remove(5, Cursed) {
		t.Error("Remove must succeed for a present tag")
	}
	if r.Remove(5, Cursed) {
		t.Error("Remove must fail for an absent tag")
	}
}

func TestRegistryMultipleTagsPerCard(t *testing.T) {
	r := NewRegistry()
	r.Add(12, Lucky)
	r.Add(12, Brutal)
	r.Add(12, Doubled)

	got := r.Tags(12)
	if len(got) != 3 {
		t.Fatalf("Tags(12) = %v, want three tags", got)
	}
	// Стабильный порядок по виду тега
	if got[0] != Lucky || got[1] != Brutal || got[2] != Doubled {
		t.Errorf("Tags(12) = %v, want [Lucky Brutal Doubled]", got)
	}
}

func TestRegistryDoubledInterface(t *testing.T) {
	r := NewRegistry()
	r.Add(7, Doubled)

	if !r.IsDoubled(7) {
		t.Error("IsDoubled must report the tag")
	}
	if !r.ClearDoubled(7) {
		t.Error("ClearDoubled must remove the tag")
	}
	if r.IsDoubled(7) {
		t.Error("tag must be gone after ClearDoubled")
	}
}

func TestParse(t *testing.T) {
	for name, want := range kindValues {
		got, err := Parse(name)
		if err != nil {
			t.Errorf("Parse(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("Parse(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := Parse("SHINY"); err == nil {
		t.Error("Parse of an unknown tag must fail")
	}
}
