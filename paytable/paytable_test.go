package paytable

import "testing"

func TestLookup(t *testing.T) {
	slot, ok := Lookup("wild")
	if !ok {
		t.Fatal("wild slot missing")
	}
	if slot.Word != "WILD" || !slot.Lettered {
		t.Errorf("wild slot = %+v", slot)
	}

	if _, ok := Lookup("no-such-slot"); ok {
		t.Error("unexpected hit for unknown slot id")
	}
}

func TestAllKeepsPaytableOrder(t *testing.T) {
	all := All()
	if len(all) < 5 {
		t.Fatalf("only %d preset slots", len(all))
	}
	if all[0].ID != "wild" {
		t.Errorf("first slot = %s, want wild", all[0].ID)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0].Word = "MUTATED"
	if again := All(); again[0].Word == "MUTATED" {
		t.Error("All exposes internal preset storage")
	}
}

func TestLetteredSlotsHaveWords(t *testing.T) {
	for _, s := range All() {
		if s.Lettered && s.Word == "" {
			t.Errorf("slot %s is lettered but has no word", s.ID)
		}
		if s.Hint.W <= 0 || s.Hint.H <= 0 {
			t.Errorf("slot %s has a degenerate placement hint: %+v", s.ID, s.Hint)
		}
	}
}
