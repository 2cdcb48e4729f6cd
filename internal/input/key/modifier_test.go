package key

import "testing"

func TestModifierHas(t *testing.T) {
	m := ModControl | ModMeta

	if !m.Has(ModControl) {
		t.Error("should have control")
	}
	if !m.Has(ModMeta) {
		t.Error("should have meta")
	}
	if m.Has(ModShift) {
		t.Error("should not have shift")
	}
	if m.Has(ModUsleep) {
		t.Error("should not have usleep")
	}
}

func TestModifierWithWithout(t *testing.T) {
	m := ModNone.With(ModControl).With(ModHyper)
	if !m.Has(ModControl) || !m.Has(ModHyper) {
		t.Error("With did not add modifiers")
	}

	m = m.Without(ModControl)
	if m.Has(ModControl) {
		t.Error("Without did not remove control")
	}
	if !m.Has(ModHyper) {
		t.Error("Without removed hyper")
	}

	m = m.Without(ModHyper)
	if !m.IsEmpty() {
		t.Error("modifiers not empty after removing all")
	}
}

func TestModifierIsEmpty(t *testing.T) {
	if !ModNone.IsEmpty() {
		t.Error("ModNone not empty")
	}
	if ModRelease.IsEmpty() {
		t.Error("ModRelease empty")
	}
}

func TestModifierNames(t *testing.T) {
	names := (ModMeta | ModControl | ModRelease).Names()
	want := []string{"control", "meta", "release"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	if ModNone.Names() != nil {
		t.Errorf("ModNone.Names() = %v, want nil", ModNone.Names())
	}

	for _, name := range want {
		mod, ok := ModifierFromName(name)
		if !ok || mod.Names()[0] != name {
			t.Errorf("ModifierFromName(%q) = %v, %v", name, mod, ok)
		}
	}
	if _, ok := ModifierFromName("turbo"); ok {
		t.Error("ModifierFromName accepted an unknown name")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModControl, "control"},
		{ModControl | ModMeta, "control+meta"},
		{ModShift | ModRelease, "shift+release"},
		{ModLock | ModMod2 | ModMod5, "lock+mod2+mod5"},
		{ModLShift | ModRShift | ModUsleep, "lshift+rshift+usleep"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%#x).String() = %q, want %q", uint16(tt.mod), got, tt.want)
		}
	}
}
