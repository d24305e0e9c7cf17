package table

import (
	"errors"
	"strings"
	"testing"
)

func TestDefault_SignalsUnique(t *testing.T) {
	seen := map[string]string{}
	for _, e := range Default.Entries() {
		if prev, ok := seen[e.Signal]; ok {
			t.Fatalf("signal %q shared by %q and %q", e.Signal, prev, e.Kana)
		}
		seen[e.Signal] = e.Kana
	}
	if len(seen) != 53 {
		t.Errorf("entry count = %d; want 53", len(seen))
	}
}

func TestDefault_ReverseExcludesMarks(t *testing.T) {
	if _, ok := Default.Kana(Default.DakutenSignal()); ok {
		t.Error("dakuten signal must not resolve to a kana")
	}
	if _, ok := Default.Kana(Default.HandakutenSignal()); ok {
		t.Error("handakuten signal must not resolve to a kana")
	}
	if got := Default.DakutenSignal(); got != ".." {
		t.Errorf("DakutenSignal() = %q; want %q", got, "..")
	}
	if got := Default.HandakutenSignal(); got != "..--." {
		t.Errorf("HandakutenSignal() = %q; want %q", got, "..--.")
	}
}

func TestDefault_Lookups(t *testing.T) {
	tests := []struct {
		kana   string
		signal string
	}{
		{"へ", "."},
		{"む", "-"},
		{"あ", "--.--"},
		{"ん", ".-.-."},
		{"ー", ".--.-"},
		{"、", ".-.-.-"},
		{"。", ".-.-.."},
	}
	for _, tt := range tests {
		t.Run(tt.kana, func(t *testing.T) {
			sig, ok := Default.Signal(tt.kana)
			if !ok || sig != tt.signal {
				t.Fatalf("Signal(%q) = %q, %v; want %q, true", tt.kana, sig, ok, tt.signal)
			}
			kana, ok := Default.Kana(tt.signal)
			if !ok || kana != tt.kana {
				t.Fatalf("Kana(%q) = %q, %v; want %q, true", tt.signal, kana, ok, tt.kana)
			}
		})
	}

	if _, ok := Default.Signal("A"); ok {
		t.Error("Signal(\"A\") should not be found")
	}
	if _, ok := Default.Kana("......."); ok {
		t.Error("Kana(\".......\") should not be found")
	}
}

func TestDefault_DiacriticMaps(t *testing.T) {
	if v, ok := Default.Voiced("か"); !ok || v != "が" {
		t.Errorf("Voiced(か) = %q, %v", v, ok)
	}
	if v, ok := Default.Voiced("う"); !ok || v != "ゔ" {
		t.Errorf("Voiced(う) = %q, %v", v, ok)
	}
	if _, ok := Default.Voiced("あ"); ok {
		t.Error("あ has no dakuten variant")
	}
	if v, ok := Default.SemiVoiced("ほ"); !ok || v != "ぽ" {
		t.Errorf("SemiVoiced(ほ) = %q, %v", v, ok)
	}
	if _, ok := Default.SemiVoiced("か"); ok {
		t.Error("か has no handakuten variant")
	}
	if len(Default.VoicedPairs()) != 21 {
		t.Errorf("VoicedPairs() has %d entries; want 21", len(Default.VoicedPairs()))
	}
	if len(Default.SemiVoicedPairs()) != 5 {
		t.Errorf("SemiVoicedPairs() has %d entries; want 5", len(Default.SemiVoicedPairs()))
	}
}

func TestDefault_FoldSmall(t *testing.T) {
	for small, base := range map[rune]rune{'っ': 'つ', 'ゃ': 'や', 'ぁ': 'あ', 'ゎ': 'わ'} {
		got, ok := Default.FoldSmall(small)
		if !ok || got != base {
			t.Errorf("FoldSmall(%q) = %q, %v; want %q", small, got, ok, base)
		}
	}
	if _, ok := Default.FoldSmall('あ'); ok {
		t.Error("base kana should not fold")
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	entries := Default.Entries()
	entries[0].Signal = "mutated"
	if sig, _ := Default.Signal(entries[0].Kana); sig == "mutated" {
		t.Fatal("Entries must not expose internal state")
	}
}

func marks() []Entry {
	return []Entry{{DakutenMark, ".."}, {HandakutenMark, "..--."}}
}

func TestNew_RejectsDuplicateSignal(t *testing.T) {
	entries := append(marks(), Entry{"か", ".-"}, Entry{"き", ".-"})
	_, err := New(entries, nil, nil, nil)
	if !errors.Is(err, ErrDuplicateSignal) {
		t.Fatalf("New() error = %v; want ErrDuplicateSignal", err)
	}
	if !strings.Contains(err.Error(), "か") || !strings.Contains(err.Error(), "き") {
		t.Errorf("error should name both entries: %v", err)
	}
}

func TestNew_AcceptsDiacriticBases(t *testing.T) {
	entries := append(marks(), Entry{"か", "."}, Entry{"は", "-"})
	tbl, err := New(entries,
		map[string]string{"か": "が", "は": "ば"},
		map[string]string{"は": "ぱ"},
		map[rune]rune{'ゃ': 'や'},
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if v, ok := tbl.Voiced("か"); !ok || v != "が" {
		t.Errorf("Voiced(か) = %q, %v; want が, true", v, ok)
	}
	if v, ok := tbl.SemiVoiced("は"); !ok || v != "ぱ" {
		t.Errorf("SemiVoiced(は) = %q, %v; want ぱ, true", v, ok)
	}
	if k, ok := tbl.Kana("-"); !ok || k != "は" {
		t.Errorf("Kana(-) = %q, %v; want は, true", k, ok)
	}
}

func TestNew_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name       string
		entries    []Entry
		dakuten    map[string]string
		handakuten map[string]string
	}{
		{name: "empty signal", entries: append(marks(), Entry{"か", ""})},
		{name: "bad alphabet", entries: append(marks(), Entry{"か", ".x-"})},
		{name: "duplicate kana", entries: append(marks(), Entry{"か", "."}, Entry{"か", "-"})},
		{name: "missing dakuten mark", entries: []Entry{{HandakutenMark, "..--."}, {"か", "."}}},
		{name: "missing handakuten mark", entries: []Entry{{DakutenMark, ".."}, {"か", "."}}},
		{
			name:    "dakuten base without signal",
			entries: append(marks(), Entry{"か", "."}),
			dakuten: map[string]string{"さ": "ざ"},
		},
		{
			name:       "handakuten base without signal",
			entries:    append(marks(), Entry{"か", "."}),
			handakuten: map[string]string{"は": "ぱ"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.entries, tt.dakuten, tt.handakuten, nil); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestMustNew_PanicsOnInvalidTable(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	mustNew(append(marks(), Entry{"か", ".."}), nil, nil, nil)
}
