package tokenizer

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		signal string
		want   string
	}{
		{"", ""},
		{".", "ﾋﾞ"},
		{"-", "ﾋﾞｰ"},
		{".-", "ﾋﾞﾋﾞｰ"},
		{"-.", "ﾋﾞｰﾋﾞ"},
		{"--.--", "ﾋﾞｰﾋﾞｰﾋﾞﾋﾞｰﾋﾞｰ"},
	}
	for _, tt := range tests {
		if got := Render(tt.signal); got != tt.want {
			t.Errorf("Render(%q) = %q, want %q", tt.signal, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		group  string
		want   string
		wantOK bool
	}{
		{name: "short", group: ShortToken, want: ".", wantOK: true},
		{name: "long", group: LongToken, want: "-", wantOK: true},
		{name: "short then long", group: ShortToken + LongToken, want: ".-", wantOK: true},
		{name: "long then short", group: LongToken + ShortToken, want: "-.", wantOK: true},
		{name: "long long", group: LongToken + LongToken, want: "--", wantOK: true},
		{name: "full-width form", group: "ビービ", want: "-.", wantOK: true},
		{name: "literal dots and dashes", group: ".-", want: ".-", wantOK: true},
		{name: "mixed literal and tokens", group: ".ﾋﾞｰ", want: ".-", wantOK: true},
		{name: "empty", group: "", wantOK: false},
		{name: "garbage", group: "xyz", wantOK: false},
		{name: "dangling long vowel", group: "ｰ", wantOK: false},
		{name: "trailing garbage", group: ShortToken + "x", wantOK: false},
		{name: "bare katakana hi", group: "ﾋ", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.group)
			if ok != tt.wantOK {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.group, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.group, got, tt.want)
			}
		})
	}
}

func TestParse_RoundTripsRender(t *testing.T) {
	for _, sig := range []string{".", "-", "..--.", "-.-.-", ".-.-.-", "----"} {
		got, ok := Parse(Render(sig))
		if !ok || got != sig {
			t.Errorf("Parse(Render(%q)) = %q, %v", sig, got, ok)
		}
	}
}

func TestAlphabet_PrefixTokens(t *testing.T) {
	a := NewAlphabet("b", "bb")

	tests := []struct {
		group string
		want  string
	}{
		{"b", "."},
		{"bb", "-"},
		{"bbb", "-."},
		{"bbbb", "--"},
	}
	for _, tt := range tests {
		got, ok := a.Parse(tt.group)
		if !ok || got != tt.want {
			t.Errorf("Parse(%q) = %q, %v; want %q", tt.group, got, ok, tt.want)
		}
	}
}
