package doctor

import (
	"strings"
	"testing"

	"github.com/example/go-kana-signal/internal/codec"
)

func TestCheckTokenOrder(t *testing.T) {
	longFirst := func(g string) (string, bool) {
		var b strings.Builder
		for i := 0; i < len(g); {
			switch {
			case strings.HasPrefix(g[i:], "bc"):
				b.WriteByte('-')
				i += 2
			case g[i] == 'b':
				b.WriteByte('.')
				i++
			default:
				return "", false
			}
		}
		return b.String(), true
	}

	if err := checkTokenOrder(longFirst, "b", "bc"); err != nil {
		t.Fatalf("checkTokenOrder(longFirst) = %v; want nil", err)
	}

	never := func(string) (string, bool) { return "", false }
	if err := checkTokenOrder(never, "b", "bc"); err == nil {
		t.Fatal("checkTokenOrder(never) = nil; want error")
	}
}

func TestCheckRoundTrip(t *testing.T) {
	identityEnc := func(s string) codec.EncodeResult { return codec.EncodeResult{Signal: s} }
	identityDec := func(s string) codec.DecodeResult { return codec.DecodeResult{Kana: s} }

	if err := checkRoundTrip("か", identityEnc, identityDec); err != nil {
		t.Fatalf("identity round trip = %v; want nil", err)
	}

	badDec := func(string) codec.DecodeResult { return codec.DecodeResult{HasError: true} }
	if err := checkRoundTrip("か", identityEnc, badDec); err == nil {
		t.Fatal("expected error when decode reports unconvertible input")
	}
}
