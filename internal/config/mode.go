package config

import (
	"fmt"
	"strings"
)

const (
	ModeAuto   = "auto"
	ModeEncode = "encode"
	ModeDecode = "decode"
)

// NormalizeMode lower-cases and validates a mode name. Empty means auto;
// "enc" and "dec" are accepted as aliases.
func NormalizeMode(raw string) (string, error) {
	mode := strings.ToLower(strings.TrimSpace(raw))
	if mode == "" {
		mode = ModeAuto
	}
	switch mode {
	case ModeAuto, ModeEncode, ModeDecode:
		return mode, nil
	case "enc":
		return ModeEncode, nil
	case "dec":
		return ModeDecode, nil
	default:
		return "", fmt.Errorf(
			"invalid mode %q (expected %s|%s|%s)",
			raw,
			ModeAuto,
			ModeEncode,
			ModeDecode,
		)
	}
}
