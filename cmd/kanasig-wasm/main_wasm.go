//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/example/go-kana-signal/internal/codec"
	"github.com/example/go-kana-signal/internal/table"
	"github.com/example/go-kana-signal/internal/tokenizer"
)

func main() {
	kernel := map[string]any{
		"version":    "0.1.0-wasm",
		"shortToken": tokenizer.ShortToken,
		"longToken":  tokenizer.LongToken,
		"encode":     js.FuncOf(encodeText),
		"decode":     js.FuncOf(decodeText),
		"guessMode":  js.FuncOf(guessMode),
		"convert":    js.FuncOf(convertText),
		"table":      js.FuncOf(listTable),
	}

	js.Global().Set("KanaSignalKernel", js.ValueOf(kernel))
	println("KanaSignal wasm kernel loaded")
	select {}
}

func encodeText(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return errResult("missing text argument")
	}
	res := codec.Encode(args[0].String())
	return okResult(map[string]any{"text": res.Signal, "hasError": res.HasError})
}

func decodeText(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return errResult("missing text argument")
	}
	res := codec.Decode(args[0].String())
	return okResult(map[string]any{"text": res.Kana, "hasError": res.HasError})
}

// guessMode returns "encode", "decode" or null.
func guessMode(_ js.Value, args []js.Value) any {
	if len(args) < 1 {
		return errResult("missing text argument")
	}
	mode, ok := codec.GuessMode(args[0].String())
	if !ok {
		return okResult(map[string]any{"mode": nil})
	}
	return okResult(map[string]any{"mode": mode.String()})
}

// convertText takes (mode, text) and mirrors the host page's render step.
func convertText(_ js.Value, args []js.Value) any {
	if len(args) < 2 {
		return errResult("expected mode and text arguments")
	}
	mode, err := codec.ParseMode(args[0].String())
	if err != nil {
		return errResult(err.Error())
	}
	res := codec.Convert(mode, args[1].String())
	payload := map[string]any{
		"mode":     res.Mode.String(),
		"text":     res.Text,
		"hasError": res.HasError,
	}
	if err := res.Err(); err != nil {
		payload["warning"] = err.Error()
	}
	return okResult(payload)
}

func listTable(_ js.Value, _ []js.Value) any {
	entries := table.Default.Entries()
	rows := make([]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, map[string]any{
			"kana":    e.Kana,
			"signal":  e.Signal,
			"display": tokenizer.Render(e.Signal),
		})
	}
	return okResult(map[string]any{"entries": rows})
}

func okResult(payload map[string]any) map[string]any {
	payload["ok"] = true
	return payload
}

func errResult(msg string) map[string]any {
	return map[string]any{
		"ok":    false,
		"error": msg,
	}
}
