package cursor

import (
	"encoding/base64"
	"testing"
	"unicode/utf8"
)

// FuzzDecodeOffset fuzzes offset cursor decoding to check it never panics
// on malformed or hostile tokens.
func FuzzDecodeOffset(f *testing.F) {
	f.Add("b2Zmc2V0fHwxfHwxMA==")
	f.Add("b2Zmc2V0fHww")
	f.Add("b2Zmc2V0fHxhYmN8fHh5eg==")
	f.Add("b2Zmc2V0")
	f.Add("c3RyaW5nfHxpZC0x")
	f.Add("")
	f.Add("!!!not-base64!!!")
	f.Add("_w==")

	f.Fuzz(func(t *testing.T, encoded string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Decode panicked on input %q: %v", encoded, r)
			}
		}()

		c, err := Decode[OffsetCursor](encoded)
		if err != nil {
			return
		}

		// Anything that decoded must have a non-negative offset and
		// survive a re-encode/decode cycle with the same offset.
		if c.Offset < 0 {
			t.Errorf("Decode(%q) produced negative offset %d", encoded, c.Offset)
		}
		again, err := Decode[OffsetCursor](Encode(c))
		if err != nil {
			t.Errorf("re-decode of %q failed: %v", encoded, err)
			return
		}
		if again.Offset != c.Offset {
			t.Errorf("re-decode offset = %d, want %d", again.Offset, c.Offset)
		}
	})
}

// FuzzDecodeAny fuzzes the kind-dispatching decoder with raw (pre-encoding)
// payloads so the fuzzer explores the segment grammar, not just base64 noise.
func FuzzDecodeAny(f *testing.F) {
	f.Add("offset||1||10")
	f.Add("offset||0")
	f.Add("string||some-cursor")
	f.Add("string||a||b")
	f.Add("unknown||x")
	f.Add("||")
	f.Add("")

	f.Fuzz(func(t *testing.T, raw string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("DecodeAny panicked on raw %q: %v", raw, r)
			}
		}()

		encoded := base64.URLEncoding.EncodeToString([]byte(raw))
		c, err := DecodeAny(encoded)
		if err != nil {
			return
		}
		if c == nil {
			t.Errorf("DecodeAny(%q) returned nil cursor with no error", raw)
			return
		}
		if !utf8.ValidString(c.Raw()) {
			t.Errorf("DecodeAny(%q) produced invalid UTF-8 raw form", raw)
		}
	})
}
