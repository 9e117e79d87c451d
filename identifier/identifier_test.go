package identifier

import (
	"errors"
	"testing"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		id   Identifier
		want string
	}{
		{"numeric id", New("123", "user"), "dXNlcjo6MTIz"},
		{"string id", New("loc-42", "location"), "bG9jYXRpb246OmxvYy00Mg=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.id.Encode(); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	id, err := Parse("dXNlcjo6MTIz")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if id.Kind != "user" {
		t.Errorf("Kind = %q, want %q", id.Kind, "user")
	}
	if id.ID != "123" {
		t.Errorf("ID = %q, want %q", id.ID, "123")
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		id   Identifier
	}{
		{"simple", New("123", "user")},
		{"empty id", New("", "user")},
		{"id containing delimiter", New("a::b::c", "compound")},
		{"unicode id", New("пользователь-7", "user")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.id.Encode())
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.id {
				t.Errorf("Parse() = %+v, want %+v", got, tt.id)
			}
		})
	}
}

func TestParseUnpadded(t *testing.T) {
	id, err := Parse("bG9jYXRpb246OmxvYy00Mg")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if id.ID != "loc-42" {
		t.Errorf("ID = %q, want %q", id.ID, "loc-42")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{"invalid base64", "!!!not-base64!!!", ErrInvalidBase64},
		{"invalid utf8", "_w==", ErrInvalidUTF8},
		{"no delimiter", "dXNlcg==", ErrInvalidIdentifier}, // "user"
		{"empty kind", "OjoxMjM=", ErrInvalidIdentifier},   // "::123"
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.encoded)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRaw(t *testing.T) {
	if got, want := New("123", "user").Raw(), "user::123"; got != want {
		t.Errorf("Raw() = %q, want %q", got, want)
	}
}
