package models_test

import (
	"testing"

	"github.com/collectivehq/platform_backend/models"
)

func TestCompositeCursorRoundTrip(t *testing.T) {
	encoded := models.EncodeCompositeCursor("2026-01-15 10:30:00 +0000 UTC", 42)

	value, id := models.DecodeCompositeCursor(&encoded)
	if value != "2026-01-15 10:30:00 +0000 UTC" {
		t.Errorf("cursor value = %q", value)
	}
	if id != 42 {
		t.Errorf("cursor id = %d, want 42", id)
	}
}

func TestDecodeCompositeCursorMalformed(t *testing.T) {
	cases := []*string{
		nil,
		strPtr(""),
		strPtr("not base64!!"),
		strPtr(models.EncodeCursor("no separator")),
		strPtr(models.EncodeCursor("value|not-a-number")),
		strPtr(models.EncodeCursor("too|many|parts")),
	}
	for i, cursor := range cases {
		value, id := models.DecodeCompositeCursor(cursor)
		if value != "" || id != 0 {
			t.Errorf("case %d: expected zero values, got (%q, %d)", i, value, id)
		}
	}
}

func TestDecodeCursor(t *testing.T) {
	encoded := models.EncodeCursor("2026-01-15")
	decoded, err := models.DecodeCursor(&encoded)
	if err != nil {
		t.Fatal(err)
	}
	if decoded != "2026-01-15" {
		t.Errorf("decoded = %q", decoded)
	}

	bad := "%%%"
	if _, err := models.DecodeCursor(&bad); err == nil {
		t.Error("expected error for invalid base64")
	}
}

func strPtr(s string) *string { return &s }
