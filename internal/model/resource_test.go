package model

import (
	"errors"
	"testing"
)

const pikachuJSON = `{
	"id": 25,
	"name": "pikachu",
	"height": 4,
	"sprites": {
		"front_default": "https://example.com/sprites/25.png",
		"other": {
			"dream_world": {"front_default": "https://example.com/dream/25.svg"},
			"official-artwork": {"front_default": "https://example.com/artwork/25.png"}
		}
	}
}`

func TestParseResource(t *testing.T) {
	r, err := ParseResource([]byte(pikachuJSON))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if r.Name != "pikachu" {
		t.Errorf("Expected name 'pikachu', got '%s'", r.Name)
	}

	if r.ImageURL != "https://example.com/artwork/25.png" {
		t.Errorf("Expected official artwork URL, got '%s'", r.ImageURL)
	}
}

func TestParseResource_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"null document", `null`},
		{"empty object", `{}`},
		{"no name", `{"sprites":{"other":{"official-artwork":{"front_default":"u"}}}}`},
		{"null name", `{"name":null,"sprites":{"other":{"official-artwork":{"front_default":"u"}}}}`},
		{"no sprites", `{"name":"bulbasaur"}`},
		{"no other", `{"name":"bulbasaur","sprites":{"front_default":"u"}}`},
		{"no artwork", `{"name":"bulbasaur","sprites":{"other":{"home":{"front_default":"u"}}}}`},
		{"null front_default", `{"name":"bulbasaur","sprites":{"other":{"official-artwork":{"front_default":null}}}}`},
	}

	for _, test := range tests {
		_, err := ParseResource([]byte(test.payload))
		if err == nil {
			t.Errorf("%s: expected error, got nil", test.name)
			continue
		}
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("%s: expected ErrMissingField, got %v", test.name, err)
		}
	}
}

func TestParseResource_Mistyped(t *testing.T) {
	payloads := []string{
		`{"name":42,"sprites":{"other":{"official-artwork":{"front_default":"u"}}}}`,
		`{"name":"ivysaur","sprites":{"other":{"official-artwork":{"front_default":7}}}}`,
		`{"name":"ivysaur","sprites":"none"}`,
		`not json`,
		``,
	}

	for _, payload := range payloads {
		if _, err := ParseResource([]byte(payload)); err == nil {
			t.Errorf("Expected error for payload %q, got nil", payload)
		}
	}
}
