package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingField is returned when a required field of the resource payload is
// absent or null.
var ErrMissingField = errors.New("missing required field")

// Resource is a single record fetched from the API. The nested artwork path
// sprites.other["official-artwork"].front_default is flattened into ImageURL.
type Resource struct {
	Name     string
	ImageURL string
}

// resourcePayload mirrors the parts of the API document we read. Pointers let
// us tell an absent field apart from an empty one.
type resourcePayload struct {
	Name    *string `json:"name"`
	Sprites *struct {
		Other *struct {
			OfficialArtwork *struct {
				FrontDefault *string `json:"front_default"`
			} `json:"official-artwork"`
		} `json:"other"`
	} `json:"sprites"`
}

// ParseResource decodes a resource document
func ParseResource(data []byte) (*Resource, error) {
	var r Resource
	if err := r.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return &r, nil
}

// UnmarshalJSON decodes the API document, failing as a unit if any required
// field is absent or mistyped.
func (r *Resource) UnmarshalJSON(data []byte) error {
	var p resourcePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to decode resource: %w", err)
	}

	if p.Name == nil {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if p.Sprites == nil {
		return fmt.Errorf("%w: sprites", ErrMissingField)
	}
	if p.Sprites.Other == nil {
		return fmt.Errorf("%w: sprites.other", ErrMissingField)
	}
	if p.Sprites.Other.OfficialArtwork == nil {
		return fmt.Errorf("%w: sprites.other.official-artwork", ErrMissingField)
	}
	if p.Sprites.Other.OfficialArtwork.FrontDefault == nil {
		return fmt.Errorf("%w: sprites.other.official-artwork.front_default", ErrMissingField)
	}

	r.Name = *p.Name
	r.ImageURL = *p.Sprites.Other.OfficialArtwork.FrontDefault
	return nil
}
