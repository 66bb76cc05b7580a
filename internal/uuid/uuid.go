// Package uuid wraps google/uuid so that IDs can be bound from URI
// parameters with gin.
package uuid

import (
	"errors"

	google_uuid "github.com/google/uuid"
)

var ErrInvalid = errors.New("the specified resource ID is not a valid UUID")

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

// Parse parses an ID. The Nil UUID is not a valid resource ID.
func Parse(s string) (google_uuid.UUID, error) {
	parsed, err := google_uuid.Parse(s)
	if err != nil || parsed == google_uuid.Nil {
		return google_uuid.Nil, ErrInvalid
	}

	return parsed, nil
}

// UnmarshalParam implements gin's BindUnmarshaler with Parse
// for UUID
func (u *UUID) UnmarshalParam(p string) error {
	parsed, err := Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}
