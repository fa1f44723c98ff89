package models

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// assignID fills an empty primary key with a fresh nanoid.
func assignID(id *string) error {
	if *id != "" {
		return nil
	}
	publicID, err := gonanoid.New()
	if err != nil {
		return err
	}
	*id = publicID
	return nil
}
