package data

import "errors"

var (
	ErrUnknownAbility = errors.New("unknown ability")
	ErrUnknownHero    = errors.New("unknown hero")
	ErrUnknownItem    = errors.New("unknown item")
)
