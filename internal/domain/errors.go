package domain

import "errors"

var (
	ErrInvalidBattleTag = errors.New("battle tag must be in format PlayerName#1234")
	ErrUpstream         = errors.New("upstream ladder API unavailable")
	ErrNotFound         = errors.New("not found")
)

func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidBattleTag)
}
