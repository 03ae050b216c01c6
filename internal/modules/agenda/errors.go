package agenda

import "errors"

var (
	ErrRemoteSync = errors.New("settings saved locally, remote sync failed")
)
