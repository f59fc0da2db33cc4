package client

import "errors"

var (
	ErrMissingCommand   = errors.New("no command given")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArguments = errors.New("invalid arguments")
)
