package io

import (
	"errors"

	"github.com/ezrec/ram/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrInputClosed = errors.New(f("input closed"))
)
