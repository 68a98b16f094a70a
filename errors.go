// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package syncreg

import "fmt"

// An InvalidParameterError reports a bad construction parameter. It is
// returned by New and Config.Validate and never after construction.
//
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

// A WidthMismatchError reports a Tick call whose data input width does
// not match the register's configured size. The register state is left
// untouched.
//
type WidthMismatchError struct {
	Want int
	Got  int
}

func (e *WidthMismatchError) Error() string {
	return fmt.Sprintf("data width mismatch: register is %d bits wide, got %d", e.Want, e.Got)
}
