// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strconv"

// Truthy is a boolean that treats any non-empty text as true, so that
// GAS_REPORT=1, GAS_REPORT=yes and GAS_REPORT=on all enable the reporter.
type Truthy bool

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Truthy) UnmarshalText(text []byte) error {
	*t = len(text) > 0
	return nil
}

// String implements flag.Value.
func (t *Truthy) String() string {
	if t == nil {
		return "false"
	}
	return strconv.FormatBool(bool(*t))
}

// Set implements flag.Value. A bare flag sets the value to true; an explicit
// boolean such as -gas-report=false is honored.
func (t *Truthy) Set(s string) error {
	if b, err := strconv.ParseBool(s); err == nil {
		*t = Truthy(b)
		return nil
	}
	return t.UnmarshalText([]byte(s))
}

// IsBoolFlag lets the flag package accept the flag without a value.
func (t *Truthy) IsBoolFlag() bool {
	return true
}
