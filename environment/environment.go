// This file is part of PiGUS.
//
// PiGUS is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PiGUS is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PiGUS.  If not, see <https://www.gnu.org/licenses/>.

// Package environment provides the context in which a card runs: its label,
// its preferences and whether it may write to the log.
package environment

import (
	"sync/atomic"

	"github.com/pigus/pigus/hardware/preferences"
)

// Label is used to name the environment.
type Label string

// MainCard is the label of the card that services the host bus.
const MainCard Label = ""

// Environment is used to provide context for a card. It implements the
// logger.Permission interface.
type Environment struct {
	Label Label

	// the card preferences
	Prefs *preferences.Preferences

	quiet atomic.Bool
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument can be nil, in which case a new Preferences instance is
// created from the default prefs file.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label: label,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	return env, nil
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return !env.quiet.Load()
}

// SetQuiet stops the environment from writing to the log.
func (env *Environment) SetQuiet(quiet bool) {
	env.quiet.Store(quiet)
}

// IsMainCard returns true if the environment is for the card servicing the
// host bus.
func (env *Environment) IsMainCard() bool {
	return env.Label == MainCard
}

// IsCard checks the label and returns true if it matches.
func (env *Environment) IsCard(label Label) bool {
	return env.Label == label
}
