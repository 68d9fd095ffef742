// Copyright 2025 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	colour  *bool
	caller  callerSettings
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// mergeWith sets each field not set in the receiving settings
// to the field value of the parent settings given. Parent
// context pairs are placed before the receiving ones.
func (s *settings) mergeWith(parent settings) {
	if s.writer == nil {
		s.writer = parent.writer
	}

	if s.level == nil && parent.level != nil {
		value := *parent.level
		s.level = &value
	}

	if s.colour == nil && parent.colour != nil {
		value := *parent.colour
		s.colour = &value
	}

	var caller callerSettings
	caller.mergeWith(parent.caller)
	caller.mergeWith(s.caller)
	s.caller = caller

	if len(parent.context) == 0 {
		return
	}

	context := make([]contextKeyValues, 0, len(parent.context)+len(s.context))
	for _, kv := range parent.context {
		values := make([]string, len(kv.values))
		copy(values, kv.values)
		context = append(context, contextKeyValues{key: kv.key, values: values})
	}
	s.context = append(context, s.context...)
}

// patchWith overrides each field of the receiving settings
// with the field value of the patch settings, if it is set.
func (s *settings) patchWith(patch settings) {
	if patch.writer != nil {
		s.writer = patch.writer
	}

	if patch.level != nil {
		value := *patch.level
		s.level = &value
	}

	if patch.colour != nil {
		value := *patch.colour
		s.colour = &value
	}

	s.caller.mergeWith(patch.caller)

	for _, kv := range patch.context {
		for _, value := range kv.values {
			AddContext(kv.key, value)(s)
		}
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		value := Info
		s.level = &value
	}

	if s.colour == nil {
		value := false
		s.colour = &value
	}

	s.caller.setDefaults()
}
