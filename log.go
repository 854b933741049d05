/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package dresult

import (
	"github.com/rs/zerolog"
	"go.uber.org/zap/zapcore"
)

var (
	_ zerolog.LogObjectMarshaler = Error{}
	_ zapcore.ObjectMarshaler    = Error{}
)

// MarshalZerologObject writes e as a nested zerolog object:
//
//	log.Warn().Object("error", err).Msg("signup rejected")
func (e Error) MarshalZerologObject(ev *zerolog.Event) {
	ev.Str("category", e.category.String()).
		Str("code", e.code).
		Str("message", e.Message())
	if len(e.args) > 0 {
		ev.Strs("args", e.args)
	}
	if e.aggregate {
		ev.Array("errors", zerologErrors(e.errs))
	}
}

type zerologErrors []Error

func (es zerologErrors) MarshalZerologArray(a *zerolog.Array) {
	for _, e := range es {
		a.Object(e)
	}
}

// MarshalLogObject writes e as a zap object:
//
//	logger.Warn("signup rejected", zap.Object("error", err))
func (e Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("category", e.category.String())
	enc.AddString("code", e.code)
	enc.AddString("message", e.Message())
	if len(e.args) > 0 {
		if err := enc.AddArray("args", zapStrings(e.args)); err != nil {
			return err
		}
	}
	if e.aggregate {
		return enc.AddArray("errors", zapErrors(e.errs))
	}
	return nil
}

type zapStrings []string

func (ss zapStrings) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, s := range ss {
		enc.AppendString(s)
	}
	return nil
}

type zapErrors []Error

func (es zapErrors) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, e := range es {
		if err := enc.AppendObject(e); err != nil {
			return err
		}
	}
	return nil
}
