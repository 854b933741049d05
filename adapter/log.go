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

package adapter

import (
	"errors"
	"strconv"

	"dirpx.dev/dresult"
	"github.com/go-logr/logr"
)

// KeysAndValues renders e as flat logr key/value pairs:
//
//	error.category: "validation"
//	error.code:     "General.Validation"
//	error.message:  "One or more validation errors occurred."
//	error.args.0:   "email"
//	error.errors.0: "validation:User.Email.Invalid: ..."
func KeysAndValues(e dresult.Error) []any {
	args := e.Args()
	causes := e.Errors()
	kv := make([]any, 0, 6+2*len(args)+2*len(causes))
	kv = append(kv,
		"error.category", e.Category().String(),
		"error.code", e.Code(),
		"error.message", e.Message(),
	)
	for i, a := range args {
		kv = append(kv, "error.args."+strconv.Itoa(i), a)
	}
	for i, c := range causes {
		kv = append(kv, "error.errors."+strconv.Itoa(i), c.Error())
	}
	return kv
}

// LogError logs err at error level with the structured fields of the
// dresult.Error in its chain. Other errors are logged as is.
func LogError(logger logr.Logger, err error, msg string) {
	if err == nil {
		return
	}
	var de dresult.Error
	if errors.As(err, &de) {
		logger.Error(err, msg, KeysAndValues(de)...)
		return
	}
	logger.Error(err, msg)
}
