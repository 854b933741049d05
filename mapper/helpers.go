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

package mapper

import (
	"maps"
	"strconv"

	"dirpx.dev/dresult/category"
	"google.golang.org/grpc/codes"
)

// freeze returns a private copy of src, or nil when src is empty.
// Tries are immutable after build, so a shallow copy is enough for them too.
func freeze[V any](src map[category.Category]V) map[category.Category]V {
	if len(src) == 0 {
		return nil
	}
	return maps.Clone(src)
}

// freezeGRPC copies src and converts the builder's int values into typed
// gRPC codes.
func freezeGRPC(src map[category.Category]int) map[category.Category]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[category.Category]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// grpcName renders a gRPC code the way Explain prints it: NOT_FOUND(5).
func grpcName(c codes.Code) string {
	return upperSnake(c.String()) + "(" + strconv.Itoa(int(c)) + ")"
}

// upperSnake turns "DeadlineExceeded" into "DEADLINE_EXCEEDED" and keeps
// "OK" as is.
func upperSnake(s string) string {
	out := make([]byte, 0, len(s)+4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			if i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
				out = append(out, '_')
			}
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out)
}
