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

package httpx

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/grpcx"
	"dirpx.dev/dresult/message"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/durationpb"
)

// ContentType is the media type of error bodies.
const ContentType = "application/json"

// Meta carries extra context that the HTTP layer adds on top of the error.
// All fields are optional.
type Meta struct {
	// RetryAfter sets the Retry-After header (whole seconds) and attaches a
	// google.rpc.RetryInfo detail.
	RetryAfter time.Duration
}

// Writer turns dresult errors into HTTP responses.
//
// The body is a google.rpc.Status in protobuf JSON: the same message and
// details grpcx attaches, so HTTP and gRPC clients decode failures alike.
// The HTTP status comes from Mapper.
type Writer struct {
	Mapper apis.Mapper

	// Resolver resolves messages. Nil means the default registry.
	Resolver apis.Resolver

	// Log receives a debug line per written error. The zero value logs
	// nothing.
	Log zerolog.Logger
}

var marshal = protojson.MarshalOptions{
	EmitUnpopulated: false,
	UseProtoNames:   false, // json_name
}

// Write writes err. Errors without a dresult.Error in their chain become a
// 500 with a generic message; their text is not exposed.
func (w Writer) Write(rw http.ResponseWriter, req *http.Request, err error, meta Meta) {
	if err == nil {
		return
	}
	var de dresult.Error
	if !errors.As(err, &de) {
		de = dresult.Failure("General.Internal", dresult.WithDescription(http.StatusText(http.StatusInternalServerError)))
	}
	if de.IsNone() {
		return
	}

	tag := Locale(req)
	st := grpcx.Status(de, w.Mapper, w.Resolver, tag)
	httpStatus := w.Mapper.HTTPStatus(de.Category(), de.Code())

	if meta.RetryAfter > 0 {
		if with, derr := st.WithDetails(&errdetails.RetryInfo{RetryDelay: durationpb.New(meta.RetryAfter)}); derr == nil {
			st = with
		}
		rw.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(meta.RetryAfter)))
	}

	body, merr := marshal.Marshal(st.Proto())
	if merr != nil {
		// The status only holds well-known detail types; this is unreachable
		// in practice.
		body = []byte(`{"code":` + strconv.Itoa(int(codes.Internal)) + `}`)
	}

	rw.Header().Set("Content-Type", ContentType)
	rw.Header().Set("Content-Language", tag.String())
	rw.WriteHeader(httpStatus)
	_, _ = rw.Write(body)

	ev := w.Log.Debug()
	if req != nil {
		ev = ev.Str("path", req.URL.Path)
	}
	ev.Int("status", httpStatus).
		Object("error", de).
		Msg("error response")
}

// WriteResult writes the failure of r. It does nothing for a success and
// reports whether a response was written.
func (w Writer) WriteResult(rw http.ResponseWriter, req *http.Request, r dresult.Outcome) bool {
	if r.IsSuccess() {
		return false
	}
	w.Write(rw, req, r.Err(), Meta{})
	return true
}

// Locale returns the first language of the Accept-Language header, or
// message.DefaultLocale().
func Locale(req *http.Request) language.Tag {
	if req != nil {
		if tags, _, err := language.ParseAcceptLanguage(req.Header.Get("Accept-Language")); err == nil && len(tags) > 0 {
			return tags[0]
		}
	}
	return message.DefaultLocale()
}

// retryAfterSeconds rounds d up to whole seconds, so a positive delay never
// becomes "Retry-After: 0".
func retryAfterSeconds(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}
