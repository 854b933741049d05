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

package grpcx

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/adapter"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/category"
	"golang.org/x/text/language"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
)

// Metadata keys of the google.rpc.ErrorInfo detail.
const (
	argKeyPrefix   = "arg."
	causeKeyPrefix = "error."
	causeKeySuffix = ".category"
)

// Status converts e into a gRPC status.
//
// The status code comes from m, the message is e resolved through r in
// locale tag (nil r means the default registry). The status carries:
//
//   - google.rpc.ErrorInfo: Reason is the code, Domain the category and
//     Metadata the arguments ("arg.0", "arg.1", ...);
//   - google.rpc.LocalizedMessage with the resolved message;
//   - google.rpc.BadRequest with one field violation per cause when e is a
//     validation aggregate.
//
// None maps to an OK status.
func Status(e dresult.Error, m apis.Mapper, r apis.Resolver, tag language.Tag) *status.Status {
	if e.IsNone() {
		return status.New(codes.OK, "")
	}
	msg := e.Localize(r, tag)
	st := status.New(m.GRPCStatus(e.Category(), e.Code()), msg)

	info := &errdetails.ErrorInfo{
		Reason: e.Code(),
		Domain: e.Category().String(),
	}
	meta := make(map[string]string)
	for i, a := range e.Args() {
		meta[argKeyPrefix+strconv.Itoa(i)] = a
	}

	details := []protoadapt.MessageV1{
		info,
		&errdetails.LocalizedMessage{Locale: tag.String(), Message: msg},
	}
	if e.IsValidationError() {
		causes := e.Errors()
		views := adapter.Details(e, r, tag)
		br := &errdetails.BadRequest{FieldViolations: make([]*errdetails.BadRequest_FieldViolation, len(views))}
		for i, d := range views {
			br.FieldViolations[i] = &errdetails.BadRequest_FieldViolation{
				Field:       d.Field,
				Description: d.Description,
				Reason:      d.Code,
			}
			meta[causeKeyPrefix+strconv.Itoa(i)+causeKeySuffix] = causes[i].Category().String()
		}
		details = append(details, br)
	}
	if len(meta) > 0 {
		info.Metadata = meta
	}

	if with, err := st.WithDetails(details...); err == nil {
		return with
	}
	return st
}

// Err is Status(...).Err(). It returns nil for None.
func Err(e dresult.Error, m apis.Mapper, r apis.Resolver, tag language.Tag) error {
	return Status(e, m, r, tag).Err()
}

// FromStatus rebuilds a dresult.Error from a gRPC error produced by Status.
//
// The rebuilt error carries the category, code and arguments of the
// original; its message is the already-resolved status message. Causes of a
// validation aggregate keep their category, code, resolved description and
// field (first argument). It returns false when err carries no ErrorInfo.
func FromStatus(err error) (dresult.Error, bool) {
	if err == nil {
		return dresult.None, false
	}
	st, ok := status.FromError(err)
	if !ok {
		return dresult.None, false
	}

	var (
		info *errdetails.ErrorInfo
		br   *errdetails.BadRequest
	)
	for _, d := range st.Details() {
		switch v := d.(type) {
		case *errdetails.ErrorInfo:
			if info == nil {
				info = v
			}
		case *errdetails.BadRequest:
			br = v
		}
	}
	if info == nil {
		return dresult.None, false
	}

	c, perr := category.Parse(info.GetDomain())
	if perr != nil {
		c = category.Failure
	}

	if br != nil && c == category.Validation && info.GetReason() == dresult.ValidationCode {
		causes := make([]dresult.Error, len(br.GetFieldViolations()))
		for i, fv := range br.GetFieldViolations() {
			cc, cerr := category.Parse(info.GetMetadata()[causeKeyPrefix+strconv.Itoa(i)+causeKeySuffix])
			if cerr != nil {
				cc = category.Validation
			}
			opts := []dresult.Option{dresult.WithDescription(fv.GetDescription())}
			if fv.GetField() != "" {
				opts = append(opts, dresult.WithArgs(fv.GetField()))
			}
			causes[i] = dresult.E(cc, fv.GetReason(), opts...)
		}
		return dresult.NewValidationError(causes), true
	}

	return dresult.E(c, info.GetReason(),
		dresult.WithDescription(st.Message()),
		dresult.WithArgs(argsOf(info.GetMetadata())...),
	), true
}

// argsOf collects "arg.N" metadata entries in index order.
func argsOf(meta map[string]string) []string {
	type indexed struct {
		i int
		v string
	}
	var found []indexed
	for k, v := range meta {
		n, ok := strings.CutPrefix(k, argKeyPrefix)
		if !ok {
			continue
		}
		i, err := strconv.Atoi(n)
		if err != nil {
			continue
		}
		found = append(found, indexed{i, v})
	}
	sort.Slice(found, func(a, b int) bool { return found[a].i < found[b].i })
	out := make([]string, len(found))
	for i, f := range found {
		out[i] = f.v
	}
	return out
}

// AsError finds a dresult.Error in err's chain, or rebuilds one from a gRPC
// status. It is the client-side counterpart of Status.
func AsError(err error) (dresult.Error, bool) {
	var de dresult.Error
	if errors.As(err, &de) {
		return de, true
	}
	return FromStatus(err)
}
