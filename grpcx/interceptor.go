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
	"context"
	"errors"

	"dirpx.dev/dresult"
	"dirpx.dev/dresult/apis"
	"dirpx.dev/dresult/message"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// LocaleHeader is the incoming metadata key read by LocaleFromContext.
const LocaleHeader = "accept-language"

// Option configures the interceptors.
type Option func(*options)

type options struct {
	resolver apis.Resolver
	locale   func(context.Context) language.Tag
	log      zerolog.Logger
}

// WithResolver resolves messages through r instead of the default registry.
func WithResolver(r apis.Resolver) Option {
	return func(o *options) { o.resolver = r }
}

// WithLocale replaces LocaleFromContext.
func WithLocale(fn func(context.Context) language.Tag) Option {
	return func(o *options) { o.locale = fn }
}

// WithLogger logs every converted error at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

func newOptions(opts []Option) options {
	o := options{
		locale: LocaleFromContext,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LocaleFromContext returns the first language of the "accept-language"
// incoming metadata, or message.DefaultLocale().
func LocaleFromContext(ctx context.Context) language.Tag {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return message.DefaultLocale()
	}
	for _, v := range md.Get(LocaleHeader) {
		tags, _, err := language.ParseAcceptLanguage(v)
		if err == nil && len(tags) > 0 {
			return tags[0]
		}
	}
	return message.DefaultLocale()
}

// UnaryServerInterceptor converts dresult.Error values returned by
// handlers into gRPC statuses built by Status. Other errors pass through
// untouched. A returned dresult.None counts as success, so handlers may
// return r.Err() of a successful Result.
func UnaryServerInterceptor(m apis.Mapper, opts ...Option) grpc.UnaryServerInterceptor {
	o := newOptions(opts)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if isSuccess(err) {
			return resp, nil
		}
		return nil, o.convert(ctx, m, info.FullMethod, err)
	}
}

// StreamServerInterceptor is the streaming variant of UnaryServerInterceptor.
func StreamServerInterceptor(m apis.Mapper, opts ...Option) grpc.StreamServerInterceptor {
	o := newOptions(opts)
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		err := handler(srv, ss)
		if isSuccess(err) {
			return nil
		}
		return o.convert(ss.Context(), m, info.FullMethod, err)
	}
}

// isSuccess reports whether err is nil or wraps dresult.None.
func isSuccess(err error) bool {
	if err == nil {
		return true
	}
	var de dresult.Error
	return errors.As(err, &de) && de.IsNone()
}

func (o options) convert(ctx context.Context, m apis.Mapper, method string, err error) error {
	var de dresult.Error
	if !errors.As(err, &de) {
		return err
	}
	st := Status(de, m, o.resolver, o.locale(ctx))
	o.log.Debug().
		Str("method", method).
		Object("error", de).
		Stringer("grpc_code", st.Code()).
		Msg("handler failed")
	return st.Err()
}
