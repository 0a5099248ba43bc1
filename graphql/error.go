/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"strings"
	"unsafe"

	"github.com/json-iterator/go"
)

// Op describes an operation, usually as the package and method, such as "configstore.AddTypeConfig".
type Op string

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of Kind
const (
	ErrKindOther            ErrKind = iota // Unclassified error. This value is not printed in the error message.
	ErrKindCoercion                        // Failed to coerce input or result values for desired GraphQL type.
	ErrKindInvalidType                     // A type definition is malformed (e.g., missing name).
	ErrKindDuplicateType                   // A type name was declared twice in the config store.
	ErrKindUnknownType                     // A reference that does not resolve to any declared type.
	ErrKindStoreClosed                     // Mutating a config store after it was prepared for build.
	ErrKindKindMismatch                    // Requesting fields of a type with the wrong kind.
	ErrKindNameCollision                   // A built type with the same name already exists.
	ErrKindTypeKindMismatch                // A type used in a position that does not accept its kind.
	ErrKindInternal                        // Internal error
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindCoercion:
		return "coercion error"
	case ErrKindInvalidType:
		return "invalid type"
	case ErrKindDuplicateType:
		return "duplicate type"
	case ErrKindUnknownType:
		return "unknown type"
	case ErrKindStoreClosed:
		return "store closed"
	case ErrKindKindMismatch:
		return "kind mismatch"
	case ErrKindNameCollision:
		return "name collision"
	case ErrKindTypeKindMismatch:
		return "type kind mismatch"
	case ErrKindInternal:
		return "internal error"
	}
	return "unknown error kind"
}

// ErrorExtensions attaches vendor-specific data (such as the offending type name) to an Error.
type ErrorExtensions map[string]interface{}

// An Error describes a failure while defining types or building a schema.
//
// Errors are built with NewError and may wrap another error. Op and Kind are printed along with
// the message to make the cause easy to spot.
type Error struct {
	// Message describes the error for debugging purposes.
	Message string

	// Extensions contains additional data about the error
	Extensions ErrorExtensions

	// The underlying error that triggered this one
	Err error

	// Op is the operation being performed, usually the name of the method being invoked.
	Op Op

	// Kind is the class of error
	Kind ErrKind
}

var _ error = (*Error)(nil)

// NewError builds an error value from arguments. Inspired by the design of upspin.io/errors [0].
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case ErrorExtensions:
			e.Extensions = arg

		case error:
			e.Err = arg

		case Op:
			e.Op = arg

		case ErrKind:
			e.Kind = arg

		default:
			_, file, line, _ := runtime.Caller(1)
			log.Printf("NewError: bad call from %s:%d: %v", file, line, args)
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	if prev, ok := e.Err.(*Error); ok {
		if e.Extensions == nil {
			e.Extensions = prev.Extensions
		}
		if e.Kind == ErrKindOther {
			e.Kind = prev.Kind
		}
	}

	return e
}

// NewErrorf is similar to NewError but formats the message with fmt.Sprintf. All arguments are
// consumed by the format.
func NewErrorf(op Op, kind ErrKind, format string, args ...interface{}) error {
	return NewError(fmt.Sprintf(format, args...), op, kind)
}

// WrapError is a convenient wrapper to build an Error value from an underlying error with a
// message.
func WrapError(err error, message string) error {
	return NewError(message, err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsErrKind returns true if err or any error it wraps is an *Error of the given kind.
func IsErrKind(err error, kind ErrKind) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	e.printError(&b, nil)
	return b.String()
}

func (e *Error) printError(b *strings.Builder, nextErr *Error) {
	initialLen := b.Len()

	// pad appends str to the buffer if the buffer already has some data.
	pad := func(str string) {
		if b.Len() == initialLen {
			return
		}
		b.WriteString(str)
	}

	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
	}

	if len(e.Message) > 0 {
		pad(": ")
		b.WriteString(e.Message)
	}

	if e.Kind != ErrKindOther {
		// Don't print kind if the next error has the same kind as ours.
		if nextErr == nil || nextErr.Kind != e.Kind {
			pad(": ")
			b.WriteString(e.Kind.String())
		}
	}

	if e.Err != nil {
		if prev, ok := e.Err.(*Error); ok {
			pad(":\n  ")
			prev.printError(b, e)
		} else {
			pad(": ")
			b.WriteString(e.Err.Error())
		}
	}
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

// errorMarshaller implements jsoniter.ValEncoder to encode Error to JSON.
type errorMarshaller struct{}

var _ jsoniter.ValEncoder = errorMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (errorMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Error)(ptr) == nil
}

// Encode implements jsoniter.ValEncoder.
func (errorMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	err := (*Error)(ptr)
	stream.WriteObjectStart()

	stream.WriteObjectField("message")
	stream.WriteString(err.Message)

	if err.Kind != ErrKindOther {
		stream.WriteMore()
		stream.WriteObjectField("kind")
		stream.WriteString(err.Kind.String())
	}

	numExtensions := len(err.Extensions)
	if numExtensions > 0 {
		stream.WriteMore()
		stream.WriteObjectField("extensions")
		stream.WriteObjectStart()
		for k, v := range err.Extensions {
			stream.WriteObjectField(k)
			stream.WriteVal(v)
			numExtensions--
			if numExtensions > 0 {
				stream.WriteMore()
			}
		}
		stream.WriteObjectEnd()
	}

	stream.WriteObjectEnd()
}

func init() {
	jsoniter.RegisterTypeEncoder("graphql.Error", errorMarshaller{})
}
