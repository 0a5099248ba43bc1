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
	"github.com/json-iterator/go"
)

// An ArgumentValues contains argument values given to a field. It is immutable after it is created.
type ArgumentValues struct {
	values map[string]interface{}
}

var noArgumentValues = ArgumentValues{
	// Allocate an non-nil map to eliminate null-check for Lookup.
	values: map[string]interface{}{},
}

// NoArgumentValues represents an empty argument value set.
func NoArgumentValues() ArgumentValues {
	return noArgumentValues
}

// NewArgumentValues creates an ArgumentValues from given values.
func NewArgumentValues(values map[string]interface{}) ArgumentValues {
	if len(values) == 0 {
		return noArgumentValues
	}
	return ArgumentValues{values}
}

// Lookup returns argument value for the given name. The second value (ok) is a bool that is true
// if the argument exists, and false if not.
func (args ArgumentValues) Lookup(name string) (value interface{}, ok bool) {
	value, ok = args.values[name]
	return
}

// Get returns argument value for the given name. It returns nil if no such argument was found.
func (args ArgumentValues) Get(name string) interface{} {
	return args.values[name]
}

// MarshalJSON serializes the argument values to a JSON object.
func (args ArgumentValues) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(args.values)
}

// ResolveInfo exposes the execution state to field resolvers, type resolvers and IsTypeOf
// predicates.
type ResolveInfo interface {
	// FieldName is the name of the field being resolved.
	FieldName() string

	// ParentType is the Object that contains the field being resolved. It may be nil when resolving
	// the type of an abstract value.
	ParentType() Object

	// Args contains the argument values of the field.
	Args() ArgumentValues

	// AppContext is the application value given to the executor. It also identifies the request.
	AppContext() interface{}
}

// ResolveInfoConfig contains the values exposed by the ResolveInfo returned from NewResolveInfo.
type ResolveInfoConfig struct {
	FieldName  string
	ParentType Object
	Args       ArgumentValues
	AppContext interface{}
}

type resolveInfo struct {
	config ResolveInfoConfig
}

// NewResolveInfo returns a ResolveInfo that serves the given values. It is used by executors and
// by code that invokes resolvers outside of an execution.
func NewResolveInfo(config ResolveInfoConfig) ResolveInfo {
	if config.Args.values == nil {
		config.Args = noArgumentValues
	}
	return &resolveInfo{config}
}

func (info *resolveInfo) FieldName() string {
	return info.config.FieldName
}

func (info *resolveInfo) ParentType() Object {
	return info.config.ParentType
}

func (info *resolveInfo) Args() ArgumentValues {
	return info.config.Args
}

func (info *resolveInfo) AppContext() interface{} {
	return info.config.AppContext
}
