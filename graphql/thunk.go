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
	"sync"
)

// FieldsThunk returns the field definitions of an Object or an Interface.
type FieldsThunk func() (Fields, error)

// InterfacesThunk returns the interfaces implemented by an Object or an Interface.
type InterfacesThunk func() ([]Interface, error)

// PossibleTypesThunk returns the member types of a Union.
type PossibleTypesThunk func() ([]Object, error)

// InputFieldsThunk returns the field definitions of an InputObject.
type InputFieldsThunk func() (InputFields, error)

// onceFinalizer runs a finalize function exactly once and remembers its error.
type onceFinalizer struct {
	once sync.Once
	err  error
}

func (f *onceFinalizer) run(finalize func() error) error {
	f.once.Do(func() {
		f.err = finalize()
	})
	return f.err
}

func resolveInterfaces(thunk InterfacesThunk) ([]Interface, error) {
	if thunk == nil {
		return nil, nil
	}
	interfaces, err := thunk()
	if err != nil {
		return nil, err
	}
	for _, i := range interfaces {
		if i == nil {
			return nil, NewError("Interface list contains a nil Interface.", ErrKindInvalidType)
		}
	}
	return interfaces, nil
}

func resolveFields(typeName string, thunk FieldsThunk) (FieldMap, error) {
	if thunk == nil {
		return FieldMap{}, nil
	}
	fields, err := thunk()
	if err != nil {
		return nil, err
	}
	return buildFieldMap(typeName, fields)
}
