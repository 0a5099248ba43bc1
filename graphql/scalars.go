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
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// The internal value of each built-in scalar has a fixed Go type:
//
//	| GraphQL Type | Go Type |
//	| ------------ | ------- |
//	| Int          | int     |
//	| Float        | float64 |
//	| String       | string  |
//	| Boolean      | bool    |
//	| ID           | string  |

// numberOf returns value as a float64 if it holds a Go numeric type.
func numberOf(value interface{}) (float64, bool) {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

func coercionError(typeName string, value interface{}, reason string) error {
	return NewError(fmt.Sprintf("%s cannot represent %v: %s", typeName, value, reason), ErrKindCoercion)
}

// toInt accepts an integral number within the 32-bit signed range.
func toInt(value interface{}) (int, error) {
	n, ok := numberOf(value)
	if !ok {
		return 0, coercionError("Int", value, fmt.Sprintf("unexpected type %T", value))
	}
	if n != math.Trunc(n) || math.IsInf(n, 0) {
		return 0, coercionError("Int", value, "not an integer")
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, coercionError("Int", value, "not a 32-bit signed integer")
	}
	return int(n), nil
}

var intTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "Int",
	Description: "The `Int` scalar type represents non-fractional signed whole numeric values. " +
		"Int can represent values between -(2^31) and 2^31 - 1.",
	ResultCoercer: CoerceScalarResultFunc(func(value interface{}) (interface{}, error) {
		switch value := value.(type) {
		case bool:
			if value {
				return 1, nil
			}
			return 0, nil
		case string:
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, coercionError("Int", value, "not a numeric string")
			}
			return toInt(n)
		}
		return toInt(value)
	}),
	InputCoercer: CoerceScalarInputFunc(func(value interface{}) (interface{}, error) {
		return toInt(value)
	}),
})

var floatTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "Float",
	Description: "The `Float` scalar type represents signed double-precision fractional values as " +
		"specified by [IEEE 754](https://en.wikipedia.org/wiki/IEEE_floating_point).",
	ResultCoercer: CoerceScalarResultFunc(func(value interface{}) (interface{}, error) {
		switch value := value.(type) {
		case bool:
			if value {
				return float64(1), nil
			}
			return float64(0), nil
		case string:
			n, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return nil, coercionError("Float", value, "not a numeric string")
			}
			return n, nil
		}
		if n, ok := numberOf(value); ok && !math.IsInf(n, 0) && !math.IsNaN(n) {
			return n, nil
		}
		return nil, coercionError("Float", value, fmt.Sprintf("unexpected type %T", value))
	}),
	InputCoercer: CoerceScalarInputFunc(func(value interface{}) (interface{}, error) {
		if n, ok := numberOf(value); ok && !math.IsInf(n, 0) && !math.IsNaN(n) {
			return n, nil
		}
		return nil, coercionError("Float", value, fmt.Sprintf("unexpected type %T", value))
	}),
})

var stringTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "String",
	Description: "The `String` scalar type represents textual data, represented as UTF-8 character " +
		"sequences. The String type is most often used by GraphQL to represent free-form " +
		"human-readable text.",
	ResultCoercer: CoerceScalarResultFunc(func(value interface{}) (interface{}, error) {
		switch value := value.(type) {
		case string:
			return value, nil
		case bool:
			return strconv.FormatBool(value), nil
		case fmt.Stringer:
			return value.String(), nil
		}
		if n, ok := numberOf(value); ok {
			return strconv.FormatFloat(n, 'f', -1, 64), nil
		}
		return nil, coercionError("String", value, fmt.Sprintf("unexpected type %T", value))
	}),
	InputCoercer: CoerceScalarInputFunc(func(value interface{}) (interface{}, error) {
		if s, ok := value.(string); ok {
			return s, nil
		}
		return nil, coercionError("String", value, fmt.Sprintf("unexpected type %T", value))
	}),
})

var booleanTypeInstance = MustNewScalar(&ScalarConfig{
	Name:        "Boolean",
	Description: "The `Boolean` scalar type represents `true` or `false`.",
	ResultCoercer: CoerceScalarResultFunc(func(value interface{}) (interface{}, error) {
		if b, ok := value.(bool); ok {
			return b, nil
		}
		if n, ok := numberOf(value); ok {
			return n != 0, nil
		}
		return nil, coercionError("Boolean", value, fmt.Sprintf("unexpected type %T", value))
	}),
	InputCoercer: CoerceScalarInputFunc(func(value interface{}) (interface{}, error) {
		if b, ok := value.(bool); ok {
			return b, nil
		}
		return nil, coercionError("Boolean", value, fmt.Sprintf("unexpected type %T", value))
	}),
})

// idOf accepts strings and integers.
func idOf(value interface{}) (interface{}, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	if n, ok := numberOf(value); ok && n == math.Trunc(n) && !math.IsInf(n, 0) {
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	}
	return nil, coercionError("ID", value, fmt.Sprintf("unexpected type %T", value))
}

var idTypeInstance = MustNewScalar(&ScalarConfig{
	Name: "ID",
	Description: "The `ID` scalar type represents a unique identifier, often used to refetch an " +
		"object or as key for a cache. The ID type appears in a JSON response as a String; " +
		"however, it is not intended to be human-readable. When expected as an input type, any " +
		"string (such as `\"4\"`) or integer (such as `4`) input value will be accepted as an ID.",
	ResultCoercer: CoerceScalarResultFunc(idOf),
	InputCoercer:  CoerceScalarInputFunc(idOf),
})

// Int returns the GraphQL built-in Int type definition.
func Int() Scalar {
	return intTypeInstance
}

// Float returns the GraphQL built-in Float type definition.
func Float() Scalar {
	return floatTypeInstance
}

// String returns the GraphQL built-in String type definition.
func String() Scalar {
	return stringTypeInstance
}

// Boolean returns the GraphQL built-in Boolean type definition.
func Boolean() Scalar {
	return booleanTypeInstance
}

// ID returns the GraphQL built-in ID type definition.
func ID() Scalar {
	return idTypeInstance
}

// BuiltinScalar returns the built-in scalar with the given name or nil.
func BuiltinScalar(name string) Scalar {
	switch name {
	case "Int":
		return intTypeInstance
	case "Float":
		return floatTypeInstance
	case "String":
		return stringTypeInstance
	case "Boolean":
		return booleanTypeInstance
	case "ID":
		return idTypeInstance
	}
	return nil
}

// IsBuiltinScalar returns true if t is one of the built-in scalars.
func IsBuiltinScalar(t Type) bool {
	s, ok := t.(Scalar)
	return ok && BuiltinScalar(s.Name()) == s
}
