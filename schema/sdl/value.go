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

package sdl

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/botobag/forge/graphql"

	"github.com/vektah/gqlparser/v2/ast"
)

// valueOf converts a Go default value into an AST literal. t is the input type the value belongs
// to; it selects enum names and object field types and may be nil for untyped directive arguments.
func valueOf(value interface{}, t graphql.Type) (*ast.Value, error) {
	if nonNull, ok := t.(graphql.NonNull); ok {
		t = nonNull.ElementType()
	}

	if value == nil {
		return &ast.Value{Kind: ast.NullValue, Raw: "null"}, nil
	}

	if enum, ok := t.(graphql.Enum); ok {
		name, err := enum.CoerceResultValue(value)
		if err != nil {
			return nil, err
		}
		return &ast.Value{Kind: ast.EnumValue, Raw: fmt.Sprint(name)}, nil
	}

	switch value := value.(type) {
	case bool:
		return &ast.Value{Kind: ast.BooleanValue, Raw: strconv.FormatBool(value)}, nil
	case string:
		return &ast.Value{Kind: ast.StringValue, Raw: value}, nil
	case float32:
		return &ast.Value{Kind: ast.FloatValue, Raw: strconv.FormatFloat(float64(value), 'g', -1, 32)}, nil
	case float64:
		return &ast.Value{Kind: ast.FloatValue, Raw: strconv.FormatFloat(value, 'g', -1, 64)}, nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatInt(v.Int(), 10)}, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &ast.Value{Kind: ast.IntValue, Raw: strconv.FormatUint(v.Uint(), 10)}, nil

	case reflect.Slice, reflect.Array:
		var elementType graphql.Type
		if list, ok := t.(graphql.List); ok {
			elementType = list.ElementType()
		}

		result := &ast.Value{Kind: ast.ListValue}
		for i := 0; i < v.Len(); i++ {
			child, err := valueOf(v.Index(i).Interface(), elementType)
			if err != nil {
				return nil, err
			}
			result.Children = append(result.Children, &ast.ChildValue{Value: child})
		}
		return result, nil

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			break
		}

		var fields graphql.InputFieldMap
		if object, ok := t.(graphql.InputObject); ok {
			fields = object.Fields()
		}

		keys := make([]string, 0, v.Len())
		for _, key := range v.MapKeys() {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)

		result := &ast.Value{Kind: ast.ObjectValue}
		for _, key := range keys {
			var fieldType graphql.Type
			if field, exists := fields[key]; exists {
				fieldType = field.Type()
			}
			child, err := valueOf(v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key())).Interface(), fieldType)
			if err != nil {
				return nil, err
			}
			result.Children = append(result.Children, &ast.ChildValue{Name: key, Value: child})
		}
		return result, nil
	}

	return nil, graphql.NewError(fmt.Sprintf("cannot print value %v of type %T as a GraphQL literal", value, value),
		graphql.Op("sdl.valueOf"), graphql.ErrKindCoercion)
}
