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

// Package sdl prints a built schema in the GraphQL Schema Definition Language.
package sdl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/schema"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
)

// Print formats s as SDL. Types and fields are sorted by name and built-in scalars are omitted.
// Directives recorded under schema.DirectivesExtensionKey are printed where they are applied.
func Print(s *graphql.Schema) (string, error) {
	doc, err := ToAST(s)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	formatter.NewFormatter(&b).FormatSchema(doc)
	return b.String(), nil
}

// ToAST converts s into a gqlparser schema.
func ToAST(s *graphql.Schema) (*ast.Schema, error) {
	result := &ast.Schema{
		Types: map[string]*ast.Definition{},
	}

	typeMap := s.TypeMap()
	for _, name := range typeMap.Names() {
		def, err := definitionOf(typeMap.Lookup(name))
		if err != nil {
			return nil, err
		}
		result.Types[name] = def
	}

	if s.Query() != nil {
		result.Query = result.Types[s.Query().Name()]
	}
	if s.Mutation() != nil {
		result.Mutation = result.Types[s.Mutation().Name()]
	}
	if s.Subscription() != nil {
		result.Subscription = result.Types[s.Subscription().Name()]
	}

	return result, nil
}

func definitionOf(t graphql.NamedType) (*ast.Definition, error) {
	def := &ast.Definition{
		Name:        t.Name(),
		Description: t.Description(),
	}

	directives, err := directivesOf(t.Extensions(), nil)
	if err != nil {
		return nil, err
	}
	def.Directives = directives

	switch t := t.(type) {
	case graphql.Scalar:
		def.Kind = ast.Scalar
		def.BuiltIn = graphql.IsBuiltinScalar(t)

	case graphql.Object:
		def.Kind = ast.Object
		def.Interfaces = interfaceNames(t.Interfaces())
		def.Fields, err = fieldsOf(t.Fields())

	case graphql.Interface:
		def.Kind = ast.Interface
		def.Interfaces = interfaceNames(t.Interfaces())
		def.Fields, err = fieldsOf(t.Fields())

	case graphql.Union:
		def.Kind = ast.Union
		for _, member := range t.PossibleTypes() {
			def.Types = append(def.Types, member.Name())
		}

	case graphql.Enum:
		def.Kind = ast.Enum
		for _, value := range t.Values() {
			directives, err := directivesOf(value.Extensions(), value.Deprecation())
			if err != nil {
				return nil, err
			}
			def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{
				Name:        value.Name(),
				Description: value.Description(),
				Directives:  directives,
			})
		}

	case graphql.InputObject:
		def.Kind = ast.InputObject
		def.Fields, err = inputFieldsOf(t.Fields())

	default:
		return nil, graphql.NewError(fmt.Sprintf("cannot print %s: unsupported type %T", t.Name(), t),
			graphql.Op("sdl.ToAST"), graphql.ErrKindInvalidType)
	}

	if err != nil {
		return nil, err
	}
	return def, nil
}

func interfaceNames(interfaces []graphql.Interface) []string {
	var names []string
	for _, iface := range interfaces {
		names = append(names, iface.Name())
	}
	return names
}

func fieldsOf(fields graphql.FieldMap) (ast.FieldList, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make(ast.FieldList, 0, len(names))
	for _, name := range names {
		field := fields[name]

		directives, err := directivesOf(field.Extensions(), field.Deprecation())
		if err != nil {
			return nil, err
		}

		def := &ast.FieldDefinition{
			Name:        name,
			Description: field.Description(),
			Type:        typeOf(field.Type()),
			Directives:  directives,
		}

		args := field.Args()
		for i := range args {
			arg := &args[i]
			argDef := &ast.ArgumentDefinition{
				Name:        arg.Name(),
				Description: arg.Description(),
				Type:        typeOf(arg.Type()),
			}
			if arg.HasDefaultValue() {
				argDef.DefaultValue, err = valueOf(arg.DefaultValue(), arg.Type())
				if err != nil {
					return nil, err
				}
			}
			argDef.Directives, err = directivesOf(arg.Extensions(), nil)
			if err != nil {
				return nil, err
			}
			def.Arguments = append(def.Arguments, argDef)
		}

		list = append(list, def)
	}
	return list, nil
}

func inputFieldsOf(fields graphql.InputFieldMap) (ast.FieldList, error) {
	list := make(ast.FieldList, 0, len(fields))
	for _, name := range fields.Names() {
		field := fields[name]

		directives, err := directivesOf(field.Extensions(), nil)
		if err != nil {
			return nil, err
		}

		def := &ast.FieldDefinition{
			Name:        name,
			Description: field.Description(),
			Type:        typeOf(field.Type()),
			Directives:  directives,
		}
		if field.HasDefaultValue() {
			def.DefaultValue, err = valueOf(field.DefaultValue(), field.Type())
			if err != nil {
				return nil, err
			}
		}
		list = append(list, def)
	}
	return list, nil
}

// typeOf converts a graphql type into its AST form.
func typeOf(t graphql.Type) *ast.Type {
	switch t := t.(type) {
	case graphql.NonNull:
		result := typeOf(t.ElementType())
		result.NonNull = true
		return result
	case graphql.List:
		return ast.ListType(typeOf(t.ElementType()), nil)
	case graphql.NamedType:
		return ast.NamedType(t.Name(), nil)
	}
	return nil
}

// directivesOf returns the directives applied through extensions followed by @deprecated if
// deprecation is set.
func directivesOf(extensions graphql.Extensions, deprecation *graphql.Deprecation) (ast.DirectiveList, error) {
	var list ast.DirectiveList

	if applied, ok := extensions.Get(schema.DirectivesExtensionKey).([]schema.AppliedDirective); ok {
		for _, directive := range applied {
			names := make([]string, 0, len(directive.Args))
			for name := range directive.Args {
				names = append(names, name)
			}
			sort.Strings(names)

			d := &ast.Directive{Name: directive.Name}
			for _, name := range names {
				value, err := valueOf(directive.Args[name], nil)
				if err != nil {
					return nil, err
				}
				d.Arguments = append(d.Arguments, &ast.Argument{Name: name, Value: value})
			}
			list = append(list, d)
		}
	}

	if deprecation.Defined() {
		d := &ast.Directive{Name: "deprecated"}
		if len(deprecation.Reason) > 0 {
			d.Arguments = ast.ArgumentList{
				{Name: "reason", Value: &ast.Value{Kind: ast.StringValue, Raw: deprecation.Reason}},
			}
		}
		list = append(list, d)
	}

	return list, nil
}
