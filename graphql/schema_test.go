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

package graphql_test

import (
	"context"
	"errors"

	"github.com/botobag/forge/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Schema", func() {
	It("resolves mutually recursive types through thunks", func() {
		var user, post graphql.Object

		user = graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "User",
			Fields: func() (graphql.Fields, error) {
				return graphql.Fields{
					"posts": {Type: graphql.MustNewListOf(graphql.MustNewNonNullOf(post))},
				}, nil
			},
		})
		post = graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Post",
			Fields: func() (graphql.Fields, error) {
				return graphql.Fields{
					"author": {Type: user},
				}, nil
			},
		})
		query := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: func() (graphql.Fields, error) {
				return graphql.Fields{
					"me": {Type: user},
				}, nil
			},
		})

		schema, err := graphql.NewSchema(&graphql.SchemaConfig{Query: query})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(schema.TypeMap().Lookup("Post")).Should(BeIdenticalTo(post))
		Expect(schema.TypeMap().Names()).Should(Equal([]string{
			"Boolean", "Float", "ID", "Int", "Post", "Query", "String", "User",
		}))
		Expect(user.Fields()["posts"].Type().String()).Should(Equal("[Post!]"))
	})

	It("evaluates thunks only once", func() {
		calls := 0
		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: func() (graphql.Fields, error) {
				calls++
				return graphql.Fields{"a": {Type: graphql.String()}}, nil
			},
		})
		object.Fields()
		object.Fields()
		Expect(object.Finalize()).Should(Succeed())
		Expect(calls).Should(Equal(1))
	})

	It("reports thunk errors", func() {
		thunkErr := errors.New("cannot compute fields")
		query := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: func() (graphql.Fields, error) {
				return nil, thunkErr
			},
		})
		_, err := graphql.NewSchema(&graphql.SchemaConfig{Query: query})
		Expect(err).Should(MatchError(thunkErr))
	})

	It("rejects two types with the same name", func() {
		a := graphql.MustNewObject(&graphql.ObjectConfig{Name: "A"})
		b := graphql.MustNewObject(&graphql.ObjectConfig{Name: "A"})
		_, err := graphql.NewSchema(&graphql.SchemaConfig{Types: []graphql.Type{a, b}})
		Expect(graphql.IsErrKind(err, graphql.ErrKindNameCollision)).Should(BeTrue())
		Expect(err.Error()).Should(ContainSubstring("multiple types named A"))
	})

	It("rejects input types as field types", func() {
		input := graphql.MustNewInputObject(&graphql.InputObjectConfig{Name: "Filter"})
		query := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: func() (graphql.Fields, error) {
				return graphql.Fields{"filter": {Type: input}}, nil
			},
		})
		_, err := graphql.NewSchema(&graphql.SchemaConfig{Query: query})
		Expect(graphql.IsErrKind(err, graphql.ErrKindTypeKindMismatch)).Should(BeTrue())
	})

	It("tracks interface implementations", func() {
		node := graphql.MustNewInterface(&graphql.InterfaceConfig{
			Name: "Node",
			Fields: func() (graphql.Fields, error) {
				return graphql.Fields{"id": {Type: graphql.MustNewNonNullOf(graphql.ID())}}, nil
			},
		})
		interfaces := func() ([]graphql.Interface, error) {
			return []graphql.Interface{node}, nil
		}
		fields := func() (graphql.Fields, error) {
			return graphql.Fields{"id": {Type: graphql.MustNewNonNullOf(graphql.ID())}}, nil
		}
		b := graphql.MustNewObject(&graphql.ObjectConfig{Name: "B", Interfaces: interfaces, Fields: fields})
		a := graphql.MustNewObject(&graphql.ObjectConfig{Name: "A", Interfaces: interfaces, Fields: fields})

		schema, err := graphql.NewSchema(&graphql.SchemaConfig{Types: []graphql.Type{b, a}})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(schema.PossibleTypes(node)).Should(Equal([]graphql.Object{a, b}))
	})
})

var _ = Describe("Field", func() {
	It("sorts arguments and falls back to the default resolver", func() {
		query := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: func() (graphql.Fields, error) {
				return graphql.Fields{
					"search": {
						Type: graphql.String(),
						Args: graphql.ArgumentConfigMap{
							"text":  {Type: graphql.String()},
							"limit": {Type: graphql.Int(), DefaultValue: graphql.NilArgumentDefaultValue},
						},
					},
				}, nil
			},
		})
		field := query.Fields()["search"]
		args := field.Args()
		Expect(args).Should(HaveLen(2))
		Expect(args[0].Name()).Should(Equal("limit"))
		Expect(args[0].HasDefaultValue()).Should(BeTrue())
		Expect(args[0].DefaultValue()).Should(BeNil())
		Expect(args[1].HasDefaultValue()).Should(BeFalse())

		info := graphql.NewResolveInfo(graphql.ResolveInfoConfig{FieldName: "search"})
		Expect(field.Resolver().Resolve(context.Background(), map[string]interface{}{
			"search": "hit",
		}, info)).Should(Equal("hit"))
	})

	It("reads struct fields by name or json tag", func() {
		type user struct {
			Name  string
			Email string `json:"mail"`
		}
		resolver := graphql.DefaultFieldResolver()
		source := &user{Name: "Ann", Email: "ann@example.com"}

		Expect(resolver.Resolve(context.Background(), source,
			graphql.NewResolveInfo(graphql.ResolveInfoConfig{FieldName: "name"}))).Should(Equal("Ann"))
		Expect(resolver.Resolve(context.Background(), source,
			graphql.NewResolveInfo(graphql.ResolveInfoConfig{FieldName: "mail"}))).Should(Equal("ann@example.com"))
		Expect(resolver.Resolve(context.Background(), source,
			graphql.NewResolveInfo(graphql.ResolveInfoConfig{FieldName: "missing"}))).Should(BeNil())
	})
})

var _ = Describe("Wrapping types", func() {
	It("prints in GraphQL notation", func() {
		t := graphql.MustNewNonNullOf(graphql.MustNewListOf(graphql.MustNewNonNullOf(graphql.Int())))
		Expect(t.String()).Should(Equal("[Int!]!"))
		Expect(graphql.NamedTypeOf(t)).Should(BeIdenticalTo(graphql.Int()))
		Expect(graphql.IsNullableType(t)).Should(BeFalse())
		Expect(graphql.NullableTypeOf(t).String()).Should(Equal("[Int!]"))
	})

	It("rejects NonNull of NonNull", func() {
		_, err := graphql.NewNonNullOf(graphql.MustNewNonNullOf(graphql.Int()))
		Expect(err).Should(HaveOccurred())
	})
})

var _ = Describe("Enum", func() {
	It("maps names to internal values", func() {
		color := graphql.MustNewEnum(&graphql.EnumConfig{
			Name: "Color",
			Values: []graphql.EnumValueConfig{
				{Name: "RED", Value: 0},
				{Name: "GREEN"},
			},
		})
		Expect(color.Values()[1].Value()).Should(Equal("GREEN"))
		Expect(color.CoerceResultValue(0)).Should(Equal("RED"))
		Expect(color.CoerceInputValue("GREEN")).Should(Equal("GREEN"))

		_, err := color.CoerceInputValue("BLUE")
		Expect(err).Should(HaveOccurred())
	})

	It("rejects duplicate values", func() {
		_, err := graphql.NewEnum(&graphql.EnumConfig{
			Name:   "Color",
			Values: []graphql.EnumValueConfig{{Name: "RED"}, {Name: "RED"}},
		})
		Expect(err.Error()).Should(ContainSubstring("can include value RED only once"))
	})
})
