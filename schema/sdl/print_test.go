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

package sdl_test

import (
	"strings"

	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/internal/util"
	"github.com/botobag/forge/schema"
	"github.com/botobag/forge/schema/sdl"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// fieldNames lists the names of fields in order, skipping introspection fields.
func fieldNames(def *ast.Definition) []string {
	names := []string{}
	for _, field := range def.Fields {
		if strings.HasPrefix(field.Name, "__") {
			continue
		}
		names = append(names, field.Name)
	}
	return names
}

var _ = Describe("Print", func() {
	var (
		node   graphql.Interface
		user   graphql.Object
		post   graphql.Object
		search graphql.Union
		role   graphql.Enum
		filter graphql.InputObject
		date   graphql.Scalar
		query  graphql.Object
	)

	BeforeEach(func() {
		node = graphql.MustNewInterface(&graphql.InterfaceConfig{
			Name: "Node",
			Fields: func() (graphql.Fields, error) {
				return graphql.Fields{
					"id": {Type: graphql.MustNewNonNullOf(graphql.ID())},
				}, nil
			},
		})

		role = graphql.MustNewEnum(&graphql.EnumConfig{
			Name: "Role",
			Values: []graphql.EnumValueConfig{
				{Name: "ADMIN", Value: 1},
				{Name: "MEMBER", Value: 2},
				{Name: "GUEST", Value: 3, Deprecation: &graphql.Deprecation{Reason: "use MEMBER"}},
			},
		})

		date = graphql.MustNewScalar(&graphql.ScalarConfig{
			Name:        "Date",
			Description: "Calendar date",
		})

		user = graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "User",
			Interfaces: func() ([]graphql.Interface, error) {
				return []graphql.Interface{node}, nil
			},
			Fields: func() (graphql.Fields, error) {
				return graphql.Fields{
					"name": {Type: graphql.String()},
					"id":   {Type: graphql.MustNewNonNullOf(graphql.ID())},
					"role": {Type: role},
					"login": {
						Type:        graphql.String(),
						Deprecation: &graphql.Deprecation{Reason: "use name"},
					},
					"joined": {Type: date},
				}, nil
			},
		})

		post = graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Post",
			Fields: func() (graphql.Fields, error) {
				return graphql.Fields{
					"title":  {Type: graphql.String()},
					"author": {Type: user},
				}, nil
			},
		})

		search = graphql.MustNewUnion(&graphql.UnionConfig{
			Name: "SearchResult",
			Types: func() ([]graphql.Object, error) {
				return []graphql.Object{post, user}, nil
			},
		})

		filter = graphql.MustNewInputObject(&graphql.InputObjectConfig{
			Name: "UserFilter",
			Fields: func() (graphql.InputFields, error) {
				return graphql.InputFields{
					"role":   {Type: role, DefaultValue: 2},
					"prefix": {Type: graphql.String(), DefaultValue: graphql.NilInputFieldDefaultValue},
				}, nil
			},
		})

		query = graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: func() (graphql.Fields, error) {
				return graphql.Fields{
					"users": {
						Type: graphql.MustNewNonNullOf(graphql.MustNewListOf(graphql.MustNewNonNullOf(user))),
						Args: graphql.ArgumentConfigMap{
							"first":  {Type: graphql.Int(), DefaultValue: 10},
							"filter": {Type: filter},
						},
					},
					"search": {
						Type: graphql.MustNewListOf(search),
						Args: graphql.ArgumentConfigMap{
							"text":  {Type: graphql.MustNewNonNullOf(graphql.String())},
							"roles": {Type: graphql.MustNewListOf(role), DefaultValue: []interface{}{1, 3}},
						},
					},
					"node": {Type: node},
				}, nil
			},
		})
	})

	newSchema := func() *graphql.Schema {
		s, err := graphql.NewSchema(&graphql.SchemaConfig{
			Query: query,
			Types: []graphql.Type{post},
		})
		Expect(err).ShouldNot(HaveOccurred())
		return s
	}

	It("prints every kind of type", func() {
		out, err := sdl.Print(newSchema())
		Expect(err).ShouldNot(HaveOccurred())

		Expect(out).Should(ContainSubstring("type User implements Node {"))
		Expect(out).Should(ContainSubstring("interface Node {\n\tid: ID!\n}"))
		Expect(out).Should(ContainSubstring("union SearchResult = Post | User"))
		Expect(out).Should(ContainSubstring("\"\"\"\nCalendar date\n\"\"\"\nscalar Date"))
		Expect(out).Should(ContainSubstring(util.Dedent(`
			enum Role {
				ADMIN
				MEMBER
				GUEST @deprecated(reason: "use MEMBER")
			}
		`)))
		Expect(out).Should(ContainSubstring("\tlogin: String @deprecated(reason: \"use name\")"))
		Expect(out).Should(ContainSubstring("\tusers(filter: UserFilter, first: Int = 10): [User!]!"))
		Expect(out).Should(ContainSubstring("\tsearch(roles: [Role] = [ADMIN,GUEST], text: String!): [SearchResult]"))
		Expect(out).Should(ContainSubstring(util.Dedent(`
			input UserFilter {
				prefix: String = null
				role: Role = MEMBER
			}
		`)))
	})

	It("omits built-in scalars and the schema block for default root names", func() {
		out, err := sdl.Print(newSchema())
		Expect(err).ShouldNot(HaveOccurred())

		Expect(out).ShouldNot(ContainSubstring("scalar Int"))
		Expect(out).ShouldNot(ContainSubstring("scalar String"))
		Expect(out).ShouldNot(ContainSubstring("schema {"))
	})

	It("sorts types and fields by name", func() {
		doc, err := sdl.ToAST(newSchema())
		Expect(err).ShouldNot(HaveOccurred())

		Expect(fieldNames(doc.Types["User"])).Should(Equal([]string{"id", "joined", "login", "name", "role"}))
		Expect(doc.Query).Should(BeIdenticalTo(doc.Types["Query"]))
		Expect(doc.Mutation).Should(BeNil())

		out, err := sdl.Print(newSchema())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(strings.Index(out, "type Post")).Should(BeNumerically("<", strings.Index(out, "type Query")))
		Expect(strings.Index(out, "type Query")).Should(BeNumerically("<", strings.Index(out, "type User")))
	})

	It("produces a document that loads back into the same schema", func() {
		out, err := sdl.Print(newSchema())
		Expect(err).ShouldNot(HaveOccurred())

		loaded, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: out})
		Expect(err).ShouldNot(HaveOccurred())

		Expect(loaded.Types["User"].Interfaces).Should(Equal([]string{"Node"}))
		Expect(loaded.Types["SearchResult"].Types).Should(Equal([]string{"Post", "User"}))
		Expect(loaded.Types["Query"].Fields.ForName("users").Type.String()).Should(Equal("[User!]!"))
		Expect(loaded.Types["Query"].Fields.ForName("users").Arguments.ForName("first").DefaultValue.Raw).Should(Equal("10"))

		doc, err := sdl.ToAST(newSchema())
		Expect(err).ShouldNot(HaveOccurred())
		for name, def := range doc.Types {
			if def.BuiltIn {
				continue
			}
			Expect(fieldNames(loaded.Types[name])).Should(Equal(fieldNames(def)), "fields of %s", name)
		}
	})

	It("prints a schema block for renamed root types", func() {
		root := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "RootQuery",
			Fields: func() (graphql.Fields, error) {
				return graphql.Fields{"ok": {Type: graphql.Boolean()}}, nil
			},
		})
		s, err := graphql.NewSchema(&graphql.SchemaConfig{Query: root})
		Expect(err).ShouldNot(HaveOccurred())

		out, err := sdl.Print(s)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(out).Should(HavePrefix("schema {\n\tquery: RootQuery\n}\n"))
	})

	It("prints directives recorded in extensions", func() {
		applied := []schema.AppliedDirective{
			{Name: "key", Args: map[string]interface{}{"fields": "id"}},
			{Name: "tag", Args: map[string]interface{}{"names": []string{"a", "b"}, "weight": 1.5}},
		}

		item := graphql.MustNewObject(&graphql.ObjectConfig{
			Name:       "Item",
			Extensions: graphql.Extensions{schema.DirectivesExtensionKey: applied},
			Fields: func() (graphql.Fields, error) {
				return graphql.Fields{
					"id": {
						Type: graphql.ID(),
						Extensions: graphql.Extensions{
							schema.DirectivesExtensionKey: []schema.AppliedDirective{{Name: "external"}},
						},
					},
				}, nil
			},
		})
		s, err := graphql.NewSchema(&graphql.SchemaConfig{Query: item})
		Expect(err).ShouldNot(HaveOccurred())

		out, err := sdl.Print(s)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(out).Should(ContainSubstring(`schema {`))
		Expect(out).Should(ContainSubstring(`type Item @key(fields: "id") @tag(names: ["a","b"], weight: 1.5) {`))
		Expect(out).Should(ContainSubstring("\tid: ID @external\n"))

		doc, err := parser.ParseSchema(&ast.Source{Name: "schema.graphql", Input: out})
		Expect(err).ShouldNot(HaveOccurred())

		var definition *ast.Definition
		for _, def := range doc.Definitions {
			if def.Name == "Item" {
				definition = def
			}
		}
		Expect(definition).ShouldNot(BeNil())

		names := []string{}
		for _, directive := range definition.Directives {
			names = append(names, directive.Name)
		}
		Expect(cmp.Diff([]string{"key", "tag"}, names)).Should(BeEmpty())
	})

	It("rejects default values without a GraphQL literal form", func() {
		broken := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Query",
			Fields: func() (graphql.Fields, error) {
				return graphql.Fields{
					"echo": {
						Type: graphql.String(),
						Args: graphql.ArgumentConfigMap{
							"value": {Type: graphql.String(), DefaultValue: struct{}{}},
						},
					},
				}, nil
			},
		})
		s, err := graphql.NewSchema(&graphql.SchemaConfig{Query: broken})
		Expect(err).ShouldNot(HaveOccurred())

		_, err = sdl.Print(s)
		Expect(err).Should(HaveOccurred())
		Expect(graphql.IsErrKind(err, graphql.ErrKindCoercion)).Should(BeTrue())
	})
})
