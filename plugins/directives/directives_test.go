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

package directives_test

import (
	"errors"

	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/plugins/directives"
	"github.com/botobag/forge/schema"
	"github.com/botobag/forge/schema/buildcache"
	"github.com/botobag/forge/schema/configstore"
	"github.com/botobag/forge/schema/plugin"
	"github.com/botobag/forge/schema/sdl"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func appliedOn(extensions graphql.Extensions) []schema.AppliedDirective {
	applied, _ := extensions.Get(schema.DirectivesExtensionKey).([]schema.AppliedDirective)
	return applied
}

var _ = Describe("Parse", func() {
	It("accepts applied directives as is", func() {
		in := []schema.AppliedDirective{{Name: "key", Args: map[string]interface{}{"fields": "id"}}}
		Expect(directives.Parse(in)).Should(Equal(in))
	})

	It("orders a name to arguments map by name", func() {
		Expect(directives.Parse(map[string]interface{}{
			"tag":      map[string]interface{}{"name": "public"},
			"external": nil,
		})).Should(Equal([]schema.AppliedDirective{
			{Name: "external"},
			{Name: "tag", Args: map[string]interface{}{"name": "public"}},
		}))
	})

	It("accepts decoded documents", func() {
		Expect(directives.Parse([]interface{}{
			"shareable",
			map[string]interface{}{"name": "key", "args": map[string]interface{}{"fields": "id"}},
		})).Should(Equal([]schema.AppliedDirective{
			{Name: "shareable"},
			{Name: "key", Args: map[string]interface{}{"fields": "id"}},
		}))
	})

	It("rejects malformed values", func() {
		for _, value := range []interface{}{
			"key",
			[]interface{}{42},
			[]interface{}{map[string]interface{}{"args": map[string]interface{}{}}},
			[]interface{}{map[string]interface{}{"name": "key", "arguments": nil}},
			map[string]interface{}{"key": "id"},
			[]schema.AppliedDirective{{}},
		} {
			_, err := directives.Parse(value)
			Expect(err).Should(HaveOccurred(), "%#v", value)
			Expect(graphql.IsErrKind(err, graphql.ErrKindInvalidType)).Should(BeTrue())
		}
	})
})

var _ = Describe("Plugin", func() {
	var (
		store    *configstore.Store
		queryRef *schema.TypeRef
		roleRef  *schema.TypeRef
	)

	BeforeEach(func() {
		store = configstore.New()
		queryRef = schema.NewTypeRef(schema.KindQuery, "Query")
		roleRef = schema.NewTypeRef(schema.KindEnum, "Role")

		Expect(store.AddTypeConfig(&schema.TypeConfig{
			Kind:    schema.KindQuery,
			Name:    "Query",
			Options: schema.Options{"directives": map[string]interface{}{"key": map[string]interface{}{"fields": "id"}}},
		}, queryRef)).Should(Succeed())
		Expect(store.AddTypeConfig(&schema.TypeConfig{
			Kind: schema.KindEnum,
			Name: "Role",
			Values: []*schema.EnumValueConfig{
				{Name: "ADMIN"},
				{Name: "GUEST", Options: schema.Options{"directives": []interface{}{"internal"}}},
			},
		}, roleRef)).Should(Succeed())
		Expect(store.AddFields(queryRef, schema.FieldConfigMap{
			"id": {
				Type:    schema.NamedType(schema.IDRef, false),
				Options: schema.Options{"directives": []interface{}{"external"}},
			},
			"role": {
				Type: schema.NamedType(roleRef, true),
				Args: schema.InputFieldConfigMap{
					"as": {
						Type:    schema.NamedType(schema.StringRef, true),
						Options: schema.Options{"directives": []interface{}{"internal"}},
					},
				},
			},
		})).Should(Succeed())
		Expect(store.PrepareForBuild()).Should(Succeed())
	})

	build := func(p plugin.Plugin) (*buildcache.Cache, error) {
		cache := buildcache.New(store, p)
		return cache, cache.BuildAll()
	}

	It("is available from the plugin registry", func() {
		p, err := plugin.New(directives.Name)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(p.Name()).Should(Equal("directives"))
	})

	It("records directives in the extensions of built elements", func() {
		cache, err := build(directives.New())
		Expect(err).ShouldNot(HaveOccurred())

		query := cache.RootTypes().Query
		Expect(appliedOn(query.Extensions())).Should(Equal([]schema.AppliedDirective{
			{Name: "key", Args: map[string]interface{}{"fields": "id"}},
		}))
		Expect(appliedOn(query.Fields()["id"].Extensions())).Should(Equal([]schema.AppliedDirective{{Name: "external"}}))
		Expect(appliedOn(query.Fields()["role"].Args()[0].Extensions())).Should(Equal([]schema.AppliedDirective{{Name: "internal"}}))
		Expect(appliedOn(query.Fields()["role"].Extensions())).Should(BeNil())

		role, err := cache.Type(roleRef)
		Expect(err).ShouldNot(HaveOccurred())
		values := role.(graphql.Enum).Values()
		Expect(appliedOn(values[0].Extensions())).Should(BeNil())
		Expect(appliedOn(values[1].Extensions())).Should(Equal([]schema.AppliedDirective{{Name: "internal"}}))
	})

	It("feeds the SDL printer", func() {
		cache, err := build(directives.New())
		Expect(err).ShouldNot(HaveOccurred())

		s, err := graphql.NewSchema(&graphql.SchemaConfig{Query: cache.RootTypes().Query})
		Expect(err).ShouldNot(HaveOccurred())

		out, err := sdl.Print(s)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(out).Should(ContainSubstring(`type Query @key(fields: "id") {`))
		Expect(out).Should(ContainSubstring("\tid: ID! @external\n"))
		Expect(out).Should(ContainSubstring("\trole(as: String @internal): Role\n"))
		Expect(out).Should(ContainSubstring("\tGUEST @internal\n"))
	})

	It("rejects directives outside of the known set", func() {
		_, err := build(directives.New("key", "external", "interal"))
		Expect(err).Should(HaveOccurred())
		Expect(graphql.IsErrKind(err, graphql.ErrKindUnknownType)).Should(BeTrue())
		Expect(err.Error()).Should(ContainSubstring(`unknown directive @internal on`))
		Expect(err.Error()).Should(ContainSubstring(`Did you mean "interal"`))
	})

	It("reports the element carrying a malformed option", func() {
		Expect(store.Closed()).Should(BeTrue())

		broken := configstore.New()
		ref := schema.NewTypeRef(schema.KindQuery, "Query")

		Expect(broken.AddTypeConfig(&schema.TypeConfig{
			Kind:    schema.KindQuery,
			Name:    "Query",
			Options: schema.Options{"directives": 42},
		}, ref)).Should(Succeed())
		Expect(broken.PrepareForBuild()).Should(Succeed())

		err := buildcache.New(broken, directives.New()).BuildAll()
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("invalid directives on Query"))

		var graphqlErr *graphql.Error
		Expect(errors.As(err, &graphqlErr)).Should(BeTrue())
		Expect(graphqlErr.Kind).Should(Equal(graphql.ErrKindInvalidType))
	})
})
