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

package configstore_test

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"

	"github.com/botobag/forge/graphql"
	. "github.com/botobag/forge/internal/testutil"
	"github.com/botobag/forge/schema"
	"github.com/botobag/forge/schema/configstore"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func stringField() *schema.FieldConfig {
	return &schema.FieldConfig{Type: schema.NamedType(schema.StringRef, true)}
}

var _ = Describe("Store", func() {
	var (
		store   *configstore.Store
		userRef *schema.TypeRef
	)

	BeforeEach(func() {
		store = configstore.New()
		userRef = schema.NewTypeRef(schema.KindObject, "User")
	})

	Describe("AddTypeConfig", func() {
		It("registers configs in declaration order", func() {
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "B"}, nil)).Should(Succeed())
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindEnum, Name: "A"}, nil)).Should(Succeed())

			configs := store.TypeConfigs()
			Expect(configs).Should(HaveLen(2))
			Expect(configs[0].Name).Should(Equal("B"))
			Expect(configs[1].Name).Should(Equal("A"))
		})

		It("rejects a name that is already registered", func() {
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "User"}, nil)).Should(Succeed())
			err := store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindInterface, Name: "User"}, nil)
			Expect(err).Should(MatchGraphQLError(
				MessageContainSubstring("User"),
				KindIs(graphql.ErrKindDuplicateType),
			))
			Expect(store.TypeConfigs()).Should(HaveLen(1))
		})

		It("rejects a ref that is already bound", func() {
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "User"}, userRef)).Should(Succeed())
			err := store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "Admin"}, userRef)
			Expect(graphql.IsErrKind(err, graphql.ErrKindDuplicateType)).Should(BeTrue())
		})

		It("rejects a config without name", func() {
			err := store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject}, nil)
			Expect(err).Should(MatchGraphQLError(KindIs(graphql.ErrKindInvalidType)))
		})

		It("accepts the config name as ref and rejects any other name", func() {
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "User"}, "User")).Should(Succeed())

			err := store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "Post"}, "Article")
			Expect(err).Should(MatchGraphQLError(
				MessageContainSubstring("Article"),
				KindIs(graphql.ErrKindInvalidType),
			))
			Expect(store.HasTypeConfig("Post")).Should(BeFalse())
			Expect(store.HasTypeConfig("Article")).Should(BeFalse())
		})

		It("treats references holding unhashable values as unknown", func() {
			type model struct {
				Data interface{}
			}
			unhashable := model{Data: []int{1}}

			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "User"}, unhashable)).Should(
				MatchGraphQLError(KindIs(graphql.ErrKindInvalidType)))
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "User"}, userRef)).Should(Succeed())

			Expect(func() {
				Expect(store.HasTypeConfig(unhashable)).Should(BeFalse())
				_, err := store.TypeConfig(unhashable)
				Expect(graphql.IsErrKind(err, graphql.ErrKindUnknownType)).Should(BeTrue())
				Expect(store.AssociateRefWithName(unhashable, "User")).Should(
					MatchGraphQLError(KindIs(graphql.ErrKindInvalidType)))
				Expect(store.AddFields(unhashable, schema.FieldConfigMap{})).Should(
					MatchGraphQLError(KindIs(graphql.ErrKindInvalidType)))
			}).ShouldNot(Panic())
		})
	})

	Describe("OnTypeConfig", func() {
		It("runs callbacks once the ref resolves, in registration order", func() {
			var calls []string
			Expect(store.OnTypeConfig(userRef, func(config *schema.TypeConfig) error {
				calls = append(calls, "first:"+config.Name)
				return nil
			})).Should(Succeed())
			Expect(store.OnTypeConfig(userRef, func(config *schema.TypeConfig) error {
				calls = append(calls, "second:"+config.Name)
				return nil
			})).Should(Succeed())
			Expect(calls).Should(BeEmpty())

			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "User"}, userRef)).Should(Succeed())
			Expect(calls).Should(Equal([]string{"first:User", "second:User"}))

			// Registering another type must not fire them again.
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "Post"}, nil)).Should(Succeed())
			Expect(calls).Should(HaveLen(2))
		})

		It("runs the callback immediately if the ref already resolved", func() {
			config := &schema.TypeConfig{Kind: schema.KindObject, Name: "User"}
			Expect(store.AddTypeConfig(config, userRef)).Should(Succeed())

			var seen []*schema.TypeConfig
			Expect(store.OnTypeConfig(userRef, func(c *schema.TypeConfig) error {
				seen = append(seen, c)
				return nil
			})).Should(Succeed())
			Expect(seen).Should(HaveLen(1))
			Expect(seen[0]).Should(BeIdenticalTo(config))
		})

		It("returns the error of an immediate callback", func() {
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "User"}, nil)).Should(Succeed())
			callbackErr := errors.New("callback failed")
			Expect(store.OnTypeConfig("User", func(*schema.TypeConfig) error {
				return callbackErr
			})).Should(MatchError(callbackErr))
		})

		It("resolves callbacks waiting on a type name", func() {
			called := 0
			Expect(store.OnTypeConfig("User", func(*schema.TypeConfig) error {
				called++
				return nil
			})).Should(Succeed())
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "User"}, userRef)).Should(Succeed())
			Expect(called).Should(Equal(1))
		})

		It("rejects keys that cannot be compared", func() {
			err := store.OnTypeConfig([]string{"User"}, func(*schema.TypeConfig) error { return nil })
			Expect(err).Should(HaveOccurred())
		})
	})

	Describe("AddFields", func() {
		It("accepts fields before and after the owning type", func() {
			Expect(store.AddFields(userRef, schema.FieldConfigMap{"name": stringField()})).Should(Succeed())
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "User"}, userRef)).Should(Succeed())
			Expect(store.AddFields(userRef, schema.FieldConfigMap{
				"email": {
					Type: schema.NamedType(schema.StringRef, true),
					Args: schema.InputFieldConfigMap{
						"domain": {Type: schema.NamedType(schema.StringRef, true)},
					},
				},
			})).Should(Succeed())
			Expect(store.PrepareForBuild()).Should(Succeed())

			fields, err := store.Fields("User", schema.KindObject)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(fields).Should(HaveLen(2))
			Expect(fields["name"].Name).Should(Equal("name"))
			Expect(fields["name"].ParentType).Should(Equal("User"))
			Expect(fields["name"].Kind).Should(Equal(schema.KindObject))

			arg := fields["email"].Args["domain"]
			Expect(arg.Name).Should(Equal("domain"))
			Expect(arg.Kind).Should(Equal(schema.InputFieldKindArg))
			Expect(arg.ParentField).Should(Equal("email"))
		})

		It("reports fields added to a type that cannot have them at PrepareForBuild", func() {
			colorRef := schema.NewTypeRef(schema.KindEnum, "Color")
			Expect(store.AddFields(colorRef, schema.FieldConfigMap{"name": stringField()})).Should(Succeed())
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindEnum, Name: "Color"}, colorRef)).Should(Succeed())

			Expect(store.PrepareForBuild()).Should(MatchGraphQLError(
				MessageContainSubstring("Color"),
				KindIs(graphql.ErrKindKindMismatch),
			))
			Expect(store.Closed()).Should(BeFalse())

			// The failed merge stays on record.
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "Palette"}, nil)).Should(Succeed())
			Expect(store.PrepareForBuild()).Should(MatchGraphQLError(
				MessageContainSubstring("Color"),
				KindIs(graphql.ErrKindKindMismatch),
			))
			Expect(store.Closed()).Should(BeFalse())
		})

		It("merges input fields into input objects", func() {
			filterRef := schema.NewTypeRef(schema.KindInputObject, "Filter")
			Expect(store.AddInputFields(filterRef, schema.InputFieldConfigMap{
				"text": {Type: schema.NamedType(schema.StringRef, true)},
			})).Should(Succeed())
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindInputObject, Name: "Filter"}, filterRef)).Should(Succeed())

			fields, err := store.InputFields("Filter")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(fields["text"].Kind).Should(Equal(schema.InputFieldKindInputObject))
			Expect(fields["text"].ParentType).Should(Equal("Filter"))

			_, err = store.Fields("Filter", schema.KindObject)
			Expect(graphql.IsErrKind(err, graphql.ErrKindKindMismatch)).Should(BeTrue())
		})
	})

	Describe("TypeConfig", func() {
		It("resolves refs, names, associated keys and built types", func() {
			type userModel struct{}
			config := &schema.TypeConfig{Kind: schema.KindObject, Name: "User"}
			Expect(store.AddTypeConfig(config, userRef)).Should(Succeed())
			Expect(store.AssociateRefWithName(reflect.TypeOf(userModel{}), "User")).Should(Succeed())

			Expect(store.TypeConfig(userRef)).Should(BeIdenticalTo(config))
			Expect(store.TypeConfig("User")).Should(BeIdenticalTo(config))
			Expect(store.TypeConfig(reflect.TypeOf(userModel{}))).Should(BeIdenticalTo(config))
			Expect(store.TypeConfig(graphql.MustNewObject(&graphql.ObjectConfig{Name: "User"}))).Should(BeIdenticalTo(config))

			// Lookups are idempotent.
			Expect(store.TypeConfig(userRef)).Should(BeIdenticalTo(config))
		})

		It("suggests similar names for unknown types", func() {
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "User"}, nil)).Should(Succeed())
			_, err := store.TypeConfig("Usr")
			Expect(err).Should(MatchGraphQLError(
				MessageContainSubstring(`type Usr has not been implemented. Did you mean "User"?`),
				KindIs(graphql.ErrKindUnknownType),
			))
		})

		It("flushes callbacks waiting on an associated key", func() {
			type postModel struct{}
			key := reflect.TypeOf(postModel{})
			Expect(store.AddFields(key, schema.FieldConfigMap{"title": stringField()})).Should(Succeed())
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "Post"}, nil)).Should(Succeed())
			Expect(store.AssociateRefWithName(key, "Post")).Should(Succeed())

			fields, err := store.Fields("Post", schema.KindObject)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(fields).Should(HaveKey("title"))
		})

		It("refuses to associate a key with an unknown type", func() {
			err := store.AssociateRefWithName("alias", "Missing")
			Expect(graphql.IsErrKind(err, graphql.ErrKindUnknownType)).Should(BeTrue())
		})
	})

	Describe("PrepareForBuild", func() {
		It("fails while references are unresolved", func() {
			Expect(store.AddFields(userRef, schema.FieldConfigMap{"name": stringField()})).Should(Succeed())
			Expect(store.PrepareForBuild()).Should(MatchGraphQLError(
				MessageContainSubstring("User"),
				KindIs(graphql.ErrKindUnknownType),
			))
			Expect(store.Closed()).Should(BeFalse())

			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "User"}, userRef)).Should(Succeed())
			Expect(store.PrepareForBuild()).Should(Succeed())
			Expect(store.Closed()).Should(BeTrue())
		})

		It("rejects mutation once closed and leaves the store unchanged", func() {
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "User"}, userRef)).Should(Succeed())
			Expect(store.PrepareForBuild()).Should(Succeed())

			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "Post"}, nil)).Should(
				MatchGraphQLError(KindIs(graphql.ErrKindStoreClosed), MessageContainSubstring("Post")))
			Expect(store.AddFields(userRef, schema.FieldConfigMap{"name": stringField()})).Should(
				MatchGraphQLError(KindIs(graphql.ErrKindStoreClosed)))
			Expect(store.AddInputFields("User", schema.InputFieldConfigMap{})).Should(
				MatchGraphQLError(KindIs(graphql.ErrKindStoreClosed)))
			Expect(store.AssociateRefWithName("alias", "User")).Should(
				MatchGraphQLError(KindIs(graphql.ErrKindStoreClosed)))
			Expect(store.PrepareForBuild()).Should(MatchGraphQLError(KindIs(graphql.ErrKindStoreClosed)))

			Expect(store.TypeConfigs()).Should(HaveLen(1))
			fields, err := store.Fields("User", schema.KindObject)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(fields).Should(BeEmpty())
			Expect(store.HasTypeConfig("alias")).Should(BeFalse())
		})
	})

	Describe("Fields", func() {
		It("treats root types as objects", func() {
			Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindQuery, Name: "Query"}, nil)).Should(Succeed())
			_, err := store.Fields("Query", schema.KindObject)
			Expect(err).ShouldNot(HaveOccurred())

			_, err = store.Fields("Query", schema.KindInterface)
			Expect(err).Should(MatchGraphQLError(
				MessageContainSubstring("expected Query to be a Interface but it is a Query"),
				KindIs(graphql.ErrKindKindMismatch),
			))
		})
	})

	It("logs registrations through the given logger", func() {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		store := configstore.New(configstore.WithLogger(logger))
		Expect(store.AddTypeConfig(&schema.TypeConfig{Kind: schema.KindObject, Name: "User"}, nil)).Should(Succeed())
		Expect(buf.String()).Should(ContainSubstring("name=User"))
	})
})
