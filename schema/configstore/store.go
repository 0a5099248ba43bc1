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

// Package configstore accumulates type and field declarations of a schema under construction.
//
// Declarations may arrive in any order. A field may be added to a type before the type itself is
// declared: the store queues work against the reference and runs it once the reference resolves.
// PrepareForBuild closes the store, after which it only answers lookups.
package configstore

import (
	"log/slog"
	"sort"

	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/internal/util"
	"github.com/botobag/forge/schema"
)

// Callback receives the config of a type once its reference resolves.
type Callback func(config *schema.TypeConfig) error

// Store maps references to type configs and type names to field configs.
type Store struct {
	logger *slog.Logger

	// typeConfigs and order record every registered config; order is declaration order.
	typeConfigs map[string]*schema.TypeConfig
	order       []string

	// refNames binds *schema.TypeRef and associated keys to type names.
	refNames map[interface{}]string

	// pending holds callbacks waiting for a reference, in registration order. pendingOrder keeps
	// the order in which references started waiting for error reporting.
	pending      map[interface{}][]Callback
	pendingOrder []interface{}

	fields      map[string]schema.FieldConfigMap
	inputFields map[string]schema.InputFieldConfigMap

	// deferredErrs collects failures of callbacks run while flushing a reference. They are never
	// cleared.
	deferredErrs []error

	closed bool
}

// Option configures a Store.
type Option func(store *Store)

// WithLogger sets the logger for debug messages. slog.Default() is used if not given.
func WithLogger(logger *slog.Logger) Option {
	return func(store *Store) {
		store.logger = logger
	}
}

// New creates an empty, open Store.
func New(opts ...Option) *Store {
	store := &Store{
		logger:      slog.Default(),
		typeConfigs: map[string]*schema.TypeConfig{},
		refNames:    map[interface{}]string{},
		pending:     map[interface{}][]Callback{},
		fields:      map[string]schema.FieldConfigMap{},
		inputFields: map[string]schema.InputFieldConfigMap{},
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

// Closed returns true once PrepareForBuild succeeded.
func (store *Store) Closed() bool {
	return store.closed
}

// AddTypeConfig registers config under its name. If ref is not nil, it is bound to the name.
// Callbacks waiting on ref or on the name run before AddTypeConfig returns.
func (store *Store) AddTypeConfig(config *schema.TypeConfig, ref interface{}) error {
	const op graphql.Op = "configstore.AddTypeConfig"

	if store.closed {
		return storeClosedError(op, config.Name)
	}

	if len(config.Name) == 0 {
		return graphql.NewError("type config must have a name", op, graphql.ErrKindInvalidType)
	}

	if _, exists := store.typeConfigs[config.Name]; exists {
		return newError(op, graphql.ErrKindDuplicateType, config.Name,
			"duplicate typename: another type with name %s already exists", config.Name)
	}

	if ref != nil {
		if err := checkKey(op, ref); err != nil {
			return err
		}
		if name, isName := ref.(string); isName && name != config.Name {
			return newError(op, graphql.ErrKindInvalidType, name,
				"type %s cannot be registered under name %s; use AssociateRefWithName to alias it",
				config.Name, name)
		}
		if name, bound := store.refNames[ref]; bound {
			return newError(op, graphql.ErrKindDuplicateType, ref,
				"%s was already used to implement type %s", schema.RefString(ref), name)
		}
	}

	store.typeConfigs[config.Name] = config
	store.order = append(store.order, config.Name)
	if config.Kind == schema.KindInputObject {
		store.inputFields[config.Name] = schema.InputFieldConfigMap{}
	} else if config.Kind.HasFields() {
		store.fields[config.Name] = schema.FieldConfigMap{}
	}

	store.logger.Debug("registered type config",
		"name", config.Name, "kind", config.Kind.String(), "ref", ref != nil)

	if ref != nil {
		if _, isName := ref.(string); !isName {
			store.refNames[ref] = config.Name
			store.flush(ref, config)
		}
	}
	store.flush(config.Name, config)
	return nil
}

// AssociateRefWithName binds key to the registered type name so key may be used wherever a
// reference is accepted. Callbacks waiting on key run before AssociateRefWithName returns.
func (store *Store) AssociateRefWithName(key interface{}, name string) error {
	const op graphql.Op = "configstore.AssociateRefWithName"

	if store.closed {
		return storeClosedError(op, key)
	}

	if err := checkKey(op, key); err != nil {
		return err
	}

	config, exists := store.typeConfigs[name]
	if !exists {
		return store.unknownTypeError(op, name)
	}

	if prev, bound := store.refNames[key]; bound {
		if prev == name {
			return nil
		}
		return newError(op, graphql.ErrKindDuplicateType, key,
			"%s was already associated with type %s", schema.RefString(key), prev)
	}

	store.refNames[key] = name
	store.logger.Debug("associated key with type", "key", schema.RefString(key), "name", name)
	store.flush(key, config)
	return nil
}

// OnTypeConfig runs callback with the config ref resolves to. If ref is already resolved,
// callback runs immediately and its error is returned. Otherwise it runs exactly once when ref
// resolves; its error is then reported by PrepareForBuild.
func (store *Store) OnTypeConfig(ref interface{}, callback Callback) error {
	const op graphql.Op = "configstore.OnTypeConfig"

	if config := store.lookup(ref); config != nil {
		return callback(config)
	}

	if store.closed {
		return store.unknownTypeError(op, ref)
	}

	if err := checkKey(op, ref); err != nil {
		return err
	}

	if t, ok := ref.(graphql.NamedType); ok {
		ref = t.Name()
	}

	if _, waiting := store.pending[ref]; !waiting {
		store.pendingOrder = append(store.pendingOrder, ref)
	}
	store.pending[ref] = append(store.pending[ref], callback)
	return nil
}

// flush runs callbacks waiting on key. The queue is removed first so callbacks registering against
// the same key run immediately.
func (store *Store) flush(key interface{}, config *schema.TypeConfig) {
	callbacks, waiting := store.pending[key]
	if !waiting {
		return
	}
	delete(store.pending, key)

	for _, callback := range callbacks {
		if err := callback(config); err != nil {
			store.deferredErrs = append(store.deferredErrs, err)
		}
	}
}

// AddFields merges fields into the Object or Interface ref resolves to. The merge is deferred
// until ref resolves, so fields may be added before their type.
func (store *Store) AddFields(ref interface{}, fields schema.FieldConfigMap) error {
	const op graphql.Op = "configstore.AddFields"

	if store.closed {
		return storeClosedError(op, ref)
	}

	return store.OnTypeConfig(ref, func(config *schema.TypeConfig) error {
		if !config.Kind.HasFields() {
			return newError(op, graphql.ErrKindKindMismatch, config.Name,
				"cannot add fields to %s which is a %s", config.Name, config.Kind)
		}

		existing := store.fields[config.Name]
		for name, field := range fields {
			if len(field.Name) == 0 {
				field.Name = name
			}
			field.ParentType = config.Name
			field.Kind = config.Kind
			for argName, arg := range field.Args {
				if len(arg.Name) == 0 {
					arg.Name = argName
				}
				arg.Kind = schema.InputFieldKindArg
				arg.ParentType = config.Name
				arg.ParentField = field.Name
			}
			existing[name] = field
		}
		return nil
	})
}

// AddInputFields merges fields into the InputObject ref resolves to. Like AddFields, the merge is
// deferred until ref resolves.
func (store *Store) AddInputFields(ref interface{}, fields schema.InputFieldConfigMap) error {
	const op graphql.Op = "configstore.AddInputFields"

	if store.closed {
		return storeClosedError(op, ref)
	}

	return store.OnTypeConfig(ref, func(config *schema.TypeConfig) error {
		if config.Kind != schema.KindInputObject {
			return newError(op, graphql.ErrKindKindMismatch, config.Name,
				"cannot add input fields to %s which is a %s", config.Name, config.Kind)
		}

		existing := store.inputFields[config.Name]
		for name, field := range fields {
			if len(field.Name) == 0 {
				field.Name = name
			}
			field.Kind = schema.InputFieldKindInputObject
			field.ParentType = config.Name
			existing[name] = field
		}
		return nil
	})
}

// lookup resolves ref to its config or returns nil.
func (store *Store) lookup(ref interface{}) *schema.TypeConfig {
	switch r := ref.(type) {
	case nil:
		return nil
	case string:
		if config, exists := store.typeConfigs[r]; exists {
			return config
		}
		if name, bound := store.refNames[r]; bound {
			return store.typeConfigs[name]
		}
		return nil
	case graphql.NamedType:
		return store.typeConfigs[r.Name()]
	}

	if !util.IsHashable(ref) {
		return nil
	}
	if name, bound := store.refNames[ref]; bound {
		return store.typeConfigs[name]
	}
	if name, ok := schema.BuiltinScalarName(ref); ok {
		return store.typeConfigs[name]
	}
	return nil
}

// HasTypeConfig returns true if ref resolves.
func (store *Store) HasTypeConfig(ref interface{}) bool {
	return store.lookup(ref) != nil
}

// TypeConfig resolves ref (a *schema.TypeRef, a type name, an associated key or a built type) to
// its config.
func (store *Store) TypeConfig(ref interface{}) (*schema.TypeConfig, error) {
	if config := store.lookup(ref); config != nil {
		return config, nil
	}
	return nil, store.unknownTypeError("configstore.TypeConfig", ref)
}

// TypeConfigs returns all configs in declaration order.
func (store *Store) TypeConfigs() []*schema.TypeConfig {
	configs := make([]*schema.TypeConfig, len(store.order))
	for i, name := range store.order {
		configs[i] = store.typeConfigs[name]
	}
	return configs
}

// PrepareForBuild closes the store. It fails if a reference never resolved or a deferred merge
// failed; the store stays open in that case. A failed deferred merge cannot be undone, as the
// config it ran against stays registered, so every later PrepareForBuild reports it again.
func (store *Store) PrepareForBuild() error {
	const op graphql.Op = "configstore.PrepareForBuild"

	if store.closed {
		return graphql.NewError("store was already prepared for build", op, graphql.ErrKindStoreClosed)
	}

	if len(store.pending) > 0 {
		var missing []string
		for _, ref := range store.pendingOrder {
			if _, waiting := store.pending[ref]; waiting {
				missing = append(missing, schema.RefString(ref))
			}
		}
		sort.Strings(missing)
		return newError(op, graphql.ErrKindUnknownType, missing[0],
			"types referenced but never implemented: %v", missing)
	}

	if len(store.deferredErrs) > 0 {
		return store.deferredErrs[0]
	}

	store.closed = true
	store.logger.Debug("config store closed", "types", len(store.order))
	return nil
}

// Fields returns the output fields of the named type. kind is compared after mapping root kinds to
// Object, so a Query type satisfies KindObject.
func (store *Store) Fields(typeName string, kind schema.Kind) (schema.FieldConfigMap, error) {
	const op graphql.Op = "configstore.Fields"

	config, exists := store.typeConfigs[typeName]
	if !exists {
		return nil, store.unknownTypeError(op, typeName)
	}

	if config.Kind.GraphQLKind() != kind.GraphQLKind() || !config.Kind.HasFields() {
		return nil, newError(op, graphql.ErrKindKindMismatch, typeName,
			"expected %s to be a %s but it is a %s", typeName, kind, config.Kind)
	}
	return store.fields[typeName], nil
}

// InputFields returns the fields of the named InputObject.
func (store *Store) InputFields(typeName string) (schema.InputFieldConfigMap, error) {
	const op graphql.Op = "configstore.InputFields"

	config, exists := store.typeConfigs[typeName]
	if !exists {
		return nil, store.unknownTypeError(op, typeName)
	}

	if config.Kind != schema.KindInputObject {
		return nil, newError(op, graphql.ErrKindKindMismatch, typeName,
			"expected %s to be a %s but it is a %s", typeName, schema.KindInputObject, config.Kind)
	}
	return store.inputFields[typeName], nil
}

// checkKey rejects references that cannot be map keys.
func checkKey(op graphql.Op, key interface{}) error {
	if !util.IsHashable(key) {
		return graphql.NewError("reference must be a non-nil comparable value", op,
			graphql.ErrKindInvalidType)
	}
	return nil
}
