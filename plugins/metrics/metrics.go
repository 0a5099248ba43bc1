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

// Package metrics is a plugin that instruments field resolvers, subscribers and abstract type
// resolvers with Prometheus metrics.
//
// A resolver that returns a future.Future is measured until the future completes.
package metrics

import (
	"context"
	"time"

	"github.com/botobag/forge/concurrent/future"
	"github.com/botobag/forge/graphql"
	"github.com/botobag/forge/schema"
	"github.com/botobag/forge/schema/plugin"

	"github.com/prometheus/client_golang/prometheus"
)

// Name of the plugin in the plugin registry
const Name = "metrics"

// SkipOption is the builder option of a field that opts it out of instrumentation when set to true.
const SkipOption = "metrics.skip"

// Outcome label values
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

func init() {
	plugin.MustRegister(Name, func() plugin.Plugin {
		return New()
	})
}

// Option configures the plugin.
type Option func(*Plugin)

// WithRegisterer registers the collectors of the plugin with r instead of the default registerer.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(p *Plugin) {
		p.registerer = r
	}
}

// WithNamespace sets the namespace of every metric. It defaults to "graphql".
func WithNamespace(namespace string) Option {
	return func(p *Plugin) {
		p.namespace = namespace
	}
}

// WithBuckets sets the buckets of the resolver duration histogram.
func WithBuckets(buckets []float64) Option {
	return func(p *Plugin) {
		p.buckets = buckets
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Plugin) {
		p.now = now
	}
}

// Plugin collects resolver metrics. Collectors are registered by BeforeBuild.
type Plugin struct {
	plugin.BasePlugin

	registerer prometheus.Registerer
	namespace  string
	buckets    []float64
	now        func() time.Time

	resolveDuration   *prometheus.HistogramVec
	resolveTotal      *prometheus.CounterVec
	subscribeTotal    *prometheus.CounterVec
	typeResolvedTotal *prometheus.CounterVec
	schemaTypes       prometheus.Gauge
}

var _ plugin.Plugin = (*Plugin)(nil)

// New creates a metrics plugin.
func New(opts ...Option) *Plugin {
	p := &Plugin{
		BasePlugin: plugin.NewBasePlugin(Name),
		registerer: prometheus.DefaultRegisterer,
		namespace:  "graphql",
		buckets:    prometheus.DefBuckets,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.resolveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: p.namespace,
			Name:      "resolve_duration_seconds",
			Help:      "Time spent resolving a field",
			Buckets:   p.buckets,
		},
		[]string{"type", "field"},
	)
	p.resolveTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "resolve_total",
			Help:      "Total number of field resolutions",
		},
		[]string{"type", "field", "outcome"},
	)
	p.subscribeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "subscribe_total",
			Help:      "Total number of subscriptions started",
		},
		[]string{"type", "field", "outcome"},
	)
	p.typeResolvedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: p.namespace,
			Name:      "type_resolved_total",
			Help:      "Total number of abstract type resolutions",
		},
		[]string{"type", "outcome"},
	)
	p.schemaTypes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: p.namespace,
			Name:      "schema_types",
			Help:      "Number of named types in the last built schema",
		},
	)

	return p
}

// Collectors returns every collector of the plugin.
func (p *Plugin) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		p.resolveDuration,
		p.resolveTotal,
		p.subscribeTotal,
		p.typeResolvedTotal,
		p.schemaTypes,
	}
}

// BeforeBuild implements plugin.Plugin. It registers the collectors. A collector that is already
// registered with the same description, such as by an earlier instance of the plugin, is adopted.
func (p *Plugin) BeforeBuild(*plugin.BuildOptions) error {
	var err error
	if p.resolveDuration, err = register(p.registerer, p.resolveDuration); err != nil {
		return err
	}
	if p.resolveTotal, err = register(p.registerer, p.resolveTotal); err != nil {
		return err
	}
	if p.subscribeTotal, err = register(p.registerer, p.subscribeTotal); err != nil {
		return err
	}
	if p.typeResolvedTotal, err = register(p.registerer, p.typeResolvedTotal); err != nil {
		return err
	}
	p.schemaTypes, err = register(p.registerer, p.schemaTypes)
	return err
}

func register[C prometheus.Collector](r prometheus.Registerer, c C) (C, error) {
	err := r.Register(c)
	if err == nil {
		return c, nil
	}
	if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
		if existing, ok := already.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	return c, graphql.NewError("cannot register metrics", graphql.Op("metrics.BeforeBuild"), err)
}

// AfterBuild implements plugin.Plugin.
func (p *Plugin) AfterBuild(s *graphql.Schema, _ *plugin.BuildOptions) error {
	p.schemaTypes.Set(float64(s.TypeMap().Len()))
	return nil
}

func skipped(config *schema.FieldConfig) bool {
	skip, _ := config.Options.Get(SkipOption).(bool)
	return skip
}

func outcomeOf(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}

// WrapResolve implements plugin.Plugin.
func (p *Plugin) WrapResolve(
	resolver graphql.FieldResolver,
	config *schema.FieldConfig,
	options *plugin.BuildOptions) graphql.FieldResolver {
	if resolver == nil || skipped(config) {
		return resolver
	}

	observe := func(start time.Time, err error) {
		p.resolveDuration.WithLabelValues(config.ParentType, config.Name).Observe(p.now().Sub(start).Seconds())
		p.resolveTotal.WithLabelValues(config.ParentType, config.Name, outcomeOf(err)).Inc()
	}

	return graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
		start := p.now()
		value, err := resolver.Resolve(ctx, source, info)
		if f, ok := value.(future.Future); ok && err == nil {
			return observeFuture(f, func(err error) { observe(start, err) }), nil
		}
		observe(start, err)
		return value, err
	})
}

// WrapSubscribe implements plugin.Plugin.
func (p *Plugin) WrapSubscribe(
	subscriber graphql.FieldResolver,
	config *schema.FieldConfig,
	options *plugin.BuildOptions) graphql.FieldResolver {
	if subscriber == nil || skipped(config) {
		return subscriber
	}

	return graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
		stream, err := subscriber.Resolve(ctx, source, info)
		p.subscribeTotal.WithLabelValues(config.ParentType, config.Name, outcomeOf(err)).Inc()
		return stream, err
	})
}

// WrapResolveType implements plugin.Plugin.
func (p *Plugin) WrapResolveType(
	resolver graphql.TypeResolver,
	config *schema.TypeConfig,
	options *plugin.BuildOptions) graphql.TypeResolver {
	if resolver == nil {
		return resolver
	}

	return graphql.TypeResolverFunc(func(ctx context.Context, value interface{}, info graphql.ResolveInfo) (interface{}, error) {
		result, err := resolver.Resolve(ctx, value, info)
		if f, ok := result.(future.Future); ok && err == nil {
			return observeFuture(f, func(err error) {
				p.typeResolvedTotal.WithLabelValues(config.Name, outcomeOf(err)).Inc()
			}), nil
		}
		p.typeResolvedTotal.WithLabelValues(config.Name, outcomeOf(err)).Inc()
		return result, err
	})
}

// observeFuture returns a Future that behaves like f and calls done once f completes.
func observeFuture(f future.Future, done func(err error)) future.Future {
	completed := false
	return future.PollFunc(func(waker future.Waker) (future.PollResult, error) {
		result, err := f.Poll(waker)
		if !completed && (err != nil || !future.IsPending(result)) {
			completed = true
			done(err)
		}
		return result, err
	})
}
