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

package schemabuilder

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/botobag/forge/graphql"

	"github.com/goccy/go-yaml"
)

// Options configures a Builder.
type Options struct {
	// Plugins lists names of registered plugins to enable, in pipeline order.
	Plugins []string `yaml:"plugins"`

	// DefaultFieldNullability is the nullability of output types made by Builder.Output.
	DefaultFieldNullability bool `yaml:"defaultFieldNullability"`

	// DefaultInputFieldRequiredness makes input types made by Builder.Input non-null.
	DefaultInputFieldRequiredness bool `yaml:"defaultInputFieldRequiredness"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"logLevel"`

	// Logger overrides the logger built from LogLevel.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultOptions returns the options used when none are given: nullable output fields, optional
// input fields, no plugins and info logging.
func DefaultOptions() *Options {
	return &Options{
		DefaultFieldNullability: true,
		LogLevel:                "info",
	}
}

// LoadOptions reads options from a YAML file. Environment variables referenced as $VAR or ${VAR}
// are expanded before parsing.
func LoadOptions(filename string) (*Options, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, graphql.NewError(fmt.Sprintf("unable to read options from %s", filename),
			graphql.Op("schemabuilder.LoadOptions"), err)
	}
	return ParseOptions(content)
}

// ParseOptions parses YAML options. Keys left out keep their DefaultOptions values and unknown keys
// are rejected.
func ParseOptions(content []byte) (*Options, error) {
	const op graphql.Op = "schemabuilder.ParseOptions"

	options := DefaultOptions()

	decoder := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(content)))), yaml.DisallowUnknownField())
	if err := decoder.Decode(options); err != nil {
		return nil, graphql.NewError("unable to parse options", op, graphql.ErrKindInvalidType, err)
	}

	if _, err := options.Level(); err != nil {
		return nil, graphql.NewError("unable to parse options", op, graphql.ErrKindInvalidType, err)
	}

	return options, nil
}

// Level returns the slog level named by LogLevel. An empty LogLevel means info.
func (options *Options) Level() (slog.Level, error) {
	var level slog.Level
	if len(options.LogLevel) == 0 {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(options.LogLevel))); err != nil {
		return level, graphql.NewError(fmt.Sprintf("unknown log level %q", options.LogLevel),
			graphql.Op("schemabuilder.Level"), graphql.ErrKindInvalidType)
	}
	return level, nil
}

// logger returns Logger or a text logger writing to stderr at Level.
func (options *Options) logger() (*slog.Logger, error) {
	if options.Logger != nil {
		return options.Logger, nil
	}
	level, err := options.Level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}
