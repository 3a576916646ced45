// Trailhead - Hiking Trail Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/trailhead

// Package i18n resolves display text for reason identifiers and other
// user-facing keys in Traditional Chinese (primary) and English.
//
// Lookup order for Resolve(lang, key, def):
//
//  1. the dictionary of lang
//  2. the primary-language dictionary, only when lang is the primary
//     language and the lookup did not echo the key
//  3. def
//
// Reason supplies def from a compiled-in table for lang, so an English UI
// never falls back to Chinese text or to a raw identifier.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Supported language codes.
const (
	TraditionalChinese = "zh-Hant"
	English            = "en"
)

// Primary is the language whose dictionary backs generic lookups.
const Primary = TraditionalChinese

//go:embed locales/*.yaml
var embedded embed.FS

// supported is in preference order; index 0 is the matcher default.
var supported = []language.Tag{
	language.MustParse(TraditionalChinese),
	language.MustParse(English),
}

// Resolver holds the loaded dictionaries. It is immutable after
// construction and safe for concurrent use.
type Resolver struct {
	dicts   map[string]map[string]string
	matcher language.Matcher
}

// New loads the dictionaries compiled into the binary.
func New() (*Resolver, error) {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		return nil, fmt.Errorf("locate embedded locales: %w", err)
	}
	return Load(sub)
}

// Load reads every <lang>.yaml file at the root of fsys. Files for
// unsupported languages are rejected. Missing languages get an empty table.
func Load(fsys fs.FS) (*Resolver, error) {
	r := &Resolver{
		dicts:   make(map[string]map[string]string, len(supported)),
		matcher: language.NewMatcher(supported),
	}
	for _, tag := range supported {
		r.dicts[tag.String()] = map[string]string{}
	}

	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	for _, name := range files {
		lang := strings.TrimSuffix(path.Base(name), ".yaml")
		if _, ok := r.dicts[lang]; !ok {
			return nil, fmt.Errorf("locale %s: unsupported language", name)
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", name, err)
		}
		var table map[string]string
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", name, err)
		}
		for k, v := range table {
			r.dicts[lang][k] = v
		}
	}
	return r, nil
}

// Negotiate picks a supported language. An explicit lang parameter wins over
// the Accept-Language header; with neither, the primary language is used.
func (r *Resolver) Negotiate(lang, acceptLanguage string) string {
	var prefs []language.Tag
	if lang != "" {
		if t, err := language.Parse(lang); err == nil {
			prefs = append(prefs, t)
		}
	}
	if len(prefs) == 0 && acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			prefs = tags
		}
	}
	if len(prefs) == 0 {
		return Primary
	}
	_, idx, _ := r.matcher.Match(prefs...)
	return supported[idx].String()
}

// Resolve returns display text for key in lang, or def.
func (r *Resolver) Resolve(lang, key, def string) string {
	if v, ok := r.dicts[lang][key]; ok && v != "" {
		return v
	}
	if lang == Primary {
		if v := r.generic(key); v != key {
			return v
		}
	}
	return def
}

// generic looks key up in the primary dictionary and echoes the key back
// when it is missing.
func (r *Resolver) generic(key string) string {
	if v, ok := r.dicts[Primary][key]; ok && v != "" {
		return v
	}
	return key
}

// Text resolves key with the compiled-in fallback for lang as default.
func (r *Resolver) Text(lang, key string) string {
	return r.Resolve(lang, key, Fallback(lang, key))
}

// Reason resolves a recommendation reason identifier.
func (r *Resolver) Reason(lang, id string) string {
	return r.Text(lang, "reason."+id)
}

// Reasons resolves ids in order.
func (r *Resolver) Reasons(lang string, ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = r.Reason(lang, id)
	}
	return out
}

// Fallback returns the compiled-in text for key in lang. Unsupported
// languages use English.
func Fallback(lang, key string) string {
	table, ok := fallbacks[lang]
	if !ok {
		lang = English
		table = fallbacks[English]
	}
	if v, ok := table[key]; ok {
		return v
	}
	return genericFallback[lang]
}

// Supported returns the supported language codes, primary first.
func Supported() []string {
	out := make([]string, len(supported))
	for i, t := range supported {
		out[i] = t.String()
	}
	return out
}
