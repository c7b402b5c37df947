/*
 * Copyright 2025 the simplified-english authors
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package morph

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"

	"gitlab.com/tech-pubs/simplified-english/lib"
)

// VerbOverride replaces the rule-generated past and participle of one verb.
// Exclusive entries suppress the regular rules entirely and emit the base
// plus Forms only, which is how fully suppletive verbs like "be" are handled.
type VerbOverride struct {
	Base       string   `yaml:"base"`
	Past       string   `yaml:"past"`
	Participle string   `yaml:"participle"`
	Forms      []string `yaml:"forms"`
	Exclusive  bool     `yaml:"exclusive"`
}

// NounOverride replaces the rule-generated plural of one noun.
type NounOverride struct {
	Base   string `yaml:"base"`
	Plural string `yaml:"plural"`
}

// Overrides holds the irregular-form tables plus the reference word lists the
// passive check draws on: tolerated intervening adverbs and -ed words that are
// not past participles.
type Overrides struct {
	Verbs                []VerbOverride `yaml:"verbs"`
	Nouns                []NounOverride `yaml:"nouns"`
	Adverbs              []string       `yaml:"adverbs"`
	ParticipleExceptions []string       `yaml:"participle_exceptions"`
}

// LoadOverrides returns unmarshalled override tables from a YAML file at the
// given path. A malformed table is a ConfigError.
func LoadOverrides(path string) (*Overrides, error) {

	bytes, err := os.ReadFile(path)
	if err != nil {
		log.Error().Msg(fmt.Sprintf("could not find overrides at %v", path))
		return nil, err
	}

	overrides := Overrides{}
	if err := yaml.Unmarshal(bytes, &overrides); err != nil {
		return nil, lib.WrapConfigError(err, "could not parse overrides at %v", path)
	}

	if err := overrides.Validate(); err != nil {
		return nil, err
	}

	log.Info().Msg(fmt.Sprintf("morphology overrides set from %v", path))

	return &overrides, nil
}

// Validate rejects override entries that would silently corrupt the approved
// word set: empty bases, empty replacement forms, exclusive entries with
// nothing to emit.
func (o *Overrides) Validate() error {
	for i, ov := range o.Verbs {
		if strings.TrimSpace(ov.Base) == "" {
			return lib.NewConfigError("verb override %d has an empty base", i)
		}
		if ov.Exclusive && len(ov.Forms) == 0 {
			return lib.NewConfigError("exclusive verb override %q has no forms", ov.Base)
		}
		if !ov.Exclusive && ov.Past == "" && ov.Participle == "" && len(ov.Forms) == 0 {
			return lib.NewConfigError("verb override %q replaces nothing", ov.Base)
		}
		for _, form := range ov.Forms {
			if strings.TrimSpace(form) == "" {
				return lib.NewConfigError("verb override %q has an empty form", ov.Base)
			}
		}
	}
	for i, ov := range o.Nouns {
		if strings.TrimSpace(ov.Base) == "" {
			return lib.NewConfigError("noun override %d has an empty base", i)
		}
		if strings.TrimSpace(ov.Plural) == "" {
			return lib.NewConfigError("noun override %q has an empty plural", ov.Base)
		}
	}
	for _, adverb := range o.Adverbs {
		if strings.TrimSpace(adverb) == "" {
			return lib.NewConfigError("adverb list has an empty entry")
		}
	}
	for _, exception := range o.ParticipleExceptions {
		if strings.TrimSpace(exception) == "" {
			return lib.NewConfigError("participle exception list has an empty entry")
		}
	}
	return nil
}

// AdverbSet returns the tolerated intervening adverbs, lower-cased.
func (o *Overrides) AdverbSet() map[string]struct{} {
	return toSet(o.Adverbs)
}

// ParticipleExceptionSet returns the -ed words that are not participles,
// lower-cased.
func (o *Overrides) ParticipleExceptionSet() map[string]struct{} {
	return toSet(o.ParticipleExceptions)
}

// IrregularParticiples returns every participle named by a verb override,
// lower-cased. The passive check needs these because irregular participles do
// not end in -ed.
func (o *Overrides) IrregularParticiples() map[string]struct{} {
	res := map[string]struct{}{}
	for _, ov := range o.Verbs {
		if ov.Participle != "" {
			res[strings.ToLower(ov.Participle)] = struct{}{}
		}
	}
	return res
}

func toSet(words []string) map[string]struct{} {
	res := make(map[string]struct{}, len(words))
	for _, w := range words {
		res[strings.ToLower(w)] = struct{}{}
	}
	return res
}
