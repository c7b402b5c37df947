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

package vocabulary

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"

	"gitlab.com/tech-pubs/simplified-english/lib/text"
)

// Allowlist holds the auxiliary words tolerated outside the approved
// vocabulary: acronyms and technical designators in the case-sensitive set,
// hand-curated proper nouns in the case-insensitive one.
type Allowlist struct {
	CaseSensitive   map[string]bool
	CaseInsensitive map[string]bool
}

// NewAllowlist returns an empty allow-list. The allow-list is auxiliary, so
// empty is a legal state.
func NewAllowlist() *Allowlist {
	return &Allowlist{
		CaseSensitive:   map[string]bool{},
		CaseInsensitive: map[string]bool{},
	}
}

// Contains reports whether a token is allow-listed. Only an acronym-shaped
// surface form, all upper case with at least two letters, can hit the
// case-sensitive set, and it must match exactly. Any token may hit the
// case-insensitive set on its normalized form.
func (allowlist Allowlist) Contains(surface, normal string) bool {
	if text.IsAllCaps(surface) && allowlist.CaseSensitive[surface] {
		return true
	}
	return allowlist.CaseInsensitive[normal]
}

// Merge adds words to the case-sensitive set. The importer uses this to fold
// the ALL-CAPS sweep of the source document into a loaded allow-list.
func (allowlist *Allowlist) Merge(words []string) {
	for _, w := range words {
		if w == "" {
			continue
		}
		allowlist.CaseSensitive[w] = true
	}
}

// LoadAllowlist returns an unmarshalled allow-list from a YAML file at the
// given path.
func LoadAllowlist(path string) (*Allowlist, error) {

	bytes, err := os.ReadFile(path)
	if err != nil {
		log.Error().Msg(fmt.Sprintf("could not find allowlist at %v", path))
		return nil, err
	}

	type yamlAllowlist struct {
		CaseSensitive   []string `yaml:"case_sensitive"`
		CaseInsensitive []string `yaml:"case_insensitive"`
	}

	yamlAl := yamlAllowlist{}
	if err := yaml.Unmarshal(bytes, &yamlAl); err != nil {
		log.Error().Msg(fmt.Sprintf("could not load allowlist from %v", path))
		return nil, err
	}

	res := NewAllowlist()

	for _, v := range yamlAl.CaseSensitive {
		res.CaseSensitive[v] = true
	}
	for _, v := range yamlAl.CaseInsensitive {
		res.CaseInsensitive[strings.ToLower(v)] = true
	}

	log.Info().Msg(fmt.Sprintf("allowlist set from %v", path))

	return res, nil
}
