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

package store

import (
	"gitlab.com/tech-pubs/simplified-english/lib/lexicon"
)

// Names of the derived word lists a store holds.
const (
	ApprovedList  = "approved"
	ForbiddenList = "forbidden"
	AllowedList   = "allowed"
)

// Lists returns the known list names in a fixed order.
func Lists() []string {
	return []string{ApprovedList, ForbiddenList, AllowedList}
}

// Client persists derived word lists between the importer and the linting
// processes. Lists behave as sets: adding a form twice keeps one copy, and
// Forms returns them sorted.
type Client interface {
	AddForms(list string, forms ...string) error
	Forms(list string) ([]string, error)
	Drop(list string) error
	Ready() bool
}

// SaveDerived merges the derived lists into the store. Call DropAll first
// for replace semantics.
func SaveDerived(client Client, derived lexicon.DerivedLists) error {
	for _, item := range []struct {
		list  string
		forms []string
	}{
		{ApprovedList, derived.Approved},
		{ForbiddenList, derived.Forbidden},
		{AllowedList, derived.Allowed},
	} {
		if len(item.forms) == 0 {
			continue
		}
		if err := client.AddForms(item.list, item.forms...); err != nil {
			return err
		}
	}
	return nil
}

// LoadDerived reads all three lists back.
func LoadDerived(client Client) (lexicon.DerivedLists, error) {
	var derived lexicon.DerivedLists
	var err error

	if derived.Approved, err = client.Forms(ApprovedList); err != nil {
		return lexicon.DerivedLists{}, err
	}
	if derived.Forbidden, err = client.Forms(ForbiddenList); err != nil {
		return lexicon.DerivedLists{}, err
	}
	if derived.Allowed, err = client.Forms(AllowedList); err != nil {
		return lexicon.DerivedLists{}, err
	}
	return derived, nil
}

// DropAll removes every known list.
func DropAll(client Client) error {
	for _, list := range Lists() {
		if err := client.Drop(list); err != nil {
			return err
		}
	}
	return nil
}
