package local

import (
	"sort"
	"sync"

	"gitlab.com/tech-pubs/simplified-english/lib/store"
)

func New() store.Client {
	return &local{
		lists: make(map[string]map[string]struct{}),
		mut:   &sync.RWMutex{},
	}
}

type local struct {
	lists map[string]map[string]struct{}
	mut   *sync.RWMutex
}

func (l *local) AddForms(list string, forms ...string) error {
	l.mut.Lock()
	defer l.mut.Unlock()

	set, ok := l.lists[list]
	if !ok {
		set = make(map[string]struct{}, len(forms))
		l.lists[list] = set
	}
	for _, form := range forms {
		set[form] = struct{}{}
	}
	return nil
}

func (l *local) Forms(list string) ([]string, error) {
	l.mut.RLock()
	defer l.mut.RUnlock()

	forms := make([]string, 0, len(l.lists[list]))
	for form := range l.lists[list] {
		forms = append(forms, form)
	}
	sort.Strings(forms)
	return forms, nil
}

func (l *local) Drop(list string) error {
	l.mut.Lock()
	defer l.mut.Unlock()

	delete(l.lists, list)
	return nil
}

func (l *local) Ready() bool {
	return true
}
