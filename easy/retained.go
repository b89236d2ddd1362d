package easy

import (
	"github.com/TrustedPlus/trusted-curl/curl"
	"github.com/TrustedPlus/trusted-curl/form"
)

// retainedStore owns every allocation the engine keeps a pointer to past the
// configuring call: copied option strings, linked string lists and multipart
// bodies. Entries are registered only after a successful engine install and
// the whole store is torn down at handle disposal. Lists require an explicit
// free; replacing or clearing a list-valued option frees the superseded list
// immediately since the engine no longer references it.
type retainedStore struct {
	strings map[curl.Option]string
	lists   map[curl.Option]*curl.SList
	forms   map[curl.Option]*form.Form
}

func newRetainedStore() *retainedStore {
	return &retainedStore{
		strings: make(map[curl.Option]string),
		lists:   make(map[curl.Option]*curl.SList),
		forms:   make(map[curl.Option]*form.Form),
	}
}

func (s *retainedStore) putString(opt curl.Option, v string) {
	s.strings[opt] = v
}

func (s *retainedStore) dropString(opt curl.Option) {
	delete(s.strings, opt)
}

func (s *retainedStore) putList(opt curl.Option, l *curl.SList) {
	if old := s.lists[opt]; old != nil {
		old.FreeAll()
	}
	s.lists[opt] = l
}

func (s *retainedStore) dropList(opt curl.Option) {
	if old := s.lists[opt]; old != nil {
		old.FreeAll()
	}
	delete(s.lists, opt)
}

func (s *retainedStore) putForm(opt curl.Option, f *form.Form) {
	s.forms[opt] = f
}

func (s *retainedStore) dropForm(opt curl.Option) {
	delete(s.forms, opt)
}

// releaseAll frees every owned allocation. Called exactly once, from
// disposal.
func (s *retainedStore) releaseAll() {
	for opt, l := range s.lists {
		l.FreeAll()
		delete(s.lists, opt)
	}
	s.strings = make(map[curl.Option]string)
	s.forms = make(map[curl.Option]*form.Form)
}
