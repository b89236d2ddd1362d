// Package form builds structured multipart post bodies from host-supplied
// field descriptors. Validation happens entirely before anything reaches the
// engine: a malformed descriptor fails with a descriptive error and no
// partial body is ever produced.
package form

import (
	"strconv"
	"strings"

	"github.com/TrustedPlus/trusted-curl/errors"
)

// Field is one validated multipart section.
type Field struct {
	Name     string
	Contents string
	File     string
	Type     string
	Filename string

	// HasFile distinguishes a file-backed field from an inline one.
	HasFile bool
}

// Form is an ordered multipart body the engine keeps a pointer to for the
// handle's lifetime.
type Form struct {
	fields []Field
}

// New returns an empty body.
func New() *Form {
	return &Form{}
}

// AddField appends an inline content field.
func (f *Form) AddField(name, contents string) {
	f.fields = append(f.fields, Field{Name: name, Contents: contents})
}

// AddFile appends a file-backed field. contentType and filename are optional.
func (f *Form) AddFile(name, file, contentType, filename string) {
	f.fields = append(f.fields, Field{
		Name:     name,
		File:     file,
		Type:     contentType,
		Filename: filename,
		HasFile:  true,
	})
}

// Fields returns the body's sections in insertion order.
func (f *Form) Fields() []Field {
	return f.fields
}

// Len returns the number of sections.
func (f *Form) Len() int {
	return len(f.fields)
}

// Descriptor keys the host may supply, matched case-insensitively.
const (
	keyName     = "name"
	keyContents = "contents"
	keyFile     = "file"
	keyType     = "type"
	keyFilename = "filename"
)

// FromDescriptors validates an ordered sequence of field descriptors and
// builds the body. Each descriptor must be a map with a "name" key and
// exactly one of "contents" or "file"; "type" and "filename" are accepted
// only alongside "file". Every value must be a string. Any violation fails
// before a single field is installed.
func FromDescriptors(rows []any) (*Form, error) {
	body := New()

	for i, row := range rows {
		path := []string{"field", strconv.Itoa(i)}

		desc, ok := row.(map[string]any)
		if !ok {
			return nil, errors.New(errors.PhaseSetopt, errors.KindTypeMismatch).
				Path(path...).
				Value(row).
				Detail("field descriptor must be an object, got %T", row).
				Build()
		}

		var have struct {
			name, contents, file, ctype, filename bool
		}
		var vals struct {
			name, contents, file, ctype, filename string
		}

		for key, raw := range desc {
			s, isStr := raw.(string)
			if !isStr {
				return nil, errors.New(errors.PhaseSetopt, errors.KindTypeMismatch).
					Path(append(path, key)...).
					Value(raw).
					Detail("value for property %q must be a string", key).
					Build()
			}

			switch strings.ToLower(key) {
			case keyName:
				have.name, vals.name = true, s
			case keyContents:
				have.contents, vals.contents = true, s
			case keyFile:
				have.file, vals.file = true, s
			case keyType:
				have.ctype, vals.ctype = true, s
			case keyFilename:
				have.filename, vals.filename = true, s
			default:
				return nil, errors.New(errors.PhaseSetopt, errors.KindFieldUnknown).
					Path(path...).
					Detail("invalid property %q, valid properties are file, type, contents, name and filename", key).
					Build()
			}
		}

		if !have.name {
			return nil, errors.FieldMissing(errors.PhaseSetopt, path, keyName)
		}
		if have.file && have.contents {
			return nil, errors.New(errors.PhaseSetopt, errors.KindInvalidInput).
				Path(path...).
				Detail("properties contents and file are mutually exclusive").
				Build()
		}
		if !have.file && (have.ctype || have.filename) {
			return nil, errors.New(errors.PhaseSetopt, errors.KindFieldUnknown).
				Path(path...).
				Detail("properties type and filename are only valid together with file").
				Build()
		}

		switch {
		case have.file:
			body.AddFile(vals.name, vals.file, vals.ctype, vals.filename)
		case have.contents:
			body.AddField(vals.name, vals.contents)
		default:
			return nil, errors.FieldMissing(errors.PhaseSetopt, path, keyContents)
		}
	}

	return body, nil
}
