package api

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// File is a binary attachment of a multipart request.
type File struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

type formField struct {
	key   string
	value string
}

type formFile struct {
	field string
	file  File
}

// Form is a multipart request body. Structured values are JSON encoded
// before they are attached, scalars are attached as text.
type Form struct {
	fields []formField
	files  []formFile
}

func NewForm() *Form {
	return &Form{}
}

// Set attaches value under key.
func (f *Form) Set(key string, value any) error {
	s, err := EncodeField(value)
	if err != nil {
		return fmt.Errorf("form field %q: %w", key, err)
	}
	f.fields = append(f.fields, formField{key: key, value: s})
	return nil
}

// SetAll attaches every entry of fields in key order.
func (f *Form) SetAll(fields map[string]any) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := f.Set(k, fields[k]); err != nil {
			return err
		}
	}
	return nil
}

// AddFiles attaches each file under the same field name.
func (f *Form) AddFiles(field string, files ...File) {
	for _, file := range files {
		if file.Reader == nil {
			continue
		}
		f.files = append(f.files, formFile{field: field, file: file})
	}
}

// Len is the number of parts.
func (f *Form) Len() int {
	return len(f.fields) + len(f.files)
}

// Encode renders the form and returns the body with its content type.
func (f *Form) Encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.key, field.value); err != nil {
			return nil, "", err
		}
	}
	for _, ff := range f.files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(ff.field), escapeQuotes(ff.file.Name)))
		ct := ff.file.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, ff.file.Reader); err != nil {
			return nil, "", fmt.Errorf("form file %q: %w", ff.file.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

// EncodeField renders a single form value.
func EncodeField(value any) (string, error) {
	if value == nil {
		return "null", nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "null", nil
		}
		return EncodeField(rv.Elem().Interface())
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case encoding.TextMarshaler:
		b, err := v.MarshalText()
		return string(b), err
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Struct:
		b, err := json.Marshal(value)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return fmt.Sprint(value), nil
}
