package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"strings"
)

// FileUpload names one file destined for a multipart field.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

// FormBuilder assembles multipart/form-data bodies with one method per
// field kind. The backend expects scalar lists comma-joined under one
// key and file lists as repeated parts sharing a key.
type FormBuilder struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

// NewFormBuilder creates an empty builder.
func NewFormBuilder() *FormBuilder {
	b := &FormBuilder{}
	b.writer = multipart.NewWriter(&b.buf)
	return b
}

// Field appends one scalar value.
func (b *FormBuilder) Field(name, value string) *FormBuilder {
	if b.err != nil {
		return b
	}
	b.err = b.writer.WriteField(name, value)
	return b
}

// OptionalField appends a scalar value, skipping empty ones the way
// the backend's PATCH semantics expect.
func (b *FormBuilder) OptionalField(name, value string) *FormBuilder {
	if value == "" {
		return b
	}
	return b.Field(name, value)
}

// ScalarList appends a list of scalars as one comma-joined value.
func (b *FormBuilder) ScalarList(name string, values []string) *FormBuilder {
	if len(values) == 0 {
		return b
	}
	return b.Field(name, strings.Join(values, ","))
}

// File appends a single file part.
func (b *FormBuilder) File(name, filename string, content io.Reader) *FormBuilder {
	if b.err != nil {
		return b
	}
	part, err := b.writer.CreateFormFile(name, filename)
	if err != nil {
		b.err = err
		return b
	}
	if _, err := io.Copy(part, content); err != nil {
		b.err = err
	}
	return b
}

// FileSet appends each file as its own part under the same field name.
func (b *FormBuilder) FileSet(name string, files []FileUpload) *FormBuilder {
	for _, f := range files {
		b.File(name, f.Filename, f.Content)
	}
	return b
}

// Encode finalizes the form and returns its content type and body.
// The builder must not be reused afterwards.
func (b *FormBuilder) Encode() (contentType string, body []byte, err error) {
	if b.err != nil {
		return "", nil, b.err
	}
	if err := b.writer.Close(); err != nil {
		return "", nil, err
	}
	return b.writer.FormDataContentType(), b.buf.Bytes(), nil
}
