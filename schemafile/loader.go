// Package schemafile loads declarative schema definitions from YAML files
// and builds goshape schemas from them. Fields are read reflectively from
// the source object's attributes, so schemafile-built schemas dump structs
// and string-keyed maps (e.g. JSON-decoded rows) alike.
//
// File shape:
//
//	version: "1"
//	schemas:
//	  - name: author
//	    fields:
//	      - {name: name,  kind: string, attr: Name}
//	      - {name: email, kind: email,  attr: Email}
//	  - name: book
//	    fields:
//	      - {name: isbn,   kind: string, attr: ISBN}
//	      - {name: author, kind: nested, attr: Author, schema: author}
//
// Schemas may reference each other in any declaration order, including
// circularly; references resolve through late-bound refs and a declared
// cycle surfaces at dump time as cyclic_reference.
package schemafile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/codec"
	"github.com/reoring/goshape/dsl"
	"github.com/reoring/goshape/i18n"
)

// File is the YAML document shape of a schema definition file.
type File struct {
	Version string      `yaml:"version"`
	Schemas []SchemaDef `yaml:"schemas"`
}

// SchemaDef declares one named schema.
type SchemaDef struct {
	Name   string     `yaml:"name"`
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef declares one field. Attr defaults to the field name, which is the
// natural choice for map sources. Kind defaults to "any" (no type check);
// scalar kinds check and normalize the attribute value. Schema and Many apply
// to nested fields only.
type FieldDef struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Attr   string `yaml:"attr"`
	Schema string `yaml:"schema"`
	Many   bool   `yaml:"many"`
}

// Set holds the built schemas of one file, by declared name.
type Set struct {
	order   []string
	schemas map[string]goshape.Dumper
}

// Names returns the schema names in declaration order.
func (s *Set) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Schema returns the built schema with the given name.
func (s *Set) Schema(name string) (goshape.Dumper, bool) {
	d, ok := s.schemas[name]
	return d, ok
}

// LoadFile reads and builds a schema definition file from the given path.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds schemas from YAML data. Syntactic YAML errors are wrapped
// plainly; semantic definition errors are reported as goshape.Issues with
// /<schema>/<field> paths.
func Parse(data []byte) (*Set, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}
	return build(&f)
}

func build(f *File) (*Set, error) {
	var iss goshape.Issues

	// First pass: one late-bound ref per declared name, so nested fields can
	// point at schemas declared later in the file (or at themselves).
	refs := make(map[string]*dsl.Ref, len(f.Schemas))
	for _, sd := range f.Schemas {
		if sd.Name == "" {
			iss = goshape.AppendIssues(iss, goshape.Issue{
				Path: "/", Code: goshape.CodeDumpError, Message: "schema with empty name",
			})
			continue
		}
		if _, dup := refs[sd.Name]; dup {
			iss = goshape.AppendIssues(iss, goshape.Issue{
				Path:    goshape.PointerField(sd.Name),
				Code:    goshape.CodeDuplicateSchema,
				Message: i18n.T(goshape.CodeDuplicateSchema, nil),
			})
			continue
		}
		refs[sd.Name] = dsl.SchemaRef(sd.Name)
	}
	if len(iss) > 0 {
		return nil, iss
	}

	set := &Set{schemas: make(map[string]goshape.Dumper, len(f.Schemas))}
	for _, sd := range f.Schemas {
		b := dsl.Object[any](sd.Name)
		for _, fd := range sd.Fields {
			attr := fd.Attr
			if attr == "" {
				attr = fd.Name
			}
			switch fd.Kind {
			case "", "any":
				b.Field(fd.Name, dsl.Attr[any](attr))
			case "string", "int", "float", "bool":
				b.Field(fd.Name, dsl.AttrWith[any](attr, scalarKind{kind: fd.Kind}))
			case "email":
				b.Field(fd.Name, dsl.AttrWith[any](attr, codec.Email()))
			case "datetime":
				b.Field(fd.Name, dsl.AttrTime[any](attr, codec.TimeISO8601()))
			case "nested":
				ref, ok := refs[fd.Schema]
				if !ok {
					iss = goshape.AppendIssues(iss, goshape.Issue{
						Path:    goshape.PointerField(sd.Name) + goshape.PointerField(fd.Name),
						Code:    goshape.CodeUnresolvedRef,
						Message: i18n.T(goshape.CodeUnresolvedRef, nil),
						Params:  map[string]any{"schema": fd.Schema},
					})
					continue
				}
				b.Field(fd.Name, dsl.NestedAttr[any](attr, ref, fd.Many))
			default:
				iss = goshape.AppendIssues(iss, goshape.Issue{
					Path:    goshape.PointerField(sd.Name) + goshape.PointerField(fd.Name),
					Code:    goshape.CodeUnknownKind,
					Message: i18n.T(goshape.CodeUnknownKind, nil),
					Params:  map[string]any{"kind": fd.Kind},
				})
			}
		}
		s, err := b.Build()
		if err != nil {
			iss = goshape.AppendIssues(iss, goshape.RebaseIssues(goshape.PointerField(sd.Name), err)...)
			continue
		}
		refs[sd.Name].Resolve(s)
		set.order = append(set.order, sd.Name)
		set.schemas[sd.Name] = s
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return set, nil
}
