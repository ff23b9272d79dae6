package schemafile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goshape "github.com/reoring/goshape"
)

func TestParse_BuildsSchemasInOrder(t *testing.T) {
	yaml := `
version: "1"
schemas:
  - name: book
    fields:
      - {name: isbn,   kind: string}
      - {name: title,  kind: string}
      - {name: author, kind: nested, schema: author}
  - name: author
    fields:
      - {name: name,  kind: string}
      - {name: email, kind: email}
`
	set, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, set)

	assert.Equal(t, []string{"book", "author"}, set.Names())

	bs, ok := set.Schema("book")
	require.True(t, ok)
	assert.Equal(t, []string{"isbn", "title", "author"}, bs.Fields())

	// book references author declared later in the file
	doc, err := bs.DumpAny(context.Background(), map[string]any{
		"isbn":  "067973225X",
		"title": "As I Lay Dying",
		"author": map[string]any{
			"name":  "William Faulkner",
			"email": "will@Email.com",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"isbn", "title", "author"}, doc.Keys())
	nested, _ := doc.Get("author")
	ad, ok := nested.(*goshape.Document)
	require.True(t, ok)
	email, _ := ad.Get("email")
	assert.Equal(t, "will@email.com", email)
}

func TestParse_DatetimeAndManyNesting(t *testing.T) {
	yaml := `
schemas:
  - name: specialty
    fields:
      - {name: code}
      - {name: description}
  - name: doctor
    fields:
      - {name: name}
      - {name: email, kind: email}
      - {name: specialties, kind: nested, schema: specialty, many: true}
  - name: appointment
    fields:
      - {name: when, kind: datetime, attr: appointment_datetime}
`
	set, err := Parse([]byte(yaml))
	require.NoError(t, err)

	ds, _ := set.Schema("doctor")
	doc, err := ds.DumpAny(context.Background(), map[string]any{
		"name":  "Dr. Bones",
		"email": "bones@email.com",
		"specialties": []any{
			map[string]any{"code": "fm", "description": "Family Medicine"},
			map[string]any{"code": "ped", "description": "Pediatrics"},
		},
	})
	require.NoError(t, err)
	seq, _ := doc.Get("specialties")
	docs, ok := seq.([]*goshape.Document)
	require.True(t, ok)
	require.Len(t, docs, 2)
	code, _ := docs[1].Get("code")
	assert.Equal(t, "ped", code)

	as, _ := set.Schema("appointment")
	doc, err = as.DumpAny(context.Background(), map[string]any{
		"appointment_datetime": "2023-02-28T18:50:00",
	})
	require.NoError(t, err)
	when, _ := doc.Get("when")
	assert.Equal(t, "2023-02-28T18:50:00", when)
}

func TestParse_MissingAttributeAtDumpTime(t *testing.T) {
	yaml := `
schemas:
  - name: author
    fields:
      - {name: name}
      - {name: email, kind: email}
`
	set, err := Parse([]byte(yaml))
	require.NoError(t, err)

	as, _ := set.Schema("author")
	_, err = as.DumpAny(context.Background(), map[string]any{"name": "anon"})
	assert.True(t, goshape.HasCode(err, goshape.CodeMissingAttribute))
}

func TestParse_DefinitionErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		code string
		path string
	}{
		{
			name: "unknown kind",
			yaml: "schemas:\n  - name: a\n    fields:\n      - {name: x, kind: decimal}\n",
			code: goshape.CodeUnknownKind,
			path: "/a/x",
		},
		{
			name: "dangling nested target",
			yaml: "schemas:\n  - name: a\n    fields:\n      - {name: x, kind: nested, schema: nowhere}\n",
			code: goshape.CodeUnresolvedRef,
			path: "/a/x",
		},
		{
			name: "duplicate schema",
			yaml: "schemas:\n  - name: a\n    fields: [{name: x}]\n  - name: a\n    fields: [{name: y}]\n",
			code: goshape.CodeDuplicateSchema,
			path: "/a",
		},
		{
			name: "duplicate field",
			yaml: "schemas:\n  - name: a\n    fields: [{name: x}, {name: x}]\n",
			code: goshape.CodeDuplicateField,
			path: "/a/x",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			iss, ok := goshape.AsIssues(err)
			require.True(t, ok)
			assert.Equal(t, tc.code, iss[0].Code)
			assert.Equal(t, tc.path, iss[0].Path)
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("schemas: ["))
	require.Error(t, err)
	_, ok := goshape.AsIssues(err)
	assert.False(t, ok, "syntactic errors are plain, not Issues")
}

func TestParse_CircularDeclarationDumpsToCycleError(t *testing.T) {
	yaml := `
schemas:
  - name: author
    fields:
      - {name: name}
      - {name: books, kind: nested, schema: book, many: true}
  - name: book
    fields:
      - {name: title}
      - {name: author, kind: nested, schema: author}
`
	set, err := Parse([]byte(yaml))
	require.NoError(t, err, "circular declaration itself is legal")

	// Build a cyclic object graph and watch the guard trip.
	author := map[string]any{"name": "W"}
	book := map[string]any{"title": "T", "author": author}
	author["books"] = []any{book}

	bs, _ := set.Schema("book")
	_, err = bs.DumpAny(context.Background(), book)
	assert.True(t, goshape.HasCode(err, goshape.CodeCyclicReference), "got %v", err)
}
