package dsl_test

import (
	"context"
	"testing"

	goshape "github.com/reoring/goshape"
)

// Two Authors, three Books (two by the first author, one by the second).
// Dumping all Books with BookSchema (author nested, singular) yields three
// documents with isbn/title/author; dumping all Authors with AuthorSchema
// (no books field) yields two documents with only name/email.
func TestEndToEnd_Library(t *testing.T) {
	ctx := context.Background()

	authors := goshape.NewRegistry[*author]()
	books := goshape.NewRegistry[*book]()

	a1 := &author{Name: "William Faulkner", Email: "will@email.com"}
	a2 := &author{Name: "Colson Whitehead", Email: "colson@email.com"}
	authors.Add(a1, a2)
	books.Add(
		&book{ISBN: "067973225X", Title: "As I Lay Dying", Author: a1},
		&book{ISBN: "0679732241", Title: "The Sound and the Fury", Author: a1},
		&book{ISBN: "0385542364", Title: "The Underground Railroad", Author: a2},
	)

	as := authorSchema()
	bs := bookSchema(as)

	bookDocs, err := goshape.DumpMany(ctx, bs, books.Items())
	if err != nil {
		t.Fatalf("dump books err: %v", err)
	}
	if len(bookDocs) != 3 {
		t.Fatalf("expected 3 book documents, got %d", len(bookDocs))
	}
	for i, doc := range bookDocs {
		keys := doc.Keys()
		if len(keys) != 3 || keys[0] != "isbn" || keys[1] != "title" || keys[2] != "author" {
			t.Fatalf("book %d keys: %v", i, keys)
		}
		nested, _ := doc.Get("author")
		ad, ok := nested.(*goshape.Document)
		if !ok {
			t.Fatalf("book %d author is %T", i, nested)
		}
		if _, ok := ad.Get("name"); !ok {
			t.Fatalf("book %d author missing name", i)
		}
		if _, ok := ad.Get("email"); !ok {
			t.Fatalf("book %d author missing email", i)
		}
	}
	if v, _ := bookDocs[2].Get("isbn"); v != "0385542364" {
		t.Fatalf("unexpected third book: %v", v)
	}

	authorDocs, err := goshape.DumpMany(ctx, as, authors.Items())
	if err != nil {
		t.Fatalf("dump authors err: %v", err)
	}
	if len(authorDocs) != 2 {
		t.Fatalf("expected 2 author documents, got %d", len(authorDocs))
	}
	for i, doc := range authorDocs {
		keys := doc.Keys()
		if len(keys) != 2 || keys[0] != "name" || keys[1] != "email" {
			t.Fatalf("author %d keys: %v", i, keys)
		}
	}
	if v, _ := authorDocs[1].Get("name"); v != "Colson Whitehead" {
		t.Fatalf("unexpected second author: %v", v)
	}
}
