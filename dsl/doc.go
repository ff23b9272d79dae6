// Package dsl provides the declarative schema builder for goshape.
//
// Overview
//   - Builder API: declare a document shape with Object[T]()/Field()/MustBuild();
//     field order in the output Document follows Field declaration order.
//   - Extractors: typed getter functions (String/Int/Float/Bool/Time/Email/Any)
//     or reflective attribute reads (Attr/AttrWith) for duck-typed sources
//     such as maps decoded from JSON.
//   - Formatting: Formatted embeds a goshape.Formatter (see codec/) so a field
//     value is validated and canonicalized at dump time.
//   - Nesting: Nested/NestedMany delegate a related object (or derived
//     collection) to another schema; SchemaRef declares a late-bound reference
//     so mutually-referential schemas can be constructed in any order.
//
// Entry points
//   - Object[T](name): create a builder for source type T; chain Field then
//     MustBuild()/Build().
//   - SchemaRef(name): forward reference; call Resolve once the target exists.
//
// Cycles
//
// A conscientious design nests in one direction per relationship pair (Book
// nests Author; Author's schema does not nest Book). When both directions are
// declared anyway, the traversal guard in the root package fails the dump
// with a cyclic_reference issue instead of recursing.
//
// Example (quickstart)
//
//	type Author struct{ Name, Email string }
//	type Book struct {
//	    ISBN, Title string
//	    Author      *Author
//	}
//
//	author := dsl.Object[*Author]("author").
//	    Field("name", dsl.String(func(a *Author) string { return a.Name })).
//	    Field("email", dsl.Email(func(a *Author) string { return a.Email })).
//	    MustBuild()
//
//	book := dsl.Object[*Book]("book").
//	    Field("isbn", dsl.String(func(b *Book) string { return b.ISBN })).
//	    Field("title", dsl.String(func(b *Book) string { return b.Title })).
//	    Field("author", dsl.Nested(author, func(b *Book) *Author { return b.Author })).
//	    MustBuild()
//
//	doc, err := goshape.Dump(ctx, book, b)
//
// Example (derived collection via Registry)
//
//	books := goshape.NewRegistry[*Book]()
//	authorFull := dsl.Object[*Author]("author_with_books").
//	    Field("name", dsl.String(func(a *Author) string { return a.Name })).
//	    Field("books", dsl.NestedMany(book, func(a *Author) []*Book {
//	        return books.Select(func(b *Book) bool { return b.Author == a })
//	    })).
//	    MustBuild()
package dsl
