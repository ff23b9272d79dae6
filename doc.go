package goshape

// Package goshape provides:
//
// - Declarative object-to-document serialization based on Schema (Dump/DumpMany)
// - Ordered Documents whose field order follows schema declaration order
// - Nested and derived-collection fields with late-bound schema references
// - A traversal guard that turns cyclic object graphs into errors instead of hangs
// - A stable error model via Issues (JSON Pointer, code, message)
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place the builder DSL under dsl/, value formatters under codec/,
//   declarative schema files under schemafile/, and the CLI under cmd/goshape.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  s := buildBookSchema()
//  doc, err := goshape.Dump(ctx, s, book)
//  docs, err := goshape.DumpMany(ctx, s, books)
//
//  out, err := doc.MarshalJSON()
//
