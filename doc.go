// Package stmtcompile provides the entry point for a compiler front end for
// the stmt language: a minimal statement language where a program is a
// sequence of identifier statements, each terminated by a ";".
//
// The pipeline runs source text through the lexer and parser (package
// parser, with tokens defined in package token) to produce a syntax tree
// (package ast). The tree can then be traversed in pre-order (package walk)
// or serialized to a deterministic JSON encoding (package printer). Syntax
// errors are reported with source positions through package reporter and do
// not stop the parse unless the configured reporter says so.
//
// Use a Compiler to run this pipeline over one or more files, optionally in
// parallel. A Resolver tells the Compiler how to load named files; parsing
// of each file is otherwise fully synchronous, and the resulting tree is
// never mutated after the parse completes.
package stmtcompile
