// Package ast defines types for modeling the AST (Abstract Syntax Tree)
// for the stmt source language.
//
// The tree is a strict ownership tree: every node owns its ordered children
// and no node is shared between parents. The root of the tree for a source
// file always has kind "Program" and an empty value.
//
// Position information is tracked using a *FileInfo, calling its various
// Add* methods as the file is tokenized by the lexer. This allows the nodes
// themselves to stay compact; to extract detailed position information for
// a token, ask the FileInfo that the lexer populated.
//
// Creation of AST nodes should use the factory functions in this package
// instead of struct literals. The factories enforce that a node's children
// are fully constructed before the node itself is handed out.
package ast
