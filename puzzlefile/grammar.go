// SPDX-License-Identifier: MIT
// Package: slitherlink/puzzlefile
//
// grammar.go — lexer and grammar. The grammar only splits the input into
// numeric records; section structure depends on the params bitmap and is
// interpreted by the reader.

package puzzlefile

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var recordLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Number", Pattern: `[-+]?\d+(\.\d+)?([eE][-+]?\d+)?`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

type document struct {
	Records []*record `( @@ | EOL )*`
}

type record struct {
	Pos    lexer.Position
	Fields []string `@Number+`
}

var parseDocument = participle.MustBuild[document](
	participle.Lexer(recordLexer),
	participle.Elide("Comment", "Whitespace"),
)
