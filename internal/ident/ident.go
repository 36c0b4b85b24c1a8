package ident

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/fx"
)

const (
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	size     = 8
)

// Generator mints prefixed entity identifiers such as "job_x8k2mqa1". The
// random part is a nanoid over a lowercase alphanumeric alphabet.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// New returns a fresh identifier for the given entity prefix.
func (g *Generator) New(prefix string) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteByte('_')
	b.WriteString(gonanoid.MustGenerate(alphabet, size))
	return b.String()
}

var Module = fx.Module("ident",
	fx.Provide(NewGenerator),
)
