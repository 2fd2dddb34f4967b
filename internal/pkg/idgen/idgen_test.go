package idgen_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-companion/internal/pkg/idgen"
)

type IDGenTestSuite struct {
	suite.Suite
}

func (s *IDGenTestSuite) TestDocumentIDs() {
	gen := idgen.NewDocument()
	pattern := regexp.MustCompile(`^[0-9a-f]{16}$`)

	seen := make(map[string]bool)
	for range 100 {
		id := gen.Generate()
		s.Regexp(pattern, id)
		s.False(seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func (s *IDGenTestSuite) TestUUIDPrefix() {
	s.True(strings.HasPrefix(idgen.NewUUID("char").Generate(), "char_"))
	s.Len(idgen.NewUUID("").Generate(), 36)
}

func (s *IDGenTestSuite) TestSequential() {
	gen := idgen.NewSequential("item")
	s.Equal("item_1", gen.Generate())
	s.Equal("item_2", gen.Generate())
	s.Equal("1", idgen.NewSequential("").Generate())
}

func TestIDGenTestSuite(t *testing.T) {
	suite.Run(t, new(IDGenTestSuite))
}
