package i18n_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/filipondios/kotcalc/internal/errors"
	"github.com/filipondios/kotcalc/internal/i18n"
)

const sampleTable = `{
  "default": "es",
  "strings": {
    "greeting": {"en": "Hello {name}", "es": "Hola {name}"},
    "only_en": {"en": "English only"},
    "count": {"en": "{n} of {total}, {missing} stays"},
    "broken": "not an object"
  }
}`

type TableTestSuite struct {
	suite.Suite
	table *i18n.Table
}

func TestTableSuite(t *testing.T) {
	suite.Run(t, new(TableTestSuite))
}

func (s *TableTestSuite) SetupTest() {
	table, err := i18n.Parse([]byte(sampleTable))
	s.Require().NoError(err)
	s.table = table
}

func (s *TableTestSuite) TestDefaultAndLanguages() {
	s.Equal("es", s.table.Default())
	s.Equal([]string{"en", "es"}, s.table.Languages())
}

func (s *TableTestSuite) TestTranslate() {
	s.Equal("Hola Ana", s.table.T("es", "greeting", i18n.Vars{"name": "Ana"}))
	s.Equal("Hello Ana", s.table.T("en", "greeting", i18n.Vars{"name": "Ana"}))
}

func (s *TableTestSuite) TestFallbacks() {
	s.Equal("English only", s.table.T("es", "only_en", nil))
	s.Equal("missing_key", s.table.T("es", "missing_key", nil))
	s.Equal("broken", s.table.T("en", "broken", nil))
}

func (s *TableTestSuite) TestUnknownPlaceholderStays() {
	got := s.table.T("en", "count", i18n.Vars{"n": "2", "total": "3"})
	s.Equal("2 of 3, {missing} stays", got)
}

func (s *TableTestSuite) TestMatch() {
	s.Equal("es", s.table.Match("es-AR"))
	s.Equal("en", s.table.Match("en-GB"))
	s.Equal("es", s.table.Match("fr"))
	s.Equal("es", s.table.Match(""))
	s.Equal("es", s.table.Match("!!"))
}

func (s *TableTestSuite) TestParseRejectsInvalidJSON() {
	_, err := i18n.Parse([]byte(`{"strings": `))
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *TableTestSuite) TestParseWithoutDefault() {
	table, err := i18n.Parse([]byte(`{"strings": {"a": {"pt": "x"}}}`))
	s.Require().NoError(err)
	s.Equal(i18n.FallbackLanguage, table.Default())
	s.Equal([]string{"en", "pt"}, table.Languages())
}

func (s *TableTestSuite) TestLoad() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "i18n.json")
	s.Require().NoError(os.WriteFile(path, []byte(sampleTable), 0o600))

	table, err := i18n.Load(path)
	s.Require().NoError(err)
	s.Equal("es", table.Default())

	_, err = i18n.Load(filepath.Join(dir, "missing.json"))
	s.Require().Error(err)
	s.Equal(errors.CodeNotFound, errors.GetCode(err))

	bad := filepath.Join(dir, "bad.json")
	s.Require().NoError(os.WriteFile(bad, []byte("{"), 0o600))
	_, err = i18n.Load(bad)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *TableTestSuite) TestLocalizer() {
	l := s.table.Localizer("en-US")
	s.Equal("en", l.Lang())
	s.Equal("Hello Bo", l.T("greeting", i18n.Vars{"name": "Bo"}))
	s.Equal("2,999,997", l.Number(2999997))
	s.Equal("-3,000,001", l.Number(-3000001))
	s.Equal("0", l.Number(0))
}

func (s *TableTestSuite) TestBuiltinCoversEveryLanguage() {
	table, err := i18n.Builtin()
	s.Require().NoError(err)
	s.Equal("en", table.Default())
	s.Equal([]string{"en", "es", "pt"}, table.Languages())

	keys := []string{
		"value_na", "all_gems_provided", "cannot_reach_objective",
		"delta_exceeds_objective", "excess_per_gem", "needed_gems_one",
		"needed_gems_many", "bonus_standard", "bonus_adjusted",
		"bonus_guild_label", "bonus_festival_short", "bonus_totem_short",
		"bonus_universal_short", "bonus_gem_wizard_short",
	}
	for _, lang := range table.Languages() {
		for _, key := range keys {
			s.NotEqual(key, table.T(lang, key, nil), "%s missing in %s", key, lang)
		}
	}
}
