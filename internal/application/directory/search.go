package directory

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/linkbi-api/internal/application/dto"
	"github.com/jhoicas/linkbi-api/internal/domain/entity"
)

var folder = cases.Fold()

// NormalizeTerm pasa a minúsculas, quita acentos y colapsa espacios: "  Île-de-France " -> "ile-de-france".
func NormalizeTerm(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(folder.String(out)), " ")
}

type matcher struct {
	ville   string
	domaine string
}

func newMatcher(f dto.ProviderFilter) matcher {
	return matcher{ville: NormalizeTerm(f.Ville), domaine: NormalizeTerm(f.Domaine)}
}

func (m matcher) empty() bool { return m.ville == "" && m.domaine == "" }

func (m matcher) match(p *entity.Provider) bool {
	if m.ville != "" && !strings.Contains(NormalizeTerm(p.Ville), m.ville) {
		return false
	}
	if m.domaine != "" && !strings.Contains(NormalizeTerm(p.Domaine), m.domaine) {
		return false
	}
	return true
}
