// Package attributes implementa la búsqueda de combinaciones de atributos:
// dada una selección serializada en XML, encuentra la combinación registrada
// del producto cuyo XML representa la misma selección aunque difiera el orden
// de los elementos o detalles de serialización.
package attributes

import (
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ catalog.CombinationFinder = (*Matcher)(nil)

// Matcher localiza combinaciones comparando selecciones de atributos en forma
// canónica: documento normalizado con etree (atributos y valores ordenados) y
// serializado con canonicalización XML (c14n) para igualdad byte a byte.
type Matcher struct {
	combinations repository.CombinationRepository
}

func NewMatcher(combinations repository.CombinationRepository) *Matcher {
	return &Matcher{combinations: combinations}
}

// FindCombination devuelve la combinación del producto que coincide con la
// selección, o nil si ninguna coincide. Una selección vacía nunca coincide.
func (m *Matcher) FindCombination(product *entity.Product, attributesXML string) (*entity.AttributeCombination, error) {
	if product == nil || strings.TrimSpace(attributesXML) == "" {
		return nil, nil
	}
	want, err := canonicalSelection(attributesXML)
	if err != nil {
		return nil, fmt.Errorf("%w: selección de atributos malformada", domain.ErrInvalidInput)
	}

	list, err := m.combinations.ListByProduct(product.ID)
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		got, err := canonicalSelection(c.AttributesXML)
		if err != nil {
			// combinación con XML corrupto: no puede coincidir
			continue
		}
		if got == want {
			return c, nil
		}
	}
	return nil, nil
}

// canonicalSelection normaliza una selección
// (<attributes><attribute id="..."><value>...</value></attribute></attributes>)
// a su forma canónica: valores ordenados dentro de cada atributo, atributos
// ordenados por id, y el resultado serializado con c14n.
func canonicalSelection(raw string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(raw); err != nil {
		return "", err
	}
	root := doc.Root()
	if root == nil || root.Tag != "attributes" {
		return "", fmt.Errorf("elemento raíz inesperado")
	}
	stripWhitespace(root)

	attrs := root.SelectElements("attribute")
	for _, attr := range attrs {
		values := attr.SelectElements("value")
		sort.SliceStable(values, func(i, j int) bool {
			return values[i].Text() < values[j].Text()
		})
		for _, v := range values {
			attr.RemoveChild(v)
		}
		for _, v := range values {
			attr.AddChild(v)
		}
	}
	sort.SliceStable(attrs, func(i, j int) bool {
		return attrs[i].SelectAttrValue("id", "") < attrs[j].SelectAttrValue("id", "")
	})
	for _, attr := range attrs {
		root.RemoveChild(attr)
	}
	for _, attr := range attrs {
		root.AddChild(attr)
	}

	normalized, err := doc.WriteToString()
	if err != nil {
		return "", err
	}
	out, err := c14n.Canonicalize(xml.NewDecoder(strings.NewReader(normalized)))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// stripWhitespace elimina los nodos de texto de solo espacios entre elementos
// para que la indentación no afecte la comparación.
func stripWhitespace(el *etree.Element) {
	for _, child := range el.ChildElements() {
		stripWhitespace(child)
	}
	if len(el.ChildElements()) == 0 {
		return
	}
	for _, tok := range append([]etree.Token(nil), el.Child...) {
		if cd, ok := tok.(*etree.CharData); ok && strings.TrimSpace(cd.Data) == "" {
			el.RemoveChild(cd)
		}
	}
}
