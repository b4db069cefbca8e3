// Package render prepares emoji SVG sources and rasterizes them into PNG images.
package render

import (
	"io"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

var (
	ErrMalformedSVG    = errors.New("malformed SVG document")
	ErrNoBorderElement = errors.New("no element with the \"border\" class")
)

// borderPath selects the first element marked with the border class, wherever it is located.
const borderPath = "//*[@class='border']"

// SVG is a parsed emoji source with a located border element.
type SVG struct {
	doc    *etree.Document
	border *etree.Element
}

// ParseSVG reads the SVG document and locates the border element.
func ParseSVG(r io.Reader) (*SVG, error) {
	var doc = etree.NewDocument()

	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.Wrapf(ErrMalformedSVG, "%s", err)
	}

	if root := doc.Root(); root == nil || root.Tag != "svg" {
		return nil, errors.Wrap(ErrMalformedSVG, "missing <svg> root element")
	}

	var border = doc.FindElement(borderPath)
	if border == nil {
		return nil, ErrNoBorderElement
	}

	return &SVG{doc: doc, border: border}, nil
}

// WithBorder sets the stroke of the border element and serializes the document.
func (s *SVG) WithBorder(stroke string) ([]byte, error) {
	s.border.CreateAttr("stroke", stroke)

	b, err := s.doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize the SVG document")
	}

	return b, nil
}
