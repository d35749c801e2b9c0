package browser

import (
	"errors"

	"github.com/Yana-Tihonenko/SauceDemoSeleniumFramework/pkg/xerrors"
)

// FindOptional returns nil when no element matches. Driver failures other
// than a plain miss still propagate.
func FindOptional(d Driver, loc Locator) (Element, error) {
	el, err := d.Find(loc)
	if errors.Is(err, ErrNoSuchElement) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return el, nil
}

// FindOptionalIn is the scoped variant of FindOptional.
func FindOptionalIn(parent Element, loc Locator) (Element, error) {
	el, err := parent.Find(loc)
	if errors.Is(err, ErrNoSuchElement) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return el, nil
}

// FindAllOptional returns nil (not an empty slice) when nothing matches, so
// callers can tell "confirmed empty" apart from "not rendered at all".
// Callers that want list semantics normalize with NormalizeList.
func FindAllOptional(d Driver, loc Locator) ([]Element, error) {
	els, err := d.FindAll(loc)
	if err != nil {
		return nil, err
	}
	if len(els) == 0 {
		return nil, nil
	}
	return els, nil
}

// NormalizeList converts an absent element list into an empty one.
func NormalizeList(els []Element) []Element {
	if els == nil {
		return []Element{}
	}
	return els
}

// FindMandatory fails with ELEMENT_NOT_FOUND, identifying label, when the
// element is absent.
func FindMandatory(d Driver, loc Locator, label string) (Element, error) {
	el, err := FindOptional(d, loc)
	if err != nil {
		return nil, xerrors.Wrap(err, xerrors.CodeDriver, "lookup failed").
			WithContext("element", label).
			WithContext("locator", loc.String())
	}
	if el == nil {
		url, _ := d.CurrentURL()
		return nil, xerrors.Newf(xerrors.CodeElementNotFound, "%s element not found", label).
			WithContext("locator", loc.String()).
			WithContext("url", url)
	}
	return el, nil
}

// FindMandatoryIn is the scoped variant of FindMandatory.
func FindMandatoryIn(parent Element, loc Locator, label string) (Element, error) {
	el, err := FindOptionalIn(parent, loc)
	if err != nil {
		return nil, xerrors.Wrap(err, xerrors.CodeDriver, "lookup failed").
			WithContext("element", label).
			WithContext("locator", loc.String())
	}
	if el == nil {
		return nil, xerrors.Newf(xerrors.CodeElementNotFound, "%s element not found", label).
			WithContext("locator", loc.String())
	}
	return el, nil
}
