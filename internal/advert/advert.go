package advert

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"advert/internal/attr"
	"advert/internal/colorize"
)

const (
	// TitleField is the required attribute.
	TitleField = "title"
	// PriceField is the validated numeric attribute.
	PriceField = "price"

	// DefaultColorCode is the representation color when none is configured.
	DefaultColorCode = colorize.Green
	// DefaultCurrency is the currency symbol when none is configured.
	DefaultCurrency = "₽"
)

// Advert is a classified ad built from a nested mapping.
type Advert struct {
	attrs     *attr.Bag
	price     float64
	colorCode colorize.Code
	currency  string
}

// New builds an Advert from a mapping such as decoded JSON.
// It fails with ErrMissingField when "title" is absent and with
// ErrInvalidPrice when a supplied price is negative or not a number.
func New(m map[string]any, opts ...Option) (*Advert, error) {
	if _, ok := m[TitleField]; !ok {
		return nil, missingField(TitleField, "Title is required")
	}

	return build(attr.Project(m), opts)
}

// FromBag builds an Advert from an already projected bag, applying the same
// rules as New.
func FromBag(b *attr.Bag, opts ...Option) (*Advert, error) {
	if !b.Has(TitleField) {
		return nil, missingField(TitleField, "Title is required")
	}

	return build(b, opts)
}

func build(b *attr.Bag, opts []Option) (*Advert, error) {
	a := &Advert{
		colorCode: DefaultColorCode,
		currency:  DefaultCurrency,
	}

	for _, opt := range opts {
		opt(a)
	}

	// Default first, then the projected attributes, then the supplied price
	// through the validated setter.
	a.price = 0
	a.attrs = b

	if v, ok := b.Get(PriceField); ok {
		p, err := toPrice(v)
		if err != nil {
			return nil, err
		}

		err = a.SetPrice(p)
		if err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Price returns the stored price.
func (a *Advert) Price() float64 {
	return a.price
}

// SetPrice stores v. Negative values are rejected and leave the stored
// price unchanged.
func (a *Advert) SetPrice(v float64) error {
	if math.IsNaN(v) {
		return invalidPrice("Price must be a number")
	}

	if v < 0 {
		return invalidPrice("Price must be >= 0")
	}

	a.price = v

	return nil
}

// Title returns the title attribute as text.
func (a *Advert) Title() string {
	v, _ := a.attrs.Get(TitleField)

	switch tv := v.(type) {
	case nil:
		return ""
	case string:
		return tv
	default:
		return fmt.Sprint(tv)
	}
}

// Get returns the named attribute. The price is always answered by the
// validated accessor.
func (a *Advert) Get(name string) (any, bool) {
	if name == PriceField {
		return a.price, true
	}

	return a.attrs.Get(name)
}

// Lookup resolves a dotted attribute path, see attr.Bag.Lookup.
func (a *Advert) Lookup(path string) (any, bool) {
	if path == PriceField {
		return a.price, true
	}

	return a.attrs.Lookup(path)
}

// Attrs returns the projected attributes.
func (a *Advert) Attrs() *attr.Bag {
	return a.attrs
}

// ReprColorCode implements colorize.Host.
func (a *Advert) ReprColorCode() colorize.Code {
	return a.colorCode
}

// Currency returns the currency symbol used by String.
func (a *Advert) Currency() string {
	return a.currency
}

// String renders "<title> | <price> <currency>" in the advert's color.
func (a *Advert) String() string {
	return colorize.Repr(a, fmt.Sprintf("%s | %s %s", a.Title(), FormatPrice(a.price), a.currency))
}

// FormatPrice renders p in its shortest decimal form ("100", "99.5").
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// toPrice converts a decoded numeric value.
func toPrice(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, invalidPrice("Price must be a number")
		}

		return f, nil
	default:
		return 0, invalidPrice("Price must be a number")
	}
}
