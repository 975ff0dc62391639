package advert

import "advert/internal/colorize"

// Option customizes an Advert at construction time.
type Option func(a *Advert)

// WithColorCode sets the color used by String.
func WithColorCode(code colorize.Code) Option {
	return func(a *Advert) {
		a.colorCode = code
	}
}

// WithCurrency sets the currency symbol used by String.
func WithCurrency(symbol string) Option {
	return func(a *Advert) {
		a.currency = symbol
	}
}
