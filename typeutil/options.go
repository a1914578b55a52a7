package typeutil

import "time"

// An Option is passed to optionally configure parsing and coercion.
type Option func(*config)

// WithLocation configures the location used for date text that carries no zone of its own. The default is UTC.
func WithLocation(loc *time.Location) Option {
	return func(conf *config) {
		conf.location = loc
	}
}

// WithLenientDates configures DATE parsing to fall back to format detection when the text is in none of the
// configured layouts, so that inputs such as "2006-01-02", "01/02/2006 15:04" or "1136214245" are accepted.
func WithLenientDates() Option {
	return func(conf *config) {
		conf.lenientDates = true
	}
}

// WithDateLayouts configures additional layouts tried, in order, after DateLayout when parsing DATE text.
func WithDateLayouts(layouts ...string) Option {
	return func(conf *config) {
		conf.dateLayouts = append(conf.dateLayouts, layouts...)
	}
}

type config struct {
	// location is applied to date text without a zone.
	location *time.Location
	// lenientDates enables format detection for date text matching none of dateLayouts.
	lenientDates bool
	// dateLayouts are tried in order when parsing date text.
	dateLayouts []string
}

func configure(opts []Option) config {
	result := config{
		location:    time.UTC,
		dateLayouts: []string{DateLayout},
	}
	for _, opt := range opts {
		opt(&result)
	}
	return result
}
