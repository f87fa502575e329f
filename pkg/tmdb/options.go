package tmdb

import (
	"net/url"
	"strconv"
)

// Options are the universal query options accepted by every list-shaped call.
// The zero value means "client defaults": page 1, the client's configured
// region and language, default sort, no adult content.
type Options struct {
	Region       string
	Language     string
	Page         int
	SortBy       string // e.g. "popularity.desc"
	IncludeAdult bool
}

// IsDefault reports whether every option is at its zero value. Callers use
// this to decide between the persistent per-id cache and a fresh fetch, since
// non-default options change the result shape.
func (o Options) IsDefault() bool {
	return o == Options{}
}

// values merges the options into query parameters, filling unset fields from
// the client's configured defaults.
func (o Options) values(defaults Options) url.Values {
	v := url.Values{}
	region := o.Region
	if region == "" {
		region = defaults.Region
	}
	if region != "" {
		v.Set("region", region)
	}
	language := o.Language
	if language == "" {
		language = defaults.Language
	}
	if language != "" {
		v.Set("language", language)
	}
	page := o.Page
	if page == 0 {
		page = 1
	}
	v.Set("page", strconv.Itoa(page))
	if o.SortBy != "" {
		v.Set("sort_by", o.SortBy)
	}
	v.Set("include_adult", strconv.FormatBool(o.IncludeAdult || defaults.IncludeAdult))
	return v
}
