// Package filters turns listing query strings into validated bookmark filters.
//
// Every violated parameter is reported; parsing never stops at the first error.
package filters

import (
	"errors"
	"math"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/models"
)

// Violation messages, keyed by query parameter.
const (
	msgSortBy   = "sortBy must be one of: name, date"
	msgOffset   = "offset must be an integer greater than or equal to 0"
	msgSkip     = "offset is too large for the page size"
	msgPageSize = "pageSize must be an integer between 0 and 100"
	msgSearch   = "search or tag is required"
	msgURL      = "url is required"
)

type listParams struct {
	SortBy   string `query:"sortBy" validate:"omitempty,oneof=name date"`
	Offset   int    `query:"offset" validate:"gte=0"`
	PageSize int    `query:"pageSize" validate:"gte=0,lte=100"`
}

type searchParams struct {
	Search string `query:"search" validate:"required_without=Tag"`
	Tag    string `query:"tag" validate:"required_without=Search"`
}

type findParams struct {
	URL string `query:"url" validate:"required"`
}

var messages = map[string]string{
	"sortBy":   msgSortBy,
	"offset":   msgOffset,
	"pageSize": msgPageSize,
	"search":   msgSearch,
	"tag":      msgSearch,
	"url":      msgURL,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("query")
	})
	v.RegisterStructValidation(validateSkip, listParams{})
	return v
}

// validateSkip rejects offsets whose offset*pageSize does not fit in an int.
func validateSkip(sl validator.StructLevel) {
	p := sl.Current().Interface().(listParams)
	if p.PageSize > 0 && p.Offset > math.MaxInt/p.PageSize {
		sl.ReportError(p.Offset, "offset", "Offset", "maxskip", "")
	}
}

// ParseList validates the sortBy, offset and pageSize parameters.
func ParseList(q url.Values) (models.BookmarkFilter, *models.ValidationErrors) {
	var verrs models.ValidationErrors
	p := listParams{
		SortBy:   q.Get("sortBy"),
		Offset:   parseInt(q, "offset", 0, &verrs),
		PageSize: parseInt(q, "pageSize", models.DefaultPageSize, &verrs),
	}

	collect(validate.Struct(p), &verrs)
	if !verrs.Empty() {
		return models.BookmarkFilter{}, &verrs
	}

	sortBy := p.SortBy
	if sortBy == "" {
		sortBy = models.SortByDate
	}
	return models.BookmarkFilter{
		SortBy:   sortBy,
		Offset:   p.Offset,
		PageSize: p.PageSize,
	}, nil
}

// ParseSearch validates the listing parameters plus search and tag.
// At least one of search or tag must be present.
func ParseSearch(q url.Values) (models.BookmarkFilter, *models.ValidationErrors) {
	f, listErrs := ParseList(q)

	var verrs models.ValidationErrors
	if listErrs != nil {
		verrs = *listErrs
	}

	// A tag list of only separators names no tag at all.
	tags := SplitTags(q.Get("tag"))
	p := searchParams{
		Search: strings.TrimSpace(q.Get("search")),
		Tag:    strings.Join(tags, ","),
	}
	collect(validate.Struct(p), &verrs)
	if !verrs.Empty() {
		return models.BookmarkFilter{}, &verrs
	}

	f.Search = p.Search
	f.Tags = tags
	return f, nil
}

// ParseFind validates the url parameter of a find-by-url request.
func ParseFind(q url.Values) (string, *models.ValidationErrors) {
	p := findParams{URL: q.Get("url")}

	var verrs models.ValidationErrors
	collect(validate.Struct(p), &verrs)
	if !verrs.Empty() {
		return "", &verrs
	}
	return p.URL, nil
}

// SplitTags splits a comma separated tag list, dropping blanks and duplicates.
func SplitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	seen := make(map[string]struct{})
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// parseInt reads an integer parameter. A value that does not parse is reported
// and replaced by def so that struct validation does not report it twice.
func parseInt(q url.Values, key string, def int, verrs *models.ValidationErrors) int {
	raw := q.Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		verrs.Add(key, messages[key])
		return def
	}
	return n
}

func collect(err error, verrs *models.ValidationErrors) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "maxskip" {
			verrs.Add(fe.Field(), msgSkip)
			continue
		}
		verrs.Add(fe.Field(), messages[fe.Field()])
	}
}
