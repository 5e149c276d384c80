package catalog

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Query-string keys, in the order Encode writes them.
const (
	KeyCategory = "category"
	KeyType     = "type"
	KeyRegion   = "region"
	KeyGrape    = "grape"
	KeyQ        = "q"
	KeyPrice    = "price"
	KeyABV      = "abv"
	KeySort     = "sort"
	KeyPage     = "page"
)

// Keys from the alternate storefront that spelled ranges as separate bounds.
// They are read only when the range key itself is absent. Encode writes them
// for half-open ranges, which "min-max" cannot express without a default.
const (
	legacyKeyMinPrice = "minPrice"
	legacyKeyMaxPrice = "maxPrice"
	legacyKeyMinABV   = "minAbv"
	legacyKeyMaxABV   = "maxAbv"
)

// Domain defaults substituted for an unparseable or missing half of a range.
var (
	DefaultPriceRange = [2]float64{0, 200}
	DefaultABVRange   = [2]float64{0, 100}
)

// ParseQuery decodes a query string into Filters. It accepts a bare query
// ("type=Red"), one with a leading '?', or a full URL or hash route. It never
// fails: unknown keys are ignored, the first occurrence of a repeated key
// wins and malformed values fall back to defaults. Sort is always set.
func ParseQuery(raw string) Filters {
	return ParseRawQuery(stripPrefix(raw))
}

// ParseRawQuery is ParseQuery for a bare query string, such as the one a
// router hands over after the '?'. Every '?' in raw belongs to a value.
func ParseRawQuery(raw string) Filters {
	values := firstValues(raw)
	f := Filters{Sort: SortBest}

	if v, ok := values[KeyCategory]; ok {
		f.Category = unescape(v)
	}
	f.Types = parseSet(values[KeyType])
	f.Regions = parseSet(values[KeyRegion])
	f.Grapes = parseSet(values[KeyGrape])

	if v, ok := values[KeyQ]; ok {
		f.Q = unescape(v)
	}

	if v, ok := values[KeyPrice]; ok {
		f.Price = parseRange(unescape(v), DefaultPriceRange)
	} else {
		f.Price = parseLegacyRange(values, legacyKeyMinPrice, legacyKeyMaxPrice)
	}
	if v, ok := values[KeyABV]; ok {
		f.ABV = parseRange(unescape(v), DefaultABVRange)
	} else {
		f.ABV = parseLegacyRange(values, legacyKeyMinABV, legacyKeyMaxABV)
	}

	if v, ok := values[KeySort]; ok {
		f.Sort, _ = ParseSort(unescape(v))
	}
	if v, ok := values[KeyPage]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(unescape(v))); err == nil && n > 0 {
			f.Page = n
		}
	}
	return f
}

// Encode renders f as a query string without a leading '?'. Empty and default
// fields are omitted, so the zero Filters encodes as "".
func (f Filters) Encode() string {
	var b strings.Builder
	add := func(key, escaped string) {
		if escaped == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(escaped)
	}

	add(KeyCategory, url.QueryEscape(f.Category))
	add(KeyType, encodeSet(f.Types))
	add(KeyRegion, encodeSet(f.Regions))
	add(KeyGrape, encodeSet(f.Grapes))
	add(KeyQ, url.QueryEscape(f.Q))
	addRange := func(r Range, key, minKey, maxKey string) {
		if r.Min != nil && r.Max != nil {
			add(key, formatBound(r.Min)+"-"+formatBound(r.Max))
			return
		}
		add(minKey, formatBound(r.Min))
		add(maxKey, formatBound(r.Max))
	}
	addRange(f.Price, KeyPrice, legacyKeyMinPrice, legacyKeyMaxPrice)
	addRange(f.ABV, KeyABV, legacyKeyMinABV, legacyKeyMaxABV)
	if sort := f.Sort.orDefault(); sort != SortBest {
		add(KeySort, string(sort))
	}
	if f.Page >= 1 {
		add(KeyPage, strconv.Itoa(f.Page))
	}
	return b.String()
}

// stripPrefix drops a leading path or URL and a trailing fragment. A '?'
// ends the prefix only when it comes before the first '=' and '&'; later
// ones are literal characters inside a value.
func stripPrefix(raw string) string {
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		if end := strings.IndexAny(raw, "=&"); end < 0 || i < end {
			raw = raw[i+1:]
		}
	}
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	return raw
}

// firstValues splits raw into still-escaped values keyed by unescaped key.
// Values with nothing after '=' count as absent.
func firstValues(raw string) map[string]string {
	values := make(map[string]string)
	for _, pair := range strings.Split(raw, "&") {
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil || key == "" || v == "" {
			continue
		}
		if _, seen := values[key]; !seen {
			values[key] = v
		}
	}
	return values
}

func unescape(v string) string {
	s, err := url.QueryUnescape(v)
	if err != nil {
		return ""
	}
	return s
}

// parseSet splits on commas before unescaping, so an escaped comma inside a
// value survives. Empty segments and repeats are dropped.
func parseSet(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	seen := make(map[string]struct{})
	for _, seg := range strings.Split(raw, ",") {
		v := unescape(seg)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func encodeSet(values []string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			parts = append(parts, url.QueryEscape(v))
		}
	}
	return strings.Join(parts, ",")
}

// parseRange reads "min-max". Each half that is missing or not a finite,
// non-negative number takes the corresponding default.
func parseRange(v string, def [2]float64) Range {
	lo, hi, _ := strings.Cut(v, "-")
	return Between(parseBound(lo, def[0]), parseBound(hi, def[1]))
}

func parseBound(s string, def float64) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return def
	}
	return n
}

// parseLegacyRange reads separate min/max keys. A malformed bound leaves that
// side unbounded.
func parseLegacyRange(values map[string]string, minKey, maxKey string) Range {
	var r Range
	if v, ok := values[minKey]; ok {
		if n, ok := parseLegacyBound(unescape(v)); ok {
			r.Min = &n
		}
	}
	if v, ok := values[maxKey]; ok {
		if n, ok := parseLegacyBound(unescape(v)); ok {
			r.Max = &n
		}
	}
	return r
}

func parseLegacyBound(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0, false
	}
	return n, true
}

func formatBound(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
