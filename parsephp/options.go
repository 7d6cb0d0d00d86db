package parsephp

import "log/slog"

// SpaceEncoding selects how a literal space is written in a query string.
type SpaceEncoding int

const (
	// SpacePlus writes a space as '+' (PHP_QUERY_RFC1738, urlencode).
	SpacePlus SpaceEncoding = iota
	// SpacePercent20 writes a space as "%20" (PHP_QUERY_RFC3986, rawurlencode).
	SpacePercent20
)

// Token returns the encoded form of a space for this mode.
func (e SpaceEncoding) Token() string {
	if e == SpacePercent20 {
		return "%20"
	}
	return "+"
}

func (e SpaceEncoding) String() string {
	if e == SpacePercent20 {
		return "percent20"
	}
	return "plus"
}

// BoolRendering selects how boolean scalars are serialized.
type BoolRendering int

const (
	// BoolAsInt renders true/false as "1"/"0", like http_build_query.
	BoolAsInt BoolRendering = iota
	// BoolAsString renders true/false as "true"/"false".
	BoolAsString
)

func (r BoolRendering) String() string {
	if r == BoolAsString {
		return "string"
	}
	return "int"
}

// Options defines configurable behavior for decoding and serializing.
//
// Separator: joins pairs when serializing. Decode only supports "&"; an empty
// separator means "&".
// SpaceEncoding: how spaces are written by Encode and Serialize.
// BoolRendering: how boolean scalars are written by Serialize.
// Logger: optional; when nil nothing is logged.
type Options struct {
	Separator     string
	SpaceEncoding SpaceEncoding
	BoolRendering BoolRendering
	Logger        *slog.Logger
}

// DefaultOptions used by Decode and Serialize callers that do not care.
var DefaultOptions = Options{
	Separator:     "&",
	SpaceEncoding: SpacePlus,
	BoolRendering: BoolAsInt,
}

func (o Options) separator() string {
	if o.Separator == "" {
		return "&"
	}
	return o.Separator
}

func (o Options) debug(msg string, args ...any) {
	if o.Logger != nil {
		o.Logger.Debug(msg, args...)
	}
}
