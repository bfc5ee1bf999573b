package convert

// Context carries the per-call options recognised by converters, grouped by
// target family. The zero value means "no options".
type Context struct {
	Listing ListingOptions
	Profile ProfileOptions
	Teaser  TeaserOptions
}

// ListingOptions customise teaser listings.
type ListingOptions struct {
	// Heading overrides the listing heading. A pointer to "" suppresses the
	// heading; nil falls back to "Latest {Type}".
	Heading *string
	// Type names the listed items ("articles", "digests") in default labels.
	Type string
	// EmptyText overrides the message shown when there are no items.
	EmptyText *string
}

// ProfileOptions customise about-profile conversion.
type ProfileOptions struct {
	Compact bool
}

// TeaserOptions customise teaser conversion.
type TeaserOptions struct {
	// Variant selects a teaser style; "secondary" drops the impact statement.
	Variant string
}

// Optional returns a pointer to s for the optional string options.
func Optional(s string) *string {
	return &s
}
