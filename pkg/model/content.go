package model

import "time"

// Digest is a plain-language summary of a research article.
type Digest struct {
	ID              string
	Title           string
	ImpactStatement string
	Published       time.Time
	Updated         *time.Time
}

// ArticleSnippet is the search-result view of an article.
type ArticleSnippet struct {
	ID              string
	Type            string
	Title           string
	ImpactStatement string
	AuthorLine      string
	Published       time.Time
}

// Collection groups articles into an issue or thematic set.
type Collection struct {
	ID              string
	Title           string
	ImpactStatement string
	Published       time.Time
}
