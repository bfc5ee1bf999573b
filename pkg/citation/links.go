package citation

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

const (
	DefaultPubMedBase  = "https://www.ncbi.nlm.nih.gov/pubmed"
	DefaultScholarBase = "https://scholar.google.com/scholar_lookup"
)

// indexFixup rewrites the first two indexed array keys to plain repeated
// keys ("author%5B0%5D=X" -> "author=X").
var indexFixup = strings.NewReplacer("%5B0%5D=", "=", "%5B1%5D=", "=")

// Links builds the abstract links attached to references.
type Links struct {
	PubMed  string `yaml:"pubmed" json:"pubmed"`
	Scholar string `yaml:"scholar" json:"scholar"`
}

// DefaultLinks returns the public PubMed and Google Scholar endpoints.
func DefaultLinks() Links {
	return Links{PubMed: DefaultPubMedBase, Scholar: DefaultScholarBase}
}

func (l Links) withDefaults() Links {
	if strings.TrimSpace(l.PubMed) == "" {
		l.PubMed = DefaultPubMedBase
	}
	if strings.TrimSpace(l.Scholar) == "" {
		l.Scholar = DefaultScholarBase
	}
	return l
}

// PubMedLink links to the PubMed abstract for pmid.
func (l Links) PubMedLink(pmid string) viewmodel.Link {
	base := strings.TrimRight(l.withDefaults().PubMed, "/")
	return viewmodel.NewLink("PubMed", base+"/"+pmid)
}

// ScholarLink links to a Google Scholar lookup for query.
func (l Links) ScholarLink(query *Query) viewmodel.Link {
	return viewmodel.NewLink("Google Scholar", l.withDefaults().Scholar+"?"+query.Encode())
}

type queryParam struct {
	key    string
	value  string
	values []string
	list   bool
}

// Query is an ordered set of lookup parameters. Empty values are omitted.
type Query struct {
	params []queryParam
}

// NewQuery returns an empty Query.
func NewQuery() *Query {
	return &Query{}
}

// Set appends a scalar parameter.
func (q *Query) Set(key, value string) *Query {
	q.params = append(q.params, queryParam{key: key, value: value})
	return q
}

// SetInt appends an integer parameter. Integers are always emitted.
func (q *Query) SetInt(key string, value int) *Query {
	return q.Set(key, strconv.Itoa(value))
}

// SetList appends a repeated parameter.
func (q *Query) SetList(key string, values []string) *Query {
	q.params = append(q.params, queryParam{key: key, values: values, list: true})
	return q
}

// Encode renders the query with list entries as indexed keys, then applies
// the index fix-up so the first two entries read as repeated keys.
func (q *Query) Encode() string {
	if q == nil {
		return ""
	}
	parts := make([]string, 0, len(q.params))
	for _, param := range q.params {
		if !param.list {
			if param.value == "" {
				continue
			}
			parts = append(parts, url.QueryEscape(param.key)+"="+url.QueryEscape(param.value))
			continue
		}
		idx := 0
		for _, value := range param.values {
			if value == "" {
				continue
			}
			key := fmt.Sprintf("%s[%d]", param.key, idx)
			parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(value))
			idx++
		}
	}
	return indexFixup.Replace(strings.Join(parts, "&"))
}
