package viewmodel

// DefaultLicenceURI is the licence attached to content headers.
const DefaultLicenceURI = "https://creativecommons.org/licenses/by/4.0/"

// SocialMediaSharers carries the plain-text title and canonical URL used by
// share buttons.
type SocialMediaSharers struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Meta is the type link and date line shown under a header or teaser.
type Meta struct {
	Type *Link `json:"type,omitempty"`
	Date *Date `json:"date,omitempty"`
}

// ContentHeader heads a content page.
type ContentHeader struct {
	Title           string              `json:"title"`
	ImpactStatement string              `json:"impactStatement,omitempty"`
	Sharers         *SocialMediaSharers `json:"socialMediaSharers,omitempty"`
	Meta            *Meta               `json:"meta,omitempty"`
	LicenceURI      string              `json:"licence,omitempty"`
}

func (ContentHeader) ViewModelKind() Kind { return KindContentHeader }

// AboutProfile renders a person on the editorial board pages.
type AboutProfile struct {
	Name         string   `json:"name"`
	Role         string   `json:"role,omitempty"`
	Affiliations []string `json:"affiliations,omitempty"`
	Biography    string   `json:"biography,omitempty"`
	Orcid        *Link    `json:"orcid,omitempty"`
	Compact      bool     `json:"compact,omitempty"`
}

func (AboutProfile) ViewModelKind() Kind { return KindAboutProfile }

// AboutProfiles groups profiles under a heading.
type AboutProfiles struct {
	Items   []ViewModel  `json:"items"`
	Heading *ListHeading `json:"heading,omitempty"`
	Compact bool         `json:"compact,omitempty"`
}

func (AboutProfiles) ViewModelKind() Kind { return KindAboutProfiles }

// Teaser summarises an article or collection inside a listing.
type Teaser struct {
	Title           string `json:"title"`
	URL             string `json:"url"`
	Variant         string `json:"variant,omitempty"`
	ImpactStatement string `json:"impactStatement,omitempty"`
	AuthorLine      string `json:"authorLine,omitempty"`
	Meta            *Meta  `json:"meta,omitempty"`
}

func (Teaser) ViewModelKind() Kind { return KindTeaser }
