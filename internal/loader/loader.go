// Package loader decodes YAML fixture documents into domain objects. It backs
// the CLI and the shared test fixtures.
package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-journalvm/pkg/model"
)

// Document is a decoded fixture file.
type Document struct {
	References  []model.Reference
	Digests     []model.Digest
	Articles    []model.ArticleSnippet
	Collections []model.Collection
	People      []model.Person
}

type documentFile struct {
	References  []referenceFile  `yaml:"references"`
	Digests     []digestFile     `yaml:"digests"`
	Articles    []articleFile    `yaml:"articles"`
	Collections []collectionFile `yaml:"collections"`
	People      []personFile     `yaml:"people"`
}

type referenceFile struct {
	Kind          string    `yaml:"kind"`
	ID            string    `yaml:"id"`
	Date          dateFile  `yaml:"date"`
	Discriminator string    `yaml:"discriminator"`
	DOI           string    `yaml:"doi"`
	URI           string    `yaml:"uri"`
	Title         string    `yaml:"title"`
	Volume        string    `yaml:"volume"`
	Edition       string    `yaml:"edition"`
	Publisher     placeFile `yaml:"publisher"`
	ISBN          string    `yaml:"isbn"`
	PMID          string    `yaml:"pmid"`
	AuthorsType   string    `yaml:"authorsType"`
	Conference    placeFile `yaml:"conference"`
	Pages         pagesFile `yaml:"pages"`
	Source        string    `yaml:"source"`
	Authority     placeFile `yaml:"assigningAuthority"`
	DataID        string    `yaml:"dataId"`
	Periodical    string    `yaml:"periodical"`
	Version       string    `yaml:"version"`
	Details       string    `yaml:"details"`

	Authors   groupFile `yaml:"authors"`
	Editors   groupFile `yaml:"editors"`
	Compilers groupFile `yaml:"compilers"`
	Curators  groupFile `yaml:"curators"`
}

type digestFile struct {
	ID              string     `yaml:"id"`
	Title           string     `yaml:"title"`
	ImpactStatement string     `yaml:"impactStatement"`
	Published       time.Time  `yaml:"published"`
	Updated         *time.Time `yaml:"updated"`
}

type articleFile struct {
	ID              string    `yaml:"id"`
	Type            string    `yaml:"type"`
	Title           string    `yaml:"title"`
	ImpactStatement string    `yaml:"impactStatement"`
	AuthorLine      string    `yaml:"authorLine"`
	Published       time.Time `yaml:"published"`
}

type collectionFile struct {
	ID              string    `yaml:"id"`
	Title           string    `yaml:"title"`
	ImpactStatement string    `yaml:"impactStatement"`
	Published       time.Time `yaml:"published"`
}

type personFile struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	IndexName    string   `yaml:"indexName"`
	Role         string   `yaml:"role"`
	Affiliations []string `yaml:"affiliations"`
	Biography    string   `yaml:"biography"`
	Orcid        string   `yaml:"orcid"`
}

// Parse decodes a fixture document. source names the input in errors.
func Parse(data []byte, source string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("loader: file %s is empty", source)
	}

	var raw documentFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("loader: parse %s: %w", source, err)
	}

	doc := Document{}
	for idx, ref := range raw.References {
		decoded, err := ref.reference()
		if err != nil {
			return Document{}, fmt.Errorf("loader: %s: reference %d: %w", source, idx, err)
		}
		doc.References = append(doc.References, decoded)
	}
	for _, d := range raw.Digests {
		doc.Digests = append(doc.Digests, model.Digest{
			ID:              d.ID,
			Title:           d.Title,
			ImpactStatement: d.ImpactStatement,
			Published:       d.Published,
			Updated:         d.Updated,
		})
	}
	for _, a := range raw.Articles {
		doc.Articles = append(doc.Articles, model.ArticleSnippet{
			ID:              a.ID,
			Type:            a.Type,
			Title:           a.Title,
			ImpactStatement: a.ImpactStatement,
			AuthorLine:      a.AuthorLine,
			Published:       a.Published,
		})
	}
	for _, c := range raw.Collections {
		doc.Collections = append(doc.Collections, model.Collection(c))
	}
	for _, p := range raw.People {
		doc.People = append(doc.People, model.Person{
			ID:            p.ID,
			PreferredName: p.Name,
			IndexName:     p.IndexName,
			Role:          p.Role,
			Affiliations:  p.Affiliations,
			Biography:     p.Biography,
			Orcid:         p.Orcid,
		})
	}
	return doc, nil
}

// Load reads and decodes path from fsys.
func Load(fsys fs.FS, path string) (Document, error) {
	if fsys == nil {
		return Document{}, fmt.Errorf("loader: filesystem is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Document{}, fmt.Errorf("loader: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFile reads and decodes a fixture file from disk.
func LoadFile(path string) (Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Document{}, fmt.Errorf("loader: resolve %s: %w", path, err)
	}
	return Load(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
}

func (r referenceFile) reference() (model.Reference, error) {
	base := model.ReferenceBase{
		ID:            r.ID,
		Date:          model.Date(r.Date),
		Discriminator: r.Discriminator,
		DOI:           r.DOI,
		URI:           r.URI,
	}

	switch strings.ToLower(strings.TrimSpace(r.Kind)) {
	case "book":
		return &model.BookReference{
			ReferenceBase: base,
			BookTitle:     r.Title,
			Volume:        r.Volume,
			Edition:       r.Edition,
			Publisher:     model.Place(r.Publisher),
			ISBN:          r.ISBN,
			PMID:          r.PMID,
			Authors:       r.Authors.group(),
			Editors:       r.Editors.group(),
		}, nil
	case "clinical-trial":
		return &model.ClinicalTrialReference{
			ReferenceBase: base,
			Title:         r.Title,
			Authors:       r.Authors.group(),
			AuthorsType:   r.AuthorsType,
		}, nil
	case "conference-proceeding":
		return &model.ConferenceProceedingReference{
			ReferenceBase: base,
			ArticleTitle:  r.Title,
			Conference:    model.Place(r.Conference),
			Pages:         r.Pages.pages,
			Authors:       r.Authors.group(),
		}, nil
	case "data":
		ref := &model.DataReference{
			ReferenceBase: base,
			Title:         r.Title,
			Source:        r.Source,
			DataID:        r.DataID,
			Authors:       r.Authors.group(),
			Compilers:     r.Compilers.group(),
			Curators:      r.Curators.group(),
		}
		if authority := model.Place(r.Authority); !authority.Empty() {
			ref.AssigningAuthority = &authority
		}
		return ref, nil
	case "periodical", "journal":
		return &model.PeriodicalReference{
			ReferenceBase: base,
			ArticleTitle:  r.Title,
			Periodical:    r.Periodical,
			Volume:        r.Volume,
			Pages:         r.Pages.pages,
			Authors:       r.Authors.group(),
		}, nil
	case "software":
		return &model.SoftwareReference{
			ReferenceBase: base,
			Title:         r.Title,
			Version:       r.Version,
			Publisher:     model.Place(r.Publisher),
			Authors:       r.Authors.group(),
		}, nil
	case "unknown":
		return &model.UnknownReference{
			ReferenceBase: base,
			Title:         r.Title,
			Details:       r.Details,
			Authors:       r.Authors.group(),
		}, nil
	case "":
		return nil, fmt.Errorf("kind is required")
	default:
		return nil, fmt.Errorf("unsupported kind %q", r.Kind)
	}
}
