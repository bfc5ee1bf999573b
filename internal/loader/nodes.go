package loader

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-journalvm/pkg/model"
)

// dateFile accepts 2020, "2020", "2020-03", "2020-03-09" or a
// {year, month, day} mapping.
type dateFile struct {
	Year  int
	Month int
	Day   int
}

func (d *dateFile) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		var raw struct {
			Year  int `yaml:"year"`
			Month int `yaml:"month"`
			Day   int `yaml:"day"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		*d = dateFile(raw)
		return nil
	}
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a scalar or mapping", node.Line)
	}

	parts := strings.Split(strings.TrimSpace(node.Value), "-")
	if len(parts) > 3 {
		return fmt.Errorf("line %d: invalid date %q", node.Line, node.Value)
	}
	values := make([]int, 3)
	for idx, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("line %d: invalid date %q", node.Line, node.Value)
		}
		values[idx] = n
	}
	*d = dateFile{Year: values[0], Month: values[1], Day: values[2]}
	return nil
}

// placeFile accepts a string, a list of name components, or a
// {name, locality} mapping where either may be a string or a list.
type placeFile struct {
	Name     []string
	Locality []string
}

func (p *placeFile) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode, yaml.SequenceNode:
		names, err := stringList(node)
		if err != nil {
			return err
		}
		p.Name = names
		return nil
	case yaml.MappingNode:
		var raw struct {
			Name     yaml.Node `yaml:"name"`
			Locality yaml.Node `yaml:"locality"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		names, err := stringList(&raw.Name)
		if err != nil {
			return err
		}
		locality, err := stringList(&raw.Locality)
		if err != nil {
			return err
		}
		p.Name, p.Locality = names, locality
		return nil
	}
	return fmt.Errorf("line %d: place must be a string, list or mapping", node.Line)
}

// pagesFile accepts free text ("12-20", "e1003") or a {first, last, range}
// mapping.
type pagesFile struct {
	pages model.ReferencePages
}

func (p *pagesFile) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if value := strings.TrimSpace(node.Value); value != "" {
			p.pages = model.StringPages(value)
		}
		return nil
	case yaml.MappingNode:
		var raw struct {
			First string `yaml:"first"`
			Last  string `yaml:"last"`
			Range string `yaml:"range"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		p.pages = model.PageRange(raw)
		return nil
	}
	return fmt.Errorf("line %d: pages must be a string or mapping", node.Line)
}

// groupFile accepts a list of contributors or a {etAl, list} mapping. A
// contributor is a plain name, {name: ...} for a person or {group: ...} for
// an organisation.
type groupFile struct {
	contributors []model.Contributor
	etAl         bool
}

func (g *groupFile) UnmarshalYAML(node *yaml.Node) error {
	list := node
	if node.Kind == yaml.MappingNode {
		var raw struct {
			EtAl bool      `yaml:"etAl"`
			List yaml.Node `yaml:"list"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		g.etAl = raw.EtAl
		list = &raw.List
	}
	if list.Kind == 0 {
		return nil
	}
	if list.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: contributors must be a list", list.Line)
	}

	for _, item := range list.Content {
		contributor, err := decodeContributor(item)
		if err != nil {
			return err
		}
		g.contributors = append(g.contributors, contributor)
	}
	return nil
}

func (g groupFile) group() model.AuthorGroup {
	return model.AuthorGroup{Contributors: g.contributors, EtAl: g.etAl}
}

func decodeContributor(node *yaml.Node) (model.Contributor, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return model.Person{PreferredName: node.Value}, nil
	case yaml.MappingNode:
		var raw struct {
			Name  string `yaml:"name"`
			Group string `yaml:"group"`
			Orcid string `yaml:"orcid"`
		}
		if err := node.Decode(&raw); err != nil {
			return nil, err
		}
		if raw.Group != "" {
			return model.Group{Name: raw.Group}, nil
		}
		return model.Person{PreferredName: raw.Name, Orcid: raw.Orcid}, nil
	}
	return nil, fmt.Errorf("line %d: contributor must be a name or mapping", node.Line)
}

func stringList(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		if strings.TrimSpace(node.Value) == "" {
			return nil, nil
		}
		return []string{node.Value}, nil
	case yaml.SequenceNode:
		var out []string
		if err := node.Decode(&out); err != nil {
			return nil, err
		}
		return out, nil
	}
	return nil, fmt.Errorf("line %d: expected a string or list", node.Line)
}
