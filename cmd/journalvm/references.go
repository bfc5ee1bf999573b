package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-journalvm"
	"github.com/goliatone/go-journalvm/pkg/model"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

type referencesOptions struct {
	id          string
	interactive bool
	prompter    Prompter
}

func newReferencesCmd(root *rootOptions) *cobra.Command {
	opts := &referencesOptions{prompter: surveyPrompter{}}
	cmd := &cobra.Command{
		Use:   "references FIXTURE",
		Short: "Convert an article's references",
		Long: `Convert every reference in the fixture, or a single one.

Examples:
  journalvm references journal.yaml
  journalvm references journal.yaml --id bib2 --format html
  journalvm references journal.yaml --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, root, args[0])
			if err != nil {
				return err
			}
			return runReferences(cmd, a, opts)
		},
	}
	cmd.Flags().StringVar(&opts.id, "id", "", "convert only the reference with this ID")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "choose a reference from a list")
	return cmd
}

func runReferences(cmd *cobra.Command, a *app, opts *referencesOptions) error {
	refs, err := a.fetcher.References(cmd.Context(), "")
	if err != nil {
		return err
	}

	switch {
	case opts.id != "":
		refs, err = filterReference(refs, opts.id)
	case opts.interactive:
		refs, err = chooseReference(cmd.Context(), opts.prompter, refs)
	}
	if err != nil {
		return err
	}

	vms, err := journalvm.ConvertMany(a.converters, refs, viewmodel.KindReference, journalvm.Context{})
	if err != nil {
		return err
	}
	return a.emit(cmd, vms...)
}

func filterReference(refs []model.Reference, id string) ([]model.Reference, error) {
	for _, ref := range refs {
		if ref.ReferenceID() == id {
			return []model.Reference{ref}, nil
		}
	}
	return nil, fmt.Errorf("reference %q not found", id)
}

func chooseReference(ctx context.Context, prompter Prompter, refs []model.Reference) ([]model.Reference, error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("no references to choose from")
	}
	options := make([]string, 0, len(refs))
	for _, ref := range refs {
		options = append(options, referenceLabel(ref))
	}
	idx, err := prompter.Select(ctx, SelectConfig{
		Message:  "Reference",
		Options:  options,
		PageSize: 15,
	})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(refs) {
		return nil, fmt.Errorf("invalid selection %d", idx)
	}
	return []model.Reference{refs[idx]}, nil
}

func referenceLabel(ref model.Reference) string {
	id := strings.TrimSpace(ref.ReferenceID())
	if id == "" {
		id = "(no id)"
	}
	kind, title := describe(ref)
	return fmt.Sprintf("%s [%s] %s (%s)", id, kind, title, ref.ReferenceDate().Format())
}

func describe(ref model.Reference) (string, string) {
	switch r := ref.(type) {
	case *model.BookReference:
		return "book", r.BookTitle
	case *model.ClinicalTrialReference:
		return "clinical trial", r.Title
	case *model.ConferenceProceedingReference:
		return "conference", r.ArticleTitle
	case *model.DataReference:
		return "data", r.Title
	case *model.PeriodicalReference:
		return "periodical", r.ArticleTitle
	case *model.SoftwareReference:
		return "software", r.Title
	case *model.UnknownReference:
		return "unknown", r.Title
	}
	return "reference", ""
}
