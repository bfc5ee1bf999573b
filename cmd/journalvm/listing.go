package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-journalvm"
	"github.com/goliatone/go-journalvm/pkg/content"
	"github.com/goliatone/go-journalvm/pkg/convert"
	"github.com/goliatone/go-journalvm/pkg/paginate"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

type listingOptions struct {
	page        int
	perPage     int
	label       string
	types       []string
	heading     string
	noHeading   bool
	emptyText   string
	variant     string
	collections bool
	annotations bool
}

func newListingCmd(root *rootOptions) *cobra.Command {
	opts := &listingOptions{}
	cmd := &cobra.Command{
		Use:   "listing FIXTURE",
		Short: "Render one page of an article listing",
		Long: `Page the fixture's articles (or collections) and convert the page into a
teaser listing.

Examples:
  journalvm listing journal.yaml --per-page 2
  journalvm listing journal.yaml --page 2 --per-page 2 --label research
  journalvm listing journal.yaml --type "Research article" --format html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, root, args[0])
			if err != nil {
				return err
			}
			return runListing(cmd, a, opts)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&opts.page, "page", 1, "page number (1-based)")
	flags.IntVar(&opts.perPage, "per-page", 0, "items per page (default from config)")
	flags.StringVar(&opts.label, "label", "", `item label used in headings and pager links ("research")`)
	flags.StringSliceVar(&opts.types, "type", nil, "article types to include")
	flags.StringVar(&opts.heading, "heading", "", "listing heading")
	flags.BoolVar(&opts.noHeading, "no-heading", false, "suppress the heading")
	flags.StringVar(&opts.emptyText, "empty-text", "", "message shown when there is nothing to list")
	flags.StringVar(&opts.variant, "variant", "", `teaser variant ("secondary" drops impact statements)`)
	flags.BoolVar(&opts.collections, "collections", false, "list collections instead of articles")
	flags.BoolVar(&opts.annotations, "annotations", false, "produce an annotation teaser listing")
	return cmd
}

func runListing(cmd *cobra.Command, a *app, opts *listingOptions) error {
	perPage := opts.perPage
	if perPage < 1 {
		perPage = a.cfg.Listing.PerPage
	}

	ctx := journalvm.Context{
		Listing: convert.ListingOptions{Type: strings.TrimSpace(opts.label)},
		Teaser:  convert.TeaserOptions{Variant: opts.variant},
	}
	switch {
	case opts.noHeading:
		ctx.Listing.Heading = convert.Optional("")
	case opts.heading != "":
		ctx.Listing.Heading = convert.Optional(opts.heading)
	}
	if opts.emptyText != "" {
		ctx.Listing.EmptyText = convert.Optional(opts.emptyText)
	}

	target := viewmodel.KindListingTeasers
	if opts.annotations {
		target = viewmodel.KindListingAnnotationTeasers
	}
	pageOptions := []paginate.Option{
		paginate.WithTitle(cmd.Short),
		paginate.WithPath(func(n int) string { return fmt.Sprintf("?page=%d", n) }),
	}

	var (
		vm  viewmodel.ViewModel
		err error
	)
	if opts.collections {
		vm, err = journalvm.Listing(a.converters, a.collections(), viewmodel.KindTeaser, target, opts.page, perPage, ctx, pageOptions...)
	} else {
		articles, searchErr := a.fetcher.Search(cmd.Context(), content.Query{Types: opts.types, Page: opts.page, PerPage: perPage})
		if searchErr != nil {
			return searchErr
		}
		vm, err = journalvm.Listing(a.converters, articles, viewmodel.KindTeaser, target, opts.page, perPage, ctx, pageOptions...)
	}
	if err != nil {
		return err
	}
	return a.emit(cmd, vm)
}
