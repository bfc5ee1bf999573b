package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-journalvm/pkg/converters/profile"
)

func newPeopleCmd(root *rootOptions) *cobra.Command {
	var (
		heading string
		compact bool
	)
	cmd := &cobra.Command{
		Use:   "people FIXTURE",
		Short: "Render the editorial board profiles",
		Long: `Convert the fixture's people into an about-profiles group.

Examples:
  journalvm people journal.yaml --heading "Senior editors"
  journalvm people journal.yaml --compact --format html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, root, args[0])
			if err != nil {
				return err
			}
			group, err := profile.Group(a.converters, a.doc.People, heading, compact)
			if err != nil {
				return err
			}
			if group == nil {
				cmd.PrintErrln("no people in fixture")
				return nil
			}
			return a.emit(cmd, *group)
		},
	}
	cmd.Flags().StringVar(&heading, "heading", "", "group heading")
	cmd.Flags().BoolVar(&compact, "compact", false, "render compact profiles")
	return cmd
}
