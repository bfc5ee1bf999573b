package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-journalvm"
	"github.com/goliatone/go-journalvm/pkg/viewmodel"
)

func newDigestCmd(root *rootOptions) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "digest FIXTURE",
		Short: "Render a digest's content header",
		Long: `Convert one digest from the fixture into its content header.

Examples:
  journalvm digest journal.yaml --id 42
  journalvm digest journal.yaml --id 42 --format html --base-url https://journal.example`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd, root, args[0])
			if err != nil {
				return err
			}
			digest, err := a.fetcher.Digest(cmd.Context(), id)
			if err != nil {
				return err
			}
			vm, err := a.converters.Convert(digest, viewmodel.KindContentHeader, journalvm.Context{})
			if err != nil {
				return err
			}
			return a.emit(cmd, vm)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "digest ID")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
