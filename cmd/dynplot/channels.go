package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rbojorquezs/psse-dyn-visualizer/src/axis"
)

func newChannelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "channels FILE",
		Short: "List the channels of a dataset with their value range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cat := s.Catalog
			out := cmd.OutOrStdout()
			header := color.New(color.Bold)
			header.Fprintf(out, "%s\n", cat.Title())
			fmt.Fprintf(out, "%d channels, %d samples\n\n", cat.ChannelCount(), cat.SampleCount())

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TOKEN\tMIN\tMAX")
			for _, tok := range s.Tokens() {
				samples, err := cat.Resolve(tok)
				if err != nil {
					return err
				}
				e := axis.Stats(samples)
				if !e.Valid {
					fmt.Fprintf(tw, "%s\t-\t-\n", tok)
					continue
				}
				fmt.Fprintf(tw, "%s\t%g\t%g\n", tok, e.Min, e.Max)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if cat.ChannelCount() < 2 {
				fmt.Fprintf(out, "\n%s dual Y axis needs at least two channels\n", color.YellowString("note:"))
			}
			return nil
		},
	}
}
