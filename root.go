package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "yg-wordlist",
		Short:         "Build a discovery wordlist from the XML files in the current directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newHarvestCommand("broad",
		"Structured patterns plus every short word and phrase (wide, noisy)",
		BroadConfig()))
	rootCmd.AddCommand(newHarvestCommand("narrow",
		"Structured patterns only, splitting bare paths into segments",
		NarrowConfig()))

	return rootCmd
}

func newHarvestCommand(use, short string, cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := New(cfg)
			h.Out = cmd.OutOrStdout()
			if err := h.Start(); err != nil {
				return err
			}
			if err := h.SaveText(); err != nil {
				return err
			}
			h.PrintSummary(cmd.OutOrStdout())
			return nil
		},
	}
}
