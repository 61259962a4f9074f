package main

import "github.com/spf13/cobra"

var fetchAll bool

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a random episode into the local store",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps()
		if err != nil {
			return err
		}
		driver, err := d.driver(fetchAll)
		if err != nil {
			return err
		}

		result, err := driver.SelectAndDownload(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, result)
		}
		printDownload(out, result)
		return nil
	},
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchAll, "any", false, "Pick from every episode, including ones already downloaded")
	rootCmd.AddCommand(fetchCmd)
}
