package main

import (
	"fmt"

	"english-drill/pkg/host"
	"english-drill/pkg/practiceservice"
	"github.com/spf13/cobra"
)

var runVault string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Download an episode and write today's practice note into a vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeps()
		if err != nil {
			return err
		}
		driver, err := d.driver(false)
		if err != nil {
			return err
		}

		vault, err := host.NewVaultHost(runVault)
		if err != nil {
			return err
		}
		if _, err := practiceservice.New(practiceservice.Config{
			Host:       vault,
			Selector:   driver,
			Links:      d.practiceScraper(),
			NoteFolder: d.cfg.Note.Folder,
			Listenings: d.cfg.Note.Listenings,
		}); err != nil {
			return err
		}

		if err := vault.Run(cmd.Context(), practiceservice.CommandID); err != nil {
			return err
		}
		for _, msg := range vault.Notices() {
			fmt.Fprintln(cmd.OutOrStdout(), msg)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runVault, "vault", ".", "Vault directory receiving the note and attachments")
	rootCmd.AddCommand(runCmd)
}
