package cmd

import "github.com/spf13/cobra"

var demoCmd = &cobra.Command{
	Use:     "demo",
	GroupID: "demo",
	Short:   "Generate object files for a fixed, built-in IR program",
	Long:    `Demo reproduces a small set of hand-built compilation units, useful for exercising the encoder and COFF writer without a front end.`,
}

func init() {
	demoCmd.AddGroup(&cobra.Group{
		ID:    "demo",
		Title: "Demo units",
	})
	demoCmd.AddCommand(helloCmd)
}
