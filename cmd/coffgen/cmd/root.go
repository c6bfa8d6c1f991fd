package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	outDir    string
	verbose   bool
	fixedTime uint32
	useFixed  bool
)

var rootCmd = &cobra.Command{
	Use:   "coffgen",
	Short: "A minimal AMD64 Microsoft COFF object file generator",
	Long:  `coffgen lowers a compact register-level IR into relocatable Microsoft COFF object files for AMD64.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(&cobra.Group{
		ID:    "demo",
		Title: "Demo units",
	})

	rootCmd.AddCommand(demoCmd)

	rootCmd.PersistentFlags().StringVar(&outDir, "out-dir", ".", "directory object files are written to")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic entries recorded during lowering")
	rootCmd.PersistentFlags().Uint32Var(&fixedTime, "timestamp", 0, "fixed COFF file header timestamp (default: wall clock)")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		useFixed = cmd.Flags().Changed("timestamp")
	}
}
