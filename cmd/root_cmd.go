package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "yes",
	Short: "Yes is a tool for working with YES scriptlet documents.",
	Long:  "Yes is a tool for working with YES scriptlet documents. It parses line-oriented scriptlets into elements, attributes, and arguments, and reports the outcome of every line.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Yes",
	Long:  `All software has versions. This is Yes's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Yes v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(checkCmd)
}
