package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/9KGameStudio/go-sharpnav/nmgen"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config [FILE]",
	Short: "create a build settings file",
	Long: `Create a build settings file in YAML format, prefilled with default
values.

If FILE is not provided, 'nmgen.yml' is used.`,
	Run: doConfig,
}

func init() {
	RootCmd.AddCommand(configCmd)
}

func doConfig(cmd *cobra.Command, args []string) {
	path := "nmgen.yml"
	if len(args) >= 1 {
		path = args[0]
	}
	if ok, err := confirmIfExists(path,
		fmt.Sprintf("file %s already exists, overwrite? [y/N]", path)); !ok {
		if err == nil {
			fmt.Println("aborted by user...")
		} else {
			fmt.Println("aborted,", err)
		}
		return
	}

	buf, err := yaml.Marshal(nmgen.NewSettings())
	check(err)
	check(os.WriteFile(path, buf, 0644))
	fmt.Printf("build settings written to '%s'\n", path)
}
