package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/transactify/transactify/app/manifest"
	"github.com/transactify/transactify/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a .transactify.json manifest in the given directory",
	Long:  "Copy the configured gateways from the global settings into a fresh project manifest with an empty price catalogue.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, args []string) error {
	settingsPath, err := config.SettingsPath()
	if err != nil {
		return err
	}

	settings := config.LoadSettings(settingsPath)
	if len(settings.ConfiguredProviders()) == 0 {
		var setup bool
		prompt := &survey.Confirm{
			Message: "No gateway details have been set up. Do you want to set them up now?",
			Default: true,
		}
		if err := survey.AskOne(prompt, &setup); err != nil {
			return err
		}
		if !setup {
			fmt.Println("Initialization aborted.")
			return nil
		}
		if err := runConfigFlow(settingsPath); err != nil {
			return err
		}
		settings = config.LoadSettings(settingsPath)
		if len(settings.ConfiguredProviders()) == 0 {
			fmt.Println("Initialization aborted.")
			return nil
		}
	}

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	} else if cwd, err := os.Getwd(); err == nil {
		dir = cwd
	}

	if _, err := manifest.NewStore(dir).Init(settings); err != nil {
		return err
	}

	color.Green(".transactify.json has been created ✔")
	return nil
}
