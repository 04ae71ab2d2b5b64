package cmd

import (
	"fmt"
	"sort"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/transactify/transactify/app/entity"
	"github.com/transactify/transactify/app/provider"
	"github.com/transactify/transactify/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage gateway credentials and callback URLs",
	RunE: func(_ *cobra.Command, _ []string) error {
		settingsPath, err := config.SettingsPath()
		if err != nil {
			return err
		}
		return runConfigFlow(settingsPath)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfigFlow(settingsPath string) error {
	settings := config.LoadSettings(settingsPath)

	choices := []string{"Setup Gateway(s)"}
	if len(settings.Providers) > 0 {
		choices = []string{"Add Gateway(s)", "Edit Gateway Keys", "Remove Gateway", "Edit URLs"}
	}

	var action string
	if err := survey.AskOne(&survey.Select{Message: "Choose an action", Options: choices}, &action); err != nil {
		return err
	}

	switch action {
	case "Setup Gateway(s)":
		settings.Providers = map[string]entity.Credentials{}
		if err := addGateways(settings, "Select gateways to integrate"); err != nil {
			return err
		}
	case "Add Gateway(s)":
		if err := addGateways(settings, "Select gateways to add"); err != nil {
			return err
		}
	case "Edit Gateway Keys":
		if err := editGateway(settings); err != nil {
			return err
		}
	case "Remove Gateway":
		if err := removeGateways(settings); err != nil {
			return err
		}
	case "Edit URLs":
		if err := editURLs(settings); err != nil {
			return err
		}
	}

	if err := config.SaveSettings(settingsPath, settings); err != nil {
		return err
	}
	color.Green("Configuration saved ✔")
	return nil
}

func addGateways(settings *entity.GlobalSettings, message string) error {
	var selected []string
	prompt := &survey.MultiSelect{
		Message: message,
		Options: provider.DefaultRegistry().Names(),
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return err
	}

	for _, gateway := range selected {
		if _, exists := settings.Providers[gateway]; exists {
			continue
		}
		creds, err := promptCredentials(gateway, entity.Credentials{})
		if err != nil {
			return err
		}
		settings.Providers[gateway] = creds
	}
	return nil
}

func editGateway(settings *entity.GlobalSettings) error {
	names := providerNames(settings)
	if len(names) == 0 {
		return fmt.Errorf("no gateways configured")
	}

	var gateway string
	if err := survey.AskOne(&survey.Select{Message: "Select gateway to edit", Options: names}, &gateway); err != nil {
		return err
	}

	creds, err := promptCredentials(gateway, settings.Providers[gateway])
	if err != nil {
		return err
	}
	settings.Providers[gateway] = creds
	return nil
}

func removeGateways(settings *entity.GlobalSettings) error {
	names := providerNames(settings)
	if len(names) == 0 {
		return fmt.Errorf("no gateways configured")
	}

	var selected []string
	if err := survey.AskOne(&survey.MultiSelect{Message: "Select gateways to remove", Options: names}, &selected); err != nil {
		return err
	}
	for _, gateway := range selected {
		delete(settings.Providers, gateway)
	}
	return nil
}

func editURLs(settings *entity.GlobalSettings) error {
	current := entity.CallbackURLs{}
	if settings.URLs != nil {
		current = *settings.URLs
	}

	questions := []*survey.Question{
		{Name: "returnURL", Prompt: &survey.Input{Message: "Return URL", Default: current.ReturnURL}, Validate: survey.Required},
		{Name: "cancelURL", Prompt: &survey.Input{Message: "Cancel URL", Default: current.CancelURL}, Validate: survey.Required},
		{Name: "notifyURL", Prompt: &survey.Input{Message: "Notify URL", Default: current.NotifyURL}, Validate: survey.Required},
	}

	answers := struct {
		ReturnURL string
		CancelURL string
		NotifyURL string
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}

	settings.URLs = &entity.CallbackURLs{
		ReturnURL: answers.ReturnURL,
		CancelURL: answers.CancelURL,
		NotifyURL: answers.NotifyURL,
	}
	return nil
}

func promptCredentials(gateway string, current entity.Credentials) (entity.Credentials, error) {
	questions := []*survey.Question{
		{
			Name:     "publicKey",
			Prompt:   &survey.Input{Message: fmt.Sprintf("%s Public Key", gateway), Default: current.PublicKey},
			Validate: survey.Required,
		},
		{
			Name:     "secret",
			Prompt:   &survey.Input{Message: fmt.Sprintf("%s Secret Key", gateway), Default: current.Secret},
			Validate: survey.Required,
		},
		{
			Name:   "testKey",
			Prompt: &survey.Input{Message: fmt.Sprintf("%s Test Key", gateway), Default: current.TestKey},
		},
		{
			Name:   "testSecret",
			Prompt: &survey.Input{Message: fmt.Sprintf("%s Test Secret", gateway), Default: current.TestSecret},
		},
	}

	answers := struct {
		PublicKey  string
		Secret     string
		TestKey    string
		TestSecret string
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return entity.Credentials{}, err
	}

	return entity.Credentials{
		PublicKey:  answers.PublicKey,
		Secret:     answers.Secret,
		TestKey:    answers.TestKey,
		TestSecret: answers.TestSecret,
	}, nil
}

func providerNames(settings *entity.GlobalSettings) []string {
	names := make([]string, 0, len(settings.Providers))
	for name := range settings.Providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
