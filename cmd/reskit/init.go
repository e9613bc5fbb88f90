package main

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a reskit.yml configuration",
	Long:  "Interactively create a reskit.yml in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range []string{"reskit.yml", "reskit.yaml"} {
			if _, err := os.Stat(name); err == nil {
				return fmt.Errorf("%s already exists", name)
			}
		}

		answers := struct {
			Resources string
			Output    string
			Package   string
			Access    string
		}{}

		questions := []*survey.Question{
			{
				Name:     "resources",
				Prompt:   &survey.Input{Message: "Resource directory:", Default: "resources"},
				Validate: survey.Required,
			},
			{
				Name:     "output",
				Prompt:   &survey.Input{Message: "Generated file path:", Default: "res/res.go"},
				Validate: survey.Required,
			},
			{
				Name:     "package",
				Prompt:   &survey.Input{Message: "Generated package name:", Default: "res"},
				Validate: survey.Required,
			},
			{
				Name: "access",
				Prompt: &survey.Select{
					Message: "Accessor visibility:",
					Options: []string{"public", "internal"},
					Default: "public",
				},
			},
		}
		if err := survey.Ask(questions, &answers); err != nil {
			return err
		}

		cfg := map[string]interface{}{
			"resources":    []string{answers.Resources},
			"output":       answers.Output,
			"package":      answers.Package,
			"access":       answers.Access,
			"variant_tags": []string{"light", "dark"},
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		if err := os.WriteFile("reskit.yml", data, 0644); err != nil {
			return fmt.Errorf("failed to write reskit.yml: %w", err)
		}

		fmt.Println("Created reskit.yml")
		fmt.Println("Next: add resources and run `reskit generate`")
		return nil
	},
}
