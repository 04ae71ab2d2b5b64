package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/transactify/transactify/app/entity"
	"github.com/transactify/transactify/app/manifest"
)

var catalogueCmd = &cobra.Command{
	Use:   "catalogue",
	Short: "Manage the product price catalogue",
	RunE:  runCatalogue,
}

func init() {
	rootCmd.AddCommand(catalogueCmd)
}

func runCatalogue(_ *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	store := manifest.NewStore(cwd)

	var action string
	prompt := &survey.Select{
		Message: "Choose an action",
		Options: []string{"Add Product", "Remove Product", "List Products"},
	}
	if err := survey.AskOne(prompt, &action); err != nil {
		return err
	}

	switch action {
	case "Add Product":
		return addProductPrompt(store)
	case "Remove Product":
		return removeProductPrompt(store)
	case "List Products":
		return listProducts(store)
	}
	return nil
}

func addProductPrompt(store *manifest.Store) error {
	questions := []*survey.Question{
		{
			Name:     "product",
			Prompt:   &survey.Input{Message: "Enter the product name"},
			Validate: survey.Required,
		},
		{
			Name:   "price",
			Prompt: &survey.Input{Message: "Enter the product price (in cents)"},
			Validate: func(ans interface{}) error {
				value, _ := ans.(string)
				cents, err := strconv.ParseInt(value, 10, 64)
				if err != nil || cents <= 0 {
					return fmt.Errorf("price must be a positive integer in cents")
				}
				return nil
			},
		},
	}

	answers := struct {
		Product string
		Price   string
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}

	cents, err := strconv.ParseInt(answers.Price, 10, 64)
	if err != nil {
		return err
	}
	if err := store.AddProduct(answers.Product, cents); err != nil {
		return err
	}

	color.Green("Product added to price index ✔")
	return nil
}

func removeProductPrompt(store *manifest.Store) error {
	products, err := store.ListProducts()
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Println("The price index is empty.")
		return nil
	}

	names := make([]string, 0, len(products))
	for _, product := range products {
		names = append(names, product.Name)
	}

	var name string
	if err := survey.AskOne(&survey.Select{Message: "Select product to remove", Options: names}, &name); err != nil {
		return err
	}
	if err := store.RemoveProduct(name); err != nil {
		return err
	}

	color.Green("Product removed from price index ✔")
	return nil
}

func listProducts(store *manifest.Store) error {
	products, err := store.ListProducts()
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Println("The price index is empty.")
		return nil
	}
	return renderProductsTable(os.Stdout, products)
}

func renderProductsTable(w io.Writer, products []entity.Product) error {
	table := tablewriter.NewWriter(w)
	table.Header("Product", "Price (cents)")
	for _, product := range products {
		if err := table.Append([]string{product.Name, strconv.FormatInt(product.Price, 10)}); err != nil {
			return err
		}
	}
	return table.Render()
}
