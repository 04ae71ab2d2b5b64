package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "transactify",
	Short: "Payment gateway configuration and dispatch tool",
	Long:  "Configure payment-gateway credentials and a product price catalogue, then dispatch checkout requests to the selected gateway.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
