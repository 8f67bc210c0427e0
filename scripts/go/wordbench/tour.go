package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/tour/wc"

	"github.com/charlieparkes/wordbench/app"
	"github.com/charlieparkes/wordbench/wordcount"
)

var tourCmd = &cobra.Command{
	Use:   "tour",
	Short: "Check the tokenizer against the Go tour word count exercise",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		if err := app.Init(cfg.LogLevel); err != nil {
			return err
		}
		wc.Test(WordCount)
		return nil
	},
}

// WordCount adapts the counting table to the tour's wc.Test signature.
func WordCount(s string) map[string]int {
	return wordcount.CountString(s).Map()
}
