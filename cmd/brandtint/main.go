// Brandtint - consolidate a website's brand colours
//
// Brandtint merges the semantic, custom-property and sampled colours
// extracted from a web page into one ranked palette in hex, rgb, lch and
// oklch form.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/brandtint/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
