package main

import (
	"flag"
	"fmt"
	"os"

	"countertimer/internal/icon"

	"github.com/fatih/color"
)

func main() {
	os.Exit(run())
}

func run() int {
	output := flag.String("o", "icon_512.png", "output PNG path")
	size := flag.Int("size", icon.Size, "edge length in pixels")
	flag.Parse()

	if err := icon.WriteFile(*output, *size); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "genicon: %v\n", err)
		return 1
	}
	color.Green("Icon generated: %s", *output)
	fmt.Printf("%dx%d\n", *size, *size)
	return 0
}
