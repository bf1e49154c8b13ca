package main

import (
	"fmt"
	"os"

	"recipebox/webclient/internal/view"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, view.RenderError(err))
		os.Exit(1)
	}
}
