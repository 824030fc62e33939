package main

import (
	"os"

	"github.com/CorrelAid/compress_uploader/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
