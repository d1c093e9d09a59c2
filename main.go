package main

import (
	"os"

	"github.com/ZZRSIC/YouTube-crawler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
