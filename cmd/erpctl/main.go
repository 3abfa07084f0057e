package main

import (
	"fmt"
	"os"

	"github.com/spec-kit/erp-admin-client/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
