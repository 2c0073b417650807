package main

import (
	"os"

	"github.com/sm8ta/goride_admin_dashboard/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
