package main

import (
	"fmt"
	"os"

	"github.com/EduardoVisconti/AssetOps/cmd/cli/root"

	_ "github.com/EduardoVisconti/AssetOps/cmd/cli/auth"
	_ "github.com/EduardoVisconti/AssetOps/cmd/cli/equipment"
	_ "github.com/EduardoVisconti/AssetOps/cmd/cli/views"
)

func main() {
	if err := root.GetRoot().Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
