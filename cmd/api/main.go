// cmd/api/main.go
package main

import (
	"fmt"
	"os"

	"github.com/pelycan/api/internal/server"
)

func main() {
	if err := server.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}
