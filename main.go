package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	args := os.Args[1:]
	ctx := context.Background()

	code, err := run(ctx, args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	os.Exit(code)
}
