package main

import (
	"fmt"
	"os"
)

func main() {
	c := &cli{}
	err := newRootCmd(c).Execute()
	c.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
