package main

import (
	"github.com/nrad-K/go-jobfeed/cmd"
)

func main() {
	cmd.Execute()
}
