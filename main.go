package main

import (
	"github.com/anchore/fmri/cmd"
)

func main() {
	cmd.Execute()
}
