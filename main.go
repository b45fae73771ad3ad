package main

import (
	"github.com/contaflow/contaflow/cmd"
)

func main() {
	cmd.Execute()
}
