package main

import (
	"context"
	"fmt"
	"os"

	"github.com/zeebo/clingy"
)

func main() {
	ok, err := clingy.Environment{
		Name: "arith",
		Args: os.Args[1:],
	}.Run(context.Background(), commands)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	if !ok || err != nil {
		os.Exit(1)
	}
}

func commands(cmds clingy.Commands) {
	cmds.New("factorial", "compute n! in 32-bit unsigned arithmetic", new(cmdFactorial))
	cmds.New("area", "compute the area of a width x height rectangle", new(cmdArea))
	cmds.New("run", "evaluate jobs from config and arguments", new(cmdRun))
}
