package main

import (
	"context"

	"github.com/zeebo/clingy"

	"github.com/loov/arith/eval"
)

type cmdFactorial struct {
	globalFlags
	n string
}

func (c *cmdFactorial) Setup(params clingy.Parameters) {
	c.globalFlags.Setup(params)
	c.n = params.Arg("n", "non-negative integer below 2^32").(string)
}

func (c *cmdFactorial) Execute(ctx context.Context) error {
	n, err := eval.ParseOperand(c.n)
	if err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	return run(ctx, &c.globalFlags, cfg, []eval.Job{{Kind: eval.KindFactorial, N: n}})
}
