package main

import (
	"context"
	"fmt"

	"github.com/zeebo/clingy"

	"github.com/loov/arith/eval"
)

type cmdArea struct {
	globalFlags
	width  string
	height string
}

func (c *cmdArea) Setup(params clingy.Parameters) {
	c.globalFlags.Setup(params)
	c.width = params.Arg("width", "rectangle width").(string)
	c.height = params.Arg("height", "rectangle height").(string)
}

func (c *cmdArea) Execute(ctx context.Context) error {
	width, err := eval.ParseOperand(c.width)
	if err != nil {
		return fmt.Errorf("width: %w", err)
	}
	height, err := eval.ParseOperand(c.height)
	if err != nil {
		return fmt.Errorf("height: %w", err)
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	return run(ctx, &c.globalFlags, cfg, []eval.Job{{Kind: eval.KindArea, Width: width, Height: height}})
}
