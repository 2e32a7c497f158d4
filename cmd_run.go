package main

import (
	"context"
	"errors"

	"github.com/zeebo/clingy"

	"github.com/loov/arith/eval"
)

type cmdRun struct {
	globalFlags
	jobs []string
}

func (c *cmdRun) Setup(params clingy.Parameters) {
	c.globalFlags.Setup(params)

	c.jobs = params.Arg("jobs", "jobs to evaluate, e.g. fact:13 or area:3x4",
		clingy.Optional,
		clingy.Repeated,
	).([]string)
}

func (c *cmdRun) Execute(ctx context.Context) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	jobs := eval.FromConfig(cfg.Jobs)
	for _, arg := range c.jobs {
		job, err := eval.ParseJob(arg)
		if err != nil {
			return err
		}
		jobs = append(jobs, job)
	}

	if len(jobs) == 0 {
		return errors.New("no jobs: list them in the config or pass them as arguments")
	}

	return run(ctx, &c.globalFlags, cfg, jobs)
}
