package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/loov/arith/arith"
	"github.com/loov/arith/config"
)

// Job kinds
const (
	KindFactorial = "factorial"
	KindArea      = "area"
)

// Job is a single computation to evaluate
type Job struct {
	Kind   string
	N      uint32
	Width  uint32
	Height uint32
}

// Input formats the operands the way ParseJob accepts them after the kind.
func (job Job) Input() string {
	if job.Kind == KindArea {
		return arith.Rectangle{Width: job.Width, Height: job.Height}.String()
	}
	return strconv.FormatUint(uint64(job.N), 10)
}

func (job Job) String() string {
	return job.Kind + ":" + job.Input()
}

// ParseJob parses a job given on the command line.
//
// Accepted forms are factorial:N, fact:N, N! for factorials and
// area:WxH, rect:WxH for rectangle areas.
func ParseJob(s string) (Job, error) {
	s = strings.TrimSpace(s)

	if n, ok := strings.CutSuffix(s, "!"); ok {
		return parseFactorial(s, n)
	}

	kind, operands, ok := strings.Cut(s, ":")
	if !ok {
		return Job{}, fmt.Errorf("job %q: expected kind:operands", s)
	}

	switch strings.ToLower(kind) {
	case "factorial", "fact":
		return parseFactorial(s, operands)
	case "area", "rect":
		w, h, ok := strings.Cut(strings.ToLower(operands), "x")
		if !ok {
			return Job{}, fmt.Errorf("job %q: expected WIDTHxHEIGHT", s)
		}
		width, err := ParseOperand(w)
		if err != nil {
			return Job{}, fmt.Errorf("job %q: width: %w", s, err)
		}
		height, err := ParseOperand(h)
		if err != nil {
			return Job{}, fmt.Errorf("job %q: height: %w", s, err)
		}
		return Job{Kind: KindArea, Width: width, Height: height}, nil
	default:
		return Job{}, fmt.Errorf("job %q: unknown kind %q", s, kind)
	}
}

func parseFactorial(s, operand string) (Job, error) {
	n, err := ParseOperand(operand)
	if err != nil {
		return Job{}, fmt.Errorf("job %q: %w", s, err)
	}
	return Job{Kind: KindFactorial, N: n}, nil
}

// ParseOperand parses a non-negative integer that fits in 32 bits.
func ParseOperand(s string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("operand must be an integer in [0, 4294967295]: %w", err)
	}
	return uint32(v), nil
}

// FromConfig converts validated config jobs.
func FromConfig(jobs []config.Job) []Job {
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		job := Job{Kind: j.Kind}
		if j.N != nil {
			job.N = *j.N
		}
		if j.Width != nil {
			job.Width = *j.Width
		}
		if j.Height != nil {
			job.Height = *j.Height
		}
		out = append(out, job)
	}
	return out
}
