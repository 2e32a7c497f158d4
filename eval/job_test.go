package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/loov/arith/config"
)

func TestParseJob(t *testing.T) {
	tests := []struct {
		in   string
		want Job
	}{
		{"factorial:5", Job{Kind: KindFactorial, N: 5}},
		{"fact:0", Job{Kind: KindFactorial, N: 0}},
		{"13!", Job{Kind: KindFactorial, N: 13}},
		{" FACT: 7 ", Job{Kind: KindFactorial, N: 7}},
		{"area:3x4", Job{Kind: KindArea, Width: 3, Height: 4}},
		{"rect:0X7", Job{Kind: KindArea, Width: 0, Height: 7}},
		{"area:4294967295x1", Job{Kind: KindArea, Width: 4294967295, Height: 1}},
	}

	for _, tt := range tests {
		got, err := ParseJob(tt.in)
		if err != nil {
			t.Errorf("ParseJob(%q): %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseJob(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseJobErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"5",
		"volume:3",
		"fact:-1",
		"fact:4294967296",
		"fact:abc",
		"area:3",
		"area:3x",
		"area:x4",
		"area:-3x4",
		"!",
	} {
		if job, err := ParseJob(in); err == nil {
			t.Errorf("ParseJob(%q) = %v, want error", in, job)
		}
	}
}

func TestJobString(t *testing.T) {
	for _, in := range []string{"factorial:13", "area:3x4"} {
		job, err := ParseJob(in)
		if err != nil {
			t.Fatal(err)
		}
		if job.String() != in {
			t.Errorf("String() = %q, want %q", job.String(), in)
		}
	}
}

func TestFromConfig(t *testing.T) {
	n, w, h := uint32(6), uint32(2), uint32(9)
	got := FromConfig([]config.Job{
		{Kind: "factorial", N: &n},
		{Kind: "area", Width: &w, Height: &h},
	})
	want := []Job{
		{Kind: KindFactorial, N: 6},
		{Kind: KindArea, Width: 2, Height: 9},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromConfig mismatch (-want +got):\n%s", diff)
	}
}
