package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"rbxconv/pkg/brickcolor"

	"github.com/google/go-cmp/cmp"
)

func TestRun(t *testing.T) {
	m := brickcolor.DefaultMatcher()

	tests := []struct {
		command string
		args    []string
		want    string
	}{
		{command: "nearest", args: []string{"242", "243", "243"}, want: "1\tWhite\t(242, 243, 243)\n"},
		{command: "nearest", args: []string{"0", "0", "0"}, want: "1003\tReally black\t(17, 17, 17)\n"},
		{command: "color", args: []string{"1"}, want: "242\t243\t243\n"},
	}
	for _, test := range tests {
		var out bytes.Buffer
		if err := run(&out, m, test.command, test.args); err != nil {
			t.Fatalf("%s %v: %s", test.command, test.args, err)
		}
		if diff := cmp.Diff(test.want, out.String()); diff != "" {
			t.Errorf("%s %v incorrect output: %s", test.command, test.args, diff)
		}
	}
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, brickcolor.DefaultMatcher(), "list", nil); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 208 {
		t.Errorf("got %d lines, want 208", len(lines))
	}
}

func TestRunErrors(t *testing.T) {
	m := brickcolor.DefaultMatcher()

	tests := []struct {
		command string
		args    []string
		want    error
	}{
		{command: "nearest", args: []string{"300", "0", "0"}, want: brickcolor.ErrOutOfRange},
		{command: "color", args: []string{"9999"}, want: brickcolor.ErrNotFound},
		{command: "nearest", args: []string{"1", "2"}, want: errUsage},
		{command: "frobnicate", want: errUsage},
	}
	for _, test := range tests {
		err := run(&bytes.Buffer{}, m, test.command, test.args)
		if !errors.Is(err, test.want) {
			t.Errorf("%s %v: got error %v, want %v", test.command, test.args, err, test.want)
		}
	}

	if err := run(&bytes.Buffer{}, m, "color", []string{"abc"}); err == nil {
		t.Errorf("color abc: expected an error")
	}
}
