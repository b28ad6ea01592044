// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"naschgen/internal/app"
	"naschgen/internal/engine"
	"naschgen/internal/output"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code = app.Run(args, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func readState(t *testing.T, path string) (engine.State, string) {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	st, err := output.ReadText(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("parse %s: %v\n%s", path, err, b)
	}
	return st, string(b)
}

func TestEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	code, out, errS := run(t,
		"--n", "4", "--L", "10", "--vmax", "0",
		"--p-dec", "0.1", "--p-start", "0.2",
		"--pos", "even", "--vel", "zero", "--seed", "1",
		"--out", path,
	)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errS)
	}
	abs, _ := filepath.Abs(path)
	if strings.TrimSpace(out) != "Wrote "+abs {
		t.Fatalf("stdout: %q", out)
	}

	st, text := readState(t, path)
	if !strings.HasPrefix(text, "4\n10\n0\n0.1\n0.2\n1000\n1\n\n") {
		t.Fatalf("unexpected header:\n%s", text)
	}
	if len(st.Cars) != 4 {
		t.Fatalf("want 4 cars, got %d", len(st.Cars))
	}
	n0, n1 := st.LaneCounts()
	even := [2][]int{engine.EvenPositions(10, n0), engine.EvenPositions(10, n1)}
	var cursor [2]int
	for i, c := range st.Cars {
		if c.Velocity != 0 {
			t.Errorf("car %d: velocity %d", i, c.Velocity)
		}
		if want := even[c.Lane][cursor[c.Lane]]; c.Position != want {
			t.Errorf("car %d: position %d, want %d", i, c.Position, want)
		}
		cursor[c.Lane]++
	}
}

func TestSeedReproducible(t *testing.T) {
	dir := t.TempDir()
	gen := func(file, seed string) string {
		path := filepath.Join(dir, file)
		code, _, errS := run(t,
			"--n", "50", "--L", "60", "--vmax", "5",
			"--p-dec", "0.25", "--p-start", "0.5",
			"--pos", "random", "--vel", "random", "--seed", seed,
			"-o", path,
		)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errS)
		}
		b, _ := os.ReadFile(path)
		return string(b)
	}

	a, b := gen("a.txt", "1"), gen("b.txt", "1")
	if a != b {
		t.Fatalf("same seed produced different files\n%s\n---\n%s", a, b)
	}

	c := gen("c.txt", "2")
	if c == a {
		t.Fatalf("seed 2 reproduced seed 1 output")
	}
	ha, hc := strings.Split(a, "\n")[:8], strings.Split(c, "\n")[:8]
	for i := range ha {
		if i == 6 {
			continue // seed line
		}
		if ha[i] != hc[i] {
			t.Fatalf("header line %d changed: %q vs %q", i, ha[i], hc[i])
		}
	}
}

func TestRandomLayoutInvariants(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.txt")
	code, _, errS := run(t,
		"--n", "40", "--L", "40", "--vmax", "3",
		"--p-dec", "0", "--p-start", "1",
		"--pos", "random", "--vel", "random", "--seed", "17", "-o", path,
	)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errS)
	}
	st, _ := readState(t, path)
	seen := [2]map[int]bool{{}, {}}
	for i, c := range st.Cars {
		if c.Position < 0 || c.Position >= 40 || c.Velocity < 0 || c.Velocity > 3 {
			t.Fatalf("car %d out of range: %+v", i, c)
		}
		if seen[c.Lane][c.Position] {
			t.Fatalf("duplicate position %d in lane %d", c.Position, c.Lane)
		}
		seen[c.Lane][c.Position] = true
	}
}

func TestCapacityFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	code, _, errS := run(t,
		"--n", "20", "--L", "5", "--vmax", "2",
		"--p-dec", "0.1", "--p-start", "0.2",
		"--pos", "random", "--seed", "3", "--out", path,
	)
	if code != 2 {
		t.Fatalf("want exit 2, got %d", code)
	}
	if !strings.Contains(errS, "lane capacity exceeded") {
		t.Fatalf("stderr: %q", errS)
	}
	if left, _ := os.ReadDir(dir); len(left) != 0 {
		t.Fatalf("no file expected, found %v", left)
	}
}

func TestParameterErrors(t *testing.T) {
	cases := [][]string{
		{"--n", "0", "--L", "10", "--vmax", "1", "--p-dec", "0.1", "--p-start", "0.1"},
		{"--n", "3", "--L", "-1", "--vmax", "1", "--p-dec", "0.1", "--p-start", "0.1"},
		{"--n", "3", "--L", "10", "--vmax", "-2", "--p-dec", "0.1", "--p-start", "0.1"},
		{"--n", "3", "--L", "10", "--vmax", "1", "--p-dec", "1.5", "--p-start", "0.1"},
		{"--n", "3", "--L", "10", "--vmax", "1", "--p-dec", "0.1", "--p-start", "-0.1"},
		{"--n", "3", "--L", "10"},
		{"--n", "three", "--L", "10", "--vmax", "1", "--p-dec", "0.1", "--p-start", "0.1"},
	}
	for _, args := range cases {
		dir := t.TempDir()
		code, _, errS := run(t, append(args, "--out", filepath.Join(dir, "x.txt"))...)
		if code != 2 {
			t.Errorf("%v: want exit 2, got %d (%s)", args, code, errS)
		}
		if left, _ := os.ReadDir(dir); len(left) != 0 {
			t.Errorf("%v: no file expected, found %v", args, left)
		}
	}
}

func TestStdoutJSON(t *testing.T) {
	code, out, errS := run(t,
		"--n", "3", "--L", "9", "--vmax", "2",
		"--p-dec", "0.1", "--p-start", "0.2",
		"--seed", "5", "--format", "json", "--out", "-",
	)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errS)
	}
	if !strings.Contains(out, `"cars": [`) || !strings.Contains(out, `"seed": 5`) {
		t.Fatalf("unexpected JSON:\n%s", out)
	}
	if strings.Contains(out, "Wrote") {
		t.Fatalf("stdout output must not carry the confirmation line")
	}
}

func TestUnseededWarnsAndQuiet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "u.txt")
	args := []string{"--n", "5", "--L", "10", "--vmax", "2", "--p-dec", "0.1", "--p-start", "0.2", "-o", path}
	code, _, errS := run(t, args...)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errS)
	}
	if !strings.Contains(errS, "WARN:") {
		t.Fatalf("expected a seed warning, got %q", errS)
	}
	_, text := readState(t, path)
	if strings.Split(text, "\n")[6] != "None" {
		t.Fatalf("seed line should be None:\n%s", text)
	}

	code, _, errS = run(t, append(args, "--quiet")...)
	if code != 0 || errS != "" {
		t.Fatalf("quiet run: exit %d stderr %q", code, errS)
	}
}

func TestEvenOverfullWarns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "o.txt")
	code, _, errS := run(t,
		"--n", "30", "--L", "3", "--vmax", "1",
		"--p-dec", "0.1", "--p-start", "0.2", "--seed", "1", "-o", path,
	)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errS)
	}
	if !strings.Contains(errS, "even positions repeat") {
		t.Fatalf("expected overfull warning, got %q", errS)
	}
}

func TestCancelledWritesNothing(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	code := app.RunContext(ctx, []string{
		"--n", "3", "--L", "9", "--vmax", "2", "--p-dec", "0.1", "--p-start", "0.2",
		"--seed", "1", "-o", filepath.Join(dir, "c.txt"),
	}, &out, &errBuf)
	if code != 130 {
		t.Fatalf("want 130, got %d", code)
	}
	if left, _ := os.ReadDir(dir); len(left) != 0 {
		t.Fatalf("no file expected, found %v", left)
	}
}

func TestHelpVersionExamples(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}, {"--version"}, {"--examples"}, {}} {
		code, out, _ := run(t, args...)
		if code != 0 || out == "" {
			t.Errorf("%v: exit %d, stdout %q", args, code, out)
		}
	}
}

func TestUnseededRunsDiffer(t *testing.T) {
	dir := t.TempDir()
	gen := func(file string) string {
		path := filepath.Join(dir, file)
		code, _, errS := run(t,
			"--n", "50", "--L", "60", "--vmax", "5",
			"--p-dec", "0.25", "--p-start", "0.5",
			"--pos", "random", "--vel", "random", "--quiet", "-o", path,
		)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errS)
		}
		b, _ := os.ReadFile(path)
		return string(b)
	}

	a, b := gen("a.txt"), gen("b.txt")
	if a == b {
		t.Fatalf("two unseeded runs produced identical files:\n%s", a)
	}
	for _, text := range []string{a, b} {
		lines := strings.Split(text, "\n")
		if lines[5] != "1000" || lines[6] != "None" {
			t.Fatalf("steps/seed lines: %q %q", lines[5], lines[6])
		}
	}
}
