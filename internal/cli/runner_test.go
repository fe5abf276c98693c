package cli

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/idilsaglam/spinwheel/internal/store/jsonstore"
	"github.com/idilsaglam/spinwheel/internal/ui"
)

type harness struct {
	t       *testing.T
	dataDir string
	out     bytes.Buffer
	errOut  bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("SPINWHEEL_DATA_DIR", "")
	h := &harness{t: t, dataDir: t.TempDir()}
	ui.SetOutput(&h.out, &h.errOut)
	t.Cleanup(func() { ui.SetOutput(nil, nil) })
	return h
}

func (h *harness) run(stdin string, args ...string) int {
	h.t.Helper()
	h.out.Reset()
	h.errOut.Reset()
	return Run(args, Options{
		ConfigPath: filepath.Join(h.dataDir, "missing.yaml"),
		DataDir:    h.dataDir,
		Theme:      "mono",
		In:         strings.NewReader(stdin),
	})
}

func (h *harness) items() []string {
	h.t.Helper()
	got, err := jsonstore.New(h.dataDir).Load()
	if err != nil {
		h.t.Fatal(err)
	}
	return got
}

func TestAddAndList(t *testing.T) {
	h := newHarness(t)

	if code := h.run("", "add", "Pizza", "night"); code != 0 {
		t.Fatalf("add exit = %d; stderr %q", code, h.errOut.String())
	}
	if code := h.run("", "add", "Tacos"); code != 0 {
		t.Fatalf("add exit = %d", code)
	}
	if code := h.run("", "add", "Tacos"); code != 2 {
		t.Errorf("duplicate add exit = %d; want 2", code)
	}
	if code := h.run("", "add", "   "); code != 2 {
		t.Errorf("blank add exit = %d; want 2", code)
	}
	if code := h.run("", "add"); code != 2 {
		t.Errorf("add without args exit = %d; want 2", code)
	}
	if got := h.items(); !slices.Equal(got, []string{"Pizza night", "Tacos"}) {
		t.Errorf("stored = %v", got)
	}

	if code := h.run("", "ls"); code != 0 {
		t.Fatalf("ls exit = %d", code)
	}
	for _, want := range []string{" 1 # Pizza night", " 2 # Tacos"} {
		if !strings.Contains(h.out.String(), want) {
			t.Errorf("ls output missing %q:\n%s", want, h.out.String())
		}
	}
}

func TestListEmpty(t *testing.T) {
	h := newHarness(t)
	if code := h.run("", "ls"); code != 0 {
		t.Fatalf("ls exit = %d", code)
	}
	if !strings.Contains(h.out.String(), "Add some values") {
		t.Errorf("ls output = %q", h.out.String())
	}
}

func TestRemove(t *testing.T) {
	h := newHarness(t)
	for _, s := range []string{"Pizza", "Sushi", "Curry"} {
		h.run("", "add", s)
	}

	if code := h.run("", "rm", "2"); code != 0 {
		t.Fatalf("rm 2 exit = %d", code)
	}
	if code := h.run("", "rm", "piz"); code != 0 {
		t.Fatalf("rm piz exit = %d", code)
	}
	if got := h.items(); !slices.Equal(got, []string{"Curry"}) {
		t.Errorf("stored = %v", got)
	}

	for _, arg := range []string{"0", "7", "zzz"} {
		if code := h.run("", "rm", arg); code != 2 {
			t.Errorf("rm %s exit = %d; want 2", arg, code)
		}
	}
}

func TestResolveIndex(t *testing.T) {
	items := []string{"apple", "banana", "apple pie"}
	tests := []struct {
		arg  string
		want int
	}{
		{"1", 0},
		{"3", 2},
		{"apple pie", 2},
		{"bnn", 1},
	}
	for _, tt := range tests {
		got, err := resolveIndex(items, tt.arg)
		if err != nil || got != tt.want {
			t.Errorf("resolveIndex(%q) = %d, %v; want %d", tt.arg, got, err, tt.want)
		}
	}
	if _, err := resolveIndex(items, "4"); err == nil {
		t.Error("resolveIndex(4) error = nil")
	}
}

func TestClear(t *testing.T) {
	h := newHarness(t)
	h.run("", "add", "A")
	h.run("", "add", "B")

	if code := h.run("n\n", "clear"); code != 0 {
		t.Fatalf("clear exit = %d", code)
	}
	if len(h.items()) != 2 {
		t.Error("declined clear removed items")
	}
	if !strings.Contains(h.out.String(), "Are you sure you want to remove all items?") {
		t.Errorf("no confirmation prompt: %q", h.out.String())
	}

	if code := h.run("", "clear"); code != 0 || len(h.items()) != 2 {
		t.Errorf("clear with no answer: exit %d, items %v", code, h.items())
	}

	if code := h.run("y\n", "clear"); code != 0 || len(h.items()) != 0 {
		t.Errorf("confirmed clear: exit %d, items %v", code, h.items())
	}

	h.run("", "add", "C")
	if code := h.run("", "clear", "--yes"); code != 0 || len(h.items()) != 0 {
		t.Errorf("clear --yes: exit %d, items %v", code, h.items())
	}
}

func TestSpin(t *testing.T) {
	h := newHarness(t)
	if code := h.run("", "spin"); code != 2 {
		t.Errorf("spin on empty wheel exit = %d; want 2", code)
	}

	h.run("", "add", "A")
	h.run("", "add", "B")
	h.run("", "add", "C")
	if code := h.run("", "spin", "--seed", "9"); code != 0 {
		t.Fatalf("spin exit = %d; stderr %q", code, h.errOut.String())
	}
	first := h.out.String()
	if !strings.HasPrefix(first, "Selected: ") {
		t.Errorf("spin output = %q", first)
	}

	h.run("", "spin", "--seed", "9")
	if h.out.String() != first {
		t.Errorf("seeded spins differ: %q vs %q", first, h.out.String())
	}
}

func TestRender(t *testing.T) {
	h := newHarness(t)
	h.run("", "add", "A")
	out := filepath.Join(h.dataDir, "img", "wheel.png")

	if code := h.run("", "render", "-o", out, "--size", "240", "--rotation", "0.5"); code != 0 {
		t.Fatalf("render exit = %d; stderr %q", code, h.errOut.String())
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 240 || b.Dy() != 240 {
		t.Errorf("bounds = %v", b)
	}

	if code := h.run("", "render", "--size", "-3"); code != 2 {
		t.Errorf("negative size exit = %d; want 2", code)
	}
}

func TestShow(t *testing.T) {
	h := newHarness(t)
	h.run("", "add", "A")
	h.run("", "add", "B")
	h.run("", "add", "C")
	if code := h.run("", "show", "--cols", "20"); code != 0 {
		t.Fatalf("show exit = %d", code)
	}
	got := h.out.String()
	if !strings.Contains(got, "v") || !strings.Contains(got, "Under the pointer: C") {
		t.Errorf("show output = %q", got)
	}
	if lines := strings.Count(got, "\n"); lines != 12 {
		t.Errorf("show printed %d lines; want pointer + 10 rows + result", lines)
	}
}

func TestUsageAndHelp(t *testing.T) {
	h := newHarness(t)
	if code := h.run("", "help"); code != 0 || !strings.Contains(h.out.String(), "Subcommands:") {
		t.Errorf("help exit = %d, out = %q", code, h.out.String())
	}
	if code := h.run("", "frobnicate"); code != 2 {
		t.Errorf("unknown subcommand exit = %d; want 2", code)
	}
	if code := h.run("", "rm"); code != 2 {
		t.Errorf("rm without args exit = %d; want 2", code)
	}
}

func TestBadConfigFails(t *testing.T) {
	h := newHarness(t)
	p := filepath.Join(h.dataDir, "bad.yaml")
	if err := os.WriteFile(p, []byte("palette: [nope]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code := Run([]string{"ls"}, Options{ConfigPath: p, DataDir: h.dataDir})
	if code != 1 {
		t.Errorf("exit = %d; want 1", code)
	}
}
