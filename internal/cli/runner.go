package cli

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/idilsaglam/spinwheel/internal/app"
	"github.com/idilsaglam/spinwheel/internal/config"
	"github.com/idilsaglam/spinwheel/internal/log"
	"github.com/idilsaglam/spinwheel/internal/spin"
	"github.com/idilsaglam/spinwheel/internal/store/jsonstore"
	"github.com/idilsaglam/spinwheel/internal/tui"
	"github.com/idilsaglam/spinwheel/internal/ui"
	"github.com/idilsaglam/spinwheel/internal/wheel"
)

// Options carry the root flags.
type Options struct {
	ConfigPath string // empty means ~/.spinwheel/config.yaml
	DataDir    string // overrides config and environment
	Theme      string
	Debug      bool

	In io.Reader // answers to prompts; nil means stdin
}

// env is what every subcommand works with.
type env struct {
	settings config.Settings
	store    *jsonstore.Store
	in       *bufio.Reader
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		PrintHelp()
		return 0
	}
	e, err := setup(opt)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}

	cmd, a := "tui", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	switch cmd {
	case "tui":
		return e.doTUI()
	case "ls":
		return e.doList()
	case "add":
		if len(a) == 0 {
			ui.Fail("usage: wheel add <label...>")
			return 2
		}
		return e.doAdd(strings.Join(a, " "))
	case "rm":
		if len(a) == 0 {
			ui.Fail("usage: wheel rm <index|label>")
			return 2
		}
		return e.doRemove(strings.Join(a, " "))
	case "clear":
		return e.doClear(a)
	case "spin":
		return e.doSpin(a)
	case "render":
		return e.doRender(a)
	case "show":
		return e.doShow(a)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func setup(opt Options) (*env, error) {
	path := opt.ConfigPath
	if path == "" {
		path = config.ConfigFile()
	}
	s, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if opt.DataDir != "" {
		s.DataDir = opt.DataDir
	}
	if opt.Theme != "" {
		s.Theme = opt.Theme
	}
	ui.SetTheme(s.Theme)

	lvl, ok := log.ParseLevel(s.LogLevel)
	if !ok {
		log.Warn("unknown log_level %q, using info", s.LogLevel)
	}
	if opt.Debug {
		lvl = log.LevelDebug
	}
	log.SetLevel(lvl)

	in := opt.In
	if in == nil {
		in = os.Stdin
	}
	return &env{settings: s, store: jsonstore.New(s.DataDir), in: bufio.NewReader(in)}, nil
}

func (e *env) controller(anim *spin.Animator) (*app.Controller, error) {
	if anim == nil {
		anim = spin.New()
	}
	anim.Duration = e.settings.SpinDuration()
	return app.New(e.store, app.Options{Palette: e.settings.WheelPalette(), Animator: anim})
}

func (e *env) style(size int) wheel.Style {
	st := wheel.DefaultStyle()
	st.Radius = e.settings.Radius
	if size > 0 {
		st.Size = size
	}
	return st
}

func PrintHelp() {
	fmt.Fprint(ui.Stdout(), `wheel - spin a wheel to pick one of your items

Usage:
  wheel [flags] [subcommand] [args]

Subcommands:
  tui                    Interactive wheel (default)
  ls                     List items with their wheel colors
  add <label...>         Add an item (label can be multiple words)
  rm <index|label>       Remove by 1-based index or by (fuzzy) label
  clear [--yes]          Remove all items after confirmation
  spin [--seed N]        Spin without animation and print the result
  render [-o file.png]   Export the wheel as a PNG image
  show [--cols N]        Print the wheel in the terminal

Flags:
  --config <path>        Config file (default ~/.spinwheel/config.yaml)
  --data-dir <dir>       Where items are stored (env SPINWHEEL_DATA_DIR)
  --theme <name>         classic | neon | mono
  --debug                Verbose logging

Examples:
  wheel add "Pizza"
  wheel spin
  wheel render -o wheel.png --rotation 1.2
`)
}

// ---------------------------------------------------
// Interactive
// ---------------------------------------------------

func (e *env) doTUI() int {
	c, err := e.controller(nil)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	// Log lines would tear the alternate screen; send them to a file.
	if err := os.MkdirAll(e.settings.DataDir, 0o755); err == nil {
		if f, err := os.OpenFile(config.LogFile(e.settings.DataDir), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			log.SetOutput(f)
			defer func() {
				log.SetOutput(os.Stderr)
				f.Close()
			}()
		}
	}
	if err := tui.Run(c); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

// ---------------------------------------------------
// Item subcommands
// ---------------------------------------------------

func (e *env) doList() int {
	c, err := e.controller(nil)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	items := c.Items()
	t := ui.Current()
	if len(items) == 0 {
		fmt.Fprintln(ui.Stdout(), t.Muted.Render(app.PromptText))
		return 0
	}
	lines := []string{fmt.Sprintf("%s   %s %d", t.Title.Render("Wheel"), t.Accent.Render("Total"), len(items))}
	p := c.Palette()
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%2d %s %s", i+1, ui.Swatch(p.Hex(i)), it))
	}
	ui.Panel(lines)
	return 0
}

func (e *env) doAdd(label string) int {
	c, err := e.controller(nil)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	changed, err := c.Add(label)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	if !changed {
		ui.Fail(fmt.Sprintf("not added: %q is empty or already on the wheel", strings.TrimSpace(label)))
		return 2
	}
	ui.OK("added")
	return 0
}

func (e *env) doRemove(arg string) int {
	c, err := e.controller(nil)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	idx, err := resolveIndex(c.Items(), arg)
	if err != nil {
		ui.Fail("rm: " + err.Error())
		ui.Muted("Hint: run `wheel ls` to see valid indexes")
		return 2
	}
	label := c.Items()[idx]
	if _, err := c.Remove(idx); err != nil {
		ui.Fail(err.Error())
		return 1
	}
	ui.OK("removed " + label)
	return 0
}

// resolveIndex maps a 1-based index, an exact label, or the best fuzzy
// label match to a 0-based position.
func resolveIndex(items []string, arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(items) {
			return 0, fmt.Errorf("index out of range: have %d, got %d", len(items), n)
		}
		return n - 1, nil
	}
	for i, it := range items {
		if it == arg {
			return i, nil
		}
	}
	if matches := fuzzy.Find(arg, items); len(matches) > 0 {
		return matches[0].Index, nil
	}
	return 0, fmt.Errorf("no item matches %q", arg)
}

func (e *env) doClear(args []string) int {
	fs := flag.NewFlagSet("clear", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	yes := fs.Bool("yes", false, "skip confirmation")
	if err := fs.Parse(args); err != nil {
		ui.Fail("usage: wheel clear [--yes]")
		return 2
	}
	c, err := e.controller(nil)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	confirmed := *yes || e.confirm("Are you sure you want to remove all items?")
	changed, err := c.Clear(confirmed)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	if !changed {
		fmt.Fprintln(ui.Stdout(), ui.Current().Muted.Render("kept all items"))
		return 0
	}
	ui.OK("cleared")
	return 0
}

func (e *env) confirm(question string) bool {
	fmt.Fprint(ui.Stdout(), question+" [y/N] ")
	answer, err := e.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// ---------------------------------------------------
// Wheel subcommands
// ---------------------------------------------------

func (e *env) doSpin(args []string) int {
	fs := flag.NewFlagSet("spin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	seed := fs.Uint64("seed", 0, "seed for a reproducible spin (0 = random)")
	if err := fs.Parse(args); err != nil {
		ui.Fail("usage: wheel spin [--seed N]")
		return 2
	}
	var anim *spin.Animator
	if *seed != 0 {
		anim = spin.NewSeeded(*seed)
	}
	c, err := e.controller(anim)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	res, ok := c.RunSpin(time.Now())
	if !ok {
		ui.Fail("nothing to spin: add some items first")
		return 2
	}
	fmt.Fprintln(ui.Stdout(), ui.Colored(res.Hex, "Selected: "+res.Label))
	return 0
}

func (e *env) doRender(args []string) int {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	out := fs.String("o", "wheel.png", "output file")
	rot := fs.Float64("rotation", 0, "wheel rotation in radians")
	size := fs.Int("size", 0, "canvas size in pixels")
	if err := fs.Parse(args); err != nil || *size < 0 {
		ui.Fail("usage: wheel render [-o file.png] [--rotation r] [--size px]")
		return 2
	}
	c, err := e.controller(nil)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	c.SetRotation(*rot)
	img := c.Render(e.style(*size))

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			ui.Fail("mkdir: " + err.Error())
			return 1
		}
	}
	f, err := os.Create(*out)
	if err != nil {
		ui.Fail("create: " + err.Error())
		return 1
	}
	defer f.Close()
	if err := wheel.EncodePNG(f, img); err != nil {
		ui.Fail(err.Error())
		return 1
	}
	ui.OK("wrote " + *out)
	return 0
}

func (e *env) doShow(args []string) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cols := fs.Int("cols", 40, "wheel width in columns")
	rot := fs.Float64("rotation", 0, "wheel rotation in radians")
	if err := fs.Parse(args); err != nil || *cols < 4 {
		ui.Fail("usage: wheel show [--cols N] [--rotation r]")
		return 2
	}
	c, err := e.controller(nil)
	if err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	c.SetRotation(*rot)
	img := c.Render(wheel.CompactStyle(*cols, c.Palette()))

	w := ui.Stdout()
	fmt.Fprintln(w, strings.Repeat(" ", *cols/2)+ui.Current().Accent.Render(ui.Current().Pointer))
	for _, line := range wheel.RenderHalfBlock(img, *cols) {
		fmt.Fprintln(w, line)
	}
	if res, ok := wheel.Resolve(c.Items(), c.Rotation(), c.Palette()); ok {
		fmt.Fprintln(w, ui.Colored(res.Hex, "Under the pointer: "+res.Label))
	}
	return 0
}
