// Package main is the entry point for the kanaflow key notation tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/dshills/kanaflow/internal/config"
	"github.com/dshills/kanaflow/internal/engine"
	"github.com/dshills/kanaflow/internal/input/key"
	"github.com/dshills/kanaflow/internal/input/keymap"
	"github.com/dshills/kanaflow/internal/input/keysym"
	"github.com/dshills/kanaflow/internal/input/terminal"
	"github.com/dshills/kanaflow/internal/rule"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		formatArgs  bool
		checkPath   string
		rulesPath   string
		encoding    string
		showVersion bool
	)

	flag.BoolVar(&formatArgs, "fmt", false, "Canonicalize key notation arguments and exit")
	flag.StringVar(&checkPath, "check", "", "Validate a configuration file and exit")
	flag.StringVar(&rulesPath, "rules", "", "Load a Lua rule file and list its bindings")
	flag.StringVar(&encoding, "encoding", "", "Configuration file encoding (euc-jp, shift_jis, iso-2022-jp)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "kanaflow - thumb-shift input method engine\n\n")
		fmt.Fprintf(os.Stderr, "Usage: kanaflow [options] [notation...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  kanaflow -fmt 'C-j' '(meta control x)'   Canonicalize notation\n")
		fmt.Fprintf(os.Stderr, "  kanaflow -check kanaflow.toml            Validate a config file\n")
		fmt.Fprintf(os.Stderr, "  kanaflow -rules thumbshift.lua           List rule-file bindings\n")
		fmt.Fprintf(os.Stderr, "  kanaflow                                 Interactive key inspector\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("kanaflow %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	syms := keysym.Default()

	switch {
	case formatArgs:
		return runFormat(flag.Args(), syms)
	case checkPath != "":
		return runCheck(checkPath, encoding, syms)
	case rulesPath != "":
		return runRules(rulesPath, syms)
	default:
		return runInteractive(syms)
	}
}

// runFormat parses each argument and prints its canonical notation.
func runFormat(args []string, syms keysym.Resolver) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: -fmt requires notation arguments")
		return 1
	}

	status := 0
	for _, arg := range args {
		ev, err := key.Parse(arg, syms)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", arg, err)
			status = 1
			continue
		}
		fmt.Println(ev.String())
	}
	return status
}

// runCheck validates a configuration file, including every binding's
// key notation.
func runCheck(path, encoding string, syms keysym.Resolver) int {
	var opts []config.LoadOption
	if encoding != "" {
		opts = append(opts, config.WithEncoding(encoding))
	}

	cfg, err := config.Load(path, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := cfg.Validate(syms); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
		return 1
	}

	bindings := 0
	for _, km := range cfg.Keymaps {
		bindings += len(km.Bindings)
	}
	fmt.Printf("%s: ok (%d keymaps, %d bindings)\n", path, len(cfg.Keymaps), bindings)
	return 0
}

// runRules loads a Lua rule file and lists the bindings it declares.
func runRules(path string, syms keysym.Resolver) int {
	km, err := rule.NewEngine(syms).LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	mode := km.Mode
	if mode == "" {
		mode = "all modes"
	}
	fmt.Printf("%s (%s):\n", km.Name, mode)
	for _, b := range km.Bindings {
		ev := key.MustParse(b.Key, syms)
		if b.Description != "" {
			fmt.Printf("  %-24s %-24s %s\n", ev.String(), b.Action, b.Description)
		} else {
			fmt.Printf("  %-24s %s\n", ev.String(), b.Action)
		}
	}
	return 0
}

// runInteractive shows the notation for each pressed key until Escape
// is pressed twice in a row.
func runInteractive(syms keysym.Resolver) int {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
		return 1
	}

	registry := keymap.NewRegistry(syms)
	if err := keymap.LoadDefaults(registry); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	eng := engine.New(registry)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	drawLine(screen, 0, "kanaflow key inspector - press Escape twice to quit")

	escapes := 0
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return 0
		}
		switch tev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			kev, err := terminal.Translate(tev, syms)
			if err != nil {
				drawLine(screen, 2, fmt.Sprintf("?: %v", err))
				continue
			}

			if kev.Name == "Escape" {
				escapes++
				if escapes >= 2 {
					return 0
				}
			} else {
				escapes = 0
			}

			line := kev.String()
			if b := registry.Lookup(kev, eng.Mode().String()); b != nil {
				line += "  ->  " + b.Action
			}
			_ = eng.Process(kev)
			drawLine(screen, 2, line)
			drawLine(screen, 3, "mode: "+eng.Mode().String())
		}
	}
}

// drawLine writes one line of text, clearing the rest of the row.
func drawLine(screen tcell.Screen, y int, text string) {
	width, _ := screen.Size()
	style := tcell.StyleDefault
	x := 0
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
	screen.Show()
}
