package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"wedge/beep"
	"wedge/doctor"
	"wedge/hotkey"
	"wedge/inject"
	"wedge/keyboard"
	"wedge/log"
	"wedge/profile"
	"wedge/shutdown"
)

var version = "dev"

const (
	defaultInitialMs = 3000
	defaultItemMs    = 500

	// Holding the chord at least this long cancels instead of replaying
	holdToCancel = 600 * time.Millisecond
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: wedge [flags] [code ...]\n\n")
	fmt.Fprintf(out, "Types each code into the focused window followed by Enter.\n\n")
	flag.PrintDefaults()
}

func run() int {
	codesFlag := flag.String("codes", "", "Code list: .yaml/.yml profile or one code per line (- for stdin)")
	initialFlag := flag.Uint64("initial", defaultInitialMs, "Delay before the first code, in ms")
	delayFlag := flag.Uint64("delay", defaultItemMs, "Delay between codes, in ms")
	backendFlag := flag.String("backend", keyboard.Default(), "Input backend (see -backends)")
	backendsFlag := flag.Bool("backends", false, "List input backends and exit")
	dryRunFlag := flag.Bool("dry-run", false, "Print events instead of typing (same as -backend stdout)")
	formFlag := flag.Bool("form", false, "Enter codes and delays interactively")
	hotkeyFlag := flag.Bool("hotkey", false, "Stay resident and replay the codes on "+hotkey.Chord)
	tuiFlag := flag.Bool("tui", false, "Show progress TUI (default: on when stdout is a terminal)")
	beepFlag := flag.Bool("beep", true, "Play scanner-style feedback tones")
	logPathFlag := flag.String("logpath", "", "log directory path (default: OS-specific location, use ./ for current dir)")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	doctorFlag := flag.Bool("doctor", false, "Run input diagnostics and exit")
	flag.Usage = usage
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if *versionFlag {
		fmt.Printf("wedge %s\n", version)
		return 0
	}

	if *backendsFlag {
		for _, name := range keyboard.Names() {
			marker := ""
			if name == keyboard.Default() {
				marker = " (default)"
			}
			fmt.Printf("%s%s\n", name, marker)
		}
		return 0
	}

	// Resolve log directory early
	logPath, err := log.ResolveDir(*logPathFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to resolve log directory: %v\n", err)
		return 1
	}
	log.SetDir(logPath)

	if err := log.EnsureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
	}
	initCrashLog()

	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not init logging: %v\n", err)
	}
	defer log.Close()

	if *doctorFlag {
		name := *backendFlag
		if *dryRunFlag {
			name = "stdout"
		}
		return doctor.Run(name)
	}

	var prof *profile.Profile
	var watcher *profile.Watcher
	if *codesFlag != "" {
		if *hotkeyFlag && *codesFlag != "-" {
			watcher, err = profile.NewWatcher(*codesFlag)
			if err == nil {
				prof = watcher.Get()
			}
		} else {
			prof, err = profile.Load(*codesFlag)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	flags := jobFlags{
		backend:    *backendFlag,
		backendSet: explicit["backend"],
		initialMs:  *initialFlag,
		initialSet: explicit["initial"],
		itemMs:     *delayFlag,
		itemSet:    explicit["delay"],
		dryRun:     *dryRunFlag,
	}
	j, err := buildJob(prof, flag.Args(), flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if *formFlag {
		j, err = runForm(j)
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(os.Stderr, "Aborted.")
			return 1
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	b, err := keyboard.Lookup(j.Backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if !*beepFlag || j.Backend == "stdout" {
		beep.Disable()
	} else {
		beep.Init()
		defer beep.Wait()
	}

	useTUI := term.IsTerminal(int(os.Stdout.Fd())) && j.Backend != "stdout"
	if explicit["tui"] {
		useTUI = *tuiFlag
	}

	ctx, stop := shutdown.Context(context.Background())
	defer stop()

	fb := &feedback{beep: !beep.Disabled()}
	if !useTUI {
		fb.plain = os.Stderr
	}
	eng := inject.New(b, inject.WithObserver(fb))

	runOnce := func(ctx context.Context, j job) error {
		log.RunStart(log.Run{Backend: b.Name(), Count: len(j.Codes), InitialMs: j.InitialMs, ItemMs: j.ItemMs})
		start := time.Now()
		err := simulate(ctx, eng, j.Codes, j.InitialMs, j.ItemMs)
		fb.runDone(err, time.Since(start))
		return err
	}

	if *hotkeyFlag {
		return runResident(ctx, j, watcher, flags, useTUI, b.Name(), fb, runOnce)
	}

	if len(j.Codes) == 0 {
		log.Warn("nothing to inject")
		fmt.Fprintln(os.Stderr, "No codes given (use -codes, -form or positional arguments).")
		return 0
	}

	if !useTUI {
		fmt.Fprintf(os.Stderr, "Typing %d code(s) via %s in %v. Focus the target window.\n",
			len(j.Codes), b.Name(), millis(j.InitialMs))
		if err := runOnce(ctx, j); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	p := tea.NewProgram(newTUIModel(b.Name(), false), tea.WithContext(ctx))
	fb.send = p.Send

	errCh := make(chan error, 1)
	go func() { errCh <- runOnce(runCtx, j) }()

	final, tuiErr := p.Run()
	if m, ok := final.(tuiModel); !ok || m.quitting || tuiErr != nil {
		cancelRun()
	}
	if tuiErr != nil && !errors.Is(tuiErr, tea.ErrProgramKilled) {
		log.Errorf("TUI error: %v", tuiErr)
	}

	if err := <-errCh; err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// runResident replays the current job on every hotkey trigger until
// interrupted.
func runResident(ctx context.Context, j job, watcher *profile.Watcher, flags jobFlags,
	useTUI bool, backend string, fb *feedback, runOnce func(context.Context, job) error) int {
	hk := hotkey.New()
	if err := hk.Register(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not register hotkey: %v\n", err)
		return 1
	}
	defer hk.Unregister()

	trig := hotkey.NewTrigger(hk, holdToCancel)
	defer trig.Stop()

	var p *tea.Program
	status := func(s string) {
		if p != nil {
			p.Send(statusMsg{Text: s})
		} else {
			fmt.Fprintln(os.Stderr, s)
		}
	}
	if useTUI {
		p = tea.NewProgram(newTUIModel(backend, true), tea.WithContext(ctx))
		fb.send = p.Send
	}

	current := &currentJob{j: j}
	if watcher != nil {
		args := flag.Args()
		watcher.OnReload(func(prof *profile.Profile) {
			next, err := buildJob(prof, args, flags)
			if err != nil {
				log.Errorf("profile reload rejected: %v", err)
				status("reload rejected: " + err.Error())
				return
			}
			// The backend was chosen at startup
			next.Backend = current.get().Backend
			current.set(next)
			status(fmt.Sprintf("profile reloaded: %d code(s)", len(next.Codes)))
		})
		watcher.Start()
		defer watcher.Stop()
	} else if len(j.Codes) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no codes loaded; triggers will do nothing.")
	}

	log.Infof("resident: %d code(s) armed on %s", len(j.Codes), hotkey.Chord)
	armed := fmt.Sprintf("armed: %d code(s), press %s", len(j.Codes), hotkey.Chord)

	replay := func(ctx context.Context) {
		if err := runOnce(ctx, current.get()); err != nil {
			log.Errorf("run failed: %v", err)
			if p == nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
	}

	if p == nil {
		status(armed)
		serveHotkey(ctx, trig, status, replay)
		return 0
	}

	serveCtx, cancelServe := context.WithCancel(ctx)
	served := make(chan struct{})
	go func() {
		defer close(served)
		serveHotkey(serveCtx, trig, status, replay)
	}()
	go p.Send(statusMsg{Text: armed})

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Errorf("TUI error: %v", err)
	}
	cancelServe()
	<-served
	return 0
}

func initCrashLog() {
	crashPath := filepath.Join(log.Dir(), "crash_log.txt")
	crashFile, err := os.OpenFile(crashPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	fmt.Fprintf(crashFile, "\n=== Session %s [pid=%d] %s ===\n",
		time.Now().Format("2006-01-02 15:04:05"), os.Getpid(), strings.Join(os.Args[1:], " "))
	debug.SetCrashOutput(crashFile, debug.CrashOptions{})
}
