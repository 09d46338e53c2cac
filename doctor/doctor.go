package doctor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"wedge/hotkey"
	"wedge/inject"
	"wedge/keyboard"
)

const countdown = 3

// Run executes interactive diagnostic checks against the named backend and
// returns an exit code (0=all pass, 1=any fail).
func Run(backendName string) int {
	resetTerminal()
	setupInterruptHandler()

	fmt.Println("wedge doctor - interactive input diagnostics")
	fmt.Println("============================================")

	if backendName == "" {
		backendName = keyboard.Default()
	}
	b, err := keyboard.Lookup(backendName)
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return 1
	}

	allPass := checkOpen(b)
	if allPass && !checkVerify(b.Name()) {
		allPass = false
	}
	if allPass && !checkTyping(b, bufio.NewReader(os.Stdin)) {
		allPass = false
	}

	fmt.Println()
	if msg, err := hotkey.Diagnose(); err != nil {
		fmt.Printf("note: hotkey mode unavailable: %v\n", err)
	} else {
		fmt.Printf("note: %s\n", msg)
	}

	fmt.Println()
	if allPass {
		fmt.Println("All checks passed!")
		return 0
	}
	fmt.Println("Some checks failed. See details above.")
	return 1
}

func checkOpen(b inject.Backend) bool {
	fmt.Println()
	fmt.Printf("[1/3] Input backend (%s)\n", b.Name())

	dev, err := b.Open()
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		if b.Name() == "uinput" {
			fmt.Println("  Fix with: sudo chmod 660 /dev/uinput && sudo chgrp input /dev/uinput")
		}
		return false
	}
	if err := dev.Close(); err != nil {
		fmt.Printf("  FAIL: release: %v\n", err)
		return false
	}

	fmt.Println("  PASS: device opened and released")
	return true
}

func checkVerify(name string) bool {
	fmt.Println()
	fmt.Println("[2/3] Keystroke delivery")

	msg, err := keyboard.Verify(name)
	if err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return false
	}

	fmt.Printf("  PASS: %s\n", msg)
	return true
}

func checkTyping(b inject.Backend, in *bufio.Reader) bool {
	fmt.Println()
	fmt.Println("[3/3] Typing into the focused window")

	code := testCode(time.Now())
	fmt.Printf("Focus a text field. Typing %q in %d seconds...\n", code, countdown)

	eng := inject.New(b)
	req := inject.Request{
		Items:        []string{code},
		InitialDelay: countdown * time.Second,
	}
	if err := eng.Run(context.Background(), req); err != nil {
		fmt.Printf("  FAIL: %v\n", err)
		return false
	}

	fmt.Print("Did the code appear followed by a new line? [y/N]: ")
	if !confirm(in) {
		fmt.Println("  FAIL: not confirmed")
		return false
	}
	fmt.Println("  PASS: typing confirmed")
	return true
}

// testCode is typable by every backend's key table.
func testCode(now time.Time) string {
	return fmt.Sprintf("WEDGE%04d", now.UnixNano()%10000)
}

func confirm(r io.Reader) bool {
	line, _ := bufio.NewReader(r).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
