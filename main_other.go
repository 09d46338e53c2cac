//go:build !linux

package main

import (
	"os"
	"runtime"

	"golang.design/x/hotkey/mainthread"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	// Hotkey registration on macOS and Windows must happen on the main thread
	code := 0
	mainthread.Init(func() { code = run() })
	os.Exit(code)
}
