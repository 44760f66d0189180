// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command easel is a desktop painting program built on the easel engine.
//
// Usage:
//
//	easel [flags] [image]
//
// Flags default to the EASEL_* environment variables, which may also be set
// in a .env file in the working directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gogpu/easel"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "easel:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if err := loadEnv(".env"); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	cfg, err := parseConfig(args, os.Getenv, os.Stderr)
	if err != nil {
		return err
	}
	easel.SetLogger(newLogger(os.Stderr, cfg.logLevel))

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.windowW), int32(cfg.windowH), "Easel")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyNull)

	a, err := newApp(cfg, rl.GetScreenWidth(), rl.GetScreenHeight())
	if err != nil {
		return err
	}
	defer a.close()

	easel.Logger().Info("easel: started", "version", easel.Version)
	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}
	return nil
}
