//go:build linux

package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/tinyrange/vadisplay/internal/config"
	"github.com/tinyrange/vadisplay/internal/display"
	"github.com/tinyrange/vadisplay/internal/dl"
	"github.com/tinyrange/vadisplay/internal/va"
)

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configPath := fs.String("config", "", "config file (default ~/.config/vadisplay/config.yaml)")
	backend := fs.String("backend", "", "display backend: x11, glx, drm or va")
	handle := fs.Uint64("handle", 0, "native handle to adopt instead of opening one")
	listProfiles := fs.Bool("profiles", false, "list the decode profiles the driver supports")
	verbose := fs.Bool("v", false, "debug logging")

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backend
		case "handle":
			cfg.Handle = *handle
		case "v":
			if *verbose {
				cfg.LogLevel = "debug"
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	dl.SetLogger(logger)

	req, err := cfg.Request()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	rt := va.Load()
	mgr := display.New(
		display.WithRuntime(rt),
		display.WithLogger(logger),
		display.WithEGLQuery(func() bool { return cfg.UsesEGL(os.Getenv) }),
	)

	d, err := mgr.Create(req)
	if err != nil {
		log.Fatalf("create %s display: %v", req.Type, err)
	}
	defer d.Release()

	major, minor := d.Version()
	fmt.Printf("backend:        %s\n", d.Type())
	fmt.Printf("va-api version: %d.%d\n", major, minor)
	if vendor := rt.VendorString(d.VADisplay()); vendor != "" {
		fmt.Printf("driver:         %s\n", vendor)
	}

	if !*listProfiles {
		return
	}
	profiles, err := rt.Profiles(d.VADisplay())
	if err != nil {
		slog.Warn("query profiles", "err", err)
		return
	}
	fmt.Println("profiles:")
	for _, p := range profiles {
		name := p.String()
		if name == "" {
			name = fmt.Sprintf("VAProfile(%d)", int32(p))
		}
		fmt.Printf("  %s\n", name)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}
