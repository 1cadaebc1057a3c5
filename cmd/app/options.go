package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/flipclock/internal/config"
	"github.com/akyairhashvil/flipclock/internal/database"
	"github.com/akyairhashvil/flipclock/internal/flip"
	"github.com/akyairhashvil/flipclock/internal/util"
)

// cliFlags holds the raw command line values and which of them were set.
type cliFlags struct {
	mode       string
	show       string
	size       int
	delay      time.Duration
	bg         string
	border     string
	theme      string
	preset     string
	configPath string
	dbPath     string
	version    bool
	set        map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (cliFlags, error) {
	var f cliFlags
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.mode, "mode", "", "transition style: plain, card, cube-v, cube-h")
	fs.StringVar(&f.show, "show", "", `"default" (clock), "count" (counter) or a countdown target like "2026-12-31 23:59"`)
	fs.IntVar(&f.size, "size", 0, fmt.Sprintf("digit width scale, 1-%d", config.MaxSize))
	fs.DurationVar(&f.delay, "delay", 0, "transition duration, at most 1s")
	fs.StringVar(&f.bg, "bg", "", "digit background colour")
	fs.StringVar(&f.border, "border", "", "frame border colour")
	fs.StringVar(&f.theme, "theme", "", "colour theme: default, dracula")
	fs.StringVar(&f.preset, "preset", "", "count down to a saved preset")
	fs.StringVar(&f.configPath, "config", filepath.Join(util.ConfigDir(config.AppName), config.ConfigFileName), "config file")
	fs.StringVar(&f.dbPath, "db", "", "preset database (default in the user data dir)")
	fs.BoolVar(&f.version, "version", false, "print the version and exit")
	if err := fs.Parse(args); err != nil {
		return f, err
	}
	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// resolved is the final configuration after merging every source.
type resolved struct {
	display flip.Options
	theme   string
	preset  string
}

// resolve merges flags over the config file over stored settings.
func resolve(ctx context.Context, db database.Repository, f cliFlags, file config.File) (resolved, error) {
	var r resolved
	pick := func(flagName, flagVal, fileVal, settingKey string) (string, error) {
		if f.set[flagName] {
			return flagVal, nil
		}
		if fileVal != "" {
			return fileVal, nil
		}
		if db == nil || settingKey == "" {
			return "", nil
		}
		v, _, err := db.GetSetting(ctx, settingKey)
		return v, err
	}

	mode, err := pick("mode", f.mode, file.Mode, config.SettingVariant)
	if err != nil {
		return r, err
	}
	variant, err := flip.ParseVariant(mode)
	if err != nil {
		return r, err
	}
	show, err := pick("show", f.show, file.Show, config.SettingShowType)
	if err != nil {
		return r, err
	}
	if r.theme, err = pick("theme", f.theme, file.Theme, config.SettingTheme); err != nil {
		return r, err
	}

	presetName := f.preset
	if presetName != "" {
		if db == nil {
			return r, fmt.Errorf("preset %q: no database", presetName)
		}
		p, err := db.GetPreset(ctx, presetName)
		if err != nil {
			return r, err
		}
		show = p.Target
		r.preset = p.Name
	}

	size := file.Size
	if f.set["size"] {
		size = f.size
	}
	if size != 0 && (size < 1 || size > config.MaxSize) {
		return r, fmt.Errorf("size %d out of range 1-%d", size, config.MaxSize)
	}
	delay := file.Delay
	if f.set["delay"] {
		delay = f.delay
	}
	bg, border := file.Background, file.BorderColor
	if f.set["bg"] {
		bg = f.bg
	}
	if f.set["border"] {
		border = f.border
	}

	r.display = flip.Options{
		Variant:    variant,
		ShowType:   show,
		Size:       size,
		Delay:      delay,
		Background: bg,
		Border:     border,
	}
	return r, nil
}
