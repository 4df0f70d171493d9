package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ankit-chaubey/media-tag-surgery/core"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := core.Load()
	if err != nil {
		core.PrintError(err.Error())
		os.Exit(1)
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}

	switch os.Args[1] {
	case "view":
		err = runView(cfg, os.Args[2:])
	case "update":
		err = runUpdate(cfg, os.Args[2:])
	case "stamp":
		err = runStamp(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		core.PrintError(err.Error())
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  surgery view   <file> [-json] [-raw]
  surgery update <file> [-title T] [-caption C] [-copyright C] [-description D]
                        [-rating N] [-label L] [-keywords "a,b"]
                        [-delete-other] [-force]
  surgery stamp  <file> <RFC3339-time>`)
}

func openFile(cfg *core.Config, path string) (*core.File, error) {
	return core.NewFile(path, core.NewToolRunner(cfg), cfg.ExtraReadFlags...)
}

func runView(cfg *core.Config, argv []string) error {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	jsonMode := fs.Bool("json", false, "output as JSON")
	raw := fs.Bool("raw", false, "dump raw tag records instead of resolved fields")
	if err := fs.Parse(skipPath(argv)); err != nil {
		return err
	}
	path, err := pathArg(argv)
	if err != nil {
		return err
	}

	f, err := openFile(cfg, path)
	if err != nil {
		return err
	}
	p := core.NewPrinter(*jsonMode)

	if *raw {
		tags, err := f.Tags()
		if err != nil {
			return err
		}
		p.PrintTags(path, tags)
		return nil
	}

	r, err := f.Resolve()
	if err != nil {
		return err
	}
	p.PrintResolved(r)
	return nil
}

func runUpdate(cfg *core.Config, argv []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	title := fs.String("title", "", "new title")
	caption := fs.String("caption", "", "new caption")
	copyright := fs.String("copyright", "", "new copyright notice")
	description := fs.String("description", "", "new description")
	rating := fs.Int("rating", -1, "new rating (0 or greater)")
	label := fs.String("label", "", "new color label")
	keywords := fs.String("keywords", "", "comma-separated keywords")
	deleteOther := fs.Bool("delete-other", false, "clear all existing tags first")
	force := fs.Bool("force", false, "write every given field even when unchanged")
	if err := fs.Parse(skipPath(argv)); err != nil {
		return err
	}
	path, err := pathArg(argv)
	if err != nil {
		return err
	}

	req := core.UpdateRequest{
		DeleteOtherTags: *deleteOther,
		Force:           *force,
	}
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "title":
			req.Title = core.Str(*title)
		case "caption":
			req.Caption = core.Str(*caption)
		case "copyright":
			req.Copyright = core.Str(*copyright)
		case "description":
			req.Description = core.Str(*description)
		case "rating":
			req.Rating = core.Int(*rating)
		case "label":
			req.Label = core.Str(*label)
		case "keywords":
			kw := core.NormalizeKeywords(splitCommas(*keywords))
			if kw == nil {
				kw = []string{} // explicit empty set clears keywords
			}
			req.Keywords = kw
		}
	})

	f, err := openFile(cfg, path)
	if err != nil {
		return err
	}
	if err := f.Update(req); err != nil {
		return err
	}
	core.NewPrinter(false).PrintSuccess("updated " + path)
	return nil
}

func runStamp(argv []string) error {
	if len(argv) < 2 {
		return fmt.Errorf("stamp needs a file and an RFC3339 time")
	}
	t, err := time.Parse(time.RFC3339, argv[1])
	if err != nil {
		return fmt.Errorf("parse time %q: %w", argv[1], err)
	}
	if err := core.SetFileTimes(argv[0], t); err != nil {
		return err
	}
	core.NewPrinter(false).PrintSuccess("stamped " + argv[0])
	return nil
}

// pathArg returns the file path, which is the first non-flag argument.
func pathArg(argv []string) (string, error) {
	if len(argv) == 0 || len(argv[0]) == 0 || argv[0][0] == '-' {
		return "", fmt.Errorf("missing file path")
	}
	return argv[0], nil
}

// skipPath strips the leading path so the rest parses as flags.
func skipPath(argv []string) []string {
	if len(argv) > 0 && len(argv[0]) > 0 && argv[0][0] != '-' {
		return argv[1:]
	}
	return argv
}

func splitCommas(s string) []string {
	return strings.Split(s, ",")
}
