package core

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Resolved is a snapshot of every logical field for display.
type Resolved struct {
	FilePath    string
	FileType    FileType
	Title       string
	Caption     string
	Copyright   string
	Description string
	Rating      *int
	Label       string
	Keywords    []string
}

// Resolve gathers all logical fields into one snapshot. A single read
// invocation backs the whole snapshot.
func (f *File) Resolve() (*Resolved, error) {
	if err := f.load(); err != nil {
		return nil, err
	}
	ft, err := f.FileType()
	if err != nil {
		return nil, err
	}
	keywords, err := ResolveKeywords(f.tags, CombineSources)
	if err != nil {
		return nil, err
	}
	return &Resolved{
		FilePath:    f.path,
		FileType:    ft,
		Title:       ResolveTitle(f.tags),
		Caption:     ResolveCaption(f.tags),
		Copyright:   ResolveCopyright(f.tags),
		Description: ResolveDescription(f.tags),
		Rating:      ResolveRating(f.tags),
		Label:       ResolveLabel(f.tags),
		Keywords:    keywords,
	}, nil
}

// Printer handles all display output for the CLI.
type Printer struct {
	JSON   bool
	Writer *os.File
}

// NewPrinter creates a default Printer writing to stdout.
func NewPrinter(jsonMode bool) *Printer {
	return &Printer{JSON: jsonMode, Writer: os.Stdout}
}

// PrintResolved renders a resolved view to the configured output.
func (p *Printer) PrintResolved(r *Resolved) {
	if p.JSON {
		p.printJSON(r)
		return
	}
	fmt.Fprintf(p.Writer, "File       : %s\n", r.FilePath)
	fmt.Fprintf(p.Writer, "Type       : %s\n", r.FileType)
	fmt.Fprintf(p.Writer, "Title      : %s\n", r.Title)
	fmt.Fprintf(p.Writer, "Caption    : %s\n", r.Caption)
	fmt.Fprintf(p.Writer, "Copyright  : %s\n", r.Copyright)
	fmt.Fprintf(p.Writer, "Description: %s\n", r.Description)
	rating := "-"
	if r.Rating != nil {
		rating = fmt.Sprint(*r.Rating)
	}
	fmt.Fprintf(p.Writer, "Rating     : %s\n", rating)
	fmt.Fprintf(p.Writer, "Label      : %s\n", r.Label)
	fmt.Fprintf(p.Writer, "Keywords   : %s\n", strings.Join(r.Keywords, ", "))
}

func (p *Printer) printJSON(r *Resolved) {
	out := struct {
		FilePath    string   `json:"file"`
		FileType    string   `json:"type"`
		Title       string   `json:"title"`
		Caption     string   `json:"caption"`
		Copyright   string   `json:"copyright"`
		Description string   `json:"description"`
		Rating      *int     `json:"rating"`
		Label       string   `json:"label"`
		Keywords    []string `json:"keywords"`
	}{
		FilePath:    r.FilePath,
		FileType:    string(r.FileType),
		Title:       r.Title,
		Caption:     r.Caption,
		Copyright:   r.Copyright,
		Description: r.Description,
		Rating:      r.Rating,
		Label:       r.Label,
		Keywords:    r.Keywords,
	}
	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Fprintln(p.Writer, string(b))
}

// PrintTags renders raw tag records grouped by container.
func (p *Printer) PrintTags(path string, tags []TagRecord) {
	fmt.Fprintf(p.Writer, "File: %s\n\n", path)
	if len(tags) == 0 {
		fmt.Fprintln(p.Writer, "(no metadata found)")
		return
	}

	groups := make(map[string][]TagRecord)
	var order []string
	seen := map[string]bool{}
	for _, t := range tags {
		if !seen[t.Container] {
			seen[t.Container] = true
			order = append(order, t.Container)
		}
		groups[t.Container] = append(groups[t.Container], t)
	}

	for _, c := range order {
		fmt.Fprintf(p.Writer, "── %s ──\n", c)
		for _, t := range groups[c] {
			fmt.Fprintf(p.Writer, "  %-30s %s\n", t.Name+":", t.Value)
		}
		fmt.Fprintln(p.Writer)
	}
}

// PrintSuccess prints a success message.
func (p *Printer) PrintSuccess(msg string) {
	fmt.Fprintln(p.Writer, "✓ "+msg)
}

// PrintError prints an error to stderr.
func PrintError(msg string) {
	fmt.Fprintln(os.Stderr, "✗ Error: "+msg)
}
