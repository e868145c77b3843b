package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/time/rate"
)

// Stats counts tokens as they pass through each stage of a run.
type Stats struct {
	Files   int
	Skipped int
	Bytes   uint64
	Matches int
	Kinds   map[Kind]int
	Corpus  int
	Split   int
	InRange int
	Valid   int
	Cleaned int
	Written int
}

// Harvester runs the extraction pipeline over the inputs of one directory.
type Harvester struct {
	Config  Config
	Out     io.Writer
	Corpus  map[string]struct{}
	Results []string
	Stats   Stats

	extractor Extractor
	splitter  Splitter
	progress  rate.Sometimes
}

// New creates a Harvester for cfg writing console lines to stdout.
func New(cfg Config) *Harvester {
	return &Harvester{
		Config:    cfg,
		Out:       os.Stdout,
		Corpus:    make(map[string]struct{}),
		Stats:     Stats{Kinds: make(map[Kind]int)},
		extractor: Extractor{SupplementalHarvest: cfg.SupplementalHarvest},
		splitter:  Splitter{SplitBareSlashTokens: cfg.SplitBareSlashTokens},
		progress:  rate.Sometimes{First: 1, Interval: 500 * time.Millisecond},
	}
}

// Start scans every input file into the corpus and refines it into
// Results. The first unreadable file aborts the run.
func (h *Harvester) Start() error {
	files, err := h.discover()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(h.Out, "[%s] no files matching %s in %s\n", color.YellowString("WRN"), h.Config.Pattern, h.Config.Dir)
	}

	for i, path := range files {
		if err := h.scanFile(path); err != nil {
			return err
		}
		h.progress.Do(func() {
			fmt.Fprintf(h.Out, "[%s] scanned %d/%d files\n", color.BlueString("INF"), i+1, len(files))
		})
	}

	corpus := make([]string, 0, len(h.Corpus))
	for tok := range h.Corpus {
		corpus = append(corpus, tok)
	}
	slices.Sort(corpus)
	h.Stats.Corpus = len(corpus)

	h.Results = h.Process(corpus)
	return nil
}

func (h *Harvester) discover() ([]string, error) {
	entries, err := os.ReadDir(h.Config.Dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", h.Config.Dir, err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		ok, err := filepath.Match(h.Config.Pattern, name)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", h.Config.Pattern, err)
		}
		if !ok {
			continue
		}
		if entry.IsDir() {
			fmt.Fprintf(h.Out, "[%s] skipping directory %s\n", color.YellowString("WRN"), name)
			h.Stats.Skipped++
			continue
		}
		files = append(files, filepath.Join(h.Config.Dir, name))
	}
	return files, nil
}

func (h *Harvester) scanFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	h.Stats.Files++
	h.Stats.Bytes += uint64(len(raw))

	matches := h.extractor.Matches(decodeText(raw))
	h.Stats.Matches += len(matches)
	for _, m := range matches {
		h.Stats.Kinds[m.Kind]++
		h.Corpus[m.Value] = struct{}{}
	}

	fmt.Fprintf(h.Out, "[%s] %s (%s, %s matches)\n", color.CyanString("XML"), path,
		humanize.Bytes(uint64(len(raw))), humanize.Comma(int64(len(matches))))
	return nil
}

// Process applies split, length filter, validation and cleanup in that
// order, then de-duplicates and sorts the survivors.
func (h *Harvester) Process(corpus []string) []string {
	split := h.splitter.SplitAll(corpus)
	h.Stats.Split = len(split)

	inRange := FilterLength(split, MaxTokenLength)
	h.Stats.InRange = len(inRange)

	valid := ValidateAll(inRange)
	h.Stats.Valid = len(valid)

	cleaned := Cleanup(valid)
	h.Stats.Cleaned = len(cleaned)

	return SortTokens(cleaned)
}

// SortTokens returns the distinct tokens ordered by length, then text.
func SortTokens(tokens []string) []string {
	out := slices.Clone(tokens)
	slices.SortFunc(out, compareTokens)
	return slices.Compact(out)
}

func compareTokens(a, b string) int {
	if c := cmp.Compare(utf8.RuneCountInString(a), utf8.RuneCountInString(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// OutputPath is the output file, resolved against Dir when relative.
func (h *Harvester) OutputPath() string {
	if filepath.IsAbs(h.Config.OutputPath) {
		return h.Config.OutputPath
	}
	return filepath.Join(h.Config.Dir, h.Config.OutputPath)
}

// SaveText writes Results one per line, replacing any previous output.
func (h *Harvester) SaveText() error {
	path := h.OutputPath()
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, tok := range h.Results {
		w.WriteString(tok)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	h.Stats.Written = len(h.Results)

	fmt.Fprintf(h.Out, "[%s] wrote %s tokens to %s\n", color.GreenString("OUT"), humanize.Comma(int64(len(h.Results))), path)
	return file.Close()
}
