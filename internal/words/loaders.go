package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Loader reads a raw word list. Normalization and alphabet filtering happen
// when the words are handed to NewLists/Build.
type Loader interface {
	Load() ([]string, error)
}

// FileLoader reads one word per line. Blank lines and lines starting with
// '#' are skipped. Encoding, if set, is decoded to UTF-8.
type FileLoader struct {
	Path     string
	Encoding encoding.Encoding
}

func (f FileLoader) Load() ([]string, error) {
	words, err := readWordFile(f.Path, f.Encoding)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoWordsFound, f.Path)
	}
	return words, nil
}

// MultiFileLoader reads the union of several files.
type MultiFileLoader struct {
	Paths    []string
	Encoding encoding.Encoding
}

func (m MultiFileLoader) Load() ([]string, error) {
	// Files are read in parallel; the union keeps path order.
	lists := make([][]string, len(m.Paths))
	var g errgroup.Group
	g.SetLimit(8)
	for i, p := range m.Paths {
		g.Go(func() error {
			words, err := readWordFile(p, m.Encoding)
			lists[i] = words
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var out []string
	for _, words := range lists {
		for _, w := range words {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoWordsFound
	}
	log.Debug().Int("files", len(m.Paths)).Int("words", len(out)).Msg("word files loaded")
	return out, nil
}

func readWordFile(path string, enc encoding.Encoding) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if enc != nil {
		r = enc.NewDecoder().Reader(f)
	}
	out, err := scanWords(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

// scanWords returns one trimmed word per line, skipping blank lines and
// '#' comments.
func scanWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// --------------------------------- SCOWL -----------------------------------

// ScowlLanguage picks the regional spelling lists.
type ScowlLanguage string

const (
	American   ScowlLanguage = "american"
	Australian ScowlLanguage = "australian"
	British    ScowlLanguage = "british"
	Canadian   ScowlLanguage = "canadian"
)

// ScowlSubcategory names a SCOWL list kind.
type ScowlSubcategory string

const (
	ScowlWords         ScowlSubcategory = "words"
	ScowlAbbreviations ScowlSubcategory = "abbreviations"
	ScowlContractions  ScowlSubcategory = "contractions"
	ScowlProperNames   ScowlSubcategory = "proper-names"
	ScowlUpper         ScowlSubcategory = "upper"
)

const (
	scowlCommonPrefix = "english"
	scowlMaxVariant   = 3
	scowlMaxSize      = 100
)

// ScowlLoader selects files from a SCOWL "final" directory. Files are named
// <category>-<subcategory>.<size>; every file up to MaxSize is read for the
// common English lists and the chosen language, variants 0..MaxVariants.
type ScowlLoader struct {
	Dir           string
	MaxSize       int
	Language      ScowlLanguage      // default British
	MaxVariants   int                // 0..3
	Subcategories []ScowlSubcategory // default words only
}

// Files resolves the list of files the loader will read.
func (s ScowlLoader) Files() ([]string, error) {
	if s.MaxSize <= 0 || s.MaxSize > scowlMaxSize {
		return nil, fmt.Errorf("scowl: max size must be between 1 and %d", scowlMaxSize)
	}
	if s.MaxVariants < 0 || s.MaxVariants > scowlMaxVariant {
		return nil, fmt.Errorf("scowl: max variant must be between 0 and %d", scowlMaxVariant)
	}
	lang := s.Language
	if lang == "" {
		lang = British
	}
	subs := s.Subcategories
	if len(subs) == 0 {
		subs = []ScowlSubcategory{ScowlWords}
	}

	var files []string
	for _, l := range []ScowlLanguage{"", lang} {
		for v := 0; v <= s.MaxVariants; v++ {
			category := scowlCategory(l, v)
			for _, sub := range subs {
				matches, err := filepath.Glob(filepath.Join(s.Dir, category+"-"+string(sub)+".*"))
				if err != nil {
					return nil, err
				}
				for _, m := range matches {
					size, err := strconv.Atoi(strings.TrimPrefix(filepath.Ext(m), "."))
					if err != nil || size > s.MaxSize {
						continue
					}
					if fi, err := os.Stat(m); err != nil || !fi.Mode().IsRegular() {
						continue
					}
					files = append(files, m)
				}
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func (s ScowlLoader) Load() ([]string, error) {
	files, err := s.Files()
	if err != nil {
		return nil, err
	}
	// SCOWL ships as ISO-8859-1.
	return MultiFileLoader{Paths: files, Encoding: charmap.ISO8859_1}.Load()
}

func scowlCategory(lang ScowlLanguage, variant int) string {
	name := string(lang)
	if lang == "" {
		name = scowlCommonPrefix
	}
	switch {
	case variant == 0:
		return name
	case lang == American:
		return fmt.Sprintf("variant_%d", variant)
	}
	return fmt.Sprintf("%s_variant_%d", name, variant)
}
