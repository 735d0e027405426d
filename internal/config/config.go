// Package config gathers game settings from the environment (.env via
// godotenv), an optional YAML file of variant presets, and command-line
// overrides, and turns them into game.Options.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordall/internal/daily"
	"github.com/robalobadob/wordall/internal/game"
	"github.com/robalobadob/wordall/internal/words"
)

var (
	ErrUnknownVariant = errors.New("unknown variant")
	ErrInvalidConfig  = errors.New("invalid config")
)

// Variant is a named preset of board count, guess budget and word length.
type Variant struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	WordLength  int    `yaml:"word_length"`
	Boards      int    `yaml:"boards"`
	MaxGuesses  int    `yaml:"max_guesses"`
	// Digits plays with numbers instead of letters.
	Digits bool `yaml:"digits,omitempty"`
}

// Validate rejects presets no round can be built from.
func (v Variant) Validate() error {
	switch {
	case v.Name == "":
		return fmt.Errorf("%w: variant without a name", ErrInvalidConfig)
	case v.WordLength <= 0:
		return fmt.Errorf("%w: %s: word_length must be positive", ErrInvalidConfig, v.Name)
	case v.Boards <= 0:
		return fmt.Errorf("%w: %s: boards must be positive", ErrInvalidConfig, v.Name)
	case v.MaxGuesses <= 0:
		return fmt.Errorf("%w: %s: max_guesses must be positive", ErrInvalidConfig, v.Name)
	case v.Digits && v.WordLength > words.DefaultMaxDigits:
		return fmt.Errorf("%w: %s: at most %d digits", ErrInvalidConfig, v.Name, words.DefaultMaxDigits)
	}
	return nil
}

// Builtins returns the stock presets.
func Builtins() []Variant {
	return []Variant{
		{Name: "wordle", Description: "one board, six guesses", WordLength: 5, Boards: 1, MaxGuesses: 6},
		{Name: "quordle", Description: "four boards at once", WordLength: 5, Boards: 4, MaxGuesses: 9},
		{Name: "octordle", Description: "eight boards at once", WordLength: 5, Boards: 8, MaxGuesses: 13},
		{Name: "numberle", Description: "guess a five-digit number", WordLength: 5, Boards: 1, MaxGuesses: 5, Digits: true},
	}
}

type variantsFile struct {
	Variants []Variant `yaml:"variants"`
}

// LoadVariants reads presets from a YAML file of the form
//
//	variants:
//	  - name: duotrigordle
//	    word_length: 5
//	    boards: 32
//	    max_guesses: 37
func LoadVariants(path string) ([]Variant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read variants: %w", err)
	}
	var f variantsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse variants %s: %w", path, err)
	}
	for i := range f.Variants {
		f.Variants[i].Name = strings.ToLower(strings.TrimSpace(f.Variants[i].Name))
		if err := f.Variants[i].Validate(); err != nil {
			return nil, err
		}
	}
	return f.Variants, nil
}

// MergeVariants returns base with extra applied on top: same-named presets
// are replaced in place, new ones are appended.
func MergeVariants(base, extra []Variant) []Variant {
	out := append([]Variant(nil), base...)
	idx := make(map[string]int, len(out))
	for i, v := range out {
		idx[v.Name] = i
	}
	for _, v := range extra {
		if i, ok := idx[v.Name]; ok {
			out[i] = v
			continue
		}
		idx[v.Name] = len(out)
		out = append(out, v)
	}
	return out
}

// Config is everything needed to start a session. Zero sizes mean "take it
// from the variant".
type Config struct {
	Variant      string
	VariantsFile string
	WordLength   int
	Boards       int
	MaxGuesses   int

	Seed    uint64
	HasSeed bool
	Daily   bool
	Salt    string

	AnswersFile string
	AllowedFile string
	ScowlDir    string
	ScowlSize   int
	SQLite      string

	LogLevel string
	LogFile  string
}

// Load reads .env if present, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from environment variables.
func FromEnv() (Config, error) {
	c := Config{
		Variant:      getEnv("WORDALL_VARIANT", "wordle"),
		VariantsFile: os.Getenv("WORDALL_VARIANTS_FILE"),
		Salt:         getEnv("DAILY_SALT", "local_dev_salt"),
		AnswersFile:  os.Getenv("WORDS_ANSWERS_FILE"),
		AllowedFile:  os.Getenv("WORDS_ALLOWED_FILE"),
		ScowlDir:     os.Getenv("WORDS_SCOWL_DIR"),
		SQLite:       os.Getenv("WORDS_SQLITE"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      os.Getenv("LOG_FILE"),
	}
	var err error
	if c.WordLength, err = getEnvInt("WORDALL_WORD_LENGTH", 0); err != nil {
		return c, err
	}
	if c.Boards, err = getEnvInt("WORDALL_BOARDS", 0); err != nil {
		return c, err
	}
	if c.MaxGuesses, err = getEnvInt("WORDALL_MAX_GUESSES", 0); err != nil {
		return c, err
	}
	if c.ScowlSize, err = getEnvInt("WORDS_SCOWL_SIZE", 50); err != nil {
		return c, err
	}
	if s := os.Getenv("WORDALL_SEED"); s != "" {
		if c.Seed, err = strconv.ParseUint(s, 10, 64); err != nil {
			return c, fmt.Errorf("%w: WORDALL_SEED: %v", ErrInvalidConfig, err)
		}
		c.HasSeed = true
	}
	return c, nil
}

// Validate rejects negative overrides and conflicting word sources.
func (c Config) Validate() error {
	if c.WordLength < 0 || c.Boards < 0 || c.MaxGuesses < 0 {
		return fmt.Errorf("%w: sizes must not be negative", ErrInvalidConfig)
	}
	if c.Daily && c.HasSeed {
		return fmt.Errorf("%w: --daily and --seed are exclusive", ErrInvalidConfig)
	}
	if c.AllowedFile != "" && c.AnswersFile == "" {
		return fmt.Errorf("%w: allowed list given without answers", ErrInvalidConfig)
	}
	return nil
}

// Variants returns the built-in presets merged with VariantsFile, if set.
func (c Config) Variants() ([]Variant, error) {
	vs := Builtins()
	if c.VariantsFile == "" {
		return vs, nil
	}
	extra, err := LoadVariants(c.VariantsFile)
	if err != nil {
		return nil, err
	}
	return MergeVariants(vs, extra), nil
}

// Resolve finds the configured variant and applies the size overrides.
func (c Config) Resolve() (Variant, error) {
	if err := c.Validate(); err != nil {
		return Variant{}, err
	}
	vs, err := c.Variants()
	if err != nil {
		return Variant{}, err
	}
	name := strings.ToLower(strings.TrimSpace(c.Variant))
	for _, v := range vs {
		if v.Name != name {
			continue
		}
		if c.WordLength > 0 {
			v.WordLength = c.WordLength
		}
		if c.Boards > 0 {
			v.Boards = c.Boards
		}
		if c.MaxGuesses > 0 {
			v.MaxGuesses = c.MaxGuesses
		}
		return v, v.Validate()
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, c.Variant)
}

// Source picks the word source: SQLite store, then SCOWL, then plain files,
// then digits for numeric variants, then the embedded lists.
func (c Config) Source(ctx context.Context, v Variant) (game.Source, error) {
	alphabet := words.Letters
	if v.Digits {
		alphabet = words.Numbers
	}
	switch {
	case c.SQLite != "":
		st, err := words.OpenSQLite(c.SQLite)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return st.Source(ctx, alphabet)
	case c.ScowlDir != "":
		return words.FromLoader(words.ScowlLoader{Dir: c.ScowlDir, MaxSize: c.ScowlSize}, alphabet)
	case c.AnswersFile != "":
		return words.FromFiles(c.AnswersFile, c.AllowedFile, alphabet)
	case v.Digits:
		return words.Digits{}, nil
	}
	return words.Default()
}

// Picker returns the secret picker: date-keyed for daily play, seeded when
// a seed is set, otherwise crypto/rand.
func (c Config) Picker(now time.Time) game.Picker {
	switch {
	case c.Daily:
		return daily.Picker(now, c.Salt)
	case c.HasSeed:
		return game.NewRandPicker(c.Seed)
	}
	return game.NewCryptoPicker()
}

// Options resolves the variant, opens the source and fills game.Options.
func (c Config) Options(ctx context.Context, now time.Time) (game.Options, Variant, error) {
	v, err := c.Resolve()
	if err != nil {
		return game.Options{}, v, err
	}
	src, err := c.Source(ctx, v)
	if err != nil {
		return game.Options{}, v, fmt.Errorf("word source: %w", err)
	}
	return game.Options{
		WordLength: v.WordLength,
		BoardCount: v.Boards,
		MaxGuesses: v.MaxGuesses,
		Source:     src,
		Picker:     c.Picker(now),
	}, v, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, k, err)
	}
	return n, nil
}
