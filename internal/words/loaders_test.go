package words

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestFileLoaderSkipsBlankAndComments(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "dict.txt", "\nAPPLE\n# comment\n  bread  \n\nCHIPS\n")

	got, err := FileLoader{Path: p}.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"APPLE", "bread", "CHIPS"}, got)
}

func TestFileLoaderErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := FileLoader{Path: filepath.Join(dir, "missing.txt")}.Load()
	assert.Error(t, err)

	empty := writeFile(t, dir, "empty.txt", "\n# nothing\n")
	_, err = FileLoader{Path: empty}.Load()
	assert.ErrorIs(t, err, ErrNoWordsFound)
}

func TestMultiFileLoaderUnion(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "apple\nbread\n")
	b := writeFile(t, dir, "b.txt", "bread\nchips\n")

	got, err := MultiFileLoader{Paths: []string{a, b}}.Load()
	require.NoError(t, err)
	sort.Strings(got)
	assert.Equal(t, []string{"apple", "bread", "chips"}, got)

	_, err = MultiFileLoader{}.Load()
	assert.ErrorIs(t, err, ErrNoWordsFound)
}

func TestFromFiles(t *testing.T) {
	dir := t.TempDir()
	ans := writeFile(t, dir, "answers.txt", "apple\nbread\n")
	all := writeFile(t, dir, "allowed.txt", "grape\n")

	l, err := FromFiles(ans, all, Letters)
	require.NoError(t, err)
	assert.True(t, l.IsValidGuess("grape", 5))
	assert.Len(t, l.SecretCandidates(5), 2)

	l, err = FromFiles(ans, "", Letters)
	require.NoError(t, err)
	assert.False(t, l.IsValidGuess("grape", 5))
}

func TestScowlCategoryNames(t *testing.T) {
	cases := []struct {
		lang    ScowlLanguage
		variant int
		want    string
	}{
		{"", 0, "english"},
		{"", 2, "english_variant_2"},
		{British, 0, "british"},
		{British, 1, "british_variant_1"},
		{American, 0, "american"},
		{American, 3, "variant_3"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, scowlCategory(tc.lang, tc.variant))
	}
}

func TestScowlLoaderSelectsFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "english-words.10", "apple\n")
	writeFile(t, dir, "english-words.80", "zymic\n")
	writeFile(t, dir, "british-words.35", "flavour\n")
	writeFile(t, dir, "british_variant_1-words.50", "encyclopaedia\n")
	writeFile(t, dir, "american-words.10", "color\n")
	writeFile(t, dir, "english-proper-names.10", "Paris\n")
	writeFile(t, dir, "english-words.README", "not a list\n")
	// "caf\xe9" is café in ISO-8859-1.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "english-words.20"), []byte("caf\xe9\n"), 0o644))

	l := ScowlLoader{Dir: dir, MaxSize: 50, MaxVariants: 1}
	files, err := l.Files()
	require.NoError(t, err)
	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{
		"british-words.35",
		"british_variant_1-words.50",
		"english-words.10",
		"english-words.20",
	}, names)

	got, err := l.Load()
	require.NoError(t, err)
	sort.Strings(got)
	assert.Equal(t, []string{"apple", "café", "encyclopaedia", "flavour"}, got)
}

func TestScowlLoaderValidation(t *testing.T) {
	_, err := ScowlLoader{Dir: t.TempDir(), MaxSize: 0}.Files()
	assert.Error(t, err)
	_, err = ScowlLoader{Dir: t.TempDir(), MaxSize: 101}.Files()
	assert.Error(t, err)
	_, err = ScowlLoader{Dir: t.TempDir(), MaxSize: 50, MaxVariants: 4}.Files()
	assert.Error(t, err)

	_, err = ScowlLoader{Dir: t.TempDir(), MaxSize: 50}.Load()
	assert.ErrorIs(t, err, ErrNoWordsFound)
}

func TestScowlWithSubcategoriesAndLanguage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "english-words.10", "apple\n")
	writeFile(t, dir, "english-proper-names.10", "Paris\n")
	writeFile(t, dir, "american-words.10", "color\n")

	l, err := FromLoader(ScowlLoader{
		Dir:           dir,
		MaxSize:       10,
		Language:      American,
		Subcategories: []ScowlSubcategory{ScowlWords, ScowlProperNames},
	}, Letters)
	require.NoError(t, err)
	assert.True(t, l.IsValidGuess("paris", 5))
	assert.True(t, l.IsValidGuess("color", 5))
	assert.True(t, l.IsValidGuess("apple", 5))
}
