package words

import (
	"sync"

	"github.com/robalobadob/wordall/assets"
)

var (
	defaultOnce  sync.Once
	defaultLists *Lists
	defaultErr   error
)

// Default returns the embedded five-letter lists. They are parsed once and
// shared; Lists is read-only so sharing is safe.
func Default() (*Lists, error) {
	defaultOnce.Do(func() {
		ans, err := embedded(assets.AnswersFile)
		if err != nil {
			defaultErr = err
			return
		}
		all, err := embedded(assets.AllowedFile)
		if err != nil {
			defaultErr = err
			return
		}
		defaultLists, defaultErr = Build(ans, all, Letters)
	})
	return defaultLists, defaultErr
}

func embedded(name string) ([]string, error) {
	f, err := assets.FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scanWords(f)
}

// FromFiles loads answers and allowed guesses from two files. An empty
// allowedPath means the answers double as the allowed list.
func FromFiles(answersPath, allowedPath string, alphabet Alphabet) (*Lists, error) {
	ans, err := FileLoader{Path: answersPath}.Load()
	if err != nil {
		return nil, err
	}
	var all []string
	if allowedPath != "" {
		if all, err = (FileLoader{Path: allowedPath}).Load(); err != nil {
			return nil, err
		}
	}
	return Build(ans, all, alphabet)
}

// FromLoader uses one loader for both lists, the way a single dictionary
// file or a SCOWL selection is played.
func FromLoader(l Loader, alphabet Alphabet) (*Lists, error) {
	ws, err := l.Load()
	if err != nil {
		return nil, err
	}
	return Build(ws, nil, alphabet)
}
