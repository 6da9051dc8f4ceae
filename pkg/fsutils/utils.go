package fsutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder decodes
type Decoder interface {
	Decode(o interface{}) error
}

func ReadYAMLFile(filePath string, required bool, o interface{}) (err error) {
	return ReadFile(filePath, required, o, func(r io.Reader) Decoder {
		return yaml.NewDecoder(r)
	})
}

func ReadTOMLFile(filePath string, required bool, o interface{}) (err error) {
	return ReadFile(filePath, required, o, func(r io.Reader) Decoder {
		return toml.NewDecoder(r)
	})
}

var openFile = func(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// ReadFile decodes filePath into o. A missing optional file is not an error,
// neither is an empty one. A failure to close the file is returned.
func ReadFile(filePath string, required bool, o interface{}, newDecoder func(r io.Reader) Decoder) (err error) {
	var file io.ReadCloser
	if file, err = openFile(filePath); err != nil {
		if os.IsNotExist(err) && !required {
			err = nil
		}
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file %v: %w", filePath, closeErr)
		}
	}()
	decoder := newDecoder(file)
	if err = decoder.Decode(o); err != nil {
		if err == io.EOF {
			// empty file
			return nil
		}
		return err
	}
	return err
}

func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err // some other error
	}
	return info.IsDir(), nil
}

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}
