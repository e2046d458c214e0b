// This file is part of Gopherbrick.
//
// Gopherbrick is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherbrick is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherbrick.  If not, see <https://www.gnu.org/licenses/>.

package device

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Decode a .brick JSON document. The returned configuration has been
// validated.
func Decode(r io.Reader) (*Config, error) {
	var cfg Config

	dec := json.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// the name of the button is the key of the buttons map
	for name, b := range cfg.Buttons {
		b.Name = name
		cfg.Buttons[name] = b
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Bundle is a decoded configuration and the binary data it refers to.
type Bundle struct {
	Config   *Config
	ROM      []uint8
	SoundROM []uint8
}

// Load a .brick file and the ROM files it refers to. ROM paths are resolved
// relative to the directory containing the .brick file. If the path as given
// does not exist then the base name of the path is tried.
func Load(filename string) (*Bundle, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("device: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, err
	}

	bnd := &Bundle{Config: cfg}
	dir := filepath.Dir(filename)

	bnd.ROM, err = resolve(dir, cfg.Mask.ROMPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingROM, err)
	}

	if cfg.Mask.SoundROMPath != "" {
		bnd.SoundROM, err = resolve(dir, cfg.Mask.SoundROMPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMissingSoundROM, err)
		}
	}

	return bnd, nil
}

func resolve(dir string, path string) ([]uint8, error) {
	if path == "" {
		return nil, fmt.Errorf("no path specified")
	}

	candidates := []string{
		filepath.Join(dir, filepath.FromSlash(path)),
		filepath.Join(dir, filepath.Base(filepath.FromSlash(path))),
	}
	if filepath.IsAbs(path) {
		candidates = append([]string{path}, candidates...)
	}

	var err error
	for _, c := range candidates {
		var d []uint8
		d, err = os.ReadFile(c)
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	return nil, err
}
