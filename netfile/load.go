// SPDX-License-Identifier: MIT

package netfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/bayesnet/network"
)

// Format identifies a network file format.
type Format int

const (
	// Text is the block format read by ParseText.
	Text Format = iota
	// YAML is the document format read by ParseYAML.
	YAML
)

// FormatOf picks the format from the file extension: .yaml and .yml are
// YAML, anything else is Text.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return Text
	}
}

// Load reads the network stored at path.
func Load(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}
	defer f.Close()

	var net *network.Network
	switch FormatOf(path) {
	case YAML:
		net, err = ParseYAML(f)
	default:
		net, err = ParseText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("Load(%q): %w", path, err)
	}

	return net, nil
}
