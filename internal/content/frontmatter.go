// Package content loads navigation items from a directory of markdown files
// with YAML frontmatter and watches it for changes.
package content

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNoFrontmatter is returned when a file does not start with a '---' fence
var ErrNoFrontmatter = errors.New("missing frontmatter: file must start with '---'")

// ParseFrontmatter splits a markdown file into its YAML frontmatter and body.
// Expected format:
// ---
// title: Blog
// type: collection
// order: 1
// ---
// # Markdown content here
func ParseFrontmatter(content []byte) (map[string]any, string, error) {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))

	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		return nil, string(content), ErrNoFrontmatter
	}

	lines := bytes.Split(content, []byte("\n"))

	// Find the closing delimiter, skipping the opening "---" line
	closingDelim := 0
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			closingDelim = i
			break
		}
	}
	if closingDelim == 0 {
		return nil, "", errors.New("missing closing frontmatter delimiter '---'")
	}

	yamlContent := bytes.Join(lines[1:closingDelim], []byte("\n"))

	var metadata map[string]any
	if err := yaml.Unmarshal(yamlContent, &metadata); err != nil {
		return nil, "", fmt.Errorf("failed to parse YAML frontmatter: %w", err)
	}
	if metadata == nil {
		metadata = map[string]any{}
	}

	body := string(bytes.Join(lines[closingDelim+1:], []byte("\n")))
	return metadata, body, nil
}
