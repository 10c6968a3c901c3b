package tree

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmptySource is returned when a source holds no nodes.
var ErrEmptySource = errors.New("tree source has no nodes")

// yamlNode is the on-disk form of a node:
//
//	- title: Projects
//	  icon: "▣"
//	  expanded: true
//	  children:
//	    - title: Roadmap
//	      id: roadmap
type yamlNode struct {
	ID       string     `yaml:"id"`
	Title    string     `yaml:"title"`
	Icon     string     `yaml:"icon"`
	Folder   bool       `yaml:"folder"`
	Expanded *bool      `yaml:"expanded"`
	Children []yamlNode `yaml:"children"`
}

// Load reads a tree from a YAML file or a directory.
func Load(source string) ([]*Node, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("stat tree source: %w", err)
	}
	var roots []*Node
	if info.IsDir() {
		roots, err = LoadDir(source)
	} else {
		roots, err = LoadFile(source)
	}
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return nil, ErrEmptySource
	}
	return roots, nil
}

// LoadFile parses a YAML tree document.
func LoadFile(file string) ([]*Node, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read tree file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML sequence of nodes. Missing ids are derived from the
// title path; folders default to expanded.
func Parse(data []byte) ([]*Node, error) {
	var doc []yamlNode
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse tree yaml: %w", err)
	}
	roots := make([]*Node, 0, len(doc))
	for i := range doc {
		roots = append(roots, fromYAML(&doc[i], ""))
	}
	Link(roots)
	return roots, nil
}

func fromYAML(y *yamlNode, parentPath string) *Node {
	title := strings.TrimSpace(y.Title)
	if title == "" {
		title = "(untitled)"
	}
	nodePath := path.Join(parentPath, slug(title))
	id := strings.TrimSpace(y.ID)
	if id == "" {
		id = nodePath
	}
	n := &Node{
		ID:     id,
		Title:  title,
		Icon:   y.Icon,
		Folder: y.Folder,
	}
	for i := range y.Children {
		n.Children = append(n.Children, fromYAML(&y.Children[i], nodePath))
	}
	if y.Expanded != nil {
		n.Expanded = *y.Expanded
	} else {
		n.Expanded = n.IsFolder()
	}
	return n
}

func slug(title string) string {
	fields := strings.Fields(strings.ToLower(title))
	return strings.Join(fields, "-")
}

// LoadDir builds a tree from a directory: sub-directories become folders and
// files become notes. Dot entries are skipped. Top-level folders start
// expanded.
func LoadDir(dir string) ([]*Node, error) {
	roots, err := readDir(dir, "")
	if err != nil {
		return nil, err
	}
	for _, root := range roots {
		root.Expanded = root.IsFolder()
	}
	Link(roots)
	return roots, nil
}

func readDir(base, rel string) ([]*Node, error) {
	entries, err := os.ReadDir(filepath.Join(base, rel))
	if err != nil {
		return nil, fmt.Errorf("read tree directory: %w", err)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})
	nodes := make([]*Node, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		childRel := path.Join(filepath.ToSlash(rel), name)
		n := &Node{ID: childRel, Title: name, Folder: entry.IsDir()}
		if entry.IsDir() {
			children, err := readDir(base, childRel)
			if err != nil {
				return nil, err
			}
			n.Children = children
		} else {
			n.Title = strings.TrimSuffix(name, filepath.Ext(name))
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
