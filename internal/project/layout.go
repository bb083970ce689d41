package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DescriptorName is the file that marks a directory as a project root.
const DescriptorName = "Lemonfile"

// Layout names the files that make up a project.
type Layout struct {
	Descriptor string
	Starter    string
}

// Built-in layouts. The emoji layout is the default.
var (
	DefaultLayout = Layout{Descriptor: DescriptorName, Starter: "main.🍋"}
	PlainLayout   = Layout{Descriptor: DescriptorName, Starter: "main.lemon"}
)

var layouts = map[string]Layout{
	"emoji": DefaultLayout,
	"plain": PlainLayout,
}

// LayoutNames returns the names accepted by LayoutByName, sorted.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for n := range layouts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// LayoutByName returns a built-in layout. An empty name selects DefaultLayout.
func LayoutByName(name string) (Layout, error) {
	if name == "" {
		return DefaultLayout, nil
	}
	l, ok := layouts[name]
	if !ok {
		return Layout{}, fmt.Errorf("unknown layout %q: expected one of %s", name, strings.Join(LayoutNames(), ", "))
	}
	return l, nil
}

// Sentinel errors for project preconditions.
var (
	ErrDescriptorExists  = errors.New("descriptor already exists")
	ErrDescriptorMissing = errors.New("descriptor does not exist")
	ErrFileNotFound      = errors.New("file does not exist")
)

// DescriptorState describes the descriptor file in a directory.
type DescriptorState int

const (
	StateMissing DescriptorState = iota
	StateEmpty
	StatePresent
)

func (s DescriptorState) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateEmpty:
		return "empty"
	case StatePresent:
		return "present"
	default:
		return fmt.Sprintf("DescriptorState(%d)", int(s))
	}
}

// Inspect reports the state of the layout's descriptor in dir.
func Inspect(dir string, l Layout) (DescriptorState, error) {
	info, err := os.Stat(filepath.Join(dir, l.Descriptor))
	if errors.Is(err, os.ErrNotExist) {
		return StateMissing, nil
	}
	if err != nil {
		return StateMissing, fmt.Errorf("inspecting %s: %w", l.Descriptor, err)
	}
	if info.Size() == 0 {
		return StateEmpty, nil
	}
	return StatePresent, nil
}

// RequireDescriptor returns ErrDescriptorMissing when dir has no descriptor.
// An empty descriptor counts as present.
func RequireDescriptor(dir string, l Layout) error {
	state, err := Inspect(dir, l)
	if err != nil {
		return err
	}
	if state == StateMissing {
		return fmt.Errorf("%s: %w", l.Descriptor, ErrDescriptorMissing)
	}
	return nil
}

// RequireFile checks that name exists, resolving relative names against dir.
func RequireFile(dir, name string) error {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, name)
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", name, ErrFileNotFound)
		}
		return fmt.Errorf("checking %s: %w", name, err)
	}
	return nil
}
