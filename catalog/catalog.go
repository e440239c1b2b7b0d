// Package catalog provides a read-only view over a loaded profile's color
// spaces, roles, displays and views, with the defaulting heuristics the
// display pipeline relies on.
package catalog

import (
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/kpfaulkner/ocio-go/config"
	"github.com/kpfaulkner/ocio-go/util"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// Catalog wraps an immutable config. The only mutable state is the pair of
// lazily filled default display/view caches; each has its own lock, held
// only for the first computation per key and for reads after that.
type Catalog struct {
	cfg *config.Config

	displayMu     sync.Mutex
	activeDisplay string

	viewMu       sync.Mutex
	defaultViews map[string]string
}

func NewCatalog(cfg *config.Config) *Catalog {
	return &Catalog{
		cfg:          cfg,
		defaultViews: make(map[string]string),
	}
}

func (c *Catalog) Config() *config.Config {
	return c.cfg
}

func (c *Catalog) NumColorSpaces() int {
	return c.cfg.NumColorSpaces()
}

func (c *Catalog) ColorSpaceNameByIndex(index int) (string, error) {
	if index < 0 || index >= c.cfg.NumColorSpaces() {
		return "", ErrIndexOutOfRange
	}
	return c.cfg.ColorSpaceNameByIndex(index), nil
}

// ColorSpace returns nil on a miss; misses are expected on hot paths and
// are not logged.
func (c *Catalog) ColorSpace(name string) *config.ColorSpace {
	return c.cfg.ColorSpace(name)
}

func (c *Catalog) IndexForColorSpace(name string) int {
	return c.cfg.IndexForColorSpace(name)
}

func (c *Catalog) HasRole(role string) bool {
	return c.cfg.HasRole(role)
}

func (c *Catalog) DefaultLumaCoefs() [3]float32 {
	return c.cfg.DefaultLumaCoefs()
}

func (c *Catalog) NumDisplays() int {
	return c.cfg.NumDisplays()
}

func (c *Catalog) DisplayByIndex(index int) string {
	return c.cfg.DisplayByIndex(index)
}

func (c *Catalog) NumViews(display string) int {
	return c.cfg.NumViews(display)
}

func (c *Catalog) ViewByIndex(display string, index int) string {
	return c.cfg.ViewByIndex(display, index)
}

func (c *Catalog) DisplayColorSpaceName(display string, view string) string {
	return c.cfg.DisplayColorSpaceName(display, view)
}

func (c *Catalog) NumLooks() int {
	return c.cfg.NumLooks()
}

func (c *Catalog) LookNameByIndex(index int) string {
	return c.cfg.LookNameByIndex(index)
}

// DefaultDisplay returns the first entry of the profile's active_displays
// list. Naive per-call resolution picks the alphabetically first active
// display instead of the first listed one, so the list is consulted here
// directly; the choice is cached once since the config never changes for
// the life of the process. An environment override disables this and
// defers to the profile's own resolution.
func (c *Catalog) DefaultDisplay() string {
	if os.Getenv(config.EnvActiveDisplays) == "" {
		activeDisplays := c.cfg.ActiveDisplays
		if activeDisplays != "" {
			c.displayMu.Lock()
			if c.activeDisplay == "" {
				if tokens := util.SplitEnvStyle(activeDisplays); len(tokens) > 0 {
					c.activeDisplay = tokens[0]
				}
			}
			display := c.activeDisplay
			c.displayMu.Unlock()
			if display != "" {
				return display
			}
		}
	}

	return c.cfg.DefaultDisplay()
}

// DefaultView returns the first entry of the profile's active_views list
// that the display actually supports, matched case-insensitively. The
// result is cached per display under a lock, for the same reason as
// DefaultDisplay. An environment override, an empty active list or no
// matching view defer to the profile's own resolution.
func (c *Catalog) DefaultView(display string) string {
	if os.Getenv(config.EnvActiveViews) == "" {
		activeViews := c.cfg.ActiveViews
		if activeViews != "" {
			displayLower := strings.ToLower(display)

			c.viewMu.Lock()
			if view, ok := c.defaultViews[displayLower]; ok {
				c.viewMu.Unlock()
				return view
			}

			supported := make(map[string]bool)
			numViews := c.cfg.NumViews(display)
			for i := 0; i < numViews; i++ {
				supported[strings.ToLower(c.cfg.ViewByIndex(display, i))] = true
			}

			for _, view := range util.SplitEnvStyle(activeViews) {
				if supported[strings.ToLower(view)] {
					c.defaultViews[displayLower] = view
					c.viewMu.Unlock()
					return view
				}
			}
			c.viewMu.Unlock()
		}
	}

	return c.cfg.DefaultView(display)
}

// IsInvertible reports whether a space is usable in both directions.
func (c *Catalog) IsInvertible(cs *config.ColorSpace) bool {
	family := cs.Family

	if family == "rrt" || family == "display" {
		// Assume display and rrt transformations are not invertible. In fact
		// some of them could be, but it doesn't make much sense to allow
		// using them as invertible.
		return false
	}

	if cs.IsData {
		// Data color spaces don't have transformations at all.
		return true
	}

	if len(cs.ToReference) > 0 || len(cs.FromReference) > 0 {
		// With a transform to the reference space the color space can be
		// converted to scene linear.
		return true
	}

	return true
}
