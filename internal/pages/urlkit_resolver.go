package pages

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/pagecraft-cms/pagecraft/content"
)

// URLKitResolverOptions configures the go-urlkit backed page URL resolver.
type URLKitResolverOptions struct {
	Manager      *urlkit.RouteManager
	DefaultGroup string
	LocaleGroups map[content.Locale]string
	Route        string
	SlugParam    string
	LocaleParam  string
}

// URLKitResolver builds localized page URLs from a go-urlkit RouteManager.
// Each locale can map to its own route group so Arabic pages live under a
// prefixed tree.
type URLKitResolver struct {
	manager      *urlkit.RouteManager
	defaultGroup string
	localeGroups map[content.Locale]string
	route        string
	slugParam    string
	localeParam  string

	groupCache map[string]*urlkit.Group
	mu         sync.RWMutex
}

// NewURLKitResolver constructs a resolver backed by go-urlkit.
func NewURLKitResolver(opts URLKitResolverOptions) *URLKitResolver {
	if opts.Route == "" {
		opts.Route = "page"
	}
	if opts.SlugParam == "" {
		opts.SlugParam = "slug"
	}

	return &URLKitResolver{
		manager:      opts.Manager,
		defaultGroup: strings.TrimSpace(opts.DefaultGroup),
		localeGroups: opts.LocaleGroups,
		route:        opts.Route,
		slugParam:    opts.SlugParam,
		localeParam:  strings.TrimSpace(opts.LocaleParam),
		groupCache:   make(map[string]*urlkit.Group),
	}
}

// Resolve builds the public URL for a page slug in the given locale.
func (r *URLKitResolver) Resolve(slug string, locale content.Locale) (string, error) {
	if r == nil || r.manager == nil {
		return "", nil
	}

	groupPath := r.defaultGroup
	if r.localeGroups != nil {
		if path, ok := r.localeGroups[locale]; ok && strings.TrimSpace(path) != "" {
			groupPath = strings.TrimSpace(path)
		}
	}
	if groupPath == "" {
		return "", nil
	}

	group, err := r.groupForPath(groupPath)
	if err != nil || group == nil {
		return "", err
	}

	builder, err := r.safeBuilder(group, r.route)
	if err != nil {
		return "", err
	}

	builder.WithParam(r.slugParam, slug)
	if r.localeParam != "" {
		builder.WithParam(r.localeParam, string(locale))
	}

	return builder.Build()
}

func (r *URLKitResolver) groupForPath(path string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	if len(parts) == 0 {
		return nil, fmt.Errorf("pages: invalid route group path %q", path)
	}

	root, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

func (r *URLKitResolver) safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("pages: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			builder = nil
			err = fmt.Errorf("pages: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, nil
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	if manager == nil {
		return nil, fmt.Errorf("pages: route manager not configured")
	}
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("pages: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, nil
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("pages: route group %q not found", name)
	}
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("pages: route group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, nil
}
