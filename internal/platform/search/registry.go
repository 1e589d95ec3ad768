package search

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// DefinitionRegistry is a thread-safe in-memory registry of search
// parameter definitions, keyed by canonical URL and by (resource type,
// code). Definitions are loaded once at startup and read concurrently by
// every query compilation; Reload replaces the whole index atomically so
// in-flight reads never observe a partially updated registry.
type DefinitionRegistry struct {
	mu     sync.RWMutex
	byURL  map[string]*ParameterDefinition
	byCode map[string]map[string]*ParameterDefinition // resourceType -> code
	log    zerolog.Logger
}

// NewDefinitionRegistry creates an empty registry.
func NewDefinitionRegistry(log zerolog.Logger) *DefinitionRegistry {
	return &DefinitionRegistry{
		byURL:  make(map[string]*ParameterDefinition),
		byCode: make(map[string]map[string]*ParameterDefinition),
		log:    log,
	}
}

// Register adds a definition to the registry. It returns an error if the
// definition is invalid or if its URL is already registered.
func (r *DefinitionRegistry) Register(def *ParameterDefinition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byURL[def.URL]; exists {
		return fmt.Errorf("search parameter %q already registered", def.URL)
	}

	// Store a copy to keep the registry immutable from the outside.
	stored := *def
	r.byURL[def.URL] = &stored
	for _, base := range def.Base {
		if r.byCode[base] == nil {
			r.byCode[base] = make(map[string]*ParameterDefinition)
		}
		r.byCode[base][def.Code] = &stored
	}

	r.log.Debug().
		Str("url", def.URL).
		Str("code", def.Code).
		Str("type", string(def.Type)).
		Msg("registered search parameter")
	return nil
}

// GetByURL resolves a definition by its canonical URL. Composite component
// references resolve through this lookup.
func (r *DefinitionRegistry) GetByURL(url string) (*ParameterDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, ok := r.byURL[url]
	if !ok {
		return nil, fmt.Errorf("unknown search parameter %q", url)
	}
	result := *def
	return &result, nil
}

// Lookup resolves a definition by resource type and search code.
// Parameters registered against "Resource" apply to every resource type.
func (r *DefinitionRegistry) Lookup(resourceType, code string) (*ParameterDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if byCode := r.byCode[resourceType]; byCode != nil {
		if def, ok := byCode[code]; ok {
			result := *def
			return &result, nil
		}
	}
	if byCode := r.byCode["Resource"]; byCode != nil {
		if def, ok := byCode[code]; ok {
			result := *def
			return &result, nil
		}
	}
	return nil, fmt.Errorf("unknown search parameter %q for resource type %q", code, resourceType)
}

// List returns every registered definition sorted by canonical URL.
func (r *DefinitionRegistry) List() []*ParameterDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	urls := make([]string, 0, len(r.byURL))
	for url := range r.byURL {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	result := make([]*ParameterDefinition, 0, len(urls))
	for _, url := range urls {
		cp := *r.byURL[url]
		result = append(result, &cp)
	}
	return result
}

// Reload replaces the registry contents with the given definitions in one
// atomic step. Either every definition is accepted or the registry is left
// untouched.
func (r *DefinitionRegistry) Reload(defs []*ParameterDefinition) error {
	byURL := make(map[string]*ParameterDefinition, len(defs))
	byCode := make(map[string]map[string]*ParameterDefinition)

	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return err
		}
		if _, exists := byURL[def.URL]; exists {
			return fmt.Errorf("duplicate search parameter %q in reload set", def.URL)
		}
		stored := *def
		byURL[def.URL] = &stored
		for _, base := range def.Base {
			if byCode[base] == nil {
				byCode[base] = make(map[string]*ParameterDefinition)
			}
			byCode[base][def.Code] = &stored
		}
	}

	r.mu.Lock()
	r.byURL = byURL
	r.byCode = byCode
	r.mu.Unlock()

	r.log.Info().Int("count", len(defs)).Msg("search parameter registry reloaded")
	return nil
}

// NewDefaultDefinitionRegistry returns a registry pre-populated with the
// common FHIR R4 search parameters from DefaultDefinitions.
func NewDefaultDefinitionRegistry(log zerolog.Logger) *DefinitionRegistry {
	r := NewDefinitionRegistry(log)
	if err := r.Reload(DefaultDefinitions()); err != nil {
		// Default definitions are well-formed; a failure here is a
		// programming error.
		panic(err)
	}
	return r
}
