package variants

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownVariant is returned by New for a name that is not registered.
var ErrUnknownVariant = errors.New("unknown variant")

// Options are the render settings shared by every variant.
type Options struct {
	Width       int
	Height      int
	Supersample int
}

// DefaultOptions is a 320x320 frame without supersampling.
func DefaultOptions() Options {
	return Options{Width: 320, Height: 320, Supersample: 1}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Supersample == 0 {
		o.Supersample = d.Supersample
	}
	return o
}

type constructor func(Options) (*scene, error)

var registry = map[string]constructor{
	"deepseek": newDeepseek,
	"gemini":   newGemini,
	"gpt":      newGPT,
	"grok":     newGrok,
	"llama":    newLlama,
	"mistral":  newMistral,
	"phi4":     newPhi4,
}

// DefaultName is the variant used when none is configured.
const DefaultName = "deepseek"

// Names returns the registered variant names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named variant at its initial state.
func New(name string, opts Options) (Variant, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownVariant, name, Names())
	}
	v, err := ctor(opts.withDefaults())
	if err != nil {
		return nil, fmt.Errorf("variant %s: %w", name, err)
	}
	return v, nil
}
