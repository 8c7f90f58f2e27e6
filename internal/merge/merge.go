package merge

// Options controls how a fragment is folded into an existing value.
type Options struct {
	// Merge folds mapping values key by key. When false, an incoming value
	// replaces the existing value entirely.
	Merge bool

	// IgnoreNull skips incoming keys whose value is nil, leaving the
	// existing value untouched.
	IgnoreNull bool
}

// DefaultOptions returns the options used for plugin fragments: deep merge,
// nil values ignored.
func DefaultOptions() Options {
	return Options{Merge: true, IgnoreNull: true}
}

// dependencyKeys are the package.json fields whose values are dependency
// maps and therefore merge through MergeDependencies rather than the generic
// rules.
var dependencyKeys = map[string]bool{
	"dependencies":    true,
	"devDependencies": true,
}

// Merge folds incoming into existing and returns the result. Neither input
// is mutated. Per-key rules, in order:
//
//  1. nil incoming values are skipped when opts.IgnoreNull is set.
//  2. With opts.Merge false, or when the key is absent from existing, the
//     incoming value wins outright.
//  3. dependencies/devDependencies values merge via MergeDependencies.
//  4. When both sides are mappings, their keys merge recursively; scalars
//     and slices overwrite rather than concatenate.
//  5. On a type mismatch the existing value is kept.
//
// Merging the same fragment twice produces no further change.
func Merge(existing, incoming map[string]any, opts Options) map[string]any {
	out := make(map[string]any, len(existing)+len(incoming))
	for k, v := range existing {
		out[k] = copyValue(v)
	}

	for k, inc := range incoming {
		if inc == nil && opts.IgnoreNull {
			continue
		}

		cur, ok := out[k]
		if !opts.Merge || !ok {
			out[k] = copyValue(inc)
			continue
		}

		if dependencyKeys[k] {
			if merged, handled := mergeDependencyValue(cur, inc); handled {
				out[k] = merged
				continue
			}
		}

		curMap, curIsMap := asMap(cur)
		incMap, incIsMap := asMap(inc)
		switch {
		case curIsMap && incIsMap:
			out[k] = Merge(curMap, incMap, opts)
		case curIsMap || incIsMap:
			// Type mismatch: the existing value stands.
		default:
			out[k] = copyValue(inc)
		}
	}

	return out
}

// Apply folds an ordered series of fragments into base. Later fragments are
// merged after earlier ones and can override them.
func Apply(base map[string]any, opts Options, fragments ...map[string]any) map[string]any {
	out := base
	for _, f := range fragments {
		out = Merge(out, f, opts)
	}
	return out
}

// mergeDependencyValue reconciles a dependency-shaped key. Both sides must
// be mappings with string-valued entries; anything else falls back to the
// generic rules.
func mergeDependencyValue(cur, inc any) (any, bool) {
	curDeps, ok := asDependencyMap(cur)
	if !ok {
		return nil, false
	}
	incDeps, ok := asDependencyMap(inc)
	if !ok {
		return nil, false
	}

	merged := MergeDependencies(curDeps, incDeps)
	out := make(map[string]any, len(merged))
	for name, rng := range merged {
		out[name] = rng
	}
	return out, true
}

// asMap reports whether v is a mapping fragment.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

// asDependencyMap converts a mapping value into a name→range map. It
// accepts both map[string]string and a map[string]any whose values are all
// strings.
func asDependencyMap(v any) (map[string]string, bool) {
	switch m := v.(type) {
	case map[string]string:
		out := make(map[string]string, len(m))
		for k, s := range m {
			out[k] = s
		}
		return out, true
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, val := range m {
			s, ok := val.(string)
			if !ok {
				return nil, false
			}
			out[k] = s
		}
		return out, true
	default:
		return nil, false
	}
}

// copyValue returns a deep copy of mapping values so merges never alias the
// caller's fragments. Slices are copied shallowly; scalar values are
// returned as-is.
func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = copyValue(val)
		}
		return out
	case map[string]string:
		out := make(map[string]string, len(t))
		for k, val := range t {
			out[k] = val
		}
		return out
	case []any:
		out := make([]any, len(t))
		copy(out, t)
		return out
	default:
		return v
	}
}
