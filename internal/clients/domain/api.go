package domain

// WildcardAPI selects every API of the default set when subscribing, or every
// current subscription when unsubscribing.
const WildcardAPI = "*"

// API identifies a published backend API.
type API struct {
	Name     string `json:"name" yaml:"name"`
	Version  string `json:"version" yaml:"version"`
	Provider string `json:"provider" yaml:"provider"`
}

// APISet is the ordered, immutable list of APIs every new client is
// subscribed to.
type APISet struct {
	apis []API
}

// NewAPISet copies apis into a new set. Later entries with a name already in
// the set are dropped.
func NewAPISet(apis ...API) APISet {
	seen := make(map[string]struct{}, len(apis))
	out := make([]API, 0, len(apis))
	for _, a := range apis {
		if _, ok := seen[a.Name]; ok {
			continue
		}
		seen[a.Name] = struct{}{}
		out = append(out, a)
	}
	return APISet{apis: out}
}

// All returns a copy of the set in order.
func (s APISet) All() []API {
	out := make([]API, len(s.apis))
	copy(out, s.apis)
	return out
}

// Len reports the number of APIs in the set.
func (s APISet) Len() int { return len(s.apis) }

// Lookup returns the entry with the given name (exact match).
func (s APISet) Lookup(name string) (API, bool) {
	for _, a := range s.apis {
		if a.Name == name {
			return a, true
		}
	}
	return API{}, false
}
