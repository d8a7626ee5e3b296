package raise

import "log/slog"

// Entry is a single key/value pair attached to a raised error.
type Entry struct {
	Key   string
	Value string
}

// Pair builds an Entry.
func Pair(key, value string) Entry {
	return Entry{Key: key, Value: value}
}

// Data is the metadata store of a raised error. Keys are unique; insertion
// order is kept for rendering only.
type Data struct {
	keys   []string
	values map[string]string
}

// Add stores value under key. It fails with *DuplicateKey when key is
// already present and with *InvalidState on a nil store.
func (d *Data) Add(key, value string) error {
	if d == nil {
		return (*InvalidState)(nil).New("error has no data store")
	}
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, ok := d.values[key]; ok {
		return newDuplicateKey(key)
	}
	d.keys = append(d.keys, key)
	d.values[key] = value
	return nil
}

func (d *Data) Get(key string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d.values[key]
	return v, ok
}

func (d *Data) Contains(key string) bool {
	_, ok := d.Get(key)
	return ok
}

func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns a copy of the stored keys in insertion order.
func (d *Data) Keys() []string {
	if d.Len() == 0 {
		return []string{}
	}
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Entries returns a copy of the stored pairs in insertion order.
func (d *Data) Entries() []Entry {
	out := make([]Entry, 0, d.Len())
	for _, k := range d.Keys() {
		out = append(out, Entry{Key: k, Value: d.values[k]})
	}
	return out
}

// Map returns a fresh map of the stored pairs.
func (d *Data) Map() map[string]string {
	m := make(map[string]string, d.Len())
	for _, k := range d.Keys() {
		m[k] = d.values[k]
	}
	return m
}

func (d *Data) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, d.Len())
	for _, e := range d.Entries() {
		attrs = append(attrs, slog.String(e.Key, e.Value))
	}
	return slog.GroupValue(attrs...)
}
