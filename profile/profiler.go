package profile

import "strings"

const (
	// DefaultMaxSamples is the cap on distinct sample values kept per field.
	DefaultMaxSamples = 3

	// DefaultSampleWidth is the maximum length of a stored sample value.
	DefaultSampleWidth = 50
)

type profiler struct {
	Config  *Config
	Count   int64
	Include map[string]struct{}
	Exclude map[string]struct{}
	Fields  map[string]*profilerField
}

// Profiler is an interface for accumulating fill statistics.
type Profiler interface {
	// Increment the row count.
	Incr()

	// Record records a field-value pair. Values are trimmed before
	// being classified as filled or empty.
	Record(field string, raw string)

	// Profile returns the profile.
	Profile() *Profile
}

type Config struct {
	// Include are the fields to explicitly include.
	Include []string

	// Exclude are the fields to explicitly exclude.
	Exclude []string

	// MaxSamples caps the distinct sample values kept per field.
	// Zero means DefaultMaxSamples.
	MaxSamples int

	// SampleWidth truncates stored sample values to this many runes.
	// Zero means DefaultSampleWidth.
	SampleWidth int
}

func (c *Config) maxSamples() int {
	if c.MaxSamples > 0 {
		return c.MaxSamples
	}
	return DefaultMaxSamples
}

func (c *Config) sampleWidth() int {
	if c.SampleWidth > 0 {
		return c.SampleWidth
	}
	return DefaultSampleWidth
}

func (p *profiler) Incr() {
	p.Count++
}

// field returns the field stats if the field should be profiled.
func (p *profiler) field(n string) (*profilerField, bool) {
	if _, ok := p.Exclude[n]; ok {
		return nil, false
	}

	if len(p.Include) > 0 {
		if _, ok := p.Include[n]; !ok {
			return nil, false
		}
	}

	// Initialize and get field stats.
	f, ok := p.Fields[n]
	if !ok {
		f = newProfilerField(n)
		p.Fields[n] = f
	}

	return f, true
}

func (p *profiler) Profile() *Profile {
	r := NewProfile()
	r.RowCount = p.Count

	for k, f := range p.Fields {
		r.Fields[k] = f.Field()
	}

	return r
}

func (p *profiler) Record(n string, v string) {
	f, ok := p.field(n)
	if !ok {
		return
	}

	v = strings.TrimSpace(v)

	if v == "" {
		f.Empty++
		return
	}

	f.Filled++
	f.addSample(truncate(v, p.Config.sampleWidth()), p.Config.maxSamples())
}

// truncate limits a value to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// profilerField accumulates counts and sample values for a field.
type profilerField struct {
	Name    string
	Filled  int64
	Empty   int64
	Samples []string
}

// addSample keeps up to max distinct values in first-seen order.
func (f *profilerField) addSample(v string, max int) {
	if len(f.Samples) >= max {
		return
	}

	for _, s := range f.Samples {
		if s == v {
			return
		}
	}

	f.Samples = append(f.Samples, v)
}

func (f *profilerField) Field() *Field {
	return &Field{
		Name:    f.Name,
		Filled:  f.Filled,
		Empty:   f.Empty,
		Samples: append([]string(nil), f.Samples...),
	}
}

func newProfilerField(name string) *profilerField {
	return &profilerField{
		Name: name,
	}
}

func NewProfiler(c *Config) Profiler {
	if c == nil {
		c = &Config{}
	}

	p := &profiler{
		Config: c,
		Fields: make(map[string]*profilerField),
	}

	if len(p.Config.Exclude) > 0 {
		p.Exclude = make(map[string]struct{})

		for _, f := range p.Config.Exclude {
			p.Exclude[f] = struct{}{}
		}
	}

	if len(p.Config.Include) > 0 {
		p.Include = make(map[string]struct{})

		for _, f := range p.Config.Include {
			p.Include[f] = struct{}{}
		}
	}

	return p
}
