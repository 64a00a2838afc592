package config

import "flag"

// ApplyFlags copies command-line overrides that were explicitly set on fs into c.
// Unset flags leave the loaded values alone, so every value, zero included, can be chosen.
func (c *Config) ApplyFlags(fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			if g, ok := f.Value.(flag.Getter); ok {
				if seed, ok := g.Get().(int64); ok {
					c.Noise.Seed = seed
				}
			}
		}
	})
}
