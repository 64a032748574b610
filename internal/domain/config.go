package domain

// InputPolicy decides what happens to text that is not a number.
type InputPolicy string

const (
	InputReject InputPolicy = "reject"
	InputZero   InputPolicy = "zero"
)

// Config represents the unitconv configuration loaded from unitconv.yaml.
type Config struct {
	Input    InputConfig
	Display  DisplayConfig
	Defaults DefaultsConfig
	Rounding map[Domain]Rounding
}

type InputConfig struct {
	OnInvalid InputPolicy
}

type DisplayConfig struct {
	Precision int
	Template  string
}

type DefaultsConfig struct {
	Domain Domain
}

const DefaultResultTemplate = "{{value}} {{from}} = {{result}} {{to}}"

// DefaultConfig provides sane defaults if unitconv.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Input: InputConfig{OnInvalid: InputReject},
		Display: DisplayConfig{
			Precision: 4,
			Template:  DefaultResultTemplate,
		},
		Defaults: DefaultsConfig{Domain: Temperature},
		Rounding: DefaultRounding(),
	}
}

// EngineOptions turns the rounding section into Engine options.
func (c Config) EngineOptions() []EngineOption {
	opts := make([]EngineOption, 0, len(c.Rounding))
	for _, d := range Domains() {
		if r, ok := c.Rounding[d]; ok {
			opts = append(opts, WithRounding(d, r))
		}
	}
	return opts
}
