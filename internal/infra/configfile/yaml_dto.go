package configfile

type yamlConfig struct {
	UnitConv yamlUnitConv `yaml:"unitconv"`
}

type yamlUnitConv struct {
	Input struct {
		OnInvalid string `yaml:"on_invalid" validate:"omitempty,oneof=reject zero"`
	} `yaml:"input"`

	Display struct {
		Precision *int   `yaml:"precision" validate:"omitempty,min=0,max=10"`
		Template  string `yaml:"template"`
	} `yaml:"display"`

	Defaults struct {
		Domain string `yaml:"domain" validate:"omitempty,oneof=weight temperature distance"`
	} `yaml:"defaults"`

	// entries are checked by validateRounding
	Rounding map[string]yamlRounding `yaml:"rounding" validate:"omitempty,dive,keys,oneof=weight temperature distance,endkeys"`
}

type yamlRounding struct {
	Enabled *bool  `yaml:"enabled"`
	Places  *int32 `yaml:"places" validate:"omitempty,min=0,max=12"`
}

// envOverrides are read from UNITCONV_* variables and win over the file.
type envOverrides struct {
	OnInvalid     string `envconfig:"ON_INVALID" validate:"omitempty,oneof=reject zero"`
	Precision     *int   `envconfig:"PRECISION" validate:"omitempty,min=0,max=10"`
	Template      string `envconfig:"TEMPLATE"`
	DefaultDomain string `envconfig:"DEFAULT_DOMAIN" validate:"omitempty,oneof=weight temperature distance"`
}
