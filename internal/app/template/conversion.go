package template

import (
	"strconv"

	"github.com/bernardopiane/UnitConverter/internal/domain"
)

// FormatNumber prints v with a fixed number of decimals. Negative precision
// prints the shortest representation.
func FormatNumber(v float64, precision int) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// ConversionVars exposes a conversion to result templates.
//
//	value, result        formatted magnitudes
//	from, to             unit symbols
//	from_name, to_name   enum names
//	domain               domain name
func ConversionVars(c domain.Conversion, precision int) map[string]string {
	vars := map[string]string{
		"value":  FormatNumber(c.Value, -1),
		"result": FormatNumber(c.Result, precision),
		"domain": string(c.Domain),
	}
	if c.From != nil {
		vars["from"] = c.From.Symbol()
		vars["from_name"] = c.From.Name()
	}
	if c.To != nil {
		vars["to"] = c.To.Symbol()
		vars["to_name"] = c.To.Name()
	}
	return vars
}

// RenderConversion renders tmpl for c, falling back to the default template when tmpl is empty.
func RenderConversion(tmpl string, c domain.Conversion, precision int) (string, error) {
	if tmpl == "" {
		tmpl = domain.DefaultResultTemplate
	}
	return RenderString(tmpl, ConversionVars(c, precision))
}
