// Package output renders a Result for consumption outside the engine. All
// display rounding lives here; the engine keeps full precision.
package output

import (
	"encoding/json"

	"github.com/wagewise/wagewise/internal/domain"
)

// JSONFormatter renders the Result as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format generates JSON output for the evaluation result.
func (jf *JSONFormatter) Format(result *domain.Result) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
