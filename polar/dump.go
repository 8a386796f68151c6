package polar

import (
	goio "io"

	"gopkg.in/yaml.v3"
)

// WriteYAML writes c to w as a YAML list of tables. This is only meant for
// checking what was read from the polar files.
func WriteYAML(w goio.Writer, c Collection) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// ReadYAML reads a collection written by WriteYAML.
func ReadYAML(r goio.Reader) (Collection, error) {
	c := Collection{}
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return nil, err
	}
	return c, nil
}
