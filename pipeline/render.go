package pipeline

import (
	"bytes"

	"github.com/pipeforge/pipeforge/errors"
	"gopkg.in/yaml.v3"
)

// Header is written at the top of every rendered file. Drift detection is
// byte-level, so the header is part of the published content like
// everything else.
const Header = "# This file was generated by pipeforge. Do not edit it by hand.\n# Edit the pipeline definition and run `pipeforge publish` instead.\n\n"

// Render serializes the pipeline to its published YAML form: header
// comment, two-space indent, field order as declared on the structs.
// Rendering the same in-memory pipeline always yields identical bytes;
// map-valued fields (variables, template parameters) are emitted in sorted
// key order by the encoder.
func Render(p *Pipeline) ([]byte, error) {
	if p == nil {
		return nil, errors.New("nil pipeline")
	}

	var buf bytes.Buffer
	buf.WriteString(Header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, errors.Wrap(err, "failed to render pipeline")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finish rendering pipeline")
	}
	return buf.Bytes(), nil
}
