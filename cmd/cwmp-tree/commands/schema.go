package commands

import (
	"fmt"
	"strings"

	"github.com/cwmp-model/cwmp-go/pkg/inspect"
)

// RunSchema lists the registered object templates. With a template
// prefix only matching objects are listed; params adds their parameters.
func RunSchema(env *Env, prefix string, params bool) error {
	reg := env.registry()
	for _, tmpl := range reg.Templates() {
		if prefix != "" && !strings.HasPrefix(tmpl, prefix) {
			continue
		}
		fmt.Fprintln(env.Out, tmpl)
		if !params {
			continue
		}
		meta, err := reg.Lookup(tmpl)
		if err != nil {
			return err
		}
		for _, p := range meta.Parameters {
			line := fmt.Sprintf("  %s %s", p.Name, inspect.FormatMetadata(p))
			if p.Units != "" {
				line += " [" + p.Units + "]"
			}
			fmt.Fprintln(env.Out, line)
		}
	}
	return nil
}
