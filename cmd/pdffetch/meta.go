package main

import (
	"encoding/json"
	"fmt"
)

// Run executes the meta command.
func (c *MetaCmd) Run(deps *Dependencies) error {
	probe := deps.Tools.Metadata(deps.Ctx, c.URL)

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(probe); err != nil {
		return err
	}

	if probe.Error != "" {
		return fmt.Errorf("%s: %s", c.URL, probe.Error)
	}
	return nil
}
