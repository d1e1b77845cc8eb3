package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/pdffetch"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	result := deps.Processor.Process(deps.Ctx, c.URL, c.Method)

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(deps.Stdout, pdffetch.FormatReport(result))
	}

	if !result.Success {
		return fmt.Errorf("%s: %s", c.URL, result.Error)
	}
	return nil
}
