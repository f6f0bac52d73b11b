package am

import (
	"github.com/teranos/r2gen/emit"
	"github.com/teranos/r2gen/errors"
	"github.com/teranos/r2gen/generate"
)

// Validate checks that the configuration is valid. Targets are fully
// validated as generation parameters, so a batch never starts half-configured.
func (c *Config) Validate() error {
	if _, err := emit.ParseSyntax(c.Generate.Syntax); err != nil {
		return errors.Wrap(err, "generate.syntax")
	}
	if c.Generate.ClassName == "" {
		return errors.New("generate.class_name cannot be empty (omit for default R2)")
	}

	// Batch workers: 0 = one per CPU, negative = invalid
	if c.Batch.Workers < 0 {
		return errors.Newf("batch.workers must be >= 0, got %d", c.Batch.Workers)
	}

	if c.Log.Verbosity < 0 || c.Log.Verbosity > 3 {
		return errors.Newf("log.verbosity must be between 0 and 3, got %d", c.Log.Verbosity)
	}

	seen := make(map[string]bool, len(c.Targets))
	for i, target := range c.Targets {
		if target.Name == "" {
			return errors.Newf("targets[%d].name cannot be empty", i)
		}
		if seen[target.Name] {
			return errors.Newf("targets[%d]: duplicate target name %q", i, target.Name)
		}
		seen[target.Name] = true

		params, err := target.Params(c.Generate)
		if err != nil {
			return errors.Wrapf(err, "targets[%d] (%s)", i, target.Name)
		}
		if err := params.Validate(); err != nil {
			return errors.Wrapf(err, "targets[%d] (%s)", i, target.Name)
		}
	}

	return nil
}

// Params resolves the target against the [generate] defaults.
func (t Target) Params(defaults GenerateConfig) (generate.Params, error) {
	syntaxName := t.Syntax
	if syntaxName == "" {
		syntaxName = defaults.Syntax
	}
	syntax, err := emit.ParseSyntax(syntaxName)
	if err != nil {
		return generate.Params{}, err
	}

	className := t.ClassName
	if className == "" {
		className = defaults.ClassName
	}

	legacy := defaults.LegacyAnnotations
	if t.LegacyAnnotations != nil {
		legacy = *t.LegacyAnnotations
	}

	return generate.Params{
		Name:              t.Name,
		SymbolTable:       t.SymbolTable,
		OutputDir:         t.OutputDir,
		PackageName:       t.Package,
		ClassName:         className,
		Syntax:            syntax,
		LegacyAnnotations: legacy,
	}, nil
}

// BatchParams resolves every target in order.
func (c *Config) BatchParams() ([]generate.Params, error) {
	params := make([]generate.Params, 0, len(c.Targets))
	for _, target := range c.Targets {
		p, err := target.Params(c.Generate)
		if err != nil {
			return nil, errors.Wrapf(err, "target %s", target.Name)
		}
		params = append(params, p)
	}
	return params, nil
}
