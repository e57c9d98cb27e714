package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	schema "github.com/kestrelschema/jsonschema"
	"github.com/kestrelschema/jsonschema/validator"
)

func main() {
	app := &cli.Command{
		Name:  "jsonschema",
		Usage: "compile and run JSON Schema validators",
		Commands: []*cli.Command{
			{
				Name:      "lint",
				Usage:     "report parse and compile errors found in a schema file",
				ArgsUsage: "[filename]",
				Action:    lintCommand,
			},
			{
				Name:      "validate",
				Usage:     "validate an instance document against a schema file",
				ArgsUsage: "[schema-file] [instance-file]",
				Action:    validateCommand,
			},
			{
				Name:      "gen",
				Usage:     "emit a Go source fragment that compiles the schema once at init",
				ArgsUsage: "[filename]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "package-level variable name to assign the compiled schema to (derived from the schema's title or $id when omitted)",
					},
				},
				Action: genCommand,
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func readSchema(filename string) (*schema.Schema, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var s *schema.Schema
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		s, err = schema.LoadSchema(data)
	default:
		s, err = schema.ParseSchema(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	return s, nil
}

func lintCommand(ctx context.Context, c *cli.Command) error {
	filename := c.Args().First()
	if filename == "" {
		return fmt.Errorf("filename is required")
	}

	s, err := readSchema(filename)
	if err != nil {
		return err
	}

	if _, err := validator.Compile(s); err != nil {
		return fmt.Errorf("schema compile failed: %w", err)
	}

	fmt.Printf("schema %s is valid\n", filename)
	return nil
}

func genCommand(ctx context.Context, c *cli.Command) error {
	filename := c.Args().First()
	if filename == "" {
		return fmt.Errorf("filename is required")
	}
	s, err := readSchema(filename)
	if err != nil {
		return err
	}
	if _, err := validator.Compile(s); err != nil {
		return fmt.Errorf("schema compile failed: %w", err)
	}
	return validator.GenerateCode(os.Stdout, c.String("name"), s)
}

func validateCommand(ctx context.Context, c *cli.Command) error {
	schemaFile := c.Args().Get(0)
	instanceFile := c.Args().Get(1)
	if schemaFile == "" || instanceFile == "" {
		return fmt.Errorf("schema-file and instance-file are both required")
	}

	s, err := readSchema(schemaFile)
	if err != nil {
		return err
	}
	compiled, err := validator.Compile(s)
	if err != nil {
		return fmt.Errorf("schema compile failed: %w", err)
	}

	data, err := os.ReadFile(instanceFile)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", instanceFile, err)
	}
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("failed to parse instance document: %w", err)
	}

	result := compiled.Parse(instance)
	if result.Valid {
		fmt.Printf("%s is valid against %s\n", instanceFile, schemaFile)
		return nil
	}

	for _, rec := range result.Errors {
		fmt.Fprintln(os.Stderr, rec.Error())
	}
	return fmt.Errorf("%s failed validation against %s", instanceFile, schemaFile)
}
