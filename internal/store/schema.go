package store

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const schemaBase = "https://quizgen.local/schemas/"

var (
	schemaOnce sync.Once
	schemas    map[string]*jsonschema.Schema
	schemaErr  error
)

// schemaFor returns the compiled schema for a run file name.
func schemaFor(name string) (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schemas = make(map[string]*jsonschema.Schema)
		c := jsonschema.NewCompiler()
		for _, file := range []string{QuestionsFile, AnswersFile} {
			raw, err := schemaFS.ReadFile("schemas/" + file)
			if err != nil {
				schemaErr = err
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
			if err != nil {
				schemaErr = fmt.Errorf("parse schema %s: %w", file, err)
				return
			}
			if err := c.AddResource(schemaBase+file, doc); err != nil {
				schemaErr = fmt.Errorf("add schema %s: %w", file, err)
				return
			}
		}
		for _, file := range []string{QuestionsFile, AnswersFile} {
			sch, err := c.Compile(schemaBase + file)
			if err != nil {
				schemaErr = fmt.Errorf("compile schema %s: %w", file, err)
				return
			}
			schemas[file] = sch
		}
	})
	if schemaErr != nil {
		return nil, schemaErr
	}
	return schemas[name], nil
}
