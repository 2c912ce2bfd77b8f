package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/eugenenazirov/propbind"
	"github.com/eugenenazirov/propbind/internal/logging"
	"github.com/eugenenazirov/propbind/schemadef"
)

func main() {
	app := kingpin.New("propcheck", "Validates a properties file against a declared schema and prints the resolved values")
	schemaFile := app.Flag("schema", "Path to the YAML schema declaration").Required().String()
	export := app.Flag("export", "Print the resolved record as canonical properties text").Bool()
	dump := app.Flag("dump", "Dump the resolved values for debugging").Bool()
	verbose := app.Flag("verbose", "Enable debug logging").Short('v').Bool()
	propsFile := app.Arg("file", "Properties file to bind; omit to resolve from environment and defaults only").String()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := logging.New(*verbose)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(os.Stdout, logger, *schemaFile, *propsFile, *export, *dump); err != nil {
		logger.Error("check failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(out io.Writer, logger *zap.Logger, schemaPath, propsPath string, export, dump bool) error {
	schema, err := schemadef.Load(schemaPath)
	if err != nil {
		return err
	}
	logger.Debug("schema loaded", zap.String("file", schemaPath), zap.Int("fields", len(schema)))

	var rec *propbind.Record
	if propsPath == "" {
		rec, err = propbind.BindDefaults(schema)
	} else {
		rec, err = propbind.BindFile(schema, propsPath)
	}
	if err != nil {
		return err
	}
	logger.Info("bind succeeded", zap.Int("fields", rec.Len()))

	if export {
		fmt.Fprint(out, propbind.FormatProperties(rec.Export()))
	}
	if dump {
		fmt.Fprint(out, spew.Sdump(rec.Map()))
	}
	return nil
}
