package main

import (
	"os"

	"github.com/typedb/typedb-sub018/cmd"
	"github.com/typedb/typedb-sub018/cmd/migrate"
	"github.com/typedb/typedb-sub018/cmd/schema"
	"github.com/typedb/typedb-sub018/cmd/write"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	writeCmd := write.NewWriteCommand()
	rootCmd.AddCommand(writeCmd)

	schemaCmd := schema.NewSchemaCommand()
	rootCmd.AddCommand(schemaCmd)

	migrateCmd := migrate.NewMigrateCommand()
	rootCmd.AddCommand(migrateCmd)

	versionCmd := cmd.NewVersionCommand()
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
