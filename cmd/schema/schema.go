// Package schema contains the command that lists the schema of a datastore.
package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/typedb/typedb-sub018/cmd/util"
	"github.com/typedb/typedb-sub018/pkg/concept"
	"github.com/typedb/typedb-sub018/pkg/logger"
	"github.com/typedb/typedb-sub018/pkg/storage"
)

func NewSchemaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "schema",
		Short:   "List the schema concepts of a datastore",
		Long:    "List every schema concept ordered by label, one JSON object per line with its label, kind and direct supertype.",
		Example: "graphkb schema --datastore-engine sqlite --datastore-uri graphkb.db",
		RunE:    run,
		Args:    cobra.NoArgs,
	}

	util.AddConfigFlags(cmd)
	cmd.PreRun = util.BindConfigFlags

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := util.ReadConfig()
	if err != nil {
		return err
	}

	l, err := logger.NewLogger(cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}

	ctx := cmd.Context()
	ds, err := util.NewDatastore(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer ds.Close()

	if err := List(ctx, ds, cmd.OutOrStdout()); err != nil {
		l.Error("failed to list schema", zap.Error(err))
		return err
	}
	return nil
}

// Entry is one listed schema concept. Super is empty for the root.
type Entry struct {
	Label    string       `json:"label"`
	Kind     concept.Kind `json:"kind"`
	Super    string       `json:"super,omitempty"`
	Abstract bool         `json:"abstract,omitempty"`
}

// List writes every schema concept of ds to out. It only reads: the
// transaction is always rolled back.
func List(ctx context.Context, ds storage.Datastore, out io.Writer) (err error) {
	tx, err := ds.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && err == nil {
			err = fmt.Errorf("rollback: %w", rbErr)
		}
	}()

	entries, err := entries(ctx, tx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return fmt.Errorf("write entry: %w", err)
		}
	}
	return nil
}

func entries(ctx context.Context, tx storage.ConceptReader) ([]Entry, error) {
	concepts, err := tx.SchemaConcepts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(concepts))
	for _, c := range concepts {
		e := Entry{Label: c.Label, Kind: c.Kind}

		sup, err := tx.Sup(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("supertype of '%s': %w", c.Label, err)
		}
		if sup != nil {
			e.Super = sup.Label
		}

		if c.IsType() {
			if e.Abstract, err = tx.IsAbstract(ctx, c.ID); err != nil {
				return nil, fmt.Errorf("abstract of '%s': %w", c.Label, err)
			}
		}
		out = append(out, e)
	}
	return out, nil
}
