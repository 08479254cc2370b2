package write

import (
	"github.com/spf13/cobra"

	"github.com/typedb/typedb-sub018/cmd/util"
)

// bindRunFlags binds the cobra cmd flags to the equivalent config value being managed
// by viper. This bridges the config between cobra flags and viper flags.
func bindRunFlags(command *cobra.Command, args []string) {
	flags := command.Flags()

	util.MustBindPFlag(fileFlag, flags.Lookup(fileFlag))
	util.MustBindPFlag(explainFlag, flags.Lookup(explainFlag))

	util.BindConfigFlags(command, args)
}
