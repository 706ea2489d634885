package cli

import (
	"slot-availability/config"
	"slot-availability/internal/service"

	"github.com/spf13/cobra"
)

// Dependencies lets the commands reach configuration and Redis without
// opening connections until a subcommand actually needs them.
type Dependencies struct {
	LoadConfig      func() (*config.Config, error)
	RevocationStore func(cfg *config.Config) (service.TokenRevocationStore, func(), error)
}

func NewRoot(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "slotctl",
		Short:         "Operator tooling for the slot availability service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(NewTokenCmd(deps))
	return cmd
}
