package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/futsalhub/booking-system/internal/core/domain"
)

type slotList []string

func (s slotList) String() string {
	return strings.Join(s, "\n")
}

// NewSlotsCommand prints the daily slot vocabulary every facility offers.
func NewSlotsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "slots",
		Short: "Print the bookable hourly slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			return out.Success(slotList(domain.SlotLabels()))
		},
	}
}
