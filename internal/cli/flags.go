package cli

import (
	"fmt"

	"github.com/rileyhilliard/apex/internal/errors"
	"github.com/rileyhilliard/apex/internal/stream"
	"github.com/spf13/cobra"
)

// StreamFlags holds the flags of the stream command.
type StreamFlags struct {
	Format string
	Count  int
}

// AddStreamFlags registers --format and --count on a command.
func AddStreamFlags(cmd *cobra.Command, flags *StreamFlags) {
	cmd.Flags().StringVar(&flags.Format, "format", string(stream.FormatJSON), "line format: json or text")
	cmd.Flags().IntVar(&flags.Count, "count", 0, "stop after N updates (0 = until interrupted)")
}

// ParseStreamFlags checks the stream flags and returns the surface options
// they describe. Out is left for the caller.
func ParseStreamFlags(flags StreamFlags) (stream.Options, error) {
	format, err := stream.ParseFormat(flags.Format)
	if err != nil {
		return stream.Options{}, err
	}
	if flags.Count < 0 {
		return stream.Options{}, errors.New(errors.ErrConfig,
			fmt.Sprintf("--count %d can't be negative", flags.Count),
			"Use --count 0 to stream until interrupted.")
	}
	return stream.Options{Format: format, Count: flags.Count}, nil
}
